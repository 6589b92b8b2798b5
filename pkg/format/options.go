package format

import (
	"strconv"

	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
)

// CaseOption controls letter casing of a token class on output.
type CaseOption string

// Case options.
const (
	CasePreserve CaseOption = "preserve"
	CaseUpper    CaseOption = "upper"
	CaseLower    CaseOption = "lower"
)

// IndentStyle selects standard or tabular indentation.
type IndentStyle string

// Indentation styles.
const (
	// IndentStandard indents by tabWidth spaces (or a tab) per level.
	IndentStandard IndentStyle = "standard"
	// IndentTabularLeft pads reserved commands to a 10-character column,
	// aligned left.
	IndentTabularLeft IndentStyle = "tabularLeft"
	// IndentTabularRight pads reserved commands to a 10-character column,
	// aligned right.
	IndentTabularRight IndentStyle = "tabularRight"
)

// LogicalOperatorNewline controls newline placement around AND/OR.
type LogicalOperatorNewline string

// Logical operator newline placements.
const (
	NewlineBefore LogicalOperatorNewline = "before"
	NewlineAfter  LogicalOperatorNewline = "after"
)

// CommaPosition controls comma placement in multi-line lists.
type CommaPosition string

// Comma positions.
const (
	CommaAfter   CommaPosition = "after"
	CommaBefore  CommaPosition = "before"
	CommaTabular CommaPosition = "tabular"
)

// AliasAs controls insertion and removal of the AS keyword before aliases.
type AliasAs string

// Alias policies.
const (
	AliasPreserve AliasAs = "preserve"
	AliasAlways   AliasAs = "always"
	AliasNever    AliasAs = "never"
)

// MultilineLists controls when clause operand lists break across lines:
// "always", "avoid", "expressionWidth", or a positive item count such as "4"
// (see ItemCount).
type MultilineLists string

// Multiline list policies.
const (
	MultilineAlways          MultilineLists = "always"
	MultilineAvoid           MultilineLists = "avoid"
	MultilineExpressionWidth MultilineLists = "expressionWidth"
)

// MultilineItemCount returns the policy that breaks lists with more than n items.
func MultilineItemCount(n int) MultilineLists {
	return MultilineLists(strconv.Itoa(n))
}

// ItemCount returns the numeric threshold and true when the policy is a count.
func (m MultilineLists) ItemCount() (int, bool) {
	n, err := strconv.Atoi(string(m))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Options configures formatting. Use DefaultOptions as the base and override
// individual fields; the zero value is not a valid configuration.
type Options struct {
	// Language selects the dialect tables by tag ("sql", "postgresql", ...).
	Language string

	// TabWidth is the number of spaces per indentation level.
	TabWidth int
	// UseTabs indents with one tab per level instead of spaces.
	UseTabs bool

	KeywordCase    CaseOption
	IdentifierCase CaseOption
	FunctionCase   CaseOption
	DataTypeCase   CaseOption

	IndentStyle            IndentStyle
	LogicalOperatorNewline LogicalOperatorNewline

	// ExpressionWidth caps the rendered width of inline parenthesized blocks
	// and is the threshold for width-driven multiline decisions.
	ExpressionWidth int
	// LinesBetweenQueries is the number of blank lines between statements.
	LinesBetweenQueries int

	DenseOperators          bool
	NewlineBeforeSemicolon  bool
	NewlineBeforeOpenParen  bool
	NewlineBeforeCloseParen bool
	TabulateAlias           bool

	CommaPosition  CommaPosition
	MultilineLists MultilineLists
	AliasAs        AliasAs

	// Params supplies placeholder substitutions; nil leaves placeholders as-is.
	Params *Params
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Language:                "sql",
		TabWidth:                2,
		KeywordCase:             CaseUpper,
		IdentifierCase:          CasePreserve,
		FunctionCase:            CasePreserve,
		DataTypeCase:            CasePreserve,
		IndentStyle:             IndentStandard,
		LogicalOperatorNewline:  NewlineBefore,
		ExpressionWidth:         50,
		LinesBetweenQueries:     1,
		CommaPosition:           CommaAfter,
		MultilineLists:          MultilineAlways,
		AliasAs:                 AliasPreserve,
		NewlineBeforeCloseParen: true,
	}
}

func validCase(c CaseOption) bool {
	return c == CasePreserve || c == CaseUpper || c == CaseLower
}

// Validate checks the configuration and returns a *ConfigError describing the
// first problem found.
func (o *Options) Validate() error {
	if _, ok := dialect.Get(o.Language); !ok {
		return &ConfigError{Option: "language", Message: "unknown dialect " + strconv.Quote(o.Language)}
	}
	if o.TabWidth <= 0 {
		return &ConfigError{Option: "tabWidth", Message: "must be a positive integer"}
	}
	for _, c := range []struct {
		name  string
		value CaseOption
	}{
		{"keywordCase", o.KeywordCase},
		{"identifierCase", o.IdentifierCase},
		{"functionCase", o.FunctionCase},
		{"dataTypeCase", o.DataTypeCase},
	} {
		if !validCase(c.value) {
			return &ConfigError{Option: c.name, Message: "must be preserve, upper or lower"}
		}
	}
	switch o.IndentStyle {
	case IndentStandard, IndentTabularLeft, IndentTabularRight:
	default:
		return &ConfigError{Option: "indentStyle", Message: "must be standard, tabularLeft or tabularRight"}
	}
	switch o.LogicalOperatorNewline {
	case NewlineBefore, NewlineAfter:
	default:
		return &ConfigError{Option: "logicalOperatorNewline", Message: "must be before or after"}
	}
	if o.ExpressionWidth < 0 {
		return &ConfigError{Option: "expressionWidth", Message: "must not be negative"}
	}
	if o.LinesBetweenQueries < 0 {
		return &ConfigError{Option: "linesBetweenQueries", Message: "must not be negative"}
	}
	switch o.CommaPosition {
	case CommaAfter, CommaBefore, CommaTabular:
	default:
		return &ConfigError{Option: "commaPosition", Message: "must be after, before or tabular"}
	}
	switch o.MultilineLists {
	case MultilineAlways, MultilineAvoid, MultilineExpressionWidth:
	default:
		if _, ok := o.MultilineLists.ItemCount(); !ok {
			return &ConfigError{Option: "multilineLists", Message: "must be always, avoid, expressionWidth or a positive item count"}
		}
	}
	switch o.AliasAs {
	case AliasPreserve, AliasAlways, AliasNever:
	default:
		return &ConfigError{Option: "aliasAs", Message: "must be preserve, always or never"}
	}
	return nil
}
