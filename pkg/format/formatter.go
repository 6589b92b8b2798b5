package format

import (
	"regexp"
	"strings"

	"github.com/aka-chestnut/sql-formatter/pkg/token"
)

// joinPattern matches the JOIN family among binary commands.
var joinPattern = regexp.MustCompile(`(?i)\bJOIN\b`)

// formatter is the per-statement state machine. It iterates the token slice
// once, dispatching on category. A formatter is single-use and not reentrant;
// independent instances may run concurrently.
type formatter struct {
	cfg    *Options
	tokens []token.Token
	index  int

	ind    *indentation
	p      *printer
	inline *inlineBlock
	alias  *aliasEngine
	as     token.Token // synthesized AS, cased per the statement

	currentNewline bool
	prevReserved   token.Token
	prevCommand    token.Token
}

func newFormatter(cfg *Options, tokens []token.Token) *formatter {
	indent := strings.Repeat(" ", cfg.TabWidth)
	if cfg.UseTabs {
		indent = "\t"
	}
	if cfg.IndentStyle != IndentStandard {
		indent = strings.Repeat(" ", tabularColumnWidth)
	}
	ind := newIndentation(indent)
	return &formatter{
		cfg:            cfg,
		tokens:         tokens,
		ind:            ind,
		p:              newPrinter(ind),
		inline:         newInlineBlock(cfg.ExpressionWidth),
		alias:          &aliasEngine{mode: cfg.AliasAs},
		as:             asToken(tokens),
		currentNewline: true,
	}
}

// format renders the statement. The result still carries tabular markers;
// the caller runs the post-processing sweep.
func (f *formatter) format() (string, error) {
	for f.index = 0; f.index < len(f.tokens); f.index++ {
		tok := f.tokens[f.index]
		if err := f.formatToken(tok); err != nil {
			return "", err
		}
		if tok.IsReserved() {
			f.prevReserved = tok
		}
	}
	return f.p.String(), nil
}

func (f *formatter) formatToken(tok token.Token) error {
	switch tok.Type {
	case token.LINE_COMMENT:
		f.formatLineComment(tok)
	case token.BLOCK_COMMENT:
		f.formatBlockComment(tok)
	case token.RESERVED_COMMAND:
		f.formatCommand(tok)
	case token.RESERVED_BINARY_COMMAND:
		f.formatBinaryCommand(tok)
	case token.RESERVED_DEPENDENT_CLAUSE:
		f.formatDependentClause(tok)
	case token.RESERVED_JOIN_CONDITION:
		f.p.withSpaces(f.show(tok))
	case token.RESERVED_LOGICAL_OPERATOR:
		f.formatLogicalOperator(tok)
	case token.RESERVED_KEYWORD, token.RESERVED_DATA_TYPE,
		token.RESERVED_PARAMETERIZED_DATA_TYPE, token.ARRAY_KEYWORD,
		token.RESERVED_FUNCTION_NAME:
		f.formatKeyword(tok)
	case token.RESERVED_CASE_START:
		f.formatCaseStart(tok)
	case token.RESERVED_CASE_END:
		f.formatCaseEnd(tok)
	case token.BLOCK_START:
		f.formatBlockStart(tok)
	case token.BLOCK_END:
		f.formatBlockEnd(tok)
	case token.PLACEHOLDER:
		return f.formatPlaceholder(tok)
	case token.OPERATOR, token.PROPERTY_ACCESS_OPERATOR:
		f.formatOperator(tok)
	default:
		f.formatWithAlias(tok)
	}
	return nil
}

// ---------- Reserved commands and clauses ----------

func (f *formatter) formatCommand(tok token.Token) {
	f.prevCommand = tok
	f.currentNewline = f.checkNewline(f.index)

	f.ind.decreaseTopLevel()
	f.p.newline()
	f.p.write(f.showMarked(tok))
	// Tabular styles keep the command column flush; a subquery opening right
	// after the command supplies its own block indent.
	if !f.isTabular() || !f.nextNonCommentIs("(") {
		f.ind.increaseTopLevel()
	}
	if f.currentNewline && !f.isTabular() {
		f.p.newline()
	} else {
		f.p.space()
	}
}

func (f *formatter) formatBinaryCommand(tok token.Token) {
	isJoin := joinPattern.MatchString(tok.Value)
	if !isJoin || f.isTabular() {
		f.ind.decreaseTopLevel()
	}
	f.p.newline()
	f.p.write(f.showMarked(tok))
	if isJoin {
		f.p.space()
	} else {
		f.p.newline()
	}
}

func (f *formatter) formatDependentClause(tok token.Token) {
	f.p.newline()
	f.p.withSpaces(f.showMarked(tok))
}

func (f *formatter) formatLogicalOperator(tok token.Token) {
	// BETWEEN 1 AND 2 keeps its AND inline.
	if strings.EqualFold(tok.Value, "AND") &&
		strings.EqualFold(f.lookBehind(2).Value, "BETWEEN") {
		f.p.withSpaces(f.show(tok))
		return
	}

	if f.isTabular() {
		f.ind.decreaseTopLevel()
	}
	if f.cfg.LogicalOperatorNewline == NewlineBefore {
		if f.currentNewline {
			f.p.newline()
		}
		f.p.withSpaces(f.showMarked(tok))
	} else {
		f.p.withSpaces(f.showMarked(tok))
		if f.currentNewline {
			f.p.newline()
		}
	}
}

func (f *formatter) formatKeyword(tok token.Token) {
	if strings.EqualFold(tok.Value, "AS") {
		prev, _ := f.neighborNonComment(-1)
		next, _ := f.neighborNonComment(+1)
		if f.alias.shouldRemove(prev, next) {
			return
		}
	}
	f.p.withSpaces(f.show(tok))
}

func (f *formatter) formatCaseStart(tok token.Token) {
	f.p.withSpaces(f.show(tok))
	f.ind.increaseBlockLevel()
	if f.cfg.MultilineLists == MultilineAlways {
		f.p.newline()
	}
}

func (f *formatter) formatCaseEnd(tok token.Token) {
	f.ind.decreaseBlockLevel()
	f.p.newline()
	f.p.withSpaces(f.show(tok))
}

// ---------- Blocks ----------

func (f *formatter) formatBlockStart(tok token.Token) {
	prev := f.lookBehind(1)
	glue := f.index > 0 &&
		prev.Type != token.BLOCK_START &&
		prev.Type != token.LINE_COMMENT &&
		prev.Type != token.OPERATOR &&
		tok.WhitespaceBefore == ""
	switch {
	case glue:
		f.p.withoutSpaces(tok.Value)
	case f.cfg.NewlineBeforeOpenParen:
		f.p.newline()
		f.p.write(tok.Value)
	default:
		f.p.withSpaceBefore(tok.Value)
	}

	f.inline.beginIfPossible(f.tokens, f.index)
	if !f.inline.isActive() {
		f.ind.increaseBlockLevel()
		f.p.newline()
	}
}

func (f *formatter) formatBlockEnd(tok token.Token) {
	if f.inline.isActive() {
		f.inline.end()
		f.p.withSpaceAfter(tok.Value)
		return
	}
	f.ind.decreaseBlockLevel()
	switch {
	case f.isTabular():
		f.p.newline()
		f.p.write(f.ind.single())
	case f.cfg.NewlineBeforeCloseParen:
		f.p.newline()
	}
	f.p.withSpaces(tok.Value)
}

// ---------- Comments ----------

// formatLineComment keeps a trailing comment on the line of the code it
// followed; a comment on its own source line stays on its own line.
func (f *formatter) formatLineComment(tok token.Token) {
	if strings.Contains(tok.WhitespaceBefore, "\n") {
		f.p.newline()
		f.p.write(tok.Text)
	} else {
		f.p.withoutNewlineBefore(tok.Text)
	}
	f.p.newline()
}

func (f *formatter) formatBlockComment(tok token.Token) {
	f.p.newline()
	f.p.write(reindentComment(tok.Text, f.ind.get()))
	f.p.newline()
}

// reindentComment aligns the interior lines of a block comment with the
// current indent.
func reindentComment(text, indent string) string {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + " " + strings.TrimLeft(lines[i], " \t")
	}
	return strings.Join(lines, "\n")
}

// ---------- Placeholders and operators ----------

func (f *formatter) formatPlaceholder(tok token.Token) error {
	value, err := f.cfg.Params.resolve(tok)
	if err != nil {
		return err
	}
	f.p.withSpaces(value)
	return nil
}

func (f *formatter) formatOperator(tok token.Token) {
	switch tok.Value {
	case ",":
		f.formatComma(tok)
	case ";":
		f.ind.reset()
		if f.cfg.NewlineBeforeSemicolon {
			f.p.newline()
			f.p.write(tok.Value)
		} else {
			f.p.glueEnd(tok.Value)
		}
	case "$", "[":
		f.p.withSpaceBefore(tok.Value)
	case ":", "]":
		f.p.withSpaceAfter(tok.Value)
	case ".", "{", "}", "`":
		f.p.withoutSpaces(tok.Value)
	default:
		if f.cfg.DenseOperators && f.lookBehind(1).Type != token.RESERVED_COMMAND {
			f.p.withoutSpaces(tok.Value)
		} else {
			f.p.withSpaces(tok.Value)
		}
	}
}

func (f *formatter) formatComma(tok token.Token) {
	f.p.withSpaceAfter(tok.Value)
	if f.inline.isActive() {
		return
	}
	if strings.EqualFold(f.prevReserved.Value, "LIMIT") {
		return
	}
	if f.currentNewline {
		f.p.newline()
	}
}

// ---------- Identifiers, literals, aliases ----------

func (f *formatter) formatWithAlias(tok token.Token) {
	prev, _ := f.neighborNonComment(-1)
	if f.alias.shouldAddBefore(prev, tok) {
		f.p.withSpaces(applyCase(f.as.Value, f.cfg.KeywordCase))
	}
	f.p.withSpaces(f.show(tok))
	next, _ := f.neighborNonComment(+1)
	if f.alias.shouldAddAfter(tok, next) {
		f.p.withSpaces(applyCase(f.as.Value, f.cfg.KeywordCase))
	}
}

// ---------- Multiline decision ----------

// checkNewline decides whether the command starting at index renders its
// operand list across multiple lines.
func (f *formatter) checkNewline(index int) bool {
	tail := f.commandTail(index)

	// A CASE in a select list always breaks the list open.
	if strings.EqualFold(f.prevCommand.Value, "SELECT") {
		for _, t := range tail {
			if t.Type == token.RESERVED_CASE_START {
				return true
			}
		}
	}

	switch f.cfg.MultilineLists {
	case MultilineAlways:
		return true
	case MultilineAvoid:
		return false
	case MultilineExpressionWidth:
		return f.inlineWidth(index, tail) > f.cfg.ExpressionWidth
	default:
		limit, _ := f.cfg.MultilineLists.ItemCount()
		return f.clauseCount(tail) > limit ||
			f.inlineWidth(index, tail) > f.cfg.ExpressionWidth
	}
}

// commandTail returns the tokens between the command at index and the next
// command or query separator.
func (f *formatter) commandTail(index int) []token.Token {
	end := index + 1
	for end < len(f.tokens) {
		t := f.tokens[end]
		if t.Type == token.RESERVED_COMMAND || t.Is(";") {
			break
		}
		end++
	}
	return f.tokens[index+1 : end]
}

// inlineWidth projects the single-line width of the command and its tail.
func (f *formatter) inlineWidth(index int, tail []token.Token) int {
	tok := f.tokens[index]
	width := len(tok.WhitespaceBefore) + len(tok.Value) + 1
	for i, t := range tail {
		if i == 0 {
			width += len(t.Value)
			continue
		}
		width += sepWidth(tail[i-1], t) + len(t.Value)
	}
	return width
}

// clauseCount counts top-level comma-separated items in the tail.
func (f *formatter) clauseCount(tail []token.Token) int {
	count := 1
	depth := 0
	for _, t := range tail {
		switch {
		case t.Type == token.BLOCK_START:
			depth++
		case t.Type == token.BLOCK_END:
			depth--
		case t.Is(",") && depth == 0:
			count++
		}
	}
	return count
}

// ---------- Helpers ----------

func (f *formatter) isTabular() bool {
	return f.cfg.IndentStyle != IndentStandard
}

// show returns the token text with the configured casing applied.
func (f *formatter) show(tok token.Token) string {
	switch tok.Type {
	case token.RESERVED_COMMAND, token.RESERVED_BINARY_COMMAND,
		token.RESERVED_DEPENDENT_CLAUSE, token.RESERVED_JOIN_CONDITION,
		token.RESERVED_LOGICAL_OPERATOR, token.RESERVED_KEYWORD,
		token.RESERVED_CASE_START, token.RESERVED_CASE_END:
		return applyCase(tok.Value, f.cfg.KeywordCase)
	case token.RESERVED_FUNCTION_NAME:
		return applyCase(tok.Value, f.fallbackCase(f.cfg.FunctionCase))
	case token.RESERVED_DATA_TYPE, token.RESERVED_PARAMETERIZED_DATA_TYPE,
		token.ARRAY_KEYWORD:
		return applyCase(tok.Value, f.fallbackCase(f.cfg.DataTypeCase))
	case token.IDENT, token.ARRAY_IDENT:
		return applyCase(tok.Text, f.cfg.IdentifierCase)
	default:
		return tok.Text
	}
}

// showMarked wraps the shown text in tabular markers when a tabular style is
// active, for the padding sweep.
func (f *formatter) showMarked(tok token.Token) string {
	if f.isTabular() {
		return tabularMarker + f.show(tok) + tabularMarker
	}
	return f.show(tok)
}

// fallbackCase defers to keywordCase when a token class has no casing of its
// own, so keywordCase alone governs the whole reserved vocabulary.
func (f *formatter) fallbackCase(own CaseOption) CaseOption {
	if own == CasePreserve {
		return f.cfg.KeywordCase
	}
	return own
}

func applyCase(s string, c CaseOption) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseLower:
		return strings.ToLower(s)
	default:
		return s
	}
}

// lookBehind returns the raw token n positions back, or a zero token.
func (f *formatter) lookBehind(n int) token.Token {
	if f.index-n < 0 {
		return token.Token{}
	}
	return f.tokens[f.index-n]
}

// neighborNonComment returns the nearest non-comment token in the given
// direction from the current index.
func (f *formatter) neighborNonComment(dir int) (token.Token, bool) {
	for j := f.index + dir; j >= 0 && j < len(f.tokens); j += dir {
		if !f.tokens[j].IsComment() {
			return f.tokens[j], true
		}
	}
	return token.Token{}, false
}

func (f *formatter) nextNonCommentIs(text string) bool {
	next, ok := f.neighborNonComment(+1)
	return ok && next.Text == text
}
