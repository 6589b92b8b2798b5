package config

import (
	"strings"

	"github.com/aka-chestnut/sql-formatter/pkg/format"
)

// Config mirrors format.Options with koanf-friendly scalar fields so it can
// be layered from file, environment and flags.
type Config struct {
	Language string `koanf:"language"`

	TabWidth int  `koanf:"tab_width"`
	UseTabs  bool `koanf:"use_tabs"`

	KeywordCase    string `koanf:"keyword_case"`
	IdentifierCase string `koanf:"identifier_case"`
	FunctionCase   string `koanf:"function_case"`
	DataTypeCase   string `koanf:"data_type_case"`

	IndentStyle            string `koanf:"indent_style"`
	LogicalOperatorNewline string `koanf:"logical_operator_newline"`

	ExpressionWidth     int `koanf:"expression_width"`
	LinesBetweenQueries int `koanf:"lines_between_queries"`

	DenseOperators          bool `koanf:"dense_operators"`
	NewlineBeforeSemicolon  bool `koanf:"newline_before_semicolon"`
	NewlineBeforeOpenParen  bool `koanf:"newline_before_open_paren"`
	NewlineBeforeCloseParen bool `koanf:"newline_before_close_paren"`
	TabulateAlias           bool `koanf:"tabulate_alias"`

	CommaPosition  string `koanf:"comma_position"`
	MultilineLists string `koanf:"multiline_lists"`
	AliasAs        string `koanf:"alias_as"`

	// Params hold placeholder values: "name=value" entries resolve named
	// placeholders, bare entries are consumed positionally.
	Params []string `koanf:"params"`

	Verbose bool `koanf:"verbose"`
}

// knownKeys is the closed set of config file keys; anything else fails.
var knownKeys = map[string]struct{}{
	"language":                   {},
	"tab_width":                  {},
	"use_tabs":                   {},
	"keyword_case":               {},
	"identifier_case":            {},
	"function_case":              {},
	"data_type_case":             {},
	"indent_style":               {},
	"logical_operator_newline":   {},
	"expression_width":           {},
	"lines_between_queries":      {},
	"dense_operators":            {},
	"newline_before_semicolon":   {},
	"newline_before_open_paren":  {},
	"newline_before_close_paren": {},
	"tabulate_alias":             {},
	"comma_position":             {},
	"multiline_lists":            {},
	"alias_as":                   {},
	"params":                     {},
	"verbose":                    {},
}

// Options converts the config into a validated format.Options.
func (c *Config) Options() (format.Options, error) {
	opts := format.DefaultOptions()
	opts.Language = c.Language
	opts.TabWidth = c.TabWidth
	opts.UseTabs = c.UseTabs
	opts.KeywordCase = format.CaseOption(c.KeywordCase)
	opts.IdentifierCase = format.CaseOption(c.IdentifierCase)
	opts.FunctionCase = format.CaseOption(c.FunctionCase)
	opts.DataTypeCase = format.CaseOption(c.DataTypeCase)
	opts.IndentStyle = format.IndentStyle(c.IndentStyle)
	opts.LogicalOperatorNewline = format.LogicalOperatorNewline(c.LogicalOperatorNewline)
	opts.ExpressionWidth = c.ExpressionWidth
	opts.LinesBetweenQueries = c.LinesBetweenQueries
	opts.DenseOperators = c.DenseOperators
	opts.NewlineBeforeSemicolon = c.NewlineBeforeSemicolon
	opts.NewlineBeforeOpenParen = c.NewlineBeforeOpenParen
	opts.NewlineBeforeCloseParen = c.NewlineBeforeCloseParen
	opts.TabulateAlias = c.TabulateAlias
	opts.CommaPosition = format.CommaPosition(c.CommaPosition)
	opts.MultilineLists = format.MultilineLists(c.MultilineLists)
	opts.AliasAs = format.AliasAs(c.AliasAs)
	opts.Params = buildParams(c.Params)
	if err := opts.Validate(); err != nil {
		return format.Options{}, err
	}
	return opts, nil
}

// buildParams splits "name=value" entries from positional ones. Mixed input
// resolves named placeholders from the map and bare ones positionally is not
// supported; named entries win when any are present.
func buildParams(entries []string) *format.Params {
	if len(entries) == 0 {
		return nil
	}
	named := make(map[string]string)
	var positional []string
	for _, e := range entries {
		if key, value, ok := strings.Cut(e, "="); ok && key != "" {
			named[key] = value
			continue
		}
		positional = append(positional, e)
	}
	if len(named) > 0 {
		return format.NamedParams(named)
	}
	return format.PositionalParams(positional...)
}
