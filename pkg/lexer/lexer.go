// Package lexer tokenizes SQL input for the formatter.
//
// The lexer is total: any input produces a token stream ending in EOF, with
// unrecognized punctuation falling back to single-character operator tokens.
// Each token carries the literal whitespace run that preceded it, so the
// original input can be reconstructed from the stream.
package lexer

import (
	"strings"

	"github.com/aka-chestnut/sql-formatter/pkg/dialect"
	"github.com/aka-chestnut/sql-formatter/pkg/token"
)

// maxReservedWords bounds multi-word keyword lookahead (LEFT OUTER JOIN = 3).
const maxReservedWords = 4

// Lexer tokenizes SQL input against a dialect definition.
type Lexer struct {
	input   string
	pos     int // index of the next unread byte
	dialect *dialect.Dialect

	// Category of the last non-comment token, used to decide whether a
	// leading sign starts a number or is an operator.
	prevType token.TokenType
	started  bool
}

// New creates a Lexer for the given input and dialect.
func New(input string, d *dialect.Dialect) *Lexer {
	return &Lexer{input: input, dialect: d}
}

// Tokenize runs the lexer over the whole input.
func Tokenize(input string, d *dialect.Dialect) []token.Token {
	l := New(input, d)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

// NextToken returns the next token. After EOF it keeps returning EOF.
func (l *Lexer) NextToken() token.Token {
	ws := l.readWhitespace()
	start := l.pos

	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, WhitespaceBefore: ws, Start: start}
	}

	tok := l.scanToken()
	tok.WhitespaceBefore = ws
	tok.Start = start
	if !tok.IsComment() {
		l.prevType = tok.Type
		l.started = true
	}
	return tok
}

// scanToken applies the match rules in declared order and commits to the
// first that matches.
func (l *Lexer) scanToken() token.Token {
	if tok, ok := l.matchLineComment(); ok {
		return tok
	}
	if tok, ok := l.matchBlockComment(); ok {
		return tok
	}
	if tok, ok := l.matchString(); ok {
		return tok
	}
	if tok, ok := l.matchQuotedIdent(); ok {
		return tok
	}
	if tok, ok := l.matchWord(); ok {
		return tok
	}
	if tok, ok := l.matchPlaceholder(); ok {
		return tok
	}
	if tok, ok := l.matchVariable(); ok {
		return tok
	}
	if tok, ok := l.matchNumber(); ok {
		return tok
	}
	return l.matchOperator()
}

func (l *Lexer) readWhitespace() string {
	start := l.pos
	for l.pos < len(l.input) && isWhitespace(l.input[l.pos]) {
		l.pos++
	}
	return l.input[start:l.pos]
}

func (l *Lexer) rest() string {
	return l.input[l.pos:]
}

func (l *Lexer) take(n int) string {
	s := l.input[l.pos : l.pos+n]
	l.pos += n
	return s
}

// ---------- Comments ----------

func (l *Lexer) matchLineComment() (token.Token, bool) {
	for _, prefix := range l.dialect.LineCommentPrefixes() {
		if strings.HasPrefix(l.rest(), prefix) {
			end := strings.IndexByte(l.rest(), '\n')
			if end < 0 {
				end = len(l.rest())
			}
			text := l.take(end)
			return token.Token{Type: token.LINE_COMMENT, Text: text, Value: text}, true
		}
	}
	return token.Token{}, false
}

func (l *Lexer) matchBlockComment() (token.Token, bool) {
	if !strings.HasPrefix(l.rest(), "/*") {
		return token.Token{}, false
	}
	end := strings.Index(l.rest()[2:], "*/")
	var n int
	if end < 0 {
		n = len(l.rest()) // unterminated comment runs to EOF
	} else {
		n = 2 + end + 2
	}
	text := l.take(n)
	return token.Token{Type: token.BLOCK_COMMENT, Text: text, Value: text}, true
}

// ---------- Strings ----------

func (l *Lexer) matchString() (token.Token, bool) {
	r := l.rest()

	// Letter-prefixed strings: X'ff', B'01', N'text', E'\n'
	if l.dialect.HasStringStyle(dialect.PrefixedString) && len(r) >= 2 {
		for _, p := range l.dialect.StringPrefixes() {
			if strings.EqualFold(r[:1], p) && (r[1] == '\'' || r[1] == '"') {
				n := 1 + scanQuoted(r[1:], r[1], true)
				text := l.take(n)
				return token.Token{Type: token.STRING, Text: text, Value: text}, true
			}
		}
	}

	// Dollar-tagged strings: $$body$$, $tag$body$tag$
	if l.dialect.HasStringStyle(dialect.DollarString) && r[0] == '$' {
		if n, ok := scanDollarString(r); ok {
			text := l.take(n)
			return token.Token{Type: token.STRING, Text: text, Value: text}, true
		}
	}

	if l.dialect.HasStringStyle(dialect.SingleQuoteString) && r[0] == '\'' {
		n := scanQuoted(r, '\'', true)
		text := l.take(n)
		return token.Token{Type: token.STRING, Text: text, Value: text}, true
	}
	if l.dialect.HasStringStyle(dialect.DoubleQuoteString) && r[0] == '"' {
		n := scanQuoted(r, '"', true)
		text := l.take(n)
		return token.Token{Type: token.STRING, Text: text, Value: text}, true
	}
	if l.dialect.HasStringStyle(dialect.BacktickString) && r[0] == '`' {
		n := scanQuoted(r, '`', false)
		text := l.take(n)
		return token.Token{Type: token.STRING, Text: text, Value: text}, true
	}
	if l.dialect.HasStringStyle(dialect.BraceString) && r[0] == '{' {
		end := strings.IndexByte(r, '}')
		n := len(r)
		if end >= 0 {
			n = end + 1
		}
		text := l.take(n)
		return token.Token{Type: token.STRING, Text: text, Value: text}, true
	}
	return token.Token{}, false
}

// scanQuoted returns the length of a quoted run starting at s[0] == quote.
// Doubled quotes always escape; backslash escapes are honored when
// backslashes is true. An unterminated literal runs to end of input.
func scanQuoted(s string, quote byte, backslashes bool) int {
	i := 1
	for i < len(s) {
		switch {
		case backslashes && s[i] == '\\' && i+1 < len(s):
			i += 2
		case s[i] == quote:
			if i+1 < len(s) && s[i+1] == quote {
				i += 2 // doubled-quote escape
				continue
			}
			return i + 1
		default:
			i++
		}
	}
	return len(s)
}

// scanDollarString matches $tag$ ... $tag$ and returns its full length.
func scanDollarString(s string) (int, bool) {
	if s[0] != '$' {
		return 0, false
	}
	// The tag is empty or starts with a letter/underscore ($$ or $tag$).
	i := 1
	if i < len(s) && (isLetterByte(s[i]) || s[i] == '_') {
		for i < len(s) && (isLetterByte(s[i]) || isDigitByte(s[i]) || s[i] == '_') {
			i++
		}
	}
	if i >= len(s) || s[i] != '$' {
		return 0, false
	}
	opener := s[:i+1]
	end := strings.Index(s[i+1:], opener)
	if end < 0 {
		return len(s), true // unterminated, runs to EOF
	}
	return i + 1 + end + len(opener), true
}

// ---------- Quoted identifiers ----------

func (l *Lexer) matchQuotedIdent() (token.Token, bool) {
	r := l.rest()
	switch {
	case l.dialect.HasIdentStyle(dialect.DoubleQuoteIdent) && r[0] == '"':
		n := scanQuoted(r, '"', false)
		text := l.take(n)
		return token.Token{Type: token.QUOTED_IDENT, Text: text, Value: stripWrapper(text, `"`)}, true
	case l.dialect.HasIdentStyle(dialect.BacktickIdent) && r[0] == '`':
		n := scanQuoted(r, '`', false)
		text := l.take(n)
		return token.Token{Type: token.QUOTED_IDENT, Text: text, Value: stripWrapper(text, "`")}, true
	case l.dialect.HasIdentStyle(dialect.BracketIdent) && r[0] == '[':
		end := strings.IndexByte(r, ']')
		if end < 0 {
			return token.Token{}, false // bare [ is a block start
		}
		text := l.take(end + 1)
		return token.Token{Type: token.QUOTED_IDENT, Text: text, Value: strings.TrimSuffix(strings.TrimPrefix(text, "["), "]")}, true
	}
	return token.Token{}, false
}

func stripWrapper(s, q string) string {
	s = strings.TrimPrefix(s, q)
	if strings.HasSuffix(s, q) {
		s = s[:len(s)-len(q)]
	}
	return s
}

// ---------- Words: reserved phrases, CASE/END, identifiers ----------

func (l *Lexer) matchWord() (token.Token, bool) {
	special := l.dialect.SpecialWordChars()
	if !isWordStart(l.input[l.pos], special) {
		return token.Token{}, false
	}

	// Collect up to maxReservedWords words ahead without committing.
	type wordSpan struct{ start, end int }
	var spans []wordSpan
	p := l.pos
	for len(spans) < maxReservedWords {
		start := p
		for p < len(l.input) && isWordChar(l.input[p], special) {
			p++
		}
		spans = append(spans, wordSpan{start, p})
		// Lookahead is only worth it when the first word can open a
		// reserved phrase.
		if !l.dialect.HasReservedPrefix(strings.ToUpper(l.input[spans[0].start:spans[0].end])) {
			break
		}
		q := p
		for q < len(l.input) && isWhitespace(l.input[q]) {
			q++
		}
		if q >= len(l.input) || q == p || !isWordStart(l.input[q], special) {
			break
		}
		p = q
	}

	words := make([]string, len(spans))
	for i, sp := range spans {
		words[i] = strings.ToUpper(l.input[sp.start:sp.end])
	}

	// CASE and END carry their own categories in every dialect.
	switch words[0] {
	case "CASE":
		text := l.take(spans[0].end - l.pos)
		return token.Token{Type: token.RESERVED_CASE_START, Text: text, Value: text}, true
	case "END":
		text := l.take(spans[0].end - l.pos)
		return token.Token{Type: token.RESERVED_CASE_END, Text: text, Value: text}, true
	}

	if n, typ := l.dialect.MatchReserved(words); n > 0 {
		text := l.input[l.pos:spans[n-1].end]
		l.pos = spans[n-1].end
		return token.Token{Type: typ, Text: text, Value: collapseWhitespace(text)}, true
	}

	text := l.take(spans[0].end - l.pos)
	return token.Token{Type: token.IDENT, Text: text, Value: text}, true
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ---------- Placeholders and variables ----------

func (l *Lexer) matchPlaceholder() (token.Token, bool) {
	r := l.rest()
	for _, spec := range l.dialect.Placeholders() {
		if !strings.HasPrefix(r, spec.Prefix) {
			continue
		}
		body := r[len(spec.Prefix):]
		switch {
		case spec.Numbered && len(body) > 0 && isDigitByte(body[0]):
			n := 0
			for n < len(body) && isDigitByte(body[n]) {
				n++
			}
			text := l.take(len(spec.Prefix) + n)
			return token.Token{Type: token.PLACEHOLDER, Text: text, Value: text[len(spec.Prefix):]}, true
		case spec.Named && len(body) > 0 && isWordStart(body[0], ""):
			n := 0
			for n < len(body) && isWordChar(body[n], "") {
				n++
			}
			text := l.take(len(spec.Prefix) + n)
			return token.Token{Type: token.PLACEHOLDER, Text: text, Value: text[len(spec.Prefix):]}, true
		case spec.Quoted && len(body) > 0 && (body[0] == '"' || body[0] == '\'' || body[0] == '`'):
			n := scanQuoted(body, body[0], false)
			text := l.take(len(spec.Prefix) + n)
			return token.Token{Type: token.PLACEHOLDER, Text: text, Value: stripWrapper(text[len(spec.Prefix):], string(body[0]))}, true
		case spec.Bare:
			text := l.take(len(spec.Prefix))
			return token.Token{Type: token.PLACEHOLDER, Text: text, Value: ""}, true
		}
	}
	return token.Token{}, false
}

func (l *Lexer) matchVariable() (token.Token, bool) {
	r := l.rest()
	// Longer prefixes first (@@ before @)
	specs := l.dialect.Variables()
	best := -1
	for i, spec := range specs {
		if strings.HasPrefix(r, spec.Prefix) {
			if best < 0 || len(spec.Prefix) > len(specs[best].Prefix) {
				best = i
			}
		}
	}
	if best < 0 {
		return token.Token{}, false
	}
	spec := specs[best]
	body := r[len(spec.Prefix):]
	switch {
	case spec.Quoted && len(body) > 0 && (body[0] == '"' || body[0] == '\'' || body[0] == '`'):
		n := scanQuoted(body, body[0], false)
		text := l.take(len(spec.Prefix) + n)
		return token.Token{Type: token.VARIABLE, Text: text, Value: text}, true
	case len(body) > 0 && isWordStart(body[0], ""):
		n := 0
		for n < len(body) && isWordChar(body[n], "") {
			n++
		}
		text := l.take(len(spec.Prefix) + n)
		return token.Token{Type: token.VARIABLE, Text: text, Value: text}, true
	}
	return token.Token{}, false
}

// ---------- Numbers ----------

func (l *Lexer) matchNumber() (token.Token, bool) {
	r := l.rest()
	i := 0

	// Leading sign only when the previous token cannot end an expression.
	if (r[0] == '-' || r[0] == '+') && l.signAllowed() {
		if len(r) > 1 && (isDigitByte(r[1]) || (r[1] == '.' && len(r) > 2 && isDigitByte(r[2]))) {
			i = 1
		} else {
			return token.Token{}, false
		}
	}
	if i >= len(r) || !(isDigitByte(r[i]) || (r[i] == '.' && i+1 < len(r) && isDigitByte(r[i+1]))) {
		return token.Token{}, false
	}

	// Hex / binary literals
	if r[i] == '0' && i+2 < len(r) && (r[i+1] == 'x' || r[i+1] == 'X' || r[i+1] == 'b' || r[i+1] == 'B') && isHexByte(r[i+2]) {
		j := i + 2
		for j < len(r) && isHexByte(r[j]) {
			j++
		}
		text := l.take(j)
		return token.Token{Type: token.NUMBER, Text: text, Value: text}, true
	}

	j := i
	for j < len(r) && isDigitByte(r[j]) {
		j++
	}
	if j < len(r) && r[j] == '.' {
		j++
		for j < len(r) && isDigitByte(r[j]) {
			j++
		}
	}
	if j < len(r) && (r[j] == 'e' || r[j] == 'E') {
		k := j + 1
		if k < len(r) && (r[k] == '+' || r[k] == '-') {
			k++
		}
		if k < len(r) && isDigitByte(r[k]) {
			for k < len(r) && isDigitByte(r[k]) {
				k++
			}
			j = k
		}
	}
	text := l.take(j)
	return token.Token{Type: token.NUMBER, Text: text, Value: text}, true
}

// signAllowed reports whether a +/- at the current position can open a
// number. It can unless the previous token could end an expression.
func (l *Lexer) signAllowed() bool {
	if !l.started {
		return true
	}
	switch l.prevType {
	case token.IDENT, token.QUOTED_IDENT, token.ARRAY_IDENT, token.NUMBER,
		token.STRING, token.VARIABLE, token.PLACEHOLDER, token.BLOCK_END:
		return false
	}
	return true
}

// ---------- Operators ----------

func (l *Lexer) matchOperator() token.Token {
	r := l.rest()

	// Dialect multi-character operators, longest first.
	for _, op := range l.dialect.Operators() {
		if strings.HasPrefix(r, op) {
			text := l.take(len(op))
			return token.Token{Type: token.OPERATOR, Text: text, Value: text}
		}
	}

	switch r[0] {
	case '(', '[', '{':
		text := l.take(1)
		return token.Token{Type: token.BLOCK_START, Text: text, Value: text}
	case ')', ']', '}':
		text := l.take(1)
		return token.Token{Type: token.BLOCK_END, Text: text, Value: text}
	case '.':
		text := l.take(1)
		return token.Token{Type: token.PROPERTY_ACCESS_OPERATOR, Text: text, Value: text}
	}

	// Fallback: one character as operator.
	text := l.take(1)
	return token.Token{Type: token.OPERATOR, Text: text, Value: text}
}

// ---------- Character classes ----------

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigitByte(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexByte(ch byte) bool {
	return isDigitByte(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isLetterByte(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= 0x80
}

func isWordStart(ch byte, special string) bool {
	return isLetterByte(ch) || ch == '_' || strings.IndexByte(special, ch) >= 0
}

func isWordChar(ch byte, special string) bool {
	return isLetterByte(ch) || isDigitByte(ch) || ch == '_' || ch == '$' ||
		strings.IndexByte(special, ch) >= 0
}
