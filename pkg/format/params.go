package format

import (
	"strconv"

	"github.com/aka-chestnut/sql-formatter/pkg/token"
)

// Params supplies values for placeholder tokens. Positional values are
// consumed in order by bare placeholders ("?"); keyed values resolve numbered
// ("$1", "?2") and named (":name", "@name") placeholders. The formatter never
// modifies the supplied values, but a Params value is not safe for use by two
// formatters at once because positional consumption advances an index.
type Params struct {
	positional []string
	named      map[string]string
	index      int
}

// PositionalParams returns params consumed in order by bare placeholders.
// Numbered placeholders index into the same list (1-based).
func PositionalParams(values ...string) *Params {
	return &Params{positional: values}
}

// NamedParams returns params resolved by placeholder name or number.
func NamedParams(values map[string]string) *Params {
	return &Params{named: values}
}

// resolve returns the replacement text for a placeholder token. A nil receiver
// leaves the token unchanged. Unresolvable placeholders fail.
func (p *Params) resolve(tok token.Token) (string, error) {
	if p == nil {
		return tok.Text, nil
	}
	key := tok.Value
	if key == "" {
		// Bare positional placeholder
		if p.index < len(p.positional) {
			v := p.positional[p.index]
			p.index++
			return v, nil
		}
		return "", &PlaceholderError{Placeholder: tok.Text}
	}
	if v, ok := p.named[key]; ok {
		return v, nil
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(p.positional) {
		return p.positional[n-1], nil
	}
	return "", &PlaceholderError{Placeholder: tok.Text}
}

// reset rewinds positional consumption (used between format runs).
func (p *Params) reset() {
	if p != nil {
		p.index = 0
	}
}
