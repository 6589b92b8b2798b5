package format

import "fmt"

// ConfigError reports an invalid formatting option: an unknown dialect tag,
// an out-of-range numeric, or a bad enum value.
type ConfigError struct {
	Option  string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Option, e.Message)
}

// InputError reports an unusable query, such as one over the size limit.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// PlaceholderError reports a placeholder token that could not be resolved
// from the supplied params.
type PlaceholderError struct {
	Placeholder string
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("no value supplied for placeholder %s", e.Placeholder)
}
