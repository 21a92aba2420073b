package taxonomy

import "fmt"

// ConfigError reports a required configuration field that was unset when
// registration was attempted. Name is the best available identity of the
// offending taxonomy (its key when set, otherwise a display name).
type ConfigError struct {
	Name  string
	Field string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("taxonomy %q: required field %q is not set", e.Name, e.Field)
}
