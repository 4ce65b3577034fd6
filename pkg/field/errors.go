package field

import "fmt"

// errUnknownComponent builds the error returned when Evaluate is asked for a component
// kernel.Lookup does not recognize.
func errUnknownComponent(name string) error {
	return fmt.Errorf("field: unknown component %q", name)
}
