package subnet

import "fmt"

// ValidationError reports which operand of a calculation was invalid.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CapacityError reports a request the IPv4 address space cannot satisfy.
type CapacityError struct {
	Prefix int
	Reason string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s (would need /%d)", e.Reason, e.Prefix)
}
