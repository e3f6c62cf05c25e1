package ipv4

import "fmt"

// FormatError reports malformed address, mask or CIDR text.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid IPv4 text %q: %s", e.Input, e.Reason)
}

// RangeError reports a numeric parameter outside its valid domain.
type RangeError struct {
	Param string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d,%d]", e.Param, e.Value, e.Min, e.Max)
}
