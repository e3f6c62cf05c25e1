package ipv4

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is an IPv4 address held as its 32-bit integer value. The integer,
// dotted-decimal and per-octet forms are always interchangeable.
type Address uint32

// FromOctets builds an Address from four octets, most significant first.
func FromOctets(a, b, c, d byte) Address {
	return Address(uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d))
}

// Parse converts dotted-decimal text to an Address. The text must be exactly
// four decimal groups in [0,255] separated by dots.
func Parse(text string) (Address, error) {
	groups := strings.Split(text, ".")
	if len(groups) != 4 {
		return 0, &FormatError{Input: text, Reason: "expected four dot-separated groups"}
	}

	var addr uint32
	for _, group := range groups {
		octet, err := strconv.ParseUint(group, 10, 8)
		if err != nil {
			return 0, &FormatError{Input: text, Reason: fmt.Sprintf("octet %q is not a decimal number in [0,255]", group)}
		}
		addr = addr<<8 | uint32(octet)
	}

	return Address(addr), nil
}

// MustParse is Parse for trusted literals; it panics on malformed input.
func MustParse(text string) Address {
	addr, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return addr
}

// Octets returns the four octets, most significant first.
func (a Address) Octets() [4]byte {
	return [4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}
}

// String renders the canonical dotted-decimal form.
func (a Address) String() string {
	o := a.Octets()
	return fmt.Sprintf("%d.%d.%d.%d", o[0], o[1], o[2], o[3])
}

// Binary renders the address as four dot-separated 8-bit binary groups.
func (a Address) Binary() string {
	o := a.Octets()
	return fmt.Sprintf("%08b.%08b.%08b.%08b", o[0], o[1], o[2], o[3])
}

// Offset returns the address delta positions away. Arithmetic is unsigned
// 32-bit modular: negative deltas wrap below 0.0.0.0 to the high end of the
// address space and large deltas wrap above 255.255.255.255 to the low end.
func (a Address) Offset(delta int64) Address {
	return Address(uint32(int64(a) + delta))
}

// IsValidAddress reports whether text is a well-formed dotted-decimal address.
func IsValidAddress(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// IsValidCIDR reports whether text is a well-formed address/prefix pair with
// the prefix in [0,32].
func IsValidCIDR(text string) bool {
	_, _, err := ParseCIDR(text)
	return err == nil
}

// ParseCIDR splits CIDR text into its address and prefix mask.
func ParseCIDR(text string) (Address, Mask, error) {
	addrText, prefixText, found := strings.Cut(text, "/")
	if !found {
		return 0, 0, &FormatError{Input: text, Reason: "missing '/' prefix separator"}
	}

	addr, err := Parse(addrText)
	if err != nil {
		return 0, 0, err
	}

	prefix, err := strconv.Atoi(prefixText)
	if err != nil {
		return 0, 0, &FormatError{Input: text, Reason: fmt.Sprintf("prefix %q is not an integer", prefixText)}
	}

	mask, err := MaskFromPrefix(prefix)
	if err != nil {
		return 0, 0, err
	}

	return addr, mask, nil
}
