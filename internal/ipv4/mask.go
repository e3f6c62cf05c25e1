package ipv4

import "math/bits"

// Mask is a subnet mask in 32-bit integer form.
type Mask Address

// MaskFromPrefix builds the mask whose top prefix bits are set.
func MaskFromPrefix(prefix int) (Mask, error) {
	if prefix < 0 || prefix > 32 {
		return 0, &RangeError{Param: "prefix length", Value: prefix, Min: 0, Max: 32}
	}
	return Mask(^uint32(0) << (32 - prefix)), nil
}

// ParseMask converts dotted-decimal mask text to a Mask. Syntax only; use
// IsContiguous to check the result describes a single prefix.
func ParseMask(text string) (Mask, error) {
	addr, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return Mask(addr), nil
}

// PrefixLength counts the set bits of the mask. It does not require the bits
// to be contiguous; a mask like 255.0.255.0 yields 16.
func (m Mask) PrefixLength() int {
	return bits.OnesCount32(uint32(m))
}

// IsContiguous reports whether the mask corresponds to exactly one CIDR
// prefix length, i.e. every set bit precedes every clear bit.
func (m Mask) IsContiguous() bool {
	v := uint32(m)
	return v|(v-1) == ^uint32(0)
}

// Wildcard returns the bitwise complement of the mask.
func (m Mask) Wildcard() Address {
	return Address(^uint32(m))
}

// Address returns the mask as a plain address value.
func (m Mask) Address() Address {
	return Address(m)
}

// String renders the canonical dotted-decimal form.
func (m Mask) String() string {
	return Address(m).String()
}
