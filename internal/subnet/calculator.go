package subnet

import (
	"fmt"
	"math/bits"

	"github.com/rs/zerolog"

	"github.com/dotX12/subnetcalc/internal/ipv4"
)

// maxSubnetCount is the most members any block can be split into while
// keeping two host bits per member.
const maxSubnetCount = 1 << 30

// Calculator derives subnet facts and partitions address blocks. It holds no
// state beyond its logger and is safe for concurrent use.
type Calculator struct {
	logger zerolog.Logger
}

// NewCalculator creates a new calculator service.
func NewCalculator(logger zerolog.Logger) *Calculator {
	return &Calculator{
		logger: logger,
	}
}

// Describe computes the addressing facts for the block given by
// dotted-decimal address and mask text.
func (c *Calculator) Describe(addressText, maskText string) (*Info, error) {
	addr, mask, err := c.parseOperands(addressText, maskText)
	if err != nil {
		return nil, err
	}
	return c.describe(addr, mask), nil
}

// DescribeCIDR is Describe for a single CIDR string.
func (c *Calculator) DescribeCIDR(cidrText string) (*Info, error) {
	addr, mask, err := ipv4.ParseCIDR(cidrText)
	if err != nil {
		return nil, err
	}
	return c.describe(addr, mask), nil
}

// Partition splits the block into the smallest power-of-two count of
// equal-size subnets satisfying desiredCount.
func (c *Calculator) Partition(addressText, maskText string, desiredCount int) (*Result, error) {
	addr, mask, err := c.parseOperands(addressText, maskText)
	if err != nil {
		return nil, err
	}
	return c.partition(addr, mask, desiredCount)
}

// PartitionCIDR is Partition for a single CIDR string.
func (c *Calculator) PartitionCIDR(cidrText string, desiredCount int) (*Result, error) {
	addr, mask, err := ipv4.ParseCIDR(cidrText)
	if err != nil {
		return nil, err
	}
	return c.partition(addr, mask, desiredCount)
}

// MaskForHosts returns the longest mask whose block still fits requiredHosts
// usable addresses, reserving the network and broadcast addresses.
func (c *Calculator) MaskForHosts(requiredHosts int64) (ipv4.Mask, error) {
	if requiredHosts < 1 {
		return 0, &ipv4.RangeError{Param: "host count", Value: int(requiredHosts), Min: 1, Max: 1<<32 - 2}
	}

	// hostBits = ceil(log2(requiredHosts + 2))
	hostBits := bits.Len64(uint64(requiredHosts + 1))
	prefix := 32 - hostBits
	if prefix < 0 {
		return 0, &CapacityError{
			Prefix: prefix,
			Reason: fmt.Sprintf("%d hosts exceed the IPv4 address space", requiredHosts),
		}
	}

	mask, err := ipv4.MaskFromPrefix(prefix)
	if err != nil {
		return 0, err
	}

	c.logger.Debug().
		Int64("hosts", requiredHosts).
		Int("prefix", prefix).
		Str("mask", mask.String()).
		Msg("Computed mask for host count")

	return mask, nil
}

// parseOperands validates the address/mask pair, naming the offending
// operand on failure. The mask must describe a single prefix.
func (c *Calculator) parseOperands(addressText, maskText string) (ipv4.Address, ipv4.Mask, error) {
	addr, err := ipv4.Parse(addressText)
	if err != nil {
		return 0, 0, &ValidationError{Field: "address", Err: err}
	}

	mask, err := ipv4.ParseMask(maskText)
	if err != nil {
		return 0, 0, &ValidationError{Field: "mask", Err: err}
	}
	if !mask.IsContiguous() {
		return 0, 0, &ValidationError{Field: "mask", Err: fmt.Errorf("mask %s does not have contiguous set bits", mask)}
	}

	return addr, mask, nil
}

func (c *Calculator) describe(addr ipv4.Address, mask ipv4.Mask) *Info {
	prefix := mask.PrefixLength()
	network := addr & ipv4.Address(mask)
	broadcast := network | mask.Wildcard()

	info := &Info{
		NetworkAddress:   network,
		Mask:             mask,
		CIDR:             fmt.Sprintf("%s/%d", network, prefix),
		WildcardMask:     mask.Wildcard(),
		FirstHost:        network.Offset(1),
		LastHost:         broadcast.Offset(-1),
		BroadcastAddress: broadcast,
		NumberOfHosts:    hostCount(prefix),
		NumberOfSubnets:  classfulSubnetCount(network, prefix),
	}

	c.logger.Debug().
		Str("cidr", info.CIDR).
		Str("broadcast", broadcast.String()).
		Uint64("hosts", info.NumberOfHosts).
		Msg("Derived subnet info")

	return info
}

func (c *Calculator) partition(addr ipv4.Address, mask ipv4.Mask, desiredCount int) (*Result, error) {
	if desiredCount < 1 {
		return nil, &ipv4.RangeError{Param: "subnet count", Value: desiredCount, Min: 1, Max: maxSubnetCount}
	}

	info := c.describe(addr, mask)
	prefix := mask.PrefixLength()

	// additionalBits = ceil(log2(desiredCount))
	additionalBits := bits.Len(uint(desiredCount - 1))
	newPrefix := prefix + additionalBits
	if newPrefix > 30 {
		return nil, &CapacityError{
			Prefix: newPrefix,
			Reason: fmt.Sprintf("cannot split a /%d block into %d subnets", prefix, desiredCount),
		}
	}

	actualCount := 1 << additionalBits
	blockSize := int64(1) << (32 - newPrefix)

	members := make([]Detail, 0, actualCount)
	for i := 0; i < actualCount; i++ {
		network := info.NetworkAddress.Offset(int64(i) * blockSize)
		broadcast := network.Offset(blockSize - 1)
		members = append(members, Detail{
			Index:            i + 1,
			NetworkAddress:   network,
			HostRange:        fmt.Sprintf("%s - %s", network.Offset(1), broadcast.Offset(-1)),
			BroadcastAddress: broadcast,
		})
	}

	c.logger.Debug().
		Str("cidr", info.CIDR).
		Int("requested", desiredCount).
		Int("actual", actualCount).
		Int("new_prefix", newPrefix).
		Msg("Partitioned block")

	return &Result{Info: info, Subnets: members}, nil
}

// hostCount returns the usable host addresses for a prefix. A /31 keeps both
// addresses (point-to-point) and a /32 is a single host route.
func hostCount(prefix int) uint64 {
	switch {
	case prefix >= 32:
		return 1
	case prefix == 31:
		return 2
	default:
		return (uint64(1) << (32 - prefix)) - 2
	}
}

// classfulSubnetCount reproduces the legacy "number of subnets" figure: the
// block is assumed to have been carved from its classful /8, /16 or /24
// parent by leading octet. Masks shorter than the classful default clamp
// to 1.
func classfulSubnetCount(network ipv4.Address, prefix int) uint64 {
	first := network.Octets()[0]
	origin := 24
	switch {
	case first < 128:
		origin = 8
	case first < 192:
		origin = 16
	}

	if prefix <= origin {
		return 1
	}
	return uint64(1) << (prefix - origin)
}
