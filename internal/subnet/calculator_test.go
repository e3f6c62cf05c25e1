package subnet

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotX12/subnetcalc/internal/ipv4"
)

func newTestCalculator() *Calculator {
	return NewCalculator(zerolog.Nop())
}

func TestDescribeCIDR(t *testing.T) {
	calc := newTestCalculator()

	info, err := calc.DescribeCIDR("192.168.1.0/24")
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.0/24", info.CIDR)
	assert.Equal(t, "192.168.1.0", info.NetworkAddress.String())
	assert.Equal(t, "255.255.255.0", info.Mask.String())
	assert.Equal(t, "0.0.0.255", info.WildcardMask.String())
	assert.Equal(t, "192.168.1.255", info.BroadcastAddress.String())
	assert.Equal(t, "192.168.1.1", info.FirstHost.String())
	assert.Equal(t, "192.168.1.254", info.LastHost.String())
	assert.Equal(t, uint64(254), info.NumberOfHosts)
}

func TestDescribeMasksHostBits(t *testing.T) {
	calc := newTestCalculator()

	info, err := calc.Describe("192.168.1.57", "255.255.255.0")
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.0", info.NetworkAddress.String())
	assert.Equal(t, "192.168.1.255", info.BroadcastAddress.String())

	// network <= address <= broadcast, and masking is idempotent
	addr := ipv4.MustParse("192.168.1.57")
	assert.LessOrEqual(t, uint32(info.NetworkAddress), uint32(addr))
	assert.LessOrEqual(t, uint32(addr), uint32(info.BroadcastAddress))
	assert.Equal(t, info.NetworkAddress, info.NetworkAddress&ipv4.Address(info.Mask))
}

func TestDescribeValidation(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.Describe("999.1.1.1", "255.255.255.0")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "address", valErr.Field)

	_, err = calc.Describe("10.0.0.0", "255.255.255")
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "mask", valErr.Field)

	_, err = calc.Describe("10.0.0.0", "255.0.255.0")
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "mask", valErr.Field)
}

func TestHostCountBoundaries(t *testing.T) {
	assert.Equal(t, uint64(2), hostCount(30))
	assert.Equal(t, uint64(2), hostCount(31))
	assert.Equal(t, uint64(1), hostCount(32))
	assert.Equal(t, uint64(254), hostCount(24))
	assert.Equal(t, uint64(1<<32-2), hostCount(0))
}

func TestClassfulSubnetCount(t *testing.T) {
	calc := newTestCalculator()

	// 10.x -> classful /8, prefix 24 -> 2^16 subnets
	info, err := calc.DescribeCIDR("10.1.2.0/24")
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<16), info.NumberOfSubnets)

	// 172.16.x -> classful /16, prefix 20 -> 2^4 subnets
	info, err = calc.DescribeCIDR("172.16.0.0/20")
	require.NoError(t, err)
	assert.Equal(t, uint64(16), info.NumberOfSubnets)

	// 192.168.x -> classful /24, prefix 24 -> clamps to 1
	info, err = calc.DescribeCIDR("192.168.1.0/24")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.NumberOfSubnets)

	// mask shorter than the classful default clamps to 1
	info, err = calc.DescribeCIDR("10.0.0.0/6")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.NumberOfSubnets)
}

func TestPartitionSixteen(t *testing.T) {
	calc := newTestCalculator()

	result, err := calc.Partition("10.0.0.0", "255.255.0.0", 16)
	require.NoError(t, err)
	require.Len(t, result.Subnets, 16)

	// /16 + 4 bits -> /20, members of 4096 addresses each
	assert.Equal(t, "10.0.0.0", result.Subnets[0].NetworkAddress.String())
	assert.Equal(t, "10.0.15.255", result.Subnets[0].BroadcastAddress.String())
	assert.Equal(t, "10.0.0.1 - 10.0.15.254", result.Subnets[0].HostRange)
	assert.Equal(t, "10.0.16.0", result.Subnets[1].NetworkAddress.String())
	assert.Equal(t, "10.0.240.0", result.Subnets[15].NetworkAddress.String())

	for i, member := range result.Subnets {
		assert.Equal(t, i+1, member.Index)
	}
}

func TestPartitionRoundsUpToPowerOfTwo(t *testing.T) {
	calc := newTestCalculator()

	result, err := calc.PartitionCIDR("192.168.0.0/24", 5)
	require.NoError(t, err)
	assert.Len(t, result.Subnets, 8)
}

func TestPartitionSingleMember(t *testing.T) {
	calc := newTestCalculator()

	result, err := calc.PartitionCIDR("192.168.1.0/24", 1)
	require.NoError(t, err)
	require.Len(t, result.Subnets, 1)
	assert.Equal(t, result.Info.NetworkAddress, result.Subnets[0].NetworkAddress)
	assert.Equal(t, result.Info.BroadcastAddress, result.Subnets[0].BroadcastAddress)
}

func TestPartitionExhaustsParentBlock(t *testing.T) {
	calc := newTestCalculator()

	result, err := calc.PartitionCIDR("172.16.4.0/22", 4)
	require.NoError(t, err)
	require.Len(t, result.Subnets, 4)

	assert.Equal(t, result.Info.NetworkAddress, result.Subnets[0].NetworkAddress)
	for i := 1; i < len(result.Subnets); i++ {
		prev := result.Subnets[i-1]
		assert.Equal(t, prev.BroadcastAddress.Offset(1), result.Subnets[i].NetworkAddress)
	}
	assert.Equal(t, result.Info.BroadcastAddress, result.Subnets[len(result.Subnets)-1].BroadcastAddress)
}

func TestPartitionCapacityExceeded(t *testing.T) {
	calc := newTestCalculator()

	// /29 + 3 bits -> /32, past the /30 floor
	_, err := calc.PartitionCIDR("10.0.0.0/29", 8)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 32, capErr.Prefix)
}

func TestPartitionCountOutOfRange(t *testing.T) {
	calc := newTestCalculator()

	for _, count := range []int{0, -3} {
		_, err := calc.PartitionCIDR("10.0.0.0/16", count)
		var rangeErr *ipv4.RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, count, rangeErr.Value)
	}
}

func TestPartitionValidatesOperands(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.Partition("300.0.0.0", "255.255.255.0", 2)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "address", valErr.Field)
}

func TestMaskForHosts(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		hosts      int64
		wantPrefix int
		wantMask   string
	}{
		{1000, 22, "255.255.252.0"},
		{254, 24, "255.255.255.0"},
		{255, 23, "255.255.254.0"},
		{2, 30, "255.255.255.252"},
		{1, 30, "255.255.255.252"},
		{1<<32 - 2, 0, "0.0.0.0"},
	}

	for _, tt := range tests {
		mask, err := calc.MaskForHosts(tt.hosts)
		require.NoError(t, err)
		assert.Equal(t, tt.wantPrefix, mask.PrefixLength())
		assert.Equal(t, tt.wantMask, mask.String())
	}
}

func TestMaskForHostsCapacityExceeded(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.MaskForHosts(1<<32 - 1)
	var capErr *CapacityError
	assert.ErrorAs(t, err, &capErr)
}

func TestMaskForHostsOutOfRange(t *testing.T) {
	calc := newTestCalculator()

	for _, hosts := range []int64{0, -1} {
		_, err := calc.MaskForHosts(hosts)
		var rangeErr *ipv4.RangeError
		assert.ErrorAs(t, err, &rangeErr)
	}
}

func TestDescribeWrapsAtAddressSpaceEdges(t *testing.T) {
	calc := newTestCalculator()

	// Host-range arithmetic wraps modulo 2^32 at the extremes.
	info, err := calc.DescribeCIDR("0.0.0.0/0")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.1", info.FirstHost.String())
	assert.Equal(t, "255.255.255.254", info.LastHost.String())

	info, err = calc.DescribeCIDR("255.255.255.255/32")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", info.FirstHost.String())
	assert.Equal(t, "255.255.255.254", info.LastHost.String())
}
