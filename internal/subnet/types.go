package subnet

import "github.com/dotX12/subnetcalc/internal/ipv4"

// Info holds the derived addressing facts for a single block.
type Info struct {
	NetworkAddress   ipv4.Address
	Mask             ipv4.Mask
	CIDR             string
	WildcardMask     ipv4.Address
	FirstHost        ipv4.Address
	LastHost         ipv4.Address
	BroadcastAddress ipv4.Address
	NumberOfHosts    uint64
	// NumberOfSubnets assumes the block was carved from its classful /8,
	// /16 or /24 parent. Advisory figure kept for output compatibility,
	// not real VLSM accounting.
	NumberOfSubnets uint64
}

// Detail is one member of an equal-size partition.
type Detail struct {
	Index            int // 1-based, partition order
	NetworkAddress   ipv4.Address
	HostRange        string
	BroadcastAddress ipv4.Address
}

// Result pairs a block's Info with its partition members in order.
type Result struct {
	Info    *Info
	Subnets []Detail
}
