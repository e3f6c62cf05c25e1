package render

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/dotX12/subnetcalc/internal/ipv4"
	"github.com/dotX12/subnetcalc/internal/subnet"
)

var headerColor = color.New(color.FgCyan, color.Bold)

// Renderer writes calculation results as text tables.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out: out,
	}
}

// Info prints the summary table for a single block.
func (r *Renderer) Info(info *subnet.Info) {
	_, _ = headerColor.Fprintln(r.out, "Subnet summary")

	table := r.newTable("Field", "Value")
	table.Append([]string{"CIDR", info.CIDR})
	table.Append([]string{"Network address", info.NetworkAddress.String()})
	table.Append([]string{"Subnet mask", info.Mask.String()})
	table.Append([]string{"Wildcard mask", info.WildcardMask.String()})
	table.Append([]string{"Broadcast address", info.BroadcastAddress.String()})
	table.Append([]string{"First host", info.FirstHost.String()})
	table.Append([]string{"Last host", info.LastHost.String()})
	table.Append([]string{"Usable hosts", strconv.FormatUint(info.NumberOfHosts, 10)})
	table.Append([]string{"Subnets from classful origin", strconv.FormatUint(info.NumberOfSubnets, 10)})
	table.Render()
}

// Result prints the summary followed by the partition member table.
func (r *Renderer) Result(result *subnet.Result) {
	r.Info(result.Info)

	_, _ = headerColor.Fprintf(r.out, "\n%d subnets\n", len(result.Subnets))

	table := r.newTable("#", "Network", "Host range", "Broadcast")
	for _, member := range result.Subnets {
		table.Append([]string{
			strconv.Itoa(member.Index),
			member.NetworkAddress.String(),
			member.HostRange,
			member.BroadcastAddress.String(),
		})
	}
	table.Render()
}

// Mask prints the mask chosen for a host-count request.
func (r *Renderer) Mask(requiredHosts int64, mask ipv4.Mask) {
	_, _ = headerColor.Fprintln(r.out, "Smallest fitting subnet")

	table := r.newTable("Field", "Value")
	table.Append([]string{"Requested hosts", strconv.FormatInt(requiredHosts, 10)})
	table.Append([]string{"Prefix length", "/" + strconv.Itoa(mask.PrefixLength())})
	table.Append([]string{"Subnet mask", mask.String()})
	table.Append([]string{"Wildcard mask", mask.Wildcard().String()})
	table.Render()
}

func (r *Renderer) newTable(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	return table
}
