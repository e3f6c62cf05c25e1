package render

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotX12/subnetcalc/internal/subnet"
)

func TestRenderInfo(t *testing.T) {
	calc := subnet.NewCalculator(zerolog.Nop())
	info, err := calc.DescribeCIDR("192.168.1.0/24")
	require.NoError(t, err)

	var buf bytes.Buffer
	NewRenderer(&buf).Info(info)

	out := buf.String()
	assert.Contains(t, out, "Subnet summary")
	assert.Contains(t, out, "192.168.1.0/24")
	assert.Contains(t, out, "192.168.1.255")
	assert.Contains(t, out, "0.0.0.255")
	assert.Contains(t, out, "254")
}

func TestRenderResult(t *testing.T) {
	calc := subnet.NewCalculator(zerolog.Nop())
	result, err := calc.PartitionCIDR("10.0.0.0/16", 4)
	require.NoError(t, err)

	var buf bytes.Buffer
	NewRenderer(&buf).Result(result)

	out := buf.String()
	assert.Contains(t, out, "4 subnets")
	assert.Contains(t, out, "10.0.64.0")
	assert.Contains(t, out, "10.0.128.0")
	assert.Contains(t, out, "10.0.192.0")
}

func TestRenderMask(t *testing.T) {
	calc := subnet.NewCalculator(zerolog.Nop())
	mask, err := calc.MaskForHosts(1000)
	require.NoError(t, err)

	var buf bytes.Buffer
	NewRenderer(&buf).Mask(1000, mask)

	out := buf.String()
	assert.Contains(t, out, "255.255.252.0")
	assert.Contains(t, out, "/22")
	assert.Contains(t, out, "1000")
}
