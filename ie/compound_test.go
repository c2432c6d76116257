package ie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u64p(v uint64) *uint64 { return &v }

func TestVolumeThreshold_RoundTrip_AllFields(t *testing.T) {
	vt := NewVolumeThreshold(u64p(1000), u64p(600), u64p(400))
	wire := vt.ToIE()

	decoded, err := UnmarshalVolumeThreshold(wire.Payload)
	require.NoError(t, err)
	require.NotNil(t, decoded.Total)
	require.NotNil(t, decoded.Uplink)
	require.NotNil(t, decoded.Downlink)
	assert.Equal(t, uint64(1000), *decoded.Total)
	assert.Equal(t, uint64(600), *decoded.Uplink)
	assert.Equal(t, uint64(400), *decoded.Downlink)
}

func TestVolumeQuota_RoundTrip_PartialFields(t *testing.T) {
	vq := NewVolumeQuota(u64p(5000), nil, nil)
	wire := vq.ToIE()
	assert.Equal(t, 9, len(wire.Payload), "flags byte + one 8-byte counter")

	decoded, err := UnmarshalVolumeQuota(wire.Payload)
	require.NoError(t, err)
	require.NotNil(t, decoded.Total)
	assert.Equal(t, uint64(5000), *decoded.Total)
	assert.Nil(t, decoded.Uplink)
	assert.Nil(t, decoded.Downlink)
}

func TestVolumeMeasurement_UnmarshalRejectsTruncatedCounter(t *testing.T) {
	_, err := UnmarshalVolumeMeasurement([]byte{0x01, 0x00, 0x00}) // TOVOL set, only 2 bytes follow
	assert.Error(t, err)
}

func TestVolumeMeasurement_UnmarshalRejectsEmptyPayload(t *testing.T) {
	_, err := UnmarshalVolumeMeasurement(nil)
	assert.Error(t, err)
}
