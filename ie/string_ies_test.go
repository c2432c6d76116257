package ie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApnDnn_RoundTrip(t *testing.T) {
	a := NewApnDnn("internet.apn.example.com")
	decoded, err := UnmarshalApnDnn(a.ToIE().Payload)
	require.NoError(t, err)
	assert.Equal(t, "internet.apn.example.com", decoded.Value)
}

func TestDecodeDNSName_RejectsLabelOver63Octets(t *testing.T) {
	label := make([]byte, 64)
	for i := range label {
		label[i] = 'a'
	}
	wire := append([]byte{byte(len(label))}, label...)

	_, err := decodeDNSName(wire)
	assert.Error(t, err)
}

func TestDecodeDNSName_AcceptsLabelAt63Octets(t *testing.T) {
	label := make([]byte, 63)
	for i := range label {
		label[i] = 'a'
	}
	wire := append([]byte{byte(len(label))}, label...)

	name, err := decodeDNSName(wire)
	require.NoError(t, err)
	assert.Equal(t, string(label), name)
}

func TestDecodeDNSName_RejectsTruncatedLabel(t *testing.T) {
	_, err := decodeDNSName([]byte{0x05, 'a', 'b'})
	assert.Error(t, err)
}
