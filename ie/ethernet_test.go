package ie

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCTag_RoundTrip(t *testing.T) {
	c, err := NewCTag(5, true, 100)
	require.NoError(t, err)

	decoded, err := UnmarshalCTag(c.ToIE().Payload)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), decoded.PCP)
	assert.True(t, decoded.DEI)
	assert.Equal(t, uint16(100), decoded.VID)
}

func TestCTag_RejectsOutOfRangePCP(t *testing.T) {
	_, err := NewCTag(8, false, 0)
	assert.Error(t, err)
}

func TestSTag_RejectsOutOfRangeVID(t *testing.T) {
	_, err := NewSTag(0, false, 4096)
	assert.Error(t, err)
}

func TestEthernetFilterProperties_RoundTrip(t *testing.T) {
	p := EthernetFilterPropertiesIE{Bidirectional: true}
	decoded, err := UnmarshalEthernetFilterProperties(p.ToIE().Payload)
	require.NoError(t, err)
	assert.True(t, decoded.Bidirectional)
}

func TestFlowInformation_RejectsOversizedValue(t *testing.T) {
	big := make([]byte, 256)
	for i := range big {
		big[i] = 'a'
	}
	_, err := NewFlowInformation(string(big))
	assert.Error(t, err)
}

func TestMACAddressesDetected_RoundTrip(t *testing.T) {
	mac1, _ := net.ParseMAC("01:02:03:04:05:06")
	mac2, _ := net.ParseMAC("aa:bb:cc:dd:ee:ff")

	m, err := NewMACAddressesDetected([]net.HardwareAddr{mac1, mac2})
	require.NoError(t, err)

	decoded, err := UnmarshalMACAddressesDetected(m.ToIE().Payload)
	require.NoError(t, err)
	require.Len(t, decoded.Addresses, 2)
	assert.Equal(t, mac1, decoded.Addresses[0])
	assert.Equal(t, mac2, decoded.Addresses[1])
}

func TestMACAddressesRemoved_RejectsTooManyAddresses(t *testing.T) {
	macs := make([]net.HardwareAddr, 17)
	for i := range macs {
		macs[i] = net.HardwareAddr{0, 0, 0, 0, 0, byte(i)}
	}
	_, err := NewMACAddressesRemoved(macs)
	assert.Error(t, err)
}

func TestEthernetPacketFilter_RoundTrip(t *testing.T) {
	filterID := NewEthernetFilterID(7)
	ethertype := NewEthertype(0x0800)
	ctag, err := NewCTag(1, false, 10)
	require.NoError(t, err)

	filter := EthernetPacketFilterIE{
		EthernetFilterID: &filterID,
		Ethertype:        &ethertype,
		CTag:             &ctag,
	}

	decoded, err := UnmarshalEthernetPacketFilter(filter.ToIE())
	require.NoError(t, err)
	require.NotNil(t, decoded.EthernetFilterID)
	require.NotNil(t, decoded.Ethertype)
	require.NotNil(t, decoded.CTag)
	assert.Equal(t, uint32(7), decoded.EthernetFilterID.Value)
	assert.Equal(t, uint16(0x0800), decoded.Ethertype.Value)
	assert.Equal(t, uint16(10), decoded.CTag.VID)
	assert.Nil(t, decoded.STag)
}

func TestEthernetContextInformation_RoundTrip(t *testing.T) {
	mac, _ := net.ParseMAC("de:ad:be:ef:00:01")
	detected, err := NewMACAddressesDetected([]net.HardwareAddr{mac})
	require.NoError(t, err)

	eci := EthernetContextInformationIE{MACAddressesDetected: detected}
	decoded, err := UnmarshalEthernetContextInformation(eci.ToIE())
	require.NoError(t, err)
	require.Len(t, decoded.MACAddressesDetected.Addresses, 1)
	assert.Equal(t, mac, decoded.MACAddressesDetected.Addresses[0])
}

func TestEthernetContextInformation_MissingMACAddressesDetected(t *testing.T) {
	group := NewGrouped(EthernetContextInformation, []IE{New(Ethertype, []byte{0x08, 0x00})})
	_, err := UnmarshalEthernetContextInformation(group)
	assert.Error(t, err)
}

func TestMACAddress_RoundTrip_SourceAndDestination(t *testing.T) {
	src, _ := net.ParseMAC("00:11:22:33:44:55")
	dst, _ := net.ParseMAC("aa:bb:cc:dd:ee:ff")

	m, err := NewMACAddress([]net.HardwareAddr{src}, []net.HardwareAddr{dst})
	require.NoError(t, err)

	decoded, err := UnmarshalMACAddress(m.ToIE().Payload)
	require.NoError(t, err)
	require.Len(t, decoded.Source, 1)
	require.Len(t, decoded.Destination, 1)
	assert.Equal(t, src, decoded.Source[0])
	assert.Equal(t, dst, decoded.Destination[0])
}

func TestMACAddress_RoundTrip_SourceOnly(t *testing.T) {
	src, _ := net.ParseMAC("00:11:22:33:44:55")

	m, err := NewMACAddress([]net.HardwareAddr{src}, nil)
	require.NoError(t, err)

	decoded, err := UnmarshalMACAddress(m.ToIE().Payload)
	require.NoError(t, err)
	require.Len(t, decoded.Source, 1)
	assert.Empty(t, decoded.Destination)
}

func TestMACAddress_RejectsOversizedSourceList(t *testing.T) {
	macs := make([]net.HardwareAddr, 17)
	for i := range macs {
		macs[i] = net.HardwareAddr{0, 0, 0, 0, 0, byte(i)}
	}
	_, err := NewMACAddress(macs, nil)
	assert.Error(t, err)
}

func TestMACAddress_RejectsOversizedDestinationList(t *testing.T) {
	macs := make([]net.HardwareAddr, 17)
	for i := range macs {
		macs[i] = net.HardwareAddr{0, 0, 0, 0, 0, byte(i)}
	}
	_, err := NewMACAddress(nil, macs)
	assert.Error(t, err)
}

func TestEthernetPacketFilter_RoundTrip_WithMACAddress(t *testing.T) {
	src, _ := net.ParseMAC("00:11:22:33:44:55")
	mac, err := NewMACAddress([]net.HardwareAddr{src}, nil)
	require.NoError(t, err)

	filter := EthernetPacketFilterIE{MACAddress: &mac}
	decoded, err := UnmarshalEthernetPacketFilter(filter.ToIE())
	require.NoError(t, err)
	require.NotNil(t, decoded.MACAddress)
	require.Len(t, decoded.MACAddress.Source, 1)
	assert.Equal(t, src, decoded.MACAddress.Source[0])
}
