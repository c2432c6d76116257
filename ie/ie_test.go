package ie

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIE_MarshalUnmarshalRoundTrip(t *testing.T) {
	original := New(PDRID, []byte{0x00, 0x01})
	wire := original.Marshal()
	assert.Equal(t, original.Len(), len(wire))

	decoded, err := Unmarshal(wire)
	require.NoError(t, err)
	assert.Equal(t, original.Type, decoded.Type)
	assert.Equal(t, original.Payload, decoded.Payload)
}

func TestIE_VendorSpecificRoundTrip(t *testing.T) {
	vendorType := Type(0x8000 | 0x1234)
	original := NewVendorSpecific(vendorType, 9999, []byte{0xAA, 0xBB})

	wire := original.Marshal()
	decoded, err := Unmarshal(wire)
	require.NoError(t, err)

	assert.True(t, decoded.HasEnterpriseID)
	assert.Equal(t, uint16(9999), decoded.EnterpriseID)
	assert.Equal(t, original.Payload, decoded.Payload)
	assert.Equal(t, original.Len(), len(wire))
}

func TestIE_Unmarshal_RejectsTruncatedHeader(t *testing.T) {
	_, err := Unmarshal([]byte{0x00, 0x01})
	assert.Error(t, err)
}

func TestIE_Unmarshal_RejectsTruncatedPayload(t *testing.T) {
	// Declares a 10-byte payload but supplies none.
	_, err := Unmarshal([]byte{0x00, 0x01, 0x00, 0x0A})
	assert.Error(t, err)
}

func TestGroupedIE_ChildIEsLazyAndCached(t *testing.T) {
	child1 := New(PDRID, []byte{0x00, 0x01})
	child2 := New(Precedence, []byte{0x00, 0x00, 0x00, 0x64})
	group := NewGrouped(CreatePDR, []IE{child1, child2})

	children, err := group.ChildIEs()
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, PDRID, children[0].Type)
	assert.Equal(t, Precedence, children[1].Type)

	// Second call hits the cache; result is stable.
	again, err := group.ChildIEs()
	require.NoError(t, err)
	assert.Equal(t, children, again)
}

func TestGroupedIE_FindIE(t *testing.T) {
	group := NewGrouped(CreateFAR, []IE{
		New(FARID, []byte{0x00, 0x00, 0x00, 0x01}),
		New(ApplyAction, []byte{0x02}),
	})

	found, ok := group.FindIE(ApplyAction)
	assert.True(t, ok)
	assert.Equal(t, []byte{0x02}, found.Payload)

	_, ok = group.FindIE(QERID)
	assert.False(t, ok)
}

func TestTimestampIE_RoundTrip(t *testing.T) {
	when := time.Unix(1700000000, 0).UTC()
	ts := NewRecoveryTimeStamp(when)

	decoded, err := UnmarshalRecoveryTimeStamp(ts.Marshal())
	require.NoError(t, err)
	assert.Equal(t, when.Unix(), decoded.Time.Unix())
}

func TestFTEID_ExplicitRoundTrip(t *testing.T) {
	f, err := NewFTEID(0x12345678, net.ParseIP("192.0.2.1"), nil)
	require.NoError(t, err)

	wire := f.ToIE()
	decoded, err := UnmarshalFTEID(wire.Payload)
	require.NoError(t, err)

	assert.False(t, decoded.Choose)
	assert.Equal(t, uint32(0x12345678), decoded.TEID)
	assert.True(t, decoded.IPv4.Equal(net.ParseIP("192.0.2.1")))
}

func TestFTEID_ExplicitAndDelegatedConstructors(t *testing.T) {
	_, err := NewFTEID(0x12345678, net.ParseIP("192.0.2.1"), nil)
	require.NoError(t, err, "explicit F-TEID alone is fine")

	f := NewDelegatedFTEID(3)
	assert.True(t, f.Choose)
	assert.True(t, f.HasChooseID)
	assert.Equal(t, uint8(3), f.ChooseID)
}

func TestNodeID_FQDNRoundTrip(t *testing.T) {
	n := NewNodeIDFQDN("smf.example.com")
	wire := n.ToIE()

	decoded, err := UnmarshalNodeID(wire.Payload)
	require.NoError(t, err)
	assert.Equal(t, "smf.example.com", decoded.FQDN)
}

func TestCreatePDR_RequiresPDI(t *testing.T) {
	group := NewGrouped(CreatePDR, []IE{
		New(PDRID, []byte{0x00, 0x01}),
		New(Precedence, []byte{0x00, 0x00, 0x00, 0x64}),
	})
	_, err := UnmarshalCreatePDR(group)
	assert.Error(t, err, "PDI is mandatory inside CreatePDR")
}

func TestCreatePDR_RoundTrip(t *testing.T) {
	pdr := CreatePDRIE{
		PDRID:      NewPDRID(5),
		Precedence: NewPrecedence(100),
		PDI:        PdiIE{SourceInterface: NewSourceInterface(1)},
	}
	wire := pdr.ToIE()

	decoded, err := UnmarshalCreatePDR(wire)
	require.NoError(t, err)
	assert.Equal(t, uint16(5), decoded.PDRID.Value)
	assert.Equal(t, uint32(100), decoded.Precedence.Value)
	assert.Equal(t, uint8(1), decoded.PDI.SourceInterface.Value)
}

func TestIsGrouped(t *testing.T) {
	assert.True(t, IsGrouped(CreatePDR))
	assert.True(t, IsGrouped(UsageReport))
	assert.False(t, IsGrouped(PDRID))
	assert.False(t, IsGrouped(Cause))
}

func TestIsTimestamp(t *testing.T) {
	assert.True(t, IsTimestamp(RecoveryTimeStamp))
	assert.True(t, IsTimestamp(MonitoringTime))
	assert.False(t, IsTimestamp(Cause))
}
