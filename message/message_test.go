package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp-codec/ie"
)

func TestHeaderRoundTrip_NodeMessage(t *testing.T) {
	m, err := NewHeartbeatRequestBuilder(42).
		SetRecoveryTimeStamp(ie.NewRecoveryTimeStamp(time.Unix(1700000000, 0))).
		Build()
	require.NoError(t, err)

	wire := m.Marshal()
	decoded, err := Unmarshal(wire)
	require.NoError(t, err)

	hb, ok := decoded.(HeartbeatRequestMessage)
	require.True(t, ok)
	assert.Equal(t, HeartbeatRequest, hb.Header.Type)
	assert.False(t, hb.Header.HasSEID)
	assert.Equal(t, uint32(42), hb.Header.SequenceNumber)
	assert.Equal(t, m.RecoveryTimeStamp.Time.Unix(), hb.RecoveryTimeStamp.Time.Unix())
}

func TestHeaderRoundTrip_SessionMessage(t *testing.T) {
	m, err := NewSessionDeletionRequestBuilder(7, 0xAABBCCDD).Build()
	require.NoError(t, err)

	wire := m.Marshal()
	decoded, err := Unmarshal(wire)
	require.NoError(t, err)

	sd, ok := decoded.(SessionDeletionRequestMessage)
	require.True(t, ok)
	assert.True(t, sd.Header.HasSEID)
	assert.Equal(t, uint64(0xAABBCCDD), sd.Header.SEID)
	assert.Equal(t, uint32(7), sd.Header.SequenceNumber)
}

func TestHeartbeatRequestBuilder_MissingMandatoryIE(t *testing.T) {
	_, err := NewHeartbeatRequestBuilder(1).Build()
	assert.Error(t, err)
}

func TestAssociationSetupRequestRoundTrip(t *testing.T) {
	m, err := NewAssociationSetupRequestBuilder(1).
		SetNodeID(ie.NewNodeIDFQDN("smf.example.com")).
		SetRecoveryTimeStamp(ie.NewRecoveryTimeStamp(time.Unix(1700000000, 0))).
		Build()
	require.NoError(t, err)

	decoded, err := Unmarshal(m.Marshal())
	require.NoError(t, err)

	asr, ok := decoded.(AssociationSetupRequestMessage)
	require.True(t, ok)
	assert.Equal(t, "smf.example.com", asr.NodeID.FQDN)
}

func TestSessionEstablishmentRoundTrip(t *testing.T) {
	m, err := NewSessionEstablishmentRequestBuilder(1, 0x1122334455).
		SetNodeID(ie.NewNodeIDFQDN("upf.example.com")).
		SetFSEID(ie.NewFSEID(0x1122334455, nil, nil)).
		AddCreatePDR(ie.CreatePDRIE{
			PDRID:      ie.NewPDRID(1),
			Precedence: ie.NewPrecedence(200),
			PDI:        ie.PdiIE{SourceInterface: ie.NewSourceInterface(0)},
		}).
		AddCreateFAR(ie.CreateFARIE{
			FARID:       ie.NewFARID(1),
			ApplyAction: ie.ApplyActionIE{Forward: true},
		}).
		Build()
	require.NoError(t, err)

	wire := m.Marshal()
	decoded, err := Unmarshal(wire)
	require.NoError(t, err)

	ser, ok := decoded.(SessionEstablishmentRequestMessage)
	require.True(t, ok)
	require.Len(t, ser.CreatePDRs, 1)
	require.Len(t, ser.CreateFARs, 1)
	assert.Equal(t, uint16(1), ser.CreatePDRs[0].PDRID.Value)
	assert.True(t, ser.CreateFARs[0].ApplyAction.Forward)
}

func TestSessionEstablishmentRequestBuilder_MissingMandatory(t *testing.T) {
	_, err := NewSessionEstablishmentRequestBuilder(1, 1).
		SetNodeID(ie.NewNodeIDFQDN("upf.example.com")).
		SetFSEID(ie.NewFSEID(1, nil, nil)).
		Build()
	assert.Error(t, err, "missing CreatePDR/CreateFAR must fail Build")
}

func TestSessionModificationRequestBuilder_NoMandatoryIEs(t *testing.T) {
	m, err := NewSessionModificationRequestBuilder(1, 1).
		AddRemovePDR(ie.RemovePDRIE{PDRID: ie.NewPDRID(1)}).
		Build()
	require.NoError(t, err)

	decoded, err := Unmarshal(m.Marshal())
	require.NoError(t, err)

	smr, ok := decoded.(SessionModificationRequestMessage)
	require.True(t, ok)
	require.Len(t, smr.RemovePDRs, 1)
	assert.Equal(t, uint16(1), smr.RemovePDRs[0].PDRID.Value)
}

func TestSessionReportRequestBuilder_RequiresReportType(t *testing.T) {
	_, err := NewSessionReportRequestBuilder(1, 1).Build()
	assert.Error(t, err)

	m, err := NewSessionReportRequestBuilder(1, 1).
		SetReportType(ie.ReportTypeIE{USAR: true}).
		Build()
	require.NoError(t, err)

	decoded, err := Unmarshal(m.Marshal())
	require.NoError(t, err)
	srr, ok := decoded.(SessionReportRequestMessage)
	require.True(t, ok)
	assert.True(t, srr.ReportType.USAR)
}

func TestSessionSetDeletionRoundTrip(t *testing.T) {
	m, err := NewSessionSetDeletionRequestBuilder(1).
		SetNodeID(ie.NewNodeIDFQDN("smf.example.com")).
		Build()
	require.NoError(t, err)

	decoded, err := Unmarshal(m.Marshal())
	require.NoError(t, err)
	ssd, ok := decoded.(SessionSetDeletionRequestMessage)
	require.True(t, ok)
	assert.Equal(t, "smf.example.com", ssd.NodeID.FQDN)
}

func TestUnmarshal_UnsupportedVersionRejected(t *testing.T) {
	b := []byte{0x00, byte(HeartbeatRequest), 0x00, 0x04, 0x00, 0x00, 0x00, 0x00}
	_, err := Unmarshal(b)
	assert.Error(t, err)
}

func TestUnmarshal_TruncatedBufferRejected(t *testing.T) {
	_, err := Unmarshal([]byte{0x20, byte(HeartbeatRequest)})
	assert.Error(t, err)
}
