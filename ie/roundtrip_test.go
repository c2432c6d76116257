package ie

import (
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip_GroupedRuleFamily exercises the ToIE -> Unmarshal path of
// CreatePDR, CreateFAR, CreateURR, CreateQER and RemovePDR. Each subtest
// name is the case name plus a random uuid, new on every run.
func TestRoundTrip_GroupedRuleFamily(t *testing.T) {
	type roundTripper interface {
		ToIE() IE
	}

	cases := []struct {
		name  string
		build func() (roundTripper, func(IE) (interface{}, error))
	}{
		{
			name: "CreatePDR",
			build: func() (roundTripper, func(IE) (interface{}, error)) {
				return CreatePDRIE{
						PDRID:      NewPDRID(1),
						Precedence: NewPrecedence(10),
						PDI:        PdiIE{SourceInterface: NewSourceInterface(0)},
					}, func(i IE) (interface{}, error) {
						return UnmarshalCreatePDR(i)
					}
			},
		},
		{
			name: "CreateFAR",
			build: func() (roundTripper, func(IE) (interface{}, error)) {
				return CreateFARIE{
						FARID:       NewFARID(1),
						ApplyAction: ApplyActionIE{Forward: true},
					}, func(i IE) (interface{}, error) {
						return UnmarshalCreateFAR(i)
					}
			},
		},
		{
			name: "CreateURR",
			build: func() (roundTripper, func(IE) (interface{}, error)) {
				return CreateURRIE{
						URRID:             NewURRID(1),
						MeasurementMethod: MeasurementMethodIE{Volume: true},
						ReportingTriggers: ReportingTriggersIE{Raw: []byte{0x01}},
					}, func(i IE) (interface{}, error) {
						return UnmarshalCreateURR(i)
					}
			},
		},
		{
			name: "CreateQER",
			build: func() (roundTripper, func(IE) (interface{}, error)) {
				return CreateQERIE{
						QERID:      NewQERID(1),
						GateStatus: GateStatusIE{DownlinkOpen: true, UplinkOpen: true},
					}, func(i IE) (interface{}, error) {
						return UnmarshalCreateQER(i)
					}
			},
		},
		{
			name: "RemovePDR",
			build: func() (roundTripper, func(IE) (interface{}, error)) {
				return RemovePDRIE{PDRID: NewPDRID(9)}, func(i IE) (interface{}, error) {
					return UnmarshalRemovePDR(i)
				}
			},
		},
	}

	for _, c := range cases {
		caseName := c.name + "-" + uuid.NewString()
		t.Run(caseName, func(t *testing.T) {
			value, unmarshal := c.build()
			wire := value.ToIE()
			_, err := unmarshal(wire)
			require.NoError(t, err)
		})
	}
}

func TestFSEID_RoundTrip(t *testing.T) {
	f := NewFSEID(0xDEADBEEFCAFE, net.ParseIP("203.0.113.5"), nil)
	decoded, err := UnmarshalFSEID(f.ToIE().Payload)
	require.NoError(t, err)
	assert.Equal(t, f.SEID, decoded.SEID)
	assert.True(t, decoded.IPv4.Equal(net.ParseIP("203.0.113.5")))
	assert.Nil(t, decoded.IPv6)
}
