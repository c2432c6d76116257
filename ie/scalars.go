package ie

import (
	"encoding/binary"

	"github.com/your-org/pfcp-codec/pfcperr"
)

// Value types below wrap the scalar IEs. Each is named <IEName>IE to avoid
// colliding with the Type constant of the same 3GPP name declared in
// ie_type.go.

// u8 scalars.

// BARIDIE identifies a Buffering Action Rule within a session.
type BARIDIE struct{ Value uint8 }

func NewBARID(v uint8) BARIDIE { return BARIDIE{Value: v} }
func (b BARIDIE) ToIE() IE     { return New(BARID, []byte{b.Value}) }
func UnmarshalBARID(payload []byte) (BARIDIE, error) {
	v, err := IE{Type: BARID, Payload: payload}.AsUint8()
	return BARIDIE{Value: v}, err
}

// MetricIE is a single-byte percentage used by load/overload control reports.
type MetricIE struct{ Value uint8 }

func NewMetric(v uint8) MetricIE { return MetricIE{Value: v} }
func (m MetricIE) ToIE() IE      { return New(Metric, []byte{m.Value}) }
func UnmarshalMetric(payload []byte) (MetricIE, error) {
	v, err := IE{Type: Metric, Payload: payload}.AsUint8()
	return MetricIE{Value: v}, err
}

// TimerIE carries a value/unit-coded duration per TS 29.244 clause 8.2.54.
type TimerIE struct{ Value uint8 }

func NewTimer(v uint8) TimerIE { return TimerIE{Value: v} }
func (t TimerIE) ToIE() IE     { return New(Timer, []byte{t.Value}) }
func UnmarshalTimer(payload []byte) (TimerIE, error) {
	v, err := IE{Type: Timer, Payload: payload}.AsUint8()
	return TimerIE{Value: v}, err
}

// PagingPolicyIndicatorIE encodes a DSCP-derived paging priority, 0-7.
type PagingPolicyIndicatorIE struct{ Value uint8 }

const maxPagingPolicyIndicator = 7

func NewPagingPolicyIndicator(v uint8) (PagingPolicyIndicatorIE, error) {
	if v > maxPagingPolicyIndicator {
		return PagingPolicyIndicatorIE{}, &pfcperr.InvalidValue{Field: "PagingPolicyIndicator", Value: uitoa(uint16(v)), Constraint: "0-7"}
	}
	return PagingPolicyIndicatorIE{Value: v}, nil
}
func (p PagingPolicyIndicatorIE) ToIE() IE {
	return New(PagingPolicyIndicator, []byte{p.Value & 0x07})
}
func UnmarshalPagingPolicyIndicator(payload []byte) (PagingPolicyIndicatorIE, error) {
	v, err := IE{Type: PagingPolicyIndicator, Payload: payload}.AsUint8()
	if err != nil {
		return PagingPolicyIndicatorIE{}, err
	}
	return PagingPolicyIndicatorIE{Value: v & 0x07}, nil
}

// u16 scalars.

// PDRIDIE identifies a Packet Detection Rule within a session.
type PDRIDIE struct{ Value uint16 }

func NewPDRID(v uint16) PDRIDIE { return PDRIDIE{Value: v} }
func (p PDRIDIE) ToIE() IE {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, p.Value)
	return New(PDRID, buf)
}
func UnmarshalPDRID(payload []byte) (PDRIDIE, error) {
	v, err := IE{Type: PDRID, Payload: payload}.AsUint16()
	return PDRIDIE{Value: v}, err
}

// TransportLevelMarkingIE carries a DSCP ToS/Traffic Class byte pair.
type TransportLevelMarkingIE struct{ Value uint16 }

func NewTransportLevelMarking(v uint16) TransportLevelMarkingIE {
	return TransportLevelMarkingIE{Value: v}
}
func (t TransportLevelMarkingIE) ToIE() IE {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, t.Value)
	return New(TransportLevelMarking, buf)
}
func UnmarshalTransportLevelMarking(payload []byte) (TransportLevelMarkingIE, error) {
	v, err := IE{Type: TransportLevelMarking, Payload: payload}.AsUint16()
	return TransportLevelMarkingIE{Value: v}, err
}

// u32 scalars.

func u32IE(t Type, v uint32) IE {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return New(t, buf)
}

func unmarshalU32(t Type, payload []byte) (uint32, error) {
	return IE{Type: t, Payload: payload}.AsUint32()
}

// PrecedenceIE orders PDRs within a session; lower values match first.
type PrecedenceIE struct{ Value uint32 }

func NewPrecedence(v uint32) PrecedenceIE { return PrecedenceIE{Value: v} }
func (p PrecedenceIE) ToIE() IE           { return u32IE(Precedence, p.Value) }
func UnmarshalPrecedence(payload []byte) (PrecedenceIE, error) {
	v, err := unmarshalU32(Precedence, payload)
	return PrecedenceIE{Value: v}, err
}

// FARIDIE identifies a Forwarding Action Rule within a session.
type FARIDIE struct{ Value uint32 }

func NewFARID(v uint32) FARIDIE { return FARIDIE{Value: v} }
func (f FARIDIE) ToIE() IE      { return u32IE(FARID, f.Value) }
func UnmarshalFARID(payload []byte) (FARIDIE, error) {
	v, err := unmarshalU32(FARID, payload)
	return FARIDIE{Value: v}, err
}

// QERIDIE identifies a QoS Enforcement Rule within a session.
type QERIDIE struct{ Value uint32 }

func NewQERID(v uint32) QERIDIE { return QERIDIE{Value: v} }
func (q QERIDIE) ToIE() IE      { return u32IE(QERID, q.Value) }
func UnmarshalQERID(payload []byte) (QERIDIE, error) {
	v, err := unmarshalU32(QERID, payload)
	return QERIDIE{Value: v}, err
}

// URRIDIE identifies a Usage Reporting Rule within a session.
type URRIDIE struct{ Value uint32 }

func NewURRID(v uint32) URRIDIE { return URRIDIE{Value: v} }
func (u URRIDIE) ToIE() IE      { return u32IE(URRID, u.Value) }
func UnmarshalURRID(payload []byte) (URRIDIE, error) {
	v, err := unmarshalU32(URRID, payload)
	return URRIDIE{Value: v}, err
}

// QERCorrelationIDIE links sibling QERs that must share a GBR allocation.
type QERCorrelationIDIE struct{ Value uint32 }

func NewQERCorrelationID(v uint32) QERCorrelationIDIE { return QERCorrelationIDIE{Value: v} }
func (q QERCorrelationIDIE) ToIE() IE                 { return u32IE(QERCorrelationID, q.Value) }
func UnmarshalQERCorrelationID(payload []byte) (QERCorrelationIDIE, error) {
	v, err := unmarshalU32(QERCorrelationID, payload)
	return QERCorrelationIDIE{Value: v}, err
}

// SequenceNumberIE carries a load/overload control report's SRR sequence
// number. Distinct from the PFCP header's own sequence number field, which
// lives in package message.
type SequenceNumberIE struct{ Value uint32 }

func NewSequenceNumberIE(v uint32) SequenceNumberIE { return SequenceNumberIE{Value: v} }
func (s SequenceNumberIE) ToIE() IE                 { return u32IE(SequenceNumber, s.Value) }
func UnmarshalSequenceNumberIE(payload []byte) (SequenceNumberIE, error) {
	v, err := unmarshalU32(SequenceNumber, payload)
	return SequenceNumberIE{Value: v}, err
}

// InactivityDetectionTimeIE bounds how long a PDR may see no traffic before
// being considered inactive, in seconds.
type InactivityDetectionTimeIE struct{ Seconds uint32 }

func NewInactivityDetectionTime(s uint32) InactivityDetectionTimeIE {
	return InactivityDetectionTimeIE{Seconds: s}
}
func (i InactivityDetectionTimeIE) ToIE() IE { return u32IE(InactivityDetectionTime, i.Seconds) }
func UnmarshalInactivityDetectionTime(payload []byte) (InactivityDetectionTimeIE, error) {
	v, err := unmarshalU32(InactivityDetectionTime, payload)
	return InactivityDetectionTimeIE{Seconds: v}, err
}

// QuotaHoldingTimeIE bounds how long a depleted quota is held before the URR
// reports it, in seconds.
type QuotaHoldingTimeIE struct{ Seconds uint32 }

func NewQuotaHoldingTime(s uint32) QuotaHoldingTimeIE { return QuotaHoldingTimeIE{Seconds: s} }
func (q QuotaHoldingTimeIE) ToIE() IE                 { return u32IE(QuotaHoldingTime, q.Seconds) }
func UnmarshalQuotaHoldingTime(payload []byte) (QuotaHoldingTimeIE, error) {
	v, err := unmarshalU32(QuotaHoldingTime, payload)
	return QuotaHoldingTimeIE{Seconds: v}, err
}

// TimeThresholdIE triggers a usage report once the measurement interval
// reaches this many seconds.
type TimeThresholdIE struct{ Seconds uint32 }

func NewTimeThreshold(s uint32) TimeThresholdIE { return TimeThresholdIE{Seconds: s} }
func (t TimeThresholdIE) ToIE() IE              { return u32IE(TimeThreshold, t.Seconds) }
func UnmarshalTimeThreshold(payload []byte) (TimeThresholdIE, error) {
	v, err := unmarshalU32(TimeThreshold, payload)
	return TimeThresholdIE{Seconds: v}, err
}

// TimeQuotaIE bounds the measurement interval a URR may run before its quota
// is considered exhausted, in seconds.
type TimeQuotaIE struct{ Seconds uint32 }

func NewTimeQuota(s uint32) TimeQuotaIE { return TimeQuotaIE{Seconds: s} }
func (t TimeQuotaIE) ToIE() IE          { return u32IE(TimeQuota, t.Seconds) }
func UnmarshalTimeQuota(payload []byte) (TimeQuotaIE, error) {
	v, err := unmarshalU32(TimeQuota, payload)
	return TimeQuotaIE{Seconds: v}, err
}

// DurationMeasurementIE reports elapsed measurement time, in seconds.
type DurationMeasurementIE struct{ Seconds uint32 }

func NewDurationMeasurement(s uint32) DurationMeasurementIE { return DurationMeasurementIE{Seconds: s} }
func (d DurationMeasurementIE) ToIE() IE                    { return u32IE(DurationMeasurement, d.Seconds) }
func UnmarshalDurationMeasurement(payload []byte) (DurationMeasurementIE, error) {
	v, err := unmarshalU32(DurationMeasurement, payload)
	return DurationMeasurementIE{Seconds: v}, err
}

// MBRIE carries a pair of uplink/downlink maximum bit rates, each a 4-byte
// value in kbps per TS 29.244 clause 8.2.11.
type MBRIE struct {
	Uplink   uint32
	Downlink uint32
}

func NewMBR(uplink, downlink uint32) MBRIE { return MBRIE{Uplink: uplink, Downlink: downlink} }
func (m MBRIE) ToIE() IE {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[0:4], m.Uplink)
	binary.BigEndian.PutUint32(buf[4:8], m.Downlink)
	return New(MBR, buf)
}
func UnmarshalMBR(payload []byte) (MBRIE, error) {
	if len(payload) < 8 {
		return MBRIE{}, &pfcperr.InvalidLength{IEName: "MBR", IEType: uint16(MBR), Expected: 8, Actual: len(payload)}
	}
	return MBRIE{
		Uplink:   binary.BigEndian.Uint32(payload[0:4]),
		Downlink: binary.BigEndian.Uint32(payload[4:8]),
	}, nil
}

// GBRIE carries a pair of uplink/downlink guaranteed bit rates, mirroring
// MBRIE.
type GBRIE struct {
	Uplink   uint32
	Downlink uint32
}

func NewGBR(uplink, downlink uint32) GBRIE { return GBRIE{Uplink: uplink, Downlink: downlink} }
func (g GBRIE) ToIE() IE {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[0:4], g.Uplink)
	binary.BigEndian.PutUint32(buf[4:8], g.Downlink)
	return New(GBR, buf)
}
func UnmarshalGBR(payload []byte) (GBRIE, error) {
	if len(payload) < 8 {
		return GBRIE{}, &pfcperr.InvalidLength{IEName: "GBR", IEType: uint16(GBR), Expected: 8, Actual: len(payload)}
	}
	return GBRIE{
		Uplink:   binary.BigEndian.Uint32(payload[0:4]),
		Downlink: binary.BigEndian.Uint32(payload[4:8]),
	}, nil
}

// String-valued simple IEs.

// NetworkInstanceIE names the network instance (APN-scoped VRF/routing
// context) a PDR matches traffic in or a FAR forwards traffic into.
type NetworkInstanceIE struct{ Value string }

func NewNetworkInstance(v string) NetworkInstanceIE { return NetworkInstanceIE{Value: v} }
func (n NetworkInstanceIE) ToIE() IE                { return New(NetworkInstance, []byte(n.Value)) }
func UnmarshalNetworkInstance(payload []byte) (NetworkInstanceIE, error) {
	s, err := IE{Type: NetworkInstance, Payload: payload}.AsString()
	return NetworkInstanceIE{Value: s}, err
}

// ApplicationIDIE names an application detection filter's target application.
type ApplicationIDIE struct{ Value string }

func NewApplicationID(v string) ApplicationIDIE { return ApplicationIDIE{Value: v} }
func (a ApplicationIDIE) ToIE() IE              { return New(ApplicationID, []byte(a.Value)) }
func UnmarshalApplicationID(payload []byte) (ApplicationIDIE, error) {
	s, err := IE{Type: ApplicationID, Payload: payload}.AsString()
	return ApplicationIDIE{Value: s}, err
}
