package ie

import (
	"encoding/binary"
	"time"

	"github.com/your-org/pfcp-codec/pfcperr"
)

// timestampCodec is the shared 4-byte 3GPP-NTP codec behind every PFCP
// timestamp IE (RecoveryTimeStamp, MonitoringTime, StartTime, EndTime,
// TimeOfFirstPacket, TimeOfLastPacket, ActivationTime, DeactivationTime).
// They differ only in IE type, so each gets a named wrapper type for
// type-safety at call sites while sharing marshal/unmarshal logic.
type timestampCodec struct {
	t Type
}

func (tc timestampCodec) marshal(when time.Time) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, timeToNTP(when))
	return buf
}

func (tc timestampCodec) unmarshal(payload []byte) (time.Time, error) {
	if len(payload) < 4 {
		return time.Time{}, &pfcperr.InvalidLength{IEName: tc.t.String(), IEType: uint16(tc.t), Expected: 4, Actual: len(payload)}
	}
	return ntpToTime(binary.BigEndian.Uint32(payload)), nil
}

func (tc timestampCodec) toIE(when time.Time) IE {
	return New(tc.t, tc.marshal(when))
}

// RecoveryTimeStampIE carries the UP/CP function's restart time, used by
// peers to detect a restart and invalidate stale sessions.
type RecoveryTimeStampIE struct{ Time time.Time }

func NewRecoveryTimeStamp(t time.Time) RecoveryTimeStampIE { return RecoveryTimeStampIE{Time: t} }
func (r RecoveryTimeStampIE) Marshal() []byte              { return timestampCodec{RecoveryTimeStamp}.marshal(r.Time) }
func (r RecoveryTimeStampIE) ToIE() IE                     { return timestampCodec{RecoveryTimeStamp}.toIE(r.Time) }
func UnmarshalRecoveryTimeStamp(payload []byte) (RecoveryTimeStampIE, error) {
	t, err := timestampCodec{RecoveryTimeStamp}.unmarshal(payload)
	return RecoveryTimeStampIE{Time: t}, err
}

// MonitoringTimeIE marks when a URR's usage-reporting measurement window
// begins.
type MonitoringTimeIE struct{ Time time.Time }

func NewMonitoringTime(t time.Time) MonitoringTimeIE { return MonitoringTimeIE{Time: t} }
func (m MonitoringTimeIE) Marshal() []byte           { return timestampCodec{MonitoringTime}.marshal(m.Time) }
func (m MonitoringTimeIE) ToIE() IE                  { return timestampCodec{MonitoringTime}.toIE(m.Time) }
func UnmarshalMonitoringTime(payload []byte) (MonitoringTimeIE, error) {
	t, err := timestampCodec{MonitoringTime}.unmarshal(payload)
	return MonitoringTimeIE{Time: t}, err
}

// StartTimeIE and EndTimeIE bound a usage report's measurement interval.
type StartTimeIE struct{ Time time.Time }

func NewStartTime(t time.Time) StartTimeIE { return StartTimeIE{Time: t} }
func (s StartTimeIE) Marshal() []byte      { return timestampCodec{StartTime}.marshal(s.Time) }
func (s StartTimeIE) ToIE() IE             { return timestampCodec{StartTime}.toIE(s.Time) }
func UnmarshalStartTime(payload []byte) (StartTimeIE, error) {
	t, err := timestampCodec{StartTime}.unmarshal(payload)
	return StartTimeIE{Time: t}, err
}

type EndTimeIE struct{ Time time.Time }

func NewEndTime(t time.Time) EndTimeIE { return EndTimeIE{Time: t} }
func (e EndTimeIE) Marshal() []byte    { return timestampCodec{EndTime}.marshal(e.Time) }
func (e EndTimeIE) ToIE() IE           { return timestampCodec{EndTime}.toIE(e.Time) }
func UnmarshalEndTime(payload []byte) (EndTimeIE, error) {
	t, err := timestampCodec{EndTime}.unmarshal(payload)
	return EndTimeIE{Time: t}, err
}

type TimeOfFirstPacketIE struct{ Time time.Time }

func NewTimeOfFirstPacket(t time.Time) TimeOfFirstPacketIE { return TimeOfFirstPacketIE{Time: t} }
func (t TimeOfFirstPacketIE) Marshal() []byte              { return timestampCodec{TimeOfFirstPacket}.marshal(t.Time) }
func (t TimeOfFirstPacketIE) ToIE() IE                     { return timestampCodec{TimeOfFirstPacket}.toIE(t.Time) }
func UnmarshalTimeOfFirstPacket(payload []byte) (TimeOfFirstPacketIE, error) {
	t, err := timestampCodec{TimeOfFirstPacket}.unmarshal(payload)
	return TimeOfFirstPacketIE{Time: t}, err
}

type TimeOfLastPacketIE struct{ Time time.Time }

func NewTimeOfLastPacket(t time.Time) TimeOfLastPacketIE { return TimeOfLastPacketIE{Time: t} }
func (t TimeOfLastPacketIE) Marshal() []byte             { return timestampCodec{TimeOfLastPacket}.marshal(t.Time) }
func (t TimeOfLastPacketIE) ToIE() IE                    { return timestampCodec{TimeOfLastPacket}.toIE(t.Time) }
func UnmarshalTimeOfLastPacket(payload []byte) (TimeOfLastPacketIE, error) {
	t, err := timestampCodec{TimeOfLastPacket}.unmarshal(payload)
	return TimeOfLastPacketIE{Time: t}, err
}

// ActivationTimeIE and DeactivationTimeIE schedule when a rule (FAR/QER)
// should take effect or stop, used for time-gated forwarding/QoS policy
// changes.
type ActivationTimeIE struct{ Time time.Time }

func NewActivationTime(t time.Time) ActivationTimeIE { return ActivationTimeIE{Time: t} }
func (a ActivationTimeIE) Marshal() []byte           { return timestampCodec{ActivationTime}.marshal(a.Time) }
func (a ActivationTimeIE) ToIE() IE                  { return timestampCodec{ActivationTime}.toIE(a.Time) }
func UnmarshalActivationTime(payload []byte) (ActivationTimeIE, error) {
	t, err := timestampCodec{ActivationTime}.unmarshal(payload)
	return ActivationTimeIE{Time: t}, err
}

type DeactivationTimeIE struct{ Time time.Time }

func NewDeactivationTime(t time.Time) DeactivationTimeIE { return DeactivationTimeIE{Time: t} }
func (d DeactivationTimeIE) Marshal() []byte             { return timestampCodec{DeactivationTime}.marshal(d.Time) }
func (d DeactivationTimeIE) ToIE() IE                    { return timestampCodec{DeactivationTime}.toIE(d.Time) }
func UnmarshalDeactivationTime(payload []byte) (DeactivationTimeIE, error) {
	t, err := timestampCodec{DeactivationTime}.unmarshal(payload)
	return DeactivationTimeIE{Time: t}, err
}

// IsTimestamp reports whether t is one of the timestamp IE types the
// comparison engine's ignore-timestamps / timestamp-tolerance options apply
// to.
func IsTimestamp(t Type) bool {
	switch t {
	case RecoveryTimeStamp, MonitoringTime, StartTime, EndTime,
		TimeOfFirstPacket, TimeOfLastPacket, ActivationTime, DeactivationTime:
		return true
	default:
		return false
	}
}
