package ie

import "github.com/your-org/pfcp-codec/pfcperr"

// ApplyActionIE selects what a FAR does with matched traffic: forward, drop,
// buffer, notify the CP, or duplicate, per TS 29.244 clause 8.2.25. The five
// low bits of the single flag byte are significant; remaining bits are spare
// and truncated on decode per this module's lenient spare-bit policy.
type ApplyActionIE struct {
	Forward   bool
	Drop      bool
	Buffer    bool
	NotifyCP  bool
	Duplicate bool
}

const (
	applyActionDrop      = 0
	applyActionForward   = 1
	applyActionBuffer    = 2
	applyActionNotifyCP  = 3
	applyActionDuplicate = 4
)

func (a ApplyActionIE) ToIE() IE {
	var flags byte
	flags = setBit(flags, applyActionDrop, a.Drop)
	flags = setBit(flags, applyActionForward, a.Forward)
	flags = setBit(flags, applyActionBuffer, a.Buffer)
	flags = setBit(flags, applyActionNotifyCP, a.NotifyCP)
	flags = setBit(flags, applyActionDuplicate, a.Duplicate)
	return New(ApplyAction, []byte{flags})
}

func UnmarshalApplyAction(payload []byte) (ApplyActionIE, error) {
	if len(payload) < 1 {
		return ApplyActionIE{}, &pfcperr.InvalidLength{IEName: "ApplyAction", IEType: uint16(ApplyAction), Expected: 1, Actual: 0}
	}
	flags := payload[0]
	return ApplyActionIE{
		Drop:      bitSet(flags, applyActionDrop),
		Forward:   bitSet(flags, applyActionForward),
		Buffer:    bitSet(flags, applyActionBuffer),
		NotifyCP:  bitSet(flags, applyActionNotifyCP),
		Duplicate: bitSet(flags, applyActionDuplicate),
	}, nil
}

// GateStatusIE holds the independent uplink/downlink gate for a QER: open or
// closed. Each gate occupies a 2-bit field (00 = open, 01 = closed) packed
// into a single byte: downlink in bits 0-1, uplink in bits 2-3.
type GateStatusIE struct {
	UplinkOpen   bool
	DownlinkOpen bool
}

const gateClosed = 0x01

func (g GateStatusIE) ToIE() IE {
	var b byte
	if !g.DownlinkOpen {
		b |= gateClosed
	}
	if !g.UplinkOpen {
		b |= gateClosed << 2
	}
	return New(GateStatus, []byte{b})
}

func UnmarshalGateStatus(payload []byte) (GateStatusIE, error) {
	if len(payload) < 1 {
		return GateStatusIE{}, &pfcperr.InvalidLength{IEName: "GateStatus", IEType: uint16(GateStatus), Expected: 1, Actual: 0}
	}
	b := payload[0]
	return GateStatusIE{
		DownlinkOpen: b&0x03 != gateClosed,
		UplinkOpen:   (b>>2)&0x03 != gateClosed,
	}, nil
}

// ReportTypeIE tells the CP function why a usage/session report was
// generated.
type ReportTypeIE struct {
	DLDR  bool // downlink data report
	USAR  bool // usage report
	ERIR  bool // error indication report
	UPIR  bool // user plane inactivity report
	TMIR  bool // TSC management information report (Rel-16)
	SESR  bool // session report
	UISR  bool // user ID session report (Rel-17)
}

func (r ReportTypeIE) ToIE() IE {
	var flags byte
	flags = setBit(flags, 0, r.DLDR)
	flags = setBit(flags, 1, r.USAR)
	flags = setBit(flags, 2, r.ERIR)
	flags = setBit(flags, 3, r.UPIR)
	flags = setBit(flags, 4, r.TMIR)
	flags = setBit(flags, 5, r.SESR)
	flags = setBit(flags, 6, r.UISR)
	return New(ReportType, []byte{flags})
}

func UnmarshalReportType(payload []byte) (ReportTypeIE, error) {
	if len(payload) < 1 {
		return ReportTypeIE{}, &pfcperr.InvalidLength{IEName: "ReportType", IEType: uint16(ReportType), Expected: 1, Actual: 0}
	}
	flags := payload[0]
	return ReportTypeIE{
		DLDR: bitSet(flags, 0), USAR: bitSet(flags, 1), ERIR: bitSet(flags, 2),
		UPIR: bitSet(flags, 3), TMIR: bitSet(flags, 4), SESR: bitSet(flags, 5),
		UISR: bitSet(flags, 6),
	}, nil
}

// UsageReportTriggerIE records which condition(s) caused a URR to emit a
// usage report. The field spans 3 octets per TS 29.244 clause 8.2.41; this
// module exposes the triggers actually exercised by the message inventory
// and truncates the remainder as spare on decode.
type UsageReportTriggerIE struct {
	PeriodicReport   bool
	VolumeThreshold  bool
	TimeThreshold    bool
	QuotaHoldingTime bool
	StartOfTraffic   bool
	StopOfTraffic    bool
	VolumeQuota      bool
	TimeQuota        bool
	LinkedURRChange  bool
}

func (u UsageReportTriggerIE) ToIE() IE {
	var b0, b1 byte
	b0 = setBit(b0, 0, u.PeriodicReport)
	b0 = setBit(b0, 1, u.VolumeThreshold)
	b0 = setBit(b0, 2, u.TimeThreshold)
	b0 = setBit(b0, 3, u.QuotaHoldingTime)
	b0 = setBit(b0, 4, u.StartOfTraffic)
	b0 = setBit(b0, 5, u.StopOfTraffic)
	b0 = setBit(b0, 6, u.VolumeQuota)
	b0 = setBit(b0, 7, u.TimeQuota)
	b1 = setBit(b1, 0, u.LinkedURRChange)
	return New(UsageReportTrigger, []byte{b0, b1, 0})
}

func UnmarshalUsageReportTrigger(payload []byte) (UsageReportTriggerIE, error) {
	if len(payload) < 3 {
		return UsageReportTriggerIE{}, &pfcperr.InvalidLength{IEName: "UsageReportTrigger", IEType: uint16(UsageReportTrigger), Expected: 3, Actual: len(payload)}
	}
	b0, b1 := payload[0], payload[1]
	return UsageReportTriggerIE{
		PeriodicReport: bitSet(b0, 0), VolumeThreshold: bitSet(b0, 1), TimeThreshold: bitSet(b0, 2),
		QuotaHoldingTime: bitSet(b0, 3), StartOfTraffic: bitSet(b0, 4), StopOfTraffic: bitSet(b0, 5),
		VolumeQuota: bitSet(b0, 6), TimeQuota: bitSet(b0, 7),
		LinkedURRChange: bitSet(b1, 0),
	}, nil
}

// OffendingIEIE echoes, in a rejection response, the IE type that failed
// validation.
type OffendingIEIE struct{ IEType uint16 }

func NewOffendingIE(t uint16) OffendingIEIE { return OffendingIEIE{IEType: t} }
func (o OffendingIEIE) ToIE() IE            { return u32IE(OffendingIE, uint32(o.IEType)<<16) }
func UnmarshalOffendingIE(payload []byte) (OffendingIEIE, error) {
	v, err := unmarshalU32(OffendingIE, payload)
	if err != nil {
		return OffendingIEIE{}, err
	}
	return OffendingIEIE{IEType: uint16(v >> 16)}, nil
}

// PFCPSMReqFlagsIE carries session-modification-request behavior flags.
type PFCPSMReqFlagsIE struct {
	DropBufferedPackets bool // DROBU
	SendEndMarker       bool // SNDEM
	QueueAllAtDeactivate bool // QAURR (Rel-16)
}

func (f PFCPSMReqFlagsIE) ToIE() IE {
	var b byte
	b = setBit(b, 0, f.DropBufferedPackets)
	b = setBit(b, 1, f.SendEndMarker)
	b = setBit(b, 2, f.QueueAllAtDeactivate)
	return New(PFCPSMReqFlags, []byte{b})
}

func UnmarshalPFCPSMReqFlags(payload []byte) (PFCPSMReqFlagsIE, error) {
	if len(payload) < 1 {
		return PFCPSMReqFlagsIE{}, &pfcperr.InvalidLength{IEName: "PFCPSMReqFlags", IEType: uint16(PFCPSMReqFlags), Expected: 1, Actual: 0}
	}
	b := payload[0]
	return PFCPSMReqFlagsIE{
		DropBufferedPackets:  bitSet(b, 0),
		SendEndMarker:        bitSet(b, 1),
		QueueAllAtDeactivate: bitSet(b, 2),
	}, nil
}

// PFCPSRRspFlagsIE carries session-report-response behavior flags.
type PFCPSRRspFlagsIE struct {
	DropBufferedPackets bool // DROBU
}

func (f PFCPSRRspFlagsIE) ToIE() IE {
	var b byte
	b = setBit(b, 0, f.DropBufferedPackets)
	return New(PFCPSRRspFlags, []byte{b})
}

func UnmarshalPFCPSRRspFlags(payload []byte) (PFCPSRRspFlagsIE, error) {
	if len(payload) < 1 {
		return PFCPSRRspFlagsIE{}, &pfcperr.InvalidLength{IEName: "PFCPSRRspFlags", IEType: uint16(PFCPSRRspFlags), Expected: 1, Actual: 0}
	}
	return PFCPSRRspFlagsIE{DropBufferedPackets: bitSet(payload[0], 0)}, nil
}

// UPFunctionFeaturesIE advertises UP function capabilities as a variable-
// length bitmask (TS 29.244 clause 8.2.28 defines octets 5 onward
// incrementally across releases). This module exposes the Rel-15 baseline
// bits and preserves any trailing octets verbatim for forward compatibility.
type UPFunctionFeaturesIE struct {
	BUCP bool // downlink data buffering in CP function
	DDND bool // buffering notification to CP
	DLBD bool // downlink data buffering
	TRST bool // traffic steering
	FTUP bool // F-TEID allocation by UP function
	PFDM bool // PFD management
	HEEU bool // header enrichment
	extra []byte
}

func (u UPFunctionFeaturesIE) ToIE() IE {
	var b0 byte
	b0 = setBit(b0, 0, u.BUCP)
	b0 = setBit(b0, 1, u.DDND)
	b0 = setBit(b0, 2, u.DLBD)
	b0 = setBit(b0, 3, u.TRST)
	b0 = setBit(b0, 4, u.FTUP)
	b0 = setBit(b0, 5, u.PFDM)
	b0 = setBit(b0, 6, u.HEEU)
	payload := append([]byte{b0}, u.extra...)
	return New(UPFunctionFeatures, payload)
}

func UnmarshalUPFunctionFeatures(payload []byte) (UPFunctionFeaturesIE, error) {
	if len(payload) < 1 {
		return UPFunctionFeaturesIE{}, &pfcperr.InvalidLength{IEName: "UPFunctionFeatures", IEType: uint16(UPFunctionFeatures), Expected: 1, Actual: 0}
	}
	b0 := payload[0]
	u := UPFunctionFeaturesIE{
		BUCP: bitSet(b0, 0), DDND: bitSet(b0, 1), DLBD: bitSet(b0, 2), TRST: bitSet(b0, 3),
		FTUP: bitSet(b0, 4), PFDM: bitSet(b0, 5), HEEU: bitSet(b0, 6),
	}
	if len(payload) > 1 {
		u.extra = append([]byte(nil), payload[1:]...)
	}
	return u, nil
}

// CPFunctionFeaturesIE advertises CP function capabilities, mirroring
// UPFunctionFeaturesIE's single-octet-plus-extension shape.
type CPFunctionFeaturesIE struct {
	LOAD  bool // load control
	OVRL  bool // overload control
	extra []byte
}

func (c CPFunctionFeaturesIE) ToIE() IE {
	var b0 byte
	b0 = setBit(b0, 0, c.LOAD)
	b0 = setBit(b0, 1, c.OVRL)
	payload := append([]byte{b0}, c.extra...)
	return New(CPFunctionFeatures, payload)
}

func UnmarshalCPFunctionFeatures(payload []byte) (CPFunctionFeaturesIE, error) {
	if len(payload) < 1 {
		return CPFunctionFeaturesIE{}, &pfcperr.InvalidLength{IEName: "CPFunctionFeatures", IEType: uint16(CPFunctionFeatures), Expected: 1, Actual: 0}
	}
	b0 := payload[0]
	c := CPFunctionFeaturesIE{LOAD: bitSet(b0, 0), OVRL: bitSet(b0, 1)}
	if len(payload) > 1 {
		c.extra = append([]byte(nil), payload[1:]...)
	}
	return c, nil
}
