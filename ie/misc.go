package ie

import (
	"net"

	"github.com/your-org/pfcp-codec/pfcperr"
)

// CauseIE reports the outcome of a PFCP request, per TS 29.244 clause 8.2.1.
type CauseIE struct{ Value uint8 }

// Cause values actually exercised by this module's message inventory;
// others pass through as their raw value unexamined.
const (
	CauseRequestAccepted            uint8 = 1
	CauseRequestRejected            uint8 = 64
	CauseSessionContextNotFound     uint8 = 65
	CauseMandatoryIEMissing         uint8 = 66
	CauseConditionalIEMissing       uint8 = 67
	CauseInvalidLength              uint8 = 68
	CauseMandatoryIEIncorrect       uint8 = 69
	CauseInvalidForwardingPolicy    uint8 = 70
	CauseInvalidFTEIDAllocationOpt  uint8 = 71
	CauseNoEstablishedPFCPAssoc     uint8 = 72
	CauseRuleCreationModFailure     uint8 = 73
	CausePFCPEntityInCongestion     uint8 = 74
	CauseNoResourcesAvailable       uint8 = 75
	CauseServiceNotSupported        uint8 = 76
	CauseSystemFailure              uint8 = 77
	CauseVersionNotSupported        uint8 = 78
)

func NewCause(v uint8) CauseIE { return CauseIE{Value: v} }
func (c CauseIE) ToIE() IE     { return New(Cause, []byte{c.Value}) }
func (c CauseIE) Accepted() bool { return c.Value == CauseRequestAccepted }
func UnmarshalCause(payload []byte) (CauseIE, error) {
	v, err := IE{Type: Cause, Payload: payload}.AsUint8()
	return CauseIE{Value: v}, err
}

// SourceInterfaceIE and DestinationInterfaceIE name one of the four PFCP
// interface enum values shared by both IE types (Access, Core, SGi-LAN,
// CP-function), per TS 29.244 clause 8.2.2.
const (
	InterfaceAccess  uint8 = 0
	InterfaceCore    uint8 = 1
	InterfaceSGiLAN  uint8 = 2
	InterfaceCPFunction uint8 = 3
)

type SourceInterfaceIE struct{ Value uint8 }

func NewSourceInterface(v uint8) SourceInterfaceIE { return SourceInterfaceIE{Value: v} }
func (s SourceInterfaceIE) ToIE() IE               { return New(SourceInterface, []byte{s.Value & 0x0F}) }
func UnmarshalSourceInterface(payload []byte) (SourceInterfaceIE, error) {
	v, err := IE{Type: SourceInterface, Payload: payload}.AsUint8()
	return SourceInterfaceIE{Value: v & 0x0F}, err
}

type DestinationInterfaceIE struct{ Value uint8 }

func NewDestinationInterface(v uint8) DestinationInterfaceIE { return DestinationInterfaceIE{Value: v} }
func (d DestinationInterfaceIE) ToIE() IE {
	return New(DestinationInterface, []byte{d.Value & 0x0F})
}
func UnmarshalDestinationInterface(payload []byte) (DestinationInterfaceIE, error) {
	v, err := IE{Type: DestinationInterface, Payload: payload}.AsUint8()
	return DestinationInterfaceIE{Value: v & 0x0F}, err
}

// PDNTypeIE names the PDN/PDU session type: IPv4, IPv6, IPv4v6, non-IP, or
// Ethernet, per TS 29.244 clause 8.2.8.
type PDNTypeIE struct{ Value uint8 }

const (
	PDNTypeIPv4      uint8 = 1
	PDNTypeIPv6      uint8 = 2
	PDNTypeIPv4v6    uint8 = 3
	PDNTypeNonIP     uint8 = 4
	PDNTypeEthernet  uint8 = 5
)

func NewPDNType(v uint8) PDNTypeIE { return PDNTypeIE{Value: v} }
func (p PDNTypeIE) ToIE() IE       { return New(PDNType, []byte{p.Value & 0x07}) }
func UnmarshalPDNType(payload []byte) (PDNTypeIE, error) {
	v, err := IE{Type: PDNType, Payload: payload}.AsUint8()
	return PDNTypeIE{Value: v & 0x07}, err
}

// SNSSAIIE is a Single Network Slice Selection Assistance Information
// value: a Slice/Service Type octet plus a 3-octet Slice Differentiator,
// per TS 23.003 clause 28.4.
type SNSSAIIE struct {
	SST uint8
	SD  [3]byte
}

func (s SNSSAIIE) ToIE() IE {
	return New(SNSSAI, []byte{s.SST, s.SD[0], s.SD[1], s.SD[2]})
}
func UnmarshalSNSSAI(payload []byte) (SNSSAIIE, error) {
	if len(payload) < 4 {
		return SNSSAIIE{}, &pfcperr.InvalidLength{IEName: "SNSSAI", IEType: uint16(SNSSAI), Expected: 4, Actual: len(payload)}
	}
	return SNSSAIIE{SST: payload[0], SD: [3]byte{payload[1], payload[2], payload[3]}}, nil
}

// TraceInformationIE requests UP function signaling trace activation; this
// module carries it as opaque bytes since trace depth is operator-policy
// data the codec does not interpret, per TS 29.244 clause 8.2.99 /
// TS 32.422's trace-recording-session-reference format.
type TraceInformationIE struct{ Raw []byte }

func (t TraceInformationIE) ToIE() IE { return New(TraceInformation, t.Raw) }
func UnmarshalTraceInformation(payload []byte) (TraceInformationIE, error) {
	return TraceInformationIE{Raw: append([]byte(nil), payload...)}, nil
}

// MeasurementMethodIE selects which traffic counters a URR maintains:
// duration, volume, and/or event count, per TS 29.244 clause 8.2.14.
type MeasurementMethodIE struct {
	Duration bool
	Volume   bool
	Event    bool
}

func (m MeasurementMethodIE) ToIE() IE {
	var b byte
	b = setBit(b, 0, m.Duration)
	b = setBit(b, 1, m.Volume)
	b = setBit(b, 2, m.Event)
	return New(MeasurementMethod, []byte{b})
}
func UnmarshalMeasurementMethod(payload []byte) (MeasurementMethodIE, error) {
	if len(payload) < 1 {
		return MeasurementMethodIE{}, &pfcperr.InvalidLength{IEName: "MeasurementMethod", IEType: uint16(MeasurementMethod), Expected: 1, Actual: 0}
	}
	b := payload[0]
	return MeasurementMethodIE{Duration: bitSet(b, 0), Volume: bitSet(b, 1), Event: bitSet(b, 2)}, nil
}

// OuterHeaderRemovalIE tells the UP function which encapsulation header to
// strip before forwarding, per TS 29.244 clause 8.2.29.
type OuterHeaderRemovalIE struct{ Value uint8 }

func NewOuterHeaderRemoval(v uint8) OuterHeaderRemovalIE { return OuterHeaderRemovalIE{Value: v} }
func (o OuterHeaderRemovalIE) ToIE() IE                  { return New(OuterHeaderRemoval, []byte{o.Value}) }
func UnmarshalOuterHeaderRemoval(payload []byte) (OuterHeaderRemovalIE, error) {
	v, err := IE{Type: OuterHeaderRemoval, Payload: payload}.AsUint8()
	return OuterHeaderRemovalIE{Value: v}, err
}

// OuterHeaderCreationIE tells the UP function which encapsulation header to
// apply and with what tunnel parameters, per TS 29.244 clause 8.2.56.
type OuterHeaderCreationIE struct {
	GTPUIPv4   bool
	GTPUIPv6   bool
	UDPIPv4    bool
	UDPIPv6    bool
	TEID       uint32
	IPv4       net.IP
	IPv6       net.IP
	Port       uint16
	HasPort    bool
}

const (
	ohcFlagGTPUIPv4 = 0
	ohcFlagGTPUIPv6 = 1
	ohcFlagUDPIPv4  = 2
	ohcFlagUDPIPv6  = 3
)

func (o OuterHeaderCreationIE) ToIE() IE {
	var flags uint16
	if o.GTPUIPv4 {
		flags |= 1 << ohcFlagGTPUIPv4
	}
	if o.GTPUIPv6 {
		flags |= 1 << ohcFlagGTPUIPv6
	}
	if o.UDPIPv4 {
		flags |= 1 << ohcFlagUDPIPv4
	}
	if o.UDPIPv6 {
		flags |= 1 << ohcFlagUDPIPv6
	}
	payload := []byte{byte(flags >> 8), byte(flags)}
	if o.GTPUIPv4 || o.GTPUIPv6 {
		teid := []byte{byte(o.TEID >> 24), byte(o.TEID >> 16), byte(o.TEID >> 8), byte(o.TEID)}
		payload = append(payload, teid...)
	}
	if o.IPv4 != nil {
		payload = append(payload, o.IPv4.To4()...)
	}
	if o.IPv6 != nil {
		payload = append(payload, o.IPv6.To16()...)
	}
	if o.HasPort {
		payload = append(payload, byte(o.Port>>8), byte(o.Port))
	}
	return New(OuterHeaderCreation, payload)
}

func UnmarshalOuterHeaderCreation(payload []byte) (OuterHeaderCreationIE, error) {
	if len(payload) < 2 {
		return OuterHeaderCreationIE{}, &pfcperr.InvalidLength{IEName: "OuterHeaderCreation", IEType: uint16(OuterHeaderCreation), Expected: 2, Actual: len(payload)}
	}
	flags := uint16(payload[0])<<8 | uint16(payload[1])
	o := OuterHeaderCreationIE{
		GTPUIPv4: flags&(1<<ohcFlagGTPUIPv4) != 0,
		GTPUIPv6: flags&(1<<ohcFlagGTPUIPv6) != 0,
		UDPIPv4:  flags&(1<<ohcFlagUDPIPv4) != 0,
		UDPIPv6:  flags&(1<<ohcFlagUDPIPv6) != 0,
	}
	rest := payload[2:]
	if o.GTPUIPv4 || o.GTPUIPv6 {
		if len(rest) < 4 {
			return OuterHeaderCreationIE{}, &pfcperr.InvalidLength{IEName: "OuterHeaderCreation", IEType: uint16(OuterHeaderCreation), Expected: 4, Actual: len(rest)}
		}
		o.TEID = uint32(rest[0])<<24 | uint32(rest[1])<<16 | uint32(rest[2])<<8 | uint32(rest[3])
		rest = rest[4:]
	}
	if o.GTPUIPv4 || o.UDPIPv4 {
		ip, err := readIPv4(rest)
		if err != nil {
			return OuterHeaderCreationIE{}, err
		}
		o.IPv4 = ip
		rest = rest[net.IPv4len:]
	}
	if o.GTPUIPv6 || o.UDPIPv6 {
		ip, err := readIPv6(rest)
		if err != nil {
			return OuterHeaderCreationIE{}, err
		}
		o.IPv6 = ip
		rest = rest[net.IPv6len:]
	}
	if o.UDPIPv4 || o.UDPIPv6 {
		if len(rest) < 2 {
			return OuterHeaderCreationIE{}, &pfcperr.InvalidLength{IEName: "OuterHeaderCreation", IEType: uint16(OuterHeaderCreation), Expected: 2, Actual: len(rest)}
		}
		o.HasPort = true
		o.Port = uint16(rest[0])<<8 | uint16(rest[1])
	}
	return o, nil
}

// sdfFilterFlag indices for SDFFilterIE's leading flags octet, per
// TS 29.244 clause 8.2.5.
const (
	sdfFlagFD  = 0
	sdfFlagTTC = 1
	sdfFlagSPI = 2
	sdfFlagFL  = 3
	sdfFlagBID = 4
)

// SDFFilterIE is a Service Data Flow filter: an IP filter rule plus
// optional ToS/traffic-class, security parameter index, flow label, and a
// filter ID used to correlate bidirectional filter pairs.
type SDFFilterIE struct {
	FlowDescription string
	HasFlowDescription bool
	TrafficClass    uint16
	HasTrafficClass bool
	SecurityParameterIndex uint32
	HasSPI          bool
	FlowLabel       uint32 // low 3 bytes significant
	HasFlowLabel    bool
	FilterID        uint32
	HasFilterID     bool
}

func (s SDFFilterIE) ToIE() IE {
	var flags byte
	flags = setBit(flags, sdfFlagFD, s.HasFlowDescription)
	flags = setBit(flags, sdfFlagTTC, s.HasTrafficClass)
	flags = setBit(flags, sdfFlagSPI, s.HasSPI)
	flags = setBit(flags, sdfFlagFL, s.HasFlowLabel)
	flags = setBit(flags, sdfFlagBID, s.HasFilterID)

	payload := []byte{flags, 0}
	if s.HasFlowDescription {
		payload = append(payload, byte(len(s.FlowDescription)>>8), byte(len(s.FlowDescription)))
		payload = append(payload, s.FlowDescription...)
	}
	if s.HasTrafficClass {
		payload = append(payload, byte(s.TrafficClass>>8), byte(s.TrafficClass))
	}
	if s.HasSPI {
		payload = append(payload, byte(s.SecurityParameterIndex>>24), byte(s.SecurityParameterIndex>>16), byte(s.SecurityParameterIndex>>8), byte(s.SecurityParameterIndex))
	}
	if s.HasFlowLabel {
		payload = append(payload, byte(s.FlowLabel>>16), byte(s.FlowLabel>>8), byte(s.FlowLabel))
	}
	if s.HasFilterID {
		payload = append(payload, byte(s.FilterID>>24), byte(s.FilterID>>16), byte(s.FilterID>>8), byte(s.FilterID))
	}
	return New(SDFFilter, payload)
}

func UnmarshalSDFFilter(payload []byte) (SDFFilterIE, error) {
	if len(payload) < 2 {
		return SDFFilterIE{}, &pfcperr.InvalidLength{IEName: "SDFFilter", IEType: uint16(SDFFilter), Expected: 2, Actual: len(payload)}
	}
	flags := payload[0]
	s := SDFFilterIE{
		HasFlowDescription: bitSet(flags, sdfFlagFD),
		HasTrafficClass:    bitSet(flags, sdfFlagTTC),
		HasSPI:             bitSet(flags, sdfFlagSPI),
		HasFlowLabel:       bitSet(flags, sdfFlagFL),
		HasFilterID:        bitSet(flags, sdfFlagBID),
	}
	rest := payload[2:]
	need := func(n int) error {
		if len(rest) < n {
			return &pfcperr.InvalidLength{IEName: "SDFFilter", IEType: uint16(SDFFilter), Expected: n, Actual: len(rest)}
		}
		return nil
	}
	if s.HasFlowDescription {
		if err := need(2); err != nil {
			return SDFFilterIE{}, err
		}
		n := int(rest[0])<<8 | int(rest[1])
		rest = rest[2:]
		if err := need(n); err != nil {
			return SDFFilterIE{}, err
		}
		s.FlowDescription = string(rest[:n])
		rest = rest[n:]
	}
	if s.HasTrafficClass {
		if err := need(2); err != nil {
			return SDFFilterIE{}, err
		}
		s.TrafficClass = uint16(rest[0])<<8 | uint16(rest[1])
		rest = rest[2:]
	}
	if s.HasSPI {
		if err := need(4); err != nil {
			return SDFFilterIE{}, err
		}
		s.SecurityParameterIndex = uint32(rest[0])<<24 | uint32(rest[1])<<16 | uint32(rest[2])<<8 | uint32(rest[3])
		rest = rest[4:]
	}
	if s.HasFlowLabel {
		if err := need(3); err != nil {
			return SDFFilterIE{}, err
		}
		s.FlowLabel = uint32(rest[0])<<16 | uint32(rest[1])<<8 | uint32(rest[2])
		rest = rest[3:]
	}
	if s.HasFilterID {
		if err := need(4); err != nil {
			return SDFFilterIE{}, err
		}
		s.FilterID = uint32(rest[0])<<24 | uint32(rest[1])<<16 | uint32(rest[2])<<8 | uint32(rest[3])
	}
	return s, nil
}

// RedirectInformationIE tells the UP function to redirect denied traffic to
// an address instead of silently dropping it, per TS 29.244 clause 8.2.24.
type RedirectInformationIE struct {
	AddressType uint8
	Address     string
}

const (
	RedirectAddressIPv4 uint8 = 0
	RedirectAddressIPv6 uint8 = 1
	RedirectAddressURL  uint8 = 2
	RedirectAddressSIPURI uint8 = 3
)

func (r RedirectInformationIE) ToIE() IE {
	payload := []byte{r.AddressType & 0x0F, byte(len(r.Address) >> 8), byte(len(r.Address))}
	payload = append(payload, r.Address...)
	return New(RedirectInformation, payload)
}

func UnmarshalRedirectInformation(payload []byte) (RedirectInformationIE, error) {
	if len(payload) < 3 {
		return RedirectInformationIE{}, &pfcperr.InvalidLength{IEName: "RedirectInformation", IEType: uint16(RedirectInformation), Expected: 3, Actual: len(payload)}
	}
	n := int(payload[1])<<8 | int(payload[2])
	if len(payload) < 3+n {
		return RedirectInformationIE{}, &pfcperr.InvalidLength{IEName: "RedirectInformation", IEType: uint16(RedirectInformation), Expected: 3 + n, Actual: len(payload)}
	}
	return RedirectInformationIE{AddressType: payload[0] & 0x0F, Address: string(payload[3 : 3+n])}, nil
}
