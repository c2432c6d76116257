package ie

import (
	"net"

	"github.com/your-org/pfcp-codec/pfcperr"
)

const maxPriorityValue = 7
const maxVIDValue = 4095

// CTagIE is a customer VLAN tag (C-TAG): a priority code point, drop-
// eligible indicator, and VLAN ID, packed into 3 octets per TS 29.244
// clause 8.2.100. Byte 0 holds PCP in bits 7-5, DEI in bit 4, and the VID
// high nibble in bits 3-0; byte 1 holds the VID low octet; byte 2 is spare.
type CTagIE struct {
	PCP uint8
	DEI bool
	VID uint16
}

func NewCTag(pcp uint8, dei bool, vid uint16) (CTagIE, error) {
	if pcp > maxPriorityValue {
		return CTagIE{}, &pfcperr.InvalidValue{Field: "CTag.PCP", Value: uitoa(uint16(pcp)), Constraint: "0-7"}
	}
	if vid > maxVIDValue {
		return CTagIE{}, &pfcperr.InvalidValue{Field: "CTag.VID", Value: uitoa(vid), Constraint: "0-4095"}
	}
	return CTagIE{PCP: pcp, DEI: dei, VID: vid}, nil
}

func (c CTagIE) ToIE() IE { return New(CTag, marshalVLANTag(c.PCP, c.DEI, c.VID)) }

func UnmarshalCTag(payload []byte) (CTagIE, error) {
	pcp, dei, vid, err := unmarshalVLANTag("CTag", CTag, payload)
	return CTagIE{PCP: pcp, DEI: dei, VID: vid}, err
}

// STagIE is a service VLAN tag (S-TAG), wire-identical to CTagIE.
type STagIE struct {
	PCP uint8
	DEI bool
	VID uint16
}

func NewSTag(pcp uint8, dei bool, vid uint16) (STagIE, error) {
	if pcp > maxPriorityValue {
		return STagIE{}, &pfcperr.InvalidValue{Field: "STag.PCP", Value: uitoa(uint16(pcp)), Constraint: "0-7"}
	}
	if vid > maxVIDValue {
		return STagIE{}, &pfcperr.InvalidValue{Field: "STag.VID", Value: uitoa(vid), Constraint: "0-4095"}
	}
	return STagIE{PCP: pcp, DEI: dei, VID: vid}, nil
}

func (s STagIE) ToIE() IE { return New(STag, marshalVLANTag(s.PCP, s.DEI, s.VID)) }

func UnmarshalSTag(payload []byte) (STagIE, error) {
	pcp, dei, vid, err := unmarshalVLANTag("STag", STag, payload)
	return STagIE{PCP: pcp, DEI: dei, VID: vid}, err
}

func marshalVLANTag(pcp uint8, dei bool, vid uint16) []byte {
	b0 := (pcp&0x07)<<5 | byte(vid>>8&0x0F)
	if dei {
		b0 |= 0x10
	}
	return []byte{b0, byte(vid & 0xFF), 0}
}

func unmarshalVLANTag(name string, t Type, payload []byte) (pcp uint8, dei bool, vid uint16, err error) {
	if len(payload) < 3 {
		return 0, false, 0, &pfcperr.InvalidLength{IEName: name, IEType: uint16(t), Expected: 3, Actual: len(payload)}
	}
	pcp = (payload[0] >> 5) & 0x07
	dei = payload[0]&0x10 != 0
	vid = uint16(payload[0]&0x0F)<<8 | uint16(payload[1])
	return pcp, dei, vid, nil
}

// EthertypeIE matches traffic by EtherType (e.g. 0x0800 for IPv4).
type EthertypeIE struct{ Value uint16 }

func NewEthertype(v uint16) EthertypeIE { return EthertypeIE{Value: v} }
func (e EthertypeIE) ToIE() IE {
	buf := []byte{byte(e.Value >> 8), byte(e.Value)}
	return New(Ethertype, buf)
}
func UnmarshalEthertype(payload []byte) (EthertypeIE, error) {
	v, err := IE{Type: Ethertype, Payload: payload}.AsUint16()
	return EthertypeIE{Value: v}, err
}

// EthernetFilterIDIE correlates an Ethernet Packet Filter with an external
// filter identity.
type EthernetFilterIDIE struct{ Value uint32 }

func NewEthernetFilterID(v uint32) EthernetFilterIDIE { return EthernetFilterIDIE{Value: v} }
func (e EthernetFilterIDIE) ToIE() IE                 { return u32IE(EthernetFilterID, e.Value) }
func UnmarshalEthernetFilterID(payload []byte) (EthernetFilterIDIE, error) {
	v, err := unmarshalU32(EthernetFilterID, payload)
	return EthernetFilterIDIE{Value: v}, err
}

// EthernetFilterPropertiesIE carries the BIDE flag: whether the filter
// applies bidirectionally.
type EthernetFilterPropertiesIE struct{ Bidirectional bool }

func (e EthernetFilterPropertiesIE) ToIE() IE {
	var b byte
	b = setBit(b, 0, e.Bidirectional)
	return New(EthernetFilterProperties, []byte{b})
}
func UnmarshalEthernetFilterProperties(payload []byte) (EthernetFilterPropertiesIE, error) {
	if len(payload) < 1 {
		return EthernetFilterPropertiesIE{}, &pfcperr.InvalidLength{IEName: "EthernetFilterProperties", IEType: uint16(EthernetFilterProperties), Expected: 1, Actual: 0}
	}
	return EthernetFilterPropertiesIE{Bidirectional: bitSet(payload[0], 0)}, nil
}

// FlowInformationIE carries an IP filter rule string (per TS 29.212 clause
// 5.4.2) up to 255 bytes, bounding how large a single SDF match expression
// may be on the wire.
type FlowInformationIE struct{ Value string }

const maxFlowInformationLen = 255

func NewFlowInformation(v string) (FlowInformationIE, error) {
	if len(v) > maxFlowInformationLen {
		return FlowInformationIE{}, &pfcperr.InvalidValue{Field: "FlowInformation", Value: v, Constraint: "<= 255 bytes"}
	}
	return FlowInformationIE{Value: v}, nil
}
func (f FlowInformationIE) ToIE() IE { return New(FlowInformation, []byte(f.Value)) }
func UnmarshalFlowInformation(payload []byte) (FlowInformationIE, error) {
	if len(payload) > maxFlowInformationLen {
		return FlowInformationIE{}, &pfcperr.InvalidValue{Field: "FlowInformation", Value: uitoa(uint16(len(payload))), Constraint: "<= 255 bytes"}
	}
	s, err := IE{Type: FlowInformation, Payload: payload}.AsString()
	return FlowInformationIE{Value: s}, err
}

// marshalMACList and unmarshalMACList are the shared codec behind
// MACAddressesDetected and MACAddressesRemoved: a count octet followed by that many 6-byte MAC
// addresses, bounded to maxMACAddresses per TS 29.244 clause 8.2.94/8.2.95.
const maxMACAddresses = 16

func marshalMACList(macs []net.HardwareAddr) []byte {
	payload := []byte{byte(len(macs))}
	for _, m := range macs {
		payload = append(payload, m...)
	}
	return payload
}

func unmarshalMACList(name string, t Type, payload []byte) ([]net.HardwareAddr, error) {
	if len(payload) < 1 {
		return nil, &pfcperr.InvalidLength{IEName: name, IEType: uint16(t), Expected: 1, Actual: 0}
	}
	count := int(payload[0])
	if count > maxMACAddresses {
		return nil, &pfcperr.InvalidValue{Field: name, Value: uitoa(uint16(count)), Constraint: "<= 16 MAC addresses"}
	}
	rest := payload[1:]
	macs := make([]net.HardwareAddr, 0, count)
	for i := 0; i < count; i++ {
		mac, err := readMAC(rest)
		if err != nil {
			return nil, err
		}
		macs = append(macs, mac)
		rest = rest[macAddressLen:]
	}
	return macs, nil
}

// MACAddressesDetectedIE reports newly observed source MAC addresses on a
// PDR's Ethernet traffic, up to 16 per report.
type MACAddressesDetectedIE struct{ Addresses []net.HardwareAddr }

func NewMACAddressesDetected(macs []net.HardwareAddr) (MACAddressesDetectedIE, error) {
	if len(macs) > maxMACAddresses {
		return MACAddressesDetectedIE{}, &pfcperr.InvalidValue{Field: "MACAddressesDetected", Value: uitoa(uint16(len(macs))), Constraint: "<= 16 MAC addresses"}
	}
	return MACAddressesDetectedIE{Addresses: macs}, nil
}
func (m MACAddressesDetectedIE) ToIE() IE {
	return New(MACAddressesDetected, marshalMACList(m.Addresses))
}
func UnmarshalMACAddressesDetected(payload []byte) (MACAddressesDetectedIE, error) {
	macs, err := unmarshalMACList("MACAddressesDetected", MACAddressesDetected, payload)
	return MACAddressesDetectedIE{Addresses: macs}, err
}

// MACAddressesRemovedIE reports source MAC addresses that have aged out
// since the last report, mirroring MACAddressesDetectedIE.
type MACAddressesRemovedIE struct{ Addresses []net.HardwareAddr }

func NewMACAddressesRemoved(macs []net.HardwareAddr) (MACAddressesRemovedIE, error) {
	if len(macs) > maxMACAddresses {
		return MACAddressesRemovedIE{}, &pfcperr.InvalidValue{Field: "MACAddressesRemoved", Value: uitoa(uint16(len(macs))), Constraint: "<= 16 MAC addresses"}
	}
	return MACAddressesRemovedIE{Addresses: macs}, nil
}
func (m MACAddressesRemovedIE) ToIE() IE {
	return New(MACAddressesRemoved, marshalMACList(m.Addresses))
}
func UnmarshalMACAddressesRemoved(payload []byte) (MACAddressesRemovedIE, error) {
	macs, err := unmarshalMACList("MACAddressesRemoved", MACAddressesRemoved, payload)
	return MACAddressesRemovedIE{Addresses: macs}, err
}

// macAddressFlagSOUR and macAddressFlagDEST are the flags-byte bit
// positions of the MAC Address IE (TS 29.244 clause 8.2.93): whether the
// Source and Destination address lists that follow are present at all.
const (
	macAddressFlagSOUR = 0
	macAddressFlagDEST = 1
)

// MACAddressIE carries the source and/or destination MAC address lists of
// an Ethernet Packet Filter, each bounded to maxMACAddresses per clause
// 8.2.93.
type MACAddressIE struct {
	Source      []net.HardwareAddr
	Destination []net.HardwareAddr
}

func NewMACAddress(source, destination []net.HardwareAddr) (MACAddressIE, error) {
	if len(source) > maxMACAddresses {
		return MACAddressIE{}, &pfcperr.InvalidValue{Field: "MACAddress.Source", Value: uitoa(uint16(len(source))), Constraint: "<= 16 MAC addresses"}
	}
	if len(destination) > maxMACAddresses {
		return MACAddressIE{}, &pfcperr.InvalidValue{Field: "MACAddress.Destination", Value: uitoa(uint16(len(destination))), Constraint: "<= 16 MAC addresses"}
	}
	return MACAddressIE{Source: source, Destination: destination}, nil
}

func (m MACAddressIE) ToIE() IE {
	var flags byte
	flags = setBit(flags, macAddressFlagSOUR, len(m.Source) > 0)
	flags = setBit(flags, macAddressFlagDEST, len(m.Destination) > 0)

	payload := []byte{flags}
	if len(m.Source) > 0 {
		payload = append(payload, marshalMACList(m.Source)...)
	}
	if len(m.Destination) > 0 {
		payload = append(payload, marshalMACList(m.Destination)...)
	}
	return New(MACAddress, payload)
}

func UnmarshalMACAddress(payload []byte) (MACAddressIE, error) {
	if len(payload) < 1 {
		return MACAddressIE{}, &pfcperr.InvalidLength{IEName: "MACAddress", IEType: uint16(MACAddress), Expected: 1, Actual: 0}
	}
	flags := payload[0]
	rest := payload[1:]

	var m MACAddressIE
	if bitSet(flags, macAddressFlagSOUR) {
		macs, tail, err := readMACList("MACAddress.Source", MACAddress, rest)
		if err != nil {
			return MACAddressIE{}, err
		}
		m.Source = macs
		rest = tail
	}
	if bitSet(flags, macAddressFlagDEST) {
		macs, tail, err := readMACList("MACAddress.Destination", MACAddress, rest)
		if err != nil {
			return MACAddressIE{}, err
		}
		m.Destination = macs
		rest = tail
	}
	_ = rest
	return m, nil
}

// readMACList parses a count-prefixed MAC address list from the front of b,
// as marshalMACList produces it, and returns the unconsumed remainder.
func readMACList(name string, t Type, b []byte) ([]net.HardwareAddr, []byte, error) {
	if len(b) < 1 {
		return nil, nil, &pfcperr.InvalidLength{IEName: name, IEType: uint16(t), Expected: 1, Actual: 0}
	}
	count := int(b[0])
	if count > maxMACAddresses {
		return nil, nil, &pfcperr.InvalidValue{Field: name, Value: uitoa(uint16(count)), Constraint: "<= 16 MAC addresses"}
	}
	b = b[1:]
	macs := make([]net.HardwareAddr, 0, count)
	for i := 0; i < count; i++ {
		mac, err := readMAC(b)
		if err != nil {
			return nil, nil, err
		}
		macs = append(macs, mac)
		b = b[macAddressLen:]
	}
	return macs, b, nil
}

// EthernetPacketFilterIE is a grouped IE describing one Ethernet-layer
// traffic filter for a PDI, per TS 29.244 clause 7.5.2.2-3.
type EthernetPacketFilterIE struct {
	EthernetFilterID         *EthernetFilterIDIE
	EthernetFilterProperties *EthernetFilterPropertiesIE
	MACAddress               *MACAddressIE
	Ethertype                *EthertypeIE
	CTag                     *CTagIE
	STag                     *STagIE
	SDFFilter                *SDFFilterIE
}

func (e EthernetPacketFilterIE) ToIE() IE {
	var children []IE
	if e.EthernetFilterID != nil {
		children = append(children, e.EthernetFilterID.ToIE())
	}
	if e.EthernetFilterProperties != nil {
		children = append(children, e.EthernetFilterProperties.ToIE())
	}
	if e.MACAddress != nil {
		children = append(children, e.MACAddress.ToIE())
	}
	if e.Ethertype != nil {
		children = append(children, e.Ethertype.ToIE())
	}
	if e.CTag != nil {
		children = append(children, e.CTag.ToIE())
	}
	if e.STag != nil {
		children = append(children, e.STag.ToIE())
	}
	if e.SDFFilter != nil {
		children = append(children, e.SDFFilter.ToIE())
	}
	return NewGrouped(EthernetPacketFilter, children)
}

func UnmarshalEthernetPacketFilter(group IE) (EthernetPacketFilterIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return EthernetPacketFilterIE{}, err
	}
	var e EthernetPacketFilterIE
	for _, c := range children {
		switch c.Type {
		case EthernetFilterID:
			v, err := UnmarshalEthernetFilterID(c.Payload)
			if err != nil {
				return EthernetPacketFilterIE{}, err
			}
			e.EthernetFilterID = &v
		case EthernetFilterProperties:
			v, err := UnmarshalEthernetFilterProperties(c.Payload)
			if err != nil {
				return EthernetPacketFilterIE{}, err
			}
			e.EthernetFilterProperties = &v
		case MACAddress:
			v, err := UnmarshalMACAddress(c.Payload)
			if err != nil {
				return EthernetPacketFilterIE{}, err
			}
			e.MACAddress = &v
		case Ethertype:
			v, err := UnmarshalEthertype(c.Payload)
			if err != nil {
				return EthernetPacketFilterIE{}, err
			}
			e.Ethertype = &v
		case CTag:
			v, err := UnmarshalCTag(c.Payload)
			if err != nil {
				return EthernetPacketFilterIE{}, err
			}
			e.CTag = &v
		case STag:
			v, err := UnmarshalSTag(c.Payload)
			if err != nil {
				return EthernetPacketFilterIE{}, err
			}
			e.STag = &v
		case SDFFilter:
			v, err := UnmarshalSDFFilter(c.Payload)
			if err != nil {
				return EthernetPacketFilterIE{}, err
			}
			e.SDFFilter = &v
		}
	}
	return e, nil
}

// EthernetContextInformationIE is a grouped IE reporting MAC learning
// results for a PDR, per TS 29.244 clause 7.5.3.5. At least one
// MACAddressesDetected child is mandatory per the clause's own semantics:
// a report with nothing learned is not a report.
type EthernetContextInformationIE struct {
	MACAddressesDetected MACAddressesDetectedIE
}

func (e EthernetContextInformationIE) ToIE() IE {
	return NewGrouped(EthernetContextInformation, []IE{e.MACAddressesDetected.ToIE()})
}

func UnmarshalEthernetContextInformation(group IE) (EthernetContextInformationIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return EthernetContextInformationIE{}, err
	}
	for _, c := range children {
		if c.Type == MACAddressesDetected {
			v, err := UnmarshalMACAddressesDetected(c.Payload)
			if err != nil {
				return EthernetContextInformationIE{}, err
			}
			return EthernetContextInformationIE{MACAddressesDetected: v}, nil
		}
	}
	return EthernetContextInformationIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(MACAddressesDetected), IEName: "MACAddressesDetected", ParentIE: "EthernetContextInformation"}
}
