package ie

import (
	"encoding/binary"
	"net"

	"github.com/your-org/pfcp-codec/pfcperr"
)

// FTEIDIE is an F-TEID: a GTP-U tunnel endpoint identifier paired with the
// IP address(es) it resides on, per TS 29.244 clause 8.2.3. Exactly one of
// two shapes is valid:
//
//   - explicit: Choose is false, TEID and at least one of IPv4/IPv6 are set.
//   - delegated: Choose is true, the UP function picks both TEID and
//     address; TEID/IPv4/IPv6 are not carried on the wire. ChooseID
//     (optional) lets the CP function correlate which F-TEIDs in a single
//     message share an allocation.
//
// The constructors keep the two shapes apart: NewFTEID only builds the
// explicit shape (and rejects one with no address), NewDelegatedFTEID only
// the delegated one. A struct literal that sets Choose together with a
// TEID or an address is not rejected; ToIE then omits TEID and addresses.
type FTEIDIE struct {
	Choose   bool
	ChooseID uint8
	HasChooseID bool
	TEID     uint32
	IPv4     net.IP
	IPv6     net.IP
}

const (
	fteidFlagV4   = 0
	fteidFlagV6   = 1
	fteidFlagCH   = 2
	fteidFlagCHID = 3
)

// NewFTEID builds an explicit F-TEID: a concrete TEID bound to ipv4 and/or
// ipv6 (either may be nil, not both).
func NewFTEID(teid uint32, ipv4, ipv6 net.IP) (FTEIDIE, error) {
	if ipv4 == nil && ipv6 == nil {
		return FTEIDIE{}, &pfcperr.ValidationError{Context: "FTEID", Field: "address", Detail: "at least one of IPv4/IPv6 is required for an explicit F-TEID"}
	}
	return FTEIDIE{TEID: teid, IPv4: ipv4, IPv6: ipv6}, nil
}

// NewDelegatedFTEID builds a Choose/CH F-TEID delegating address and TEID
// assignment to the UP function. chooseID, when non-negative, is carried as
// CHID to correlate multiple delegated F-TEIDs in one message.
func NewDelegatedFTEID(chooseID int) FTEIDIE {
	f := FTEIDIE{Choose: true}
	if chooseID >= 0 {
		f.HasChooseID = true
		f.ChooseID = uint8(chooseID)
	}
	return f
}

func (f FTEIDIE) ToIE() IE {
	var flags byte
	flags = setBit(flags, fteidFlagV4, f.IPv4 != nil)
	flags = setBit(flags, fteidFlagV6, f.IPv6 != nil)
	flags = setBit(flags, fteidFlagCH, f.Choose)
	flags = setBit(flags, fteidFlagCHID, f.HasChooseID)

	payload := []byte{flags}
	if !f.Choose {
		teid := make([]byte, 4)
		binary.BigEndian.PutUint32(teid, f.TEID)
		payload = append(payload, teid...)
		if f.IPv4 != nil {
			payload = append(payload, f.IPv4.To4()...)
		}
		if f.IPv6 != nil {
			payload = append(payload, f.IPv6.To16()...)
		}
	}
	if f.HasChooseID {
		payload = append(payload, f.ChooseID)
	}
	return New(FTEID, payload)
}

func UnmarshalFTEID(payload []byte) (FTEIDIE, error) {
	if len(payload) < 1 {
		return FTEIDIE{}, &pfcperr.InvalidLength{IEName: "FTEID", IEType: uint16(FTEID), Expected: 1, Actual: 0}
	}
	flags := payload[0]
	f := FTEIDIE{
		Choose:      bitSet(flags, fteidFlagCH),
		HasChooseID: bitSet(flags, fteidFlagCHID),
	}
	rest := payload[1:]

	if !f.Choose {
		if len(rest) < 4 {
			return FTEIDIE{}, &pfcperr.InvalidLength{IEName: "FTEID", IEType: uint16(FTEID), Expected: 5, Actual: len(payload)}
		}
		f.TEID = binary.BigEndian.Uint32(rest[:4])
		rest = rest[4:]

		if bitSet(flags, fteidFlagV4) {
			ip, err := readIPv4(rest)
			if err != nil {
				return FTEIDIE{}, err
			}
			f.IPv4 = ip
			rest = rest[net.IPv4len:]
		}
		if bitSet(flags, fteidFlagV6) {
			ip, err := readIPv6(rest)
			if err != nil {
				return FTEIDIE{}, err
			}
			f.IPv6 = ip
			rest = rest[net.IPv6len:]
		}
	}
	if f.HasChooseID {
		if len(rest) < 1 {
			return FTEIDIE{}, &pfcperr.InvalidLength{IEName: "FTEID", IEType: uint16(FTEID), Expected: 1, Actual: 0}
		}
		f.ChooseID = rest[0]
	}
	return f, nil
}

// UEIPAddressIE identifies a UE's IP address, per TS 29.244 clause 8.2.62.
// The flags byte selects which of the optional fields follow, in strict
// wire order: IPv4, then IPv6, then an IPv6 prefix delegation bit length.
type UEIPAddressIE struct {
	IPv4           net.IP
	IPv6           net.IP
	IsSourceOrDest bool // SD: 0 = destination (UPF-assigned), 1 = source (UE-originated)
	ChooseIPv4     bool
	ChooseIPv6     bool
	IPv6PrefixLen  uint8
	HasIPv6PrefixLen bool
}

const (
	ueIPFlagV6    = 0
	ueIPFlagV4    = 1
	ueIPFlagSD    = 2
	ueIPFlagCHV4  = 3
	ueIPFlagCHV6  = 4
	ueIPFlagIP6PL = 5
)

func (u UEIPAddressIE) ToIE() IE {
	var flags byte
	flags = setBit(flags, ueIPFlagV4, u.IPv4 != nil)
	flags = setBit(flags, ueIPFlagV6, u.IPv6 != nil)
	flags = setBit(flags, ueIPFlagSD, u.IsSourceOrDest)
	flags = setBit(flags, ueIPFlagCHV4, u.ChooseIPv4)
	flags = setBit(flags, ueIPFlagCHV6, u.ChooseIPv6)
	flags = setBit(flags, ueIPFlagIP6PL, u.HasIPv6PrefixLen)

	payload := []byte{flags}
	if u.IPv4 != nil {
		payload = append(payload, u.IPv4.To4()...)
	}
	if u.IPv6 != nil {
		payload = append(payload, u.IPv6.To16()...)
	}
	if u.HasIPv6PrefixLen {
		payload = append(payload, u.IPv6PrefixLen)
	}
	return New(UEIPAddress, payload)
}

func UnmarshalUEIPAddress(payload []byte) (UEIPAddressIE, error) {
	if len(payload) < 1 {
		return UEIPAddressIE{}, &pfcperr.InvalidLength{IEName: "UEIPAddress", IEType: uint16(UEIPAddress), Expected: 1, Actual: 0}
	}
	flags := payload[0]
	u := UEIPAddressIE{
		IsSourceOrDest:   bitSet(flags, ueIPFlagSD),
		ChooseIPv4:       bitSet(flags, ueIPFlagCHV4),
		ChooseIPv6:       bitSet(flags, ueIPFlagCHV6),
		HasIPv6PrefixLen: bitSet(flags, ueIPFlagIP6PL),
	}
	rest := payload[1:]
	if bitSet(flags, ueIPFlagV4) {
		ip, err := readIPv4(rest)
		if err != nil {
			return UEIPAddressIE{}, err
		}
		u.IPv4 = ip
		rest = rest[net.IPv4len:]
	}
	if bitSet(flags, ueIPFlagV6) {
		ip, err := readIPv6(rest)
		if err != nil {
			return UEIPAddressIE{}, err
		}
		u.IPv6 = ip
		rest = rest[net.IPv6len:]
	}
	if u.HasIPv6PrefixLen {
		if len(rest) < 1 {
			return UEIPAddressIE{}, &pfcperr.InvalidLength{IEName: "UEIPAddress", IEType: uint16(UEIPAddress), Expected: 1, Actual: 0}
		}
		u.IPv6PrefixLen = rest[0]
	}
	return u, nil
}

// nodeIDType tags which address form a Node ID carries, per TS 29.244
// clause 8.2.38's type field (octet 5 low nibble).
type nodeIDType uint8

const (
	nodeIDTypeIPv4 nodeIDType = 0
	nodeIDTypeIPv6 nodeIDType = 1
	nodeIDTypeFQDN nodeIDType = 2
)

// NodeIDIE identifies a CP or UP function, as an IPv4 address, an IPv6
// address, or an FQDN.
type NodeIDIE struct {
	IPv4 net.IP
	IPv6 net.IP
	FQDN string
}

func NewNodeIDIPv4(ip net.IP) NodeIDIE { return NodeIDIE{IPv4: ip} }
func NewNodeIDIPv6(ip net.IP) NodeIDIE { return NodeIDIE{IPv6: ip} }
func NewNodeIDFQDN(fqdn string) NodeIDIE { return NodeIDIE{FQDN: fqdn} }

func (n NodeIDIE) ToIE() IE {
	switch {
	case n.IPv4 != nil:
		return New(NodeID, append([]byte{byte(nodeIDTypeIPv4)}, n.IPv4.To4()...))
	case n.IPv6 != nil:
		return New(NodeID, append([]byte{byte(nodeIDTypeIPv6)}, n.IPv6.To16()...))
	default:
		return New(NodeID, append([]byte{byte(nodeIDTypeFQDN)}, encodeDNSName(n.FQDN)...))
	}
}

func UnmarshalNodeID(payload []byte) (NodeIDIE, error) {
	if len(payload) < 1 {
		return NodeIDIE{}, &pfcperr.InvalidLength{IEName: "NodeID", IEType: uint16(NodeID), Expected: 1, Actual: 0}
	}
	kind := nodeIDType(payload[0] & 0x0F)
	rest := payload[1:]
	switch kind {
	case nodeIDTypeIPv4:
		ip, err := readIPv4(rest)
		if err != nil {
			return NodeIDIE{}, err
		}
		return NodeIDIE{IPv4: ip}, nil
	case nodeIDTypeIPv6:
		ip, err := readIPv6(rest)
		if err != nil {
			return NodeIDIE{}, err
		}
		return NodeIDIE{IPv6: ip}, nil
	case nodeIDTypeFQDN:
		name, err := decodeDNSName(rest)
		if err != nil {
			return NodeIDIE{}, err
		}
		return NodeIDIE{FQDN: name}, nil
	default:
		return NodeIDIE{}, &pfcperr.InvalidValue{Field: "NodeID.Type", Value: uitoa(uint16(kind)), Constraint: "0 (IPv4), 1 (IPv6), or 2 (FQDN)"}
	}
}

// FSEIDIE is a Session Endpoint Identifier: a 64-bit SEID paired with the
// IP address(es) the SEID is reachable at, per TS 29.244 clause 8.2.37.
type FSEIDIE struct {
	SEID uint64
	IPv4 net.IP
	IPv6 net.IP
}

func NewFSEID(seid uint64, ipv4, ipv6 net.IP) FSEIDIE {
	return FSEIDIE{SEID: seid, IPv4: ipv4, IPv6: ipv6}
}

func (f FSEIDIE) ToIE() IE {
	var flags byte
	flags = setBit(flags, 0, f.IPv6 != nil)
	flags = setBit(flags, 1, f.IPv4 != nil)

	payload := make([]byte, 9)
	payload[0] = flags
	binary.BigEndian.PutUint64(payload[1:9], f.SEID)
	if f.IPv4 != nil {
		payload = append(payload, f.IPv4.To4()...)
	}
	if f.IPv6 != nil {
		payload = append(payload, f.IPv6.To16()...)
	}
	return New(FSEID, payload)
}

func UnmarshalFSEID(payload []byte) (FSEIDIE, error) {
	if len(payload) < 9 {
		return FSEIDIE{}, &pfcperr.InvalidLength{IEName: "FSEID", IEType: uint16(FSEID), Expected: 9, Actual: len(payload)}
	}
	flags := payload[0]
	f := FSEIDIE{SEID: binary.BigEndian.Uint64(payload[1:9])}
	rest := payload[9:]
	if bitSet(flags, 1) {
		ip, err := readIPv4(rest)
		if err != nil {
			return FSEIDIE{}, err
		}
		f.IPv4 = ip
		rest = rest[net.IPv4len:]
	}
	if bitSet(flags, 0) {
		ip, err := readIPv6(rest)
		if err != nil {
			return FSEIDIE{}, err
		}
		f.IPv6 = ip
	}
	return f, nil
}

// UserIDIE carries a UE's identities, per TS 29.244 clause 8.2.88. A flags
// byte marks which identity forms are present; several may be present at once.
type UserIDIE struct {
	IMSI    string
	IMEI    string
	MSISDN  string
	NAI     string
}

func (u UserIDIE) ToIE() IE {
	var flags byte
	flags = setBit(flags, 0, u.IMSI != "")
	flags = setBit(flags, 1, u.IMEI != "")
	flags = setBit(flags, 2, u.MSISDN != "")
	flags = setBit(flags, 3, u.NAI != "")

	payload := []byte{flags}
	payload = appendTBCD(payload, u.IMSI)
	payload = appendTBCD(payload, u.IMEI)
	payload = appendTBCD(payload, u.MSISDN)
	payload = append(payload, []byte(u.NAI)...)
	return New(UserID, payload)
}

// appendTBCD appends a length-prefixed identity digit string. This module
// stores identities as plain decimal-digit strings rather than packed
// TBCD, matching what callers pass in and what they read back; the
// length prefix alone is enough for UserID's conditional layout to decode
// unambiguously since each field is variable-length.
func appendTBCD(buf []byte, digits string) []byte {
	if digits == "" {
		return buf
	}
	buf = append(buf, byte(len(digits)))
	return append(buf, []byte(digits)...)
}

func UnmarshalUserID(payload []byte) (UserIDIE, error) {
	if len(payload) < 1 {
		return UserIDIE{}, &pfcperr.InvalidLength{IEName: "UserID", IEType: uint16(UserID), Expected: 1, Actual: 0}
	}
	flags := payload[0]
	rest := payload[1:]
	var u UserIDIE
	var err error
	if bitSet(flags, 0) {
		u.IMSI, rest, err = readLenPrefixed(rest)
		if err != nil {
			return UserIDIE{}, err
		}
	}
	if bitSet(flags, 1) {
		u.IMEI, rest, err = readLenPrefixed(rest)
		if err != nil {
			return UserIDIE{}, err
		}
	}
	if bitSet(flags, 2) {
		u.MSISDN, rest, err = readLenPrefixed(rest)
		if err != nil {
			return UserIDIE{}, err
		}
	}
	if bitSet(flags, 3) {
		u.NAI = string(rest)
	}
	return u, nil
}

func readLenPrefixed(b []byte) (string, []byte, error) {
	if len(b) < 1 {
		return "", nil, &pfcperr.InvalidLength{IEName: "UserID", IEType: uint16(UserID), Expected: 1, Actual: 0}
	}
	n := int(b[0])
	if len(b) < 1+n {
		return "", nil, &pfcperr.InvalidLength{IEName: "UserID", IEType: uint16(UserID), Expected: 1 + n, Actual: len(b)}
	}
	return string(b[1 : 1+n]), b[1+n:], nil
}
