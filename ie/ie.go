package ie

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/your-org/pfcp-codec/pfcperr"
	"github.com/your-org/pfcp-codec/pfcplog"
	"go.uber.org/zap"
)

// MaxGroupDepth is the nesting bound for grouped IEs. Nothing in this
// module checks it: ChildIEs parses a single level and never recurses, and
// callers that walk deeper levels do not count depth.
const MaxGroupDepth = 32

// IE is the generic TLV envelope every concrete IE type marshals to and
// unmarshals from. Layer L2 types encode and decode only the Payload bytes;
// the TLV header is written and read here, by IE.Marshal/Unmarshal.
//
// An IE is a value object once constructed: Payload is never mutated after
// New/NewVendorSpecific/NewGrouped returns, and the lazily-populated child
// list is computed once and cached, not invalidated by any later mutation
// because none is possible.
type IE struct {
	Type         Type
	EnterpriseID uint16 // valid only if HasEnterpriseID
	HasEnterpriseID bool
	Payload      []byte

	children    []IE
	childrenSet bool
}

// New creates a non-vendor-specific IE wrapping payload.
func New(t Type, payload []byte) IE {
	return IE{Type: t, Payload: payload}
}

// NewVendorSpecific creates a vendor-specific IE. The Enterprise ID is part
// of the wire length even though it is not part of Payload.
func NewVendorSpecific(t Type, enterpriseID uint16, payload []byte) IE {
	return IE{Type: t, EnterpriseID: enterpriseID, HasEnterpriseID: true, Payload: payload}
}

// NewGrouped concatenates the marshaled form of children into Payload and
// caches children for cheap FindIE/ChildIEs access without a re-parse.
func NewGrouped(t Type, children []IE) IE {
	payload := make([]byte, 0, 64)
	for _, c := range children {
		payload = append(payload, c.Marshal()...)
	}
	return IE{Type: t, Payload: payload, children: children, childrenSet: true}
}

// Len returns the on-wire length of the IE: 4 header bytes, plus 2 more for
// a vendor Enterprise ID, plus the payload.
func (ie IE) Len() int {
	n := 4 + len(ie.Payload)
	if ie.vendorSpecific() {
		n += 2
	}
	return n
}

// IsEmpty reports whether the IE carries no payload bytes.
func (ie IE) IsEmpty() bool { return len(ie.Payload) == 0 }

func (ie IE) vendorSpecific() bool {
	return ie.HasEnterpriseID || ie.Type.IsVendorSpecific()
}

// Marshal serializes the IE to its wire form: type, length, optional
// enterprise ID, payload.
func (ie IE) Marshal() []byte {
	vendor := ie.vendorSpecific()
	length := len(ie.Payload)
	if vendor {
		length += 2
	}

	buf := make([]byte, 4, ie.Len())
	binary.BigEndian.PutUint16(buf[0:2], uint16(ie.Type))
	binary.BigEndian.PutUint16(buf[2:4], uint16(length))
	if vendor {
		var eid [2]byte
		binary.BigEndian.PutUint16(eid[:], ie.EnterpriseID)
		buf = append(buf, eid[:]...)
	}
	buf = append(buf, ie.Payload...)
	return buf
}

// Unmarshal parses a single TLV frame from the front of b. It does not
// recurse into grouped payloads; call ChildIEs for that, lazily, on demand.
func Unmarshal(b []byte) (IE, error) {
	if len(b) < 4 {
		return IE{}, &pfcperr.InvalidLength{IEName: "IE", Expected: 4, Actual: len(b)}
	}

	rawType := binary.BigEndian.Uint16(b[0:2])
	t := Type(rawType)
	length := int(binary.BigEndian.Uint16(b[2:4]))

	offset := 4
	var enterpriseID uint16
	vendor := t.IsVendorSpecific()
	if vendor {
		if len(b) < 6 {
			return IE{}, &pfcperr.InvalidLength{IEName: t.String(), IEType: uint16(t), Expected: 6, Actual: len(b)}
		}
		enterpriseID = binary.BigEndian.Uint16(b[4:6])
		offset += 2
		length -= 2
		if length < 0 {
			return IE{}, &pfcperr.InvalidLength{IEName: t.String(), IEType: uint16(t), Expected: 2, Actual: int(binary.BigEndian.Uint16(b[2:4]))}
		}
	}

	end := offset + length
	if end > len(b) {
		return IE{}, &pfcperr.InvalidLength{IEName: t.String(), IEType: uint16(t), Expected: end, Actual: len(b)}
	}

	if t == Unknown || typeNames[t] == "" {
		pfcplog.L().Debug("pfcp: unrecognized IE type, storing opaque payload",
			zap.Uint16("raw_type", rawType))
	}

	return IE{Type: t, EnterpriseID: enterpriseID, HasEnterpriseID: vendor, Payload: b[offset:end]}, nil
}

// ChildIEs lazily parses Payload as a sequence of child TLVs and caches the
// result. ChildIEs only ever parses one level, so it does not recurse and
// does not check MaxGroupDepth.
func (ie *IE) ChildIEs() ([]IE, error) {
	if ie.childrenSet {
		return ie.children, nil
	}

	var out []IE
	offset := 0
	for offset < len(ie.Payload) {
		child, err := Unmarshal(ie.Payload[offset:])
		if err != nil {
			return nil, err
		}
		out = append(out, child)
		offset += child.Len()
	}
	ie.children = out
	ie.childrenSet = true
	return out, nil
}

// FindIE returns the first direct child of the given type, parsing children
// lazily if needed.
func (ie *IE) FindIE(t Type) (IE, bool) {
	children, err := ie.ChildIEs()
	if err != nil {
		return IE{}, false
	}
	for _, c := range children {
		if c.Type == t {
			return c, true
		}
	}
	return IE{}, false
}

// FindAllIEs returns every direct child of the given type, in wire order.
func (ie *IE) FindAllIEs(t Type) []IE {
	children, err := ie.ChildIEs()
	if err != nil {
		return nil
	}
	var out []IE
	for _, c := range children {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// --- Value accessors ---

func (ie IE) AsUint8() (uint8, error) {
	if len(ie.Payload) < 1 {
		return 0, &pfcperr.InvalidLength{IEName: ie.Type.String(), IEType: uint16(ie.Type), Expected: 1, Actual: len(ie.Payload)}
	}
	return ie.Payload[0], nil
}

func (ie IE) AsUint16() (uint16, error) {
	if len(ie.Payload) < 2 {
		return 0, &pfcperr.InvalidLength{IEName: ie.Type.String(), IEType: uint16(ie.Type), Expected: 2, Actual: len(ie.Payload)}
	}
	return binary.BigEndian.Uint16(ie.Payload), nil
}

func (ie IE) AsUint32() (uint32, error) {
	if len(ie.Payload) < 4 {
		return 0, &pfcperr.InvalidLength{IEName: ie.Type.String(), IEType: uint16(ie.Type), Expected: 4, Actual: len(ie.Payload)}
	}
	return binary.BigEndian.Uint32(ie.Payload), nil
}

func (ie IE) AsUint64() (uint64, error) {
	if len(ie.Payload) < 8 {
		return 0, &pfcperr.InvalidLength{IEName: ie.Type.String(), IEType: uint16(ie.Type), Expected: 8, Actual: len(ie.Payload)}
	}
	return binary.BigEndian.Uint64(ie.Payload), nil
}

func (ie IE) AsString() (string, error) {
	if !utf8.Valid(ie.Payload) {
		return "", &pfcperr.EncodingError{IEName: ie.Type.String(), IEType: uint16(ie.Type), Cause: errInvalidUTF8}
	}
	return string(ie.Payload), nil
}

var errInvalidUTF8 = invalidUTF8Error{}

type invalidUTF8Error struct{}

func (invalidUTF8Error) Error() string { return "invalid UTF-8" }
