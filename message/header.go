package message

import (
	"encoding/binary"

	"github.com/your-org/pfcp-codec/pfcperr"
)

const (
	supportedVersion uint8 = 1

	flagMP = 0x02
	flagS  = 0x01

	nodeHeaderLen    = 8
	sessionHeaderLen = 16
)

// Header is the framing common to every PFCP message, per TS 29.244
// clause 7.2.2: version, S (SEID present) and MP (priority present)
// flags, message type, declared length, optional SEID, a 3-byte sequence
// number, and an optional priority nibble.
type Header struct {
	Type           Type
	SEID           uint64
	HasSEID        bool
	SequenceNumber uint32 // low 24 bits significant
	Priority       uint8  // low nibble significant
	HasPriority    bool
}

// marshal serializes the header followed by payload, filling in the
// length field to count everything after itself.
func (h Header) marshal(payload []byte) []byte {
	tailLen := 4 // sequence number (3) + spare/priority (1)
	if h.HasSEID {
		tailLen += 8
	}
	length := tailLen + len(payload)

	buf := make([]byte, 4, 4+tailLen+len(payload))
	flags := supportedVersion << 5
	if h.HasPriority {
		flags |= flagMP
	}
	if h.HasSEID {
		flags |= flagS
	}
	buf[0] = flags
	buf[1] = byte(h.Type)
	binary.BigEndian.PutUint16(buf[2:4], uint16(length))

	if h.HasSEID {
		var seid [8]byte
		binary.BigEndian.PutUint64(seid[:], h.SEID)
		buf = append(buf, seid[:]...)
	}

	seq := h.SequenceNumber & 0x00FFFFFF
	buf = append(buf, byte(seq>>16), byte(seq>>8), byte(seq))

	var spare byte
	if h.HasPriority {
		spare = (h.Priority & 0x0F) << 4
	}
	buf = append(buf, spare)

	return append(buf, payload...)
}

// unmarshalHeader parses the header from the front of b and returns the
// header plus the offset where the message payload begins.
func unmarshalHeader(b []byte) (Header, int, error) {
	if len(b) < 4 {
		return Header{}, 0, &pfcperr.TruncatedBuffer{Need: 4, Have: len(b), Context: "pfcp header"}
	}

	version := (b[0] >> 5) & 0x07
	if version != supportedVersion {
		return Header{}, 0, &pfcperr.UnsupportedVersion{Got: version, Supported: supportedVersion}
	}

	hasSEID := b[0]&flagS != 0
	hasPriority := b[0]&flagMP != 0

	minLen := nodeHeaderLen
	if hasSEID {
		minLen = sessionHeaderLen
	}
	if len(b) < minLen {
		return Header{}, 0, &pfcperr.TruncatedBuffer{Need: minLen, Have: len(b), Context: "pfcp header"}
	}

	declaredLength := int(binary.BigEndian.Uint16(b[2:4]))
	if 4+declaredLength > len(b) {
		return Header{}, 0, &pfcperr.TruncatedBuffer{Need: 4 + declaredLength, Have: len(b), Context: "pfcp message body"}
	}

	h := Header{
		Type:        Type(b[1]),
		HasSEID:     hasSEID,
		HasPriority: hasPriority,
	}

	offset := 4
	if hasSEID {
		h.SEID = binary.BigEndian.Uint64(b[offset : offset+8])
		offset += 8
	}

	h.SequenceNumber = uint32(b[offset])<<16 | uint32(b[offset+1])<<8 | uint32(b[offset+2])
	offset += 3

	if hasPriority {
		h.Priority = b[offset] >> 4
	}
	offset++

	return h, offset, nil
}
