package message

import (
	"github.com/your-org/pfcp-codec/ie"
	"github.com/your-org/pfcp-codec/pfcperr"
)

// Message is implemented by every concrete PFCP message type. Marshal
// produces the full wire form (header + body); GetHeader exposes the
// common framing fields for callers that only need type/SEID/sequence
// without caring about the concrete message.
type Message interface {
	GetHeader() Header
	Marshal() []byte
}

// Unmarshal parses a complete PFCP datagram: header, then message-type
// dispatch into the matching concrete type's decoder.
func Unmarshal(b []byte) (Message, error) {
	h, offset, err := unmarshalHeader(b)
	if err != nil {
		return nil, err
	}
	body := b[offset:]

	decode, ok := decoders[h.Type]
	if !ok {
		return nil, &pfcperr.UnsupportedMessageType{Got: uint8(h.Type)}
	}
	return decode(h, body)
}

var decoders = map[Type]func(Header, []byte) (Message, error){
	HeartbeatRequest:               func(h Header, b []byte) (Message, error) { return unmarshalHeartbeatRequest(h, b) },
	HeartbeatResponse:              func(h Header, b []byte) (Message, error) { return unmarshalHeartbeatResponse(h, b) },
	PFDManagementRequest:           func(h Header, b []byte) (Message, error) { return unmarshalPFDManagementRequest(h, b) },
	PFDManagementResponse:          func(h Header, b []byte) (Message, error) { return unmarshalPFDManagementResponse(h, b) },
	AssociationSetupRequest:        func(h Header, b []byte) (Message, error) { return unmarshalAssociationSetupRequest(h, b) },
	AssociationSetupResponse:       func(h Header, b []byte) (Message, error) { return unmarshalAssociationSetupResponse(h, b) },
	AssociationUpdateRequest:       func(h Header, b []byte) (Message, error) { return unmarshalAssociationUpdateRequest(h, b) },
	AssociationUpdateResponse:      func(h Header, b []byte) (Message, error) { return unmarshalAssociationUpdateResponse(h, b) },
	AssociationReleaseRequest:      func(h Header, b []byte) (Message, error) { return unmarshalAssociationReleaseRequest(h, b) },
	AssociationReleaseResponse:     func(h Header, b []byte) (Message, error) { return unmarshalAssociationReleaseResponse(h, b) },
	VersionNotSupportedResponse:    func(h Header, b []byte) (Message, error) { return unmarshalVersionNotSupportedResponse(h, b) },
	NodeReportRequest:              func(h Header, b []byte) (Message, error) { return unmarshalNodeReportRequest(h, b) },
	NodeReportResponse:             func(h Header, b []byte) (Message, error) { return unmarshalNodeReportResponse(h, b) },
	SessionSetDeletionRequest:      func(h Header, b []byte) (Message, error) { return unmarshalSessionSetDeletionRequest(h, b) },
	SessionSetDeletionResponse:     func(h Header, b []byte) (Message, error) { return unmarshalSessionSetDeletionResponse(h, b) },
	SessionSetModificationRequest:  func(h Header, b []byte) (Message, error) { return unmarshalSessionSetModificationRequest(h, b) },
	SessionSetModificationResponse: func(h Header, b []byte) (Message, error) { return unmarshalSessionSetModificationResponse(h, b) },
	SessionEstablishmentRequest:    func(h Header, b []byte) (Message, error) { return unmarshalSessionEstablishmentRequest(h, b) },
	SessionEstablishmentResponse:   func(h Header, b []byte) (Message, error) { return unmarshalSessionEstablishmentResponse(h, b) },
	SessionModificationRequest:     func(h Header, b []byte) (Message, error) { return unmarshalSessionModificationRequest(h, b) },
	SessionModificationResponse:    func(h Header, b []byte) (Message, error) { return unmarshalSessionModificationResponse(h, b) },
	SessionDeletionRequest:         func(h Header, b []byte) (Message, error) { return unmarshalSessionDeletionRequest(h, b) },
	SessionDeletionResponse:        func(h Header, b []byte) (Message, error) { return unmarshalSessionDeletionResponse(h, b) },
	SessionReportRequest:           func(h Header, b []byte) (Message, error) { return unmarshalSessionReportRequest(h, b) },
	SessionReportResponse:          func(h Header, b []byte) (Message, error) { return unmarshalSessionReportResponse(h, b) },
}

// IEs returns m's top-level IEs in wire order, by re-marshaling and
// re-splitting the body. It exists for callers outside this package (the
// comparison engine) that need to walk a message's IEs without a type
// switch over every concrete message type.
func IEs(m Message) ([]ie.IE, error) {
	b := m.Marshal()
	_, offset, err := unmarshalHeader(b)
	if err != nil {
		return nil, err
	}
	return parseIEs(b[offset:])
}

// parseIEs splits payload into a flat top-level sequence of IEs. Grouped
// IEs are returned as single entries; their children are parsed lazily via
// ie.IE.ChildIEs, same as everywhere else in this codec.
func parseIEs(payload []byte) ([]ie.IE, error) {
	var out []ie.IE
	offset := 0
	for offset < len(payload) {
		parsed, err := ie.Unmarshal(payload[offset:])
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
		offset += parsed.Len()
	}
	return out, nil
}

// marshalAll concatenates the wire form of ies in order.
func marshalAll(ies []ie.IE) []byte {
	var out []byte
	for _, i := range ies {
		out = append(out, i.Marshal()...)
	}
	return out
}
