package message

import (
	"github.com/your-org/pfcp-codec/ie"
	"github.com/your-org/pfcp-codec/pfcperr"
)

// SessionSetDeletionRequestMessage deletes every session a failed CP or UP
// function peer held, addressed by NodeID rather than individual SEIDs,
// per TS 29.244 clause 7.4.8.1. FQ-CSID fields that scope the bulk
// deletion are not in this codec's modeled IE set and flow through the
// catch-all.
type SessionSetDeletionRequestMessage struct {
	Header   Header
	NodeID   ie.NodeIDIE
	CatchAll []ie.IE
}

func (m SessionSetDeletionRequestMessage) GetHeader() Header { return m.Header }

func (m SessionSetDeletionRequestMessage) Marshal() []byte {
	ies := append([]ie.IE{m.NodeID.ToIE()}, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalSessionSetDeletionRequest(h Header, body []byte) (SessionSetDeletionRequestMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return SessionSetDeletionRequestMessage{}, err
	}
	m := SessionSetDeletionRequestMessage{Header: h}
	var haveNodeID bool
	for _, i := range ies {
		if i.Type == ie.NodeID {
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return SessionSetDeletionRequestMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
			continue
		}
		m.CatchAll = append(m.CatchAll, i)
	}
	if !haveNodeID {
		return SessionSetDeletionRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "SessionSetDeletionRequest"}
	}
	return m, nil
}

// SessionSetDeletionRequestBuilder builds a SessionSetDeletionRequestMessage.
type SessionSetDeletionRequestBuilder struct {
	header Header
	nodeID *ie.NodeIDIE
}

func NewSessionSetDeletionRequestBuilder(sequenceNumber uint32) *SessionSetDeletionRequestBuilder {
	return &SessionSetDeletionRequestBuilder{header: Header{Type: SessionSetDeletionRequest, SequenceNumber: sequenceNumber}}
}

func (b *SessionSetDeletionRequestBuilder) SetNodeID(v ie.NodeIDIE) *SessionSetDeletionRequestBuilder {
	b.nodeID = &v
	return b
}

func (b *SessionSetDeletionRequestBuilder) Build() (SessionSetDeletionRequestMessage, error) {
	if b.nodeID == nil {
		return SessionSetDeletionRequestMessage{}, &pfcperr.ValidationError{Context: "SessionSetDeletionRequest", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	return SessionSetDeletionRequestMessage{Header: b.header, NodeID: *b.nodeID}, nil
}

// SessionSetDeletionResponseMessage is SessionSetDeletionRequestMessage's
// reply.
type SessionSetDeletionResponseMessage struct {
	Header   Header
	NodeID   ie.NodeIDIE
	Cause    ie.CauseIE
	CatchAll []ie.IE
}

func (m SessionSetDeletionResponseMessage) GetHeader() Header { return m.Header }

func (m SessionSetDeletionResponseMessage) Marshal() []byte {
	ies := append([]ie.IE{m.NodeID.ToIE(), m.Cause.ToIE()}, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalSessionSetDeletionResponse(h Header, body []byte) (SessionSetDeletionResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return SessionSetDeletionResponseMessage{}, err
	}
	m := SessionSetDeletionResponseMessage{Header: h}
	var haveNodeID, haveCause bool
	for _, i := range ies {
		switch i.Type {
		case ie.NodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return SessionSetDeletionResponseMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
		case ie.Cause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return SessionSetDeletionResponseMessage{}, err
			}
			m.Cause = v
			haveCause = true
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveNodeID {
		return SessionSetDeletionResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "SessionSetDeletionResponse"}
	}
	if !haveCause {
		return SessionSetDeletionResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.Cause), IEName: "Cause", MessageType: "SessionSetDeletionResponse"}
	}
	return m, nil
}

// SessionSetDeletionResponseBuilder builds a SessionSetDeletionResponseMessage.
type SessionSetDeletionResponseBuilder struct {
	header Header
	nodeID *ie.NodeIDIE
	cause  *ie.CauseIE
}

func NewSessionSetDeletionResponseBuilder(sequenceNumber uint32) *SessionSetDeletionResponseBuilder {
	return &SessionSetDeletionResponseBuilder{header: Header{Type: SessionSetDeletionResponse, SequenceNumber: sequenceNumber}}
}

func (b *SessionSetDeletionResponseBuilder) SetNodeID(v ie.NodeIDIE) *SessionSetDeletionResponseBuilder {
	b.nodeID = &v
	return b
}

func (b *SessionSetDeletionResponseBuilder) SetCause(v ie.CauseIE) *SessionSetDeletionResponseBuilder {
	b.cause = &v
	return b
}

func (b *SessionSetDeletionResponseBuilder) Build() (SessionSetDeletionResponseMessage, error) {
	if b.nodeID == nil {
		return SessionSetDeletionResponseMessage{}, &pfcperr.ValidationError{Context: "SessionSetDeletionResponse", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	if b.cause == nil {
		return SessionSetDeletionResponseMessage{}, &pfcperr.ValidationError{Context: "SessionSetDeletionResponse", Field: "Cause", Detail: "mandatory IE not set"}
	}
	return SessionSetDeletionResponseMessage{Header: b.header, NodeID: *b.nodeID, Cause: *b.cause}, nil
}

// SessionSetModificationRequestMessage redirects every session owned by a
// failed redundant peer to its standby, per TS 29.244 clause 7.4.9.1. The
// FQ-CSID/redundant-peer addressing fields are not in this codec's
// modeled IE set and flow through the catch-all; NodeID is the one
// well-known mandatory slot.
type SessionSetModificationRequestMessage struct {
	Header   Header
	NodeID   ie.NodeIDIE
	CatchAll []ie.IE
}

func (m SessionSetModificationRequestMessage) GetHeader() Header { return m.Header }

func (m SessionSetModificationRequestMessage) Marshal() []byte {
	ies := append([]ie.IE{m.NodeID.ToIE()}, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalSessionSetModificationRequest(h Header, body []byte) (SessionSetModificationRequestMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return SessionSetModificationRequestMessage{}, err
	}
	m := SessionSetModificationRequestMessage{Header: h}
	var haveNodeID bool
	for _, i := range ies {
		if i.Type == ie.NodeID {
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return SessionSetModificationRequestMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
			continue
		}
		m.CatchAll = append(m.CatchAll, i)
	}
	if !haveNodeID {
		return SessionSetModificationRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "SessionSetModificationRequest"}
	}
	return m, nil
}

// SessionSetModificationRequestBuilder builds a
// SessionSetModificationRequestMessage.
type SessionSetModificationRequestBuilder struct {
	header Header
	nodeID *ie.NodeIDIE
}

func NewSessionSetModificationRequestBuilder(sequenceNumber uint32) *SessionSetModificationRequestBuilder {
	return &SessionSetModificationRequestBuilder{header: Header{Type: SessionSetModificationRequest, SequenceNumber: sequenceNumber}}
}

func (b *SessionSetModificationRequestBuilder) SetNodeID(v ie.NodeIDIE) *SessionSetModificationRequestBuilder {
	b.nodeID = &v
	return b
}

func (b *SessionSetModificationRequestBuilder) Build() (SessionSetModificationRequestMessage, error) {
	if b.nodeID == nil {
		return SessionSetModificationRequestMessage{}, &pfcperr.ValidationError{Context: "SessionSetModificationRequest", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	return SessionSetModificationRequestMessage{Header: b.header, NodeID: *b.nodeID}, nil
}

// SessionSetModificationResponseMessage is
// SessionSetModificationRequestMessage's reply.
type SessionSetModificationResponseMessage struct {
	Header   Header
	NodeID   ie.NodeIDIE
	Cause    ie.CauseIE
	CatchAll []ie.IE
}

func (m SessionSetModificationResponseMessage) GetHeader() Header { return m.Header }

func (m SessionSetModificationResponseMessage) Marshal() []byte {
	ies := append([]ie.IE{m.NodeID.ToIE(), m.Cause.ToIE()}, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalSessionSetModificationResponse(h Header, body []byte) (SessionSetModificationResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return SessionSetModificationResponseMessage{}, err
	}
	m := SessionSetModificationResponseMessage{Header: h}
	var haveNodeID, haveCause bool
	for _, i := range ies {
		switch i.Type {
		case ie.NodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return SessionSetModificationResponseMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
		case ie.Cause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return SessionSetModificationResponseMessage{}, err
			}
			m.Cause = v
			haveCause = true
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveNodeID {
		return SessionSetModificationResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "SessionSetModificationResponse"}
	}
	if !haveCause {
		return SessionSetModificationResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.Cause), IEName: "Cause", MessageType: "SessionSetModificationResponse"}
	}
	return m, nil
}

// SessionSetModificationResponseBuilder builds a
// SessionSetModificationResponseMessage.
type SessionSetModificationResponseBuilder struct {
	header Header
	nodeID *ie.NodeIDIE
	cause  *ie.CauseIE
}

func NewSessionSetModificationResponseBuilder(sequenceNumber uint32) *SessionSetModificationResponseBuilder {
	return &SessionSetModificationResponseBuilder{header: Header{Type: SessionSetModificationResponse, SequenceNumber: sequenceNumber}}
}

func (b *SessionSetModificationResponseBuilder) SetNodeID(v ie.NodeIDIE) *SessionSetModificationResponseBuilder {
	b.nodeID = &v
	return b
}

func (b *SessionSetModificationResponseBuilder) SetCause(v ie.CauseIE) *SessionSetModificationResponseBuilder {
	b.cause = &v
	return b
}

func (b *SessionSetModificationResponseBuilder) Build() (SessionSetModificationResponseMessage, error) {
	if b.nodeID == nil {
		return SessionSetModificationResponseMessage{}, &pfcperr.ValidationError{Context: "SessionSetModificationResponse", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	if b.cause == nil {
		return SessionSetModificationResponseMessage{}, &pfcperr.ValidationError{Context: "SessionSetModificationResponse", Field: "Cause", Detail: "mandatory IE not set"}
	}
	return SessionSetModificationResponseMessage{Header: b.header, NodeID: *b.nodeID, Cause: *b.cause}, nil
}
