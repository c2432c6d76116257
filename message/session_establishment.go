package message

import (
	"github.com/your-org/pfcp-codec/ie"
	"github.com/your-org/pfcp-codec/pfcperr"
)

// SessionEstablishmentRequestMessage creates a new PFCP session, per
// TS 29.244 clause 7.5.2.1. The header SEID is the UP function's SEID if
// already known from a prior exchange, otherwise 0 — callers building a
// first-contact request pass 0 to NewSessionEstablishmentRequestBuilder.
type SessionEstablishmentRequestMessage struct {
	Header       Header
	NodeID       ie.NodeIDIE
	FSEID        ie.FSEIDIE
	CreatePDRs   []ie.CreatePDRIE
	CreateFARs   []ie.CreateFARIE
	CreateURRs   []ie.CreateURRIE
	CreateQERs   []ie.CreateQERIE
	CreateBAR    *ie.CreateBARIE
	PDNType      *ie.PDNTypeIE
	CatchAll     []ie.IE
}

func (m SessionEstablishmentRequestMessage) GetHeader() Header { return m.Header }

func (m SessionEstablishmentRequestMessage) Marshal() []byte {
	ies := []ie.IE{m.NodeID.ToIE(), m.FSEID.ToIE()}
	for _, c := range m.CreatePDRs {
		ies = append(ies, c.ToIE())
	}
	for _, c := range m.CreateFARs {
		ies = append(ies, c.ToIE())
	}
	for _, c := range m.CreateURRs {
		ies = append(ies, c.ToIE())
	}
	for _, c := range m.CreateQERs {
		ies = append(ies, c.ToIE())
	}
	if m.CreateBAR != nil {
		ies = append(ies, m.CreateBAR.ToIE())
	}
	if m.PDNType != nil {
		ies = append(ies, m.PDNType.ToIE())
	}
	ies = append(ies, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalSessionEstablishmentRequest(h Header, body []byte) (SessionEstablishmentRequestMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return SessionEstablishmentRequestMessage{}, err
	}
	m := SessionEstablishmentRequestMessage{Header: h}
	var haveNodeID, haveFSEID bool
	for _, i := range ies {
		switch i.Type {
		case ie.NodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return SessionEstablishmentRequestMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
		case ie.FSEID:
			v, err := ie.UnmarshalFSEID(i.Payload)
			if err != nil {
				return SessionEstablishmentRequestMessage{}, err
			}
			m.FSEID = v
			haveFSEID = true
		case ie.CreatePDR:
			v, err := ie.UnmarshalCreatePDR(i)
			if err != nil {
				return SessionEstablishmentRequestMessage{}, err
			}
			m.CreatePDRs = append(m.CreatePDRs, v)
		case ie.CreateFAR:
			v, err := ie.UnmarshalCreateFAR(i)
			if err != nil {
				return SessionEstablishmentRequestMessage{}, err
			}
			m.CreateFARs = append(m.CreateFARs, v)
		case ie.CreateURR:
			v, err := ie.UnmarshalCreateURR(i)
			if err != nil {
				return SessionEstablishmentRequestMessage{}, err
			}
			m.CreateURRs = append(m.CreateURRs, v)
		case ie.CreateQER:
			v, err := ie.UnmarshalCreateQER(i)
			if err != nil {
				return SessionEstablishmentRequestMessage{}, err
			}
			m.CreateQERs = append(m.CreateQERs, v)
		case ie.CreateBAR:
			v, err := ie.UnmarshalCreateBAR(i)
			if err != nil {
				return SessionEstablishmentRequestMessage{}, err
			}
			m.CreateBAR = &v
		case ie.PDNType:
			v, err := ie.UnmarshalPDNType(i.Payload)
			if err != nil {
				return SessionEstablishmentRequestMessage{}, err
			}
			m.PDNType = &v
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveNodeID {
		return SessionEstablishmentRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "SessionEstablishmentRequest"}
	}
	if !haveFSEID {
		return SessionEstablishmentRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.FSEID), IEName: "FSEID", MessageType: "SessionEstablishmentRequest"}
	}
	if len(m.CreatePDRs) == 0 {
		return SessionEstablishmentRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.CreatePDR), IEName: "CreatePDR", MessageType: "SessionEstablishmentRequest"}
	}
	if len(m.CreateFARs) == 0 {
		return SessionEstablishmentRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.CreateFAR), IEName: "CreateFAR", MessageType: "SessionEstablishmentRequest"}
	}
	return m, nil
}

// SessionEstablishmentRequestBuilder builds a
// SessionEstablishmentRequestMessage.
type SessionEstablishmentRequestBuilder struct {
	header     Header
	nodeID     *ie.NodeIDIE
	fseid      *ie.FSEIDIE
	createPDRs []ie.CreatePDRIE
	createFARs []ie.CreateFARIE
	createURRs []ie.CreateURRIE
	createQERs []ie.CreateQERIE
	createBAR  *ie.CreateBARIE
	pdnType    *ie.PDNTypeIE
}

func NewSessionEstablishmentRequestBuilder(sequenceNumber uint32, seid uint64) *SessionEstablishmentRequestBuilder {
	return &SessionEstablishmentRequestBuilder{
		header: Header{Type: SessionEstablishmentRequest, SequenceNumber: sequenceNumber, SEID: seid, HasSEID: true},
	}
}

func (b *SessionEstablishmentRequestBuilder) SetNodeID(v ie.NodeIDIE) *SessionEstablishmentRequestBuilder {
	b.nodeID = &v
	return b
}

func (b *SessionEstablishmentRequestBuilder) SetFSEID(v ie.FSEIDIE) *SessionEstablishmentRequestBuilder {
	b.fseid = &v
	return b
}

func (b *SessionEstablishmentRequestBuilder) AddCreatePDR(v ie.CreatePDRIE) *SessionEstablishmentRequestBuilder {
	b.createPDRs = append(b.createPDRs, v)
	return b
}

func (b *SessionEstablishmentRequestBuilder) AddCreateFAR(v ie.CreateFARIE) *SessionEstablishmentRequestBuilder {
	b.createFARs = append(b.createFARs, v)
	return b
}

func (b *SessionEstablishmentRequestBuilder) AddCreateURR(v ie.CreateURRIE) *SessionEstablishmentRequestBuilder {
	b.createURRs = append(b.createURRs, v)
	return b
}

func (b *SessionEstablishmentRequestBuilder) AddCreateQER(v ie.CreateQERIE) *SessionEstablishmentRequestBuilder {
	b.createQERs = append(b.createQERs, v)
	return b
}

func (b *SessionEstablishmentRequestBuilder) SetCreateBAR(v ie.CreateBARIE) *SessionEstablishmentRequestBuilder {
	b.createBAR = &v
	return b
}

func (b *SessionEstablishmentRequestBuilder) SetPDNType(v ie.PDNTypeIE) *SessionEstablishmentRequestBuilder {
	b.pdnType = &v
	return b
}

func (b *SessionEstablishmentRequestBuilder) Build() (SessionEstablishmentRequestMessage, error) {
	if b.nodeID == nil {
		return SessionEstablishmentRequestMessage{}, &pfcperr.ValidationError{Context: "SessionEstablishmentRequest", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	if b.fseid == nil {
		return SessionEstablishmentRequestMessage{}, &pfcperr.ValidationError{Context: "SessionEstablishmentRequest", Field: "FSEID", Detail: "mandatory IE not set"}
	}
	if len(b.createPDRs) == 0 {
		return SessionEstablishmentRequestMessage{}, &pfcperr.ValidationError{Context: "SessionEstablishmentRequest", Field: "CreatePDR", Detail: "at least one is mandatory"}
	}
	if len(b.createFARs) == 0 {
		return SessionEstablishmentRequestMessage{}, &pfcperr.ValidationError{Context: "SessionEstablishmentRequest", Field: "CreateFAR", Detail: "at least one is mandatory"}
	}
	return SessionEstablishmentRequestMessage{
		Header: b.header, NodeID: *b.nodeID, FSEID: *b.fseid,
		CreatePDRs: b.createPDRs, CreateFARs: b.createFARs, CreateURRs: b.createURRs, CreateQERs: b.createQERs,
		CreateBAR: b.createBAR, PDNType: b.pdnType,
	}, nil
}

// SessionEstablishmentResponseMessage is SessionEstablishmentRequestMessage's
// reply, per TS 29.244 clause 7.5.3.1.
type SessionEstablishmentResponseMessage struct {
	Header                     Header
	NodeID                     ie.NodeIDIE
	Cause                      ie.CauseIE
	FSEID                      *ie.FSEIDIE
	CreatedPDRs                []ie.CreatedPDRIE
	LoadControlInformation     *ie.LoadControlInformationIE
	OverloadControlInformation *ie.OverloadControlInformationIE
	CatchAll                   []ie.IE
}

func (m SessionEstablishmentResponseMessage) GetHeader() Header { return m.Header }

func (m SessionEstablishmentResponseMessage) Marshal() []byte {
	ies := []ie.IE{m.NodeID.ToIE(), m.Cause.ToIE()}
	if m.FSEID != nil {
		ies = append(ies, m.FSEID.ToIE())
	}
	for _, c := range m.CreatedPDRs {
		ies = append(ies, c.ToIE())
	}
	if m.LoadControlInformation != nil {
		ies = append(ies, m.LoadControlInformation.ToIE())
	}
	if m.OverloadControlInformation != nil {
		ies = append(ies, m.OverloadControlInformation.ToIE())
	}
	ies = append(ies, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalSessionEstablishmentResponse(h Header, body []byte) (SessionEstablishmentResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return SessionEstablishmentResponseMessage{}, err
	}
	m := SessionEstablishmentResponseMessage{Header: h}
	var haveNodeID, haveCause bool
	for _, i := range ies {
		switch i.Type {
		case ie.NodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return SessionEstablishmentResponseMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
		case ie.Cause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return SessionEstablishmentResponseMessage{}, err
			}
			m.Cause = v
			haveCause = true
		case ie.FSEID:
			v, err := ie.UnmarshalFSEID(i.Payload)
			if err != nil {
				return SessionEstablishmentResponseMessage{}, err
			}
			m.FSEID = &v
		case ie.CreatedPDR:
			v, err := ie.UnmarshalCreatedPDR(i)
			if err != nil {
				return SessionEstablishmentResponseMessage{}, err
			}
			m.CreatedPDRs = append(m.CreatedPDRs, v)
		case ie.LoadControlInformation:
			v, err := ie.UnmarshalLoadControlInformation(i)
			if err != nil {
				return SessionEstablishmentResponseMessage{}, err
			}
			m.LoadControlInformation = &v
		case ie.OverloadControlInformation:
			v, err := ie.UnmarshalOverloadControlInformation(i)
			if err != nil {
				return SessionEstablishmentResponseMessage{}, err
			}
			m.OverloadControlInformation = &v
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveNodeID {
		return SessionEstablishmentResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "SessionEstablishmentResponse"}
	}
	if !haveCause {
		return SessionEstablishmentResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.Cause), IEName: "Cause", MessageType: "SessionEstablishmentResponse"}
	}
	return m, nil
}

// SessionEstablishmentResponseBuilder builds a
// SessionEstablishmentResponseMessage.
type SessionEstablishmentResponseBuilder struct {
	header                     Header
	nodeID                     *ie.NodeIDIE
	cause                      *ie.CauseIE
	fseid                      *ie.FSEIDIE
	createdPDRs                []ie.CreatedPDRIE
	loadControlInformation     *ie.LoadControlInformationIE
	overloadControlInformation *ie.OverloadControlInformationIE
}

func NewSessionEstablishmentResponseBuilder(sequenceNumber uint32, seid uint64) *SessionEstablishmentResponseBuilder {
	return &SessionEstablishmentResponseBuilder{
		header: Header{Type: SessionEstablishmentResponse, SequenceNumber: sequenceNumber, SEID: seid, HasSEID: true},
	}
}

func (b *SessionEstablishmentResponseBuilder) SetNodeID(v ie.NodeIDIE) *SessionEstablishmentResponseBuilder {
	b.nodeID = &v
	return b
}

func (b *SessionEstablishmentResponseBuilder) SetCause(v ie.CauseIE) *SessionEstablishmentResponseBuilder {
	b.cause = &v
	return b
}

func (b *SessionEstablishmentResponseBuilder) SetFSEID(v ie.FSEIDIE) *SessionEstablishmentResponseBuilder {
	b.fseid = &v
	return b
}

func (b *SessionEstablishmentResponseBuilder) AddCreatedPDR(v ie.CreatedPDRIE) *SessionEstablishmentResponseBuilder {
	b.createdPDRs = append(b.createdPDRs, v)
	return b
}

func (b *SessionEstablishmentResponseBuilder) SetLoadControlInformation(v ie.LoadControlInformationIE) *SessionEstablishmentResponseBuilder {
	b.loadControlInformation = &v
	return b
}

func (b *SessionEstablishmentResponseBuilder) SetOverloadControlInformation(v ie.OverloadControlInformationIE) *SessionEstablishmentResponseBuilder {
	b.overloadControlInformation = &v
	return b
}

func (b *SessionEstablishmentResponseBuilder) Build() (SessionEstablishmentResponseMessage, error) {
	if b.nodeID == nil {
		return SessionEstablishmentResponseMessage{}, &pfcperr.ValidationError{Context: "SessionEstablishmentResponse", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	if b.cause == nil {
		return SessionEstablishmentResponseMessage{}, &pfcperr.ValidationError{Context: "SessionEstablishmentResponse", Field: "Cause", Detail: "mandatory IE not set"}
	}
	return SessionEstablishmentResponseMessage{
		Header: b.header, NodeID: *b.nodeID, Cause: *b.cause, FSEID: b.fseid,
		CreatedPDRs: b.createdPDRs, LoadControlInformation: b.loadControlInformation, OverloadControlInformation: b.overloadControlInformation,
	}, nil
}
