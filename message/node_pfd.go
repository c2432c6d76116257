package message

import (
	"github.com/your-org/pfcp-codec/ie"
	"github.com/your-org/pfcp-codec/pfcperr"
)

// PFDManagementRequestMessage pushes one or more applications' Packet
// Flow Descriptions from the CP function to the UP function, per
// TS 29.244 clause 7.4.3.
type PFDManagementRequestMessage struct {
	Header             Header
	ApplicationIDsPFDs []ie.ApplicationIDsPFDsIE
	CatchAll           []ie.IE
}

func (m PFDManagementRequestMessage) GetHeader() Header { return m.Header }

func (m PFDManagementRequestMessage) Marshal() []byte {
	var ies []ie.IE
	for _, a := range m.ApplicationIDsPFDs {
		ies = append(ies, a.ToIE())
	}
	ies = append(ies, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalPFDManagementRequest(h Header, body []byte) (PFDManagementRequestMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return PFDManagementRequestMessage{}, err
	}
	m := PFDManagementRequestMessage{Header: h}
	for _, i := range ies {
		if i.Type == ie.ApplicationIDsPFDs {
			v, err := ie.UnmarshalApplicationIDsPFDs(i)
			if err != nil {
				return PFDManagementRequestMessage{}, err
			}
			m.ApplicationIDsPFDs = append(m.ApplicationIDsPFDs, v)
			continue
		}
		m.CatchAll = append(m.CatchAll, i)
	}
	if len(m.ApplicationIDsPFDs) == 0 {
		return PFDManagementRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.ApplicationIDsPFDs), IEName: "ApplicationIDsPFDs", MessageType: "PFDManagementRequest"}
	}
	return m, nil
}

// PFDManagementRequestBuilder builds a PFDManagementRequestMessage.
type PFDManagementRequestBuilder struct {
	header             Header
	applicationIDsPFDs []ie.ApplicationIDsPFDsIE
}

func NewPFDManagementRequestBuilder(sequenceNumber uint32) *PFDManagementRequestBuilder {
	return &PFDManagementRequestBuilder{header: Header{Type: PFDManagementRequest, SequenceNumber: sequenceNumber}}
}

func (b *PFDManagementRequestBuilder) AddApplicationIDsPFDs(v ie.ApplicationIDsPFDsIE) *PFDManagementRequestBuilder {
	b.applicationIDsPFDs = append(b.applicationIDsPFDs, v)
	return b
}

func (b *PFDManagementRequestBuilder) Build() (PFDManagementRequestMessage, error) {
	if len(b.applicationIDsPFDs) == 0 {
		return PFDManagementRequestMessage{}, &pfcperr.ValidationError{Context: "PFDManagementRequest", Field: "ApplicationIDsPFDs", Detail: "at least one is mandatory"}
	}
	return PFDManagementRequestMessage{Header: b.header, ApplicationIDsPFDs: b.applicationIDsPFDs}, nil
}

// PFDManagementResponseMessage reports the outcome of a PFD push, per
// TS 29.244 clause 7.4.3.
type PFDManagementResponseMessage struct {
	Header       Header
	Cause        ie.CauseIE
	OffendingIE  *ie.OffendingIEIE
	CatchAll     []ie.IE
}

func (m PFDManagementResponseMessage) GetHeader() Header { return m.Header }

func (m PFDManagementResponseMessage) Marshal() []byte {
	ies := []ie.IE{m.Cause.ToIE()}
	if m.OffendingIE != nil {
		ies = append(ies, m.OffendingIE.ToIE())
	}
	ies = append(ies, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalPFDManagementResponse(h Header, body []byte) (PFDManagementResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return PFDManagementResponseMessage{}, err
	}
	m := PFDManagementResponseMessage{Header: h}
	var haveCause bool
	for _, i := range ies {
		switch i.Type {
		case ie.Cause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return PFDManagementResponseMessage{}, err
			}
			m.Cause = v
			haveCause = true
		case ie.OffendingIE:
			v, err := ie.UnmarshalOffendingIE(i.Payload)
			if err != nil {
				return PFDManagementResponseMessage{}, err
			}
			m.OffendingIE = &v
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveCause {
		return PFDManagementResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.Cause), IEName: "Cause", MessageType: "PFDManagementResponse"}
	}
	return m, nil
}

// PFDManagementResponseBuilder builds a PFDManagementResponseMessage.
type PFDManagementResponseBuilder struct {
	header      Header
	cause       *ie.CauseIE
	offendingIE *ie.OffendingIEIE
}

func NewPFDManagementResponseBuilder(sequenceNumber uint32) *PFDManagementResponseBuilder {
	return &PFDManagementResponseBuilder{header: Header{Type: PFDManagementResponse, SequenceNumber: sequenceNumber}}
}

func (b *PFDManagementResponseBuilder) SetCause(v ie.CauseIE) *PFDManagementResponseBuilder {
	b.cause = &v
	return b
}

func (b *PFDManagementResponseBuilder) SetOffendingIE(v ie.OffendingIEIE) *PFDManagementResponseBuilder {
	b.offendingIE = &v
	return b
}

func (b *PFDManagementResponseBuilder) Build() (PFDManagementResponseMessage, error) {
	if b.cause == nil {
		return PFDManagementResponseMessage{}, &pfcperr.ValidationError{Context: "PFDManagementResponse", Field: "Cause", Detail: "mandatory IE not set"}
	}
	return PFDManagementResponseMessage{Header: b.header, Cause: *b.cause, OffendingIE: b.offendingIE}, nil
}
