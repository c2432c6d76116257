package message

import (
	"github.com/your-org/pfcp-codec/ie"
	"github.com/your-org/pfcp-codec/pfcperr"
)

// SessionDeletionRequestMessage tears down an existing session, per
// TS 29.244 clause 7.5.6.1. The header SEID alone identifies the session;
// the request body carries no IEs in the common case.
type SessionDeletionRequestMessage struct {
	Header   Header
	CatchAll []ie.IE
}

func (m SessionDeletionRequestMessage) GetHeader() Header { return m.Header }

func (m SessionDeletionRequestMessage) Marshal() []byte {
	return m.Header.marshal(marshalAll(m.CatchAll))
}

func unmarshalSessionDeletionRequest(h Header, body []byte) (SessionDeletionRequestMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return SessionDeletionRequestMessage{}, err
	}
	return SessionDeletionRequestMessage{Header: h, CatchAll: ies}, nil
}

// SessionDeletionRequestBuilder builds a SessionDeletionRequestMessage.
type SessionDeletionRequestBuilder struct {
	header Header
}

func NewSessionDeletionRequestBuilder(sequenceNumber uint32, seid uint64) *SessionDeletionRequestBuilder {
	return &SessionDeletionRequestBuilder{
		header: Header{Type: SessionDeletionRequest, SequenceNumber: sequenceNumber, SEID: seid, HasSEID: true},
	}
}

func (b *SessionDeletionRequestBuilder) Build() (SessionDeletionRequestMessage, error) {
	return SessionDeletionRequestMessage{Header: b.header}, nil
}

// SessionDeletionResponseMessage is SessionDeletionRequestMessage's reply,
// per TS 29.244 clause 7.5.7.1, echoing final usage reports accumulated
// up to deletion.
type SessionDeletionResponseMessage struct {
	Header                     Header
	Cause                      ie.CauseIE
	UsageReports               []ie.UsageReportIE
	LoadControlInformation     *ie.LoadControlInformationIE
	OverloadControlInformation *ie.OverloadControlInformationIE
	CatchAll                   []ie.IE
}

func (m SessionDeletionResponseMessage) GetHeader() Header { return m.Header }

func (m SessionDeletionResponseMessage) Marshal() []byte {
	ies := []ie.IE{m.Cause.ToIE()}
	for _, u := range m.UsageReports {
		ies = append(ies, u.ToIE())
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

func unmarshalSessionDeletionResponse(h Header, body []byte) (SessionDeletionResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return SessionDeletionResponseMessage{}, err
	}
	m := SessionDeletionResponseMessage{Header: h}
	var haveCause bool
	for _, i := range ies {
		switch i.Type {
		case ie.Cause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return SessionDeletionResponseMessage{}, err
			}
			m.Cause = v
			haveCause = true
		case ie.UsageReport:
			v, err := ie.UnmarshalUsageReport(i)
			if err != nil {
				return SessionDeletionResponseMessage{}, err
			}
			m.UsageReports = append(m.UsageReports, v)
		case ie.LoadControlInformation:
			v, err := ie.UnmarshalLoadControlInformation(i)
			if err != nil {
				return SessionDeletionResponseMessage{}, err
			}
			m.LoadControlInformation = &v
		case ie.OverloadControlInformation:
			v, err := ie.UnmarshalOverloadControlInformation(i)
			if err != nil {
				return SessionDeletionResponseMessage{}, err
			}
			m.OverloadControlInformation = &v
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveCause {
		return SessionDeletionResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.Cause), IEName: "Cause", MessageType: "SessionDeletionResponse"}
	}
	return m, nil
}

// SessionDeletionResponseBuilder builds a SessionDeletionResponseMessage.
type SessionDeletionResponseBuilder struct {
	header                     Header
	cause                      *ie.CauseIE
	usageReports               []ie.UsageReportIE
	loadControlInformation     *ie.LoadControlInformationIE
	overloadControlInformation *ie.OverloadControlInformationIE
}

func NewSessionDeletionResponseBuilder(sequenceNumber uint32, seid uint64) *SessionDeletionResponseBuilder {
	return &SessionDeletionResponseBuilder{
		header: Header{Type: SessionDeletionResponse, SequenceNumber: sequenceNumber, SEID: seid, HasSEID: true},
	}
}

func (b *SessionDeletionResponseBuilder) SetCause(v ie.CauseIE) *SessionDeletionResponseBuilder {
	b.cause = &v
	return b
}

func (b *SessionDeletionResponseBuilder) AddUsageReport(v ie.UsageReportIE) *SessionDeletionResponseBuilder {
	b.usageReports = append(b.usageReports, v)
	return b
}

func (b *SessionDeletionResponseBuilder) SetLoadControlInformation(v ie.LoadControlInformationIE) *SessionDeletionResponseBuilder {
	b.loadControlInformation = &v
	return b
}

func (b *SessionDeletionResponseBuilder) SetOverloadControlInformation(v ie.OverloadControlInformationIE) *SessionDeletionResponseBuilder {
	b.overloadControlInformation = &v
	return b
}

func (b *SessionDeletionResponseBuilder) Build() (SessionDeletionResponseMessage, error) {
	if b.cause == nil {
		return SessionDeletionResponseMessage{}, &pfcperr.ValidationError{Context: "SessionDeletionResponse", Field: "Cause", Detail: "mandatory IE not set"}
	}
	return SessionDeletionResponseMessage{
		Header: b.header, Cause: *b.cause, UsageReports: b.usageReports,
		LoadControlInformation: b.loadControlInformation, OverloadControlInformation: b.overloadControlInformation,
	}, nil
}
