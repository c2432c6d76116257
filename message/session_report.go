package message

import (
	"github.com/your-org/pfcp-codec/ie"
	"github.com/your-org/pfcp-codec/pfcperr"
)

// SessionReportRequestMessage lets a UP function push usage reports and
// downlink-data notifications for an existing session to its CP function,
// per TS 29.244 clause 7.5.8.1. Downlink-data-report fields (DDN, PPI,
// paging policy) are not in this codec's modeled IE set and flow through
// the catch-all.
type SessionReportRequestMessage struct {
	Header       Header
	ReportType   ie.ReportTypeIE
	UsageReports []ie.UsageReportIE
	CatchAll     []ie.IE
}

func (m SessionReportRequestMessage) GetHeader() Header { return m.Header }

func (m SessionReportRequestMessage) Marshal() []byte {
	ies := []ie.IE{m.ReportType.ToIE()}
	for _, u := range m.UsageReports {
		ies = append(ies, u.ToIE())
	}
	ies = append(ies, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalSessionReportRequest(h Header, body []byte) (SessionReportRequestMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return SessionReportRequestMessage{}, err
	}
	m := SessionReportRequestMessage{Header: h}
	var haveReportType bool
	for _, i := range ies {
		switch i.Type {
		case ie.ReportType:
			v, err := ie.UnmarshalReportType(i.Payload)
			if err != nil {
				return SessionReportRequestMessage{}, err
			}
			m.ReportType = v
			haveReportType = true
		case ie.UsageReport:
			v, err := ie.UnmarshalUsageReport(i)
			if err != nil {
				return SessionReportRequestMessage{}, err
			}
			m.UsageReports = append(m.UsageReports, v)
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveReportType {
		return SessionReportRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.ReportType), IEName: "ReportType", MessageType: "SessionReportRequest"}
	}
	return m, nil
}

// SessionReportRequestBuilder builds a SessionReportRequestMessage.
type SessionReportRequestBuilder struct {
	header       Header
	reportType   *ie.ReportTypeIE
	usageReports []ie.UsageReportIE
}

func NewSessionReportRequestBuilder(sequenceNumber uint32, seid uint64) *SessionReportRequestBuilder {
	return &SessionReportRequestBuilder{
		header: Header{Type: SessionReportRequest, SequenceNumber: sequenceNumber, SEID: seid, HasSEID: true},
	}
}

func (b *SessionReportRequestBuilder) SetReportType(v ie.ReportTypeIE) *SessionReportRequestBuilder {
	b.reportType = &v
	return b
}

func (b *SessionReportRequestBuilder) AddUsageReport(v ie.UsageReportIE) *SessionReportRequestBuilder {
	b.usageReports = append(b.usageReports, v)
	return b
}

func (b *SessionReportRequestBuilder) Build() (SessionReportRequestMessage, error) {
	if b.reportType == nil {
		return SessionReportRequestMessage{}, &pfcperr.ValidationError{Context: "SessionReportRequest", Field: "ReportType", Detail: "mandatory IE not set"}
	}
	return SessionReportRequestMessage{Header: b.header, ReportType: *b.reportType, UsageReports: b.usageReports}, nil
}

// SessionReportResponseMessage is SessionReportRequestMessage's reply, per
// TS 29.244 clause 7.5.9.1.
type SessionReportResponseMessage struct {
	Header      Header
	Cause       ie.CauseIE
	OffendingIE *ie.OffendingIEIE
	CatchAll    []ie.IE
}

func (m SessionReportResponseMessage) GetHeader() Header { return m.Header }

func (m SessionReportResponseMessage) Marshal() []byte {
	ies := []ie.IE{m.Cause.ToIE()}
	if m.OffendingIE != nil {
		ies = append(ies, m.OffendingIE.ToIE())
	}
	ies = append(ies, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalSessionReportResponse(h Header, body []byte) (SessionReportResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return SessionReportResponseMessage{}, err
	}
	m := SessionReportResponseMessage{Header: h}
	var haveCause bool
	for _, i := range ies {
		switch i.Type {
		case ie.Cause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return SessionReportResponseMessage{}, err
			}
			m.Cause = v
			haveCause = true
		case ie.OffendingIE:
			v, err := ie.UnmarshalOffendingIE(i.Payload)
			if err != nil {
				return SessionReportResponseMessage{}, err
			}
			m.OffendingIE = &v
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveCause {
		return SessionReportResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.Cause), IEName: "Cause", MessageType: "SessionReportResponse"}
	}
	return m, nil
}

// SessionReportResponseBuilder builds a SessionReportResponseMessage.
type SessionReportResponseBuilder struct {
	header      Header
	cause       *ie.CauseIE
	offendingIE *ie.OffendingIEIE
}

func NewSessionReportResponseBuilder(sequenceNumber uint32, seid uint64) *SessionReportResponseBuilder {
	return &SessionReportResponseBuilder{
		header: Header{Type: SessionReportResponse, SequenceNumber: sequenceNumber, SEID: seid, HasSEID: true},
	}
}

func (b *SessionReportResponseBuilder) SetCause(v ie.CauseIE) *SessionReportResponseBuilder {
	b.cause = &v
	return b
}

func (b *SessionReportResponseBuilder) SetOffendingIE(v ie.OffendingIEIE) *SessionReportResponseBuilder {
	b.offendingIE = &v
	return b
}

func (b *SessionReportResponseBuilder) Build() (SessionReportResponseMessage, error) {
	if b.cause == nil {
		return SessionReportResponseMessage{}, &pfcperr.ValidationError{Context: "SessionReportResponse", Field: "Cause", Detail: "mandatory IE not set"}
	}
	return SessionReportResponseMessage{Header: b.header, Cause: *b.cause, OffendingIE: b.offendingIE}, nil
}
