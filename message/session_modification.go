package message

import (
	"github.com/your-org/pfcp-codec/ie"
	"github.com/your-org/pfcp-codec/pfcperr"
)

// SessionModificationRequestMessage updates PDRs/FARs/URRs/QERs/BAR of an
// existing session, per TS 29.244 clause 7.5.4.1. None of its IEs are
// strictly mandatory on the wire — a request carrying only an FSEID update,
// or only removals, is valid — so this message models no required slots.
type SessionModificationRequestMessage struct {
	Header     Header
	FSEID      *ie.FSEIDIE
	CreatePDRs []ie.CreatePDRIE
	CreateFARs []ie.CreateFARIE
	CreateURRs []ie.CreateURRIE
	CreateQERs []ie.CreateQERIE
	UpdatePDRs []ie.UpdatePDRIE
	UpdateFARs []ie.UpdateFARIE
	UpdateURRs []ie.UpdateURRIE
	UpdateQERs []ie.UpdateQERIE
	RemovePDRs []ie.RemovePDRIE
	RemoveFARs []ie.RemoveFARIE
	RemoveURRs []ie.RemoveURRIE
	RemoveQERs []ie.RemoveQERIE
	CatchAll   []ie.IE
}

func (m SessionModificationRequestMessage) GetHeader() Header { return m.Header }

func (m SessionModificationRequestMessage) Marshal() []byte {
	var ies []ie.IE
	if m.FSEID != nil {
		ies = append(ies, m.FSEID.ToIE())
	}
	for _, c := range m.RemovePDRs {
		ies = append(ies, c.ToIE())
	}
	for _, c := range m.RemoveFARs {
		ies = append(ies, c.ToIE())
	}
	for _, c := range m.RemoveURRs {
		ies = append(ies, c.ToIE())
	}
	for _, c := range m.RemoveQERs {
		ies = append(ies, c.ToIE())
	}
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
	for _, c := range m.UpdatePDRs {
		ies = append(ies, c.ToIE())
	}
	for _, c := range m.UpdateFARs {
		ies = append(ies, c.ToIE())
	}
	for _, c := range m.UpdateURRs {
		ies = append(ies, c.ToIE())
	}
	for _, c := range m.UpdateQERs {
		ies = append(ies, c.ToIE())
	}
	ies = append(ies, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalSessionModificationRequest(h Header, body []byte) (SessionModificationRequestMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return SessionModificationRequestMessage{}, err
	}
	m := SessionModificationRequestMessage{Header: h}
	for _, i := range ies {
		switch i.Type {
		case ie.FSEID:
			v, err := ie.UnmarshalFSEID(i.Payload)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.FSEID = &v
		case ie.CreatePDR:
			v, err := ie.UnmarshalCreatePDR(i)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.CreatePDRs = append(m.CreatePDRs, v)
		case ie.CreateFAR:
			v, err := ie.UnmarshalCreateFAR(i)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.CreateFARs = append(m.CreateFARs, v)
		case ie.CreateURR:
			v, err := ie.UnmarshalCreateURR(i)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.CreateURRs = append(m.CreateURRs, v)
		case ie.CreateQER:
			v, err := ie.UnmarshalCreateQER(i)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.CreateQERs = append(m.CreateQERs, v)
		case ie.UpdatePDR:
			v, err := ie.UnmarshalUpdatePDR(i)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.UpdatePDRs = append(m.UpdatePDRs, v)
		case ie.UpdateFAR:
			v, err := ie.UnmarshalUpdateFAR(i)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.UpdateFARs = append(m.UpdateFARs, v)
		case ie.UpdateURR:
			v, err := ie.UnmarshalUpdateURR(i)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.UpdateURRs = append(m.UpdateURRs, v)
		case ie.UpdateQER:
			v, err := ie.UnmarshalUpdateQER(i)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.UpdateQERs = append(m.UpdateQERs, v)
		case ie.RemovePDR:
			v, err := ie.UnmarshalRemovePDR(i)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.RemovePDRs = append(m.RemovePDRs, v)
		case ie.RemoveFAR:
			v, err := ie.UnmarshalRemoveFAR(i)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.RemoveFARs = append(m.RemoveFARs, v)
		case ie.RemoveURR:
			v, err := ie.UnmarshalRemoveURR(i)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.RemoveURRs = append(m.RemoveURRs, v)
		case ie.RemoveQER:
			v, err := ie.UnmarshalRemoveQER(i)
			if err != nil {
				return SessionModificationRequestMessage{}, err
			}
			m.RemoveQERs = append(m.RemoveQERs, v)
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	return m, nil
}

// SessionModificationRequestBuilder builds a
// SessionModificationRequestMessage.
type SessionModificationRequestBuilder struct {
	header     Header
	fseid      *ie.FSEIDIE
	createPDRs []ie.CreatePDRIE
	createFARs []ie.CreateFARIE
	createURRs []ie.CreateURRIE
	createQERs []ie.CreateQERIE
	updatePDRs []ie.UpdatePDRIE
	updateFARs []ie.UpdateFARIE
	updateURRs []ie.UpdateURRIE
	updateQERs []ie.UpdateQERIE
	removePDRs []ie.RemovePDRIE
	removeFARs []ie.RemoveFARIE
	removeURRs []ie.RemoveURRIE
	removeQERs []ie.RemoveQERIE
}

func NewSessionModificationRequestBuilder(sequenceNumber uint32, seid uint64) *SessionModificationRequestBuilder {
	return &SessionModificationRequestBuilder{
		header: Header{Type: SessionModificationRequest, SequenceNumber: sequenceNumber, SEID: seid, HasSEID: true},
	}
}

func (b *SessionModificationRequestBuilder) SetFSEID(v ie.FSEIDIE) *SessionModificationRequestBuilder {
	b.fseid = &v
	return b
}

func (b *SessionModificationRequestBuilder) AddCreatePDR(v ie.CreatePDRIE) *SessionModificationRequestBuilder {
	b.createPDRs = append(b.createPDRs, v)
	return b
}

func (b *SessionModificationRequestBuilder) AddCreateFAR(v ie.CreateFARIE) *SessionModificationRequestBuilder {
	b.createFARs = append(b.createFARs, v)
	return b
}

func (b *SessionModificationRequestBuilder) AddCreateURR(v ie.CreateURRIE) *SessionModificationRequestBuilder {
	b.createURRs = append(b.createURRs, v)
	return b
}

func (b *SessionModificationRequestBuilder) AddCreateQER(v ie.CreateQERIE) *SessionModificationRequestBuilder {
	b.createQERs = append(b.createQERs, v)
	return b
}

func (b *SessionModificationRequestBuilder) AddUpdatePDR(v ie.UpdatePDRIE) *SessionModificationRequestBuilder {
	b.updatePDRs = append(b.updatePDRs, v)
	return b
}

func (b *SessionModificationRequestBuilder) AddUpdateFAR(v ie.UpdateFARIE) *SessionModificationRequestBuilder {
	b.updateFARs = append(b.updateFARs, v)
	return b
}

func (b *SessionModificationRequestBuilder) AddUpdateURR(v ie.UpdateURRIE) *SessionModificationRequestBuilder {
	b.updateURRs = append(b.updateURRs, v)
	return b
}

func (b *SessionModificationRequestBuilder) AddUpdateQER(v ie.UpdateQERIE) *SessionModificationRequestBuilder {
	b.updateQERs = append(b.updateQERs, v)
	return b
}

func (b *SessionModificationRequestBuilder) AddRemovePDR(v ie.RemovePDRIE) *SessionModificationRequestBuilder {
	b.removePDRs = append(b.removePDRs, v)
	return b
}

func (b *SessionModificationRequestBuilder) AddRemoveFAR(v ie.RemoveFARIE) *SessionModificationRequestBuilder {
	b.removeFARs = append(b.removeFARs, v)
	return b
}

func (b *SessionModificationRequestBuilder) AddRemoveURR(v ie.RemoveURRIE) *SessionModificationRequestBuilder {
	b.removeURRs = append(b.removeURRs, v)
	return b
}

func (b *SessionModificationRequestBuilder) AddRemoveQER(v ie.RemoveQERIE) *SessionModificationRequestBuilder {
	b.removeQERs = append(b.removeQERs, v)
	return b
}

func (b *SessionModificationRequestBuilder) Build() (SessionModificationRequestMessage, error) {
	return SessionModificationRequestMessage{
		Header: b.header, FSEID: b.fseid,
		CreatePDRs: b.createPDRs, CreateFARs: b.createFARs, CreateURRs: b.createURRs, CreateQERs: b.createQERs,
		UpdatePDRs: b.updatePDRs, UpdateFARs: b.updateFARs, UpdateURRs: b.updateURRs, UpdateQERs: b.updateQERs,
		RemovePDRs: b.removePDRs, RemoveFARs: b.removeFARs, RemoveURRs: b.removeURRs, RemoveQERs: b.removeQERs,
	}, nil
}

// SessionModificationResponseMessage is SessionModificationRequestMessage's
// reply, per TS 29.244 clause 7.5.5.1.
type SessionModificationResponseMessage struct {
	Header                     Header
	Cause                      ie.CauseIE
	CreatedPDRs                []ie.CreatedPDRIE
	LoadControlInformation     *ie.LoadControlInformationIE
	OverloadControlInformation *ie.OverloadControlInformationIE
	UsageReports               []ie.UsageReportIE
	CatchAll                   []ie.IE
}

func (m SessionModificationResponseMessage) GetHeader() Header { return m.Header }

func (m SessionModificationResponseMessage) Marshal() []byte {
	ies := []ie.IE{m.Cause.ToIE()}
	for _, c := range m.CreatedPDRs {
		ies = append(ies, c.ToIE())
	}
	if m.LoadControlInformation != nil {
		ies = append(ies, m.LoadControlInformation.ToIE())
	}
	if m.OverloadControlInformation != nil {
		ies = append(ies, m.OverloadControlInformation.ToIE())
	}
	for _, u := range m.UsageReports {
		ies = append(ies, u.ToIE())
	}
	ies = append(ies, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalSessionModificationResponse(h Header, body []byte) (SessionModificationResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return SessionModificationResponseMessage{}, err
	}
	m := SessionModificationResponseMessage{Header: h}
	var haveCause bool
	for _, i := range ies {
		switch i.Type {
		case ie.Cause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return SessionModificationResponseMessage{}, err
			}
			m.Cause = v
			haveCause = true
		case ie.CreatedPDR:
			v, err := ie.UnmarshalCreatedPDR(i)
			if err != nil {
				return SessionModificationResponseMessage{}, err
			}
			m.CreatedPDRs = append(m.CreatedPDRs, v)
		case ie.LoadControlInformation:
			v, err := ie.UnmarshalLoadControlInformation(i)
			if err != nil {
				return SessionModificationResponseMessage{}, err
			}
			m.LoadControlInformation = &v
		case ie.OverloadControlInformation:
			v, err := ie.UnmarshalOverloadControlInformation(i)
			if err != nil {
				return SessionModificationResponseMessage{}, err
			}
			m.OverloadControlInformation = &v
		case ie.UsageReport:
			v, err := ie.UnmarshalUsageReport(i)
			if err != nil {
				return SessionModificationResponseMessage{}, err
			}
			m.UsageReports = append(m.UsageReports, v)
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveCause {
		return SessionModificationResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.Cause), IEName: "Cause", MessageType: "SessionModificationResponse"}
	}
	return m, nil
}

// SessionModificationResponseBuilder builds a
// SessionModificationResponseMessage.
type SessionModificationResponseBuilder struct {
	header                     Header
	cause                      *ie.CauseIE
	createdPDRs                []ie.CreatedPDRIE
	loadControlInformation     *ie.LoadControlInformationIE
	overloadControlInformation *ie.OverloadControlInformationIE
	usageReports               []ie.UsageReportIE
}

func NewSessionModificationResponseBuilder(sequenceNumber uint32, seid uint64) *SessionModificationResponseBuilder {
	return &SessionModificationResponseBuilder{
		header: Header{Type: SessionModificationResponse, SequenceNumber: sequenceNumber, SEID: seid, HasSEID: true},
	}
}

func (b *SessionModificationResponseBuilder) SetCause(v ie.CauseIE) *SessionModificationResponseBuilder {
	b.cause = &v
	return b
}

func (b *SessionModificationResponseBuilder) AddCreatedPDR(v ie.CreatedPDRIE) *SessionModificationResponseBuilder {
	b.createdPDRs = append(b.createdPDRs, v)
	return b
}

func (b *SessionModificationResponseBuilder) SetLoadControlInformation(v ie.LoadControlInformationIE) *SessionModificationResponseBuilder {
	b.loadControlInformation = &v
	return b
}

func (b *SessionModificationResponseBuilder) SetOverloadControlInformation(v ie.OverloadControlInformationIE) *SessionModificationResponseBuilder {
	b.overloadControlInformation = &v
	return b
}

func (b *SessionModificationResponseBuilder) AddUsageReport(v ie.UsageReportIE) *SessionModificationResponseBuilder {
	b.usageReports = append(b.usageReports, v)
	return b
}

func (b *SessionModificationResponseBuilder) Build() (SessionModificationResponseMessage, error) {
	if b.cause == nil {
		return SessionModificationResponseMessage{}, &pfcperr.ValidationError{Context: "SessionModificationResponse", Field: "Cause", Detail: "mandatory IE not set"}
	}
	return SessionModificationResponseMessage{
		Header: b.header, Cause: *b.cause, CreatedPDRs: b.createdPDRs,
		LoadControlInformation: b.loadControlInformation, OverloadControlInformation: b.overloadControlInformation,
		UsageReports: b.usageReports,
	}, nil
}
