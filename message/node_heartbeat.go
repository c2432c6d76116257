package message

import (
	"github.com/your-org/pfcp-codec/ie"
	"github.com/your-org/pfcp-codec/pfcperr"
)

// HeartbeatRequestMessage carries a RecoveryTimeStamp so the peer can
// detect a node restart, per TS 29.244 clause 7.4.1.
type HeartbeatRequestMessage struct {
	Header            Header
	RecoveryTimeStamp ie.RecoveryTimeStampIE
	CatchAll          []ie.IE
}

func (m HeartbeatRequestMessage) GetHeader() Header { return m.Header }

func (m HeartbeatRequestMessage) Marshal() []byte {
	ies := append([]ie.IE{m.RecoveryTimeStamp.ToIE()}, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalHeartbeatRequest(h Header, body []byte) (HeartbeatRequestMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return HeartbeatRequestMessage{}, err
	}
	m := HeartbeatRequestMessage{Header: h}
	var have bool
	for _, i := range ies {
		if i.Type == ie.RecoveryTimeStamp {
			v, err := ie.UnmarshalRecoveryTimeStamp(i.Payload)
			if err != nil {
				return HeartbeatRequestMessage{}, err
			}
			m.RecoveryTimeStamp = v
			have = true
			continue
		}
		m.CatchAll = append(m.CatchAll, i)
	}
	if !have {
		return HeartbeatRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.RecoveryTimeStamp), IEName: "RecoveryTimeStamp", MessageType: "HeartbeatRequest"}
	}
	return m, nil
}

// HeartbeatRequestBuilder builds a HeartbeatRequestMessage.
type HeartbeatRequestBuilder struct {
	header            Header
	recoveryTimeStamp *ie.RecoveryTimeStampIE
}

func NewHeartbeatRequestBuilder(sequenceNumber uint32) *HeartbeatRequestBuilder {
	return &HeartbeatRequestBuilder{header: Header{Type: HeartbeatRequest, SequenceNumber: sequenceNumber}}
}

func (b *HeartbeatRequestBuilder) SetRecoveryTimeStamp(v ie.RecoveryTimeStampIE) *HeartbeatRequestBuilder {
	b.recoveryTimeStamp = &v
	return b
}

func (b *HeartbeatRequestBuilder) Build() (HeartbeatRequestMessage, error) {
	if b.recoveryTimeStamp == nil {
		return HeartbeatRequestMessage{}, &pfcperr.ValidationError{Context: "HeartbeatRequest", Field: "RecoveryTimeStamp", Detail: "mandatory IE not set"}
	}
	return HeartbeatRequestMessage{Header: b.header, RecoveryTimeStamp: *b.recoveryTimeStamp}, nil
}

// HeartbeatResponseMessage mirrors HeartbeatRequestMessage.
type HeartbeatResponseMessage struct {
	Header            Header
	RecoveryTimeStamp ie.RecoveryTimeStampIE
	CatchAll          []ie.IE
}

func (m HeartbeatResponseMessage) GetHeader() Header { return m.Header }

func (m HeartbeatResponseMessage) Marshal() []byte {
	ies := append([]ie.IE{m.RecoveryTimeStamp.ToIE()}, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalHeartbeatResponse(h Header, body []byte) (HeartbeatResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return HeartbeatResponseMessage{}, err
	}
	m := HeartbeatResponseMessage{Header: h}
	var have bool
	for _, i := range ies {
		if i.Type == ie.RecoveryTimeStamp {
			v, err := ie.UnmarshalRecoveryTimeStamp(i.Payload)
			if err != nil {
				return HeartbeatResponseMessage{}, err
			}
			m.RecoveryTimeStamp = v
			have = true
			continue
		}
		m.CatchAll = append(m.CatchAll, i)
	}
	if !have {
		return HeartbeatResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.RecoveryTimeStamp), IEName: "RecoveryTimeStamp", MessageType: "HeartbeatResponse"}
	}
	return m, nil
}

// HeartbeatResponseBuilder builds a HeartbeatResponseMessage.
type HeartbeatResponseBuilder struct {
	header            Header
	recoveryTimeStamp *ie.RecoveryTimeStampIE
}

func NewHeartbeatResponseBuilder(sequenceNumber uint32) *HeartbeatResponseBuilder {
	return &HeartbeatResponseBuilder{header: Header{Type: HeartbeatResponse, SequenceNumber: sequenceNumber}}
}

func (b *HeartbeatResponseBuilder) SetRecoveryTimeStamp(v ie.RecoveryTimeStampIE) *HeartbeatResponseBuilder {
	b.recoveryTimeStamp = &v
	return b
}

func (b *HeartbeatResponseBuilder) Build() (HeartbeatResponseMessage, error) {
	if b.recoveryTimeStamp == nil {
		return HeartbeatResponseMessage{}, &pfcperr.ValidationError{Context: "HeartbeatResponse", Field: "RecoveryTimeStamp", Detail: "mandatory IE not set"}
	}
	return HeartbeatResponseMessage{Header: b.header, RecoveryTimeStamp: *b.recoveryTimeStamp}, nil
}
