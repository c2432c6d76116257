package message

import (
	"github.com/your-org/pfcp-codec/ie"
	"github.com/your-org/pfcp-codec/pfcperr"
)

// AssociationSetupRequestMessage establishes a PFCP association between a
// CP and UP function, per TS 29.244 clause 7.4.4.1.
type AssociationSetupRequestMessage struct {
	Header             Header
	NodeID             ie.NodeIDIE
	RecoveryTimeStamp  ie.RecoveryTimeStampIE
	UPFunctionFeatures *ie.UPFunctionFeaturesIE
	CPFunctionFeatures *ie.CPFunctionFeaturesIE
	CatchAll           []ie.IE
}

func (m AssociationSetupRequestMessage) GetHeader() Header { return m.Header }

func (m AssociationSetupRequestMessage) Marshal() []byte {
	ies := []ie.IE{m.NodeID.ToIE(), m.RecoveryTimeStamp.ToIE()}
	if m.UPFunctionFeatures != nil {
		ies = append(ies, m.UPFunctionFeatures.ToIE())
	}
	if m.CPFunctionFeatures != nil {
		ies = append(ies, m.CPFunctionFeatures.ToIE())
	}
	ies = append(ies, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalAssociationSetupRequest(h Header, body []byte) (AssociationSetupRequestMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return AssociationSetupRequestMessage{}, err
	}
	m := AssociationSetupRequestMessage{Header: h}
	var haveNodeID, haveRecovery bool
	for _, i := range ies {
		switch i.Type {
		case ie.NodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return AssociationSetupRequestMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
		case ie.RecoveryTimeStamp:
			v, err := ie.UnmarshalRecoveryTimeStamp(i.Payload)
			if err != nil {
				return AssociationSetupRequestMessage{}, err
			}
			m.RecoveryTimeStamp = v
			haveRecovery = true
		case ie.UPFunctionFeatures:
			v, err := ie.UnmarshalUPFunctionFeatures(i.Payload)
			if err != nil {
				return AssociationSetupRequestMessage{}, err
			}
			m.UPFunctionFeatures = &v
		case ie.CPFunctionFeatures:
			v, err := ie.UnmarshalCPFunctionFeatures(i.Payload)
			if err != nil {
				return AssociationSetupRequestMessage{}, err
			}
			m.CPFunctionFeatures = &v
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveNodeID {
		return AssociationSetupRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "AssociationSetupRequest"}
	}
	if !haveRecovery {
		return AssociationSetupRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.RecoveryTimeStamp), IEName: "RecoveryTimeStamp", MessageType: "AssociationSetupRequest"}
	}
	return m, nil
}

// AssociationSetupRequestBuilder builds an AssociationSetupRequestMessage.
type AssociationSetupRequestBuilder struct {
	header             Header
	nodeID             *ie.NodeIDIE
	recoveryTimeStamp  *ie.RecoveryTimeStampIE
	upFunctionFeatures *ie.UPFunctionFeaturesIE
	cpFunctionFeatures *ie.CPFunctionFeaturesIE
}

func NewAssociationSetupRequestBuilder(sequenceNumber uint32) *AssociationSetupRequestBuilder {
	return &AssociationSetupRequestBuilder{header: Header{Type: AssociationSetupRequest, SequenceNumber: sequenceNumber}}
}

func (b *AssociationSetupRequestBuilder) SetNodeID(v ie.NodeIDIE) *AssociationSetupRequestBuilder {
	b.nodeID = &v
	return b
}

func (b *AssociationSetupRequestBuilder) SetRecoveryTimeStamp(v ie.RecoveryTimeStampIE) *AssociationSetupRequestBuilder {
	b.recoveryTimeStamp = &v
	return b
}

func (b *AssociationSetupRequestBuilder) SetUPFunctionFeatures(v ie.UPFunctionFeaturesIE) *AssociationSetupRequestBuilder {
	b.upFunctionFeatures = &v
	return b
}

func (b *AssociationSetupRequestBuilder) SetCPFunctionFeatures(v ie.CPFunctionFeaturesIE) *AssociationSetupRequestBuilder {
	b.cpFunctionFeatures = &v
	return b
}

func (b *AssociationSetupRequestBuilder) Build() (AssociationSetupRequestMessage, error) {
	if b.nodeID == nil {
		return AssociationSetupRequestMessage{}, &pfcperr.ValidationError{Context: "AssociationSetupRequest", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	if b.recoveryTimeStamp == nil {
		return AssociationSetupRequestMessage{}, &pfcperr.ValidationError{Context: "AssociationSetupRequest", Field: "RecoveryTimeStamp", Detail: "mandatory IE not set"}
	}
	return AssociationSetupRequestMessage{
		Header: b.header, NodeID: *b.nodeID, RecoveryTimeStamp: *b.recoveryTimeStamp,
		UPFunctionFeatures: b.upFunctionFeatures, CPFunctionFeatures: b.cpFunctionFeatures,
	}, nil
}

// AssociationSetupResponseMessage is AssociationSetupRequestMessage's
// reply, adding a Cause.
type AssociationSetupResponseMessage struct {
	Header             Header
	NodeID             ie.NodeIDIE
	Cause              ie.CauseIE
	RecoveryTimeStamp  ie.RecoveryTimeStampIE
	UPFunctionFeatures *ie.UPFunctionFeaturesIE
	CPFunctionFeatures *ie.CPFunctionFeaturesIE
	CatchAll           []ie.IE
}

func (m AssociationSetupResponseMessage) GetHeader() Header { return m.Header }

func (m AssociationSetupResponseMessage) Marshal() []byte {
	ies := []ie.IE{m.NodeID.ToIE(), m.Cause.ToIE(), m.RecoveryTimeStamp.ToIE()}
	if m.UPFunctionFeatures != nil {
		ies = append(ies, m.UPFunctionFeatures.ToIE())
	}
	if m.CPFunctionFeatures != nil {
		ies = append(ies, m.CPFunctionFeatures.ToIE())
	}
	ies = append(ies, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalAssociationSetupResponse(h Header, body []byte) (AssociationSetupResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return AssociationSetupResponseMessage{}, err
	}
	m := AssociationSetupResponseMessage{Header: h}
	var haveNodeID, haveCause, haveRecovery bool
	for _, i := range ies {
		switch i.Type {
		case ie.NodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return AssociationSetupResponseMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
		case ie.Cause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return AssociationSetupResponseMessage{}, err
			}
			m.Cause = v
			haveCause = true
		case ie.RecoveryTimeStamp:
			v, err := ie.UnmarshalRecoveryTimeStamp(i.Payload)
			if err != nil {
				return AssociationSetupResponseMessage{}, err
			}
			m.RecoveryTimeStamp = v
			haveRecovery = true
		case ie.UPFunctionFeatures:
			v, err := ie.UnmarshalUPFunctionFeatures(i.Payload)
			if err != nil {
				return AssociationSetupResponseMessage{}, err
			}
			m.UPFunctionFeatures = &v
		case ie.CPFunctionFeatures:
			v, err := ie.UnmarshalCPFunctionFeatures(i.Payload)
			if err != nil {
				return AssociationSetupResponseMessage{}, err
			}
			m.CPFunctionFeatures = &v
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveNodeID {
		return AssociationSetupResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "AssociationSetupResponse"}
	}
	if !haveCause {
		return AssociationSetupResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.Cause), IEName: "Cause", MessageType: "AssociationSetupResponse"}
	}
	if !haveRecovery {
		return AssociationSetupResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.RecoveryTimeStamp), IEName: "RecoveryTimeStamp", MessageType: "AssociationSetupResponse"}
	}
	return m, nil
}

// AssociationSetupResponseBuilder builds an AssociationSetupResponseMessage.
type AssociationSetupResponseBuilder struct {
	header             Header
	nodeID             *ie.NodeIDIE
	cause              *ie.CauseIE
	recoveryTimeStamp  *ie.RecoveryTimeStampIE
	upFunctionFeatures *ie.UPFunctionFeaturesIE
	cpFunctionFeatures *ie.CPFunctionFeaturesIE
}

func NewAssociationSetupResponseBuilder(sequenceNumber uint32) *AssociationSetupResponseBuilder {
	return &AssociationSetupResponseBuilder{header: Header{Type: AssociationSetupResponse, SequenceNumber: sequenceNumber}}
}

func (b *AssociationSetupResponseBuilder) SetNodeID(v ie.NodeIDIE) *AssociationSetupResponseBuilder {
	b.nodeID = &v
	return b
}

func (b *AssociationSetupResponseBuilder) SetCause(v ie.CauseIE) *AssociationSetupResponseBuilder {
	b.cause = &v
	return b
}

func (b *AssociationSetupResponseBuilder) SetRecoveryTimeStamp(v ie.RecoveryTimeStampIE) *AssociationSetupResponseBuilder {
	b.recoveryTimeStamp = &v
	return b
}

func (b *AssociationSetupResponseBuilder) SetUPFunctionFeatures(v ie.UPFunctionFeaturesIE) *AssociationSetupResponseBuilder {
	b.upFunctionFeatures = &v
	return b
}

func (b *AssociationSetupResponseBuilder) SetCPFunctionFeatures(v ie.CPFunctionFeaturesIE) *AssociationSetupResponseBuilder {
	b.cpFunctionFeatures = &v
	return b
}

func (b *AssociationSetupResponseBuilder) Build() (AssociationSetupResponseMessage, error) {
	if b.nodeID == nil {
		return AssociationSetupResponseMessage{}, &pfcperr.ValidationError{Context: "AssociationSetupResponse", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	if b.cause == nil {
		return AssociationSetupResponseMessage{}, &pfcperr.ValidationError{Context: "AssociationSetupResponse", Field: "Cause", Detail: "mandatory IE not set"}
	}
	if b.recoveryTimeStamp == nil {
		return AssociationSetupResponseMessage{}, &pfcperr.ValidationError{Context: "AssociationSetupResponse", Field: "RecoveryTimeStamp", Detail: "mandatory IE not set"}
	}
	return AssociationSetupResponseMessage{
		Header: b.header, NodeID: *b.nodeID, Cause: *b.cause, RecoveryTimeStamp: *b.recoveryTimeStamp,
		UPFunctionFeatures: b.upFunctionFeatures, CPFunctionFeatures: b.cpFunctionFeatures,
	}, nil
}

// AssociationUpdateRequestMessage refreshes feature sets of an existing
// association, per TS 29.244 clause 7.4.5.1.
type AssociationUpdateRequestMessage struct {
	Header             Header
	NodeID             ie.NodeIDIE
	UPFunctionFeatures *ie.UPFunctionFeaturesIE
	CPFunctionFeatures *ie.CPFunctionFeaturesIE
	CatchAll           []ie.IE
}

func (m AssociationUpdateRequestMessage) GetHeader() Header { return m.Header }

func (m AssociationUpdateRequestMessage) Marshal() []byte {
	ies := []ie.IE{m.NodeID.ToIE()}
	if m.UPFunctionFeatures != nil {
		ies = append(ies, m.UPFunctionFeatures.ToIE())
	}
	if m.CPFunctionFeatures != nil {
		ies = append(ies, m.CPFunctionFeatures.ToIE())
	}
	ies = append(ies, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalAssociationUpdateRequest(h Header, body []byte) (AssociationUpdateRequestMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return AssociationUpdateRequestMessage{}, err
	}
	m := AssociationUpdateRequestMessage{Header: h}
	var haveNodeID bool
	for _, i := range ies {
		switch i.Type {
		case ie.NodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return AssociationUpdateRequestMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
		case ie.UPFunctionFeatures:
			v, err := ie.UnmarshalUPFunctionFeatures(i.Payload)
			if err != nil {
				return AssociationUpdateRequestMessage{}, err
			}
			m.UPFunctionFeatures = &v
		case ie.CPFunctionFeatures:
			v, err := ie.UnmarshalCPFunctionFeatures(i.Payload)
			if err != nil {
				return AssociationUpdateRequestMessage{}, err
			}
			m.CPFunctionFeatures = &v
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveNodeID {
		return AssociationUpdateRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "AssociationUpdateRequest"}
	}
	return m, nil
}

// AssociationUpdateRequestBuilder builds an AssociationUpdateRequestMessage.
type AssociationUpdateRequestBuilder struct {
	header             Header
	nodeID             *ie.NodeIDIE
	upFunctionFeatures *ie.UPFunctionFeaturesIE
	cpFunctionFeatures *ie.CPFunctionFeaturesIE
}

func NewAssociationUpdateRequestBuilder(sequenceNumber uint32) *AssociationUpdateRequestBuilder {
	return &AssociationUpdateRequestBuilder{header: Header{Type: AssociationUpdateRequest, SequenceNumber: sequenceNumber}}
}

func (b *AssociationUpdateRequestBuilder) SetNodeID(v ie.NodeIDIE) *AssociationUpdateRequestBuilder {
	b.nodeID = &v
	return b
}

func (b *AssociationUpdateRequestBuilder) SetUPFunctionFeatures(v ie.UPFunctionFeaturesIE) *AssociationUpdateRequestBuilder {
	b.upFunctionFeatures = &v
	return b
}

func (b *AssociationUpdateRequestBuilder) SetCPFunctionFeatures(v ie.CPFunctionFeaturesIE) *AssociationUpdateRequestBuilder {
	b.cpFunctionFeatures = &v
	return b
}

func (b *AssociationUpdateRequestBuilder) Build() (AssociationUpdateRequestMessage, error) {
	if b.nodeID == nil {
		return AssociationUpdateRequestMessage{}, &pfcperr.ValidationError{Context: "AssociationUpdateRequest", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	return AssociationUpdateRequestMessage{
		Header: b.header, NodeID: *b.nodeID,
		UPFunctionFeatures: b.upFunctionFeatures, CPFunctionFeatures: b.cpFunctionFeatures,
	}, nil
}

// AssociationUpdateResponseMessage is AssociationUpdateRequestMessage's
// reply.
type AssociationUpdateResponseMessage struct {
	Header   Header
	NodeID   ie.NodeIDIE
	Cause    ie.CauseIE
	CatchAll []ie.IE
}

func (m AssociationUpdateResponseMessage) GetHeader() Header { return m.Header }

func (m AssociationUpdateResponseMessage) Marshal() []byte {
	ies := append([]ie.IE{m.NodeID.ToIE(), m.Cause.ToIE()}, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalAssociationUpdateResponse(h Header, body []byte) (AssociationUpdateResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return AssociationUpdateResponseMessage{}, err
	}
	m := AssociationUpdateResponseMessage{Header: h}
	var haveNodeID, haveCause bool
	for _, i := range ies {
		switch i.Type {
		case ie.NodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return AssociationUpdateResponseMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
		case ie.Cause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return AssociationUpdateResponseMessage{}, err
			}
			m.Cause = v
			haveCause = true
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveNodeID {
		return AssociationUpdateResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "AssociationUpdateResponse"}
	}
	if !haveCause {
		return AssociationUpdateResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.Cause), IEName: "Cause", MessageType: "AssociationUpdateResponse"}
	}
	return m, nil
}

// AssociationUpdateResponseBuilder builds an AssociationUpdateResponseMessage.
type AssociationUpdateResponseBuilder struct {
	header Header
	nodeID *ie.NodeIDIE
	cause  *ie.CauseIE
}

func NewAssociationUpdateResponseBuilder(sequenceNumber uint32) *AssociationUpdateResponseBuilder {
	return &AssociationUpdateResponseBuilder{header: Header{Type: AssociationUpdateResponse, SequenceNumber: sequenceNumber}}
}

func (b *AssociationUpdateResponseBuilder) SetNodeID(v ie.NodeIDIE) *AssociationUpdateResponseBuilder {
	b.nodeID = &v
	return b
}

func (b *AssociationUpdateResponseBuilder) SetCause(v ie.CauseIE) *AssociationUpdateResponseBuilder {
	b.cause = &v
	return b
}

func (b *AssociationUpdateResponseBuilder) Build() (AssociationUpdateResponseMessage, error) {
	if b.nodeID == nil {
		return AssociationUpdateResponseMessage{}, &pfcperr.ValidationError{Context: "AssociationUpdateResponse", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	if b.cause == nil {
		return AssociationUpdateResponseMessage{}, &pfcperr.ValidationError{Context: "AssociationUpdateResponse", Field: "Cause", Detail: "mandatory IE not set"}
	}
	return AssociationUpdateResponseMessage{Header: b.header, NodeID: *b.nodeID, Cause: *b.cause}, nil
}

// AssociationReleaseRequestMessage tears down a PFCP association, per
// TS 29.244 clause 7.4.6.1.
type AssociationReleaseRequestMessage struct {
	Header   Header
	NodeID   ie.NodeIDIE
	CatchAll []ie.IE
}

func (m AssociationReleaseRequestMessage) GetHeader() Header { return m.Header }

func (m AssociationReleaseRequestMessage) Marshal() []byte {
	ies := append([]ie.IE{m.NodeID.ToIE()}, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalAssociationReleaseRequest(h Header, body []byte) (AssociationReleaseRequestMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return AssociationReleaseRequestMessage{}, err
	}
	m := AssociationReleaseRequestMessage{Header: h}
	var haveNodeID bool
	for _, i := range ies {
		if i.Type == ie.NodeID {
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return AssociationReleaseRequestMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
			continue
		}
		m.CatchAll = append(m.CatchAll, i)
	}
	if !haveNodeID {
		return AssociationReleaseRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "AssociationReleaseRequest"}
	}
	return m, nil
}

// AssociationReleaseRequestBuilder builds an AssociationReleaseRequestMessage.
type AssociationReleaseRequestBuilder struct {
	header Header
	nodeID *ie.NodeIDIE
}

func NewAssociationReleaseRequestBuilder(sequenceNumber uint32) *AssociationReleaseRequestBuilder {
	return &AssociationReleaseRequestBuilder{header: Header{Type: AssociationReleaseRequest, SequenceNumber: sequenceNumber}}
}

func (b *AssociationReleaseRequestBuilder) SetNodeID(v ie.NodeIDIE) *AssociationReleaseRequestBuilder {
	b.nodeID = &v
	return b
}

func (b *AssociationReleaseRequestBuilder) Build() (AssociationReleaseRequestMessage, error) {
	if b.nodeID == nil {
		return AssociationReleaseRequestMessage{}, &pfcperr.ValidationError{Context: "AssociationReleaseRequest", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	return AssociationReleaseRequestMessage{Header: b.header, NodeID: *b.nodeID}, nil
}

// AssociationReleaseResponseMessage is AssociationReleaseRequestMessage's
// reply.
type AssociationReleaseResponseMessage struct {
	Header   Header
	NodeID   ie.NodeIDIE
	Cause    ie.CauseIE
	CatchAll []ie.IE
}

func (m AssociationReleaseResponseMessage) GetHeader() Header { return m.Header }

func (m AssociationReleaseResponseMessage) Marshal() []byte {
	ies := append([]ie.IE{m.NodeID.ToIE(), m.Cause.ToIE()}, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalAssociationReleaseResponse(h Header, body []byte) (AssociationReleaseResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return AssociationReleaseResponseMessage{}, err
	}
	m := AssociationReleaseResponseMessage{Header: h}
	var haveNodeID, haveCause bool
	for _, i := range ies {
		switch i.Type {
		case ie.NodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return AssociationReleaseResponseMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
		case ie.Cause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return AssociationReleaseResponseMessage{}, err
			}
			m.Cause = v
			haveCause = true
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveNodeID {
		return AssociationReleaseResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "AssociationReleaseResponse"}
	}
	if !haveCause {
		return AssociationReleaseResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.Cause), IEName: "Cause", MessageType: "AssociationReleaseResponse"}
	}
	return m, nil
}

// AssociationReleaseResponseBuilder builds an AssociationReleaseResponseMessage.
type AssociationReleaseResponseBuilder struct {
	header Header
	nodeID *ie.NodeIDIE
	cause  *ie.CauseIE
}

func NewAssociationReleaseResponseBuilder(sequenceNumber uint32) *AssociationReleaseResponseBuilder {
	return &AssociationReleaseResponseBuilder{header: Header{Type: AssociationReleaseResponse, SequenceNumber: sequenceNumber}}
}

func (b *AssociationReleaseResponseBuilder) SetNodeID(v ie.NodeIDIE) *AssociationReleaseResponseBuilder {
	b.nodeID = &v
	return b
}

func (b *AssociationReleaseResponseBuilder) SetCause(v ie.CauseIE) *AssociationReleaseResponseBuilder {
	b.cause = &v
	return b
}

func (b *AssociationReleaseResponseBuilder) Build() (AssociationReleaseResponseMessage, error) {
	if b.nodeID == nil {
		return AssociationReleaseResponseMessage{}, &pfcperr.ValidationError{Context: "AssociationReleaseResponse", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	if b.cause == nil {
		return AssociationReleaseResponseMessage{}, &pfcperr.ValidationError{Context: "AssociationReleaseResponse", Field: "Cause", Detail: "mandatory IE not set"}
	}
	return AssociationReleaseResponseMessage{Header: b.header, NodeID: *b.nodeID, Cause: *b.cause}, nil
}

// VersionNotSupportedResponseMessage is returned when a peer sends a
// header version this node does not support, per TS 29.244 clause 7.4.2.
// It carries no mandatory IEs.
type VersionNotSupportedResponseMessage struct {
	Header   Header
	CatchAll []ie.IE
}

func (m VersionNotSupportedResponseMessage) GetHeader() Header { return m.Header }

func (m VersionNotSupportedResponseMessage) Marshal() []byte {
	return m.Header.marshal(marshalAll(m.CatchAll))
}

func unmarshalVersionNotSupportedResponse(h Header, body []byte) (VersionNotSupportedResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return VersionNotSupportedResponseMessage{}, err
	}
	return VersionNotSupportedResponseMessage{Header: h, CatchAll: ies}, nil
}

// NewVersionNotSupportedResponse builds a VersionNotSupportedResponseMessage.
// There is no Builder type since there are no mandatory IEs to validate.
func NewVersionNotSupportedResponse(sequenceNumber uint32) VersionNotSupportedResponseMessage {
	return VersionNotSupportedResponseMessage{Header: Header{Type: VersionNotSupportedResponse, SequenceNumber: sequenceNumber}}
}
