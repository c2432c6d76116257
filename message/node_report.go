package message

import (
	"github.com/your-org/pfcp-codec/ie"
	"github.com/your-org/pfcp-codec/pfcperr"
)

// NodeReportRequestMessage lets a UP function push node-level status to
// its CP function outside of a session context (load/overload, user
// plane path failure), per TS 29.244 clause 7.4.7.1. This module models
// NodeID and the load/overload control IEs explicitly; report-content IEs
// (NodeReportType, UserPlanePathFailureReport, ...) are not in this codec's
// modeled IE set and flow through the catch-all.
type NodeReportRequestMessage struct {
	Header                      Header
	NodeID                      ie.NodeIDIE
	LoadControlInformation      *ie.LoadControlInformationIE
	OverloadControlInformation *ie.OverloadControlInformationIE
	CatchAll                    []ie.IE
}

func (m NodeReportRequestMessage) GetHeader() Header { return m.Header }

func (m NodeReportRequestMessage) Marshal() []byte {
	ies := []ie.IE{m.NodeID.ToIE()}
	if m.LoadControlInformation != nil {
		ies = append(ies, m.LoadControlInformation.ToIE())
	}
	if m.OverloadControlInformation != nil {
		ies = append(ies, m.OverloadControlInformation.ToIE())
	}
	ies = append(ies, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalNodeReportRequest(h Header, body []byte) (NodeReportRequestMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return NodeReportRequestMessage{}, err
	}
	m := NodeReportRequestMessage{Header: h}
	var haveNodeID bool
	for _, i := range ies {
		switch i.Type {
		case ie.NodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return NodeReportRequestMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
		case ie.LoadControlInformation:
			v, err := ie.UnmarshalLoadControlInformation(i)
			if err != nil {
				return NodeReportRequestMessage{}, err
			}
			m.LoadControlInformation = &v
		case ie.OverloadControlInformation:
			v, err := ie.UnmarshalOverloadControlInformation(i)
			if err != nil {
				return NodeReportRequestMessage{}, err
			}
			m.OverloadControlInformation = &v
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveNodeID {
		return NodeReportRequestMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "NodeReportRequest"}
	}
	return m, nil
}

// NodeReportRequestBuilder builds a NodeReportRequestMessage.
type NodeReportRequestBuilder struct {
	header                     Header
	nodeID                     *ie.NodeIDIE
	loadControlInformation     *ie.LoadControlInformationIE
	overloadControlInformation *ie.OverloadControlInformationIE
}

func NewNodeReportRequestBuilder(sequenceNumber uint32) *NodeReportRequestBuilder {
	return &NodeReportRequestBuilder{header: Header{Type: NodeReportRequest, SequenceNumber: sequenceNumber}}
}

func (b *NodeReportRequestBuilder) SetNodeID(v ie.NodeIDIE) *NodeReportRequestBuilder {
	b.nodeID = &v
	return b
}

func (b *NodeReportRequestBuilder) SetLoadControlInformation(v ie.LoadControlInformationIE) *NodeReportRequestBuilder {
	b.loadControlInformation = &v
	return b
}

func (b *NodeReportRequestBuilder) SetOverloadControlInformation(v ie.OverloadControlInformationIE) *NodeReportRequestBuilder {
	b.overloadControlInformation = &v
	return b
}

func (b *NodeReportRequestBuilder) Build() (NodeReportRequestMessage, error) {
	if b.nodeID == nil {
		return NodeReportRequestMessage{}, &pfcperr.ValidationError{Context: "NodeReportRequest", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	return NodeReportRequestMessage{
		Header: b.header, NodeID: *b.nodeID,
		LoadControlInformation: b.loadControlInformation, OverloadControlInformation: b.overloadControlInformation,
	}, nil
}

// NodeReportResponseMessage is NodeReportRequestMessage's reply.
type NodeReportResponseMessage struct {
	Header   Header
	NodeID   ie.NodeIDIE
	Cause    ie.CauseIE
	CatchAll []ie.IE
}

func (m NodeReportResponseMessage) GetHeader() Header { return m.Header }

func (m NodeReportResponseMessage) Marshal() []byte {
	ies := append([]ie.IE{m.NodeID.ToIE(), m.Cause.ToIE()}, m.CatchAll...)
	return m.Header.marshal(marshalAll(ies))
}

func unmarshalNodeReportResponse(h Header, body []byte) (NodeReportResponseMessage, error) {
	ies, err := parseIEs(body)
	if err != nil {
		return NodeReportResponseMessage{}, err
	}
	m := NodeReportResponseMessage{Header: h}
	var haveNodeID, haveCause bool
	for _, i := range ies {
		switch i.Type {
		case ie.NodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return NodeReportResponseMessage{}, err
			}
			m.NodeID = v
			haveNodeID = true
		case ie.Cause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return NodeReportResponseMessage{}, err
			}
			m.Cause = v
			haveCause = true
		default:
			m.CatchAll = append(m.CatchAll, i)
		}
	}
	if !haveNodeID {
		return NodeReportResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.NodeID), IEName: "NodeID", MessageType: "NodeReportResponse"}
	}
	if !haveCause {
		return NodeReportResponseMessage{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ie.Cause), IEName: "Cause", MessageType: "NodeReportResponse"}
	}
	return m, nil
}

// NodeReportResponseBuilder builds a NodeReportResponseMessage.
type NodeReportResponseBuilder struct {
	header Header
	nodeID *ie.NodeIDIE
	cause  *ie.CauseIE
}

func NewNodeReportResponseBuilder(sequenceNumber uint32) *NodeReportResponseBuilder {
	return &NodeReportResponseBuilder{header: Header{Type: NodeReportResponse, SequenceNumber: sequenceNumber}}
}

func (b *NodeReportResponseBuilder) SetNodeID(v ie.NodeIDIE) *NodeReportResponseBuilder {
	b.nodeID = &v
	return b
}

func (b *NodeReportResponseBuilder) SetCause(v ie.CauseIE) *NodeReportResponseBuilder {
	b.cause = &v
	return b
}

func (b *NodeReportResponseBuilder) Build() (NodeReportResponseMessage, error) {
	if b.nodeID == nil {
		return NodeReportResponseMessage{}, &pfcperr.ValidationError{Context: "NodeReportResponse", Field: "NodeID", Detail: "mandatory IE not set"}
	}
	if b.cause == nil {
		return NodeReportResponseMessage{}, &pfcperr.ValidationError{Context: "NodeReportResponse", Field: "Cause", Detail: "mandatory IE not set"}
	}
	return NodeReportResponseMessage{Header: b.header, NodeID: *b.nodeID, Cause: *b.cause}, nil
}
