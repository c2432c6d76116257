package ie

import "github.com/your-org/pfcp-codec/pfcperr"

// Small supporting scalar IEs used only inside the grouped rule IEs below.

// ForwardingPolicyIE names a pre-configured forwarding policy (e.g. a
// routing table index) by an operator-defined identifier string, length-
// prefixed per TS 29.244 clause 8.2.23.
type ForwardingPolicyIE struct{ Identifier string }

func (f ForwardingPolicyIE) ToIE() IE {
	payload := append([]byte{byte(len(f.Identifier))}, f.Identifier...)
	return New(ForwardingPolicy, payload)
}
func UnmarshalForwardingPolicy(payload []byte) (ForwardingPolicyIE, error) {
	if len(payload) < 1 {
		return ForwardingPolicyIE{}, &pfcperr.InvalidLength{IEName: "ForwardingPolicy", IEType: uint16(ForwardingPolicy), Expected: 1, Actual: 0}
	}
	n := int(payload[0])
	if len(payload) < 1+n {
		return ForwardingPolicyIE{}, &pfcperr.InvalidLength{IEName: "ForwardingPolicy", IEType: uint16(ForwardingPolicy), Expected: 1 + n, Actual: len(payload)}
	}
	return ForwardingPolicyIE{Identifier: string(payload[1 : 1+n])}, nil
}

// ReportingTriggersIE carries the multi-octet reporting-triggers bitmask a
// URR is configured with, per TS 29.244 clause 8.2.39. Stored opaque since
// this module's message inventory only needs to round-trip the field, not
// interpret individual trigger bits the way UsageReportTriggerIE's report-
// side counterpart does.
type ReportingTriggersIE struct{ Raw []byte }

func (r ReportingTriggersIE) ToIE() IE { return New(ReportingTriggers, r.Raw) }
func UnmarshalReportingTriggers(payload []byte) (ReportingTriggersIE, error) {
	return ReportingTriggersIE{Raw: append([]byte(nil), payload...)}, nil
}

// DownlinkDataNotificationDelayIE and DLBufferingDurationIE share Timer's
// value/unit octet encoding, per TS 29.244 clauses 8.2.26/8.2.27.
type DownlinkDataNotificationDelayIE struct{ Value uint8 }

func (d DownlinkDataNotificationDelayIE) ToIE() IE {
	return New(DownlinkDataNotificationDelay, []byte{d.Value})
}
func UnmarshalDownlinkDataNotificationDelay(payload []byte) (DownlinkDataNotificationDelayIE, error) {
	v, err := IE{Type: DownlinkDataNotificationDelay, Payload: payload}.AsUint8()
	return DownlinkDataNotificationDelayIE{Value: v}, err
}

type DLBufferingDurationIE struct{ Value uint8 }

func (d DLBufferingDurationIE) ToIE() IE { return New(DLBufferingDuration, []byte{d.Value}) }
func UnmarshalDLBufferingDuration(payload []byte) (DLBufferingDurationIE, error) {
	v, err := IE{Type: DLBufferingDuration, Payload: payload}.AsUint8()
	return DLBufferingDurationIE{Value: v}, err
}

type DLBufferingSuggestedPacketCountIE struct{ Value uint16 }

func (d DLBufferingSuggestedPacketCountIE) ToIE() IE {
	return New(DLBufferingSuggestedPacketCount, []byte{byte(d.Value >> 8), byte(d.Value)})
}
func UnmarshalDLBufferingSuggestedPacketCount(payload []byte) (DLBufferingSuggestedPacketCountIE, error) {
	v, err := IE{Type: DLBufferingSuggestedPacketCount, Payload: payload}.AsUint16()
	return DLBufferingSuggestedPacketCountIE{Value: v}, err
}

// PdiIE is a Packet Detection Information group: the match criteria a PDR
// applies to incoming traffic, per TS 29.244 clause 7.5.2.2.
type PdiIE struct {
	SourceInterface       SourceInterfaceIE
	FTEID                 *FTEIDIE
	NetworkInstance       *NetworkInstanceIE
	UEIPAddress           *UEIPAddressIE
	SDFFilters            []SDFFilterIE
	ApplicationID         *ApplicationIDIE
	EthernetPacketFilters []EthernetPacketFilterIE
}

func (p PdiIE) ToIE() IE {
	children := []IE{p.SourceInterface.ToIE()}
	if p.FTEID != nil {
		children = append(children, p.FTEID.ToIE())
	}
	if p.NetworkInstance != nil {
		children = append(children, p.NetworkInstance.ToIE())
	}
	if p.UEIPAddress != nil {
		children = append(children, p.UEIPAddress.ToIE())
	}
	for _, f := range p.SDFFilters {
		children = append(children, f.ToIE())
	}
	if p.ApplicationID != nil {
		children = append(children, p.ApplicationID.ToIE())
	}
	for _, f := range p.EthernetPacketFilters {
		children = append(children, f.ToIE())
	}
	return NewGrouped(PDI, children)
}

func UnmarshalPdi(group IE) (PdiIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return PdiIE{}, err
	}
	var p PdiIE
	var haveSourceInterface bool
	for _, c := range children {
		switch c.Type {
		case SourceInterface:
			v, err := UnmarshalSourceInterface(c.Payload)
			if err != nil {
				return PdiIE{}, err
			}
			p.SourceInterface = v
			haveSourceInterface = true
		case FTEID:
			v, err := UnmarshalFTEID(c.Payload)
			if err != nil {
				return PdiIE{}, err
			}
			p.FTEID = &v
		case NetworkInstance:
			v, err := UnmarshalNetworkInstance(c.Payload)
			if err != nil {
				return PdiIE{}, err
			}
			p.NetworkInstance = &v
		case UEIPAddress:
			v, err := UnmarshalUEIPAddress(c.Payload)
			if err != nil {
				return PdiIE{}, err
			}
			p.UEIPAddress = &v
		case SDFFilter:
			v, err := UnmarshalSDFFilter(c.Payload)
			if err != nil {
				return PdiIE{}, err
			}
			p.SDFFilters = append(p.SDFFilters, v)
		case ApplicationID:
			v, err := UnmarshalApplicationID(c.Payload)
			if err != nil {
				return PdiIE{}, err
			}
			p.ApplicationID = &v
		case EthernetPacketFilter:
			v, err := UnmarshalEthernetPacketFilter(c)
			if err != nil {
				return PdiIE{}, err
			}
			p.EthernetPacketFilters = append(p.EthernetPacketFilters, v)
		}
	}
	if !haveSourceInterface {
		return PdiIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(SourceInterface), IEName: "SourceInterface", ParentIE: "PDI"}
	}
	return p, nil
}

// ForwardingParametersIE tells the UP function where and how to send
// traffic a PDR matched, per TS 29.244 clause 7.5.2.3.
type ForwardingParametersIE struct {
	DestinationInterface DestinationInterfaceIE
	NetworkInstance      *NetworkInstanceIE
	RedirectInformation  *RedirectInformationIE
	OuterHeaderCreation  *OuterHeaderCreationIE
	ForwardingPolicy     *ForwardingPolicyIE
}

func (f ForwardingParametersIE) ToIE() IE {
	children := []IE{f.DestinationInterface.ToIE()}
	if f.NetworkInstance != nil {
		children = append(children, f.NetworkInstance.ToIE())
	}
	if f.RedirectInformation != nil {
		children = append(children, f.RedirectInformation.ToIE())
	}
	if f.OuterHeaderCreation != nil {
		children = append(children, f.OuterHeaderCreation.ToIE())
	}
	if f.ForwardingPolicy != nil {
		children = append(children, f.ForwardingPolicy.ToIE())
	}
	return NewGrouped(ForwardingParameters, children)
}

func UnmarshalForwardingParameters(group IE) (ForwardingParametersIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return ForwardingParametersIE{}, err
	}
	var f ForwardingParametersIE
	var haveDest bool
	for _, c := range children {
		switch c.Type {
		case DestinationInterface:
			v, err := UnmarshalDestinationInterface(c.Payload)
			if err != nil {
				return ForwardingParametersIE{}, err
			}
			f.DestinationInterface = v
			haveDest = true
		case NetworkInstance:
			v, err := UnmarshalNetworkInstance(c.Payload)
			if err != nil {
				return ForwardingParametersIE{}, err
			}
			f.NetworkInstance = &v
		case RedirectInformation:
			v, err := UnmarshalRedirectInformation(c.Payload)
			if err != nil {
				return ForwardingParametersIE{}, err
			}
			f.RedirectInformation = &v
		case OuterHeaderCreation:
			v, err := UnmarshalOuterHeaderCreation(c.Payload)
			if err != nil {
				return ForwardingParametersIE{}, err
			}
			f.OuterHeaderCreation = &v
		case ForwardingPolicy:
			v, err := UnmarshalForwardingPolicy(c.Payload)
			if err != nil {
				return ForwardingParametersIE{}, err
			}
			f.ForwardingPolicy = &v
		}
	}
	if !haveDest {
		return ForwardingParametersIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(DestinationInterface), IEName: "DestinationInterface", ParentIE: "ForwardingParameters"}
	}
	return f, nil
}

// UpdateForwardingParametersIE mirrors ForwardingParametersIE for a Session
// Modification, where every field including DestinationInterface is
// optional since the CP function may only want to change one of them.
type UpdateForwardingParametersIE struct {
	DestinationInterface *DestinationInterfaceIE
	NetworkInstance      *NetworkInstanceIE
	RedirectInformation  *RedirectInformationIE
	OuterHeaderCreation  *OuterHeaderCreationIE
	ForwardingPolicy     *ForwardingPolicyIE
}

func (u UpdateForwardingParametersIE) ToIE() IE {
	var children []IE
	if u.DestinationInterface != nil {
		children = append(children, u.DestinationInterface.ToIE())
	}
	if u.NetworkInstance != nil {
		children = append(children, u.NetworkInstance.ToIE())
	}
	if u.RedirectInformation != nil {
		children = append(children, u.RedirectInformation.ToIE())
	}
	if u.OuterHeaderCreation != nil {
		children = append(children, u.OuterHeaderCreation.ToIE())
	}
	if u.ForwardingPolicy != nil {
		children = append(children, u.ForwardingPolicy.ToIE())
	}
	return NewGrouped(UpdateForwardingParameters, children)
}

func UnmarshalUpdateForwardingParameters(group IE) (UpdateForwardingParametersIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return UpdateForwardingParametersIE{}, err
	}
	var u UpdateForwardingParametersIE
	for _, c := range children {
		switch c.Type {
		case DestinationInterface:
			v, err := UnmarshalDestinationInterface(c.Payload)
			if err != nil {
				return UpdateForwardingParametersIE{}, err
			}
			u.DestinationInterface = &v
		case NetworkInstance:
			v, err := UnmarshalNetworkInstance(c.Payload)
			if err != nil {
				return UpdateForwardingParametersIE{}, err
			}
			u.NetworkInstance = &v
		case RedirectInformation:
			v, err := UnmarshalRedirectInformation(c.Payload)
			if err != nil {
				return UpdateForwardingParametersIE{}, err
			}
			u.RedirectInformation = &v
		case OuterHeaderCreation:
			v, err := UnmarshalOuterHeaderCreation(c.Payload)
			if err != nil {
				return UpdateForwardingParametersIE{}, err
			}
			u.OuterHeaderCreation = &v
		case ForwardingPolicy:
			v, err := UnmarshalForwardingPolicy(c.Payload)
			if err != nil {
				return UpdateForwardingParametersIE{}, err
			}
			u.ForwardingPolicy = &v
		}
	}
	return u, nil
}

// DuplicatingParametersIE tells the UP function to mirror traffic to a
// second destination in addition to the PDR's primary FAR action, per
// TS 29.244 clause 7.5.2.4.
type DuplicatingParametersIE struct {
	DestinationInterface DestinationInterfaceIE
	OuterHeaderCreation  *OuterHeaderCreationIE
	ForwardingPolicy     *ForwardingPolicyIE
}

func (d DuplicatingParametersIE) ToIE() IE {
	children := []IE{d.DestinationInterface.ToIE()}
	if d.OuterHeaderCreation != nil {
		children = append(children, d.OuterHeaderCreation.ToIE())
	}
	if d.ForwardingPolicy != nil {
		children = append(children, d.ForwardingPolicy.ToIE())
	}
	return NewGrouped(DuplicatingParameters, children)
}

func UnmarshalDuplicatingParameters(group IE) (DuplicatingParametersIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return DuplicatingParametersIE{}, err
	}
	var d DuplicatingParametersIE
	var haveDest bool
	for _, c := range children {
		switch c.Type {
		case DestinationInterface:
			v, err := UnmarshalDestinationInterface(c.Payload)
			if err != nil {
				return DuplicatingParametersIE{}, err
			}
			d.DestinationInterface = v
			haveDest = true
		case OuterHeaderCreation:
			v, err := UnmarshalOuterHeaderCreation(c.Payload)
			if err != nil {
				return DuplicatingParametersIE{}, err
			}
			d.OuterHeaderCreation = &v
		case ForwardingPolicy:
			v, err := UnmarshalForwardingPolicy(c.Payload)
			if err != nil {
				return DuplicatingParametersIE{}, err
			}
			d.ForwardingPolicy = &v
		}
	}
	if !haveDest {
		return DuplicatingParametersIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(DestinationInterface), IEName: "DestinationInterface", ParentIE: "DuplicatingParameters"}
	}
	return d, nil
}

// CreatePDRIE adds a new Packet Detection Rule to a session, per TS 29.244
// clause 7.5.2.2.
type CreatePDRIE struct {
	PDRID             PDRIDIE
	Precedence        PrecedenceIE
	PDI               PdiIE
	OuterHeaderRemoval *OuterHeaderRemovalIE
	FARID             *FARIDIE
	URRIDs            []URRIDIE
	QERIDs            []QERIDIE
}

func (c CreatePDRIE) ToIE() IE {
	children := []IE{c.PDRID.ToIE(), c.Precedence.ToIE(), c.PDI.ToIE()}
	if c.OuterHeaderRemoval != nil {
		children = append(children, c.OuterHeaderRemoval.ToIE())
	}
	if c.FARID != nil {
		children = append(children, c.FARID.ToIE())
	}
	for _, u := range c.URRIDs {
		children = append(children, u.ToIE())
	}
	for _, q := range c.QERIDs {
		children = append(children, q.ToIE())
	}
	return NewGrouped(CreatePDR, children)
}

func UnmarshalCreatePDR(group IE) (CreatePDRIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return CreatePDRIE{}, err
	}
	var c CreatePDRIE
	var havePDRID, havePrecedence, havePDI bool
	for _, child := range children {
		switch child.Type {
		case PDRID:
			v, err := UnmarshalPDRID(child.Payload)
			if err != nil {
				return CreatePDRIE{}, err
			}
			c.PDRID = v
			havePDRID = true
		case Precedence:
			v, err := UnmarshalPrecedence(child.Payload)
			if err != nil {
				return CreatePDRIE{}, err
			}
			c.Precedence = v
			havePrecedence = true
		case PDI:
			v, err := UnmarshalPdi(child)
			if err != nil {
				return CreatePDRIE{}, err
			}
			c.PDI = v
			havePDI = true
		case OuterHeaderRemoval:
			v, err := UnmarshalOuterHeaderRemoval(child.Payload)
			if err != nil {
				return CreatePDRIE{}, err
			}
			c.OuterHeaderRemoval = &v
		case FARID:
			v, err := UnmarshalFARID(child.Payload)
			if err != nil {
				return CreatePDRIE{}, err
			}
			c.FARID = &v
		case URRID:
			v, err := UnmarshalURRID(child.Payload)
			if err != nil {
				return CreatePDRIE{}, err
			}
			c.URRIDs = append(c.URRIDs, v)
		case QERID:
			v, err := UnmarshalQERID(child.Payload)
			if err != nil {
				return CreatePDRIE{}, err
			}
			c.QERIDs = append(c.QERIDs, v)
		}
	}
	if !havePDRID {
		return CreatePDRIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(PDRID), IEName: "PDRID", ParentIE: "CreatePDR"}
	}
	if !havePrecedence {
		return CreatePDRIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(Precedence), IEName: "Precedence", ParentIE: "CreatePDR"}
	}
	if !havePDI {
		return CreatePDRIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(PDI), IEName: "PDI", ParentIE: "CreatePDR"}
	}
	return c, nil
}

// UpdatePDRIE mirrors CreatePDRIE for a Session Modification: only PDRID is
// mandatory, everything else changes in place if present.
type UpdatePDRIE struct {
	PDRID              PDRIDIE
	Precedence         *PrecedenceIE
	PDI                *PdiIE
	OuterHeaderRemoval *OuterHeaderRemovalIE
	FARID              *FARIDIE
	URRIDs             []URRIDIE
	QERIDs             []QERIDIE
}

func (u UpdatePDRIE) ToIE() IE {
	children := []IE{u.PDRID.ToIE()}
	if u.Precedence != nil {
		children = append(children, u.Precedence.ToIE())
	}
	if u.PDI != nil {
		children = append(children, u.PDI.ToIE())
	}
	if u.OuterHeaderRemoval != nil {
		children = append(children, u.OuterHeaderRemoval.ToIE())
	}
	if u.FARID != nil {
		children = append(children, u.FARID.ToIE())
	}
	for _, x := range u.URRIDs {
		children = append(children, x.ToIE())
	}
	for _, x := range u.QERIDs {
		children = append(children, x.ToIE())
	}
	return NewGrouped(UpdatePDR, children)
}

func UnmarshalUpdatePDR(group IE) (UpdatePDRIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return UpdatePDRIE{}, err
	}
	var u UpdatePDRIE
	var havePDRID bool
	for _, child := range children {
		switch child.Type {
		case PDRID:
			v, err := UnmarshalPDRID(child.Payload)
			if err != nil {
				return UpdatePDRIE{}, err
			}
			u.PDRID = v
			havePDRID = true
		case Precedence:
			v, err := UnmarshalPrecedence(child.Payload)
			if err != nil {
				return UpdatePDRIE{}, err
			}
			u.Precedence = &v
		case PDI:
			v, err := UnmarshalPdi(child)
			if err != nil {
				return UpdatePDRIE{}, err
			}
			u.PDI = &v
		case OuterHeaderRemoval:
			v, err := UnmarshalOuterHeaderRemoval(child.Payload)
			if err != nil {
				return UpdatePDRIE{}, err
			}
			u.OuterHeaderRemoval = &v
		case FARID:
			v, err := UnmarshalFARID(child.Payload)
			if err != nil {
				return UpdatePDRIE{}, err
			}
			u.FARID = &v
		case URRID:
			v, err := UnmarshalURRID(child.Payload)
			if err != nil {
				return UpdatePDRIE{}, err
			}
			u.URRIDs = append(u.URRIDs, v)
		case QERID:
			v, err := UnmarshalQERID(child.Payload)
			if err != nil {
				return UpdatePDRIE{}, err
			}
			u.QERIDs = append(u.QERIDs, v)
		}
	}
	if !havePDRID {
		return UpdatePDRIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(PDRID), IEName: "PDRID", ParentIE: "UpdatePDR"}
	}
	return u, nil
}

// RemovePDRIE deletes a PDR by ID; no other field is defined.
type RemovePDRIE struct{ PDRID PDRIDIE }

func (r RemovePDRIE) ToIE() IE { return NewGrouped(RemovePDR, []IE{r.PDRID.ToIE()}) }

func UnmarshalRemovePDR(group IE) (RemovePDRIE, error) {
	child, ok, err := findMandatoryChild(group, PDRID, "RemovePDR")
	if err != nil {
		return RemovePDRIE{}, err
	}
	if !ok {
		return RemovePDRIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(PDRID), IEName: "PDRID", ParentIE: "RemovePDR"}
	}
	v, err := UnmarshalPDRID(child.Payload)
	return RemovePDRIE{PDRID: v}, err
}

// findMandatoryChild is a small helper shared by the Remove* IEs, all of
// which carry exactly one mandatory ID field and nothing else.
func findMandatoryChild(group IE, t Type, parent string) (IE, bool, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return IE{}, false, err
	}
	for _, c := range children {
		if c.Type == t {
			return c, true, nil
		}
	}
	return IE{}, false, nil
}

// CreateFARIE adds a new Forwarding Action Rule to a session, per TS 29.244
// clause 7.5.2.3.
type CreateFARIE struct {
	FARID                 FARIDIE
	ApplyAction           ApplyActionIE
	ForwardingParameters  *ForwardingParametersIE
	DuplicatingParameters *DuplicatingParametersIE
	BARID                 *BARIDIE
}

func (c CreateFARIE) ToIE() IE {
	children := []IE{c.FARID.ToIE(), c.ApplyAction.ToIE()}
	if c.ForwardingParameters != nil {
		children = append(children, c.ForwardingParameters.ToIE())
	}
	if c.DuplicatingParameters != nil {
		children = append(children, c.DuplicatingParameters.ToIE())
	}
	if c.BARID != nil {
		children = append(children, c.BARID.ToIE())
	}
	return NewGrouped(CreateFAR, children)
}

func UnmarshalCreateFAR(group IE) (CreateFARIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return CreateFARIE{}, err
	}
	var c CreateFARIE
	var haveFARID, haveApplyAction bool
	for _, child := range children {
		switch child.Type {
		case FARID:
			v, err := UnmarshalFARID(child.Payload)
			if err != nil {
				return CreateFARIE{}, err
			}
			c.FARID = v
			haveFARID = true
		case ApplyAction:
			v, err := UnmarshalApplyAction(child.Payload)
			if err != nil {
				return CreateFARIE{}, err
			}
			c.ApplyAction = v
			haveApplyAction = true
		case ForwardingParameters:
			v, err := UnmarshalForwardingParameters(child)
			if err != nil {
				return CreateFARIE{}, err
			}
			c.ForwardingParameters = &v
		case DuplicatingParameters:
			v, err := UnmarshalDuplicatingParameters(child)
			if err != nil {
				return CreateFARIE{}, err
			}
			c.DuplicatingParameters = &v
		case BARID:
			v, err := UnmarshalBARID(child.Payload)
			if err != nil {
				return CreateFARIE{}, err
			}
			c.BARID = &v
		}
	}
	if !haveFARID {
		return CreateFARIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(FARID), IEName: "FARID", ParentIE: "CreateFAR"}
	}
	if !haveApplyAction {
		return CreateFARIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ApplyAction), IEName: "ApplyAction", ParentIE: "CreateFAR"}
	}
	return c, nil
}

// UpdateFARIE mirrors CreateFARIE for a Session Modification.
type UpdateFARIE struct {
	FARID                       FARIDIE
	ApplyAction                 *ApplyActionIE
	UpdateForwardingParameters  *UpdateForwardingParametersIE
	BARID                       *BARIDIE
}

func (u UpdateFARIE) ToIE() IE {
	children := []IE{u.FARID.ToIE()}
	if u.ApplyAction != nil {
		children = append(children, u.ApplyAction.ToIE())
	}
	if u.UpdateForwardingParameters != nil {
		children = append(children, u.UpdateForwardingParameters.ToIE())
	}
	if u.BARID != nil {
		children = append(children, u.BARID.ToIE())
	}
	return NewGrouped(UpdateFAR, children)
}

func UnmarshalUpdateFAR(group IE) (UpdateFARIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return UpdateFARIE{}, err
	}
	var u UpdateFARIE
	var haveFARID bool
	for _, child := range children {
		switch child.Type {
		case FARID:
			v, err := UnmarshalFARID(child.Payload)
			if err != nil {
				return UpdateFARIE{}, err
			}
			u.FARID = v
			haveFARID = true
		case ApplyAction:
			v, err := UnmarshalApplyAction(child.Payload)
			if err != nil {
				return UpdateFARIE{}, err
			}
			u.ApplyAction = &v
		case UpdateForwardingParameters:
			v, err := UnmarshalUpdateForwardingParameters(child)
			if err != nil {
				return UpdateFARIE{}, err
			}
			u.UpdateForwardingParameters = &v
		case BARID:
			v, err := UnmarshalBARID(child.Payload)
			if err != nil {
				return UpdateFARIE{}, err
			}
			u.BARID = &v
		}
	}
	if !haveFARID {
		return UpdateFARIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(FARID), IEName: "FARID", ParentIE: "UpdateFAR"}
	}
	return u, nil
}

// RemoveFARIE deletes a FAR by ID.
type RemoveFARIE struct{ FARID FARIDIE }

func (r RemoveFARIE) ToIE() IE { return NewGrouped(RemoveFAR, []IE{r.FARID.ToIE()}) }

func UnmarshalRemoveFAR(group IE) (RemoveFARIE, error) {
	child, ok, err := findMandatoryChild(group, FARID, "RemoveFAR")
	if err != nil {
		return RemoveFARIE{}, err
	}
	if !ok {
		return RemoveFARIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(FARID), IEName: "FARID", ParentIE: "RemoveFAR"}
	}
	v, err := UnmarshalFARID(child.Payload)
	return RemoveFARIE{FARID: v}, err
}

// CreateURRIE adds a new Usage Reporting Rule to a session, per TS 29.244
// clause 7.5.2.4.
type CreateURRIE struct {
	URRID             URRIDIE
	MeasurementMethod MeasurementMethodIE
	ReportingTriggers ReportingTriggersIE
	VolumeThreshold   *VolumeThresholdIE
	VolumeQuota       *VolumeQuotaIE
	TimeThreshold     *TimeThresholdIE
	TimeQuota         *TimeQuotaIE
	QuotaHoldingTime  *QuotaHoldingTimeIE
	MonitoringTime    *MonitoringTimeIE
}

func (c CreateURRIE) ToIE() IE {
	children := []IE{c.URRID.ToIE(), c.MeasurementMethod.ToIE(), c.ReportingTriggers.ToIE()}
	if c.VolumeThreshold != nil {
		children = append(children, c.VolumeThreshold.ToIE())
	}
	if c.VolumeQuota != nil {
		children = append(children, c.VolumeQuota.ToIE())
	}
	if c.TimeThreshold != nil {
		children = append(children, c.TimeThreshold.ToIE())
	}
	if c.TimeQuota != nil {
		children = append(children, c.TimeQuota.ToIE())
	}
	if c.QuotaHoldingTime != nil {
		children = append(children, c.QuotaHoldingTime.ToIE())
	}
	if c.MonitoringTime != nil {
		children = append(children, c.MonitoringTime.ToIE())
	}
	return NewGrouped(CreateURR, children)
}

func UnmarshalCreateURR(group IE) (CreateURRIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return CreateURRIE{}, err
	}
	var c CreateURRIE
	var haveURRID, haveMethod, haveTriggers bool
	for _, child := range children {
		switch child.Type {
		case URRID:
			v, err := UnmarshalURRID(child.Payload)
			if err != nil {
				return CreateURRIE{}, err
			}
			c.URRID = v
			haveURRID = true
		case MeasurementMethod:
			v, err := UnmarshalMeasurementMethod(child.Payload)
			if err != nil {
				return CreateURRIE{}, err
			}
			c.MeasurementMethod = v
			haveMethod = true
		case ReportingTriggers:
			v, err := UnmarshalReportingTriggers(child.Payload)
			if err != nil {
				return CreateURRIE{}, err
			}
			c.ReportingTriggers = v
			haveTriggers = true
		case VolumeThreshold:
			v, err := UnmarshalVolumeThreshold(child.Payload)
			if err != nil {
				return CreateURRIE{}, err
			}
			c.VolumeThreshold = &v
		case VolumeQuota:
			v, err := UnmarshalVolumeQuota(child.Payload)
			if err != nil {
				return CreateURRIE{}, err
			}
			c.VolumeQuota = &v
		case TimeThreshold:
			v, err := UnmarshalTimeThreshold(child.Payload)
			if err != nil {
				return CreateURRIE{}, err
			}
			c.TimeThreshold = &v
		case TimeQuota:
			v, err := UnmarshalTimeQuota(child.Payload)
			if err != nil {
				return CreateURRIE{}, err
			}
			c.TimeQuota = &v
		case QuotaHoldingTime:
			v, err := UnmarshalQuotaHoldingTime(child.Payload)
			if err != nil {
				return CreateURRIE{}, err
			}
			c.QuotaHoldingTime = &v
		case MonitoringTime:
			v, err := UnmarshalMonitoringTime(child.Payload)
			if err != nil {
				return CreateURRIE{}, err
			}
			c.MonitoringTime = &v
		}
	}
	if !haveURRID {
		return CreateURRIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(URRID), IEName: "URRID", ParentIE: "CreateURR"}
	}
	if !haveMethod {
		return CreateURRIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(MeasurementMethod), IEName: "MeasurementMethod", ParentIE: "CreateURR"}
	}
	if !haveTriggers {
		return CreateURRIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ReportingTriggers), IEName: "ReportingTriggers", ParentIE: "CreateURR"}
	}
	return c, nil
}

// UpdateURRIE mirrors CreateURRIE for a Session Modification.
type UpdateURRIE struct {
	URRID             URRIDIE
	MeasurementMethod *MeasurementMethodIE
	ReportingTriggers *ReportingTriggersIE
	VolumeThreshold   *VolumeThresholdIE
	VolumeQuota       *VolumeQuotaIE
	TimeThreshold     *TimeThresholdIE
	TimeQuota         *TimeQuotaIE
	QuotaHoldingTime  *QuotaHoldingTimeIE
	MonitoringTime    *MonitoringTimeIE
}

func (u UpdateURRIE) ToIE() IE {
	children := []IE{u.URRID.ToIE()}
	if u.MeasurementMethod != nil {
		children = append(children, u.MeasurementMethod.ToIE())
	}
	if u.ReportingTriggers != nil {
		children = append(children, u.ReportingTriggers.ToIE())
	}
	if u.VolumeThreshold != nil {
		children = append(children, u.VolumeThreshold.ToIE())
	}
	if u.VolumeQuota != nil {
		children = append(children, u.VolumeQuota.ToIE())
	}
	if u.TimeThreshold != nil {
		children = append(children, u.TimeThreshold.ToIE())
	}
	if u.TimeQuota != nil {
		children = append(children, u.TimeQuota.ToIE())
	}
	if u.QuotaHoldingTime != nil {
		children = append(children, u.QuotaHoldingTime.ToIE())
	}
	if u.MonitoringTime != nil {
		children = append(children, u.MonitoringTime.ToIE())
	}
	return NewGrouped(UpdateURR, children)
}

func UnmarshalUpdateURR(group IE) (UpdateURRIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return UpdateURRIE{}, err
	}
	var u UpdateURRIE
	var haveURRID bool
	for _, child := range children {
		switch child.Type {
		case URRID:
			v, err := UnmarshalURRID(child.Payload)
			if err != nil {
				return UpdateURRIE{}, err
			}
			u.URRID = v
			haveURRID = true
		case MeasurementMethod:
			v, err := UnmarshalMeasurementMethod(child.Payload)
			if err != nil {
				return UpdateURRIE{}, err
			}
			u.MeasurementMethod = &v
		case ReportingTriggers:
			v, err := UnmarshalReportingTriggers(child.Payload)
			if err != nil {
				return UpdateURRIE{}, err
			}
			u.ReportingTriggers = &v
		case VolumeThreshold:
			v, err := UnmarshalVolumeThreshold(child.Payload)
			if err != nil {
				return UpdateURRIE{}, err
			}
			u.VolumeThreshold = &v
		case VolumeQuota:
			v, err := UnmarshalVolumeQuota(child.Payload)
			if err != nil {
				return UpdateURRIE{}, err
			}
			u.VolumeQuota = &v
		case TimeThreshold:
			v, err := UnmarshalTimeThreshold(child.Payload)
			if err != nil {
				return UpdateURRIE{}, err
			}
			u.TimeThreshold = &v
		case TimeQuota:
			v, err := UnmarshalTimeQuota(child.Payload)
			if err != nil {
				return UpdateURRIE{}, err
			}
			u.TimeQuota = &v
		case QuotaHoldingTime:
			v, err := UnmarshalQuotaHoldingTime(child.Payload)
			if err != nil {
				return UpdateURRIE{}, err
			}
			u.QuotaHoldingTime = &v
		case MonitoringTime:
			v, err := UnmarshalMonitoringTime(child.Payload)
			if err != nil {
				return UpdateURRIE{}, err
			}
			u.MonitoringTime = &v
		}
	}
	if !haveURRID {
		return UpdateURRIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(URRID), IEName: "URRID", ParentIE: "UpdateURR"}
	}
	return u, nil
}

// RemoveURRIE deletes a URR by ID.
type RemoveURRIE struct{ URRID URRIDIE }

func (r RemoveURRIE) ToIE() IE { return NewGrouped(RemoveURR, []IE{r.URRID.ToIE()}) }

func UnmarshalRemoveURR(group IE) (RemoveURRIE, error) {
	child, ok, err := findMandatoryChild(group, URRID, "RemoveURR")
	if err != nil {
		return RemoveURRIE{}, err
	}
	if !ok {
		return RemoveURRIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(URRID), IEName: "URRID", ParentIE: "RemoveURR"}
	}
	v, err := UnmarshalURRID(child.Payload)
	return RemoveURRIE{URRID: v}, err
}

// CreateQERIE adds a new QoS Enforcement Rule to a session, per TS 29.244
// clause 7.5.2.5.
type CreateQERIE struct {
	QERID            QERIDIE
	GateStatus       GateStatusIE
	MBR              *MBRIE
	GBR              *GBRIE
	QERCorrelationID *QERCorrelationIDIE
}

func (c CreateQERIE) ToIE() IE {
	children := []IE{c.QERID.ToIE(), c.GateStatus.ToIE()}
	if c.MBR != nil {
		children = append(children, c.MBR.ToIE())
	}
	if c.GBR != nil {
		children = append(children, c.GBR.ToIE())
	}
	if c.QERCorrelationID != nil {
		children = append(children, c.QERCorrelationID.ToIE())
	}
	return NewGrouped(CreateQER, children)
}

func UnmarshalCreateQER(group IE) (CreateQERIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return CreateQERIE{}, err
	}
	var c CreateQERIE
	var haveQERID, haveGate bool
	for _, child := range children {
		switch child.Type {
		case QERID:
			v, err := UnmarshalQERID(child.Payload)
			if err != nil {
				return CreateQERIE{}, err
			}
			c.QERID = v
			haveQERID = true
		case GateStatus:
			v, err := UnmarshalGateStatus(child.Payload)
			if err != nil {
				return CreateQERIE{}, err
			}
			c.GateStatus = v
			haveGate = true
		case MBR:
			v, err := UnmarshalMBR(child.Payload)
			if err != nil {
				return CreateQERIE{}, err
			}
			c.MBR = &v
		case GBR:
			v, err := UnmarshalGBR(child.Payload)
			if err != nil {
				return CreateQERIE{}, err
			}
			c.GBR = &v
		case QERCorrelationID:
			v, err := UnmarshalQERCorrelationID(child.Payload)
			if err != nil {
				return CreateQERIE{}, err
			}
			c.QERCorrelationID = &v
		}
	}
	if !haveQERID {
		return CreateQERIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(QERID), IEName: "QERID", ParentIE: "CreateQER"}
	}
	if !haveGate {
		return CreateQERIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(GateStatus), IEName: "GateStatus", ParentIE: "CreateQER"}
	}
	return c, nil
}

// UpdateQERIE mirrors CreateQERIE for a Session Modification.
type UpdateQERIE struct {
	QERID            QERIDIE
	GateStatus       *GateStatusIE
	MBR              *MBRIE
	GBR              *GBRIE
	QERCorrelationID *QERCorrelationIDIE
}

func (u UpdateQERIE) ToIE() IE {
	children := []IE{u.QERID.ToIE()}
	if u.GateStatus != nil {
		children = append(children, u.GateStatus.ToIE())
	}
	if u.MBR != nil {
		children = append(children, u.MBR.ToIE())
	}
	if u.GBR != nil {
		children = append(children, u.GBR.ToIE())
	}
	if u.QERCorrelationID != nil {
		children = append(children, u.QERCorrelationID.ToIE())
	}
	return NewGrouped(UpdateQER, children)
}

func UnmarshalUpdateQER(group IE) (UpdateQERIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return UpdateQERIE{}, err
	}
	var u UpdateQERIE
	var haveQERID bool
	for _, child := range children {
		switch child.Type {
		case QERID:
			v, err := UnmarshalQERID(child.Payload)
			if err != nil {
				return UpdateQERIE{}, err
			}
			u.QERID = v
			haveQERID = true
		case GateStatus:
			v, err := UnmarshalGateStatus(child.Payload)
			if err != nil {
				return UpdateQERIE{}, err
			}
			u.GateStatus = &v
		case MBR:
			v, err := UnmarshalMBR(child.Payload)
			if err != nil {
				return UpdateQERIE{}, err
			}
			u.MBR = &v
		case GBR:
			v, err := UnmarshalGBR(child.Payload)
			if err != nil {
				return UpdateQERIE{}, err
			}
			u.GBR = &v
		case QERCorrelationID:
			v, err := UnmarshalQERCorrelationID(child.Payload)
			if err != nil {
				return UpdateQERIE{}, err
			}
			u.QERCorrelationID = &v
		}
	}
	if !haveQERID {
		return UpdateQERIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(QERID), IEName: "QERID", ParentIE: "UpdateQER"}
	}
	return u, nil
}

// RemoveQERIE deletes a QER by ID.
type RemoveQERIE struct{ QERID QERIDIE }

func (r RemoveQERIE) ToIE() IE { return NewGrouped(RemoveQER, []IE{r.QERID.ToIE()}) }

func UnmarshalRemoveQER(group IE) (RemoveQERIE, error) {
	child, ok, err := findMandatoryChild(group, QERID, "RemoveQER")
	if err != nil {
		return RemoveQERIE{}, err
	}
	if !ok {
		return RemoveQERIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(QERID), IEName: "QERID", ParentIE: "RemoveQER"}
	}
	v, err := UnmarshalQERID(child.Payload)
	return RemoveQERIE{QERID: v}, err
}

// CreateBARIE adds a new Buffering Action Rule to a session, per TS 29.244
// clause 7.5.2.7.
type CreateBARIE struct {
	BARID                           BARIDIE
	DownlinkDataNotificationDelay   *DownlinkDataNotificationDelayIE
	DLBufferingDuration             *DLBufferingDurationIE
	DLBufferingSuggestedPacketCount *DLBufferingSuggestedPacketCountIE
}

func (c CreateBARIE) ToIE() IE {
	children := []IE{c.BARID.ToIE()}
	if c.DownlinkDataNotificationDelay != nil {
		children = append(children, c.DownlinkDataNotificationDelay.ToIE())
	}
	if c.DLBufferingDuration != nil {
		children = append(children, c.DLBufferingDuration.ToIE())
	}
	if c.DLBufferingSuggestedPacketCount != nil {
		children = append(children, c.DLBufferingSuggestedPacketCount.ToIE())
	}
	return NewGrouped(CreateBAR, children)
}

func UnmarshalCreateBAR(group IE) (CreateBARIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return CreateBARIE{}, err
	}
	var c CreateBARIE
	var haveBARID bool
	for _, child := range children {
		switch child.Type {
		case BARID:
			v, err := UnmarshalBARID(child.Payload)
			if err != nil {
				return CreateBARIE{}, err
			}
			c.BARID = v
			haveBARID = true
		case DownlinkDataNotificationDelay:
			v, err := UnmarshalDownlinkDataNotificationDelay(child.Payload)
			if err != nil {
				return CreateBARIE{}, err
			}
			c.DownlinkDataNotificationDelay = &v
		case DLBufferingDuration:
			v, err := UnmarshalDLBufferingDuration(child.Payload)
			if err != nil {
				return CreateBARIE{}, err
			}
			c.DLBufferingDuration = &v
		case DLBufferingSuggestedPacketCount:
			v, err := UnmarshalDLBufferingSuggestedPacketCount(child.Payload)
			if err != nil {
				return CreateBARIE{}, err
			}
			c.DLBufferingSuggestedPacketCount = &v
		}
	}
	if !haveBARID {
		return CreateBARIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(BARID), IEName: "BARID", ParentIE: "CreateBAR"}
	}
	return c, nil
}

// UpdateBARIE mirrors CreateBARIE for a Session Modification.
type UpdateBARIE struct {
	BARID                           BARIDIE
	DownlinkDataNotificationDelay   *DownlinkDataNotificationDelayIE
	DLBufferingDuration             *DLBufferingDurationIE
	DLBufferingSuggestedPacketCount *DLBufferingSuggestedPacketCountIE
}

func (u UpdateBARIE) ToIE() IE {
	children := []IE{u.BARID.ToIE()}
	if u.DownlinkDataNotificationDelay != nil {
		children = append(children, u.DownlinkDataNotificationDelay.ToIE())
	}
	if u.DLBufferingDuration != nil {
		children = append(children, u.DLBufferingDuration.ToIE())
	}
	if u.DLBufferingSuggestedPacketCount != nil {
		children = append(children, u.DLBufferingSuggestedPacketCount.ToIE())
	}
	return NewGrouped(UpdateBAR, children)
}

func UnmarshalUpdateBAR(group IE) (UpdateBARIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return UpdateBARIE{}, err
	}
	var u UpdateBARIE
	var haveBARID bool
	for _, child := range children {
		switch child.Type {
		case BARID:
			v, err := UnmarshalBARID(child.Payload)
			if err != nil {
				return UpdateBARIE{}, err
			}
			u.BARID = v
			haveBARID = true
		case DownlinkDataNotificationDelay:
			v, err := UnmarshalDownlinkDataNotificationDelay(child.Payload)
			if err != nil {
				return UpdateBARIE{}, err
			}
			u.DownlinkDataNotificationDelay = &v
		case DLBufferingDuration:
			v, err := UnmarshalDLBufferingDuration(child.Payload)
			if err != nil {
				return UpdateBARIE{}, err
			}
			u.DLBufferingDuration = &v
		case DLBufferingSuggestedPacketCount:
			v, err := UnmarshalDLBufferingSuggestedPacketCount(child.Payload)
			if err != nil {
				return UpdateBARIE{}, err
			}
			u.DLBufferingSuggestedPacketCount = &v
		}
	}
	if !haveBARID {
		return UpdateBARIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(BARID), IEName: "BARID", ParentIE: "UpdateBAR"}
	}
	return u, nil
}

// RemoveBARIE deletes a BAR by ID.
type RemoveBARIE struct{ BARID BARIDIE }

func (r RemoveBARIE) ToIE() IE { return NewGrouped(RemoveBAR, []IE{r.BARID.ToIE()}) }

func UnmarshalRemoveBAR(group IE) (RemoveBARIE, error) {
	child, ok, err := findMandatoryChild(group, BARID, "RemoveBAR")
	if err != nil {
		return RemoveBARIE{}, err
	}
	if !ok {
		return RemoveBARIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(BARID), IEName: "BARID", ParentIE: "RemoveBAR"}
	}
	v, err := UnmarshalBARID(child.Payload)
	return RemoveBARIE{BARID: v}, err
}
