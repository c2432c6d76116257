package ie

import "github.com/your-org/pfcp-codec/pfcperr"

// PFDContentsIE carries one Packet Flow Description, per TS 29.244 clause
// 8.2.35. 3GPP defines a flags-gated set of sub-fields (flow description,
// URL, domain name, custom PFD, ...); this module keeps the payload opaque
// since no message this codec builds inspects PFD content semantics, only
// round-trips it between CP and UP functions — the same opaque treatment
// ForwardingPolicyIE's identifier gets.
type PFDContentsIE struct{ Raw []byte }

func (p PFDContentsIE) ToIE() IE { return New(PFDContents, p.Raw) }
func UnmarshalPFDContents(payload []byte) (PFDContentsIE, error) {
	return PFDContentsIE{Raw: append([]byte(nil), payload...)}, nil
}

// PFDContextIE groups one or more PFDContentsIE entries for a single
// application, per TS 29.244 clause 7.5.7.2.
type PFDContextIE struct{ Contents []PFDContentsIE }

func (p PFDContextIE) ToIE() IE {
	children := make([]IE, 0, len(p.Contents))
	for _, c := range p.Contents {
		children = append(children, c.ToIE())
	}
	return NewGrouped(PFDContext, children)
}

func UnmarshalPFDContext(group IE) (PFDContextIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return PFDContextIE{}, err
	}
	var p PFDContextIE
	for _, child := range children {
		if child.Type == PFDContents {
			v, err := UnmarshalPFDContents(child.Payload)
			if err != nil {
				return PFDContextIE{}, err
			}
			p.Contents = append(p.Contents, v)
		}
	}
	if len(p.Contents) == 0 {
		return PFDContextIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(PFDContents), IEName: "PFDContents", ParentIE: "PFDContext"}
	}
	return p, nil
}

// ApplicationIDsPFDsIE binds an application identifier to the PFDs that
// detect it, per TS 29.244 clause 7.5.7.1.
type ApplicationIDsPFDsIE struct {
	ApplicationID ApplicationIDIE
	PFDContext    PFDContextIE
}

func (a ApplicationIDsPFDsIE) ToIE() IE {
	return NewGrouped(ApplicationIDsPFDs, []IE{a.ApplicationID.ToIE(), a.PFDContext.ToIE()})
}

func UnmarshalApplicationIDsPFDs(group IE) (ApplicationIDsPFDsIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return ApplicationIDsPFDsIE{}, err
	}
	var a ApplicationIDsPFDsIE
	var haveAppID, havePFDContext bool
	for _, child := range children {
		switch child.Type {
		case ApplicationID:
			v, err := UnmarshalApplicationID(child.Payload)
			if err != nil {
				return ApplicationIDsPFDsIE{}, err
			}
			a.ApplicationID = v
			haveAppID = true
		case PFDContext:
			v, err := UnmarshalPFDContext(child)
			if err != nil {
				return ApplicationIDsPFDsIE{}, err
			}
			a.PFDContext = v
			havePFDContext = true
		}
	}
	if !haveAppID {
		return ApplicationIDsPFDsIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(ApplicationID), IEName: "ApplicationID", ParentIE: "ApplicationIDsPFDs"}
	}
	if !havePFDContext {
		return ApplicationIDsPFDsIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(PFDContext), IEName: "PFDContext", ParentIE: "ApplicationIDsPFDs"}
	}
	return a, nil
}
