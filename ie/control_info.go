package ie

import "github.com/your-org/pfcp-codec/pfcperr"

// LoadControlInformationIE is a grouped IE a CP or UP function uses to
// advertise its own load, so the peer can steer new sessions away from a
// busy node, per TS 29.244 clause 7.5.3.4.
type LoadControlInformationIE struct {
	SequenceNumber SequenceNumberIE
	LoadMetric     MetricIE
}

func (l LoadControlInformationIE) ToIE() IE {
	return NewGrouped(LoadControlInformation, []IE{l.SequenceNumber.ToIE(), l.LoadMetric.ToIE()})
}

func UnmarshalLoadControlInformation(group IE) (LoadControlInformationIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return LoadControlInformationIE{}, err
	}
	var l LoadControlInformationIE
	var haveSeq, haveMetric bool
	for _, c := range children {
		switch c.Type {
		case SequenceNumber:
			v, err := UnmarshalSequenceNumberIE(c.Payload)
			if err != nil {
				return LoadControlInformationIE{}, err
			}
			l.SequenceNumber = v
			haveSeq = true
		case Metric:
			v, err := UnmarshalMetric(c.Payload)
			if err != nil {
				return LoadControlInformationIE{}, err
			}
			l.LoadMetric = v
			haveMetric = true
		}
	}
	if !haveSeq {
		return LoadControlInformationIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(SequenceNumber), IEName: "SequenceNumber", ParentIE: "LoadControlInformation"}
	}
	if !haveMetric {
		return LoadControlInformationIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(Metric), IEName: "Metric", ParentIE: "LoadControlInformation"}
	}
	return l, nil
}

// OverloadControlInformationIE is a grouped IE a CP or UP function uses to
// advertise overload, requesting the peer throttle or reduce traffic for a
// period, per TS 29.244 clause 7.5.3.5.
type OverloadControlInformationIE struct {
	SequenceNumber  SequenceNumberIE
	OverloadMetric  MetricIE
	Timer           TimerIE
}

func (o OverloadControlInformationIE) ToIE() IE {
	return NewGrouped(OverloadControlInformation, []IE{
		o.SequenceNumber.ToIE(), o.OverloadMetric.ToIE(), o.Timer.ToIE(),
	})
}

func UnmarshalOverloadControlInformation(group IE) (OverloadControlInformationIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return OverloadControlInformationIE{}, err
	}
	var o OverloadControlInformationIE
	var haveSeq, haveMetric, haveTimer bool
	for _, c := range children {
		switch c.Type {
		case SequenceNumber:
			v, err := UnmarshalSequenceNumberIE(c.Payload)
			if err != nil {
				return OverloadControlInformationIE{}, err
			}
			o.SequenceNumber = v
			haveSeq = true
		case Metric:
			v, err := UnmarshalMetric(c.Payload)
			if err != nil {
				return OverloadControlInformationIE{}, err
			}
			o.OverloadMetric = v
			haveMetric = true
		case Timer:
			v, err := UnmarshalTimer(c.Payload)
			if err != nil {
				return OverloadControlInformationIE{}, err
			}
			o.Timer = v
			haveTimer = true
		}
	}
	if !haveSeq {
		return OverloadControlInformationIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(SequenceNumber), IEName: "SequenceNumber", ParentIE: "OverloadControlInformation"}
	}
	if !haveMetric {
		return OverloadControlInformationIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(Metric), IEName: "Metric", ParentIE: "OverloadControlInformation"}
	}
	if !haveTimer {
		return OverloadControlInformationIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(Timer), IEName: "Timer", ParentIE: "OverloadControlInformation"}
	}
	return o, nil
}
