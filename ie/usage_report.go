package ie

import "github.com/your-org/pfcp-codec/pfcperr"

// CreatedPDRIE echoes the PDR ID and the F-TEID the UP function allocated
// for a CreatePDR whose PDI asked for CHOOSE, per TS 29.244 clause 7.5.3.2.
type CreatedPDRIE struct {
	PDRID PDRIDIE
	FTEID *FTEIDIE
}

func (c CreatedPDRIE) ToIE() IE {
	children := []IE{c.PDRID.ToIE()}
	if c.FTEID != nil {
		children = append(children, c.FTEID.ToIE())
	}
	return NewGrouped(CreatedPDR, children)
}

func UnmarshalCreatedPDR(group IE) (CreatedPDRIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return CreatedPDRIE{}, err
	}
	var c CreatedPDRIE
	var havePDRID bool
	for _, child := range children {
		switch child.Type {
		case PDRID:
			v, err := UnmarshalPDRID(child.Payload)
			if err != nil {
				return CreatedPDRIE{}, err
			}
			c.PDRID = v
			havePDRID = true
		case FTEID:
			v, err := UnmarshalFTEID(child.Payload)
			if err != nil {
				return CreatedPDRIE{}, err
			}
			c.FTEID = &v
		}
	}
	if !havePDRID {
		return CreatedPDRIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(PDRID), IEName: "PDRID", ParentIE: "CreatedPDR"}
	}
	return c, nil
}

// UsageReportIE carries one URR's measurements, shared by Session
// Modification Response, Session Deletion Response, and Session Report
// Request — 3GPP reuses the same IE type (74) across all three contexts,
// per TS 29.244 clauses 7.5.8.3/7.5.9.2/7.5.8.2.
type UsageReportIE struct {
	URRID              URRIDIE
	URSEQN             SequenceNumberIE
	UsageReportTrigger UsageReportTriggerIE
	StartTime          *StartTimeIE
	EndTime            *EndTimeIE
	VolumeMeasurement  *VolumeMeasurementIE
	DurationMeasurement *DurationMeasurementIE
	TimeOfFirstPacket  *TimeOfFirstPacketIE
	TimeOfLastPacket   *TimeOfLastPacketIE
}

func (u UsageReportIE) ToIE() IE {
	children := []IE{u.URRID.ToIE(), u.URSEQN.ToIE(), u.UsageReportTrigger.ToIE()}
	if u.StartTime != nil {
		children = append(children, u.StartTime.ToIE())
	}
	if u.EndTime != nil {
		children = append(children, u.EndTime.ToIE())
	}
	if u.VolumeMeasurement != nil {
		children = append(children, u.VolumeMeasurement.ToIE())
	}
	if u.DurationMeasurement != nil {
		children = append(children, u.DurationMeasurement.ToIE())
	}
	if u.TimeOfFirstPacket != nil {
		children = append(children, u.TimeOfFirstPacket.ToIE())
	}
	if u.TimeOfLastPacket != nil {
		children = append(children, u.TimeOfLastPacket.ToIE())
	}
	return NewGrouped(UsageReport, children)
}

func UnmarshalUsageReport(group IE) (UsageReportIE, error) {
	children, err := group.ChildIEs()
	if err != nil {
		return UsageReportIE{}, err
	}
	var u UsageReportIE
	var haveURRID, haveSeq, haveTrigger bool
	for _, child := range children {
		switch child.Type {
		case URRID:
			v, err := UnmarshalURRID(child.Payload)
			if err != nil {
				return UsageReportIE{}, err
			}
			u.URRID = v
			haveURRID = true
		case SequenceNumber:
			v, err := UnmarshalSequenceNumberIE(child.Payload)
			if err != nil {
				return UsageReportIE{}, err
			}
			u.URSEQN = v
			haveSeq = true
		case UsageReportTrigger:
			v, err := UnmarshalUsageReportTrigger(child.Payload)
			if err != nil {
				return UsageReportIE{}, err
			}
			u.UsageReportTrigger = v
			haveTrigger = true
		case StartTime:
			v, err := UnmarshalStartTime(child.Payload)
			if err != nil {
				return UsageReportIE{}, err
			}
			u.StartTime = &v
		case EndTime:
			v, err := UnmarshalEndTime(child.Payload)
			if err != nil {
				return UsageReportIE{}, err
			}
			u.EndTime = &v
		case VolumeMeasurement:
			v, err := UnmarshalVolumeMeasurement(child.Payload)
			if err != nil {
				return UsageReportIE{}, err
			}
			u.VolumeMeasurement = &v
		case DurationMeasurement:
			v, err := UnmarshalDurationMeasurement(child.Payload)
			if err != nil {
				return UsageReportIE{}, err
			}
			u.DurationMeasurement = &v
		case TimeOfFirstPacket:
			v, err := UnmarshalTimeOfFirstPacket(child.Payload)
			if err != nil {
				return UsageReportIE{}, err
			}
			u.TimeOfFirstPacket = &v
		case TimeOfLastPacket:
			v, err := UnmarshalTimeOfLastPacket(child.Payload)
			if err != nil {
				return UsageReportIE{}, err
			}
			u.TimeOfLastPacket = &v
		}
	}
	if !haveURRID {
		return UsageReportIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(URRID), IEName: "URRID", ParentIE: "UsageReport"}
	}
	if !haveSeq {
		return UsageReportIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(SequenceNumber), IEName: "URSEQN", ParentIE: "UsageReport"}
	}
	if !haveTrigger {
		return UsageReportIE{}, &pfcperr.MissingMandatoryIE{IEType: uint16(UsageReportTrigger), IEName: "UsageReportTrigger", ParentIE: "UsageReport"}
	}
	return u, nil
}
