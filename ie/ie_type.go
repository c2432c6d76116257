package ie

// Type identifies a PFCP Information Element per 3GPP TS 29.244 Table 8.1.2-1.
//
// The high bit (0x8000) is reserved by 3GPP to flag a vendor-specific IE
// carrying a 2-byte Enterprise ID ahead of its payload; Type itself never
// sets that bit for the standard IEs named below. Unknown is the zero code;
// a type code this package has no named constant for is kept as its raw
// Type value, so decode never fails on a type it does not recognize — see
// §4.2 of the codec's forward-compatibility contract.
type Type uint16

const (
	Unknown Type = 0

	CreatePDR                             Type = 1
	PDI                                   Type = 2
	CreateFAR                             Type = 3
	ForwardingParameters                  Type = 4
	DuplicatingParameters                 Type = 5
	CreateURR                             Type = 6
	CreateQER                             Type = 7
	CreatedPDR                            Type = 8
	UpdatePDR                             Type = 9
	UpdateFAR                             Type = 10
	UpdateForwardingParameters            Type = 11
	UpdateBARWithinSessionReportResponse  Type = 12
	UpdateURR                             Type = 13
	UpdateQER                             Type = 14
	RemovePDR                             Type = 15
	RemoveFAR                             Type = 16
	RemoveURR                             Type = 17
	RemoveQER                             Type = 18
	Cause                                 Type = 19
	SourceInterface                       Type = 20
	FTEID                                 Type = 21
	NetworkInstance                       Type = 22
	SDFFilter                             Type = 23
	ApplicationID                         Type = 24
	GateStatus                            Type = 25
	MBR                                   Type = 26
	GBR                                   Type = 27
	QERCorrelationID                      Type = 28
	Precedence                            Type = 29
	TransportLevelMarking                 Type = 30
	VolumeThreshold                       Type = 31
	TimeThreshold                         Type = 32
	MonitoringTime                        Type = 33
	SubsequentVolumeThreshold             Type = 34
	SubsequentTimeThreshold               Type = 35
	InactivityDetectionTime               Type = 36
	ReportingTriggers                     Type = 37
	RedirectInformation                   Type = 38
	ReportType                            Type = 39
	OffendingIE                           Type = 40
	ForwardingPolicy                      Type = 41
	DestinationInterface                  Type = 42
	UPFunctionFeatures                    Type = 43
	ApplyAction                           Type = 44
	DownlinkDataServiceInformation        Type = 45
	DownlinkDataNotificationDelay         Type = 46
	DLBufferingDuration                   Type = 47
	DLBufferingSuggestedPacketCount       Type = 48
	PFCPSMReqFlags                        Type = 49
	PFCPSRRspFlags                        Type = 50
	LoadControlInformation                Type = 51
	SequenceNumber                        Type = 52
	Metric                                Type = 53
	OverloadControlInformation            Type = 54
	Timer                                 Type = 55
	PDRID                                 Type = 56
	FSEID                                 Type = 57
	ApplicationIDsPFDs                    Type = 58
	PFDContext                            Type = 59
	NodeID                                Type = 60
	PFDContents                           Type = 61
	MeasurementMethod                     Type = 62
	FlowInformation                       Type = 63
	VolumeMeasurement                     Type = 66
	DurationMeasurement                   Type = 67
	ApplicationDetectionInformation       Type = 68
	TimeOfFirstPacket                     Type = 69
	TimeOfLastPacket                      Type = 70
	QuotaHoldingTime                      Type = 71
	VolumeQuota                           Type = 73
	UsageReport                           Type = 74
	UsageReportTrigger                    Type = 75
	TimeQuota                             Type = 76
	StartTime                             Type = 77
	EndTime                               Type = 78
	MACAddress                            Type = 80
	URRID                                  Type = 81
	CPFunctionFeatures                    Type = 89
	UsageInformation                      Type = 90
	UEIPAddress                           Type = 93
	OuterHeaderRemoval                    Type = 95
	RecoveryTimeStamp                     Type = 96
	OuterHeaderCreation                   Type = 97
	PDNType                               Type = 99
	UserID                                Type = 100
	SNSSAI                                Type = 101
	TraceInformation                      Type = 102
	ApnDnn                                Type = 103
	UserPlaneInactivityTimer              Type = 104
	PathFailureReport                     Type = 105
	ActivatePredefinedRules               Type = 106
	DeactivatePredefinedRules             Type = 107
	FARID                                 Type = 108
	QERID                                 Type = 109
	CTag                                  Type = 110
	STag                                  Type = 111
	Ethertype                             Type = 112
	EthernetFilterID                      Type = 113
	EthernetFilterProperties              Type = 114
	CreateBAR                             Type = 115
	UpdateBAR                             Type = 116
	RemoveBAR                             Type = 117
	BARID                                 Type = 118
	EthernetPacketFilter                  Type = 119
	MACAddressesDetected                  Type = 120
	MACAddressesRemoved                   Type = 121
	EthernetContextInformation            Type = 122
	QueryURRReference                     Type = 125
	AdditionalUsageReportsInformation     Type = 126
	CreateTrafficEndpoint                 Type = 131
	UpdateTrafficEndpoint                 Type = 132
	RemoveTrafficEndpoint                 Type = 133
	ActivationTime                        Type = 163
	DeactivationTime                      Type = 164
	PagingPolicyIndicator                 Type = 186
	SourceIPAddress                       Type = 192
	UEIPAddressUsageInformation           Type = 267
)

var typeNames = map[Type]string{
	CreatePDR: "CreatePDR", PDI: "PDI", CreateFAR: "CreateFAR",
	ForwardingParameters: "ForwardingParameters", DuplicatingParameters: "DuplicatingParameters",
	CreateURR: "CreateURR", CreateQER: "CreateQER", CreatedPDR: "CreatedPDR",
	UpdatePDR: "UpdatePDR", UpdateFAR: "UpdateFAR", UpdateForwardingParameters: "UpdateForwardingParameters",
	UpdateBARWithinSessionReportResponse: "UpdateBARWithinSessionReportResponse",
	UpdateURR:                            "UpdateURR", UpdateQER: "UpdateQER",
	RemovePDR: "RemovePDR", RemoveFAR: "RemoveFAR", RemoveURR: "RemoveURR", RemoveQER: "RemoveQER",
	Cause: "Cause", SourceInterface: "SourceInterface", FTEID: "FTEID",
	NetworkInstance: "NetworkInstance", SDFFilter: "SDFFilter", ApplicationID: "ApplicationID",
	GateStatus: "GateStatus", MBR: "MBR", GBR: "GBR", QERCorrelationID: "QERCorrelationID",
	Precedence: "Precedence", TransportLevelMarking: "TransportLevelMarking",
	VolumeThreshold: "VolumeThreshold", TimeThreshold: "TimeThreshold", MonitoringTime: "MonitoringTime",
	SubsequentVolumeThreshold: "SubsequentVolumeThreshold", SubsequentTimeThreshold: "SubsequentTimeThreshold",
	InactivityDetectionTime: "InactivityDetectionTime", ReportingTriggers: "ReportingTriggers",
	RedirectInformation: "RedirectInformation", ReportType: "ReportType", OffendingIE: "OffendingIE",
	ForwardingPolicy: "ForwardingPolicy", DestinationInterface: "DestinationInterface",
	UPFunctionFeatures: "UPFunctionFeatures", ApplyAction: "ApplyAction",
	DownlinkDataServiceInformation: "DownlinkDataServiceInformation",
	DownlinkDataNotificationDelay:  "DownlinkDataNotificationDelay",
	DLBufferingDuration:            "DLBufferingDuration", DLBufferingSuggestedPacketCount: "DLBufferingSuggestedPacketCount",
	PFCPSMReqFlags: "PFCPSMReqFlags", PFCPSRRspFlags: "PFCPSRRspFlags",
	LoadControlInformation: "LoadControlInformation", SequenceNumber: "SequenceNumber", Metric: "Metric",
	OverloadControlInformation: "OverloadControlInformation", Timer: "Timer", PDRID: "PDRID",
	FSEID: "FSEID", ApplicationIDsPFDs: "ApplicationIDsPFDs", PFDContext: "PFDContext",
	NodeID: "NodeID", PFDContents: "PFDContents", MeasurementMethod: "MeasurementMethod",
	FlowInformation: "FlowInformation", VolumeMeasurement: "VolumeMeasurement", DurationMeasurement: "DurationMeasurement",
	ApplicationDetectionInformation: "ApplicationDetectionInformation",
	TimeOfFirstPacket:               "TimeOfFirstPacket", TimeOfLastPacket: "TimeOfLastPacket",
	QuotaHoldingTime: "QuotaHoldingTime", VolumeQuota: "VolumeQuota", UsageReport: "UsageReport",
	UsageReportTrigger: "UsageReportTrigger", TimeQuota: "TimeQuota", StartTime: "StartTime", EndTime: "EndTime",
	MACAddress: "MACAddress", URRID: "URRID", CPFunctionFeatures: "CPFunctionFeatures",
	UsageInformation: "UsageInformation", UEIPAddress: "UEIPAddress", OuterHeaderRemoval: "OuterHeaderRemoval",
	RecoveryTimeStamp: "RecoveryTimeStamp", OuterHeaderCreation: "OuterHeaderCreation",
	PDNType: "PDNType", UserID: "UserID", SNSSAI: "SNSSAI", TraceInformation: "TraceInformation",
	ApnDnn: "ApnDnn", UserPlaneInactivityTimer: "UserPlaneInactivityTimer", PathFailureReport: "PathFailureReport",
	ActivatePredefinedRules: "ActivatePredefinedRules", DeactivatePredefinedRules: "DeactivatePredefinedRules",
	FARID: "FARID", QERID: "QERID", CTag: "CTag", STag: "STag", Ethertype: "Ethertype",
	EthernetFilterID: "EthernetFilterID", EthernetFilterProperties: "EthernetFilterProperties",
	CreateBAR: "CreateBAR", UpdateBAR: "UpdateBAR", RemoveBAR: "RemoveBAR", BARID: "BARID",
	EthernetPacketFilter: "EthernetPacketFilter", MACAddressesDetected: "MACAddressesDetected",
	MACAddressesRemoved: "MACAddressesRemoved", EthernetContextInformation: "EthernetContextInformation",
	QueryURRReference: "QueryURRReference", AdditionalUsageReportsInformation: "AdditionalUsageReportsInformation",
	CreateTrafficEndpoint: "CreateTrafficEndpoint", UpdateTrafficEndpoint: "UpdateTrafficEndpoint",
	RemoveTrafficEndpoint: "RemoveTrafficEndpoint", ActivationTime: "ActivationTime", DeactivationTime: "DeactivationTime",
	PagingPolicyIndicator: "PagingPolicyIndicator", SourceIPAddress: "SourceIPAddress",
	UEIPAddressUsageInformation: "UEIPAddressUsageInformation",
}

// String returns the IE's name, or "Unknown(<code>)" for unrecognized or
// vendor-specific type codes.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	if t == Unknown {
		return "Unknown"
	}
	return "Unknown(" + uitoa(uint16(t)) + ")"
}

// IsVendorSpecific reports whether the high bit (0x8000) is set, meaning an
// Enterprise ID follows the length field on the wire.
func (t Type) IsVendorSpecific() bool {
	return t&0x8000 != 0
}

// groupedTypes lists every IE type this codec constructs with NewGrouped.
// Callers that need to tell a grouped IE apart from a scalar one without
// attempting (and possibly misinterpreting) a child-IE parse — the
// comparison engine's deep-compare-grouped option, in particular — consult
// IsGrouped instead of guessing from ChildIEs' success.
var groupedTypes = map[Type]bool{
	CreatePDR: true, PDI: true, CreateFAR: true, ForwardingParameters: true,
	DuplicatingParameters: true, CreateURR: true, CreateQER: true, CreateBAR: true,
	UpdatePDR: true, UpdateFAR: true, UpdateForwardingParameters: true,
	UpdateURR: true, UpdateQER: true, UpdateBAR: true,
	RemovePDR: true, RemoveFAR: true, RemoveURR: true, RemoveQER: true, RemoveBAR: true,
	CreatedPDR: true, UsageReport: true, ApplicationIDsPFDs: true, PFDContext: true,
	LoadControlInformation: true, OverloadControlInformation: true,
	EthernetPacketFilter: true, EthernetContextInformation: true,
}

// IsGrouped reports whether t is carried on the wire as a grouped IE (a
// sequence of child TLVs) rather than a scalar payload.
func IsGrouped(t Type) bool {
	return groupedTypes[t]
}

func uitoa(v uint16) string {
	if v == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
