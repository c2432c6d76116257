// Package message implements the PFCP message codec layer (L4/L5): the
// header framing common to every message, and one concrete Go type per
// PFCP message carrying named, typed slots for its mandatory and
// well-known optional IEs plus a catch-all for anything else.
package message

// Type identifies a PFCP message per 3GPP TS 29.244 Table 7.2.1-1.
type Type uint8

const (
	Unknown Type = 0

	HeartbeatRequest                Type = 1
	HeartbeatResponse                Type = 2
	PFDManagementRequest             Type = 3
	PFDManagementResponse            Type = 4
	AssociationSetupRequest          Type = 5
	AssociationSetupResponse         Type = 6
	AssociationUpdateRequest         Type = 7
	AssociationUpdateResponse        Type = 8
	AssociationReleaseRequest        Type = 9
	AssociationReleaseResponse       Type = 10
	VersionNotSupportedResponse      Type = 11
	NodeReportRequest                Type = 12
	NodeReportResponse               Type = 13

	SessionSetDeletionRequest     Type = 14
	SessionSetDeletionResponse    Type = 15
	SessionSetModificationRequest  Type = 16
	SessionSetModificationResponse Type = 17

	SessionEstablishmentRequest  Type = 50
	SessionEstablishmentResponse Type = 51
	SessionModificationRequest   Type = 52
	SessionModificationResponse  Type = 53
	SessionDeletionRequest       Type = 54
	SessionDeletionResponse      Type = 55
	SessionReportRequest         Type = 56
	SessionReportResponse        Type = 57
)

var typeNames = map[Type]string{
	HeartbeatRequest:                "HeartbeatRequest",
	HeartbeatResponse:               "HeartbeatResponse",
	PFDManagementRequest:            "PFDManagementRequest",
	PFDManagementResponse:           "PFDManagementResponse",
	AssociationSetupRequest:         "AssociationSetupRequest",
	AssociationSetupResponse:        "AssociationSetupResponse",
	AssociationUpdateRequest:        "AssociationUpdateRequest",
	AssociationUpdateResponse:       "AssociationUpdateResponse",
	AssociationReleaseRequest:       "AssociationReleaseRequest",
	AssociationReleaseResponse:      "AssociationReleaseResponse",
	VersionNotSupportedResponse:     "VersionNotSupportedResponse",
	NodeReportRequest:               "NodeReportRequest",
	NodeReportResponse:              "NodeReportResponse",
	SessionSetDeletionRequest:       "SessionSetDeletionRequest",
	SessionSetDeletionResponse:      "SessionSetDeletionResponse",
	SessionSetModificationRequest:   "SessionSetModificationRequest",
	SessionSetModificationResponse:  "SessionSetModificationResponse",
	SessionEstablishmentRequest:     "SessionEstablishmentRequest",
	SessionEstablishmentResponse:    "SessionEstablishmentResponse",
	SessionModificationRequest:      "SessionModificationRequest",
	SessionModificationResponse:     "SessionModificationResponse",
	SessionDeletionRequest:          "SessionDeletionRequest",
	SessionDeletionResponse:         "SessionDeletionResponse",
	SessionReportRequest:            "SessionReportRequest",
	SessionReportResponse:           "SessionReportResponse",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// sessionMessage reports whether t carries a SEID in its header, i.e.
// every message type except the node-level ones and the two session-set
// bulk operations (which address sessions by Node ID, not SEID).
func (t Type) sessionMessage() bool {
	switch t {
	case SessionEstablishmentRequest, SessionEstablishmentResponse,
		SessionModificationRequest, SessionModificationResponse,
		SessionDeletionRequest, SessionDeletionResponse,
		SessionReportRequest, SessionReportResponse:
		return true
	default:
		return false
	}
}
