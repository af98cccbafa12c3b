package models

// AccessRequest is the payload submitted by an operator asking to decrypt an
// evidence item. Both fields are required; the validation wrapper rejects an
// empty requester or reason before the state machine is touched.
type AccessRequest struct {
	EvidenceID string `json:"evidence_id"`
	Requester  string `json:"requester"`
	Reason     string `json:"reason"`
}

// CustodyDecision is the payload for the admin approve/deny/revoke/verify
// transitions.
type CustodyDecision struct {
	EvidenceID string `json:"evidence_id"`
	Admin      string `json:"admin"`
}

// CaptureRequest triggers a manual capture. Frame is optional: when absent
// the current frame of the active feed is used.
type CaptureRequest struct {
	Frame *Frame `json:"frame,omitempty"`
}

// FeedStopRequest carries the secondary PIN confirmation required to tear
// down the live feed.
type FeedStopRequest struct {
	PIN string `json:"pin"`
}
