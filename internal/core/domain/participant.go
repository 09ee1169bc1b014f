package domain

// Participant is one individually payable party of an event. A root
// participant stands for itself; a sub-member of a composite friend rolls up
// to its parent for debt attribution.
type Participant struct {
	ParticipantID string `json:"participantID"`
	DisplayName   string `json:"displayName"`
	IsSelf        bool   `json:"isSelf"`
	ParentID      string `json:"parentID"`
	ParentName    string `json:"parentName"`
	MemberCount   int    `json:"memberCount"`
}

// IsRoot reports whether the participant is its own root.
func (p Participant) IsRoot() bool {
	return p.ParentID == "" || p.ParentID == p.ParticipantID
}

// RootID returns the identity of the participant that bears responsibility.
func (p Participant) RootID() string {
	if p.IsRoot() {
		return p.ParticipantID
	}
	return p.ParentID
}

// RootName returns the display name of the root participant.
func (p Participant) RootName() string {
	if p.IsRoot() {
		if p.ParentName != "" {
			return p.ParentName
		}
		return p.DisplayName
	}
	return p.ParentName
}

// RootKey is the ledger key of the root participant, "<name>_<id>".
func (p Participant) RootKey() string {
	return p.RootName() + "_" + p.RootID()
}
