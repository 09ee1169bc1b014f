package models

// FlattenedFriend is a row of vw_flattened_friends. Root friends have
// parent_id equal to their own id; members point at the friend they belong to.
type FlattenedFriend struct {
	ParticipantID string
	DisplayName   string
	IsSelf        bool
	ParentID      string
	ParentName    string
	MemberCount   int
}
