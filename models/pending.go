package models

import "time"

type PendingStatus string

const (
	PendingAwaitingReview PendingStatus = "awaiting_review"
	PendingApproved       PendingStatus = "approved"
	PendingRejected       PendingStatus = "rejected"
)

// Command types a pending request may carry. Anything else is rejected
// at resolution time.
const (
	CommandChangeArticleStatus = "ChangeArticleStatus"
	CommandUpdateStaffJob      = "UpdateStaffJob"
	CommandAssignArticleVolume = "AssignArticleVolume"
)

// Pending is a deferred privileged command filed by a junior editor and
// resolved by senior staff. Parameters is the raw JSON payload for the
// command; it is only deserialized on approval.
type Pending struct {
	ID             string        `json:"id" bson:"_id"`
	TargetEntityID string        `json:"target_entity_id" bson:"target_entity_id"`
	TargetType     string        `json:"target_type" bson:"target_type"`
	RequesterID    string        `json:"requester_id" bson:"requester_id"`
	CommandType    string        `json:"command_type" bson:"command_type"`
	Parameters     string        `json:"parameters" bson:"parameters"`
	Status         PendingStatus `json:"status" bson:"status"`
	ResolverID     string        `json:"resolver_id,omitempty" bson:"resolver_id,omitempty"`
	CreatedAt      time.Time     `json:"created_at" bson:"created_at"`
	ResolvedAt     *time.Time    `json:"resolved_at,omitempty" bson:"resolved_at,omitempty"`
}
