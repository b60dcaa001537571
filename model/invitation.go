package model

import "time"

// Stored invitation statuses.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationRejected = "rejected"
)

// Invitation lifecycle states as seen by a client resolving an
// invitation link.
const (
	InviteStateFound           = "found"
	InviteStateExpired         = "expired"
	InviteStateAlreadyAccepted = "already-accepted"
	InviteStateNotFound        = "not-found"
	InviteStateError           = "error"
)

type Invitation struct {
	InvitationID string    `firestore:"invitationid,omitempty" json:"invitationId"`
	ProjectID    string    `firestore:"projectid,omitempty" json:"projectId"`
	ProjectName  string    `firestore:"projectname,omitempty" json:"projectName"`
	InvitedEmail string    `firestore:"invitedemail,omitempty" json:"invitedEmail"`
	Role         string    `firestore:"role,omitempty" json:"role"`
	InvitedBy    string    `firestore:"invitedby,omitempty" json:"invitedBy"`
	Status       string    `firestore:"status,omitempty" json:"status"`
	CreatedAt    time.Time `firestore:"createdat,omitempty" json:"createdAt"`
	ExpiresAt    time.Time `firestore:"expiresat,omitempty" json:"expiresAt"`
}
