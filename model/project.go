package model

import "time"

// Project roles, strongest first.
const (
	RoleOwner        = "owner"
	RoleAdmin        = "admin"
	RoleCollaborator = "collaborator"
	RoleMember       = "member"
	RoleViewer       = "viewer"
	RoleNone         = "none"
)

type Project struct {
	ProjectID   string              `firestore:"projectid,omitempty" json:"projectId"`
	Name        string              `firestore:"name,omitempty" json:"name"`
	Color       string              `firestore:"color,omitempty" json:"color"`
	Description string              `firestore:"description,omitempty" json:"description"`
	Category    string              `firestore:"category,omitempty" json:"category"` // comma-joined category labels, legacy encoding
	Links       []ProjectLink       `firestore:"links,omitempty" json:"links,omitempty"`
	Attachments []ProjectAttachment `firestore:"attachments,omitempty" json:"attachments,omitempty"`
	Members     []ProjectMember     `firestore:"members,omitempty" json:"members,omitempty"`
	// AvailableCategories restricts which categories tasks in this project
	// may use. Absent or empty means every category is permitted.
	AvailableCategories []string  `firestore:"availablecategories,omitempty" json:"availableCategories,omitempty"`
	UserID              string    `firestore:"userid,omitempty" json:"userId"` // creator
	CreatedAt           time.Time `firestore:"createdat,omitempty" json:"createdAt"`
	UpdatedAt           time.Time `firestore:"updatedat,omitempty" json:"updatedAt"`
}

type ProjectLink struct {
	LinkID string `firestore:"linkid,omitempty" json:"linkId"`
	Name   string `firestore:"name,omitempty" json:"name"`
	URL    string `firestore:"url,omitempty" json:"url"`
}

type ProjectAttachment struct {
	AttachmentID string `firestore:"attachmentid,omitempty" json:"attachmentId"`
	Name         string `firestore:"name,omitempty" json:"name"`
	URL          string `firestore:"url,omitempty" json:"url"`
	Size         int64  `firestore:"size,omitempty" json:"size"`
}

type ProjectMember struct {
	UserID string `firestore:"userid,omitempty" json:"userId"`
	Name   string `firestore:"name,omitempty" json:"name"`
	Role   string `firestore:"role,omitempty" json:"role"`
}

func ValidRole(r string) bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleCollaborator, RoleMember, RoleViewer:
		return true
	}
	return false
}
