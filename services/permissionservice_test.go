package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"planboard/model"
)

func projectWith(creator string, members ...model.ProjectMember) *model.Project {
	return &model.Project{
		ProjectID: "p1",
		UserID:    creator,
		Members:   members,
	}
}

func TestRoleOfCreatorIsOwner(t *testing.T) {
	p := projectWith("u1")
	assert.Equal(t, model.RoleOwner, RoleOf(p, "u1"))
}

func TestRoleOfCreatorOutranksMemberRecord(t *testing.T) {
	// A conflicting member-list entry never demotes the creator.
	p := projectWith("u1", model.ProjectMember{UserID: "u1", Role: model.RoleViewer})
	assert.Equal(t, model.RoleOwner, RoleOf(p, "u1"))
}

func TestRoleOfMemberRecord(t *testing.T) {
	p := projectWith("u1",
		model.ProjectMember{UserID: "u2", Role: model.RoleAdmin},
		model.ProjectMember{UserID: "u3", Role: model.RoleViewer},
		model.ProjectMember{UserID: "u4", Role: "gibberish"},
	)

	assert.Equal(t, model.RoleAdmin, RoleOf(p, "u2"))
	assert.Equal(t, model.RoleViewer, RoleOf(p, "u3"))
	// Unknown stored roles degrade to plain member.
	assert.Equal(t, model.RoleMember, RoleOf(p, "u4"))
	assert.Equal(t, model.RoleNone, RoleOf(p, "stranger"))
}

func TestRoleOfNilProject(t *testing.T) {
	assert.Equal(t, model.RoleNone, RoleOf(nil, "u1"))
	assert.Equal(t, model.RoleNone, RoleOf(projectWith("u1"), ""))
}

func TestCapabilityPredicates(t *testing.T) {
	p := projectWith("owner",
		model.ProjectMember{UserID: "admin", Role: model.RoleAdmin},
		model.ProjectMember{UserID: "collab", Role: model.RoleCollaborator},
		model.ProjectMember{UserID: "member", Role: model.RoleMember},
		model.ProjectMember{UserID: "viewer", Role: model.RoleViewer},
	)

	cases := []struct {
		user          string
		canEdit       bool
		canDelete     bool
		canCreateTask bool
		canManage     bool
	}{
		{"owner", true, true, true, true},
		{"admin", true, false, true, true},
		{"collab", true, false, true, false},
		{"member", false, false, true, false},
		{"viewer", false, false, false, false},
		{"stranger", false, false, false, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.canEdit, CanEdit(p, tc.user), "CanEdit %s", tc.user)
		assert.Equal(t, tc.canDelete, CanDelete(p, tc.user), "CanDelete %s", tc.user)
		assert.Equal(t, tc.canCreateTask, CanCreateTask(p, tc.user), "CanCreateTask %s", tc.user)
		assert.Equal(t, tc.canManage, CanManageMembers(p, tc.user), "CanManageMembers %s", tc.user)
	}
}
