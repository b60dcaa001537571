package services

import "planboard/model"

// RoleOf derives the effective role of a user on a project snapshot.
// The creator is always owner, even when a member record says otherwise.
func RoleOf(project *model.Project, userID string) string {
	if project == nil || userID == "" {
		return model.RoleNone
	}
	if project.UserID == userID {
		return model.RoleOwner
	}
	for _, m := range project.Members {
		if m.UserID == userID {
			if model.ValidRole(m.Role) {
				return m.Role
			}
			return model.RoleMember
		}
	}
	return model.RoleNone
}

// CanEdit reports whether the user may change project content
// (about section, links, attachments, task edits).
func CanEdit(project *model.Project, userID string) bool {
	switch RoleOf(project, userID) {
	case model.RoleOwner, model.RoleAdmin, model.RoleCollaborator:
		return true
	}
	return false
}

// CanDelete is reserved for the owner.
func CanDelete(project *model.Project, userID string) bool {
	return RoleOf(project, userID) == model.RoleOwner
}

// CanCreateTask is granted to every role except viewer.
func CanCreateTask(project *model.Project, userID string) bool {
	switch RoleOf(project, userID) {
	case model.RoleOwner, model.RoleAdmin, model.RoleCollaborator, model.RoleMember:
		return true
	}
	return false
}

// CanManageMembers covers member add/remove and invitations.
func CanManageMembers(project *model.Project, userID string) bool {
	switch RoleOf(project, userID) {
	case model.RoleOwner, model.RoleAdmin:
		return true
	}
	return false
}
