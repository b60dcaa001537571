package services

import "planboard/model"

// AvailableCategories returns the categories selectable for a task under
// the given project. No project (or the personal sentinel) permits every
// category. A project with a non-empty allow-list narrows the result to
// the intersection, preserving the order of all. An absent or empty
// allow-list permits everything (fail-open).
func AvailableCategories(project *model.Project, all []model.Category) []model.Category {
	if project == nil || project.ProjectID == model.PersonalProject {
		return all
	}
	if len(project.AvailableCategories) == 0 {
		return all
	}
	allowed := make(map[string]struct{}, len(project.AvailableCategories))
	for _, id := range project.AvailableCategories {
		allowed[id] = struct{}{}
	}
	out := make([]model.Category, 0, len(all))
	for _, c := range all {
		if _, ok := allowed[c.CategoryID]; ok {
			out = append(out, c)
		}
	}
	return out
}

// CategoryAllowed reports whether a single category id is usable for
// tasks under the project. The empty id (no category) is always allowed.
func CategoryAllowed(project *model.Project, categoryID string) bool {
	if categoryID == "" {
		return true
	}
	if project == nil || project.ProjectID == model.PersonalProject {
		return true
	}
	if len(project.AvailableCategories) == 0 {
		return true
	}
	for _, id := range project.AvailableCategories {
		if id == categoryID {
			return true
		}
	}
	return false
}
