package services

import (
	"strings"
	"time"

	"planboard/model"
)

// MatchTask reports whether a task passes every active constraint in the
// filter selection. Empty filter fields impose no constraint; all active
// constraints are ANDed. now must be supplied by the caller so the
// deadline windows stay deterministic.
func MatchTask(task model.Task, filters model.Filters, now time.Time) bool {
	if !matchProject(task, filters.Projects) {
		return false
	}
	if !memberOf(task.CategoryID, filters.Categories) {
		return false
	}
	if !memberOf(task.Status, filters.Statuses) {
		return false
	}
	if !memberOf(task.Priority, filters.Priorities) {
		return false
	}
	if !memberOf(task.AssigneeID, filters.Assignees) {
		return false
	}
	if !anyTagOf(task.Tags, filters.Tags) {
		return false
	}
	return matchDeadline(task, filters.Deadline, now)
}

// MatchSearch is the free-text constraint, separate from Filters:
// a case-insensitive substring match over title and description.
func MatchSearch(task model.Task, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(task.Title), q) ||
		strings.Contains(strings.ToLower(task.Description), q)
}

// FilterTasks returns the tasks matching filters and search, preserving
// the original relative order.
func FilterTasks(tasks []model.Task, filters model.Filters, search string, now time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if MatchTask(t, filters, now) && MatchSearch(t, search) {
			out = append(out, t)
		}
	}
	return out
}

// ToggleFilter adds v to values if absent and removes it if present.
// Applying it twice yields the original selection.
func ToggleFilter(values []string, v string) []string {
	out := make([]string, 0, len(values)+1)
	found := false
	for _, x := range values {
		if x == v {
			found = true
			continue
		}
		out = append(out, x)
	}
	if !found {
		out = append(out, v)
	}
	return out
}

func matchProject(task model.Task, projects []string) bool {
	if len(projects) == 0 {
		return true
	}
	for _, p := range projects {
		if p == model.PersonalProject {
			if task.IsPersonal() {
				return true
			}
			continue
		}
		if p == task.ProjectID {
			return true
		}
	}
	return false
}

func memberOf(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func anyTagOf(tags, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		for _, t := range tags {
			if s == t {
				return true
			}
		}
	}
	return false
}

func matchDeadline(task model.Task, window string, now time.Time) bool {
	switch window {
	case "", model.DeadlineAll:
		return true
	}
	// Only "all" can match a task without a deadline.
	if task.Deadline == nil {
		return false
	}
	d := *task.Deadline
	switch window {
	case model.DeadlineOverdue:
		return d.Before(now) && task.Status != model.StatusDone
	case model.DeadlineToday:
		return sameDay(d, now)
	case model.Deadline3Days:
		return withinDays(d, now, 3)
	case model.DeadlineWeek:
		return withinDays(d, now, 7)
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// withinDays reports whether d falls in [now, now+days], inclusive.
func withinDays(d, now time.Time, days int) bool {
	if d.Before(now) {
		return false
	}
	return !d.After(now.AddDate(0, 0, days))
}
