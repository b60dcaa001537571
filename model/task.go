package model

import (
	"time"
)

// Board column statuses.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusReview     = "review"
	StatusDone       = "done"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// PersonalProject is the sentinel project id used by filters to select
// tasks that belong to no project.
const PersonalProject = "personal"

type Task struct {
	TaskID      string      `firestore:"taskid,omitempty" json:"taskId"`
	Title       string      `firestore:"title,omitempty" json:"title"`
	Description string      `firestore:"description,omitempty" json:"description"`
	ProjectID   string      `firestore:"projectid,omitempty" json:"projectId"` // empty = personal task
	CategoryID  string      `firestore:"categoryid,omitempty" json:"categoryId"`
	Status      string      `firestore:"status,omitempty" json:"status"`
	Priority    string      `firestore:"priority,omitempty" json:"priority"`
	AssigneeID  string      `firestore:"assigneeid,omitempty" json:"assigneeId"`
	Deadline    *time.Time  `firestore:"deadline,omitempty" json:"deadline,omitempty"`
	Tags        []string    `firestore:"tags,omitempty" json:"tags,omitempty"`
	Recurrence  *Recurrence `firestore:"recurrence,omitempty" json:"recurrence,omitempty"`
	CreatedBy   string      `firestore:"createdby,omitempty" json:"createdBy"`
	CreatedAt   time.Time   `firestore:"createdat,omitempty" json:"createdAt"`
	UpdatedAt   time.Time   `firestore:"updatedat,omitempty" json:"updatedAt"`
}

// Recurrence repeats a task every IntervalDays starting at StartDate.
// IntervalDays must be at least 1.
type Recurrence struct {
	StartDate    time.Time `firestore:"startdate,omitempty" json:"startDate"`
	IntervalDays int       `firestore:"intervaldays,omitempty" json:"intervalDays"`
}

// IsPersonal reports whether the task belongs to no project.
func (t Task) IsPersonal() bool {
	return t.ProjectID == ""
}

func ValidStatus(s string) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
