package model

// Deadline windows for task filtering.
const (
	DeadlineAll     = "all"
	DeadlineOverdue = "overdue"
	DeadlineToday   = "today"
	Deadline3Days   = "3days"
	DeadlineWeek    = "week"
)

// Filters is a transient, per-view task filter selection. An empty set
// for any field means no restriction on that field, not "exclude all".
type Filters struct {
	Projects   []string `json:"projects" form:"projects"`
	Categories []string `json:"categories" form:"categories"`
	Statuses   []string `json:"statuses" form:"statuses"`
	Priorities []string `json:"priorities" form:"priorities"`
	Assignees  []string `json:"assignees" form:"assignees"`
	Tags       []string `json:"tags" form:"tags"`
	Deadline   string   `json:"deadline" form:"deadline"` // all|overdue|today|3days|week
}

func ValidDeadlineWindow(w string) bool {
	switch w {
	case "", DeadlineAll, DeadlineOverdue, DeadlineToday, Deadline3Days, DeadlineWeek:
		return true
	}
	return false
}
