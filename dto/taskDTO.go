package dto

type CreateTaskRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	ProjectID   string             `json:"projectId"` // empty = personal task
	CategoryID  string             `json:"categoryId"`
	Status      string             `json:"status"`
	Priority    string             `json:"priority"`
	AssigneeID  string             `json:"assigneeId"`
	Deadline    string             `json:"deadline"` // RFC3339
	Tags        []string           `json:"tags"`
	Recurrence  *RecurrenceRequest `json:"recurrence"`
}

type RecurrenceRequest struct {
	StartDate    string `json:"startDate" binding:"required"` // RFC3339
	IntervalDays int    `json:"intervalDays" binding:"required"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListTasksQuery is the filter selection bound from the task list query
// string. Repeated keys populate the slices; absent keys mean no
// restriction.
type ListTasksQuery struct {
	Projects   []string `form:"projects"`
	Categories []string `form:"categories"`
	Statuses   []string `form:"statuses"`
	Priorities []string `form:"priorities"`
	Assignees  []string `form:"assignees"`
	Tags       []string `form:"tags"`
	Deadline   string   `form:"deadline"`
	Search     string   `form:"search"`
}
