package model

import "time"

// Reminder is the schedule record written alongside a task that carries
// a deadline or recurrence. The notification worker reads these.
type Reminder struct {
	ReminderID string      `firestore:"reminderid,omitempty"`
	TaskID     string      `firestore:"taskid,omitempty"`
	DueDate    *time.Time  `firestore:"duedate,omitempty"`
	Recurrence *Recurrence `firestore:"recurrence,omitempty"`
	Send       string      `firestore:"send,omitempty"` // "0" pending, "1" sent
	UpdatedAt  time.Time   `firestore:"updatedat,omitempty"`
}
