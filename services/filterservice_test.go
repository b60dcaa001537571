package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/model"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func deadlineIn(d time.Duration) *time.Time {
	t := testNow.Add(d)
	return &t
}

func TestMatchTaskIdentityFilter(t *testing.T) {
	tasks := []model.Task{
		{TaskID: "1", Title: "a", Status: model.StatusTodo},
		{TaskID: "2", ProjectID: "p1", Status: model.StatusDone, Priority: model.PriorityUrgent},
		{TaskID: "3", Deadline: deadlineIn(-48 * time.Hour), Tags: []string{"x"}},
	}
	for _, task := range tasks {
		assert.True(t, MatchTask(task, model.Filters{}, testNow), "task %s", task.TaskID)
		assert.True(t, MatchTask(task, model.Filters{Deadline: model.DeadlineAll}, testNow), "task %s", task.TaskID)
	}
}

func TestMatchTaskPersonalSentinel(t *testing.T) {
	filters := model.Filters{Projects: []string{model.PersonalProject}}

	assert.True(t, MatchTask(model.Task{TaskID: "1"}, filters, testNow))
	assert.False(t, MatchTask(model.Task{TaskID: "2", ProjectID: "p1"}, filters, testNow))

	// Mixing the sentinel with a real project id matches both.
	mixed := model.Filters{Projects: []string{model.PersonalProject, "p1"}}
	assert.True(t, MatchTask(model.Task{TaskID: "1"}, mixed, testNow))
	assert.True(t, MatchTask(model.Task{TaskID: "2", ProjectID: "p1"}, mixed, testNow))
	assert.False(t, MatchTask(model.Task{TaskID: "3", ProjectID: "p2"}, mixed, testNow))
}

func TestMatchTaskFieldMembership(t *testing.T) {
	task := model.Task{
		ProjectID:  "p1",
		CategoryID: "c1",
		Status:     model.StatusInProgress,
		Priority:   model.PriorityHigh,
		AssigneeID: "u1",
		Tags:       []string{"backend", "api"},
	}

	assert.True(t, MatchTask(task, model.Filters{Statuses: []string{model.StatusInProgress, model.StatusTodo}}, testNow))
	assert.False(t, MatchTask(task, model.Filters{Statuses: []string{model.StatusDone}}, testNow))
	assert.True(t, MatchTask(task, model.Filters{Categories: []string{"c1"}}, testNow))
	assert.False(t, MatchTask(task, model.Filters{Categories: []string{"c2"}}, testNow))
	assert.True(t, MatchTask(task, model.Filters{Assignees: []string{"u1", "u2"}}, testNow))
	assert.False(t, MatchTask(task, model.Filters{Assignees: []string{"u2"}}, testNow))

	// Tags need at least one overlap.
	assert.True(t, MatchTask(task, model.Filters{Tags: []string{"api", "frontend"}}, testNow))
	assert.False(t, MatchTask(task, model.Filters{Tags: []string{"frontend"}}, testNow))
}

func TestMatchTaskConstraintsAreANDed(t *testing.T) {
	task := model.Task{Status: model.StatusTodo, Priority: model.PriorityHigh}

	filters := model.Filters{
		Statuses:   []string{model.StatusTodo},
		Priorities: []string{model.PriorityLow},
	}
	assert.False(t, MatchTask(task, filters, testNow))
}

func TestDeadlineOverdue(t *testing.T) {
	filters := model.Filters{Deadline: model.DeadlineOverdue}

	overdue := model.Task{Status: model.StatusTodo, Deadline: deadlineIn(-time.Hour)}
	assert.True(t, MatchTask(overdue, filters, testNow))

	// A finished task is never overdue, however old its deadline.
	done := model.Task{Status: model.StatusDone, Deadline: deadlineIn(-240 * time.Hour)}
	assert.False(t, MatchTask(done, filters, testNow))

	future := model.Task{Status: model.StatusTodo, Deadline: deadlineIn(time.Hour)}
	assert.False(t, MatchTask(future, filters, testNow))

	noDeadline := model.Task{Status: model.StatusTodo}
	assert.False(t, MatchTask(noDeadline, filters, testNow))
}

func TestDeadlineToday(t *testing.T) {
	filters := model.Filters{Deadline: model.DeadlineToday}

	sameDayLater := model.Task{Deadline: deadlineIn(5 * time.Hour)}
	assert.True(t, MatchTask(sameDayLater, filters, testNow))

	sameDayEarlier := model.Task{Deadline: deadlineIn(-5 * time.Hour)}
	assert.True(t, MatchTask(sameDayEarlier, filters, testNow))

	tomorrow := model.Task{Deadline: deadlineIn(24 * time.Hour)}
	assert.False(t, MatchTask(tomorrow, filters, testNow))
}

func TestDeadlineWindows(t *testing.T) {
	in2Days := model.Task{Deadline: deadlineIn(48 * time.Hour)}
	in5Days := model.Task{Deadline: deadlineIn(5 * 24 * time.Hour)}
	in10Days := model.Task{Deadline: deadlineIn(10 * 24 * time.Hour)}
	past := model.Task{Deadline: deadlineIn(-time.Hour)}
	noDeadline := model.Task{}

	threeDays := model.Filters{Deadline: model.Deadline3Days}
	assert.True(t, MatchTask(in2Days, threeDays, testNow))
	assert.False(t, MatchTask(in5Days, threeDays, testNow))
	assert.False(t, MatchTask(past, threeDays, testNow))
	assert.False(t, MatchTask(noDeadline, threeDays, testNow))

	week := model.Filters{Deadline: model.DeadlineWeek}
	assert.True(t, MatchTask(in2Days, week, testNow))
	assert.True(t, MatchTask(in5Days, week, testNow))
	assert.False(t, MatchTask(in10Days, week, testNow))

	// Window bounds are inclusive.
	exactly3 := model.Task{Deadline: deadlineIn(3 * 24 * time.Hour)}
	assert.True(t, MatchTask(exactly3, threeDays, testNow))
	exactly7 := model.Task{Deadline: deadlineIn(7 * 24 * time.Hour)}
	assert.True(t, MatchTask(exactly7, week, testNow))
}

func TestFilterTasksPriorityAndToday(t *testing.T) {
	today := deadlineIn(2 * time.Hour)
	tasks := []model.Task{
		{TaskID: "high", Priority: model.PriorityHigh, Deadline: today},
		{TaskID: "low", Priority: model.PriorityLow, Deadline: today},
	}
	filters := model.Filters{
		Priorities: []string{model.PriorityHigh, model.PriorityUrgent},
		Deadline:   model.DeadlineToday,
	}

	got := FilterTasks(tasks, filters, "", testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "high", got[0].TaskID)
}

func TestFilterTasksPreservesOrder(t *testing.T) {
	tasks := []model.Task{
		{TaskID: "1", Status: model.StatusTodo},
		{TaskID: "2", Status: model.StatusDone},
		{TaskID: "3", Status: model.StatusTodo},
		{TaskID: "4", Status: model.StatusTodo},
	}
	got := FilterTasks(tasks, model.Filters{Statuses: []string{model.StatusTodo}}, "", testNow)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].TaskID)
	assert.Equal(t, "3", got[1].TaskID)
	assert.Equal(t, "4", got[2].TaskID)
}

func TestMatchSearch(t *testing.T) {
	task := model.Task{Title: "Ship API docs", Description: "Write the endpoint reference"}

	assert.True(t, MatchSearch(task, ""))
	assert.True(t, MatchSearch(task, "api"))
	assert.True(t, MatchSearch(task, "ENDPOINT"))
	assert.False(t, MatchSearch(task, "billing"))

	// Search is an extra AND on top of the filter selection.
	got := FilterTasks([]model.Task{task}, model.Filters{Statuses: []string{model.StatusDone}}, "api", testNow)
	assert.Empty(t, got)
}

func TestToggleFilterRoundTrip(t *testing.T) {
	original := []string{"a", "b", "c"}

	once := ToggleFilter(original, "d")
	assert.Contains(t, once, "d")

	twice := ToggleFilter(once, "d")
	assert.ElementsMatch(t, original, twice)

	removed := ToggleFilter(original, "b")
	assert.Equal(t, []string{"a", "c"}, removed)
	restored := ToggleFilter(removed, "b")
	assert.ElementsMatch(t, original, restored)
}
