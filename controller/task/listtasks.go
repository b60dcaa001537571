package task

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"planboard/dto"
	"planboard/model"
	"planboard/services"
)

// ListTasks returns the caller's visible tasks narrowed by the filter
// selection in the query string. The reference time for the deadline
// windows is taken once, here, so the whole evaluation is consistent.
func ListTasks(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	var query dto.ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
		return
	}
	if !model.ValidDeadlineWindow(query.Deadline) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline window"})
		return
	}

	ctx := context.Background()
	projects, err := services.ProjectsForUser(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	projectIDs := make([]string, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ProjectID)
	}

	tasks, err := services.TasksForUser(ctx, firestoreClient, userId, projectIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tasks"})
		return
	}

	filters := model.Filters{
		Projects:   query.Projects,
		Categories: query.Categories,
		Statuses:   query.Statuses,
		Priorities: query.Priorities,
		Assignees:  query.Assignees,
		Tags:       query.Tags,
		Deadline:   query.Deadline,
	}

	filtered := services.FilterTasks(tasks, filters, query.Search, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"tasks": filtered,
		"total": len(tasks),
		"count": len(filtered),
	})
}
