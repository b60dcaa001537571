package task

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planboard/dto"
	"planboard/middleware"
	"planboard/model"
	"planboard/services"
)

func TaskController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("", middleware.AccessTokenMiddleware())
	{
		routes.POST("/task", func(c *gin.Context) {
			CreateTask(c, firestoreClient)
		})
		routes.GET("/tasks", func(c *gin.Context) {
			ListTasks(c, firestoreClient)
		})
		routes.PUT("/task/:id/status", func(c *gin.Context) {
			UpdateTaskStatus(c, firestoreClient)
		})
		routes.DELETE("/task/:id", func(c *gin.Context) {
			DeleteTask(c, firestoreClient)
		})
	}
}

func CreateTask(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	var taskReq dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if taskReq.Status == "" {
		taskReq.Status = model.StatusTodo
	}
	if !model.ValidStatus(taskReq.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	if taskReq.Priority == "" {
		taskReq.Priority = model.PriorityMedium
	}
	if !model.ValidPriority(taskReq.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	var recurrence *model.Recurrence
	if taskReq.Recurrence != nil {
		if taskReq.Recurrence.IntervalDays < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Recurrence interval must be at least 1 day"})
			return
		}
		startDate, err := time.Parse(time.RFC3339, taskReq.Recurrence.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurrence start date"})
			return
		}
		recurrence = &model.Recurrence{
			StartDate:    startDate,
			IntervalDays: taskReq.Recurrence.IntervalDays,
		}
	}

	var deadline *time.Time
	if taskReq.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, taskReq.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline format"})
			return
		}
		deadline = &parsed
	}

	ctx := context.Background()

	// Project tasks go through the permission and category gates;
	// personal tasks are always allowed.
	var project *model.Project
	if taskReq.ProjectID != "" && taskReq.ProjectID != model.PersonalProject {
		var err error
		project, err = services.GetProject(ctx, firestoreClient, taskReq.ProjectID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		if !services.CanCreateTask(project, userId) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to create tasks in this project"})
			return
		}
	}
	if !services.CategoryAllowed(project, taskReq.CategoryID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is not available for this project"})
		return
	}

	projectID := taskReq.ProjectID
	if projectID == model.PersonalProject {
		projectID = ""
	}

	taskid := uuid.New().String()
	now := time.Now()

	newtask := model.Task{
		TaskID:      taskid,
		Title:       taskReq.Title,
		Description: taskReq.Description,
		ProjectID:   projectID,
		CategoryID:  taskReq.CategoryID,
		Status:      taskReq.Status,
		Priority:    taskReq.Priority,
		AssigneeID:  taskReq.AssigneeID,
		Deadline:    deadline,
		Tags:        taskReq.Tags,
		Recurrence:  recurrence,
		CreatedBy:   userId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := firestoreClient.Collection("Tasks").Doc(taskid).Set(ctx, newtask); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	// Deadline and recurring tasks get a reminder record for the
	// notification worker.
	if deadline != nil || recurrence != nil {
		reminderid := uuid.New().String()
		reminder := model.Reminder{
			ReminderID: reminderid,
			TaskID:     taskid,
			DueDate:    deadline,
			Recurrence: recurrence,
			Send:       "0",
			UpdatedAt:  now,
		}
		if _, err := firestoreClient.Collection("Reminders").Doc(reminderid).Set(ctx, reminder); err != nil {
			// Keep the write atomic from the client's point of view.
			firestoreClient.Collection("Tasks").Doc(taskid).Delete(ctx)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"taskID":  taskid,
	})
}
