package task

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"planboard/dto"
	"planboard/model"
	"planboard/services"
)

// UpdateTaskStatus moves a task between board columns.
func UpdateTaskStatus(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("id")

	var request dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if !model.ValidStatus(request.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	ctx := context.Background()
	task, err := services.GetTask(ctx, firestoreClient, taskId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if err := authorizeTaskEdit(ctx, firestoreClient, task, userId); err != nil {
		code := http.StatusForbidden
		if errors.Is(err, services.ErrProjectNotFound) {
			code = http.StatusNotFound
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}

	update := map[string]interface{}{
		"status":    request.Status,
		"updatedat": time.Now(),
	}
	if _, err := firestoreClient.Collection("Tasks").Doc(taskId).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully"})
}

func DeleteTask(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("id")

	ctx := context.Background()
	task, err := services.GetTask(ctx, firestoreClient, taskId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if task.IsPersonal() {
		if task.CreatedBy != userId {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the creator can delete a personal task"})
			return
		}
	} else {
		project, err := services.GetProject(ctx, firestoreClient, task.ProjectID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		if !services.CanDelete(project, userId) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the project owner can delete tasks"})
			return
		}
	}

	if _, err := firestoreClient.Collection("Tasks").Doc(taskId).Delete(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func authorizeTaskEdit(ctx context.Context, fb *firestore.Client, task *model.Task, userId string) error {
	if task.IsPersonal() {
		if task.CreatedBy != userId {
			return errPersonalTask
		}
		return nil
	}
	project, err := services.GetProject(ctx, fb, task.ProjectID)
	if err != nil {
		return err
	}
	if !services.CanEdit(project, userId) {
		return errProjectEdit
	}
	return nil
}

var (
	errPersonalTask = errors.New("Only the creator can edit a personal task")
	errProjectEdit  = errors.New("You are not allowed to edit tasks in this project")
)
