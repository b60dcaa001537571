package project

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"

	"planboard/dto"
	"planboard/middleware"
	"planboard/services"
)

func DiagnosticsController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("", middleware.AccessTokenMiddleware())
	{
		routes.GET("/project/:id/diagnose", func(c *gin.Context) {
			DiagnoseProjectTasks(c, firestoreClient)
		})
		routes.POST("/project/:id/migrate", func(c *gin.Context) {
			MigrateProjectTasks(c, firestoreClient)
		})
	}
}

// DiagnoseProjectTasks counts tasks stored under the legacy board-keyed
// encoding (a "boardid" field instead of "projectid") next to the
// current ones, so clients can tell whether a migration is pending.
func DiagnoseProjectTasks(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	projectId := c.Param("id")

	ctx := context.Background()
	project, err := services.GetProject(ctx, firestoreClient, projectId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if !services.CanEdit(project, userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to inspect this project"})
		return
	}

	current, err := countTasks(ctx, firestoreClient, "projectid", projectId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count tasks"})
		return
	}
	legacy, err := countTasks(ctx, firestoreClient, "boardid", projectId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count legacy tasks"})
		return
	}

	c.JSON(http.StatusOK, dto.DiagnoseResponse{
		NeedsMigration:      legacy > 0,
		ProjectTasksCount:   current,
		OldFormatTasksCount: legacy,
	})
}

// MigrateProjectTasks rewrites legacy board-keyed tasks into the
// current encoding and reports how many were moved.
func MigrateProjectTasks(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	projectId := c.Param("id")

	ctx := context.Background()
	project, err := services.GetProject(ctx, firestoreClient, projectId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if !services.CanEdit(project, userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to migrate this project"})
		return
	}

	iter := firestoreClient.Collection("Tasks").Where("boardid", "==", projectId).Documents(ctx)
	defer iter.Stop()

	migrated := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read legacy tasks"})
			return
		}

		update := []firestore.Update{
			{Path: "projectid", Value: projectId},
			{Path: "boardid", Value: firestore.Delete},
			{Path: "updatedat", Value: time.Now()},
		}
		if _, err := doc.Ref.Update(ctx, update); err != nil {
			logrus.Errorf("migration of task %s failed: %v", doc.Ref.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":         "Migration failed partway",
				"migratedCount": migrated,
			})
			return
		}
		migrated++
	}

	c.JSON(http.StatusOK, dto.MigrateResponse{MigratedCount: migrated})
}

func countTasks(ctx context.Context, fb *firestore.Client, field, value string) (int, error) {
	docs, err := fb.Collection("Tasks").Where(field, "==", value).Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}
