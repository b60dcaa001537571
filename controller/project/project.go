package project

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

func ProjectController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("", middleware.AccessTokenMiddleware())
	{
		routes.POST("/project", func(c *gin.Context) {
			CreateProject(c, firestoreClient)
		})
		routes.GET("/projects", func(c *gin.Context) {
			ListProjects(c, firestoreClient)
		})
		routes.GET("/project/:id", func(c *gin.Context) {
			GetProject(c, firestoreClient)
		})
		routes.DELETE("/project/:id", func(c *gin.Context) {
			DeleteProject(c, firestoreClient)
		})
		routes.PUT("/project/:id/about", func(c *gin.Context) {
			UpdateAbout(c, firestoreClient)
		})
		routes.GET("/project/:id/categories", func(c *gin.Context) {
			ProjectCategories(c, firestoreClient)
		})
		routes.POST("/project/:id/members", func(c *gin.Context) {
			AddMember(c, firestoreClient)
		})
		routes.DELETE("/project/:id/members/:userId", func(c *gin.Context) {
			RemoveMember(c, firestoreClient)
		})
	}
}

func CreateProject(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	var request dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if request.Name == model.PersonalProject {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project name is reserved"})
		return
	}

	ctx := context.Background()
	user, err := services.GetUserByID(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	projectid := uuid.New().String()
	now := time.Now()

	newProject := model.Project{
		ProjectID:           projectid,
		Name:                request.Name,
		Color:               request.Color,
		Description:         request.Description,
		Category:            request.Category,
		AvailableCategories: request.AvailableCategories,
		Members: []model.ProjectMember{
			{UserID: userId, Name: user.Name, Role: model.RoleOwner},
		},
		UserID:    userId,
		CreatedAt: now,
		UpdatedAt: now,
	}

	data := projectDoc(&newProject)
	if _, err := firestoreClient.Collection("Projects").Doc(projectid).Set(ctx, data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Project created successfully",
		"projectId": projectid,
	})
}

func ListProjects(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	projects, err := services.ProjectsForUser(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	type annotated struct {
		model.Project
		Role string `json:"role"`
	}
	out := make([]annotated, 0, len(projects))
	for _, p := range projects {
		out = append(out, annotated{Project: p, Role: services.RoleOf(&p, userId)})
	}

	c.JSON(http.StatusOK, gin.H{"projects": out})
}

func GetProject(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	projectId := c.Param("id")

	ctx := context.Background()
	project, err := services.GetProject(ctx, firestoreClient, projectId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	role := services.RoleOf(project, userId)
	if role == model.RoleNone {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project":       project,
		"role":          role,
		"canEdit":       services.CanEdit(project, userId),
		"canDelete":     services.CanDelete(project, userId),
		"canCreateTask": services.CanCreateTask(project, userId),
	})
}

func DeleteProject(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	projectId := c.Param("id")

	ctx := context.Background()
	project, err := services.GetProject(ctx, firestoreClient, projectId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if !services.CanDelete(project, userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can delete a project"})
		return
	}

	if _, err := firestoreClient.Collection("Projects").Doc(projectId).Delete(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// ProjectCategories resolves the categories selectable for tasks under
// this project, honoring the project's allow-list.
func ProjectCategories(c *gin.Context, firestoreClient *firestore.Client) {
	projectId := c.Param("id")

	ctx := context.Background()
	var project *model.Project
	if projectId != model.PersonalProject {
		var err error
		project, err = services.GetProject(ctx, firestoreClient, projectId)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
	}

	all, err := services.AllCategories(ctx, firestoreClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": services.AvailableCategories(project, all),
	})
}

// projectDoc flattens the project for storage, adding the memberids
// array used by membership queries.
func projectDoc(p *model.Project) map[string]interface{} {
	return map[string]interface{}{
		"projectid":           p.ProjectID,
		"name":                p.Name,
		"color":               p.Color,
		"description":         p.Description,
		"category":            p.Category,
		"links":               p.Links,
		"attachments":         p.Attachments,
		"members":             p.Members,
		"memberids":           services.MemberIDs(p),
		"availablecategories": p.AvailableCategories,
		"userid":              p.UserID,
		"createdat":           p.CreatedAt,
		"updatedat":           p.UpdatedAt,
	}
}
