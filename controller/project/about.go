package project

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planboard/dto"
	"planboard/model"
	"planboard/services"
)

// UpdateAbout replaces the project's description, links and attachments
// from the about modal. Nil fields in the request leave the stored value
// untouched.
func UpdateAbout(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	projectId := c.Param("id")

	var request dto.UpdateAboutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()
	project, err := services.GetProject(ctx, firestoreClient, projectId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if !services.CanEdit(project, userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to edit this project"})
		return
	}

	update := map[string]interface{}{
		"updatedat": time.Now(),
	}
	if request.Description != nil {
		update["description"] = *request.Description
	}
	if request.Links != nil {
		links := make([]model.ProjectLink, 0, len(request.Links))
		for _, l := range request.Links {
			links = append(links, model.ProjectLink{
				LinkID: uuid.New().String(),
				Name:   l.Name,
				URL:    l.URL,
			})
		}
		update["links"] = links
	}
	if request.Attachments != nil {
		attachments := make([]model.ProjectAttachment, 0, len(request.Attachments))
		for _, a := range request.Attachments {
			attachments = append(attachments, model.ProjectAttachment{
				AttachmentID: uuid.New().String(),
				Name:         a.Name,
				URL:          a.URL,
				Size:         a.Size,
			})
		}
		update["attachments"] = attachments
	}

	if _, err := firestoreClient.Collection("Projects").Doc(projectId).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully"})
}

func AddMember(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	projectId := c.Param("id")

	var request dto.AddMemberRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if !model.ValidRole(request.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	ctx := context.Background()
	project, err := services.GetProject(ctx, firestoreClient, projectId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if !services.CanManageMembers(project, userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to manage members"})
		return
	}

	for _, m := range project.Members {
		if m.UserID == request.UserID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User is already a member"})
			return
		}
	}

	newMember, err := services.GetUserByID(ctx, firestoreClient, request.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	project.Members = append(project.Members, model.ProjectMember{
		UserID: newMember.UserID,
		Name:   newMember.Name,
		Role:   request.Role,
	})

	update := map[string]interface{}{
		"members":   project.Members,
		"memberids": services.MemberIDs(project),
		"updatedat": time.Now(),
	}
	if _, err := firestoreClient.Collection("Projects").Doc(projectId).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member added successfully"})
}

func RemoveMember(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	projectId := c.Param("id")
	memberId := c.Param("userId")

	ctx := context.Background()
	project, err := services.GetProject(ctx, firestoreClient, projectId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	// Members may remove themselves; anything else needs admin rights.
	if memberId != userId && !services.CanManageMembers(project, userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to manage members"})
		return
	}
	if memberId == project.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The owner cannot be removed"})
		return
	}

	members := make([]model.ProjectMember, 0, len(project.Members))
	found := false
	for _, m := range project.Members {
		if m.UserID == memberId {
			found = true
			continue
		}
		members = append(members, m)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	project.Members = members
	update := map[string]interface{}{
		"members":   project.Members,
		"memberids": services.MemberIDs(project),
		"updatedat": time.Now(),
	}
	if _, err := firestoreClient.Collection("Projects").Doc(projectId).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}
