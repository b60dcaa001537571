package invitation

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"planboard/dto"
	"planboard/middleware"
	"planboard/model"
	"planboard/services"
)

func InvitationController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/project/:id/invitations", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateInvitation(c, firestoreClient)
	})

	// Lookup is public so an invitation link can be resolved before
	// sign-in; accept and reject require an authenticated caller.
	router.GET("/api/invitations/:id", func(c *gin.Context) {
		GetInvitation(c, firestoreClient)
	})
	router.POST("/api/invitations/:id/accept", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		AcceptInvitation(c, firestoreClient)
	})
	router.POST("/api/invitations/:id/reject", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		RejectInvitation(c, firestoreClient)
	})
}

func CreateInvitation(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	projectId := c.Param("id")

	var request dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if !model.ValidRole(request.Role) || request.Role == model.RoleOwner {
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
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to invite members"})
		return
	}

	invitationid := uuid.New().String()
	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour)

	inv := model.Invitation{
		InvitationID: invitationid,
		ProjectID:    projectId,
		ProjectName:  project.Name,
		InvitedEmail: request.Email,
		Role:         request.Role,
		InvitedBy:    userId,
		Status:       model.InvitationPending,
		CreatedAt:    now,
		ExpiresAt:    expiresAt,
	}

	if _, err := firestoreClient.Collection("Invitations").Doc(invitationid).Set(ctx, inv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation"})
		return
	}

	// Deep link token carries the invitation id and its expiry.
	params := url.Values{}
	params.Add("invitationId", invitationid)
	params.Add("expire", strconv.FormatInt(expiresAt.Unix(), 10))
	deepLink := base64.URLEncoding.EncodeToString([]byte(params.Encode()))

	link := strings.TrimRight(os.Getenv("APP_BASE_URL"), "/") + "/invitations/" + deepLink
	body := services.InvitationEmailContent(project.Name, link)
	if err := services.SendingEmail(request.Email, "Invitation to "+project.Name, body); err != nil {
		// The invitation stays usable through its id even when the
		// mail does not go out.
		logrus.Errorf("invitation mail to %s failed: %v", request.Email, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Invitation created successfully",
		"invitationId": invitationid,
		"deep_link":    deepLink,
	})
}

// GetInvitation resolves an invitation link. The response status code
// encodes the lifecycle state: 200 found, 410 expired (invitation still
// in the body for display), 400 already accepted, 404 unknown.
func GetInvitation(c *gin.Context, firestoreClient *firestore.Client) {
	invitationId := c.Param("id")

	ctx := context.Background()
	inv, err := loadInvitation(ctx, firestoreClient, invitationId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invitation"})
		return
	}

	state := services.InvitationState(inv, time.Now())
	code := services.InvitationStatusCode(state)

	switch state {
	case model.InviteStateFound:
		c.JSON(code, gin.H{"invitation": inv})
	case model.InviteStateExpired:
		c.JSON(code, gin.H{"invitation": inv, "error": "expired"})
	case model.InviteStateAlreadyAccepted:
		c.JSON(code, gin.H{"error": "Invitation already accepted"})
	default:
		c.JSON(code, gin.H{"error": "Invitation not found"})
	}
}

func AcceptInvitation(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	invitationId := c.Param("id")

	ctx := context.Background()
	inv, err := loadInvitation(ctx, firestoreClient, invitationId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invitation"})
		return
	}

	state := services.InvitationState(inv, time.Now())
	if state != model.InviteStateFound {
		c.JSON(services.InvitationStatusCode(state), gin.H{"error": "Invitation is no longer open"})
		return
	}

	project, err := services.GetProject(ctx, firestoreClient, inv.ProjectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	user, err := services.GetUserByID(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if services.RoleOf(project, userId) == model.RoleNone {
		project.Members = append(project.Members, model.ProjectMember{
			UserID: userId,
			Name:   user.Name,
			Role:   inv.Role,
		})
		update := map[string]interface{}{
			"members":   project.Members,
			"memberids": services.MemberIDs(project),
			"updatedat": time.Now(),
		}
		if _, err := firestoreClient.Collection("Projects").Doc(inv.ProjectID).Set(ctx, update, firestore.MergeAll); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join project"})
			return
		}
	}

	if err := setInvitationStatus(ctx, firestoreClient, invitationId, model.InvitationAccepted); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invitation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Invitation accepted",
		"projectId": inv.ProjectID,
	})
}

func RejectInvitation(c *gin.Context, firestoreClient *firestore.Client) {
	invitationId := c.Param("id")

	ctx := context.Background()
	inv, err := loadInvitation(ctx, firestoreClient, invitationId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invitation"})
		return
	}

	state := services.InvitationState(inv, time.Now())
	if state != model.InviteStateFound {
		c.JSON(services.InvitationStatusCode(state), gin.H{"error": "Invitation is no longer open"})
		return
	}

	if err := setInvitationStatus(ctx, firestoreClient, invitationId, model.InvitationRejected); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invitation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invitation rejected"})
}

func loadInvitation(ctx context.Context, fb *firestore.Client, invitationId string) (*model.Invitation, error) {
	doc, err := fb.Collection("Invitations").Doc(invitationId).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	var inv model.Invitation
	if err := doc.DataTo(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func setInvitationStatus(ctx context.Context, fb *firestore.Client, invitationId, newStatus string) error {
	_, err := fb.Collection("Invitations").Doc(invitationId).Set(ctx, map[string]interface{}{
		"status":    newStatus,
		"updatedat": time.Now(),
	}, firestore.MergeAll)
	return err
}
