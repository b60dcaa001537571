package user

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"planboard/dto"
	"planboard/middleware"
	"planboard/model"
	"planboard/services"

	"google.golang.org/api/iterator"
)

func UserController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/user", middleware.AccessTokenMiddleware())
	{
		routes.POST("/search", func(c *gin.Context) {
			SearchUser(c, firestoreClient)
		})
		routes.GET("/team", func(c *gin.Context) {
			TeamMembers(c, firestoreClient)
		})
		routes.PUT("/profile", func(c *gin.Context) {
			UpdateProfileUser(c, firestoreClient)
		})
		routes.DELETE("/account", func(c *gin.Context) {
			DeleteUser(c, firestoreClient)
		})
		routes.GET("/preferences", func(c *gin.Context) {
			GetPreferences(c, firestoreClient)
		})
		routes.PUT("/preferences", func(c *gin.Context) {
			UpdatePreferences(c, firestoreClient)
		})
	}
}

// SearchUser finds accounts by email prefix, for the member picker.
func SearchUser(c *gin.Context, fb *firestore.Client) {
	var emailReq dto.SearchEmailRequest
	if err := c.ShouldBindJSON(&emailReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := context.Background()
	searchText := emailReq.Email

	iter := fb.Collection("Users").
		Where("email", ">=", searchText).
		Where("email", "<=", searchText+"").
		Documents(ctx)
	defer iter.Stop()

	var userResponses []dto.TeamMemberResponse
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		var user model.User
		if err := doc.DataTo(&user); err != nil {
			continue
		}
		if user.Active != "1" {
			continue
		}
		userResponses = append(userResponses, dto.TeamMemberResponse{
			UserID: user.UserID,
			Name:   user.Name,
			Email:  user.Email,
		})
	}

	c.JSON(http.StatusOK, gin.H{"users": userResponses})
}

// TeamMembers collects everyone sharing a project with the caller.
func TeamMembers(c *gin.Context, fb *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	projects, err := services.ProjectsForUser(ctx, fb, userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	seen := make(map[string]struct{})
	var members []dto.TeamMemberResponse
	for _, p := range projects {
		for _, m := range p.Members {
			if m.UserID == userId {
				continue
			}
			if _, ok := seen[m.UserID]; ok {
				continue
			}
			seen[m.UserID] = struct{}{}
			user, err := services.GetUserByID(ctx, fb, m.UserID)
			if err != nil {
				continue
			}
			members = append(members, dto.TeamMemberResponse{
				UserID: user.UserID,
				Name:   user.Name,
				Email:  user.Email,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

func UpdateProfileUser(c *gin.Context, fb *firestore.Client) {
	userId := c.MustGet("userId").(string)

	var request dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	update := map[string]interface{}{
		"updatedat": time.Now(),
	}
	if request.Name != "" {
		update["name"] = request.Name
	}
	if request.Profile != "" {
		update["profile"] = request.Profile
	}
	if request.Password != "" {
		if len(request.Password) < 8 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		update["password"] = string(hashed)
	}

	ctx := context.Background()
	if _, err := fb.Collection("Users").Doc(userId).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// DeleteUser soft-deletes the account, keeping the document so shared
// project member records stay resolvable.
func DeleteUser(c *gin.Context, fb *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	update := map[string]interface{}{
		"active":    "2",
		"updatedat": time.Now(),
	}
	if _, err := fb.Collection("Users").Doc(userId).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	// Revoke the refresh token so the deleted account cannot renew.
	if _, err := fb.Collection("RefreshTokens").Doc(userId).Set(ctx, map[string]interface{}{
		"revoked": true,
	}, firestore.MergeAll); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

// GetPreferences returns the persisted view-mode toggle. Accounts that
// never stored one default to the board view.
func GetPreferences(c *gin.Context, fb *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	user, err := services.GetUserByID(ctx, fb, userId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	boardView := true
	if user.BoardView != nil {
		boardView = *user.BoardView
	}

	c.JSON(http.StatusOK, gin.H{"boardView": boardView})
}

func UpdatePreferences(c *gin.Context, fb *firestore.Client) {
	userId := c.MustGet("userId").(string)

	var request dto.PreferenceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := context.Background()
	update := map[string]interface{}{
		"boardview": *request.BoardView,
		"updatedat": time.Now(),
	}
	if _, err := fb.Collection("Users").Doc(userId).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"boardView": *request.BoardView})
}
