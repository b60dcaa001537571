package auth

import (
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"planboard/middleware"
	"planboard/model"
	"planboard/services"
)

func RefreshTokenController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/auth/refresh", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		RefreshAccessToken(c, firestoreClient)
	})
}

// RefreshAccessToken issues a new access token when the presented
// refresh token matches the stored, unrevoked hash.
func RefreshAccessToken(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)
	refreshToken := c.MustGet("refreshToken").(string)

	ctx := context.Background()
	doc, err := firestoreClient.Collection("RefreshTokens").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token not recognized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load refresh token"})
		return
	}

	var stored model.TokenResponse
	if err := doc.DataTo(&stored); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse refresh token record"})
		return
	}
	if stored.Revoked {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is revoked"})
		return
	}
	if err := services.CompareRefreshToken(stored.RefreshToken, refreshToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token mismatch"})
		return
	}

	user, err := services.GetUserByID(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	accessToken, err := services.CreateAccessToken(user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{"accessToken": accessToken},
	})
}
