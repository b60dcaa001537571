package auth

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"planboard/dto"
	"planboard/model"
	"planboard/services"
)

func SignInController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, firestoreClient)
	})
}

func Signin(c *gin.Context, firestoreClient *firestore.Client) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Email == "" || request.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	ctx := context.Background()
	docSnap, err := services.GetUserData(ctx, firestoreClient, request.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	var user model.User
	if err := docSnap.DataTo(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	switch user.Active {
	case "0":
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User account is not active", "status": "0"})
		return
	case "2":
		c.JSON(http.StatusBadRequest, gin.H{"error": "User account is deleted", "status": "2"})
		return
	}

	if user.Verify != "1" {
		c.JSON(http.StatusForbidden, gin.H{"error": "User account is not verified"})
		return
	}

	accessToken, err := services.CreateAccessToken(user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	refreshToken, err := services.CreateRefreshToken(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}

	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash refresh token"})
		return
	}

	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour).Unix()
	issuedAt := now.Unix()

	refreshTokenData := model.TokenResponse{
		UserID:       user.UserID,
		RefreshToken: hashedRefreshToken,
		CreatedAt:    issuedAt,
		Revoked:      false,
		ExpiresIn:    expiresAt - issuedAt,
	}

	if _, err := firestoreClient.Collection("RefreshTokens").Doc(user.UserID).Set(c, refreshTokenData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token", "detail": err.Error()})
		return
	}

	loginData := map[string]interface{}{
		"email":     request.Email,
		"active":    user.Active,
		"verify":    user.Verify,
		"login":     1,
		"updatedat": now,
	}

	if _, err := firestoreClient.Collection("Users").Doc(user.UserID).Set(c, loginData, firestore.MergeAll); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update login status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}
