package auth

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"planboard/dto"
	"planboard/model"
	"planboard/services"
)

func ResetPasswordController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/auth")
	{
		routes.POST("/resetpassword", func(c *gin.Context) {
			RequestPasswordReset(c, firestoreClient)
		})
		routes.POST("/resetpassword/confirm", func(c *gin.Context) {
			ConfirmPasswordReset(c, firestoreClient)
		})
	}
}

// RequestPasswordReset mails a one-time code to the account email.
// Requests are rate limited per email to keep the mailbox usable.
func RequestPasswordReset(c *gin.Context, firestoreClient *firestore.Client) {
	var request dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := context.Background()
	exists, err := services.UserExist(ctx, firestoreClient, request.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check account"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "No account for this email"})
		return
	}

	blocked, err := services.IsEmailBlocked(ctx, firestoreClient, request.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email block"})
		return
	}
	if blocked {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many reset requests, try again later"})
		return
	}

	if blockedNow, err := services.CheckAndBlockIfNeeded(ctx, firestoreClient, request.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check reset quota"})
		return
	} else if blockedNow {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many reset requests, try again later"})
		return
	}

	code := services.GenerateCode(6)
	ref := services.GenerateReference(8)

	record := model.ResetRecord{
		Email:     request.Email,
		Code:      code,
		Reference: ref,
		IsUsed:    "0",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
	if err := services.SaveResetRecord(ctx, firestoreClient, record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reset code"})
		return
	}

	body := services.ResetEmailContent(code, ref)
	if err := services.SendingEmail(request.Email, "Planboard password reset", body); err != nil {
		logrus.Errorf("reset mail to %s failed: %v", request.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reset email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reset code sent",
		"ref":     ref,
	})
}

// ConfirmPasswordReset exchanges a valid code for a new password.
func ConfirmPasswordReset(c *gin.Context, firestoreClient *firestore.Client) {
	var request dto.ResetPasswordConfirmRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if len(request.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
		return
	}

	ctx := context.Background()
	recordDoc, err := services.FindResetRecord(ctx, firestoreClient, request.Email, request.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check reset code"})
		return
	}
	if recordDoc == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset code"})
		return
	}

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

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	update := map[string]interface{}{
		"password":  string(hashedPassword),
		"updatedat": time.Now(),
	}
	if _, err := firestoreClient.Collection("Users").Doc(user.UserID).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	if _, err := recordDoc.Ref.Set(ctx, map[string]interface{}{"is_used": "1"}, firestore.MergeAll); err != nil {
		logrus.Errorf("failed to mark reset code used for %s: %v", request.Email, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
