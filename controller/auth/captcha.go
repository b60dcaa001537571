package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	recaptcha "cloud.google.com/go/recaptchaenterprise/v2/apiv1"
	"cloud.google.com/go/recaptchaenterprise/v2/apiv1/recaptchaenterprisepb"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"

	"planboard/dto"
)

func CaptchaController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/auth")
	{
		routes.POST("/captcha", func(c *gin.Context) {
			VerifyCaptcha(c, firestoreClient)
		})
	}
}

// VerifyCaptcha runs a reCAPTCHA Enterprise assessment for the token
// sent by the auth screens and reports the risk score.
func VerifyCaptcha(c *gin.Context, firestoreClient *firestore.Client) {
	var req dto.CaptchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request format",
		})
		return
	}

	projectID := os.Getenv("RECAPTCHA_PROJECT_ID")
	siteKey := os.Getenv("RECAPTCHA_SITE_KEY")
	credentials := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if projectID == "" || siteKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Captcha is not configured",
		})
		return
	}

	ctx := context.Background()
	client, err := recaptcha.NewClient(ctx, option.WithCredentialsFile(credentials))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create captcha client",
		})
		return
	}
	defer client.Close()

	assessment, err := client.CreateAssessment(ctx, &recaptchaenterprisepb.CreateAssessmentRequest{
		Parent: fmt.Sprintf("projects/%s", projectID),
		Assessment: &recaptchaenterprisepb.Assessment{
			Event: &recaptchaenterprisepb.Event{
				Token:   req.Token,
				SiteKey: siteKey,
			},
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to assess captcha token",
		})
		return
	}

	props := assessment.GetTokenProperties()
	if !props.GetValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid captcha token: " + props.GetInvalidReason().String(),
		})
		return
	}
	if props.GetAction() != req.Action {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Captcha action mismatch",
		})
		return
	}

	risk := assessment.GetRiskAnalysis()
	reasons := make([]string, 0, len(risk.GetReasons()))
	for _, r := range risk.GetReasons() {
		reasons = append(reasons, r.String())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": risk.GetScore() >= 0.5,
		"score":   risk.GetScore(),
		"action":  props.GetAction(),
		"reasons": reasons,
	})
}
