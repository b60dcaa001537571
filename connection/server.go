package connection

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	authctl "planboard/controller/auth"
	invitationctl "planboard/controller/invitation"
	projectctl "planboard/controller/project"
	taskctl "planboard/controller/task"
	userctl "planboard/controller/user"
)

func StartServer() {
	router := gin.Default()

	fb, err := FBConnection()
	if err != nil {
		logrus.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	authctl.SignInController(router, fb)
	authctl.SignUpController(router, fb)
	authctl.RefreshTokenController(router, fb)
	authctl.ResetPasswordController(router, fb)
	authctl.CaptchaController(router, fb)

	taskctl.TaskController(router, fb)
	projectctl.ProjectController(router, fb)
	projectctl.DiagnosticsController(router, fb)
	invitationctl.InvitationController(router, fb)
	userctl.UserController(router, fb)

	if err := router.Run(); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}
