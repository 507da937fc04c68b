package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"studio/controller"
	mw "studio/middlewares"
)

// Public registers the routes visitors reach without a bearer token.
func Public(router *gin.Engine, env *controller.Env) {
	router.POST("/auth/login", env.Login)
	router.GET("/images", env.GetImages)
	router.GET("/project/:projectId", env.GetProjectDetails)
	router.GET("/events/active", env.GetActiveEvents)

	contactLimit := mw.NewRateLimiter(20, time.Minute)
	router.POST("/contact", contactLimit.Middleware(), env.SubmitContact)
}
