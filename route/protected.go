package route

import (
	"github.com/gin-gonic/gin"

	"studio/controller"
	mw "studio/middlewares"
)

// Protected registers the admin routes behind the JWT middleware.
func Protected(router *gin.Engine, env *controller.Env) {
	protected := router.Group("/")

	protected.Use(mw.JWT(env.JWTSecret))
	protected.POST("/upload", env.UploadImage)
	protected.PUT("/images/:id", env.UpdateImage)
	protected.DELETE("/images/:id", env.DeleteImage)
	protected.GET("/contact", env.GetContactSubmissions)
	protected.PUT("/contact/:id/read", env.MarkContactRead)
	protected.POST("/events", env.CreateEvent)
	protected.GET("/events", env.GetEvents)
	protected.PUT("/events/:id", env.UpdateEvent)
	protected.DELETE("/events/:id", env.DeleteEvent)
}
