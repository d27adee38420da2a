package routes

import (
	"camerahive/controllers"
	"camerahive/middlewares"

	"github.com/gin-gonic/gin"
)

func CameraRoutes(server *gin.Engine) {
	server.GET("/cameras", controllers.GetCameras)
	server.GET("/cameras/sample", controllers.GetSampleCameras)
	server.GET("/cameras/:id", controllers.GetCamera)

	admin := server.Group("/cameras", middlewares.RequireSession(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateCamera)
		admin.PUT("/:id", controllers.UpdateCamera)
		admin.DELETE("/:id", controllers.DeleteCamera)
		admin.POST("/images", controllers.UploadCameraImages)
	}
}
