package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	fields := g.Group("/fields")
	{
		fields.GET("", h.List)
		fields.GET("/:id", h.Get)
		fields.POST("", h.Create)
		fields.PATCH("/:id", h.Update)
		fields.DELETE("/:id", h.Delete)

		fields.GET("/:id/courts", h.ListCourts)
		fields.POST("/:id/courts", h.CreateCourt)

		fields.GET("/:id/photos", h.ListPhotos)
		fields.POST("/:id/photos", h.UploadPhoto)
	}

	g.DELETE("/courts/:id", h.DeleteCourt)

	photos := g.Group("/photos")
	{
		photos.GET("/:id", h.DownloadPhoto)
		photos.GET("/:id/thumbnail", h.DownloadPhotoThumbnail)
		photos.DELETE("/:id", h.DeletePhoto)
	}
}
