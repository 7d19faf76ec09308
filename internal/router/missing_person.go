package router

import "github.com/gin-gonic/gin"

func (r *Router) missingPersonRoutes(api *gin.RouterGroup) {
	persons := api.Group("/missing-persons")
	{
		// Public routes (no authentication required)
		persons.GET("", r.personHandler.GetAll)
		persons.GET("/:id", r.personHandler.GetByID)
		persons.GET("/location/:location", r.searchHandler.FilterByLocation)
		persons.GET("/recent", r.searchHandler.Recent)
		persons.GET("/stats", r.searchHandler.Statistics)

		// Protected routes (JWT authentication required)
		protected := persons.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			// Create new report
			protected.POST("", r.personHandler.Create)

			// Reports owned by the caller
			protected.GET("/mine", r.personHandler.Mine)

			// Update report (owner only)
			protected.PUT("/:id", r.personHandler.Update)

			// Delete report (owner only)
			protected.DELETE("/:id", r.personHandler.Delete)

			// Attach a photo to a report (owner only)
			protected.POST("/:id/photo", r.personHandler.UploadPhoto)
		}
	}
}
