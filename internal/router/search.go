package router

import "github.com/gin-gonic/gin"

func (r *Router) searchRoutes(api *gin.RouterGroup) {
	search := api.Group("/search")
	{
		// Filtered search with pagination
		search.GET("", r.searchHandler.Search)

		// Single-term OR search across descriptive fields
		search.GET("/quick", r.searchHandler.QuickSearch)
	}
}
