package routes

import (
	"github.com/Jakeb65/WelnessTracker/controllers"
	"github.com/Jakeb65/WelnessTracker/middlewares"
	"github.com/Jakeb65/WelnessTracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(entrySvc *services.EntryService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(cors.Default())

	entryCtrl := controllers.NewEntryController(entrySvc)

	entries := r.Group("/entries")
	{
		entries.GET("", entryCtrl.ListEntries)
		entries.GET("/:id", entryCtrl.GetEntry)
		entries.POST("", entryCtrl.CreateEntry)
		entries.PUT("/:id", entryCtrl.UpdateEntry)
		entries.DELETE("/:id", entryCtrl.DeleteEntry)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	return r
}
