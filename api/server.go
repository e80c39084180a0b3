package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server wires the handlers onto a gin engine
type Server struct {
	router *gin.Engine
}

// NewServer creates the HTTP server and registers every route
func NewServer(journal *JournalHandler, goals *GoalHandler, analytics *AnalyticsHandler) *Server {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		entries := v1.Group("/journal/entries")
		{
			entries.POST("", journal.CreateEntry)
			entries.GET("", journal.ListEntries)
			entries.GET("/export", journal.ExportEntries)
			entries.GET("/weekly-summary", journal.WeeklySummary)
			entries.GET("/weekly-digest", journal.WeeklyDigest)
			entries.GET("/:id", journal.GetEntry)
			entries.PUT("/:id", journal.UpdateEntry)
			entries.DELETE("/:id", journal.DeleteEntry)
		}

		goalRoutes := v1.Group("/goals")
		{
			goalRoutes.POST("", goals.CreateGoal)
			goalRoutes.GET("", goals.ListGoals)
			goalRoutes.GET("/:id", goals.GetGoal)
			goalRoutes.PUT("/:id", goals.UpdateGoal)
			goalRoutes.DELETE("/:id", goals.DeleteGoal)
		}

		insights := v1.Group("/insights")
		{
			insights.GET("/recent", analytics.RecentInsights)
			insights.GET("/mood-trends", analytics.MoodTrends)
		}

		analyticsRoutes := v1.Group("/analytics")
		{
			analyticsRoutes.GET("/dashboard", analytics.Dashboard)
			analyticsRoutes.GET("/productivity", analytics.Productivity)
			analyticsRoutes.GET("/emotional-health", analytics.EmotionalHealth)
		}
	}

	return &Server{router: router}
}

// Router exposes the underlying engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server on the given address
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
