package api

import (
	"net/http"

	"mindwell/app"
	"mindwell/ports"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the analytics and insight routes
type AnalyticsHandler struct {
	journal   *app.JournalService
	analytics *app.AnalyticsService
	accounts  ports.AccountResolver
}

// NewAnalyticsHandler creates an analytics handler
func NewAnalyticsHandler(journal *app.JournalService, analytics *app.AnalyticsService, accounts ports.AccountResolver) *AnalyticsHandler {
	return &AnalyticsHandler{journal: journal, analytics: analytics, accounts: accounts}
}

// Dashboard handles GET /analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	days, err := intQuery(c, "days", 30, 1, 365)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.analytics.Dashboard(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Productivity handles GET /analytics/productivity
func (h *AnalyticsHandler) Productivity(c *gin.Context) {
	days, err := intQuery(c, "days", 30, 1, 365)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.analytics.Productivity(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// EmotionalHealth handles GET /analytics/emotional-health
func (h *AnalyticsHandler) EmotionalHealth(c *gin.Context) {
	days, err := intQuery(c, "days", 30, 1, 365)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.analytics.EmotionalHealth(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// RecentInsights handles GET /insights/recent
func (h *AnalyticsHandler) RecentInsights(c *gin.Context) {
	days, err := intQuery(c, "days", 7, 1, 365)
	if err != nil {
		respondError(c, err)
		return
	}
	limit, err := intQuery(c, "limit", 10, 1, 50)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	insights, err := h.journal.RecentInsights(c.Request.Context(), userID, days, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"insights": insights,
		"total":    len(insights),
	})
}

// MoodTrends handles GET /insights/mood-trends
func (h *AnalyticsHandler) MoodTrends(c *gin.Context) {
	days, err := intQuery(c, "days", 30, 1, 365)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	trends, err := h.journal.MoodTrends(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"period_days": days,
		"trends":      trends,
	})
}
