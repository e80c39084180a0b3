package api

import (
	"fmt"
	"net/http"

	"mindwell/adapters/excel"
	"mindwell/app"
	"mindwell/internal/errors"
	"mindwell/models"
	"mindwell/ports"

	"github.com/gin-gonic/gin"
)

// JournalHandler serves the journal entry routes
type JournalHandler struct {
	journal   *app.JournalService
	analytics *app.AnalyticsService
	accounts  ports.AccountResolver
}

// NewJournalHandler creates a journal handler
func NewJournalHandler(journal *app.JournalService, analytics *app.AnalyticsService, accounts ports.AccountResolver) *JournalHandler {
	return &JournalHandler{journal: journal, analytics: analytics, accounts: accounts}
}

// CreateEntry handles POST /journal/entries
func (h *JournalHandler) CreateEntry(c *gin.Context) {
	var req models.JournalEntryCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid request body"))
		return
	}

	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	entry, analysis, err := h.journal.CreateEntry(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"entry":    entry,
		"analysis": analysis,
	})
}

// ListEntries handles GET /journal/entries
func (h *JournalHandler) ListEntries(c *gin.Context) {
	page, err := intQuery(c, "page", 1, 1, 1<<30)
	if err != nil {
		respondError(c, err)
		return
	}
	perPage, err := intQuery(c, "per_page", 20, 1, 100)
	if err != nil {
		respondError(c, err)
		return
	}

	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	list, err := h.journal.ListEntries(c.Request.Context(), userID, page, perPage, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetEntry handles GET /journal/entries/:id
func (h *JournalHandler) GetEntry(c *gin.Context) {
	entryID, err := uuidParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.journal.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateEntry handles PUT /journal/entries/:id
func (h *JournalHandler) UpdateEntry(c *gin.Context) {
	entryID, err := uuidParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var update models.JournalEntryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, errors.InvalidInput("invalid request body"))
		return
	}

	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.journal.UpdateEntry(c.Request.Context(), userID, entryID, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /journal/entries/:id
func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	entryID, err := uuidParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.journal.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "journal entry deleted"})
}

// ExportEntries handles GET /journal/entries/export, streaming every entry
// as an XLSX workbook
func (h *JournalHandler) ExportEntries(c *gin.Context) {
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	// Export ignores paging; pull everything newest-first.
	var entries []models.JournalEntry
	for page := 1; ; page++ {
		list, err := h.journal.ListEntries(c.Request.Context(), userID, page, 100, "")
		if err != nil {
			respondError(c, err)
			return
		}
		entries = append(entries, list.Entries...)
		if len(list.Entries) == 0 || len(entries) >= list.Total {
			break
		}
	}

	filename := fmt.Sprintf("journal-entries-%d.xlsx", len(entries))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := excel.WriteEntries(c.Writer, entries); err != nil {
		respondError(c, errors.InternalError("failed to write export"))
		return
	}
}

// WeeklySummary handles GET /journal/entries/weekly-summary
func (h *JournalHandler) WeeklySummary(c *gin.Context) {
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.analytics.WeeklySummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// WeeklyDigest handles GET /journal/entries/weekly-digest, rendering the
// weekly summary as an HTML document
func (h *JournalHandler) WeeklyDigest(c *gin.Context) {
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.analytics.WeeklySummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	md := app.BuildWeeklyDigestMarkdown(summary)
	c.Data(http.StatusOK, "text/html; charset=utf-8", app.RenderDigestHTML(md))
}
