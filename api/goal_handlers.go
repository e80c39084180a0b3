package api

import (
	"net/http"

	"mindwell/app"
	"mindwell/internal/errors"
	"mindwell/models"
	"mindwell/ports"

	"github.com/gin-gonic/gin"
)

// GoalHandler serves the goal routes
type GoalHandler struct {
	goals    *app.GoalService
	accounts ports.AccountResolver
}

// NewGoalHandler creates a goal handler
func NewGoalHandler(goals *app.GoalService, accounts ports.AccountResolver) *GoalHandler {
	return &GoalHandler{goals: goals, accounts: accounts}
}

// CreateGoal handles POST /goals
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req models.GoalCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid request body"))
		return
	}

	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	goal, err := h.goals.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// ListGoals handles GET /goals
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	list, err := h.goals.ListGoals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetGoal handles GET /goals/:id
func (h *GoalHandler) GetGoal(c *gin.Context) {
	goalID, err := uuidParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	goal, err := h.goals.GetGoal(c.Request.Context(), userID, goalID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// UpdateGoal handles PUT /goals/:id
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	goalID, err := uuidParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var update models.GoalUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, errors.InvalidInput("invalid request body"))
		return
	}

	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	goal, err := h.goals.UpdateGoal(c.Request.Context(), userID, goalID, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// DeleteGoal handles DELETE /goals/:id
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	goalID, err := uuidParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := h.accounts.Resolve(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.goals.DeleteGoal(c.Request.Context(), userID, goalID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}
