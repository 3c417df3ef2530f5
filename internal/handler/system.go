package handler

import (
	"net/http"
	"token-arena/internal/model"

	"github.com/gin-gonic/gin"
)

// RunSweep
// @Summary Run the reconciliation sweep
// @Description Expires lapsed queue entries, pairs parked compatible ones and refunds abandoned matches. Partial counts are returned with a 500 when a step failed.
// @Tags system
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SweepResult
// @Failure 403 {object} model.ErrorResponse "Not a system caller"
// @Router /system/sweep [post]
func (h *Handler) RunSweep(c *gin.Context) {
	result, err := h.reconciliation.RunSweep(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("reconciliation sweep finished with errors")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Sweep finished with errors",
			"code":   "INTERNAL_SERVER_ERROR",
			"result": result,
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GrantBonus
// @Summary Grant bonus tokens
// @Tags system
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param bonus body model.BonusRequest true "Bonus"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /system/users/{id}/bonus [post]
func (h *Handler) GrantBonus(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.BonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.transfers.GrantBonus(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
