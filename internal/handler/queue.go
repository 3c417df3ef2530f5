package handler

import (
	"net/http"
	"token-arena/internal/model"

	"github.com/gin-gonic/gin"
)

// Enqueue
// @Summary Join the matchmaking queue
// @Description Pairs the caller with a compatible waiting player, or queues them until the entry expires
// @Tags queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body model.EnqueueRequest true "Game and bet"
// @Success 200 {object} model.EnqueueResult "Paired into a match"
// @Success 202 {object} model.EnqueueResult "Waiting for an opponent"
// @Failure 409 {object} model.ErrorResponse "Already queued"
// @Router /queue [post]
func (h *Handler) Enqueue(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	result, err := h.matchmaking.Enqueue(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusOK
	if result.Match == nil {
		status = http.StatusAccepted
	}
	c.JSON(status, result)
}

// GetQueueEntry
// @Summary Get a queue entry
// @Tags queue
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} model.QueueEntry
// @Failure 404 {object} model.ErrorResponse "Entry not found"
// @Router /queue/{id} [get]
func (h *Handler) GetQueueEntry(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	entryID, ok := parseIDParam(c)
	if !ok {
		return
	}

	entry, err := h.matchmaking.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CancelQueueEntry
// @Summary Leave the matchmaking queue
// @Tags queue
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Entry is no longer waiting"
// @Router /queue/{id} [delete]
func (h *Handler) CancelQueueEntry(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	entryID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.matchmaking.CancelEntry(c.Request.Context(), userID, entryID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "ok"})
}
