package handler

import (
	"net/http"
	"strconv"
	"token-arena/internal/model"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListGames
// @Summary List games
// @Description Returns the active game catalogue with bet limits
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Game
// @Router /games [get]
func (h *Handler) ListGames(c *gin.Context) {
	games, err := h.matchService.ListGames(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// CreateMatch
// @Summary Create a match
// @Description Opens a waiting match and escrows the creator's bet
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param match body model.CreateMatchRequest true "Game and bet"
// @Success 201 {object} model.MatchResponse
// @Failure 400 {object} model.ErrorResponse "Invalid bet or insufficient balance"
// @Failure 404 {object} model.ErrorResponse "Game not found"
// @Router /matches [post]
func (h *Handler) CreateMatch(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	match, err := h.matchService.CreateMatch(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.MatchResponse{MatchID: match.ID, Match: match})
}

// ListOpenMatches
// @Summary List open matches
// @Description Returns waiting matches, optionally for one game
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param game_id query int false "Game ID"
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} model.Match
// @Router /matches [get]
func (h *Handler) ListOpenMatches(c *gin.Context) {
	var gameID int64
	if raw := c.Query("game_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			badRequest(c, "game_id must be a positive integer")
			return
		}
		gameID = id
	}
	limit, offset := pagination(c)

	matches, err := h.matchService.ListOpenMatches(c.Request.Context(), gameID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetMatch
// @Summary Get a match
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 200 {object} model.Match
// @Failure 404 {object} model.ErrorResponse "Match not found"
// @Router /matches/{id} [get]
func (h *Handler) GetMatch(c *gin.Context) {
	matchID, ok := parseIDParam(c)
	if !ok {
		return
	}

	match, err := h.matchService.GetMatch(c.Request.Context(), matchID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// JoinMatch
// @Summary Join a match
// @Description Takes the second seat of a waiting match and escrows the joiner's bet
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 200 {object} model.MatchResponse
// @Failure 400 {object} model.ErrorResponse "Own match or insufficient balance"
// @Failure 404 {object} model.ErrorResponse "Match not found or no longer available"
// @Router /matches/{id}/join [post]
func (h *Handler) JoinMatch(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	matchID, ok := parseIDParam(c)
	if !ok {
		return
	}

	match, err := h.matchService.JoinMatch(c.Request.Context(), matchID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MatchResponse{MatchID: match.ID, Match: match})
}

// CancelMatch
// @Summary Cancel a match
// @Description Cancels the caller's waiting match and refunds the bet
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 200 {object} model.StatusResponse
// @Failure 403 {object} model.ErrorResponse "Not the creator"
// @Failure 404 {object} model.ErrorResponse "Match not found or no longer available"
// @Router /matches/{id}/cancel [post]
func (h *Handler) CancelMatch(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	matchID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := h.matchService.CancelMatch(c.Request.Context(), matchID, userID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "ok"})
}

// CompleteMatch
// @Summary Complete a match
// @Description Settles an in-progress match. A null winner_id is a draw and refunds both bets.
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Param result body model.CompleteMatchRequest true "Outcome"
// @Success 200 {object} model.MatchResponse
// @Failure 400 {object} model.ErrorResponse "Winner is not a player"
// @Failure 403 {object} model.ErrorResponse "Caller is not a player"
// @Failure 409 {object} model.ErrorResponse "Match is not in progress"
// @Router /matches/{id}/complete [post]
func (h *Handler) CompleteMatch(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	matchID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.CompleteMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	match, err := h.matchService.CompleteMatch(c.Request.Context(), matchID, userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MatchResponse{MatchID: match.ID, Match: match})
}
