package handler

import (
	"context"
	"net/http"
	"time"
	"token-arena/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamMatchEvents
// @Summary Stream match events
// @Description Upgrades to a websocket and pushes match state changes until the match ends. Delivery is best-effort; poll GET /matches/{id} for the authoritative state.
// @Tags matches
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Param access_token query string false "Bearer token for clients that cannot set headers"
// @Success 101 {object} model.MatchEvent
// @Failure 404 {object} model.ErrorResponse "Match not found"
// @Failure 503 {object} model.ErrorResponse "Event stream disabled"
// @Router /matches/{id}/events [get]
func (h *Handler) StreamMatchEvents(c *gin.Context) {
	matchID, ok := parseIDParam(c)
	if !ok {
		return
	}
	if h.subscriber == nil {
		c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{
			Error: "Match events are not enabled",
			Code:  "EVENTS_DISABLED",
		})
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// The subscription must be live before the snapshot is read, otherwise a
	// transition landing between the two is never delivered.
	eventsCh, closeSub, err := h.subscriber.SubscribeMatch(ctx, matchID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer closeSub()

	match, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Int64("match_id", matchID).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Reader only detects the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeJSON(conn, model.NewMatchEvent(model.EventMatchSnapshot, match)); err != nil {
		return
	}
	if match.Status.IsTerminal() {
		closeStream(conn)
		return
	}

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-eventsCh:
			if !ok {
				closeStream(conn)
				return
			}
			if err := writeJSON(conn, event); err != nil {
				h.logger.Debug().Err(err).Int64("match_id", matchID).Msg("websocket write failed")
				return
			}
			if event.Status.IsTerminal() {
				closeStream(conn)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(v)
}

func closeStream(conn *websocket.Conn) {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match finished"))
}
