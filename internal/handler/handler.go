package handler

import (
	"errors"
	"net/http"
	"token-arena/internal/auth"
	"token-arena/internal/events"
	"token-arena/internal/model"
	"token-arena/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services groups the business services exposed over HTTP
type Services struct {
	Ledger         service.TokenLedger
	Matches        service.MatchService
	Matchmaking    service.MatchmakingService
	Purchases      service.PurchaseService
	Transfers      service.TransferService
	Reconciliation service.ReconciliationService
}

type Handler struct {
	ledger         service.TokenLedger
	matchService   service.MatchService
	matchmaking    service.MatchmakingService
	purchases      service.PurchaseService
	transfers      service.TransferService
	reconciliation service.ReconciliationService
	verifier       *auth.Verifier
	subscriber     events.Subscriber
	logger         zerolog.Logger
}

// NewHandler wires the HTTP layer. A nil subscriber disables the match
// event stream.
func NewHandler(svcs Services, verifier *auth.Verifier, subscriber events.Subscriber, logger zerolog.Logger) *Handler {
	return &Handler{
		ledger:         svcs.Ledger,
		matchService:   svcs.Matches,
		matchmaking:    svcs.Matchmaking,
		purchases:      svcs.Purchases,
		transfers:      svcs.Transfers,
		reconciliation: svcs.Reconciliation,
		verifier:       verifier,
		subscriber:     subscriber,
		logger:         logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(JWTAuth(h.verifier))

	v1.GET("/games", h.ListGames)

	matches := v1.Group("/matches")
	matches.POST("", h.CreateMatch)
	matches.GET("", h.ListOpenMatches)
	matches.GET("/:id", h.GetMatch)
	matches.POST("/:id/join", h.JoinMatch)
	matches.POST("/:id/cancel", h.CancelMatch)
	matches.POST("/:id/complete", h.CompleteMatch)
	matches.GET("/:id/events", h.StreamMatchEvents)

	queue := v1.Group("/queue")
	queue.POST("", h.Enqueue)
	queue.GET("/:id", h.GetQueueEntry)
	queue.DELETE("/:id", h.CancelQueueEntry)

	v1.POST("/purchases", h.BuyTokens)
	v1.POST("/transfers", h.TransferTokens)

	users := v1.Group("/users")
	users.GET("/me/balance", h.GetBalance)
	users.GET("/me/transactions", h.GetTransactions)

	system := v1.Group("/system", RequireRole(auth.RoleSystem))
	system.POST("/sweep", h.RunSweep)
	system.POST("/users/:id/bonus", h.GrantBonus)

	return router
}

type errorKind struct {
	status  int
	code    string
	message string
}

// errorKinds is checked in order; the first sentinel matched wins
var errorKinds = []struct {
	err  error
	kind errorKind
}{
	{model.ErrInvalidAmount, errorKind{http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be a positive whole number of tokens"}},
	{model.ErrInvalidBet, errorKind{http.StatusBadRequest, "INVALID_BET", "Bet amount is outside the allowed range for this game"}},
	{model.ErrInvalidDenomination, errorKind{http.StatusBadRequest, "INVALID_DENOMINATION", "This token pack is not offered"}},
	{model.ErrInvalidWinner, errorKind{http.StatusBadRequest, "INVALID_WINNER", "Winner must be one of the match players"}},
	{model.ErrSelfJoin, errorKind{http.StatusBadRequest, "SELF_JOIN", "You cannot join your own match"}},
	{model.ErrSelfTransfer, errorKind{http.StatusBadRequest, "SELF_TRANSFER", "You cannot transfer tokens to yourself"}},
	{model.ErrInsufficientFunds, errorKind{http.StatusBadRequest, "INSUFFICIENT_FUNDS", "Insufficient balance"}},
	{model.ErrUnauthorized, errorKind{http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required"}},
	{model.ErrForbidden, errorKind{http.StatusForbidden, "FORBIDDEN", "You are not allowed to perform this action"}},
	{model.ErrRecipientNotFound, errorKind{http.StatusNotFound, "RECIPIENT_NOT_FOUND", "Recipient not found"}},
	{model.ErrUserNotFound, errorKind{http.StatusNotFound, "USER_NOT_FOUND", "User not found"}},
	{model.ErrGameNotFound, errorKind{http.StatusNotFound, "GAME_NOT_FOUND", "Game not found"}},
	{model.ErrMatchNotFound, errorKind{http.StatusNotFound, "MATCH_NOT_FOUND", "Match not found"}},
	{model.ErrMatchNotAvailable, errorKind{http.StatusNotFound, "MATCH_NOT_AVAILABLE", "This match is no longer available"}},
	{model.ErrQueueEntryNotFound, errorKind{http.StatusNotFound, "QUEUE_ENTRY_NOT_FOUND", "Queue entry not found"}},
	{model.ErrMatchStateConflict, errorKind{http.StatusConflict, "STATE_CONFLICT", "This action no longer applies to the current state"}},
	{model.ErrAlreadyQueued, errorKind{http.StatusConflict, "ALREADY_QUEUED", "You are already waiting in the matchmaking queue"}},
	{model.ErrDuplicateTransaction, errorKind{http.StatusConflict, "DUPLICATE_TRANSACTION", "This operation was already recorded"}},
	{model.ErrDuplicateRequest, errorKind{http.StatusConflict, "DUPLICATE_REQUEST", "Idempotency key was already used for a different purchase"}},
}

func (h *Handler) handleError(c *gin.Context, err error) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			resp := model.ErrorResponse{Error: k.kind.message, Code: k.kind.code}
			if err.Error() != k.err.Error() {
				resp.Details = err.Error()
			}
			c.JSON(k.kind.status, resp)
			return
		}
	}

	h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("internal server error")
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{
		Error: "Something went wrong, please try again",
		Code:  "INTERNAL_SERVER_ERROR",
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: message,
		Code:  "INVALID_REQUEST",
	})
}
