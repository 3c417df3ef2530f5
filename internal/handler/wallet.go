package handler

import (
	"net/http"
	"strings"
	"token-arena/internal/model"

	"github.com/gin-gonic/gin"
)

// BuyTokens
// @Summary Buy a token pack
// @Description Credits a token pack once per Idempotency-Key
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Client generated key"
// @Param purchase body model.PurchaseRequest true "Pack size"
// @Success 200 {object} model.PurchaseResponse "Already processed"
// @Success 201 {object} model.PurchaseResponse "Created"
// @Failure 400 {object} model.ErrorResponse "Pack not offered"
// @Failure 409 {object} model.ErrorResponse "Key reused for a different pack"
// @Router /purchases [post]
func (h *Handler) BuyTokens(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	key := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	if len(key) > 128 {
		badRequest(c, "Idempotency-Key must be at most 128 characters")
		return
	}

	var req model.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.purchases.Buy(c.Request.Context(), userID, &req, key)
	if err != nil {
		h.handleError(c, err)
		return
	}

	statusCode := http.StatusCreated
	if resp.Status == "already_processed" {
		statusCode = http.StatusOK
	}
	c.JSON(statusCode, resp)
}

// TransferTokens
// @Summary Transfer tokens
// @Description Moves tokens to another user by username
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transfer body model.TransferRequest true "Recipient and amount"
// @Success 200 {object} model.TransferResponse
// @Failure 400 {object} model.ErrorResponse "Invalid amount, self transfer or insufficient balance"
// @Failure 404 {object} model.ErrorResponse "Recipient not found"
// @Router /transfers [post]
func (h *Handler) TransferTokens(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.transfers.Transfer(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetBalance
// @Summary Get own balance
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/me/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.ledger.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTransactions
// @Summary Get own transactions
// @Description Returns a paginated list of the caller's transactions, newest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Router /users/me/transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	limit, offset := pagination(c)

	transactions, err := h.ledger.GetTransactionsByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        limit,
		Offset:       offset,
	})
}
