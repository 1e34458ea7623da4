package handlers

import (
	"net/http"
	"time"

	"github.com/centsible/centsible/internal/middleware"
	"github.com/centsible/centsible/internal/models"
	"github.com/centsible/centsible/internal/services"
	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	transactionService *services.TransactionService
}

func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

type CreateTransactionRequest struct {
	Category    string     `json:"category" binding:"required"`
	Amount      float64    `json:"amount" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	Date        *time.Time `json:"date"`
	Note        string     `json:"note"`
	Description string     `json:"description"`
	Currency    string     `json:"currency"`
}

type UpdateTransactionRequest struct {
	Category    *string    `json:"category"`
	Amount      *float64   `json:"amount"`
	Type        *string    `json:"type"`
	Date        *time.Time `json:"date"`
	Note        *string    `json:"note"`
	Description *string    `json:"description"`
	Currency    *string    `json:"currency"`
}

type TransactionResponse struct {
	Success     bool               `json:"success"`
	Transaction models.Transaction `json:"transaction"`
}

type TransactionListResponse struct {
	Success      bool                 `json:"success"`
	Transactions []models.Transaction `json:"transactions"`
}

type transactionIDParam struct {
	ID uint `uri:"id" binding:"required"`
}

// List godoc
// @Summary List transactions
// @Description All transactions of the authenticated user, newest first
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TransactionListResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	transactions, err := h.transactionService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list transactions", Code: CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Success: true, Transactions: transactions})
}

// Create godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "Transaction details"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: CodeValidationError})
		return
	}

	transaction, err := h.transactionService.Create(userID, services.CreateTransactionInput{
		Category:    req.Category,
		Amount:      req.Amount,
		Type:        models.TransactionType(req.Type),
		Date:        req.Date,
		Note:        req.Note,
		Description: req.Description,
		Currency:    req.Currency,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Success: true, Transaction: *transaction})
}

// Get godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var param transactionIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid transaction ID", Code: CodeValidationError})
		return
	}

	transaction, err := h.transactionService.Get(userID, param.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Success: true, Transaction: *transaction})
}

// Update godoc
// @Summary Update a transaction
// @Description Change only the supplied fields; the rest keep their values
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var param transactionIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid transaction ID", Code: CodeValidationError})
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: CodeValidationError})
		return
	}

	var txType *models.TransactionType
	if req.Type != nil {
		t := models.TransactionType(*req.Type)
		txType = &t
	}

	transaction, err := h.transactionService.Update(userID, param.ID, services.UpdateTransactionInput{
		Category:    req.Category,
		Amount:      req.Amount,
		Type:        txType,
		Date:        req.Date,
		Note:        req.Note,
		Description: req.Description,
		Currency:    req.Currency,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Success: true, Transaction: *transaction})
}

// Delete godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var param transactionIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid transaction ID", Code: CodeValidationError})
		return
	}

	if err := h.transactionService.Delete(userID, param.ID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "transaction deleted"})
}

func (h *TransactionHandler) respondError(c *gin.Context, err error) {
	switch err {
	case services.ErrInvalidAmount:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be greater than zero", Code: CodeValidationError})
	case services.ErrInvalidType:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "type must be income or expense", Code: CodeValidationError})
	case services.ErrEmptyCategory:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "category is required", Code: CodeValidationError})
	case services.ErrFutureDate:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date cannot be in the future", Code: CodeValidationError})
	case services.ErrTransactionNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "transaction not found", Code: CodeNotFound})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: CodeInternalError})
	}
}
