package handlers

import (
	"net/http"

	"github.com/centsible/centsible/internal/models"
	"github.com/centsible/centsible/internal/repository"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	userRepo        *repository.UserRepository
	transactionRepo *repository.TransactionRepository
}

func NewAdminHandler(userRepo *repository.UserRepository, transactionRepo *repository.TransactionRepository) *AdminHandler {
	return &AdminHandler{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
	}
}

type AdminUserListResponse struct {
	Success bool          `json:"success"`
	Users   []UserSummary `json:"users"`
	Total   int           `json:"total"`
}

type AdminTransactionListResponse struct {
	Success      bool                 `json:"success"`
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AdminUserListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list users", Code: CodeInternalError})
		return
	}

	summaries := make([]UserSummary, len(users))
	for i, user := range users {
		summaries[i] = userSummary(user.ID, user.Name, user.Email, user.CreatedAt)
	}

	c.JSON(http.StatusOK, AdminUserListResponse{Success: true, Users: summaries, Total: len(summaries)})
}

// ListAllTransactions godoc
// @Summary List all transactions across users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AdminTransactionListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/transactions [get]
func (h *AdminHandler) ListAllTransactions(c *gin.Context) {
	transactions, err := h.transactionRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list transactions", Code: CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, AdminTransactionListResponse{Success: true, Transactions: transactions, Total: len(transactions)})
}
