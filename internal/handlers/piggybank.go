package handlers

import (
	"net/http"

	"github.com/centsible/centsible/internal/middleware"
	"github.com/centsible/centsible/internal/models"
	"github.com/centsible/centsible/internal/services"
	"github.com/gin-gonic/gin"
)

type PiggybankHandler struct {
	piggybankService *services.PiggybankService
}

func NewPiggybankHandler(piggybankService *services.PiggybankService) *PiggybankHandler {
	return &PiggybankHandler{piggybankService: piggybankService}
}

type CreatePiggybankRequest struct {
	Name           string  `json:"name" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	Emoji          string  `json:"emoji" binding:"required"`
	TargetAmount   float64 `json:"target_amount" binding:"required"`
	IsAutomatic    bool    `json:"is_automatic"`
	AutoPercentage *int    `json:"auto_percentage"`
	LinkedID       *uint   `json:"linked_id"`
}

type UpdatePiggybankRequest struct {
	Name           *string  `json:"name"`
	TargetAmount   *float64 `json:"target_amount"`
	IsAutomatic    *bool    `json:"is_automatic"`
	AutoPercentage *int     `json:"auto_percentage"`
	AmountToAdd    *float64 `json:"amount_to_add"`
	AmountToRemove *float64 `json:"amount_to_remove"`
	CurrentAmount  *float64 `json:"current_amount"`
}

type PiggybankResponse struct {
	Success   bool             `json:"success"`
	Piggybank models.Piggybank `json:"piggybank"`
}

type PiggybankListResponse struct {
	Success    bool               `json:"success"`
	Piggybanks []models.Piggybank `json:"piggybanks"`
}

type piggybankIDParam struct {
	ID uint `uri:"id" binding:"required"`
}

// List godoc
// @Summary List piggybanks
// @Tags piggybanks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PiggybankListResponse
// @Failure 401 {object} ErrorResponse
// @Router /piggybanks [get]
func (h *PiggybankHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	piggybanks, err := h.piggybankService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list piggybanks", Code: CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, PiggybankListResponse{Success: true, Piggybanks: piggybanks})
}

// Create godoc
// @Summary Create a piggybank
// @Description Create a savings goal; an optional linked_id chains it to another goal
// @Tags piggybanks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePiggybankRequest true "Piggybank details"
// @Success 201 {object} PiggybankResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /piggybanks [post]
func (h *PiggybankHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req CreatePiggybankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: CodeValidationError})
		return
	}

	piggybank, err := h.piggybankService.Create(userID, services.CreatePiggybankInput{
		Name:           req.Name,
		Category:       req.Category,
		Emoji:          req.Emoji,
		TargetAmount:   req.TargetAmount,
		IsAutomatic:    req.IsAutomatic,
		AutoPercentage: req.AutoPercentage,
		LinkedID:       req.LinkedID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PiggybankResponse{Success: true, Piggybank: *piggybank})
}

// Update godoc
// @Summary Update a piggybank
// @Description Apply amount_to_add, then amount_to_remove, then a current_amount override, plus any field changes
// @Tags piggybanks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Piggybank ID"
// @Param request body UpdatePiggybankRequest true "Fields to change"
// @Success 200 {object} PiggybankResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /piggybanks/{id} [put]
func (h *PiggybankHandler) Update(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var param piggybankIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid piggybank ID", Code: CodeValidationError})
		return
	}

	var req UpdatePiggybankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: CodeValidationError})
		return
	}

	piggybank, err := h.piggybankService.Update(userID, param.ID, services.UpdatePiggybankInput{
		Name:           req.Name,
		TargetAmount:   req.TargetAmount,
		IsAutomatic:    req.IsAutomatic,
		AutoPercentage: req.AutoPercentage,
		AmountToAdd:    req.AmountToAdd,
		AmountToRemove: req.AmountToRemove,
		CurrentAmount:  req.CurrentAmount,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PiggybankResponse{Success: true, Piggybank: *piggybank})
}

// Delete godoc
// @Summary Delete a piggybank
// @Tags piggybanks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Piggybank ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /piggybanks/{id} [delete]
func (h *PiggybankHandler) Delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var param piggybankIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid piggybank ID", Code: CodeValidationError})
		return
	}

	if err := h.piggybankService.Delete(userID, param.ID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "piggybank deleted"})
}

func (h *PiggybankHandler) respondError(c *gin.Context, err error) {
	switch err {
	case services.ErrEmptyName:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required", Code: CodeValidationError})
	case services.ErrEmptyCategory:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "category is required", Code: CodeValidationError})
	case services.ErrInvalidTarget:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "target amount must be greater than zero", Code: CodeValidationError})
	case services.ErrInvalidPercentage:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "auto percentage must be between 1 and 100", Code: CodeValidationError})
	case services.ErrInvalidAmount:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be greater than zero", Code: CodeValidationError})
	case services.ErrNegativeBalance:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot remove more than the current amount", Code: CodeValidationError})
	case services.ErrLinkedNotFound:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "linked piggybank not found", Code: CodeValidationError})
	case services.ErrPiggybankNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "piggybank not found", Code: CodeNotFound})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: CodeInternalError})
	}
}
