package services

import (
	"errors"
	"strings"
	"time"

	"github.com/centsible/centsible/internal/models"
	"github.com/centsible/centsible/internal/repository"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidType         = errors.New("type must be income or expense")
	ErrEmptyCategory       = errors.New("category is required")
	ErrFutureDate          = errors.New("date cannot be in the future")
)

const defaultCurrency = "EUR"

type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

func NewTransactionService(transactionRepo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

type CreateTransactionInput struct {
	Category    string
	Amount      float64
	Type        models.TransactionType
	Date        *time.Time
	Note        string
	Description string
	Currency    string
}

type UpdateTransactionInput struct {
	Category    *string
	Amount      *float64
	Type        *models.TransactionType
	Date        *time.Time
	Note        *string
	Description *string
	Currency    *string
}

func (s *TransactionService) Create(userID uint, in CreateTransactionInput) (*models.Transaction, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !in.Type.Valid() {
		return nil, ErrInvalidType
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, ErrEmptyCategory
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		if in.Date.After(now) {
			return nil, ErrFutureDate
		}
		date = *in.Date
	}

	currency := in.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Category:    in.Category,
		Amount:      in.Amount,
		Type:        in.Type,
		Date:        date,
		Note:        in.Note,
		Description: in.Description,
		Currency:    currency,
	}
	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

func (s *TransactionService) Get(userID uint, id uint) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(id, userID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}
	return transaction, nil
}

func (s *TransactionService) List(userID uint) ([]models.Transaction, error) {
	return s.transactionRepo.FindAllByUser(userID)
}

// Update changes only the supplied fields; everything else keeps its prior
// value. Validation mirrors Create and runs before any write.
func (s *TransactionService) Update(userID uint, id uint, in UpdateTransactionInput) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(id, userID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}

	if in.Amount != nil {
		if *in.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		transaction.Amount = *in.Amount
	}
	if in.Type != nil {
		if !in.Type.Valid() {
			return nil, ErrInvalidType
		}
		transaction.Type = *in.Type
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return nil, ErrEmptyCategory
		}
		transaction.Category = *in.Category
	}
	if in.Date != nil {
		if in.Date.After(time.Now()) {
			return nil, ErrFutureDate
		}
		transaction.Date = *in.Date
	}
	if in.Note != nil {
		transaction.Note = *in.Note
	}
	if in.Description != nil {
		transaction.Description = *in.Description
	}
	if in.Currency != nil && *in.Currency != "" {
		transaction.Currency = *in.Currency
	}

	if err := s.transactionRepo.Save(transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

func (s *TransactionService) Delete(userID uint, id uint) error {
	transaction, err := s.transactionRepo.FindByID(id, userID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return ErrTransactionNotFound
	}
	return s.transactionRepo.Delete(id, userID)
}
