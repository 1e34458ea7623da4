package services

import (
	"errors"
	"strings"

	"github.com/centsible/centsible/internal/models"
	"github.com/centsible/centsible/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPiggybankNotFound = errors.New("piggybank not found")
	ErrEmptyName         = errors.New("name is required")
	ErrInvalidTarget     = errors.New("target amount must be greater than zero")
	ErrInvalidPercentage = errors.New("auto percentage must be between 1 and 100")
	ErrLinkedNotFound    = errors.New("linked piggybank not found")
	ErrNegativeBalance   = errors.New("cannot remove more than the current amount")
)

type PiggybankService struct {
	piggybankRepo *repository.PiggybankRepository
	db            *gorm.DB
}

func NewPiggybankService(piggybankRepo *repository.PiggybankRepository, db *gorm.DB) *PiggybankService {
	return &PiggybankService{
		piggybankRepo: piggybankRepo,
		db:            db,
	}
}

type CreatePiggybankInput struct {
	Name           string
	Category       string
	Emoji          string
	TargetAmount   float64
	IsAutomatic    bool
	AutoPercentage *int
	LinkedID       *uint
}

type UpdatePiggybankInput struct {
	Name           *string
	TargetAmount   *float64
	IsAutomatic    *bool
	AutoPercentage *int
	AmountToAdd    *float64
	AmountToRemove *float64
	CurrentAmount  *float64
}

// Create validates the goal and, when a link is requested, checks the link
// target inside the same transaction so the pair is created atomically.
func (s *PiggybankService) Create(userID uint, in CreatePiggybankInput) (*models.Piggybank, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, ErrEmptyCategory
	}
	if in.TargetAmount <= 0 {
		return nil, ErrInvalidTarget
	}
	if in.IsAutomatic {
		if in.AutoPercentage == nil || *in.AutoPercentage < 1 || *in.AutoPercentage > 100 {
			return nil, ErrInvalidPercentage
		}
	} else {
		in.AutoPercentage = nil
	}

	piggybank := &models.Piggybank{
		UserID:         userID,
		Name:           in.Name,
		Category:       in.Category,
		Emoji:          in.Emoji,
		TargetAmount:   in.TargetAmount,
		CurrentAmount:  0,
		IsAutomatic:    in.IsAutomatic,
		AutoPercentage: in.AutoPercentage,
		LinkedID:       in.LinkedID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if in.LinkedID != nil {
			linked, err := s.piggybankRepo.FindByIDInTx(tx, *in.LinkedID, userID)
			if err != nil {
				return err
			}
			if linked == nil {
				return ErrLinkedNotFound
			}
		}
		return s.piggybankRepo.Create(tx, piggybank)
	})
	if err != nil {
		return nil, err
	}

	return piggybank, nil
}

func (s *PiggybankService) Get(userID uint, id uint) (*models.Piggybank, error) {
	piggybank, err := s.piggybankRepo.FindByID(id, userID)
	if err != nil {
		return nil, err
	}
	if piggybank == nil {
		return nil, ErrPiggybankNotFound
	}
	return piggybank, nil
}

func (s *PiggybankService) List(userID uint) ([]models.Piggybank, error) {
	return s.piggybankRepo.FindAllByUser(userID)
}

// Update applies balance changes in a fixed order: the additive delta, then
// the subtractive delta, then an absolute override if one was supplied. The
// override wins over whatever the deltas produced. A subtractive delta that
// would drive the balance negative rejects the whole update.
func (s *PiggybankService) Update(userID uint, id uint, in UpdatePiggybankInput) (*models.Piggybank, error) {
	piggybank, err := s.piggybankRepo.FindByID(id, userID)
	if err != nil {
		return nil, err
	}
	if piggybank == nil {
		return nil, ErrPiggybankNotFound
	}

	balance := piggybank.CurrentAmount
	if in.AmountToAdd != nil {
		if *in.AmountToAdd <= 0 {
			return nil, ErrInvalidAmount
		}
		balance += *in.AmountToAdd
	}
	if in.AmountToRemove != nil {
		if *in.AmountToRemove <= 0 {
			return nil, ErrInvalidAmount
		}
		if balance-*in.AmountToRemove < 0 {
			return nil, ErrNegativeBalance
		}
		balance -= *in.AmountToRemove
	}
	if in.CurrentAmount != nil {
		if *in.CurrentAmount < 0 {
			return nil, ErrNegativeBalance
		}
		balance = *in.CurrentAmount
	}
	piggybank.CurrentAmount = balance

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, ErrEmptyName
		}
		piggybank.Name = *in.Name
	}
	if in.TargetAmount != nil {
		if *in.TargetAmount <= 0 {
			return nil, ErrInvalidTarget
		}
		piggybank.TargetAmount = *in.TargetAmount
	}
	if in.IsAutomatic != nil {
		if *in.IsAutomatic {
			percentage := piggybank.AutoPercentage
			if in.AutoPercentage != nil {
				percentage = in.AutoPercentage
			}
			if percentage == nil || *percentage < 1 || *percentage > 100 {
				return nil, ErrInvalidPercentage
			}
			piggybank.IsAutomatic = true
			piggybank.AutoPercentage = percentage
		} else {
			piggybank.IsAutomatic = false
			piggybank.AutoPercentage = nil
		}
	} else if in.AutoPercentage != nil {
		if *in.AutoPercentage < 1 || *in.AutoPercentage > 100 {
			return nil, ErrInvalidPercentage
		}
		piggybank.AutoPercentage = in.AutoPercentage
	}

	if err := s.piggybankRepo.Save(piggybank); err != nil {
		return nil, err
	}

	return piggybank, nil
}

func (s *PiggybankService) Delete(userID uint, id uint) error {
	piggybank, err := s.piggybankRepo.FindByID(id, userID)
	if err != nil {
		return err
	}
	if piggybank == nil {
		return ErrPiggybankNotFound
	}
	return s.piggybankRepo.Delete(id, userID)
}
