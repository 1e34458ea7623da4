package repository

import (
	"errors"

	"github.com/centsible/centsible/internal/models"
	"gorm.io/gorm"
)

type PiggybankRepository struct {
	db *gorm.DB
}

func NewPiggybankRepository(db *gorm.DB) *PiggybankRepository {
	return &PiggybankRepository{db: db}
}

func (r *PiggybankRepository) Create(tx *gorm.DB, piggybank *models.Piggybank) error {
	return tx.Create(piggybank).Error
}

func (r *PiggybankRepository) FindByID(id uint, userID uint) (*models.Piggybank, error) {
	var piggybank models.Piggybank
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&piggybank).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &piggybank, nil
}

func (r *PiggybankRepository) FindByIDInTx(tx *gorm.DB, id uint, userID uint) (*models.Piggybank, error) {
	var piggybank models.Piggybank
	err := tx.Where("id = ? AND user_id = ?", id, userID).First(&piggybank).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &piggybank, nil
}

func (r *PiggybankRepository) FindAllByUser(userID uint) ([]models.Piggybank, error) {
	var piggybanks []models.Piggybank
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&piggybanks).Error
	return piggybanks, err
}

func (r *PiggybankRepository) Save(piggybank *models.Piggybank) error {
	return r.db.Save(piggybank).Error
}

func (r *PiggybankRepository) Delete(id uint, userID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Piggybank{}).Error
}
