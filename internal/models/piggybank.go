package models

import "gorm.io/gorm"

type Piggybank struct {
	gorm.Model
	UserID         uint       `gorm:"not null;index" json:"user_id"`
	User           User       `gorm:"foreignKey:UserID" json:"-"`
	Name           string     `gorm:"not null" json:"name"`
	Category       string     `gorm:"not null" json:"category"`
	Emoji          string     `gorm:"not null" json:"emoji"`
	TargetAmount   float64    `gorm:"not null" json:"target_amount"`
	CurrentAmount  float64    `gorm:"not null;default:0" json:"current_amount"`
	IsAutomatic    bool       `gorm:"default:false" json:"is_automatic"`
	AutoPercentage *int       `json:"auto_percentage,omitempty"`
	LinkedID       *uint      `gorm:"index" json:"linked_id,omitempty"`
	Linked         *Piggybank `gorm:"foreignKey:LinkedID" json:"-"`
}
