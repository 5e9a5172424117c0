package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Sessions    []QuizSession  `json:"sessions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
