package models

import "time"

type Review struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	Model    string    `gorm:"uniqueIndex:idx_review_model_user;not null" json:"model"`
	Username string    `gorm:"uniqueIndex:idx_review_model_user;not null" json:"username"`
	Score    int       `gorm:"not null" json:"score"`
	Date     time.Time `gorm:"not null" json:"date"`
	Comment  string    `json:"comment"`
}
