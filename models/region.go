package models

import "time"

type Region struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"nome"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
