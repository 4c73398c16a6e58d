package models

import "time"

// Common status values. The status column is free text: the API accepts
// any string, these are just the ones the app uses.
const (
	StatusEmAnalise  = "Em análise"
	StatusConfirmado = "Confirmado"
	StatusResolvido  = "Resolvido"
	StatusDescartado = "Descartado"
)

type Alert struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:120" json:"titulo"`
	Type        string    `gorm:"size:40;not null" json:"tipo"`
	Description string    `gorm:"type:text" json:"descricao"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Status      string    `gorm:"size:60;not null;default:'Em análise'" json:"status"`
	OccurredAt  time.Time `json:"data_ocorrencia"`
	PhotoURL    string    `gorm:"size:512" json:"foto_url,omitempty"`
	UserID      uint      `gorm:"index" json:"usuario_id"`
	CreatedAt   time.Time `json:"criado_em"`
	UpdatedAt   time.Time `json:"-"`
}
