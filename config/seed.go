package config

import (
	"errors"
	"log"

	"github.com/franciscofornicola/rede-alerta/models"

	"gorm.io/gorm"
)

// SeedAchievements inserts the default achievement catalog if the entries
// are missing. Existing entries are left untouched: thresholds are fixed at
// catalog-definition time.
func SeedAchievements() {
	catalog := []models.Achievement{
		{Name: "Primeiro Relato", Description: "Enviou seu primeiro relato", Icon: "star", Color: "#FFD700", PointsRequired: 0},
		{Name: "Contribuidor Fiel", Description: "Enviou 10 relatos", Icon: "military-tech", Color: "#4CAF50", PointsRequired: 100},
		{Name: "Vigilante Noturno", Description: "Enviou 5 relatos durante a noite", Icon: "nightlight-round", Color: "#9C27B0", PointsRequired: 250},
		{Name: "Ajudante Local", Description: "Relato validado pelas autoridades", Icon: "check-circle", Color: "#2196F3", PointsRequired: 500},
	}

	for _, a := range catalog {
		var existing models.Achievement
		err := DB.Where("name = ?", a.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := DB.Create(&a).Error; err != nil {
				log.Printf("failed to seed achievement %q: %v", a.Name, err)
			}
			continue
		}
		if err != nil {
			log.Printf("failed to check achievement %q: %v", a.Name, err)
		}
	}
}
