package services

import (
	"log"
	"time"

	"github.com/franciscofornicola/rede-alerta/config"
	"github.com/franciscofornicola/rede-alerta/models"
	"github.com/franciscofornicola/rede-alerta/utils"

	"gorm.io/gorm"
)

type AlertInput struct {
	Title       string
	Type        string
	Description string
	Latitude    float64
	Longitude   float64
	OccurredAt  time.Time
	PhotoURL    string
}

// CreateAlert persists a new alert for the submitting user, credits the
// fixed point award and re-evaluates achievements, all in one transaction.
func CreateAlert(userID uint, in AlertInput) (*models.Alert, error) {
	occurredAt := in.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	alert := models.Alert{
		Title:       in.Title,
		Type:        in.Type,
		Description: in.Description,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Status:      models.StatusEmAnalise,
		OccurredAt:  occurredAt,
		PhotoURL:    in.PhotoURL,
		UserID:      userID,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		if err := tx.Create(&alert).Error; err != nil {
			return err
		}
		if err := addPoints(tx, &user, PointsPerAlert); err != nil {
			return err
		}
		return EvaluateAchievements(tx, &user)
	})
	if err != nil {
		return nil, err
	}

	emitAlertEvent("alerta.criado", &alert)
	return &alert, nil
}

func ListAlerts(offset, limit int) ([]models.Alert, error) {
	alerts := make([]models.Alert, 0)
	err := config.DB.Offset(offset).Limit(limit).Order("id").Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func GetAlert(id uint) (*models.Alert, error) {
	var alert models.Alert
	if err := config.DB.First(&alert, id).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

// UpdateAlertStatus sets the status field. Any string is accepted; there is
// no transition graph. The owner is notified best-effort.
func UpdateAlertStatus(id uint, status string) (*models.Alert, error) {
	var alert models.Alert
	if err := config.DB.First(&alert, id).Error; err != nil {
		return nil, err
	}

	alert.Status = status
	if err := config.DB.Model(&alert).Update("status", status).Error; err != nil {
		return nil, err
	}

	emitAlertEvent("alerta.status", &alert)
	notifyStatusChange(&alert)

	var owner models.User
	if err := config.DB.First(&owner, alert.UserID).Error; err == nil && owner.Email != "" {
		go func(email, title, status string) {
			if err := utils.SendStatusUpdateEmail(email, title, status); err != nil {
				log.Printf("status email to %s failed: %v", email, err)
			}
		}(owner.Email, alert.Title, status)
	}

	return &alert, nil
}

func DeleteAlert(id uint) error {
	var alert models.Alert
	if err := config.DB.First(&alert, id).Error; err != nil {
		return err
	}
	return config.DB.Delete(&alert).Error
}
