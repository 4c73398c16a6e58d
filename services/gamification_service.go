package services

import (
	"errors"
	"time"

	"github.com/franciscofornicola/rede-alerta/config"
	"github.com/franciscofornicola/rede-alerta/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PointsPerAlert is credited to the submitting user on every alert creation.
const PointsPerAlert = 10

// ErrAchievementHeld is returned by GrantAchievement when the user already
// holds the achievement.
var ErrAchievementHeld = errors.New("usuário já possui esta conquista")

// LevelForPoints derives the user's level from their point total.
func LevelForPoints(points int) int {
	return points/100 + 1
}

// PointsForNextLevel is the point total at which the user reaches the next
// level.
func PointsForNextLevel(points int) int {
	return LevelForPoints(points) * 100
}

// AwardPoints credits points to a user and recomputes their level. It does
// NOT re-run achievement evaluation; only the alert-creation path does.
func AwardPoints(userID uint, amount int) (*models.User, error) {
	var user models.User
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		return addPoints(tx, &user, amount)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func addPoints(tx *gorm.DB, user *models.User, amount int) error {
	user.Points += amount
	user.Level = LevelForPoints(user.Points)
	return tx.Model(user).Updates(map[string]interface{}{
		"points": user.Points,
		"level":  user.Level,
	}).Error
}

// EvaluateAchievements scans the catalog and records every achievement the
// user now qualifies for. The holding insert is ON CONFLICT DO NOTHING over
// the composite primary key, so concurrent evaluations for the same user
// cannot produce duplicate holdings.
func EvaluateAchievements(tx *gorm.DB, user *models.User) error {
	var catalog []models.Achievement
	if err := tx.Find(&catalog).Error; err != nil {
		return err
	}

	for _, a := range catalog {
		if a.PointsRequired > user.Points {
			continue
		}
		holding := models.UserAchievement{
			UserID:        user.ID,
			AchievementID: a.ID,
			AwardedAt:     time.Now(),
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&holding).Error; err != nil {
			return err
		}
	}
	return nil
}

// GrantAchievement manually assigns an achievement to a user. Unlike the
// automatic evaluation path, it also credits the achievement's point
// requirement and recomputes the level. Returns ErrAchievementHeld if the
// user already holds it.
func GrantAchievement(userID, achievementID uint) (*models.User, error) {
	var user models.User
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var achievement models.Achievement
		if err := tx.First(&achievement, achievementID).Error; err != nil {
			return err
		}
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		holding := models.UserAchievement{
			UserID:        user.ID,
			AchievementID: achievement.ID,
			AwardedAt:     time.Now(),
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&holding)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAchievementHeld
		}

		return addPoints(tx, &user, achievement.PointsRequired)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAchievements returns the full catalog.
func ListAchievements() ([]models.Achievement, error) {
	catalog := make([]models.Achievement, 0)
	if err := config.DB.Find(&catalog).Error; err != nil {
		return nil, err
	}
	return catalog, nil
}

// AchievementsForUser resolves the achievements a user holds.
func AchievementsForUser(userID uint) ([]models.Achievement, error) {
	achievements := make([]models.Achievement, 0)
	err := config.DB.
		Joins("JOIN user_achievements ON user_achievements.achievement_id = achievements.id").
		Where("user_achievements.user_id = ?", userID).
		Find(&achievements).Error
	if err != nil {
		return nil, err
	}
	return achievements, nil
}
