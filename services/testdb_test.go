package services

import (
	"path/filepath"
	"testing"

	"github.com/franciscofornicola/rede-alerta/config"
	"github.com/franciscofornicola/rede-alerta/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// setupTestDB points config.DB at a fresh sqlite database for the test.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        filepath.Join(t.TempDir(), "rede_alerta_test.db"),
	}, &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
}

func createTestUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user, err := CreateUser(UserInput{Name: name, Email: email, Password: "senha123"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestAchievement(t *testing.T, name string, pointsRequired int) *models.Achievement {
	t.Helper()
	a := models.Achievement{Name: name, Description: name, PointsRequired: pointsRequired}
	if err := config.DB.Create(&a).Error; err != nil {
		t.Fatalf("create achievement: %v", err)
	}
	return &a
}

func countHoldings(t *testing.T, userID, achievementID uint) int64 {
	t.Helper()
	var n int64
	err := config.DB.Model(&models.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		Count(&n).Error
	if err != nil {
		t.Fatalf("count holdings: %v", err)
	}
	return n
}

func reloadUser(t *testing.T, id uint) *models.User {
	t.Helper()
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	return &user
}
