package services

import (
	"github.com/franciscofornicola/rede-alerta/config"
	"github.com/franciscofornicola/rede-alerta/models"
	"github.com/franciscofornicola/rede-alerta/utils"
)

type UserInput struct {
	Name     string
	Email    string
	Password string
}

// CreateUser registers a user. The password is always bcrypt-hashed before
// it touches the database.
func CreateUser(in UserInput) (*models.User, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Points:       0,
		Level:        1,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func ListUsers(offset, limit int) ([]models.User, error) {
	users := make([]models.User, 0)
	err := config.DB.Offset(offset).Limit(limit).Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser changes name/email and, when a new password is submitted,
// rehashes it.
func UpdateUser(id uint, in UserInput) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func DeleteUser(id uint) error {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return err
	}
	return config.DB.Delete(&user).Error
}

// GetUserProfile returns the user together with their resolved achievement
// list and progress toward the next level.
func GetUserProfile(id uint) (map[string]interface{}, error) {
	user, err := GetUser(id)
	if err != nil {
		return nil, err
	}

	achievements, err := AchievementsForUser(user.ID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":                   user.ID,
		"nome":                 user.Name,
		"email":                user.Email,
		"pontos":               user.Points,
		"nivel":                user.Level,
		"pontos_proximo_nivel": PointsForNextLevel(user.Points),
		"conquistas":           achievements,
	}, nil
}
