package services

import (
	"errors"

	"github.com/franciscofornicola/rede-alerta/models"
	"github.com/franciscofornicola/rede-alerta/utils"
)

func RegisterUser(name, email, password string) (*models.User, error) {
	return CreateUser(UserInput{Name: name, Email: email, Password: password})
}

// AuthenticateUser validates the credentials and returns a signed JWT.
func AuthenticateUser(email, password string) (string, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return "", errors.New("e-mail ou senha inválidos")
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", errors.New("e-mail ou senha inválidos")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
