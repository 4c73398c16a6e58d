package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/franciscofornicola/rede-alerta/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UsuarioInput struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

type UsuarioUpdateInput struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func CreateUsuario(c *gin.Context) {
	var input UsuarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.CreateUser(services.UserInput{
		Name:     input.Nome,
		Email:    input.Email,
		Password: input.Senha,
	})
	if err != nil {
		if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "duplicate") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Este e-mail já está cadastrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func ListUsuarios(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users, err := services.ListUsers(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func GetUsuario(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := services.GetUser(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

func UpdateUsuario(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input UsuarioUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUser(id, services.UserInput{
		Name:     input.Nome,
		Email:    input.Email,
		Password: input.Senha,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

func DeleteUsuario(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := services.DeleteUser(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuário deletado"})
}

// GetPerfil returns the user together with resolved achievements and level
// progress.
func GetPerfil(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	profile, err := services.GetUserProfile(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GrantPontos credits points directly. Accepts `pontos` as a query param or
// in the JSON body. This path does not re-run achievement evaluation.
func GrantPontos(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	raw := c.Query("pontos")
	if raw == "" {
		var body struct {
			Pontos *int `json:"pontos"`
		}
		if err := c.ShouldBindJSON(&body); err == nil && body.Pontos != nil {
			raw = strconv.Itoa(*body.Pontos)
		}
	}

	amount, err := strconv.Atoi(raw)
	if err != nil || amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pontos deve ser um inteiro não negativo"})
		return
	}

	user, err := services.AwardPoints(id, amount)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GrantConquista manually assigns an achievement, crediting its point
// requirement. 400 if the user already holds it.
func GrantConquista(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	achievementID, ok := parseID(c, "conquistaId")
	if !ok {
		return
	}

	user, err := services.GrantAchievement(userID, achievementID)
	if errors.Is(err, services.ErrAchievementHeld) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário ou conquista não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
