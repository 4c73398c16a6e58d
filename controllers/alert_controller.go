package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/franciscofornicola/rede-alerta/services"
	"github.com/franciscofornicola/rede-alerta/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RelatoInput struct {
	Titulo         string  `json:"titulo"`
	Tipo           string  `json:"tipo" binding:"required"`
	Descricao      string  `json:"descricao" binding:"required"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DataOcorrencia string  `json:"data_ocorrencia"`
	FotoBase64     string  `json:"foto_base64"`
}

type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return 0, false
	}
	return uint(id), true
}

// CreateAlerta registers a citizen report. The submitter comes from the
// Bearer token; the fixed point award and achievement evaluation happen in
// the service.
func CreateAlerta(c *gin.Context) {
	uid := c.GetUint("userID")

	var input RelatoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var occurredAt time.Time
	if input.DataOcorrencia != "" {
		t, err := time.Parse(time.RFC3339, input.DataOcorrencia)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "data_ocorrencia inválida, use RFC3339"})
			return
		}
		occurredAt = t
	}

	var photoURL string
	if input.FotoBase64 != "" {
		data, contentType, err := utils.DecodeBase64Image(input.FotoBase64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		labels, err := utils.ModerateImage(data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao analisar a foto"})
			return
		}
		if len(labels) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "foto rejeitada pela moderação", "labels": labels})
			return
		}

		photoURL, err = utils.UploadAlertPhoto(data, contentType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao enviar a foto"})
			return
		}
	}

	alert, err := services.CreateAlert(uid, services.AlertInput{
		Title:       input.Titulo,
		Type:        input.Tipo,
		Description: input.Descricao,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		OccurredAt:  occurredAt,
		PhotoURL:    photoURL,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, alert)
}

func ListAlertas(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	alerts, err := services.ListAlerts(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func GetAlerta(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	alert, err := services.GetAlert(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alerta não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alert)
}

func UpdateAlertaStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := services.UpdateAlertStatus(id, input.Status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alerta não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alert)
}

func DeleteAlerta(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := services.DeleteAlert(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alerta não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alerta deletado"})
}
