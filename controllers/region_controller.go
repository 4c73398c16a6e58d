package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscofornicola/rede-alerta/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegiaoInput struct {
	Nome string `json:"nome" binding:"required"`
}

func CreateRegiao(c *gin.Context) {
	var input RegiaoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, err := services.CreateRegion(input.Nome)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, region)
}

func ListRegioes(c *gin.Context) {
	regions, err := services.ListRegions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, regions)
}

func GetRegiao(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	region, err := services.GetRegion(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Região não encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, region)
}

func UpdateRegiao(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input RegiaoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, err := services.UpdateRegion(id, input.Nome)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Região não encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, region)
}

func DeleteRegiao(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := services.DeleteRegion(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Região não encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Região deletada"})
}
