package controllers

import (
	"net/http"

	"github.com/franciscofornicola/rede-alerta/services"

	"github.com/gin-gonic/gin"
)

func ListConquistas(c *gin.Context) {
	catalog, err := services.ListAchievements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, catalog)
}
