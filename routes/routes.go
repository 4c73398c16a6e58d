package routes

import (
	"net/http"

	"github.com/franciscofornicola/rede-alerta/controllers"
	"github.com/franciscofornicola/rede-alerta/middlewares"
	"github.com/franciscofornicola/rede-alerta/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, ps *services.PushService) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Bem-vindo ao Backend Rede Alerta!"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	alertas := r.Group("/alertas")
	{
		alertas.POST("", middlewares.AuthMiddleware(), middlewares.RateLimiter(2, 10), controllers.CreateAlerta)
		alertas.GET("", controllers.ListAlertas)
		alertas.GET("/:id", controllers.GetAlerta)
		alertas.PUT("/:id/status", controllers.UpdateAlertaStatus)
		alertas.DELETE("/:id", controllers.DeleteAlerta)
	}

	usuarios := r.Group("/usuarios")
	{
		usuarios.POST("", controllers.CreateUsuario)
		usuarios.GET("", controllers.ListUsuarios)
		usuarios.GET("/:id", controllers.GetUsuario)
		usuarios.PUT("/:id", controllers.UpdateUsuario)
		usuarios.DELETE("/:id", controllers.DeleteUsuario)
		usuarios.GET("/:id/perfil", controllers.GetPerfil)
		usuarios.POST("/:id/pontos", controllers.GrantPontos)
		usuarios.POST("/:id/conquistas/:conquistaId", controllers.GrantConquista)
	}

	regioes := r.Group("/regioes")
	{
		regioes.POST("", controllers.CreateRegiao)
		regioes.GET("", controllers.ListRegioes)
		regioes.GET("/:id", controllers.GetRegiao)
		regioes.PUT("/:id", controllers.UpdateRegiao)
		regioes.DELETE("/:id", controllers.DeleteRegiao)
	}

	r.GET("/conquistas", controllers.ListConquistas)

	dc := controllers.NewDeviceController(ps)
	r.POST("/dispositivos", middlewares.AuthMiddleware(), dc.Register)

	rc := controllers.NewRealtimeController(rt)
	r.GET("/ws/alertas", rc.AlertsWS)

	return r
}
