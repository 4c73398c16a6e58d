package main

import (
	"log"
	"os"

	"github.com/franciscofornicola/rede-alerta/config"
	"github.com/franciscofornicola/rede-alerta/routes"
	"github.com/franciscofornicola/rede-alerta/services"
	"github.com/franciscofornicola/rede-alerta/utils"
)

func main() {
	config.InitDB()
	config.SeedAchievements()
	utils.InitS3()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
		push = nil
	}

	services.InitAlertNotifiers(hub, push)

	r := routes.SetupRouter(hub, push)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
