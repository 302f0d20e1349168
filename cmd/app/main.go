package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"skenk/cmd/fx/config_fx"
	"skenk/cmd/fx/donation_fx"
	"skenk/cmd/fx/paystack_fx"
	"skenk/cmd/fx/plans_fx"
	"skenk/cmd/fx/webhook_fx"
	"skenk/internal/api/controllers"
	"skenk/internal/config"
	"skenk/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		plans_fx.Module,
		paystack_fx.Module,
		donation_fx.Module,
		webhook_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	donationController *controllers.DonationController,
	webhookController *controllers.WebhookController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, donationController, webhookController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	donationController *controllers.DonationController,
	webhookController *controllers.WebhookController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	subscriptionGroup := r.Group("/subscription")
	subscriptionGroup.POST("/initialize", donationController.InitializeDonation)
	subscriptionGroup.GET("/verify", donationController.VerifyDonation)
	subscriptionGroup.POST("/verify", donationController.VerifyDonationPost)
	subscriptionGroup.POST("/manage", donationController.GenerateManagementLink)
	subscriptionGroup.GET("/manage", donationController.FetchSubscription)
	subscriptionGroup.GET("/plans", donationController.ListPlans)

	r.POST("/webhooks/paystack", webhookController.HandlePaystackWebhook)
}
