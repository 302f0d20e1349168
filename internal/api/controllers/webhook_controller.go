package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"skenk/internal/services"
	"skenk/pkg/utils"
)

type WebhookController struct {
	webhookService services.WebhookServiceInterface
}

func NewWebhookController(webhookService services.WebhookServiceInterface) *WebhookController {
	return &WebhookController{
		webhookService: webhookService,
	}
}

// HandlePaystackWebhook authenticates the raw body against the
// x-paystack-signature header and acknowledges once dispatch succeeds.
func (w *WebhookController) HandlePaystackWebhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	signature := c.GetHeader("x-paystack-signature")

	if err := w.webhookService.Process(rawBody, signature); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
