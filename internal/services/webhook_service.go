package services

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"log"

	"skenk/internal/config"
	"skenk/pkg/utils"
)

const (
	EventSubscriptionCreate   = "subscription.create"
	EventSubscriptionDisable  = "subscription.disable"
	EventSubscriptionNotRenew = "subscription.not_renew"
	EventInvoiceCreate        = "invoice.create"
	EventInvoicePaymentFailed = "invoice.payment_failed"
	EventInvoiceUpdate        = "invoice.update"
	EventChargeSuccess        = "charge.success"
)

type WebhookEvent struct {
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data"`
}

// EventDispatcher receives authenticated lifecycle events. Implementations
// must not fail the HTTP response; persistence and notifications hang off
// this interface.
type EventDispatcher interface {
	Dispatch(event WebhookEvent)
}

type WebhookServiceInterface interface {
	Process(payload []byte, signature string) error
}

type WebhookService struct {
	secretKey  string
	dispatcher EventDispatcher
}

func NewWebhookService(cfg config.Config, dispatcher EventDispatcher) WebhookServiceInterface {
	return &WebhookService{
		secretKey:  cfg.PaystackSecretKey,
		dispatcher: dispatcher,
	}
}

// Process authenticates and dispatches one webhook delivery. The signature
// is checked against the raw payload bytes, before any parsing: a
// re-serialized body is not guaranteed byte-identical to what was signed.
func (w *WebhookService) Process(payload []byte, signature string) error {
	if signature == "" {
		return &utils.BadRequestError{Message: "Missing signature"}
	}

	if !w.verifySignature(payload, signature) {
		return &utils.BadRequestError{Message: "Invalid signature"}
	}

	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return &utils.BadRequestError{Message: "Invalid JSON payload"}
	}

	if event.Event == "" {
		return &utils.BadRequestError{Message: "Invalid webhook data"}
	}

	log.Printf("Received webhook event: %s", event.Event)
	w.dispatcher.Dispatch(event)

	return nil
}

func (w *WebhookService) verifySignature(payload []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(w.secretKey))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// LogDispatcher is the default dispatcher: every handler is a logging stub.
// Only non-sensitive data is logged.
type LogDispatcher struct{}

func (l *LogDispatcher) Dispatch(event WebhookEvent) {
	switch event.Event {
	case EventSubscriptionCreate:
		l.handleSubscriptionCreate(event.Data)
	case EventSubscriptionDisable:
		l.handleSubscriptionDisable(event.Data)
	case EventSubscriptionNotRenew:
		l.handleSubscriptionNotRenew(event.Data)
	case EventInvoiceCreate:
		l.handleInvoiceCreate(event.Data)
	case EventInvoicePaymentFailed:
		l.handleInvoicePaymentFailed(event.Data)
	case EventInvoiceUpdate:
		l.handleInvoiceUpdate(event.Data)
	case EventChargeSuccess:
		l.handleChargeSuccess(event.Data)
	default:
		log.Printf("Unhandled webhook event: %s", event.Event)
	}
}

func (l *LogDispatcher) handleSubscriptionCreate(_ map[string]interface{}) {
	log.Println("Subscription created - event processed successfully")
}

func (l *LogDispatcher) handleSubscriptionDisable(_ map[string]interface{}) {
	log.Println("Subscription disabled - event processed successfully")
}

func (l *LogDispatcher) handleSubscriptionNotRenew(_ map[string]interface{}) {
	log.Println("Subscription set to not renew - event processed successfully")
}

func (l *LogDispatcher) handleInvoiceCreate(_ map[string]interface{}) {
	log.Println("Invoice created - event processed successfully")
}

func (l *LogDispatcher) handleInvoicePaymentFailed(_ map[string]interface{}) {
	log.Println("Invoice payment failed - event processed successfully")
}

func (l *LogDispatcher) handleInvoiceUpdate(_ map[string]interface{}) {
	log.Println("Invoice updated - event processed successfully")
}

func (l *LogDispatcher) handleChargeSuccess(_ map[string]interface{}) {
	log.Println("Charge successful - event processed successfully")
}
