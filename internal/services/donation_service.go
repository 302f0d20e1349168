package services

import (
	"context"
	"strings"

	"skenk/internal/config"
	"skenk/internal/gateway"
	"skenk/internal/models/request_models"
	"skenk/internal/models/response_models"
	"skenk/internal/repositories"
	"skenk/pkg/utils"
)

// PaystackAPI is the slice of the gateway client the orchestrator uses.
type PaystackAPI interface {
	InitializeTransaction(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeResponse, error)
	VerifyTransaction(ctx context.Context, reference string) (*gateway.VerifyResponse, error)
	FetchSubscription(ctx context.Context, code string) (*gateway.SubscriptionResponse, error)
	GenerateSubscriptionManagementLink(ctx context.Context, code string) (*gateway.ManagementLinkResponse, error)
}

type DonationServiceInterface interface {
	InitializeDonation(ctx context.Context, req request_models.InitializeDonationRequest) (*response_models.InitializeDonationResponse, error)
	VerifyDonation(ctx context.Context, reference string) (*response_models.SafeTransaction, error)
	FetchSubscription(ctx context.Context, code string) (*gateway.Subscription, error)
	GenerateManagementLink(ctx context.Context, code string) (string, error)
	ListPlans() []response_models.PlanResponse
}

type DonationService struct {
	planRepo   repositories.IPlanRepository
	paystack   PaystackAPI
	appBaseURL string
}

func NewDonationService(planRepo repositories.IPlanRepository, paystack PaystackAPI, cfg config.Config) DonationServiceInterface {
	return &DonationService{
		planRepo:   planRepo,
		paystack:   paystack,
		appBaseURL: cfg.AppBaseURL,
	}
}

// InitializeDonation resolves the plan, builds the provider initialization
// request and returns the redirect data. No local record is kept; the
// provider reference is the only correlation key.
func (d *DonationService) InitializeDonation(ctx context.Context, req request_models.InitializeDonationRequest) (*response_models.InitializeDonationResponse, error) {
	plan, err := d.planRepo.GetPlanByID(req.PlanID)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, &utils.BadRequestError{Message: "Email is required"}
	}

	init := gateway.InitializeRequest{
		Email:       email,
		Amount:      plan.Amount * 100,
		CallbackURL: d.appBaseURL + "/donation/callback",
		Metadata: map[string]interface{}{
			"plan_id":       plan.ID,
			"plan_name":     plan.Name,
			"plan_interval": string(plan.Interval),
			"first_name":    strings.TrimSpace(req.FirstName),
			"last_name":     strings.TrimSpace(req.LastName),
			"phone":         req.Phone,
		},
	}

	// One-off donations are single charges, never subscriptions. The plan
	// code rides along only for recurring intervals.
	if plan.Interval != repositories.IntervalOneOff && plan.PlanCode != "" {
		init.Plan = plan.PlanCode
	}

	resp, err := d.paystack.InitializeTransaction(ctx, init)
	if err != nil {
		return nil, err
	}

	if !resp.Status {
		return nil, &utils.BadRequestError{Message: messageOr(resp.Message, "Failed to initialize transaction")}
	}

	return &response_models.InitializeDonationResponse{
		AccessCode:       resp.Data.AccessCode,
		AuthorizationURL: resp.Data.AuthorizationURL,
		Reference:        resp.Data.Reference,
	}, nil
}

// VerifyDonation asks the provider for the transaction behind a reference.
// It is read-only: verifying the same reference twice returns the same
// outcome while the remote transaction is unchanged. A transaction whose
// status is not "success" fails regardless of which HTTP verb reached us.
func (d *DonationService) VerifyDonation(ctx context.Context, reference string) (*response_models.SafeTransaction, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, &utils.BadRequestError{Message: "Transaction reference is required"}
	}

	resp, err := d.paystack.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, err
	}

	if !resp.Status {
		return nil, &utils.BadRequestError{Message: messageOr(resp.Message, "Failed to verify transaction")}
	}

	txn := resp.Data
	if txn.Status != "success" {
		return nil, &utils.TransactionFailedError{
			Status:          messageOr(txn.Status, "unknown"),
			GatewayResponse: messageOr(txn.GatewayResponse, "No gateway response"),
		}
	}

	safe := response_models.NewSafeTransaction(txn)
	return &safe, nil
}

func (d *DonationService) FetchSubscription(ctx context.Context, code string) (*gateway.Subscription, error) {
	if strings.TrimSpace(code) == "" {
		return nil, &utils.BadRequestError{Message: "Subscription code is required"}
	}

	resp, err := d.paystack.FetchSubscription(ctx, code)
	if err != nil {
		return nil, err
	}

	if !resp.Status {
		return nil, &utils.BadRequestError{Message: messageOr(resp.Message, "Failed to fetch subscription")}
	}

	return &resp.Data, nil
}

func (d *DonationService) GenerateManagementLink(ctx context.Context, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", &utils.BadRequestError{Message: "Subscription code is required"}
	}

	resp, err := d.paystack.GenerateSubscriptionManagementLink(ctx, code)
	if err != nil {
		return "", err
	}

	if !resp.Status {
		return "", &utils.BadRequestError{Message: messageOr(resp.Message, "Failed to generate management link")}
	}

	return resp.Data.Link, nil
}

func (d *DonationService) ListPlans() []response_models.PlanResponse {
	plans := d.planRepo.ListPlans()

	out := make([]response_models.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		out = append(out, response_models.NewPlanResponse(plan))
	}
	return out
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
