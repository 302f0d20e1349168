package response_models

import (
	"skenk/internal/gateway"
	"skenk/internal/repositories"
	"skenk/pkg/utils"
)

type InitializeDonationResponse struct {
	AccessCode       string `json:"access_code"`
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}

type SafeCustomer struct {
	Email string `json:"email"`
}

type SafeMetadata struct {
	PlanInterval interface{} `json:"plan_interval"`
}

// SafeTransaction is the allow-listed projection of a provider transaction.
// Any field not named here stays server-side; new provider fields default to
// excluded.
type SafeTransaction struct {
	Amount    int          `json:"amount"`
	Currency  string       `json:"currency"`
	Reference string       `json:"reference"`
	Plan      interface{}  `json:"plan"`
	Customer  SafeCustomer `json:"customer"`
	Metadata  SafeMetadata `json:"metadata"`
}

func NewSafeTransaction(txn gateway.Transaction) SafeTransaction {
	var planInterval interface{}
	if txn.Metadata != nil {
		planInterval = txn.Metadata["plan_interval"]
	}

	return SafeTransaction{
		Amount:    txn.Amount,
		Currency:  txn.Currency,
		Reference: txn.Reference,
		Plan:      txn.Plan,
		Customer:  SafeCustomer{Email: txn.Customer.Email},
		Metadata:  SafeMetadata{PlanInterval: planInterval},
	}
}

type PlanResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Amount        int    `json:"amount"`
	DisplayAmount string `json:"display_amount"`
	Currency      string `json:"currency"`
	Interval      string `json:"interval"`
	Description   string `json:"description,omitempty"`
}

func NewPlanResponse(plan repositories.DonationPlan) PlanResponse {
	return PlanResponse{
		ID:            plan.ID,
		Name:          plan.Name,
		Amount:        plan.Amount,
		DisplayAmount: utils.FormatAmount(plan.Amount),
		Currency:      plan.Currency,
		Interval:      string(plan.Interval),
		Description:   plan.Description,
	}
}
