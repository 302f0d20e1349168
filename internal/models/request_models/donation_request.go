package request_models

type InitializeDonationRequest struct {
	Email     string `json:"email" binding:"required"`
	PlanID    string `json:"planId" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type VerifyDonationRequest struct {
	Reference string `json:"reference"`
}

type ManageSubscriptionRequest struct {
	SubscriptionCode string `json:"subscription_code"`
}
