package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"skenk/internal/gateway"
	"skenk/internal/models/request_models"
	"skenk/internal/models/response_models"
	"skenk/internal/services"
	"skenk/pkg/utils"
)

type MockDonationService struct {
	InitializeDonationFunc     func(ctx context.Context, req request_models.InitializeDonationRequest) (*response_models.InitializeDonationResponse, error)
	VerifyDonationFunc         func(ctx context.Context, reference string) (*response_models.SafeTransaction, error)
	FetchSubscriptionFunc      func(ctx context.Context, code string) (*gateway.Subscription, error)
	GenerateManagementLinkFunc func(ctx context.Context, code string) (string, error)
	ListPlansFunc              func() []response_models.PlanResponse
}

func (m *MockDonationService) InitializeDonation(ctx context.Context, req request_models.InitializeDonationRequest) (*response_models.InitializeDonationResponse, error) {
	if m.InitializeDonationFunc != nil {
		return m.InitializeDonationFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDonationService) VerifyDonation(ctx context.Context, reference string) (*response_models.SafeTransaction, error) {
	if m.VerifyDonationFunc != nil {
		return m.VerifyDonationFunc(ctx, reference)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDonationService) FetchSubscription(ctx context.Context, code string) (*gateway.Subscription, error) {
	if m.FetchSubscriptionFunc != nil {
		return m.FetchSubscriptionFunc(ctx, code)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDonationService) GenerateManagementLink(ctx context.Context, code string) (string, error) {
	if m.GenerateManagementLinkFunc != nil {
		return m.GenerateManagementLinkFunc(ctx, code)
	}
	return "", errors.New("not implemented")
}

func (m *MockDonationService) ListPlans() []response_models.PlanResponse {
	if m.ListPlansFunc != nil {
		return m.ListPlansFunc()
	}
	return nil
}

func newDonationRouter(service services.DonationServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	controller := NewDonationController(service)
	group := r.Group("/subscription")
	group.POST("/initialize", controller.InitializeDonation)
	group.GET("/verify", controller.VerifyDonation)
	group.POST("/verify", controller.VerifyDonationPost)
	group.POST("/manage", controller.GenerateManagementLink)
	group.GET("/manage", controller.FetchSubscription)
	group.GET("/plans", controller.ListPlans)

	return r
}

func TestInitializeDonationEndpoint(t *testing.T) {
	service := &MockDonationService{
		InitializeDonationFunc: func(ctx context.Context, req request_models.InitializeDonationRequest) (*response_models.InitializeDonationResponse, error) {
			return &response_models.InitializeDonationResponse{
				AccessCode:       "ac_123",
				AuthorizationURL: "https://checkout.paystack.com/ac_123",
				Reference:        "ref123",
			}, nil
		},
	}
	router := newDonationRouter(service)

	body := `{"email": "jan.marais@skenker.co.za", "planId": "monthly-100"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscription/initialize", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["access_code"] != "ac_123" || resp["authorization_url"] == "" || resp["reference"] != "ref123" {
		t.Errorf("response = %+v", resp)
	}
}

func TestInitializeDonationEndpointBadPayload(t *testing.T) {
	router := newDonationRouter(&MockDonationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscription/initialize", bytes.NewBufferString(`{`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestInitializeDonationEndpointMissingEmail(t *testing.T) {
	router := newDonationRouter(&MockDonationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscription/initialize", bytes.NewBufferString(`{"planId": "monthly-100"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestInitializeDonationEndpointInvalidDonor(t *testing.T) {
	router := newDonationRouter(&MockDonationService{})

	body := `{"email": "jan.marais@skenker.co.za", "planId": "monthly-100", "firstName": "Jan", "lastName": "Marais", "phone": "1234567890"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscription/initialize", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	fields, ok := resp.Data.(map[string]interface{})
	if !ok || fields["phone"] == nil {
		t.Errorf("expected a phone field error, got %+v", resp.Data)
	}
}

func TestInitializeDonationEndpointNormalizesDonor(t *testing.T) {
	var gotReq request_models.InitializeDonationRequest
	service := &MockDonationService{
		InitializeDonationFunc: func(ctx context.Context, req request_models.InitializeDonationRequest) (*response_models.InitializeDonationResponse, error) {
			gotReq = req
			return &response_models.InitializeDonationResponse{}, nil
		},
	}
	router := newDonationRouter(service)

	body := `{"email": "jan.marais@skenker.co.za", "planId": "monthly-100", "firstName": " Jan ", "lastName": " Marais ", "phone": "082 832 2321"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscription/initialize", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if gotReq.FirstName != "Jan" || gotReq.LastName != "Marais" || gotReq.Phone != "0828322321" {
		t.Errorf("service received %+v, want normalized donor", gotReq)
	}
}

func TestVerifyDonationEndpointReferencePrecedence(t *testing.T) {
	var gotReference string
	service := &MockDonationService{
		VerifyDonationFunc: func(ctx context.Context, reference string) (*response_models.SafeTransaction, error) {
			gotReference = reference
			return &response_models.SafeTransaction{Reference: reference}, nil
		},
	}
	router := newDonationRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/subscription/verify?reference=ref123&trxref=legacy456", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if gotReference != "ref123" {
		t.Errorf("reference = %q, want reference to win over trxref", gotReference)
	}
}

func TestVerifyDonationEndpointLegacyTrxref(t *testing.T) {
	var gotReference string
	service := &MockDonationService{
		VerifyDonationFunc: func(ctx context.Context, reference string) (*response_models.SafeTransaction, error) {
			gotReference = reference
			return &response_models.SafeTransaction{Reference: reference}, nil
		},
	}
	router := newDonationRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/subscription/verify?trxref=legacy456", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotReference != "legacy456" {
		t.Errorf("reference = %q, want trxref fallback", gotReference)
	}
}

func TestVerifyDonationEndpointMissingReference(t *testing.T) {
	router := newDonationRouter(&MockDonationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/subscription/verify", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestVerifyDonationEndpointEnvelope(t *testing.T) {
	service := &MockDonationService{
		VerifyDonationFunc: func(ctx context.Context, reference string) (*response_models.SafeTransaction, error) {
			return &response_models.SafeTransaction{
				Amount:    10000,
				Currency:  "ZAR",
				Reference: reference,
				Customer:  response_models.SafeCustomer{Email: "a@b.co"},
				Metadata:  response_models.SafeMetadata{PlanInterval: "monthly"},
			}, nil
		},
	}
	router := newDonationRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscription/verify", bytes.NewBufferString(`{"reference": "ref123"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Status      string                 `json:"status"`
		Transaction map[string]interface{} `json:"transaction"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Transaction["reference"] != "ref123" {
		t.Errorf("transaction = %+v", resp.Transaction)
	}
	if _, ok := resp.Transaction["authorization"]; ok {
		t.Error("authorization leaked into the client response")
	}
}

func TestVerifyDonationEndpointFailedTransaction(t *testing.T) {
	service := &MockDonationService{
		VerifyDonationFunc: func(ctx context.Context, reference string) (*response_models.SafeTransaction, error) {
			return nil, &utils.TransactionFailedError{Status: "failed", GatewayResponse: "Declined"}
		},
	}
	router := newDonationRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/subscription/verify?reference=ref123", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	detail, ok := resp.Data.(map[string]interface{})
	if !ok || detail["status"] != "failed" || detail["gateway_response"] != "Declined" {
		t.Errorf("error detail = %+v", resp.Data)
	}
}

func TestVerifyDonationEndpointGatewayError(t *testing.T) {
	service := &MockDonationService{
		VerifyDonationFunc: func(ctx context.Context, reference string) (*response_models.SafeTransaction, error) {
			return nil, &utils.GatewayError{Message: "connection refused"}
		},
	}
	router := newDonationRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/subscription/verify?reference=ref123", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("connection refused")) {
		t.Error("transport detail leaked into the client response")
	}
}

func TestGenerateManagementLinkEndpoint(t *testing.T) {
	service := &MockDonationService{
		GenerateManagementLinkFunc: func(ctx context.Context, code string) (string, error) {
			return "https://paystack.com/manage/sub", nil
		},
	}
	router := newDonationRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscription/manage", bytes.NewBufferString(`{"subscription_code": "SUB_abc"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["link"] != "https://paystack.com/manage/sub" {
		t.Errorf("response = %+v", resp)
	}
}

func TestGenerateManagementLinkEndpointMissingCode(t *testing.T) {
	router := newDonationRouter(&MockDonationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscription/manage", bytes.NewBufferString(`{}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestFetchSubscriptionEndpoint(t *testing.T) {
	service := &MockDonationService{
		FetchSubscriptionFunc: func(ctx context.Context, code string) (*gateway.Subscription, error) {
			return &gateway.Subscription{SubscriptionCode: code, Status: "active"}, nil
		},
	}
	router := newDonationRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/subscription/manage?subscription_code=SUB_abc", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["subscription_code"] != "SUB_abc" {
		t.Errorf("response = %+v", resp)
	}
}

func TestListPlansEndpoint(t *testing.T) {
	service := &MockDonationService{
		ListPlansFunc: func() []response_models.PlanResponse {
			return []response_models.PlanResponse{
				{ID: "monthly-100", Name: "R100 Monthly", Amount: 100, DisplayAmount: "R100", Currency: "ZAR", Interval: "monthly"},
			}
		},
	}
	router := newDonationRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/subscription/plans", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Plans []response_models.PlanResponse `json:"plans"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Plans) != 1 || resp.Plans[0].ID != "monthly-100" {
		t.Errorf("plans = %+v", resp.Plans)
	}
}
