package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"skenk/pkg/utils"
)

type Config struct {
	SecretKey string
	BaseURL   string
}

// Client is a thin authenticated wrapper around the Paystack REST API. Every
// call either yields a decoded envelope or a *utils.GatewayError; no retries
// are performed.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

type InitializeRequest struct {
	Email       string                 `json:"email"`
	Amount      int                    `json:"amount"`
	Plan        string                 `json:"plan,omitempty"`
	CallbackURL string                 `json:"callback_url,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type InitializeData struct {
	AccessCode       string `json:"access_code"`
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}

type InitializeResponse struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    InitializeData `json:"data"`
}

type Customer struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CustomerCode string `json:"customer_code"`
	Phone        string `json:"phone"`
}

// Transaction is the provider's full verify record. It contains card
// authorization data and must pass through the response normalizer before
// reaching a browser.
type Transaction struct {
	ID              int64                  `json:"id"`
	Reference       string                 `json:"reference"`
	Amount          int                    `json:"amount"`
	Currency        string                 `json:"currency"`
	Status          string                 `json:"status"`
	GatewayResponse string                 `json:"gateway_response"`
	PaidAt          string                 `json:"paid_at"`
	Customer        Customer               `json:"customer"`
	Plan            interface{}            `json:"plan"`
	Authorization   map[string]interface{} `json:"authorization"`
	Metadata        map[string]interface{} `json:"metadata"`
}

type VerifyResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    Transaction `json:"data"`
}

type SubscriptionPlan struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PlanCode    string `json:"plan_code"`
	Description string `json:"description"`
	Amount      int    `json:"amount"`
	Interval    string `json:"interval"`
	Currency    string `json:"currency"`
}

type Subscription struct {
	ID               int64                  `json:"id"`
	Status           string                 `json:"status"`
	SubscriptionCode string                 `json:"subscription_code"`
	EmailToken       string                 `json:"email_token"`
	Amount           int                    `json:"amount"`
	CronExpression   string                 `json:"cron_expression"`
	NextPaymentDate  string                 `json:"next_payment_date"`
	OpenInvoice      interface{}            `json:"open_invoice"`
	Plan             SubscriptionPlan       `json:"plan"`
	Authorization    map[string]interface{} `json:"authorization"`
	Customer         Customer               `json:"customer"`
	CreatedAt        string                 `json:"created_at"`
	UpdatedAt        string                 `json:"updated_at"`
}

type SubscriptionResponse struct {
	Status  bool         `json:"status"`
	Message string       `json:"message"`
	Data    Subscription `json:"data"`
}

type ManagementLinkData struct {
	Link string `json:"link"`
}

type ManagementLinkResponse struct {
	Status  bool               `json:"status"`
	Message string             `json:"message"`
	Data    ManagementLinkData `json:"data"`
}

type CustomerRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type SubscriptionRequest struct {
	Customer      string `json:"customer"`
	Plan          string `json:"plan"`
	Authorization string `json:"authorization,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
}

type GenericResponse struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// InitializeTransaction starts a hosted checkout. Amount must already be in
// minor currency units (whole units x 100).
func (c *Client) InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeResponse, error) {
	var out InitializeResponse
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifyResponse, error) {
	var out VerifyResponse
	path := "/transaction/verify/" + url.PathEscape(reference)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchSubscription(ctx context.Context, code string) (*SubscriptionResponse, error) {
	var out SubscriptionResponse
	path := "/subscription/" + url.PathEscape(code)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateSubscriptionManagementLink(ctx context.Context, code string) (*ManagementLinkResponse, error) {
	var out ManagementLinkResponse
	path := "/subscription/" + url.PathEscape(code) + "/manage/link"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req CustomerRequest) (*GenericResponse, error) {
	var out GenericResponse
	if err := c.do(ctx, http.MethodPost, "/customer", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSubscription(ctx context.Context, req SubscriptionRequest) (*GenericResponse, error) {
	var out GenericResponse
	if err := c.do(ctx, http.MethodPost, "/subscription", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &utils.GatewayError{Message: fmt.Sprintf("failed to encode request for %s: %v", path, err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return &utils.GatewayError{Message: fmt.Sprintf("failed to build request for %s: %v", path, err)}
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &utils.GatewayError{Message: fmt.Sprintf("request to %s failed: %v", path, err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &utils.GatewayError{Message: fmt.Sprintf("failed to read response from %s: %v", path, err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &utils.GatewayError{
			Message:    fmt.Sprintf("paystack %s returned %d: %s", path, resp.StatusCode, string(respBody)),
			StatusCode: resp.StatusCode,
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &utils.GatewayError{Message: fmt.Sprintf("failed to decode response from %s: %v", path, err)}
	}

	return nil
}
