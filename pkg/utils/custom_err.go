package utils

import "errors"

var (
	ErrInvalidPlan = errors.New("invalid plan")
)

// BadRequestError carries a message that is safe to show to the client.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// TransactionFailedError is returned when the provider verified the
// transaction but its status is not "success".
type TransactionFailedError struct {
	Status          string
	GatewayResponse string
}

func (e *TransactionFailedError) Error() string {
	return "transaction was not successful"
}

// GatewayError covers transport failures, non-2xx provider responses and
// response-shape mismatches. StatusCode is zero when the failure happened
// before an HTTP status was received.
type GatewayError struct {
	Message    string
	StatusCode int
}

func (e *GatewayError) Error() string {
	return e.Message
}
