package magiceden

import (
	"encoding/json"
	"fmt"

	"golang.org/x/xerrors"
)

// The api surfaces failures as a closed set of typed errors. Callers pick
// them apart with errors.As/errors.Is:
//
//   - *TransportError            the request never completed
//   - *ResponseParseError        the body did not match the shape expected
//     for its status code
//   - *ServerError               unrecognized non-2xx status, body verbatim
//   - *ErrorResponse             generic marketplace error body
//   - *BuyTokensErrorResponse    typed 400 body of the buy endpoint
//   - *OrderAlreadyFilledError   typed 410 body of the buy endpoint
//   - domain sentinel errors     client-local failures before any request

// TransportError wraps a failure to send the request or receive the
// response
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseParseError carries the offending body, the status actually
// received and the decode failure text for caller diagnostics
type ResponseParseError struct {
	Body       string
	StatusCode int
	Reason     string
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("body: %s error: %s", e.Body, e.Reason)
}

// ServerError is a non-2xx response the client does not attempt to decode
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("status code %d, body: %s", e.StatusCode, e.Body)
}

// ErrorResponse is the generic error body the marketplace documents
type ErrorResponse struct {
	Msg    string   `json:"msg"`
	Errors []string `json:"errors"`
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("msg: %s errors: %v", e.Msg, e.Errors)
}

// BuyTokensErrorResponse is the typed 400 body of the buy endpoint
type BuyTokensErrorResponse struct {
	StatusCode uint32 `json:"statusCode"`
	Reason     string `json:"error"`
	Message    string `json:"message"`
}

func (e *BuyTokensErrorResponse) Error() string {
	return fmt.Sprintf("status code: %d error: %s message: %s", e.StatusCode, e.Reason, e.Message)
}

// UnmarshalJSON rejects bodies missing any of the documented fields, so
// that malformed 400 responses fall through to ResponseParseError
func (e *BuyTokensErrorResponse) UnmarshalJSON(data []byte) error {
	var w struct {
		StatusCode *uint32 `json:"statusCode"`
		Reason     *string `json:"error"`
		Message    *string `json:"message"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.StatusCode == nil || w.Reason == nil || w.Message == nil {
		return xerrors.New("missing field statusCode, error or message")
	}
	e.StatusCode = *w.StatusCode
	e.Reason = *w.Reason
	e.Message = *w.Message
	return nil
}

// OrderAlreadyFilledError is the typed 410 body returned when a targeted
// order got filled before the buy could be built
type OrderAlreadyFilledError struct {
	StatusCode uint32 `json:"statusCode"`
	Reason     string `json:"error"`
	Message    string `json:"message"`
	Code       uint32 `json:"code"`
}

func (e *OrderAlreadyFilledError) Error() string {
	return fmt.Sprintf("already filled: statusCode=%d, error=%s, message=%s, code=%d", e.StatusCode, e.Reason, e.Message, e.Code)
}

func (e *OrderAlreadyFilledError) UnmarshalJSON(data []byte) error {
	var w struct {
		StatusCode *uint32 `json:"statusCode"`
		Reason     *string `json:"error"`
		Message    *string `json:"message"`
		Code       *uint32 `json:"code"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.StatusCode == nil || w.Reason == nil || w.Message == nil || w.Code == nil {
		return xerrors.New("missing field statusCode, error, message or code")
	}
	e.StatusCode = *w.StatusCode
	e.Reason = *w.Reason
	e.Message = *w.Message
	e.Code = *w.Code
	return nil
}
