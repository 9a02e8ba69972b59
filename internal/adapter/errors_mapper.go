package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// APIError is the structured form of a non-2xx platform response. It carries
// the HTTP status and the platform's machine-readable error code, so callers
// classify failures with [errors.Is] instead of inspecting message text.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Code is the platform's machine-readable error code, e.g. "STATE_ERROR".
	// Empty when the platform returned no structured body.
	Code string
	// Detail is the human-readable description. Informational only: never
	// used for classification.
	Detail string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("http %d (%s): %s", e.Status, e.Code, e.Detail)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Detail)
}

// stateConflictCodes are the machine-readable codes both vendors use for
// "this field cannot change in the version's current lifecycle state".
var stateConflictCodes = map[string]bool{
	"STATE_ERROR":                      true,
	"STATE_ERROR.ENTITY_STATE_INVALID": true,
	"editAlreadyCommitted":             true,
}

// Is maps an APIError onto the package's sentinel errors, making
// errors.Is(err, ErrVersionStateConflict) and friends work across both
// platform vocabularies.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrVersionStateConflict:
		return e.Status == http.StatusConflict && stateConflictCodes[e.Code]
	case ErrBadRequest:
		return e.Status == http.StatusBadRequest
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrRateLimited:
		return e.Status == http.StatusTooManyRequests
	case ErrServerError:
		return e.Status >= http.StatusInternalServerError
	default:
		return false
	}
}

// appStoreErrorBody is the JSON:API error envelope of App Store Connect.
type appStoreErrorBody struct {
	Errors []struct {
		Status string `json:"status"`
		Code   string `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// mapAppStoreError converts a non-2xx App Store Connect response into an
// *APIError carrying the first error object's machine code.
func mapAppStoreError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode()}

	var body appStoreErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && len(body.Errors) > 0 {
		apiErr.Code = body.Errors[0].Code
		apiErr.Detail = body.Errors[0].Detail
		if apiErr.Detail == "" {
			apiErr.Detail = body.Errors[0].Title
		}
	}
	if apiErr.Detail == "" {
		apiErr.Detail = fallbackDetail(resp)
	}

	return apiErr
}

// googleErrorBody is the standard Google API error envelope.
type googleErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// mapGooglePlayError converts a non-2xx Google Play response into an
// *APIError. The per-error "reason" field is the machine code; the outer
// "status" enum is the fallback.
func mapGooglePlayError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode()}

	var body googleErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error.Code != 0 {
		if len(body.Error.Errors) > 0 {
			apiErr.Code = body.Error.Errors[0].Reason
		}
		if apiErr.Code == "" {
			apiErr.Code = body.Error.Status
		}
		apiErr.Detail = body.Error.Message
	}
	if apiErr.Detail == "" {
		apiErr.Detail = fallbackDetail(resp)
	}

	return apiErr
}

func fallbackDetail(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
