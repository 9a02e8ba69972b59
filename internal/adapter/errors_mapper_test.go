package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// respond выполняет один запрос к серверу с заданным статусом и телом
func respond(t *testing.T, status int, body string) *resty.Response {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

// ── mapAppStoreError ─────────────────────────────────────────────────────────

func TestMapAppStoreError_Success(t *testing.T) {
	resp := respond(t, http.StatusOK, `{"data":[]}`)
	assert.NoError(t, mapAppStoreError(resp))
}

func TestMapAppStoreError_StateConflict(t *testing.T) {
	resp := respond(t, http.StatusConflict,
		`{"errors":[{"status":"409","code":"STATE_ERROR","title":"State error","detail":"cannot be modified"}]}`)

	err := mapAppStoreError(resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVersionStateConflict)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "STATE_ERROR", apiErr.Code)
	assert.Equal(t, "cannot be modified", apiErr.Detail)
}

func TestMapAppStoreError_ConflictWithoutStateCode(t *testing.T) {
	resp := respond(t, http.StatusConflict,
		`{"errors":[{"status":"409","code":"ENTITY_ERROR","title":"Conflict","detail":"duplicate"}]}`)

	err := mapAppStoreError(resp)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrVersionStateConflict)
}

func TestMapAppStoreError_TitleFallback(t *testing.T) {
	resp := respond(t, http.StatusBadRequest,
		`{"errors":[{"status":"400","code":"PARAMETER_ERROR.INVALID","title":"Invalid parameter"}]}`)

	var apiErr *APIError
	require.ErrorAs(t, mapAppStoreError(resp), &apiErr)
	assert.Equal(t, "Invalid parameter", apiErr.Detail)
}

func TestMapAppStoreError_UnstructuredBody(t *testing.T) {
	resp := respond(t, http.StatusServiceUnavailable, "upstream unavailable")

	err := mapAppStoreError(resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerError)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Code)
	assert.Equal(t, "upstream unavailable", apiErr.Detail)
}

// ── mapGooglePlayError ───────────────────────────────────────────────────────

func TestMapGooglePlayError_Success(t *testing.T) {
	resp := respond(t, http.StatusOK, `{"listings":[]}`)
	assert.NoError(t, mapGooglePlayError(resp))
}

func TestMapGooglePlayError_ReasonCode(t *testing.T) {
	resp := respond(t, http.StatusConflict,
		`{"error":{"code":409,"message":"edit already committed","status":"FAILED_PRECONDITION","errors":[{"reason":"editAlreadyCommitted"}]}}`)

	err := mapGooglePlayError(resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVersionStateConflict)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "editAlreadyCommitted", apiErr.Code)
}

func TestMapGooglePlayError_StatusEnumFallback(t *testing.T) {
	resp := respond(t, http.StatusTooManyRequests,
		`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)

	err := mapGooglePlayError(resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "RESOURCE_EXHAUSTED", apiErr.Code)
	assert.Equal(t, "quota exceeded", apiErr.Detail)
}

func TestMapGooglePlayError_EmptyBody(t *testing.T) {
	resp := respond(t, http.StatusInternalServerError, "")

	var apiErr *APIError
	require.ErrorAs(t, mapGooglePlayError(resp), &apiErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Detail)
}

// ── APIError ─────────────────────────────────────────────────────────────────

func TestAPIError_ErrorString(t *testing.T) {
	withCode := &APIError{Status: 409, Code: "STATE_ERROR", Detail: "cannot be modified"}
	assert.Equal(t, "http 409 (STATE_ERROR): cannot be modified", withCode.Error())

	withoutCode := &APIError{Status: 500, Detail: "boom"}
	assert.Equal(t, "http 500: boom", withoutCode.Error())
}
