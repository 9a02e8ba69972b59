package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retryingGet(t *testing.T, srvURL string, maxRetries int) (*resty.Response, error) {
	t.Helper()

	client := resty.New()
	return doWithRetry(context.Background(), maxRetries, func(ctx context.Context) (*resty.Response, error) {
		return client.R().SetContext(ctx).Get(srvURL)
	})
}

func TestDoWithRetry_RetriesRateLimit(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := retryingGet(t, srv.URL, 5)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, int32(3), calls.Load())
}

func TestDoWithRetry_ExhaustedReturnsLastResponse(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	resp, err := retryingGet(t, srv.URL, 2)

	// после исчерпания попыток последний ответ отдаётся мапперу ошибок
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.Equal(t, int32(3), calls.Load())
}

func TestDoWithRetry_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	resp, err := retryingGet(t, srv.URL, 5)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, int32(1), calls.Load())
}

func TestDoWithRetry_ZeroBudgetSendsOnce(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	resp, err := retryingGet(t, srv.URL, 0)

	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode())
	assert.Equal(t, int32(1), calls.Load())
}

func TestDoWithRetry_TransportErrorNotRetried(t *testing.T) {
	wantErr := errors.New("connection refused")
	var calls atomic.Int32

	_, err := doWithRetry(context.Background(), 5, func(_ context.Context) (*resty.Response, error) {
		calls.Add(1)
		return nil, wantErr
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, int32(1), calls.Load())
}
