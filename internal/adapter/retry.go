package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

const retryBaseDelay = 500 * time.Millisecond

// doWithRetry executes send, retrying rate-limit and transient server
// responses with exponential backoff up to maxRetries additional attempts.
//
// Generic transport retries belong here, in the transport layer: the sync
// core above never retries anything on its own. Network-level errors are not
// retried because the request may already have had an effect on the backend.
func doWithRetry(ctx context.Context, maxRetries int, send func(ctx context.Context) (*resty.Response, error)) (*resty.Response, error) {
	if maxRetries <= 0 {
		return send(ctx)
	}

	var resp *resty.Response
	backoff := retry.WithMaxRetries(uint64(maxRetries), retry.NewExponential(retryBaseDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, sendErr := send(ctx)
		if sendErr != nil {
			return sendErr
		}
		resp = r

		switch r.StatusCode() {
		case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable:
			return retry.RetryableError(fmt.Errorf("http %d", r.StatusCode()))
		}
		return nil
	})

	if err != nil {
		// Exhausted retries still leave the last response for the error
		// mapper; only hand the error up when no response exists at all.
		if resp != nil {
			return resp, nil
		}
		return nil, err
	}

	return resp, nil
}
