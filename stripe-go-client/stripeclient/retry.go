// Copyright (c) 2024 the async-stripe-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stripeclient

import (
	"context"
	"net/http"
	"time"

	"github.com/palantir/pkg/retry"
	werror "github.com/palantir/witchcraft-go-error"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/apierrors"
)

// requestRetrier manages the lifecycle of a single logical request. It tracks
// the backoff timing between subsequent attempts and decides, from the error
// of the previous attempt, whether another attempt is warranted.
//
// Mutating requests are only eligible when they carry an idempotency key, so
// a replay can never apply the mutation twice.
type requestRetrier struct {
	retrier retry.Retrier

	eligible    bool
	maxRetries  int
	retriesDone int
}

func newRequestRetrier(retrier retry.Retrier, maxRetries int, eligible bool) *requestRetrier {
	return &requestRetrier{
		retrier:    retrier,
		eligible:   eligible,
		maxRetries: maxRetries,
	}
}

// Next returns true if a subsequent attempt should be made, inspecting the
// error from the previous attempt. If the returned value is true, the retrier
// will have waited the desired backoff interval before returning.
func (r *requestRetrier) Next(ctx context.Context, prevErr error) bool {
	if !r.eligible || r.retriesDone >= r.maxRetries {
		return false
	}
	if !isRetriableError(ctx, prevErr) {
		return false
	}
	r.retriesDone++

	if seconds := retryAfterFromError(prevErr); seconds > 0 {
		return sleepContext(ctx, time.Duration(seconds)*time.Second)
	}
	return r.retrier.Next()
}

// isRetriableError reports whether the previous attempt's failure is safe and
// useful to retry. A Stripe-Should-Retry header always wins; otherwise 409,
// 429 and 5xx statuses are retried, as are transport-level failures that did
// not originate from the caller's context.
func isRetriableError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if directive, ok := werror.ParamFromError(err, shouldRetryParamKey); ok {
		if s, ok := directive.(string); ok {
			return s == "true"
		}
	}
	if status, ok := apierrors.StatusCodeFromError(err); ok {
		switch {
		case status == http.StatusConflict, status == http.StatusTooManyRequests:
			return true
		case status >= http.StatusInternalServerError && status <= http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	// no status means the request never completed. Retry unless the caller
	// gave up.
	return ctx.Err() == nil
}

func retryAfterFromError(err error) int {
	if v, ok := werror.ParamFromError(err, retryAfterParamKey); ok {
		if seconds, ok := v.(int); ok {
			return seconds
		}
	}
	return 0
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func isRetryEligible(method, idempotencyKey string, retryDisabled bool) bool {
	if retryDisabled {
		return false
	}
	if idempotencyKey != "" {
		return true
	}
	return method == http.MethodGet || method == http.MethodDelete
}
