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
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/apierrors"
	"github.com/arlyon/async-stripe-go/stripe-go-contract/form"
	"github.com/arlyon/async-stripe-go/stripe-go-contract/ids"
)

func newTestClient(t *testing.T, serverURL string, params ...ClientParam) Client {
	t.Helper()
	client, err := NewClient(append([]ClientParam{
		WithAPIKey("sk_test_123"),
		WithBaseURL(serverURL),
		WithInitialBackoff(time.Millisecond),
		WithMaxBackoff(5 * time.Millisecond),
	}, params...)...)
	require.NoError(t, err)
	return client
}

func TestRequestHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer sk_test_123", req.Header.Get("Authorization"))
		assert.Equal(t, DefaultAPIVersion, req.Header.Get("Stripe-Version"))
		assert.Contains(t, req.Header.Get("User-Agent"), "async-stripe-go/")
		assert.Equal(t, "acct_123", req.Header.Get("Stripe-Account"))
		assert.Equal(t, "key-1", req.Header.Get("Idempotency-Key"))
		_, _ = rw.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, WithStripeAccount("acct_123"))
	_, err := client.Post(context.Background(),
		WithPath("/v1/customers"),
		WithIdempotencyKey("key-1"),
	)
	require.NoError(t, err)
}

func TestStripeAccountPerRequestOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "acct_override", req.Header.Get("Stripe-Account"))
		_, _ = rw.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, WithStripeAccount("acct_default"))
	_, err := client.Get(context.Background(),
		WithPath("/v1/charges"),
		WithRequestStripeAccount(ids.Account("acct_override")),
	)
	require.NoError(t, err)
}

func TestJSONResponseDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"id":"cus_1","email":"jenny@example.com"}`))
	}))
	defer server.Close()

	var out struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	client := newTestClient(t, server.URL)
	_, err := client.Get(context.Background(),
		WithPath("/v1/customers/cus_1"),
		WithJSONResponse(&out),
	)
	require.NoError(t, err)
	assert.Equal(t, "cus_1", out.ID)
	assert.Equal(t, "jenny@example.com", out.Email)
}

func TestFormBodyEncoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
		body, err := io.ReadAll(req.Body)
		assert.NoError(t, err)
		assert.Equal(t, "amount=2000&currency=usd", string(body))
		_, _ = rw.Write([]byte(`{}`))
	}))
	defer server.Close()

	type chargeParams struct {
		Amount   int64  `form:"amount"`
		Currency string `form:"currency"`
	}
	client := newTestClient(t, server.URL)
	_, err := client.Post(context.Background(),
		WithPath("/v1/charges"),
		WithFormBody(chargeParams{Amount: 2000, Currency: "usd"}),
	)
	require.NoError(t, err)
}

func TestExpandOnGetRidesInQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, []string{"customer", "invoice.subscription"}, req.URL.Query()["expand[]"])
		_, _ = rw.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Get(context.Background(),
		WithPath("/v1/charges/ch_1"),
		WithExpand("customer", "invoice.subscription"),
	)
	require.NoError(t, err)
}

func TestExpandOnPostRidesInBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		assert.NoError(t, err)
		assert.Contains(t, string(body), "amount=2000")
		assert.Contains(t, string(body), "expand%5B%5D=customer")
		_, _ = rw.Write([]byte(`{}`))
	}))
	defer server.Close()

	type chargeParams struct {
		Amount int64 `form:"amount"`
	}
	client := newTestClient(t, server.URL)
	_, err := client.Post(context.Background(),
		WithPath("/v1/charges"),
		WithFormBody(chargeParams{Amount: 2000}),
		WithExpand("customer"),
	)
	require.NoError(t, err)
}

func TestRetryWithIdempotencyKey(t *testing.T) {
	var keys []string
	count := 0
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		keys = append(keys, req.Header.Get("Idempotency-Key"))
		body, err := io.ReadAll(req.Body)
		assert.NoError(t, err)
		assert.Equal(t, "amount=100", string(body))
		count++
		if count == 1 {
			rw.WriteHeader(http.StatusInternalServerError)
			_, _ = rw.Write([]byte(`{"error":{"type":"api_error"}}`))
			return
		}
		_, _ = rw.Write([]byte(`{}`))
	}))
	defer server.Close()

	type params struct {
		Amount int64 `form:"amount"`
	}
	client := newTestClient(t, server.URL)
	_, err := client.Post(context.Background(),
		WithPath("/v1/charges"),
		WithFormBody(params{Amount: 100}),
		WithIdempotencyKey("key-1"),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"key-1", "key-1"}, keys)
}

func TestPostWithoutIdempotencyKeyNotRetried(t *testing.T) {
	count := 0
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		count++
		rw.WriteHeader(http.StatusInternalServerError)
		_, _ = rw.Write([]byte(`{"error":{"type":"api_error"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Post(context.Background(), WithPath("/v1/charges"))
	require.Error(t, err)
	assert.Equal(t, 1, count)

	status, ok := apierrors.StatusCodeFromError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestGetRetriedOn429(t *testing.T) {
	count := 0
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		count++
		if count == 1 {
			rw.WriteHeader(http.StatusTooManyRequests)
			_, _ = rw.Write([]byte(`{"error":{"type":"rate_limit_error"}}`))
			return
		}
		_, _ = rw.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Get(context.Background(), WithPath("/v1/charges"))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGetNotRetriedOn400(t *testing.T) {
	count := 0
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		count++
		rw.WriteHeader(http.StatusBadRequest)
		_, _ = rw.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Missing required param."}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Get(context.Background(), WithPath("/v1/charges"))
	require.Error(t, err)
	assert.Equal(t, 1, count)
}

func TestShouldRetryFalseStops(t *testing.T) {
	count := 0
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		count++
		rw.Header().Set("Stripe-Should-Retry", "false")
		rw.WriteHeader(http.StatusInternalServerError)
		_, _ = rw.Write([]byte(`{"error":{"type":"api_error"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Get(context.Background(), WithPath("/v1/charges"))
	require.Error(t, err)
	assert.Equal(t, 1, count)
}

func TestShouldRetryTrueForcesRetry(t *testing.T) {
	count := 0
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		count++
		if count == 1 {
			// 400 is not normally retriable, the header overrides.
			rw.Header().Set("Stripe-Should-Retry", "true")
			rw.WriteHeader(http.StatusBadRequest)
			_, _ = rw.Write([]byte(`{"error":{"type":"invalid_request_error"}}`))
			return
		}
		_, _ = rw.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Get(context.Background(), WithPath("/v1/charges"))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestWithNoRetry(t *testing.T) {
	count := 0
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		count++
		rw.WriteHeader(http.StatusServiceUnavailable)
		_, _ = rw.Write([]byte(`{"error":{"type":"api_error"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Get(context.Background(), WithPath("/v1/charges"), WithNoRetry())
	require.Error(t, err)
	assert.Equal(t, 1, count)
}

func TestMaxRetriesBoundsAttempts(t *testing.T) {
	count := 0
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		count++
		rw.WriteHeader(http.StatusInternalServerError)
		_, _ = rw.Write([]byte(`{"error":{"type":"api_error"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, WithMaxRetries(3))
	_, err := client.Get(context.Background(), WithPath("/v1/charges"))
	require.Error(t, err)
	assert.Equal(t, 4, count)
}

func TestErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("Request-Id", "req_123")
		rw.WriteHeader(http.StatusPaymentRequired)
		_, _ = rw.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp, err := client.Post(context.Background(), WithPath("/v1/charges"))
	require.Error(t, err)
	assert.Nil(t, resp)

	apiErr, ok := apierrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apierrors.ErrorTypeCard, apiErr.Type)
	assert.Equal(t, apierrors.CodeCardDeclined, apiErr.Code)
	assert.Equal(t, "Your card was declined.", apiErr.Message)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
	assert.Equal(t, "req_123", apiErr.RequestID)
}

func TestNonEnvelopeErrorSurfacesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusBadGateway)
		_, _ = rw.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Get(context.Background(), WithPath("/v1/charges"), WithNoRetry())
	require.Error(t, err)

	_, ok := apierrors.AsError(err)
	assert.False(t, ok)

	status, ok := apierrors.StatusCodeFromError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, status)
}

func TestQueryValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "10", req.URL.Query().Get("limit"))
		assert.Equal(t, "1700000000", req.URL.Query().Get("created[gte]"))
		_, _ = rw.Write([]byte(`{}`))
	}))
	defer server.Close()

	query := &form.Values{}
	query.Add("limit", "10")
	query.Add("created[gte]", "1700000000")

	client := newTestClient(t, server.URL)
	_, err := client.Get(context.Background(), WithPath("/v1/charges"), WithQueryValues(query))
	require.NoError(t, err)
}

func TestRequestTimeoutSpansRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		time.Sleep(200 * time.Millisecond)
		rw.WriteHeader(http.StatusInternalServerError)
		_, _ = rw.Write([]byte(`{"error":{"type":"api_error"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, WithMaxRetries(10))
	start := time.Now()
	_, err := client.Get(context.Background(),
		WithPath("/v1/charges"),
		WithRequestTimeout(300*time.Millisecond),
	)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.True(t, apierrors.IsTimeout(err) || strings.Contains(err.Error(), "deadline"))
}

func TestMissingAPIKeyRejected(t *testing.T) {
	_, err := NewClient()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestMethodRequired(t *testing.T) {
	client := newTestClient(t, "http://localhost:0")
	_, err := client.Do(context.Background(), WithPath("/v1/charges"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WithRequestMethod")
}

func TestBlockingClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"id":"cus_1"}`))
	}))
	defer server.Close()

	var out struct {
		ID string `json:"id"`
	}
	blocking := NewBlockingClient(newTestClient(t, server.URL), 0)
	_, err := blocking.Get(WithPath("/v1/customers/cus_1"), WithJSONResponse(&out))
	require.NoError(t, err)
	assert.Equal(t, "cus_1", out.ID)
}
