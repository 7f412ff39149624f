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
	"io"
	"net/http"
	"strconv"

	werror "github.com/palantir/witchcraft-go-error"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/apierrors"
)

const (
	requestIDHeaderKey   = "Request-Id"
	shouldRetryHeaderKey = "Stripe-Should-Retry"
	retryAfterHeaderKey  = "Retry-After"

	shouldRetryParamKey = "stripeShouldRetry"
	retryAfterParamKey  = "retryAfterSeconds"

	// errors larger than this are truncated before being attached to werror params.
	maxErrorBodyBytes = 1 << 19
)

// ErrorDecoder implementations declare whether or not they should be used to handle certain http responses, and return
// decoded errors when invoked. Custom implementations can be used when consumers expect a different error envelope.
type ErrorDecoder interface {
	// Handles returns whether or not the decoder considers the response an error.
	Handles(resp *http.Response) bool
	// DecodeError returns a decoded error, or an error encountered while trying to decode.
	// DecodeError should never return nil.
	DecodeError(resp *http.Response) error
}

// errorDecoderMiddleware intercepts a round trip's response.
// If the supplied ErrorDecoder handles the response, we return the error as decoded by ErrorDecoder.
// In this case, the *http.Response returned will be nil.
func errorDecoderMiddleware(errorDecoder ErrorDecoder) Middleware {
	return MiddlewareFunc(func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		resp, err := next.RoundTrip(req)
		// if error is already set, it is more severe than our HTTP error. Just return it.
		if resp == nil || err != nil {
			return nil, err
		}
		if errorDecoder.Handles(resp) {
			defer drainBody(resp)
			return nil, errorDecoder.DecodeError(resp)
		}
		return resp, nil
	})
}

// stripeErrorDecoder is the default error decoder. It handles responses of
// status code >= 400 by decoding the {"error": {...}} envelope into an
// *apierrors.Error, wrapped in a werror carrying the 'statusCode' param plus
// retry directives taken from the Stripe-Should-Retry and Retry-After headers.
//
// Use apierrors.AsError(err) to recover the typed error and
// apierrors.StatusCodeFromError(err) to recover the code.
type stripeErrorDecoder struct{}

var _ ErrorDecoder = stripeErrorDecoder{}

func (d stripeErrorDecoder) Handles(resp *http.Response) bool {
	return resp.StatusCode >= http.StatusBadRequest
}

func (d stripeErrorDecoder) DecodeError(resp *http.Response) error {
	requestID := resp.Header.Get(requestIDHeaderKey)
	params := []werror.Param{
		werror.SafeParam("statusCode", resp.StatusCode),
		werror.SafeParam("requestId", requestID),
	}
	if v := resp.Header.Get(shouldRetryHeaderKey); v == "true" || v == "false" {
		params = append(params, werror.SafeParam(shouldRetryParamKey, v))
	}
	if v := resp.Header.Get(retryAfterHeaderKey); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			params = append(params, werror.SafeParam(retryAfterParamKey, seconds))
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return werror.Wrap(err, "failed to read error response body", params...)
	}

	apiErr, err := apierrors.FromResponse(resp.StatusCode, requestID, body)
	if err != nil {
		// not a Stripe envelope: a proxy or load balancer answered for the API.
		return werror.Wrap(err, "server returned a status >= 400 without a Stripe error envelope",
			append(params, werror.UnsafeParam("responseBody", string(body)))...)
	}
	return werror.Wrap(apiErr, "stripe api error", params...)
}
