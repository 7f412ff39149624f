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
	"fmt"
	"strings"
	"time"

	werror "github.com/palantir/witchcraft-go-error"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/codecs"
	"github.com/arlyon/async-stripe-go/stripe-go-contract/form"
	"github.com/arlyon/async-stripe-go/stripe-go-contract/ids"
)

// WithRequestMethod sets the HTTP method of the request, e.g. GET or POST.
func WithRequestMethod(method string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		if method == "" {
			return werror.Error("stripeclient.RequestMethod: method can not be empty")
		}
		b.method = strings.ToUpper(method)
		return nil
	})
}

// WithPath sets the path for the request. This will be joined with
// the base URL set on the client.
func WithPath(path string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		b.path = path
		return nil
	})
}

// WithPathf sets the path for the request. This will be joined with
// the base URL set on the client.
func WithPathf(format string, args ...interface{}) RequestParam {
	return WithPath(fmt.Sprintf(format, args...))
}

// WithHeader sets a header on a request.
func WithHeader(key, value string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.headers.Set(key, value)
		return nil
	})
}

// WithQueryValues sets the query string of the request. Keys follow Stripe's
// bracket convention, e.g. created[gte].
func WithQueryValues(query *form.Values) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.query = query
		return nil
	})
}

// WithQueryParams form-encodes a parameter struct into the query string.
// Use this for the parameters of GET requests, which carry no body.
func WithQueryParams(input interface{}) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		values, err := form.Marshal(input)
		if err != nil {
			return err
		}
		b.query = values
		return nil
	})
}

// WithFormBody provides a struct (or *form.Values) to encode as the
// application/x-www-form-urlencoded request body.
// Example:
//
//	input := customer.CreateParams{Email: stripe.String("jenny@example.com")}
//	resp, err := client.Post(..., WithFormBody(input), ...)
func WithFormBody(input interface{}) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.bodyMiddleware.requestInput = input
		b.bodyMiddleware.requestEncoder = codecs.FormURLEncoded
		b.headers.Set("Content-Type", codecs.FormURLEncoded.ContentType())
		return nil
	})
}

// WithResponseBody provides a struct into which the body
// middleware will decode as the response body. Decoding is
// handled by the impl passed to WithResponseBody.
func WithResponseBody(output interface{}, decoder codecs.Decoder) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.bodyMiddleware.responseOutput = output
		b.bodyMiddleware.responseDecoder = decoder
		b.headers.Set("Accept", decoder.Accept())
		return nil
	})
}

// WithJSONResponse unmarshals the response body into output using the JSON codec.
// The request will return an error if decoding fails.
// Example:
//
//	var output types.Customer
//	resp, err := client.Get(..., WithJSONResponse(&output), ...)
func WithJSONResponse(output interface{}) RequestParam {
	return WithResponseBody(output, codecs.JSON)
}

// WithRawResponseBody configures the request such that the response
// body will not be read or drained after the request is executed.
// In this case, it is the responsibility of the caller to read and
// close the returned reader.
func WithRawResponseBody() RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.bodyMiddleware.rawOutput = true
		b.bodyMiddleware.responseOutput = nil
		b.bodyMiddleware.responseDecoder = nil
		return nil
	})
}

// WithIdempotencyKey attaches the Idempotency-Key header, allowing the server
// to dedupe replays of the same mutation. Requests carrying a key are eligible
// for automatic retries regardless of method.
func WithIdempotencyKey(key string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		if key == "" {
			return werror.Error("stripeclient.IdempotencyKey: key can not be empty")
		}
		if len(key) > 255 {
			return werror.Error("stripeclient.IdempotencyKey: key exceeds 255 characters",
				werror.SafeParam("keyLength", len(key)))
		}
		b.idempotencyKey = key
		return nil
	})
}

// WithExpand requests server-side expansion of the named fields, e.g.
// "customer" or "invoice.subscription". On GET requests the fields ride in
// the query string, on POST in the form body.
func WithExpand(fields ...string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.expand = append(b.expand, fields...)
		return nil
	})
}

// WithRequestStripeAccount scopes this request to a connected account,
// overriding any account configured on the client.
func WithRequestStripeAccount(account ids.Account) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.stripeAccount = account.String()
		return nil
	})
}

// WithNoRetry disables automatic retries for this request regardless of
// method or idempotency key.
func WithNoRetry() RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.retryDisabled = true
		return nil
	})
}

// WithRequestTimeout bounds this request, including any retries, overriding
// the client's timeout.
func WithRequestTimeout(timeout time.Duration) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.timeout = timeout
		return nil
	})
}

// WithRequestMiddleware wraps the request's round trip.
func WithRequestMiddleware(m Middleware) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.middlewares = append(b.middlewares, m)
		return nil
	})
}
