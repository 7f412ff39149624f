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

	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-tracing/wtracing"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/codecs"
	"github.com/arlyon/async-stripe-go/stripe-go-contract/form"
)

type requestBuilder struct {
	method         string
	path           string
	headers        http.Header
	query          *form.Values
	expand         []string
	idempotencyKey string
	stripeAccount  string
	retryDisabled  bool
	timeout        time.Duration
	bodyMiddleware *bodyMiddleware

	middlewares  []Middleware
	configureCtx []func(context.Context) context.Context
}

const (
	traceIDHeaderKey        = "X-B3-TraceId"
	stripeVersionHeaderKey  = "Stripe-Version"
	stripeAccountHeaderKey  = "Stripe-Account"
	idempotencyKeyHeaderKey = "Idempotency-Key"
)

type RequestParam interface {
	apply(*requestBuilder) error
}

type requestParamFunc func(*requestBuilder) error

func (f requestParamFunc) apply(b *requestBuilder) error {
	return f(b)
}

// newRequest returns an *http.Request and a set of Middlewares which should be
// wrapped around the request during execution.
func (c *clientImpl) newRequest(ctx context.Context, params ...RequestParam) (*http.Request, []Middleware, error) {
	b := &requestBuilder{
		headers:        c.initializeRequestHeaders(ctx),
		query:          &form.Values{},
		bodyMiddleware: &bodyMiddleware{bufferPool: c.bufferPool},
	}

	for _, p := range params {
		if p == nil {
			continue
		}
		if err := p.apply(b); err != nil {
			return nil, nil, err
		}
	}
	for _, c := range b.configureCtx {
		ctx = c(ctx)
	}

	if b.method == "" {
		return nil, nil, werror.Error("stripeclient: use WithRequestMethod() to specify HTTP method")
	}
	if b.stripeAccount != "" {
		b.headers.Set(stripeAccountHeaderKey, b.stripeAccount)
	}
	if b.idempotencyKey != "" {
		b.headers.Set(idempotencyKeyHeaderKey, b.idempotencyKey)
	}

	// expand[] rides in the form body on POST and in the query otherwise.
	if len(b.expand) > 0 {
		if b.method == http.MethodPost {
			if b.bodyMiddleware.requestInput == nil {
				b.bodyMiddleware.requestInput = &form.Values{}
				b.bodyMiddleware.requestEncoder = codecs.FormURLEncoded
			}
			values, ok := b.bodyMiddleware.requestInput.(*form.Values)
			if !ok {
				var err error
				if values, err = form.Marshal(b.bodyMiddleware.requestInput); err != nil {
					return nil, nil, werror.Wrap(err, "failed to encode form body for expansion")
				}
				b.bodyMiddleware.requestInput = values
				b.bodyMiddleware.requestEncoder = codecs.FormURLEncoded
			}
			for _, field := range b.expand {
				values.Add("expand[]", field)
			}
		} else {
			for _, field := range b.expand {
				b.query.Add("expand[]", field)
			}
		}
	}

	req, err := http.NewRequest(b.method, c.baseURL+b.path, nil)
	if err != nil {
		return nil, nil, werror.Wrap(err, "failed to build new HTTP request")
	}
	req = req.WithContext(ctx)
	req.Header = b.headers
	if q := b.query.Encode(); q != "" {
		req.URL.RawQuery = q
	}

	if b.bodyMiddleware != nil {
		b.middlewares = append(b.middlewares, b.bodyMiddleware)
	}

	return req, b.middlewares, nil
}

func (c *clientImpl) initializeRequestHeaders(ctx context.Context) http.Header {
	headers := make(http.Header)
	headers.Set("Authorization", "Bearer "+c.apiKey.CurrentString())
	headers.Set(stripeVersionHeaderKey, c.apiVersion)
	headers.Set("User-Agent", c.userAgent)
	if c.stripeAccount != "" {
		headers.Set(stripeAccountHeaderKey, c.stripeAccount)
	}
	if !c.disableTraceHeaderPropagation {
		traceID := wtracing.TraceIDFromContext(ctx)
		if traceID != "" {
			headers.Set(traceIDHeaderKey, string(traceID))
		}
	}
	return headers
}
