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
	"net/url"
	"time"

	"github.com/palantir/pkg/bytesbuffers"
	"github.com/palantir/pkg/refreshable"
	"github.com/palantir/pkg/retry"
	werror "github.com/palantir/witchcraft-go-error"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/form"
)

// A Client executes requests against the Stripe API.
//
// The Get/Post/Delete methods are for conveniently setting the method type and calling Do().
type Client interface {
	// Do executes a full request. Any input or output should be specified via params.
	// By the time it is returned, the response's body will be fully read and closed.
	// Use the WithJSONResponse param to unmarshal the body before Do() returns.
	//
	// In the case of a response with StatusCode >= 400, Do() will return a nil response
	// and a non-nil error. Use apierrors.AsError(err) to recover the decoded Stripe
	// error and apierrors.StatusCodeFromError(err) to recover the status code.
	Do(ctx context.Context, params ...RequestParam) (*http.Response, error)

	Get(ctx context.Context, params ...RequestParam) (*http.Response, error)
	Post(ctx context.Context, params ...RequestParam) (*http.Response, error)
	Delete(ctx context.Context, params ...RequestParam) (*http.Response, error)
}

type clientImpl struct {
	client                 http.Client
	middlewares            []Middleware
	errorDecoderMiddleware Middleware

	baseURL       string
	apiKey        refreshable.String
	stripeAccount string
	apiVersion    string
	userAgent     string

	maxRetries                    int
	httpTimeout                   time.Duration
	disableTraceHeaderPropagation bool
	backoffOptions                []retry.Option
	bufferPool                    bytesbuffers.Pool
}

func (c *clientImpl) Get(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	return c.Do(ctx, append(params, WithRequestMethod(http.MethodGet))...)
}

func (c *clientImpl) Post(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	return c.Do(ctx, append(params, WithRequestMethod(http.MethodPost))...)
}

func (c *clientImpl) Delete(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	return c.Do(ctx, append(params, WithRequestMethod(http.MethodDelete))...)
}

func (c *clientImpl) Do(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	meta, err := c.requestMetaFromParams(params)
	if err != nil {
		return nil, err
	}

	// the timeout spans all attempts of the logical request.
	if timeout := meta.timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	retrier := newRequestRetrier(
		retry.Start(ctx, c.backoffOptions...),
		c.maxRetries,
		isRetryEligible(meta.method, meta.idempotencyKey, meta.retryDisabled),
	)

	var resp *http.Response
	for {
		resp, err = c.doOnce(ctx, params...)
		if err == nil {
			return resp, nil
		}
		if !retrier.Next(ctx, err) {
			break
		}
	}
	if ctx.Err() == context.DeadlineExceeded {
		return nil, werror.Wrap(err, "request deadline exceeded",
			werror.SafeParam("timeout", meta.timeout.String()))
	}
	return nil, err
}

func (c *clientImpl) doOnce(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	req, reqMiddlewares, err := c.newRequest(ctx, params...)
	if err != nil {
		return nil, err
	}

	// shallow copy so we can overwrite the Transport with a wrapped one.
	clientCopy := c.client
	transport := wrapTransport(clientCopy.Transport, c.middlewares...)
	transport = wrapTransport(transport, c.errorDecoderMiddleware)
	for _, middleware := range reqMiddlewares {
		transport = wrapTransport(transport, middleware)
	}
	clientCopy.Transport = transport

	resp, respErr := clientCopy.Do(req)

	return resp, unwrapURLError(respErr)
}

// requestMeta carries the request properties the retry loop needs before the
// first attempt is built.
type requestMeta struct {
	method         string
	idempotencyKey string
	retryDisabled  bool
	timeout        time.Duration
}

func (c *clientImpl) requestMetaFromParams(params []RequestParam) (requestMeta, error) {
	b := &requestBuilder{
		headers:        make(http.Header),
		query:          &form.Values{},
		bodyMiddleware: &bodyMiddleware{},
	}
	for _, p := range params {
		if p == nil {
			continue
		}
		if err := p.apply(b); err != nil {
			return requestMeta{}, err
		}
	}
	timeout := b.timeout
	if timeout == 0 {
		timeout = c.httpTimeout
	}
	return requestMeta{
		method:         b.method,
		idempotencyKey: b.idempotencyKey,
		retryDisabled:  b.retryDisabled,
		timeout:        timeout,
	}, nil
}

// unwrapURLError converts a *url.Error to a werror. We need this because all
// errors from the stdlib's client.Do are wrapped in *url.Error, and if we
// were to blindly return that we would lose any werror params stored on the
// underlying Err.
func unwrapURLError(respErr error) error {
	if respErr == nil {
		return nil
	}

	urlErr, ok := respErr.(*url.Error)
	if !ok {
		// We don't recognize this as a url.Error, just return the original.
		return respErr
	}
	params := []werror.Param{werror.SafeParam("requestMethod", urlErr.Op)}

	if parsedURL, _ := url.Parse(urlErr.URL); parsedURL != nil {
		params = append(params,
			werror.SafeParam("requestHost", parsedURL.Host),
			werror.UnsafeParam("requestPath", parsedURL.Path))
	}

	return werror.Wrap(urlErr.Err, "stripeclient request failed", params...)
}
