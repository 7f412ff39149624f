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
)

// A Middleware intercepts an HTTP round trip, optionally delegating to next.
type Middleware interface {
	RoundTrip(req *http.Request, next http.RoundTripper) (*http.Response, error)
}

// MiddlewareFunc is a convenience type that implements Middleware.
type MiddlewareFunc func(req *http.Request, next http.RoundTripper) (*http.Response, error)

func (f MiddlewareFunc) RoundTrip(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	return f(req, next)
}

type wrappedTransport struct {
	baseTransport http.RoundTripper
	middleware    Middleware
}

func (t *wrappedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.middleware.RoundTrip(req, t.baseTransport)
}

// wrapTransport wraps each middleware around the transport in order; the last
// middleware in the list becomes the outermost.
func wrapTransport(rt http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	for _, m := range middlewares {
		if m == nil {
			continue
		}
		rt = &wrappedTransport{baseTransport: rt, middleware: m}
	}
	return rt
}

// drainBody reads the response body to completion and closes it so the
// underlying connection can be reused.
func drainBody(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
