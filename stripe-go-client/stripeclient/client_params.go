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
	"crypto/tls"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/palantir/pkg/bytesbuffers"
	"github.com/palantir/pkg/refreshable"
	werror "github.com/palantir/witchcraft-go-error"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/ids"
	"github.com/arlyon/async-stripe-go/stripe-go-contract/useragent"
)

type ClientParam interface {
	apply(*clientBuilder) error
}

type clientParamFunc func(*clientBuilder) error

func (f clientParamFunc) apply(b *clientBuilder) error {
	return f(b)
}

// WithAPIKey configures the client to authenticate with a fixed secret key.
// The key is never logged; treat it as an unsafe param everywhere.
func WithAPIKey(key string) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		if key == "" {
			return werror.Error("stripeclient.APIKey: key can not be empty")
		}
		b.APIKey = refreshable.NewString(refreshable.NewDefaultRefreshable(key))
		return nil
	})
}

// WithRefreshableAPIKey configures the client with a key provider that may
// rotate at runtime. Each request reads the current value.
func WithRefreshableAPIKey(key refreshable.String) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.APIKey = key
		return nil
	})
}

// WithStripeAccount sets the connected account every request is made on
// behalf of. Individual requests can override it.
func WithStripeAccount(account ids.Account) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.StripeAccount = account.String()
		return nil
	})
}

// WithAPIVersion overrides the pinned Stripe-Version header. Response shapes
// are only guaranteed to match the typed bindings at the default version.
func WithAPIVersion(version string) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		if version == "" {
			return werror.Error("stripeclient.APIVersion: version can not be empty")
		}
		b.APIVersion = version
		return nil
	})
}

// WithBaseURL points the client at a different endpoint, e.g. stripe-mock or
// an httptest server.
func WithBaseURL(baseURL string) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		if _, err := url.ParseRequestURI(baseURL); err != nil {
			return werror.Wrap(err, "stripeclient.BaseURL: invalid base URL")
		}
		b.BaseURL = strings.TrimRight(baseURL, "/")
		return nil
	})
}

// WithUserAgentProduct appends a product token to the User-Agent header, e.g.
// the name and version of the application built on the client.
func WithUserAgentProduct(name, version string, comments ...string) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		product, err := useragent.NewProduct(name, version, comments...)
		if err != nil {
			return err
		}
		b.UserAgent.Push(product)
		return nil
	})
}

// WithHTTPClient uses the provided client for all requests instead of
// constructing a transport. Connection pooling, proxies and TLS are then
// entirely the caller's concern.
func WithHTTPClient(client *http.Client) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.HTTPClient = client
		return nil
	})
}

// WithHTTPTimeout bounds each logical request including all of its retries.
// The default is 80 seconds.
func WithHTTPTimeout(timeout time.Duration) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.Timeout = timeout
		return nil
	})
}

// WithMaxRetries sets how many times a failed attempt is retried. Zero
// disables retries entirely. The default is 2.
func WithMaxRetries(maxRetries int) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		if maxRetries < 0 {
			return werror.Error("stripeclient.MaxRetries: must not be negative",
				werror.SafeParam("maxRetries", maxRetries))
		}
		b.MaxRetries = maxRetries
		return nil
	})
}

// WithInitialBackoff sets the backoff before the first retry.
func WithInitialBackoff(initialBackoff time.Duration) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.InitialBackoff = initialBackoff
		return nil
	})
}

// WithMaxBackoff caps the exponential backoff between retries.
func WithMaxBackoff(maxBackoff time.Duration) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.MaxBackoff = maxBackoff
		return nil
	})
}

// WithMiddleware wraps every request's round trip.
func WithMiddleware(m Middleware) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.Middlewares = append(b.Middlewares, m)
		return nil
	})
}

// WithErrorDecoder replaces the default Stripe envelope decoder.
func WithErrorDecoder(decoder ErrorDecoder) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.ErrorDecoder = decoder
		return nil
	})
}

// WithBytesBufferPool reuses buffers from the pool when encoding request
// bodies.
func WithBytesBufferPool(pool bytesbuffers.Pool) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.BytesBufferPool = pool
		return nil
	})
}

// WithMetrics enables the "client.response" timer metric, tagged with the
// request method and status family plus any tags from the providers.
// Metrics are enabled by default; use this to add providers.
func WithMetrics(tagProviders ...TagsProvider) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.DisableMetrics = false
		b.MetricsTagProviders = append(b.MetricsTagProviders, tagProviders...)
		return nil
	})
}

// WithDisableMetrics turns off the client.response metric.
func WithDisableMetrics() ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.DisableMetrics = true
		return nil
	})
}

// WithDisableRecovery turns off the panic recovery middleware, which is
// useful in tests so panics surface with full stacks.
func WithDisableRecovery() ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.DisableRecovery = true
		return nil
	})
}

// WithDisableTraceHeaderPropagation stops the client propagating the
// X-B3-TraceId header from the request context.
func WithDisableTraceHeaderPropagation() ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.DisableTraceHeaderPropagation = true
		return nil
	})
}

// WithDisableHTTP2 restricts the constructed transport to HTTP/1.1.
func WithDisableHTTP2() ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.DisableHTTP2 = true
		return nil
	})
}

// WithTLSConfig replaces the default TLS configuration of the constructed
// transport.
func WithTLSConfig(conf *tls.Config) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.TLSConfig = conf
		return nil
	})
}

// WithProxyFromEnvironment configures the constructed transport to respect
// the HTTP_PROXY, HTTPS_PROXY and NO_PROXY environment variables. This is
// the default.
func WithProxyFromEnvironment() ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.ProxyFromEnvironment = true
		return nil
	})
}

// WithProxyURL routes all requests through the proxy at proxyURL.
func WithProxyURL(proxyURL string) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		parsed, err := url.ParseRequestURI(proxyURL)
		if err != nil {
			return werror.Wrap(err, "stripeclient.ProxyURL: invalid proxy URL")
		}
		b.ProxyURL = parsed
		return nil
	})
}

// WithMaxIdleConns sets the connection pool size of the constructed transport.
func WithMaxIdleConns(conns int) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.MaxIdleConns = conns
		return nil
	})
}

// WithMaxIdleConnsPerHost sets the per-host connection pool size of the
// constructed transport.
func WithMaxIdleConnsPerHost(conns int) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.MaxIdleConnsPerHost = conns
		return nil
	})
}

// WithDialTimeout sets the dial timeout of the constructed transport.
func WithDialTimeout(timeout time.Duration) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.DialTimeout = timeout
		return nil
	})
}
