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

// Package stripeclient executes authenticated requests against the Stripe
// API, providing retries with exponential backoff, idempotency key handling
// and decoding of the Stripe error envelope. It is the transport layer the
// generated typed bindings are built on.
package stripeclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/palantir/pkg/bytesbuffers"
	"github.com/palantir/pkg/refreshable"
	"github.com/palantir/pkg/retry"
	"github.com/palantir/pkg/tlsconfig"
	werror "github.com/palantir/witchcraft-go-error"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/useragent"
)

const (
	// DefaultBaseURL is the live Stripe API endpoint.
	DefaultBaseURL = "https://api.stripe.com"
	// DefaultAPIVersion pins the API version every request is made against,
	// so response shapes do not drift under the typed bindings.
	DefaultAPIVersion = "2024-06-20"

	defaultHTTPTimeout    = 80 * time.Second
	defaultMaxRetries     = 2
	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 2 * time.Second

	defaultDialTimeout           = 5 * time.Second
	defaultKeepAlive             = 30 * time.Second
	defaultIdleConnTimeout       = 90 * time.Second
	defaultTLSHandshakeTimeout   = 10 * time.Second
	defaultExpectContinueTimeout = 1 * time.Second
	defaultMaxIdleConns          = 32
	defaultMaxIdleConnsPerHost   = 32
)

type clientBuilder struct {
	BaseURL       string
	APIKey        refreshable.String
	StripeAccount string
	APIVersion    string
	UserAgent     *useragent.Builder

	// HTTPClient, when set, is used as-is and the transport options below are ignored.
	HTTPClient           *http.Client
	DialTimeout          time.Duration
	MaxIdleConns         int
	MaxIdleConnsPerHost  int
	DisableHTTP2         bool
	ProxyFromEnvironment bool
	ProxyURL             *url.URL
	TLSConfig            *tls.Config

	Timeout        time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	Middlewares         []Middleware
	ErrorDecoder        ErrorDecoder
	BytesBufferPool     bytesbuffers.Pool
	MetricsTagProviders []TagsProvider

	DisableMetrics                bool
	DisableRecovery               bool
	DisableTraceHeaderPropagation bool
}

// NewClient returns a configured client ready for use.
// We apply "sane defaults" before applying the provided params.
func NewClient(params ...ClientParam) (Client, error) {
	b := newClientBuilder()
	for _, p := range params {
		if p == nil {
			continue
		}
		if err := p.apply(b); err != nil {
			return nil, err
		}
	}
	if b.APIKey == nil {
		return nil, werror.Error("stripeclient: an API key is required, use WithAPIKey()")
	}

	httpClient := b.HTTPClient
	if httpClient == nil {
		transport, err := newTransport(b)
		if err != nil {
			return nil, err
		}
		httpClient = &http.Client{Transport: transport}
	}

	// recovery innermost so panics in other middlewares are also converted.
	var baseMiddlewares []Middleware
	if !b.DisableRecovery {
		baseMiddlewares = append(baseMiddlewares, recoveryMiddleware{})
	}
	if !b.DisableMetrics {
		metricsM, err := MetricsMiddleware(serviceName, b.MetricsTagProviders...)
		if err != nil {
			return nil, err
		}
		baseMiddlewares = append(baseMiddlewares, metricsM)
	}
	clientCopy := *httpClient
	clientCopy.Transport = wrapTransport(clientCopy.Transport, baseMiddlewares...)

	return &clientImpl{
		client:                 clientCopy,
		middlewares:            b.Middlewares,
		errorDecoderMiddleware: errorDecoderMiddleware(b.ErrorDecoder),

		baseURL:       b.BaseURL,
		apiKey:        b.APIKey,
		stripeAccount: b.StripeAccount,
		apiVersion:    b.APIVersion,
		userAgent:     b.UserAgent.String(),

		maxRetries:                    b.MaxRetries,
		httpTimeout:                   b.Timeout,
		disableTraceHeaderPropagation: b.DisableTraceHeaderPropagation,
		backoffOptions: []retry.Option{
			retry.WithInitialBackoff(b.InitialBackoff),
			retry.WithMaxBackoff(b.MaxBackoff),
		},
		bufferPool: b.BytesBufferPool,
	}, nil
}

func newClientBuilder() *clientBuilder {
	return &clientBuilder{
		BaseURL:    DefaultBaseURL,
		APIVersion: DefaultAPIVersion,
		UserAgent:  useragent.Default(),

		DialTimeout:          defaultDialTimeout,
		MaxIdleConns:         defaultMaxIdleConns,
		MaxIdleConnsPerHost:  defaultMaxIdleConnsPerHost,
		ProxyFromEnvironment: true,

		Timeout:        defaultHTTPTimeout,
		MaxRetries:     defaultMaxRetries,
		InitialBackoff: defaultInitialBackoff,
		MaxBackoff:     defaultMaxBackoff,

		ErrorDecoder: stripeErrorDecoder{},
	}
}

func newTransport(b *clientBuilder) (http.RoundTripper, error) {
	tlsConfig := b.TLSConfig
	if tlsConfig == nil {
		var err error
		tlsConfig, err = tlsconfig.NewClientConfig()
		if err != nil {
			return nil, werror.Wrap(err, "failed to build default TLS config")
		}
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   b.DialTimeout,
			KeepAlive: defaultKeepAlive,
		}).DialContext,
		TLSClientConfig:       tlsConfig,
		MaxIdleConns:          b.MaxIdleConns,
		MaxIdleConnsPerHost:   b.MaxIdleConnsPerHost,
		IdleConnTimeout:       defaultIdleConnTimeout,
		TLSHandshakeTimeout:   defaultTLSHandshakeTimeout,
		ExpectContinueTimeout: defaultExpectContinueTimeout,
	}
	switch {
	case b.ProxyURL != nil:
		transport.Proxy = http.ProxyURL(b.ProxyURL)
	case b.ProxyFromEnvironment:
		transport.Proxy = http.ProxyFromEnvironment
	}

	if !b.DisableHTTP2 {
		if err := configureHTTP2(transport); err != nil {
			return nil, err
		}
	}
	return transport, nil
}
