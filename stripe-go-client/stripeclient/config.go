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
	"os"
	"strings"
	"time"

	werror "github.com/palantir/witchcraft-go-error"
	"gopkg.in/yaml.v2"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/ids"
)

// ClientConfig represents the file-based configuration for a client. Use the
// WithConfig() param to construct a Client from it. The fields of this struct
// should generally not be read directly by application code.
type ClientConfig struct {
	// APIKey is the secret key used as a Bearer token in the Authorization header.
	// This takes precedence over APIKeyFile.
	APIKey *string `json:"api-key,omitempty" yaml:"api-key,omitempty"`
	// APIKeyFile is an on-disk location containing the secret key. If APIKeyFile is
	// provided and APIKey is not, the content of the file will be used as the APIKey.
	APIKeyFile *string `json:"api-key-file,omitempty" yaml:"api-key-file,omitempty"`
	// StripeAccount is the connected account all requests are made on behalf of.
	StripeAccount *string `json:"stripe-account,omitempty" yaml:"stripe-account,omitempty"`
	// APIVersion overrides the pinned Stripe-Version header.
	APIVersion *string `json:"api-version,omitempty" yaml:"api-version,omitempty"`
	// BaseURL overrides the live API endpoint, e.g. to point at stripe-mock.
	BaseURL *string `json:"base-url,omitempty" yaml:"base-url,omitempty"`

	// MaxNumRetries controls the number of times the client will retry retryable failures.
	MaxNumRetries *int `json:"max-num-retries,omitempty" yaml:"max-num-retries,omitempty"`
	// InitialBackoff controls the duration of the first backoff interval. This delay will
	// double for each subsequent backoff, capped at the MaxBackoff value.
	InitialBackoff *time.Duration `json:"initial-backoff,omitempty" yaml:"initial-backoff,omitempty"`
	// MaxBackoff controls the maximum duration the client will sleep before retrying a request.
	MaxBackoff *time.Duration `json:"max-backoff,omitempty" yaml:"max-backoff,omitempty"`
	// Timeout bounds each logical request including all of its retries.
	Timeout *time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// ConnectTimeout is the maximum time for the net.Dialer to connect to the remote host.
	ConnectTimeout *time.Duration `json:"connect-timeout,omitempty" yaml:"connect-timeout,omitempty"`
	// DisableHTTP2, if true, restricts the transport to HTTP/1.1.
	DisableHTTP2 *bool `json:"disable-http2,omitempty" yaml:"disable-http2,omitempty"`
	// ProxyFromEnvironment enables reading HTTP proxy information from environment variables.
	ProxyFromEnvironment *bool `json:"proxy-from-environment,omitempty" yaml:"proxy-from-environment,omitempty"`
	// ProxyURL uses the provided URL for proxying the request.
	ProxyURL *string `json:"proxy-url,omitempty" yaml:"proxy-url,omitempty"`
	// MaxIdleConns sets the number of reusable TCP connections the client will keep open.
	MaxIdleConns *int `json:"max-idle-conns,omitempty" yaml:"max-idle-conns,omitempty"`
	// MaxIdleConnsPerHost sets the number of reusable TCP connections the client
	// will keep open per destination host.
	MaxIdleConnsPerHost *int `json:"max-idle-conns-per-host,omitempty" yaml:"max-idle-conns-per-host,omitempty"`

	// Metrics allows disabling metric emission for this client.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

type MetricsConfig struct {
	// Enabled can be used to disable metrics with an explicit 'false'. Defaults to enabled.
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// ConfigFromYAML parses a ClientConfig from its YAML representation.
func ConfigFromYAML(yamlBytes []byte) (ClientConfig, error) {
	var conf ClientConfig
	if err := yaml.UnmarshalStrict(yamlBytes, &conf); err != nil {
		return ClientConfig{}, werror.Wrap(err, "failed to unmarshal client configuration")
	}
	return conf, nil
}

// WithConfig applies all values set in the provided configuration.
func WithConfig(c ClientConfig) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		var params []ClientParam
		apiKey, err := configAPIKey(c)
		if err != nil {
			return err
		}
		if apiKey != "" {
			params = append(params, WithAPIKey(apiKey))
		}
		if c.StripeAccount != nil {
			account, err := ids.ParseAccount(*c.StripeAccount)
			if err != nil {
				return err
			}
			params = append(params, WithStripeAccount(account))
		}
		if c.APIVersion != nil {
			params = append(params, WithAPIVersion(*c.APIVersion))
		}
		if c.BaseURL != nil {
			params = append(params, WithBaseURL(*c.BaseURL))
		}
		if c.MaxNumRetries != nil {
			params = append(params, WithMaxRetries(*c.MaxNumRetries))
		}
		if c.InitialBackoff != nil {
			params = append(params, WithInitialBackoff(*c.InitialBackoff))
		}
		if c.MaxBackoff != nil {
			params = append(params, WithMaxBackoff(*c.MaxBackoff))
		}
		if c.Timeout != nil {
			params = append(params, WithHTTPTimeout(*c.Timeout))
		}
		if c.ConnectTimeout != nil {
			params = append(params, WithDialTimeout(*c.ConnectTimeout))
		}
		if c.DisableHTTP2 != nil && *c.DisableHTTP2 {
			params = append(params, WithDisableHTTP2())
		}
		if c.ProxyFromEnvironment != nil && *c.ProxyFromEnvironment {
			params = append(params, WithProxyFromEnvironment())
		}
		if c.ProxyURL != nil {
			params = append(params, WithProxyURL(*c.ProxyURL))
		}
		if c.MaxIdleConns != nil {
			params = append(params, WithMaxIdleConns(*c.MaxIdleConns))
		}
		if c.MaxIdleConnsPerHost != nil {
			params = append(params, WithMaxIdleConnsPerHost(*c.MaxIdleConnsPerHost))
		}
		if c.Metrics.Enabled != nil && !*c.Metrics.Enabled {
			params = append(params, WithDisableMetrics())
		}
		for _, p := range params {
			if err := p.apply(b); err != nil {
				return err
			}
		}
		return nil
	})
}

func configAPIKey(c ClientConfig) (string, error) {
	if c.APIKey != nil {
		return *c.APIKey, nil
	}
	if c.APIKeyFile != nil {
		content, err := os.ReadFile(*c.APIKeyFile)
		if err != nil {
			return "", werror.Wrap(err, "failed to read api-key-file",
				werror.SafeParam("file", *c.APIKeyFile))
		}
		return strings.TrimSpace(string(content)), nil
	}
	return "", nil
}
