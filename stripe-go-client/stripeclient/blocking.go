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
)

const defaultBlockingTimeout = 30 * time.Second

// BlockingClient executes requests without a caller-supplied context,
// bounding each call with a fixed timeout instead. It exists for programs
// that do not thread contexts through their call stacks; prefer the
// context-aware Client everywhere else.
type BlockingClient struct {
	client  Client
	timeout time.Duration
}

// NewBlockingClient wraps client in a blocking facade. A timeout of zero
// means the 30 second default.
func NewBlockingClient(client Client, timeout time.Duration) *BlockingClient {
	if timeout == 0 {
		timeout = defaultBlockingTimeout
	}
	return &BlockingClient{client: client, timeout: timeout}
}

func (c *BlockingClient) Do(params ...RequestParam) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	return c.client.Do(ctx, params...)
}

func (c *BlockingClient) Get(params ...RequestParam) (*http.Response, error) {
	return c.Do(append(params, WithRequestMethod(http.MethodGet))...)
}

func (c *BlockingClient) Post(params ...RequestParam) (*http.Response, error) {
	return c.Do(append(params, WithRequestMethod(http.MethodPost))...)
}

func (c *BlockingClient) Delete(params ...RequestParam) (*http.Response, error) {
	return c.Do(append(params, WithRequestMethod(http.MethodDelete))...)
}
