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

package useragent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUserAgent(t *testing.T) {
	ua := Default().String()
	assert.True(t, strings.HasPrefix(ua, LibraryName+"/"+LibraryVersion), ua)
	assert.Contains(t, ua, "go/")
}

func TestPushProduct(t *testing.T) {
	product, err := NewProduct("billing-worker", "2.1.0")
	require.NoError(t, err)

	b := Default()
	b.Push(product)
	assert.Contains(t, b.String(), "billing-worker/2.1.0")
}

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct("", "1.0.0")
	require.Error(t, err)

	_, err = NewProduct("has space", "1.0.0")
	require.Error(t, err)
}
