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

package apienum

import (
	"bytes"
	"testing"

	"github.com/palantir/witchcraft-go-logging/wlog"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/palantir/witchcraft-go-logging/wlog-zap"
)

func TestWarnUnknownLogsOncePerValue(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(svc1log.New(&buf, wlog.WarnLevel))

	WarnUnknown("currency.Currency", "xts")
	first := buf.Len()
	assert.NotZero(t, first)
	assert.Contains(t, buf.String(), "currency.Currency")

	// the same pair again is silent.
	WarnUnknown("currency.Currency", "xts")
	assert.Equal(t, first, buf.Len())

	// a different value logs again.
	WarnUnknown("currency.Currency", "xxx")
	assert.Greater(t, buf.Len(), first)
}

func TestParseClosed(t *testing.T) {
	known := []string{"month", "year"}

	require.NoError(t, ParseClosed("plan.Interval", "month", known))

	err := ParseClosed("plan.Interval", "decade", known)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan.Interval")
}
