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

// Package apienum carries the shared behavior of Stripe's string enums.
//
// Response-side enums are open: a value the client does not know widens into
// its raw string instead of failing the decode, so new server values never
// break deserialization. Request-side enums are closed: parsing an unknown
// string is an error, and unknown values are never transmitted.
package apienum

import (
	"os"
	"sync"

	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
)

var (
	loggerMu sync.RWMutex
	logger   svc1log.Logger = svc1log.New(os.Stderr, wlog.WarnLevel)

	seenUnknown sync.Map
)

// SetLogger replaces the logger used for unknown-value warnings. Passing nil
// silences them.
func SetLogger(l svc1log.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// WarnUnknown records that an open enum observed a value outside its known
// set. Each (enum, value) pair is logged at most once per process.
func WarnUnknown(enumName, value string) {
	if _, loaded := seenUnknown.LoadOrStore(enumName+"\x00"+value, struct{}{}); loaded {
		return
	}
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l == nil {
		return
	}
	l.Warn("Received unknown enum value; treating as open variant.",
		svc1log.SafeParam("enum", enumName),
		svc1log.UnsafeParam("value", value))
}

// ParseClosed validates a closed enum's wire value against its known set.
func ParseClosed(enumName, value string, known []string) error {
	for _, k := range known {
		if value == k {
			return nil
		}
	}
	return werror.Error("unknown value for closed enum "+enumName,
		werror.SafeParam("enum", enumName),
		werror.SafeParam("known", known),
		werror.UnsafeParam("value", value))
}
