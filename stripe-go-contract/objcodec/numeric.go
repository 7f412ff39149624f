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

package objcodec

import (
	"time"
)

// Amount is a monetary value in the currency's smallest unit (cents for
// usd). It is signed: refunds and balance debits go negative.
type Amount int64

// Timestamp is a Unix epoch in seconds, as Stripe transmits all times.
type Timestamp int64

// Time converts to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// TimestampOf converts a time.Time to the wire representation.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(t.Unix())
}

// Decimal is a decimal number carried as a string to preserve precision,
// used for fractional unit amounts on prices and tax rates. The core never
// parses it into a float.
type Decimal string
