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

// Package currency defines the ISO-4217 currency tag used across the Stripe
// data model. Amounts are always denominated in the currency's smallest unit.
package currency

import (
	"encoding/json"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/apienum"
)

// Currency is a lowercase ISO-4217 code. It is an open enum: codes outside
// the known set decode to their raw string so that newly supported
// currencies do not break clients.
type Currency string

const (
	AED Currency = "aed"
	AUD Currency = "aud"
	BGN Currency = "bgn"
	BRL Currency = "brl"
	CAD Currency = "cad"
	CHF Currency = "chf"
	CNY Currency = "cny"
	CZK Currency = "czk"
	DKK Currency = "dkk"
	EUR Currency = "eur"
	GBP Currency = "gbp"
	HKD Currency = "hkd"
	HUF Currency = "huf"
	IDR Currency = "idr"
	ILS Currency = "ils"
	INR Currency = "inr"
	JPY Currency = "jpy"
	KRW Currency = "krw"
	MXN Currency = "mxn"
	MYR Currency = "myr"
	NOK Currency = "nok"
	NZD Currency = "nzd"
	PHP Currency = "php"
	PLN Currency = "pln"
	RON Currency = "ron"
	SEK Currency = "sek"
	SGD Currency = "sgd"
	THB Currency = "thb"
	TRY Currency = "try"
	USD Currency = "usd"
	VND Currency = "vnd"
	ZAR Currency = "zar"
)

var known = map[Currency]struct{}{
	AED: {}, AUD: {}, BGN: {}, BRL: {}, CAD: {}, CHF: {}, CNY: {}, CZK: {},
	DKK: {}, EUR: {}, GBP: {}, HKD: {}, HUF: {}, IDR: {}, ILS: {}, INR: {},
	JPY: {}, KRW: {}, MXN: {}, MYR: {}, NOK: {}, NZD: {}, PHP: {}, PLN: {},
	RON: {}, SEK: {}, SGD: {}, THB: {}, TRY: {}, USD: {}, VND: {}, ZAR: {},
}

func (c Currency) String() string { return string(c) }

// Known reports whether the code is in the compiled-in set.
func (c Currency) Known() bool {
	_, ok := known[c]
	return ok
}

func (c *Currency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed := Currency(s)
	if !parsed.Known() {
		apienum.WarnUnknown("currency.Currency", s)
	}
	*c = parsed
	return nil
}
