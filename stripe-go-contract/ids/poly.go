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

package ids

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResourceID is implemented by every prefixed ID newtype in this package.
// Polymorphic IDs hold one of their member types behind this interface.
type ResourceID interface {
	fmt.Stringer
	Prefixes() []string
}

// leadingPrefix returns the input through its first underscore, e.g.
// "ch_123" -> "ch_". Dispatch on this substring decides the member type.
func leadingPrefix(s string) string {
	if i := strings.IndexByte(s, '_'); i >= 0 {
		return s[:i+1]
	}
	return ""
}

// BalanceTransactionSource identifies whichever resource gave rise to a
// balance transaction. The active member is recovered from the ID prefix.
type BalanceTransactionSource struct {
	id ResourceID
}

func ParseBalanceTransactionSource(s string) (BalanceTransactionSource, error) {
	switch leadingPrefix(s) {
	case "fee_":
		return BalanceTransactionSource{id: ApplicationFee(s)}, nil
	case "ch_", "py_":
		return BalanceTransactionSource{id: Charge(s)}, nil
	case "dp_", "du_", "pdp_":
		return BalanceTransactionSource{id: Dispute(s)}, nil
	case "ii_":
		return BalanceTransactionSource{id: InvoiceItem(s)}, nil
	case "po_":
		return BalanceTransactionSource{id: Payout(s)}, nil
	case "re_", "pyr_":
		return BalanceTransactionSource{id: Refund(s)}, nil
	case "tu_":
		return BalanceTransactionSource{id: Topup(s)}, nil
	case "trr_":
		return BalanceTransactionSource{id: TransferReversal(s)}, nil
	case "tr_":
		return BalanceTransactionSource{id: Transfer(s)}, nil
	}
	return BalanceTransactionSource{}, &ParseError{TypeName: "ids.BalanceTransactionSource", Input: s}
}

// Underlying returns the active member, or nil for the zero value.
func (id BalanceTransactionSource) Underlying() ResourceID { return id.id }

func (id BalanceTransactionSource) String() string {
	if id.id == nil {
		return ""
	}
	return id.id.String()
}

func (id BalanceTransactionSource) Charge() (Charge, bool) {
	v, ok := id.id.(Charge)
	return v, ok
}

func (id BalanceTransactionSource) Dispute() (Dispute, bool) {
	v, ok := id.id.(Dispute)
	return v, ok
}

func (id BalanceTransactionSource) Payout() (Payout, bool) {
	v, ok := id.id.(Payout)
	return v, ok
}

func (id BalanceTransactionSource) Refund() (Refund, bool) {
	v, ok := id.id.(Refund)
	return v, ok
}

func (id BalanceTransactionSource) Transfer() (Transfer, bool) {
	v, ok := id.id.(Transfer)
	return v, ok
}

func (id BalanceTransactionSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *BalanceTransactionSource) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBalanceTransactionSource(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// PaymentSource identifies a customer's attached payment instrument: a bank
// account, a legacy card, or a source object.
type PaymentSource struct {
	id ResourceID
}

func ParsePaymentSource(s string) (PaymentSource, error) {
	switch leadingPrefix(s) {
	case "ba_":
		return PaymentSource{id: BankAccount(s)}, nil
	case "card_":
		return PaymentSource{id: Card(s)}, nil
	case "src_":
		return PaymentSource{id: Source(s)}, nil
	}
	return PaymentSource{}, &ParseError{TypeName: "ids.PaymentSource", Input: s}
}

func (id PaymentSource) Underlying() ResourceID { return id.id }

func (id PaymentSource) String() string {
	if id.id == nil {
		return ""
	}
	return id.id.String()
}

func (id PaymentSource) BankAccount() (BankAccount, bool) {
	v, ok := id.id.(BankAccount)
	return v, ok
}

func (id PaymentSource) Card() (Card, bool) {
	v, ok := id.id.(Card)
	return v, ok
}

func (id PaymentSource) Source() (Source, bool) {
	v, ok := id.id.(Source)
	return v, ok
}

func (id PaymentSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *PaymentSource) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePaymentSource(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
