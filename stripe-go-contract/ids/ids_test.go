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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCharge(t *testing.T) {
	for _, test := range []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "charge prefix", input: "ch_1OqJ4s2eZvKYlo2C"},
		{name: "payment prefix", input: "py_1OqJ4s2eZvKYlo2C"},
		{name: "wrong prefix", input: "zz_1OqJ4s2eZvKYlo2C", wantErr: true},
		{name: "refund prefix", input: "re_1OqJ4s2eZvKYlo2C", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "no underscore", input: "ch1OqJ4s2eZvKYlo2C", wantErr: true},
	} {
		t.Run(test.name, func(t *testing.T) {
			id, err := ParseCharge(test.input)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.input, id.String())
		})
	}
}

func TestParseChargeErrorNamesExpectedPrefixes(t *testing.T) {
	_, err := ParseCharge("zz_123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ids.Charge")
	assert.Contains(t, err.Error(), `"ch_"`)
	assert.Contains(t, err.Error(), `"py_"`)
}

func TestChargeUnmarshalJSON(t *testing.T) {
	var id Charge
	require.NoError(t, json.Unmarshal([]byte(`"ch_123"`), &id))
	assert.Equal(t, Charge("ch_123"), id)

	err := json.Unmarshal([]byte(`"cus_123"`), &id)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "cus_123", parseErr.Input)
}

func TestIDRoundTrip(t *testing.T) {
	id, err := ParseCustomer("cus_9s6XKzkNRiz8i3")
	require.NoError(t, err)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"cus_9s6XKzkNRiz8i3"`, string(data))

	var back Customer
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, id, back)
}

func TestInvoiceUpcomingSentinel(t *testing.T) {
	id, err := ParseInvoice("")
	require.NoError(t, err)
	assert.True(t, id.IsUpcoming())

	data, err := json.Marshal(UpcomingInvoice)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var fromNull Invoice
	require.NoError(t, json.Unmarshal([]byte("null"), &fromNull))
	assert.True(t, fromNull.IsUpcoming())

	var fromID Invoice
	require.NoError(t, json.Unmarshal([]byte(`"in_1OqJ4s"`), &fromID))
	assert.False(t, fromID.IsUpcoming())
	assert.Equal(t, "in_1OqJ4s", fromID.String())
}

func TestBalanceTransactionSourceDispatch(t *testing.T) {
	for _, test := range []struct {
		input string
		check func(t *testing.T, id BalanceTransactionSource)
	}{
		{
			input: "ch_123",
			check: func(t *testing.T, id BalanceTransactionSource) {
				charge, ok := id.Charge()
				require.True(t, ok)
				assert.Equal(t, Charge("ch_123"), charge)
				_, ok = id.Refund()
				assert.False(t, ok)
			},
		},
		{
			input: "py_123",
			check: func(t *testing.T, id BalanceTransactionSource) {
				charge, ok := id.Charge()
				require.True(t, ok)
				assert.Equal(t, Charge("py_123"), charge)
			},
		},
		{
			input: "po_123",
			check: func(t *testing.T, id BalanceTransactionSource) {
				payout, ok := id.Payout()
				require.True(t, ok)
				assert.Equal(t, Payout("po_123"), payout)
			},
		},
		{
			input: "pyr_123",
			check: func(t *testing.T, id BalanceTransactionSource) {
				refund, ok := id.Refund()
				require.True(t, ok)
				assert.Equal(t, Refund("pyr_123"), refund)
			},
		},
	} {
		t.Run(test.input, func(t *testing.T) {
			id, err := ParseBalanceTransactionSource(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.input, id.String())
			test.check(t, id)
		})
	}
}

func TestBalanceTransactionSourceUnknownPrefix(t *testing.T) {
	_, err := ParseBalanceTransactionSource("zz_123")
	require.Error(t, err)

	var id BalanceTransactionSource
	require.Error(t, json.Unmarshal([]byte(`"zz_123"`), &id))
}

func TestBalanceTransactionSourceJSONRoundTrip(t *testing.T) {
	var id BalanceTransactionSource
	require.NoError(t, json.Unmarshal([]byte(`"tr_123"`), &id))

	transfer, ok := id.Transfer()
	require.True(t, ok)
	assert.Equal(t, Transfer("tr_123"), transfer)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"tr_123"`, string(data))
}

func TestPaymentSourceDispatch(t *testing.T) {
	id, err := ParsePaymentSource("card_123")
	require.NoError(t, err)
	card, ok := id.Card()
	require.True(t, ok)
	assert.Equal(t, Card("card_123"), card)

	_, ok = id.BankAccount()
	assert.False(t, ok)
}

func TestFreeFormIDs(t *testing.T) {
	// prices and products carry user-chosen IDs, any string is accepted.
	var price Price
	require.NoError(t, json.Unmarshal([]byte(`"gold-tier"`), &price))
	assert.Equal(t, "gold-tier", price.String())
}
