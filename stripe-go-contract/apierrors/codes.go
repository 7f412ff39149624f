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

package apierrors

import (
	"encoding/json"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/apienum"
)

// ErrorType is the top-level category of a Stripe API error. Open enum: the
// server is free to introduce categories we have not compiled in.
type ErrorType string

const (
	ErrorTypeAPI            ErrorType = "api_error"
	ErrorTypeCard           ErrorType = "card_error"
	ErrorTypeIdempotency    ErrorType = "idempotency_error"
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error"
	ErrorTypeRateLimit      ErrorType = "rate_limit_error"
	ErrorTypeAuthentication ErrorType = "authentication_error"
)

var knownErrorTypes = map[ErrorType]struct{}{
	ErrorTypeAPI:            {},
	ErrorTypeCard:           {},
	ErrorTypeIdempotency:    {},
	ErrorTypeInvalidRequest: {},
	ErrorTypeRateLimit:      {},
	ErrorTypeAuthentication: {},
}

func (t ErrorType) String() string { return string(t) }

func (t ErrorType) Known() bool {
	_, ok := knownErrorTypes[t]
	return ok
}

func (t *ErrorType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed := ErrorType(s)
	if !parsed.Known() {
		apienum.WarnUnknown("apierrors.ErrorType", s)
	}
	*t = parsed
	return nil
}

// ErrorCode is Stripe's short machine-readable reason. The full set is large
// and grows; only the codes programs commonly branch on are compiled in, and
// the enum stays open for the rest.
type ErrorCode string

const (
	CodeAccountInvalid               ErrorCode = "account_invalid"
	CodeAmountTooLarge               ErrorCode = "amount_too_large"
	CodeAmountTooSmall               ErrorCode = "amount_too_small"
	CodeAPIKeyExpired                ErrorCode = "api_key_expired"
	CodeAuthenticationRequired       ErrorCode = "authentication_required"
	CodeBalanceInsufficient          ErrorCode = "balance_insufficient"
	CodeCardDeclined                 ErrorCode = "card_declined"
	CodeChargeAlreadyCaptured        ErrorCode = "charge_already_captured"
	CodeChargeAlreadyRefunded        ErrorCode = "charge_already_refunded"
	CodeChargeDisputed               ErrorCode = "charge_disputed"
	CodeCouponExpired                ErrorCode = "coupon_expired"
	CodeCurrencyNotSupported         ErrorCode = "currency_not_supported"
	CodeExpiredCard                  ErrorCode = "expired_card"
	CodeIdempotencyKeyInUse          ErrorCode = "idempotency_key_in_use"
	CodeIncorrectCVC                 ErrorCode = "incorrect_cvc"
	CodeIncorrectNumber              ErrorCode = "incorrect_number"
	CodeInvalidExpiryMonth           ErrorCode = "invalid_expiry_month"
	CodeInvalidExpiryYear            ErrorCode = "invalid_expiry_year"
	CodeMissing                      ErrorCode = "missing"
	CodeParameterInvalidEmpty        ErrorCode = "parameter_invalid_empty"
	CodeParameterMissing             ErrorCode = "parameter_missing"
	CodeParameterUnknown             ErrorCode = "parameter_unknown"
	CodePaymentIntentUnexpectedState ErrorCode = "payment_intent_unexpected_state"
	CodeProcessingError              ErrorCode = "processing_error"
	CodeRateLimit                    ErrorCode = "rate_limit"
	CodeResourceAlreadyExists        ErrorCode = "resource_already_exists"
	CodeResourceMissing              ErrorCode = "resource_missing"
	CodeTestmodeChargesOnly          ErrorCode = "testmode_charges_only"
	CodeTokenAlreadyUsed             ErrorCode = "token_already_used"
)

var knownErrorCodes = map[ErrorCode]struct{}{
	CodeAccountInvalid: {}, CodeAmountTooLarge: {}, CodeAmountTooSmall: {},
	CodeAPIKeyExpired: {}, CodeAuthenticationRequired: {},
	CodeBalanceInsufficient: {}, CodeCardDeclined: {},
	CodeChargeAlreadyCaptured: {}, CodeChargeAlreadyRefunded: {},
	CodeChargeDisputed: {}, CodeCouponExpired: {}, CodeCurrencyNotSupported: {},
	CodeExpiredCard: {}, CodeIdempotencyKeyInUse: {}, CodeIncorrectCVC: {},
	CodeIncorrectNumber: {}, CodeInvalidExpiryMonth: {},
	CodeInvalidExpiryYear: {}, CodeMissing: {}, CodeParameterInvalidEmpty: {},
	CodeParameterMissing: {}, CodeParameterUnknown: {},
	CodePaymentIntentUnexpectedState: {}, CodeProcessingError: {},
	CodeRateLimit: {}, CodeResourceAlreadyExists: {}, CodeResourceMissing: {},
	CodeTestmodeChargesOnly: {}, CodeTokenAlreadyUsed: {},
}

func (c ErrorCode) String() string { return string(c) }

func (c ErrorCode) Known() bool {
	_, ok := knownErrorCodes[c]
	return ok
}

func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed := ErrorCode(s)
	if !parsed.Known() {
		apienum.WarnUnknown("apierrors.ErrorCode", s)
	}
	*c = parsed
	return nil
}
