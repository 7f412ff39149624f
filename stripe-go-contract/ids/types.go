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
)

// Every prefixed ID type follows the same contract: Prefixes returns the
// accepted prefix set, IsValidPrefix tests membership, Parse<Type> rejects
// inputs outside the set with a *ParseError, and the JSON decoder applies the
// same validation. Values compare and order by their string form.

var (
	accountPrefixes            = []string{"acct_"}
	applicationFeePrefixes     = []string{"fee_"}
	balanceTransactionPrefixes = []string{"txn_"}
	bankAccountPrefixes        = []string{"ba_"}
	cardPrefixes               = []string{"card_"}
	chargePrefixes             = []string{"ch_", "py_"}
	customerPrefixes           = []string{"cus_"}
	disputePrefixes            = []string{"dp_", "du_", "pdp_"}
	eventPrefixes              = []string{"evt_"}
	filePrefixes               = []string{"file_"}
	invoicePrefixes            = []string{"in_"}
	invoiceItemPrefixes        = []string{"ii_"}
	paymentIntentPrefixes      = []string{"pi_"}
	paymentMethodPrefixes      = []string{"pm_"}
	payoutPrefixes             = []string{"po_"}
	refundPrefixes             = []string{"re_", "pyr_"}
	setupIntentPrefixes        = []string{"seti_"}
	sourcePrefixes             = []string{"src_"}
	subscriptionPrefixes       = []string{"sub_"}
	subscriptionItemPrefixes   = []string{"si_"}
	subscriptionSchedPrefixes  = []string{"sub_sched_"}
	taxRatePrefixes            = []string{"txr_"}
	terminalConfigPrefixes     = []string{"tmc_"}
	terminalLocationPrefixes   = []string{"tml_"}
	terminalReaderPrefixes     = []string{"tmr_"}
	tokenPrefixes              = []string{"tok_", "btok_"}
	topupPrefixes              = []string{"tu_"}
	transferPrefixes           = []string{"tr_"}
	transferReversalPrefixes   = []string{"trr_"}
	webhookEndpointPrefixes    = []string{"we_"}
)

type Account string

func (Account) Prefixes() []string          { return accountPrefixes }
func (Account) IsValidPrefix(s string) bool { return hasAnyPrefix(s, accountPrefixes) }
func (id Account) String() string           { return string(id) }
func ParseAccount(s string) (Account, error) {
	return parsePrefixed[Account]("ids.Account", accountPrefixes, s)
}
func (id *Account) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Account]("ids.Account", accountPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type ApplicationFee string

func (ApplicationFee) Prefixes() []string          { return applicationFeePrefixes }
func (ApplicationFee) IsValidPrefix(s string) bool { return hasAnyPrefix(s, applicationFeePrefixes) }
func (id ApplicationFee) String() string           { return string(id) }
func ParseApplicationFee(s string) (ApplicationFee, error) {
	return parsePrefixed[ApplicationFee]("ids.ApplicationFee", applicationFeePrefixes, s)
}
func (id *ApplicationFee) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[ApplicationFee]("ids.ApplicationFee", applicationFeePrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type BalanceTransaction string

func (BalanceTransaction) Prefixes() []string { return balanceTransactionPrefixes }
func (BalanceTransaction) IsValidPrefix(s string) bool {
	return hasAnyPrefix(s, balanceTransactionPrefixes)
}
func (id BalanceTransaction) String() string { return string(id) }
func ParseBalanceTransaction(s string) (BalanceTransaction, error) {
	return parsePrefixed[BalanceTransaction]("ids.BalanceTransaction", balanceTransactionPrefixes, s)
}
func (id *BalanceTransaction) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[BalanceTransaction]("ids.BalanceTransaction", balanceTransactionPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type BankAccount string

func (BankAccount) Prefixes() []string          { return bankAccountPrefixes }
func (BankAccount) IsValidPrefix(s string) bool { return hasAnyPrefix(s, bankAccountPrefixes) }
func (id BankAccount) String() string           { return string(id) }
func ParseBankAccount(s string) (BankAccount, error) {
	return parsePrefixed[BankAccount]("ids.BankAccount", bankAccountPrefixes, s)
}
func (id *BankAccount) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[BankAccount]("ids.BankAccount", bankAccountPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type Card string

func (Card) Prefixes() []string          { return cardPrefixes }
func (Card) IsValidPrefix(s string) bool { return hasAnyPrefix(s, cardPrefixes) }
func (id Card) String() string           { return string(id) }
func ParseCard(s string) (Card, error)   { return parsePrefixed[Card]("ids.Card", cardPrefixes, s) }
func (id *Card) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Card]("ids.Card", cardPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Charge accepts py_ in addition to ch_: charges created through payment
// intents are issued IDs under the py_ namespace.
type Charge string

func (Charge) Prefixes() []string          { return chargePrefixes }
func (Charge) IsValidPrefix(s string) bool { return hasAnyPrefix(s, chargePrefixes) }
func (id Charge) String() string           { return string(id) }
func ParseCharge(s string) (Charge, error) {
	return parsePrefixed[Charge]("ids.Charge", chargePrefixes, s)
}
func (id *Charge) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Charge]("ids.Charge", chargePrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type Customer string

func (Customer) Prefixes() []string          { return customerPrefixes }
func (Customer) IsValidPrefix(s string) bool { return hasAnyPrefix(s, customerPrefixes) }
func (id Customer) String() string           { return string(id) }
func ParseCustomer(s string) (Customer, error) {
	return parsePrefixed[Customer]("ids.Customer", customerPrefixes, s)
}
func (id *Customer) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Customer]("ids.Customer", customerPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type Dispute string

func (Dispute) Prefixes() []string          { return disputePrefixes }
func (Dispute) IsValidPrefix(s string) bool { return hasAnyPrefix(s, disputePrefixes) }
func (id Dispute) String() string           { return string(id) }
func ParseDispute(s string) (Dispute, error) {
	return parsePrefixed[Dispute]("ids.Dispute", disputePrefixes, s)
}
func (id *Dispute) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Dispute]("ids.Dispute", disputePrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type Event string

func (Event) Prefixes() []string          { return eventPrefixes }
func (Event) IsValidPrefix(s string) bool { return hasAnyPrefix(s, eventPrefixes) }
func (id Event) String() string           { return string(id) }
func ParseEvent(s string) (Event, error)  { return parsePrefixed[Event]("ids.Event", eventPrefixes, s) }
func (id *Event) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Event]("ids.Event", eventPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type File string

func (File) Prefixes() []string          { return filePrefixes }
func (File) IsValidPrefix(s string) bool { return hasAnyPrefix(s, filePrefixes) }
func (id File) String() string           { return string(id) }
func ParseFile(s string) (File, error)   { return parsePrefixed[File]("ids.File", filePrefixes, s) }
func (id *File) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[File]("ids.File", filePrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Invoice is the one ID type with a legal empty form: the upcoming invoice,
// which exists only as a preview and has not been assigned an identifier yet.
// The empty sentinel serializes as JSON null and deserializes from both null
// and "".
type Invoice string

// UpcomingInvoice is the empty sentinel.
const UpcomingInvoice Invoice = ""

func (Invoice) Prefixes() []string          { return invoicePrefixes }
func (Invoice) IsValidPrefix(s string) bool { return hasAnyPrefix(s, invoicePrefixes) }
func (id Invoice) String() string           { return string(id) }

// IsUpcoming reports whether the ID is the upcoming-invoice sentinel.
func (id Invoice) IsUpcoming() bool { return id == UpcomingInvoice }

func ParseInvoice(s string) (Invoice, error) {
	if s == "" {
		return UpcomingInvoice, nil
	}
	return parsePrefixed[Invoice]("ids.Invoice", invoicePrefixes, s)
}

func (id Invoice) MarshalJSON() ([]byte, error) {
	if id.IsUpcoming() {
		return []byte("null"), nil
	}
	return json.Marshal(string(id))
}

func (id *Invoice) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = UpcomingInvoice
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseInvoice(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type InvoiceItem string

func (InvoiceItem) Prefixes() []string          { return invoiceItemPrefixes }
func (InvoiceItem) IsValidPrefix(s string) bool { return hasAnyPrefix(s, invoiceItemPrefixes) }
func (id InvoiceItem) String() string           { return string(id) }
func ParseInvoiceItem(s string) (InvoiceItem, error) {
	return parsePrefixed[InvoiceItem]("ids.InvoiceItem", invoiceItemPrefixes, s)
}
func (id *InvoiceItem) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[InvoiceItem]("ids.InvoiceItem", invoiceItemPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type PaymentIntent string

func (PaymentIntent) Prefixes() []string          { return paymentIntentPrefixes }
func (PaymentIntent) IsValidPrefix(s string) bool { return hasAnyPrefix(s, paymentIntentPrefixes) }
func (id PaymentIntent) String() string           { return string(id) }
func ParsePaymentIntent(s string) (PaymentIntent, error) {
	return parsePrefixed[PaymentIntent]("ids.PaymentIntent", paymentIntentPrefixes, s)
}
func (id *PaymentIntent) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[PaymentIntent]("ids.PaymentIntent", paymentIntentPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type PaymentMethod string

func (PaymentMethod) Prefixes() []string          { return paymentMethodPrefixes }
func (PaymentMethod) IsValidPrefix(s string) bool { return hasAnyPrefix(s, paymentMethodPrefixes) }
func (id PaymentMethod) String() string           { return string(id) }
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	return parsePrefixed[PaymentMethod]("ids.PaymentMethod", paymentMethodPrefixes, s)
}
func (id *PaymentMethod) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[PaymentMethod]("ids.PaymentMethod", paymentMethodPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type Payout string

func (Payout) Prefixes() []string          { return payoutPrefixes }
func (Payout) IsValidPrefix(s string) bool { return hasAnyPrefix(s, payoutPrefixes) }
func (id Payout) String() string           { return string(id) }
func ParsePayout(s string) (Payout, error) {
	return parsePrefixed[Payout]("ids.Payout", payoutPrefixes, s)
}
func (id *Payout) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Payout]("ids.Payout", payoutPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Refund accepts pyr_ in addition to re_ for refunds of py_ charges.
type Refund string

func (Refund) Prefixes() []string          { return refundPrefixes }
func (Refund) IsValidPrefix(s string) bool { return hasAnyPrefix(s, refundPrefixes) }
func (id Refund) String() string           { return string(id) }
func ParseRefund(s string) (Refund, error) {
	return parsePrefixed[Refund]("ids.Refund", refundPrefixes, s)
}
func (id *Refund) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Refund]("ids.Refund", refundPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type SetupIntent string

func (SetupIntent) Prefixes() []string          { return setupIntentPrefixes }
func (SetupIntent) IsValidPrefix(s string) bool { return hasAnyPrefix(s, setupIntentPrefixes) }
func (id SetupIntent) String() string           { return string(id) }
func ParseSetupIntent(s string) (SetupIntent, error) {
	return parsePrefixed[SetupIntent]("ids.SetupIntent", setupIntentPrefixes, s)
}
func (id *SetupIntent) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[SetupIntent]("ids.SetupIntent", setupIntentPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type Source string

func (Source) Prefixes() []string          { return sourcePrefixes }
func (Source) IsValidPrefix(s string) bool { return hasAnyPrefix(s, sourcePrefixes) }
func (id Source) String() string           { return string(id) }
func ParseSource(s string) (Source, error) {
	return parsePrefixed[Source]("ids.Source", sourcePrefixes, s)
}
func (id *Source) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Source]("ids.Source", sourcePrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type Subscription string

func (Subscription) Prefixes() []string          { return subscriptionPrefixes }
func (Subscription) IsValidPrefix(s string) bool { return hasAnyPrefix(s, subscriptionPrefixes) }
func (id Subscription) String() string           { return string(id) }
func ParseSubscription(s string) (Subscription, error) {
	return parsePrefixed[Subscription]("ids.Subscription", subscriptionPrefixes, s)
}
func (id *Subscription) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Subscription]("ids.Subscription", subscriptionPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type SubscriptionItem string

func (SubscriptionItem) Prefixes() []string { return subscriptionItemPrefixes }
func (SubscriptionItem) IsValidPrefix(s string) bool {
	return hasAnyPrefix(s, subscriptionItemPrefixes)
}
func (id SubscriptionItem) String() string { return string(id) }
func ParseSubscriptionItem(s string) (SubscriptionItem, error) {
	return parsePrefixed[SubscriptionItem]("ids.SubscriptionItem", subscriptionItemPrefixes, s)
}
func (id *SubscriptionItem) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[SubscriptionItem]("ids.SubscriptionItem", subscriptionItemPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type SubscriptionSchedule string

func (SubscriptionSchedule) Prefixes() []string { return subscriptionSchedPrefixes }
func (SubscriptionSchedule) IsValidPrefix(s string) bool {
	return hasAnyPrefix(s, subscriptionSchedPrefixes)
}
func (id SubscriptionSchedule) String() string { return string(id) }
func ParseSubscriptionSchedule(s string) (SubscriptionSchedule, error) {
	return parsePrefixed[SubscriptionSchedule]("ids.SubscriptionSchedule", subscriptionSchedPrefixes, s)
}
func (id *SubscriptionSchedule) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[SubscriptionSchedule]("ids.SubscriptionSchedule", subscriptionSchedPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type TaxRate string

func (TaxRate) Prefixes() []string          { return taxRatePrefixes }
func (TaxRate) IsValidPrefix(s string) bool { return hasAnyPrefix(s, taxRatePrefixes) }
func (id TaxRate) String() string           { return string(id) }
func ParseTaxRate(s string) (TaxRate, error) {
	return parsePrefixed[TaxRate]("ids.TaxRate", taxRatePrefixes, s)
}
func (id *TaxRate) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[TaxRate]("ids.TaxRate", taxRatePrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type TerminalConfiguration string

func (TerminalConfiguration) Prefixes() []string { return terminalConfigPrefixes }
func (TerminalConfiguration) IsValidPrefix(s string) bool {
	return hasAnyPrefix(s, terminalConfigPrefixes)
}
func (id TerminalConfiguration) String() string { return string(id) }
func ParseTerminalConfiguration(s string) (TerminalConfiguration, error) {
	return parsePrefixed[TerminalConfiguration]("ids.TerminalConfiguration", terminalConfigPrefixes, s)
}
func (id *TerminalConfiguration) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[TerminalConfiguration]("ids.TerminalConfiguration", terminalConfigPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type TerminalLocation string

func (TerminalLocation) Prefixes() []string { return terminalLocationPrefixes }
func (TerminalLocation) IsValidPrefix(s string) bool {
	return hasAnyPrefix(s, terminalLocationPrefixes)
}
func (id TerminalLocation) String() string { return string(id) }
func ParseTerminalLocation(s string) (TerminalLocation, error) {
	return parsePrefixed[TerminalLocation]("ids.TerminalLocation", terminalLocationPrefixes, s)
}
func (id *TerminalLocation) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[TerminalLocation]("ids.TerminalLocation", terminalLocationPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type TerminalReader string

func (TerminalReader) Prefixes() []string { return terminalReaderPrefixes }
func (TerminalReader) IsValidPrefix(s string) bool {
	return hasAnyPrefix(s, terminalReaderPrefixes)
}
func (id TerminalReader) String() string { return string(id) }
func ParseTerminalReader(s string) (TerminalReader, error) {
	return parsePrefixed[TerminalReader]("ids.TerminalReader", terminalReaderPrefixes, s)
}
func (id *TerminalReader) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[TerminalReader]("ids.TerminalReader", terminalReaderPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type Token string

func (Token) Prefixes() []string          { return tokenPrefixes }
func (Token) IsValidPrefix(s string) bool { return hasAnyPrefix(s, tokenPrefixes) }
func (id Token) String() string           { return string(id) }
func ParseToken(s string) (Token, error)  { return parsePrefixed[Token]("ids.Token", tokenPrefixes, s) }
func (id *Token) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Token]("ids.Token", tokenPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type Topup string

func (Topup) Prefixes() []string          { return topupPrefixes }
func (Topup) IsValidPrefix(s string) bool { return hasAnyPrefix(s, topupPrefixes) }
func (id Topup) String() string           { return string(id) }
func ParseTopup(s string) (Topup, error)  { return parsePrefixed[Topup]("ids.Topup", topupPrefixes, s) }
func (id *Topup) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Topup]("ids.Topup", topupPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type Transfer string

func (Transfer) Prefixes() []string          { return transferPrefixes }
func (Transfer) IsValidPrefix(s string) bool { return hasAnyPrefix(s, transferPrefixes) }
func (id Transfer) String() string           { return string(id) }
func ParseTransfer(s string) (Transfer, error) {
	return parsePrefixed[Transfer]("ids.Transfer", transferPrefixes, s)
}
func (id *Transfer) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[Transfer]("ids.Transfer", transferPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type TransferReversal string

func (TransferReversal) Prefixes() []string { return transferReversalPrefixes }
func (TransferReversal) IsValidPrefix(s string) bool {
	return hasAnyPrefix(s, transferReversalPrefixes)
}
func (id TransferReversal) String() string { return string(id) }
func ParseTransferReversal(s string) (TransferReversal, error) {
	return parsePrefixed[TransferReversal]("ids.TransferReversal", transferReversalPrefixes, s)
}
func (id *TransferReversal) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[TransferReversal]("ids.TransferReversal", transferReversalPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

type WebhookEndpoint string

func (WebhookEndpoint) Prefixes() []string { return webhookEndpointPrefixes }
func (WebhookEndpoint) IsValidPrefix(s string) bool {
	return hasAnyPrefix(s, webhookEndpointPrefixes)
}
func (id WebhookEndpoint) String() string { return string(id) }
func ParseWebhookEndpoint(s string) (WebhookEndpoint, error) {
	return parsePrefixed[WebhookEndpoint]("ids.WebhookEndpoint", webhookEndpointPrefixes, s)
}
func (id *WebhookEndpoint) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalPrefixed[WebhookEndpoint]("ids.WebhookEndpoint", webhookEndpointPrefixes, data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Coupon, Plan, Price and Product IDs are user-supplied free strings; Stripe
// imposes no prefix on them, so neither do we.

type Coupon string

func (id Coupon) String() string { return string(id) }

type Plan string

func (id Plan) String() string { return string(id) }

type Price string

func (id Price) String() string { return string(id) }

type Product string

func (id Product) String() string { return string(id) }
