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

// Package apierrors decodes the error envelope Stripe returns on non-2xx
// responses and surfaces it as a typed error carrying the HTTP status and
// the Request-Id header for support diagnostics.
package apierrors

import (
	"errors"
	"fmt"
	"strings"

	werror "github.com/palantir/witchcraft-go-error"
	wparams "github.com/palantir/witchcraft-go-params"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/objcodec"
)

// Error is a structured failure reported by the Stripe API.
type Error struct {
	// Type categorizes the failure, e.g. card_error or invalid_request_error.
	Type ErrorType
	// Code is a short machine-readable reason, empty when Stripe omitted it.
	Code ErrorCode
	// DeclineCode is the card issuer's reason on declines, when provided.
	DeclineCode string
	// Message is human-readable; for card errors it is safe to show to users.
	Message string
	// Param names the request parameter at fault, when the error is
	// parameter-specific.
	Param string
	// DocURL links to Stripe's documentation for the error code.
	DocURL string
	// Charge is the ID of the failed charge on card errors.
	Charge string
	// RequestLogURL links to the request's log entry in the dashboard.
	RequestLogURL string
	// StatusCode is the HTTP status the envelope arrived with.
	StatusCode int
	// RequestID is the Request-Id response header, for support triage.
	RequestID string
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("stripe: ")
	sb.WriteString(string(e.Type))
	if e.Code != "" {
		sb.WriteString("/")
		sb.WriteString(string(e.Code))
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Param != "" {
		fmt.Fprintf(&sb, " (param %q)", e.Param)
	}
	fmt.Fprintf(&sb, " [status %d", e.StatusCode)
	if e.RequestID != "" {
		fmt.Fprintf(&sb, ", request %s", e.RequestID)
	}
	sb.WriteString("]")
	if e.DocURL != "" {
		sb.WriteString(" see ")
		sb.WriteString(e.DocURL)
	}
	return sb.String()
}

// SafeParams implements wparams.ParamStorer so the error composes with
// werror wrapping without losing its coordinates.
func (e *Error) SafeParams() map[string]interface{} {
	return map[string]interface{}{
		"stripeErrorType": string(e.Type),
		"stripeErrorCode": string(e.Code),
		"statusCode":      e.StatusCode,
		"requestId":       e.RequestID,
	}
}

// UnsafeParams implements wparams.ParamStorer. Messages can embed customer
// data.
func (e *Error) UnsafeParams() map[string]interface{} {
	return map[string]interface{}{
		"message": e.Message,
		"param":   e.Param,
	}
}

var _ wparams.ParamStorer = (*Error)(nil)

// FromResponse decodes a Stripe error envelope ({"error": {...}}) received
// with the given HTTP status. It fails when the body is not an envelope;
// callers fall back to a generic transport error in that case.
func FromResponse(statusCode int, requestID string, body []byte) (*Error, error) {
	outer, err := objcodec.Parse(body)
	if err != nil {
		return nil, err
	}
	const typeName = "apierrors.Error"
	inner, err := objcodec.Required[objcodec.Object](outer, typeName, "error")
	if err != nil {
		return nil, err
	}
	errType, err := objcodec.Required[ErrorType](inner, typeName, "type")
	if err != nil {
		return nil, err
	}
	out := &Error{
		Type:       errType,
		StatusCode: statusCode,
		RequestID:  requestID,
	}
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"decline_code", &out.DeclineCode},
		{"message", &out.Message},
		{"param", &out.Param},
		{"doc_url", &out.DocURL},
		{"charge", &out.Charge},
		{"request_log_url", &out.RequestLogURL},
	} {
		v, err := objcodec.Optional[string](inner, typeName, f.name)
		if err != nil {
			return nil, err
		}
		if v != nil {
			*f.dst = *v
		}
	}
	code, err := objcodec.Optional[ErrorCode](inner, typeName, "code")
	if err != nil {
		return nil, err
	}
	if code != nil {
		out.Code = *code
	}
	return out, nil
}

// AsError unwraps err looking for a Stripe API error.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	if rootErr, ok := werror.RootCause(err).(*Error); ok {
		return rootErr, true
	}
	return nil, false
}

// StatusCodeFromError retrieves the HTTP status attached to err, either from
// a Stripe API error or from a werror 'statusCode' param.
func StatusCodeFromError(err error) (statusCode int, ok bool) {
	if apiErr, ok := AsError(err); ok {
		return apiErr.StatusCode, true
	}
	statusCodeI, ok := werror.ParamFromError(err, "statusCode")
	if !ok {
		return 0, false
	}
	statusCode, ok = statusCodeI.(int)
	return statusCode, ok
}

// RequestIDFromError retrieves the Request-Id attached to err, either from a
// Stripe API error or from a werror 'requestId' param.
func RequestIDFromError(err error) (requestID string, ok bool) {
	if apiErr, ok := AsError(err); ok && apiErr.RequestID != "" {
		return apiErr.RequestID, true
	}
	requestIDI, ok := werror.ParamFromError(err, "requestId")
	if !ok {
		return "", false
	}
	requestID, ok = requestIDI.(string)
	return requestID, ok && requestID != ""
}
