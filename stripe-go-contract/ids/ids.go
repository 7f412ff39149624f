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

// Package ids defines one string newtype per Stripe resource identifier so
// that passing a customer ID where a charge ID is expected fails to compile.
// Each type validates its accepted prefix set on parse and on JSON decode.
package ids

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError is returned when an input does not begin with any prefix
// accepted by the target ID type.
type ParseError struct {
	// TypeName is the Go name of the ID type, e.g. "ids.Charge".
	TypeName string
	// Prefixes is the accepted prefix set of the target type. Empty for
	// polymorphic IDs that failed to match any member type.
	Prefixes []string
	// Input is the rejected value.
	Input string
}

func (e *ParseError) Error() string {
	if len(e.Prefixes) == 0 {
		return fmt.Sprintf("invalid %s, unknown id prefix", e.TypeName)
	}
	quoted := make([]string, len(e.Prefixes))
	for i, p := range e.Prefixes {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	var expected string
	switch len(quoted) {
	case 1:
		expected = quoted[0]
	default:
		expected = strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
	}
	return fmt.Sprintf("invalid %s, expected id to start with %s", e.TypeName, expected)
}

// SafeParams implements wparams.ParamStorer.
func (e *ParseError) SafeParams() map[string]interface{} {
	return map[string]interface{}{
		"idType":   e.TypeName,
		"prefixes": e.Prefixes,
	}
}

// UnsafeParams implements wparams.ParamStorer. The input may embed live
// account data and is never safe to log.
func (e *ParseError) UnsafeParams() map[string]interface{} {
	return map[string]interface{}{"input": e.Input}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func parsePrefixed[T ~string](typeName string, prefixes []string, s string) (T, error) {
	if !hasAnyPrefix(s, prefixes) {
		return "", &ParseError{TypeName: typeName, Prefixes: prefixes, Input: s}
	}
	return T(s), nil
}

func unmarshalPrefixed[T ~string](typeName string, prefixes []string, data []byte) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return parsePrefixed[T](typeName, prefixes, s)
}
