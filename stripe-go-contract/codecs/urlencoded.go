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

package codecs

import (
	"io"

	werror "github.com/palantir/witchcraft-go-error"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/form"
)

const contentTypeFormURLEncoded = "application/x-www-form-urlencoded"

// FormURLEncoded encodes *form.Values or parameter structs as
// application/x-www-form-urlencoded request bodies using Stripe's bracket
// convention. It is an Encoder only: Stripe never responds in this format.
var FormURLEncoded Encoder = codecFormURLEncoded{}

type codecFormURLEncoded struct{}

func (codecFormURLEncoded) ContentType() string {
	return contentTypeFormURLEncoded
}

func (c codecFormURLEncoded) Encode(w io.Writer, v interface{}) error {
	out, err := c.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return werror.Wrap(err, "write failed")
}

func (codecFormURLEncoded) Marshal(v interface{}) ([]byte, error) {
	if values, ok := v.(*form.Values); ok {
		return []byte(values.Encode()), nil
	}
	values, err := form.Marshal(v)
	if err != nil {
		return nil, werror.Wrap(err, "form.Marshal")
	}
	return []byte(values.Encode()), nil
}
