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

// Package codecs provides the encoders and decoders used on the Stripe wire:
// JSON for responses and x-www-form-urlencoded for request bodies.
package codecs

import (
	"io"
)

// Encoder serializes a value onto the wire.
type Encoder interface {
	// ContentType returns the Content-Type header value for encoded content.
	ContentType() string
	Encode(w io.Writer, v interface{}) error
	Marshal(v interface{}) ([]byte, error)
}

// Decoder deserializes a value off the wire.
type Decoder interface {
	// Accept returns the Accept header value this decoder expects.
	Accept() string
	Decode(r io.Reader, v interface{}) error
	Unmarshal(data []byte, v interface{}) error
}

// Codec is both an Encoder and Decoder for a single format.
type Codec interface {
	Encoder
	Decoder
}
