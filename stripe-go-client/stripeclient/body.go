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

package stripeclient

import (
	"bytes"
	"io"
	"net/http"

	"github.com/palantir/pkg/bytesbuffers"
	werror "github.com/palantir/witchcraft-go-error"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/codecs"
)

// bodyMiddleware encodes the request payload before the round trip and
// decodes the response payload after it. It must be the outermost middleware
// so that the error decoder has already consumed error responses by the time
// the output is decoded.
type bodyMiddleware struct {
	requestInput   interface{}
	requestEncoder codecs.Encoder

	// if rawOutput is true, the body of the response is not drained or closed
	// before returning to the caller.
	rawOutput       bool
	responseOutput  interface{}
	responseDecoder codecs.Decoder

	bufferPool bytesbuffers.Pool
}

func (b *bodyMiddleware) RoundTrip(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	cleanup, err := b.setRequestBody(req)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	resp, respErr := next.RoundTrip(req)

	if err := b.readResponse(resp, respErr); err != nil {
		return nil, err
	}
	return resp, respErr
}

func (b *bodyMiddleware) setRequestBody(req *http.Request) (func(), error) {
	cleanup := func() {}
	if b.requestInput == nil {
		return cleanup, nil
	}

	var buf *bytes.Buffer
	if b.bufferPool != nil {
		buf = b.bufferPool.Get()
		cleanup = func() { b.bufferPool.Put(buf) }
	} else {
		buf = new(bytes.Buffer)
	}

	if err := b.requestEncoder.Encode(buf, b.requestInput); err != nil {
		cleanup()
		return nil, werror.Wrap(err, "failed to encode request object")
	}

	if buf.Len() != 0 {
		req.Body = io.NopCloser(buf)
		req.ContentLength = int64(buf.Len())
		bodyBytes := buf.Bytes()
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(bodyBytes)), nil
		}
	} else {
		req.Body = http.NoBody
		req.GetBody = func() (io.ReadCloser, error) { return http.NoBody, nil }
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", b.requestEncoder.ContentType())
	}
	return cleanup, nil
}

func (b *bodyMiddleware) readResponse(resp *http.Response, respErr error) error {
	if b.rawOutput && respErr == nil {
		return nil
	}

	// the response body must always be drained so the connection is reusable.
	defer drainBody(resp)

	if respErr != nil || resp == nil || b.responseOutput == nil {
		return nil
	}
	if resp.Body == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := b.responseDecoder.Decode(resp.Body, b.responseOutput); err != nil {
		return werror.Wrap(err, "failed to decode response object")
	}
	return nil
}
