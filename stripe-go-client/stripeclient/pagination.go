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
	"context"

	werror "github.com/palantir/witchcraft-go-error"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/form"
	"github.com/arlyon/async-stripe-go/stripe-go-contract/page"
)

// A Paginator walks a list endpoint cursor by cursor, fetching the next page
// lazily when the current one is exhausted. It is not safe for concurrent
// use.
//
//	p := stripeclient.NewPaginator(client, "/v1/charges", params, func(c types.Charge) string { return c.ID.String() })
//	for p.Next(ctx) {
//		charge := p.Current()
//		...
//	}
//	if err := p.Err(); err != nil {
//		...
//	}
type Paginator[T any] struct {
	client   Client
	path     string
	params   *form.Values
	cursorOf func(T) string

	// reverse walks backwards using ending_before instead of starting_after.
	reverse bool

	buf    []T
	idx    int
	cursor string
	done   bool
	err    error
	cur    T
}

// NewPaginator returns a forward paginator over the list endpoint at path.
// cursorOf extracts the ID used as the starting_after cursor of the next
// page. params must not contain starting_after or ending_before; the
// paginator owns the cursor.
func NewPaginator[T any](client Client, path string, params *form.Values, cursorOf func(T) string) *Paginator[T] {
	return &Paginator[T]{client: client, path: path, params: params, cursorOf: cursorOf}
}

// NewReversePaginator returns a paginator that walks the list backwards from
// the cursor in params, using each page's first ID as the ending_before
// cursor of the next fetch.
func NewReversePaginator[T any](client Client, path string, params *form.Values, cursorOf func(T) string) *Paginator[T] {
	return &Paginator[T]{client: client, path: path, params: params, cursorOf: cursorOf, reverse: true}
}

// Next advances the paginator, fetching the next page if the current one is
// exhausted. It returns false once all pages are consumed or an error
// occurred; consult Err afterwards.
func (p *Paginator[T]) Next(ctx context.Context) bool {
	if p.err != nil {
		return false
	}
	if p.idx < len(p.buf) {
		p.cur = p.buf[p.idx]
		p.idx++
		return true
	}
	if p.done {
		return false
	}

	var list page.List[T]
	if err := p.fetch(ctx, &list); err != nil {
		p.err = err
		return false
	}
	p.done = !list.HasMore
	if len(list.Data) == 0 {
		// a page with has_more and no data would otherwise loop forever.
		p.done = true
		return false
	}

	if p.reverse {
		p.cursor = p.cursorOf(list.Data[0])
	} else {
		p.cursor = p.cursorOf(list.Data[len(list.Data)-1])
	}

	p.buf = list.Data
	p.cur = p.buf[0]
	p.idx = 1
	return true
}

func (p *Paginator[T]) fetch(ctx context.Context, list *page.List[T]) error {
	params := &form.Values{}
	if p.params != nil {
		params = p.params.Clone()
	}
	if p.cursor != "" {
		if p.reverse {
			params.Set("ending_before", p.cursor)
		} else {
			params.Set("starting_after", p.cursor)
		}
	}
	_, err := p.client.Get(ctx,
		WithPath(p.path),
		WithQueryValues(params),
		WithJSONResponse(list),
	)
	return err
}

// Current returns the element the last call to Next advanced to.
func (p *Paginator[T]) Current() T {
	return p.cur
}

// Err returns the error that terminated iteration, if any.
func (p *Paginator[T]) Err() error {
	return p.err
}

// All consumes the remaining pages and collects up to max elements. The cap
// is required so a large collection can not exhaust memory; All returns an
// error once more than max elements are available.
func (p *Paginator[T]) All(ctx context.Context, max int) ([]T, error) {
	if max <= 0 {
		return nil, werror.Error("pagination: All requires a positive cap", werror.SafeParam("max", max))
	}
	var out []T
	for p.Next(ctx) {
		if len(out) == max {
			return nil, werror.Error("pagination: list exceeds cap", werror.SafeParam("max", max))
		}
		out = append(out, p.Current())
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
