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

// Package useragent assembles the User-Agent header identifying this
// library, its version and the host platform, e.g.
//
//	async-stripe-go/0.1.0 go/go1.21.5 (linux; amd64)
package useragent

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"

	werror "github.com/palantir/witchcraft-go-error"
)

// LibraryName and LibraryVersion identify this module on the wire.
const (
	LibraryName    = "async-stripe-go"
	LibraryVersion = "0.1.0"
)

var (
	namePattern    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9\-._]*$`)
	versionPattern = regexp.MustCompile(`^[a-zA-Z0-9]+(\.[a-zA-Z0-9]+)*(-[a-zA-Z0-9.]+)?$`)
	commentPattern = regexp.MustCompile(`^[^,;()]+$`)
)

// Product is a single name/version component of a user-agent string.
type Product struct {
	name     string
	version  string
	comments []string
}

func NewProduct(name, version string, comments ...string) (Product, error) {
	if !namePattern.MatchString(name) {
		return Product{}, werror.Error("product name is not valid for User-Agent",
			werror.SafeParam("name", name))
	}
	if !versionPattern.MatchString(version) {
		return Product{}, werror.Error("product version is not valid for User-Agent",
			werror.SafeParam("version", version))
	}
	for _, comment := range comments {
		if !commentPattern.MatchString(comment) {
			return Product{}, werror.Error("product comment is not valid for User-Agent",
				werror.SafeParam("comment", comment))
		}
	}
	return Product{name: name, version: version, comments: comments}, nil
}

func (p Product) String() string {
	str := p.name + "/" + p.version
	if len(p.comments) > 0 {
		str = fmt.Sprintf("%s (%s)", str, strings.Join(p.comments, "; "))
	}
	return str
}

// Builder accumulates products into a full user-agent value.
type Builder struct {
	products []Product
}

func (b *Builder) Push(product ...Product) {
	b.products = append(b.products, product...)
}

func (b *Builder) String() string {
	strs := make([]string, 0, len(b.products))
	for _, p := range b.products {
		strs = append(strs, p.String())
	}
	return strings.Join(strs, " ")
}

// Default returns the builder pre-populated with this library and the Go
// runtime/platform products.
func Default() *Builder {
	b := &Builder{}
	lib, err := NewProduct(LibraryName, LibraryVersion, runtime.GOOS, runtime.GOARCH)
	if err == nil {
		b.Push(lib)
	}
	goProduct, err := NewProduct("go", strings.TrimPrefix(runtime.Version(), "go"))
	if err == nil {
		b.Push(goProduct)
	}
	return b
}
