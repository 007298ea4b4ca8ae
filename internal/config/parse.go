// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"go/scanner"
	"go/token"
)

// ParsePairs splits a marker argument list into options.
//
// The grammar is
//
//	args    = [ pair { "," pair } [ "," ] ] .
//	pair    = identifier [ "=" literal ] .
//	literal = basic_lit | "true" | "false" .
func ParsePairs(args string) ([]Pair, error) {
	p := newParser(args)

	var pairs []Pair
	for p.tok != token.EOF {
		pair, err := p.pair()
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, pair)

		switch p.tok {
		case token.COMMA:
			p.next()

		case token.EOF:

		default:
			return nil, &Error{Key: pair.Name, Reason: "expected ',', found " + p.describe()}
		}
	}

	if p.errs.Len() > 0 {
		return nil, &Error{Reason: p.errs[0].Msg}
	}

	return pairs, nil
}

type parser struct {
	scanner scanner.Scanner
	errs    scanner.ErrorList

	tok token.Token
	lit string
}

func newParser(src string) *parser {
	p := &parser{}

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	p.scanner.Init(file, []byte(src), p.errs.Add, 0)
	p.next()

	return p
}

func (p *parser) next() {
	for {
		_, p.tok, p.lit = p.scanner.Scan()
		// automatically inserted semicolons are not part of the argument list
		if p.tok != token.SEMICOLON || p.lit != "\n" {
			return
		}
	}
}

func (p *parser) pair() (Pair, error) {
	if p.tok != token.IDENT {
		return Pair{}, &Error{Reason: "expected option name, found " + p.describe()}
	}

	pair := Pair{Name: p.lit}
	p.next()

	if p.tok != token.ASSIGN {
		return pair, nil
	}

	p.next()

	if !p.literal() {
		return Pair{}, &Error{Key: pair.Name, Reason: "expected literal value, found " + p.describe()}
	}

	pair.Value = p.lit
	p.next()

	return pair, nil
}

func (p *parser) literal() bool {
	switch p.tok {
	case token.INT, token.FLOAT, token.IMAG, token.CHAR, token.STRING:
		return true

	case token.IDENT:
		return p.lit == "true" || p.lit == "false"

	default:
		return false
	}
}

func (p *parser) describe() string {
	switch {
	case p.tok == token.EOF:
		return "end of list"

	case p.lit != "":
		return p.lit

	default:
		return "'" + p.tok.String() + "'"
	}
}
