// Copyright 2026 The LabRAD-Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package labrad

// Parse reads a LabRAD type tag and returns the Type it names. It fails
// with *TypeParseError on the first malformed byte or unterminated
// construct. An empty tag parses to Empty.
//
// This is a one-pass recursive-descent parser over the tag's bytes, mirroring
// the grammar in the type language:
//
//	type   := empty | scalar | str | value | complex | time | list | cluster | error
//	scalar := 'b' | 'i' | 'w' | 't'
//	str    := 's'
//	value  := 'v' [ '[' units ']' ]
//	complex:= 'c' [ '[' units ']' ]
//	list   := '*' [ DIGIT+ ] type
//	cluster:= '(' type+ ')'
//	error  := 'E' [ type ]
//	units  := any chars up to matching ']'
func Parse(tag string) (Type, error) {
	p := &tagParser{tag: tag}
	p.skipIgnorable()
	if p.atEnd() {
		return Empty(), nil
	}
	t, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	p.skipIgnorable()
	if !p.atEnd() {
		return Type{}, &TypeParseError{Tag: tag, Position: p.pos, Reason: "unexpected trailing input"}
	}
	return t, nil
}

type tagParser struct {
	tag string
	pos int
}

func (p *tagParser) atEnd() bool { return p.pos >= len(p.tag) }

func (p *tagParser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.tag[p.pos]
}

func (p *tagParser) advance() byte {
	b := p.tag[p.pos]
	p.pos++
	return b
}

// skipIgnorable skips whitespace and commas, which the grammar allows
// anywhere between type constructors (most usefully between cluster
// members).
func (p *tagParser) skipIgnorable() {
	for !p.atEnd() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

func (p *tagParser) errorf(reason string) error {
	return &TypeParseError{Tag: p.tag, Position: p.pos, Reason: reason}
}

func (p *tagParser) parseType() (Type, error) {
	p.skipIgnorable()
	if p.atEnd() {
		return Type{}, p.errorf("expected a type, found end of input")
	}
	switch c := p.peek(); c {
	case '_':
		p.advance()
		return Empty(), nil
	case 'b':
		p.advance()
		return Bool(), nil
	case 'i':
		p.advance()
		return Int(), nil
	case 'w':
		p.advance()
		return Word(), nil
	case 't':
		p.advance()
		return Time(), nil
	case 's':
		p.advance()
		return Str(), nil
	case 'v':
		p.advance()
		units, has, err := p.maybeUnits()
		if err != nil {
			return Type{}, err
		}
		if has {
			return ValueWithUnits(units), nil
		}
		return Value(), nil
	case 'c':
		p.advance()
		units, has, err := p.maybeUnits()
		if err != nil {
			return Type{}, err
		}
		if has {
			return ComplexWithUnits(units), nil
		}
		return Complex(), nil
	case '*':
		return p.parseList()
	case '(':
		return p.parseCluster()
	case 'E':
		return p.parseError()
	default:
		return Type{}, p.errorf("unrecognized type character " + string(c))
	}
}

// maybeUnits parses an optional "[units]" suffix, returning the verbatim
// units text (no normalization: "m/s" and "m s^-1" are preserved exactly as
// written).
func (p *tagParser) maybeUnits() (string, bool, error) {
	if p.atEnd() || p.peek() != '[' {
		return "", false, nil
	}
	p.advance() // '['
	start := p.pos
	for {
		if p.atEnd() {
			return "", false, p.errorf("unterminated units, expected ']'")
		}
		if p.peek() == ']' {
			units := p.tag[start:p.pos]
			p.advance() // ']'
			return units, true, nil
		}
		p.advance()
	}
}

// maybeDigits parses an optional run of decimal digits, used for a List's
// depth prefix. It returns ok=false if no digit is present at the cursor.
func (p *tagParser) maybeDigits() (int, bool) {
	start := p.pos
	for !p.atEnd() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	n := 0
	for i := start; i < p.pos; i++ {
		n = n*10 + int(p.tag[i]-'0')
	}
	return n, true
}

func (p *tagParser) parseList() (Type, error) {
	p.advance() // '*'
	depth, ok := p.maybeDigits()
	if !ok {
		depth = 1
	}
	elem, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	return List(depth, elem), nil
}

func (p *tagParser) parseCluster() (Type, error) {
	p.advance() // '('
	var children []Type
	for {
		p.skipIgnorable()
		if p.atEnd() {
			return Type{}, p.errorf("unterminated cluster, expected ')'")
		}
		if p.peek() == ')' {
			p.advance()
			break
		}
		c, err := p.parseType()
		if err != nil {
			return Type{}, err
		}
		children = append(children, c)
	}
	if len(children) == 0 {
		return Type{}, p.errorf("cluster must contain at least one child")
	}
	return Cluster(children...), nil
}

// parseError parses "E" optionally followed by a payload type. Lookahead
// decides whether a payload follows: if the next non-ignorable byte could
// not start a type, the Error has no payload (equivalently, payload type
// Empty).
func (p *tagParser) parseError() (Type, error) {
	p.advance() // 'E'
	save := p.pos
	p.skipIgnorable()
	if p.atEnd() || !p.startsType(p.peek()) {
		p.pos = save
		return ErrorType(nil), nil
	}
	payload, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	return ErrorType(&payload), nil
}

func (p *tagParser) startsType(c byte) bool {
	switch c {
	case '_', 'b', 'i', 'w', 't', 's', 'v', 'c', '*', '(', 'E':
		return true
	default:
		return false
	}
}
