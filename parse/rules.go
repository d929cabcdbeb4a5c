package parse

import (
	"math/bits"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/token"
)

// Whitespace matches exactly one whitespace byte.
func Whitespace[In Input](c *Cursor[In]) error {
	b, ok := c.peek()
	if !ok || !token.IsWhitespace(b) {
		return ErrNoMatch
	}
	c.i++
	return nil
}

// Padding skips any run of whitespace, including none.
func Padding[In Input](c *Cursor[In]) {
	for c.i < len(c.src) && token.IsWhitespace(c.src[c.i]) {
		c.i++
	}
}

// Literal matches word exactly.
func Literal[In Input](c *Cursor[In], word string) error {
	if len(c.src)-c.i < len(word) || string(c.src[c.i:c.i+len(word)]) != word {
		return c.noMatch(word)
	}
	c.i += len(word)
	return nil
}

// StringRule matches a quoted string and returns its unescaped value.
func StringRule[In Input](c *Cursor[In]) (string, error) {
	return Try(c, stringRule[In])
}

func stringRule[In Input](c *Cursor[In]) (string, error) {
	if !c.consume(token.QuoteChar) {
		return "", c.noMatch("'\"'")
	}
	start := c.i
	for c.i < len(c.src) && token.IsStringByte(c.src[c.i]) {
		c.i++
	}
	if c.consume(token.QuoteChar) {
		return string(c.src[start : c.i-1]), nil
	}
	buf := make([]byte, 0, c.i-start+16)
	buf = append(buf, c.src[start:c.i]...)
	for {
		b, ok := c.peek()
		switch {
		case !ok:
			return "", c.noMatch("'\"'")
		case b == token.QuoteChar:
			c.i++
			return string(buf), nil
		case b == token.Backslash:
			var err error
			buf, err = escape(c, buf)
			if err != nil {
				return "", err
			}
		case token.IsStringByte(b):
			j := c.i
			for j < len(c.src) && token.IsStringByte(c.src[j]) {
				j++
			}
			buf = append(buf, c.src[c.i:j]...)
			c.i = j
		default:
			return "", c.noMatch("string character")
		}
	}
}

// escape decodes one escape sequence at the cursor, which sits on the
// backslash.
func escape[In Input](c *Cursor[In], buf []byte) ([]byte, error) {
	at := c.i
	c.i++
	e, ok := c.peek()
	if !ok {
		return nil, c.noMatch("escape character")
	}
	if e != 'u' {
		u, ok := token.Unescape(e)
		if !ok {
			return nil, c.noMatch("escape character")
		}
		c.i++
		return append(buf, u), nil
	}
	c.i++
	u, err := hex4(c)
	if err != nil {
		return nil, err
	}
	switch {
	case utf16.IsSurrogate(rune(u)) && u < 0xDC00:
		lo, ok := lowSurrogate(c)
		if !ok {
			return nil, &InvalidScalarError{Offset: at, Value: u}
		}
		return utf8.AppendRune(buf, utf16.DecodeRune(rune(u), rune(lo))), nil
	case utf16.IsSurrogate(rune(u)):
		return nil, &InvalidScalarError{Offset: at, Value: u}
	}
	return utf8.AppendRune(buf, rune(u)), nil
}

// lowSurrogate consumes a \uXXXX escape denoting a low surrogate, or
// consumes nothing.
func lowSurrogate[In Input](c *Cursor[In]) (uint16, bool) {
	start := c.i
	if !c.consume(token.Backslash) || !c.consume('u') {
		c.i = start
		return 0, false
	}
	lo, err := hex4(c)
	if err != nil || lo < 0xDC00 || lo > 0xDFFF {
		c.i = start
		return 0, false
	}
	return lo, true
}

func hex4[In Input](c *Cursor[In]) (uint16, error) {
	var u uint16
	for k := 0; k < 4; k++ {
		b, ok := c.peek()
		if !ok {
			return 0, c.noMatch("hex digit")
		}
		h, ok := token.HexValue(b)
		if !ok {
			return 0, c.noMatch("hex digit")
		}
		u = u<<4 | h
		c.i++
	}
	return u, nil
}

// NumberRule matches a number literal. Literals whose value does not fit
// the inline form keep their source text.
func NumberRule[In Input](c *Cursor[In]) (ir.Number, error) {
	return Try(c, numberRule[In])
}

type accum struct {
	units    uint64
	places   uint64
	overflow bool
}

func (a *accum) digit(d byte) {
	if a.overflow {
		return
	}
	hi, lo := bits.Mul64(a.units, 10)
	sum, carry := bits.Add64(lo, uint64(d-'0'), 0)
	if hi != 0 || carry != 0 {
		a.overflow = true
		return
	}
	a.units = sum
}

// scale applies a decimal exponent.
func (a *accum) scale(neg bool, exp uint64) {
	if a.overflow {
		return
	}
	if neg {
		a.places += exp
		return
	}
	if exp <= a.places {
		a.places -= exp
		return
	}
	rem := exp - a.places
	a.places = 0
	if a.units == 0 {
		return
	}
	p, ok := ir.Pow10(rem)
	if !ok {
		a.overflow = true
		return
	}
	hi, lo := bits.Mul64(a.units, p)
	if hi != 0 {
		a.overflow = true
		return
	}
	a.units = lo
}

// expCap bounds exponent accumulation; any larger exponent forces the
// text form anyway.
const expCap = 1 << 32

func numberRule[In Input](c *Cursor[In]) (ir.Number, error) {
	start := c.i
	neg := c.consume(token.Minus)
	b, ok := c.peek()
	if !ok || !token.IsDigit(b) {
		return ir.Number{}, c.noMatch("digit")
	}
	a := &accum{}
	if token.IsNonZeroDigit(b) {
		for ; c.i < len(c.src) && token.IsDigit(c.src[c.i]); c.i++ {
			a.digit(c.src[c.i])
		}
	} else {
		c.i++
	}
	if fracStart := c.i; c.consume(token.Dot) {
		if b, ok := c.peek(); !ok || !token.IsDigit(b) {
			c.noMatch("digit")
			c.i = fracStart
		} else {
			for ; c.i < len(c.src) && token.IsDigit(c.src[c.i]); c.i++ {
				a.digit(c.src[c.i])
				a.places++
			}
		}
	}
	if expStart := c.i; c.i < len(c.src) && token.IsExponent(c.src[c.i]) {
		c.i++
		expNeg := c.consume(token.Minus)
		if !expNeg {
			c.consume(token.Plus)
		}
		if b, ok := c.peek(); !ok || !token.IsDigit(b) {
			c.noMatch("digit")
			c.i = expStart
		} else {
			var exp uint64
			for ; c.i < len(c.src) && token.IsDigit(c.src[c.i]); c.i++ {
				if exp < expCap {
					exp = exp*10 + uint64(c.src[c.i]-'0')
				}
			}
			a.scale(expNeg, exp)
		}
	}
	if a.overflow || a.places > ir.MaxInlinePlaces {
		return ir.Fallback(string(c.src[start:c.i])), nil
	}
	return ir.Inline(neg, a.units, uint32(a.places)), nil
}

// NonFiniteRule matches inf, -inf, nan and snan.
func NonFiniteRule[In Input](c *Cursor[In]) (ir.Number, error) {
	return Try(c, nonFiniteRule[In])
}

func nonFiniteRule[In Input](c *Cursor[In]) (ir.Number, error) {
	switch {
	case Literal(c, "inf") == nil:
		return ir.Infinity(false), nil
	case Literal(c, "-inf") == nil:
		return ir.Infinity(true), nil
	case Literal(c, "nan") == nil:
		return ir.NaN(), nil
	case Literal(c, "snan") == nil:
		return ir.SNaN(), nil
	}
	return ir.Number{}, c.noMatch("number")
}

// ArrayRule matches a bracketed, comma separated list of values.
func ArrayRule[In Input](c *Cursor[In]) (*ir.Node, error) {
	return Try(c, arrayRule[In])
}

func arrayRule[In Input](c *Cursor[In]) (*ir.Node, error) {
	if !c.consume(token.LSquare) {
		return nil, c.noMatch("'['")
	}
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer c.leave()
	node := &ir.Node{Type: ir.ArrayType}
	Padding(c)
	if c.consume(token.RSquare) {
		return node, nil
	}
	for {
		v, err := NodeRule(c)
		if err != nil {
			return nil, err
		}
		node.Values = append(node.Values, v)
		Padding(c)
		if c.consume(token.RSquare) {
			return node, nil
		}
		if !c.consume(token.Comma) {
			return nil, c.noMatch("',' or ']'")
		}
		Padding(c)
	}
}

// ObjectRule matches a braced, comma separated list of key/value pairs.
// Keys keep document order and duplicates are kept.
func ObjectRule[In Input](c *Cursor[In]) (*ir.Node, error) {
	return Try(c, objectRule[In])
}

func objectRule[In Input](c *Cursor[In]) (*ir.Node, error) {
	if !c.consume(token.LCurl) {
		return nil, c.noMatch("'{'")
	}
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer c.leave()
	node := &ir.Node{Type: ir.ObjectType}
	Padding(c)
	if c.consume(token.RCurl) {
		return node, nil
	}
	for {
		kStart := c.i
		k, err := StringRule(c)
		if err != nil {
			return nil, err
		}
		kEnd := c.i
		Padding(c)
		if !c.consume(token.Colon) {
			return nil, c.noMatch("':'")
		}
		Padding(c)
		v, err := NodeRule(c)
		if err != nil {
			return nil, err
		}
		c.markKey(v, kStart, kEnd)
		node.Fields = append(node.Fields, ir.Key(k))
		node.Values = append(node.Values, v)
		Padding(c)
		if c.consume(token.RCurl) {
			return node, nil
		}
		if !c.consume(token.Comma) {
			return nil, c.noMatch("',' or '}'")
		}
		Padding(c)
	}
}

// NodeRule matches any value. Alternatives are tried in the order number,
// string, object, array, true, false, null and, when enabled, the
// non-finite literals.
func NodeRule[In Input](c *Cursor[In]) (*ir.Node, error) {
	start := c.i
	node, err := nodeRule(c)
	if err == nil {
		c.mark(node, start)
	}
	return node, err
}

func nodeRule[In Input](c *Cursor[In]) (*ir.Node, error) {
	n, err := NumberRule(c)
	if err == nil {
		return ir.FromNumber(n), nil
	}
	if err != ErrNoMatch {
		return nil, err
	}
	s, err := StringRule(c)
	if err == nil {
		return ir.FromString(s), nil
	}
	if err != ErrNoMatch {
		return nil, err
	}
	for _, rule := range []func(*Cursor[In]) (*ir.Node, error){ObjectRule[In], ArrayRule[In], keyword[In]} {
		node, err := rule(c)
		if err != ErrNoMatch {
			return node, err
		}
	}
	if c.opts.nonFinite {
		n, err := NonFiniteRule(c)
		if err == nil {
			return ir.FromNumber(n), nil
		}
		if err != ErrNoMatch {
			return nil, err
		}
	}
	return nil, c.noMatch("value")
}

func keyword[In Input](c *Cursor[In]) (*ir.Node, error) {
	switch {
	case Literal(c, "true") == nil:
		return ir.FromBool(true), nil
	case Literal(c, "false") == nil:
		return ir.FromBool(false), nil
	case Literal(c, "null") == nil:
		return ir.Null(), nil
	}
	return nil, ErrNoMatch
}

// RootRule matches a document: an array or object with optional
// surrounding whitespace.
func RootRule[In Input](c *Cursor[In]) (*ir.Node, error) {
	start := c.i
	Padding(c)
	vstart := c.i
	node, err := ObjectRule(c)
	if err == ErrNoMatch {
		node, err = ArrayRule(c)
	}
	if err == ErrNoMatch {
		c.noMatch("'{' or '['")
	}
	if err != nil {
		c.i = start
		return nil, err
	}
	c.mark(node, vstart)
	Padding(c)
	return node, nil
}
