package ir

import (
	"math"
	"strconv"
	"strings"
)

type NumberKind uint8

const (
	InlineNumber NumberKind = iota
	FallbackNumber
	InfinityNumber
	NaNNumber
	SNaNNumber
)

func (k NumberKind) String() string {
	switch k {
	case InlineNumber:
		return "inline"
	case FallbackNumber:
		return "fallback"
	case InfinityNumber:
		return "infinity"
	case NaNNumber:
		return "nan"
	case SNaNNumber:
		return "snan"
	default:
		return "<unknown number kind>"
	}
}

// Number is a numeric literal.
//
// An inline number is the exact decimal ±Units × 10^-Places. A fallback
// number keeps the literal text verbatim because it cannot be held inline.
// Infinity, NaN and SNaN are the IEEE-754 special values; Neg only applies
// to inline and infinity numbers.
type Number struct {
	Kind   NumberKind
	Neg    bool
	Units  uint64
	Places uint32
	Text   string
}

// MaxInlinePlaces bounds the decimal places of an inline number produced by
// parsing. Literals normalizing beyond it are kept as fallback text.
const MaxInlinePlaces = 400

// powers of ten, exact in their respective types.
var (
	pow10u64 = [20]uint64{
		1,
		10,
		100,
		1000,
		10000,
		100000,
		1000000,
		10000000,
		100000000,
		1000000000,
		10000000000,
		100000000000,
		1000000000000,
		10000000000000,
		100000000000000,
		1000000000000000,
		10000000000000000,
		100000000000000000,
		1000000000000000000,
		10000000000000000000,
	}
	pow10f64 = [20]float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
		1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	}
	pow10f32 = [11]float32{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	}
)

// canonical bit patterns for the non-finite values.
const (
	nanBits64  = 0x7FF8000000000001
	snanBits64 = 0x7FF4000000000000
	nanBits32  = 0x7FC00001
	snanBits32 = 0x7FA00000
)

// Pow10 returns 10^n for 0 <= n <= 19 and false otherwise.
func Pow10(n uint64) (uint64, bool) {
	if n >= uint64(len(pow10u64)) {
		return 0, false
	}
	return pow10u64[n], true
}

func Inline(neg bool, units uint64, places uint32) Number {
	return Number{Kind: InlineNumber, Neg: neg, Units: units, Places: places}
}

func Fallback(text string) Number {
	return Number{Kind: FallbackNumber, Text: text}
}

func Infinity(neg bool) Number {
	return Number{Kind: InfinityNumber, Neg: neg}
}

func NaN() Number {
	return Number{Kind: NaNNumber}
}

func SNaN() Number {
	return Number{Kind: SNaNNumber}
}

func NumberFromInt(v int64) Number {
	if v < 0 {
		// -(v+1)+1 avoids overflowing on math.MinInt64
		return Inline(true, uint64(-(v+1))+1, 0)
	}
	return Inline(false, uint64(v), 0)
}

func NumberFromUint(v uint64) Number {
	return Inline(false, v, 0)
}

// NumberFromFloat classifies f and stores finite values as their shortest
// decimal rendering, which reparses to the identical float64.
func NumberFromFloat(f float64) Number {
	bits := math.Float64bits(f)
	switch {
	case math.IsNaN(f):
		if bits&(1<<51) == 0 {
			return SNaN()
		}
		return NaN()
	case math.IsInf(f, 0):
		return Infinity(f < 0)
	}
	return Fallback(strconv.FormatFloat(f, 'g', -1, 64))
}

// NumberFromFloat32 is NumberFromFloat for float32. It classifies the
// float32 bits directly since widening may quiet a signaling NaN.
func NumberFromFloat32(f float32) Number {
	bits := math.Float32bits(f)
	switch {
	case bits&0x7F800000 == 0x7F800000 && bits&0x007FFFFF != 0:
		if bits&(1<<22) == 0 {
			return SNaN()
		}
		return NaN()
	case bits&0x7FFFFFFF == 0x7F800000:
		return Infinity(bits&0x80000000 != 0)
	}
	return Fallback(strconv.FormatFloat(float64(f), 'g', -1, 32))
}

func (n Number) IsFinite() bool {
	return n.Kind == InlineNumber || n.Kind == FallbackNumber
}

// IsInteger reports whether n is an integer literal: an inline number
// without decimal places or fallback text made only of digits.
func (n Number) IsInteger() bool {
	switch n.Kind {
	case InlineNumber:
		return n.Places == 0
	case FallbackNumber:
		return isIntegerLiteral(n.Text)
	default:
		return false
	}
}

func isIntegerLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// magnitude returns the sign and magnitude of an integer literal.
func (n Number) magnitude(target string) (bool, uint64, error) {
	switch n.Kind {
	case InlineNumber:
		if n.Places != 0 {
			return false, 0, &NumberError{Kind: NotInteger, Number: n, Target: target}
		}
		return n.Neg, n.Units, nil
	case FallbackNumber:
		if !isIntegerLiteral(n.Text) {
			return false, 0, &NumberError{Kind: NotInteger, Number: n, Target: target}
		}
		neg := strings.HasPrefix(n.Text, "-")
		u, err := strconv.ParseUint(strings.TrimPrefix(n.Text, "-"), 10, 64)
		if err != nil {
			return false, 0, &NumberError{Kind: Overflow, Number: n, Target: target}
		}
		return neg, u, nil
	default:
		return false, 0, &NumberError{Kind: NotInteger, Number: n, Target: target}
	}
}

func (n Number) signed(bits uint, target string) (int64, error) {
	neg, mag, err := n.magnitude(target)
	if err != nil {
		return 0, err
	}
	limit := uint64(1) << (bits - 1)
	if neg {
		if mag > limit {
			return 0, &NumberError{Kind: Overflow, Number: n, Target: target}
		}
		return int64(^mag + 1), nil
	}
	if mag > limit-1 {
		return 0, &NumberError{Kind: Overflow, Number: n, Target: target}
	}
	return int64(mag), nil
}

func (n Number) unsigned(bits uint, target string) (uint64, error) {
	neg, mag, err := n.magnitude(target)
	if err != nil {
		return 0, err
	}
	if neg && mag != 0 {
		return 0, &NumberError{Kind: Overflow, Number: n, Target: target}
	}
	if mag > uint64(math.MaxUint64)>>(64-bits) {
		return 0, &NumberError{Kind: Overflow, Number: n, Target: target}
	}
	return mag, nil
}

func (n Number) Int64() (int64, error) { return n.signed(64, "int64") }

func (n Number) Int32() (int32, error) {
	v, err := n.signed(32, "int32")
	return int32(v), err
}

func (n Number) Int16() (int16, error) {
	v, err := n.signed(16, "int16")
	return int16(v), err
}

func (n Number) Int8() (int8, error) {
	v, err := n.signed(8, "int8")
	return int8(v), err
}

func (n Number) Int() (int, error) {
	v, err := n.signed(strconv.IntSize, "int")
	return int(v), err
}

func (n Number) Uint64() (uint64, error) { return n.unsigned(64, "uint64") }

func (n Number) Uint32() (uint32, error) {
	v, err := n.unsigned(32, "uint32")
	return uint32(v), err
}

func (n Number) Uint16() (uint16, error) {
	v, err := n.unsigned(16, "uint16")
	return uint16(v), err
}

func (n Number) Uint8() (uint8, error) {
	v, err := n.unsigned(8, "uint8")
	return uint8(v), err
}

func (n Number) Uint() (uint, error) {
	v, err := n.unsigned(strconv.IntSize, "uint")
	return uint(v), err
}

// Float64 converts n to the nearest float64.
//
// Inline numbers whose operands are exact in float64 are divided by a power
// of ten, which rounds correctly; everything else goes through
// strconv.ParseFloat. Out of range literals give ±Inf or ±0.
func (n Number) Float64() float64 {
	switch n.Kind {
	case InlineNumber:
		if int(n.Places) < len(pow10f64) && n.Units <= 1<<53 {
			f := float64(n.Units) / pow10f64[n.Places]
			if n.Neg {
				f = -f
			}
			return f
		}
		return parseFloat(n.String(), 64)
	case FallbackNumber:
		return parseFloat(n.Text, 64)
	case InfinityNumber:
		if n.Neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case NaNNumber:
		return math.Float64frombits(nanBits64)
	case SNaNNumber:
		return math.Float64frombits(snanBits64)
	default:
		panic("number kind")
	}
}

// Float32 converts n to the nearest float32 without passing through
// float64, so that rounding happens once and signaling NaNs survive.
func (n Number) Float32() float32 {
	switch n.Kind {
	case InlineNumber:
		if int(n.Places) < len(pow10f32) && n.Units <= 1<<24 {
			f := float32(n.Units) / pow10f32[n.Places]
			if n.Neg {
				f = -f
			}
			return f
		}
		return float32(parseFloat(n.String(), 32))
	case FallbackNumber:
		return float32(parseFloat(n.Text, 32))
	case InfinityNumber:
		if n.Neg {
			return float32(math.Inf(-1))
		}
		return float32(math.Inf(1))
	case NaNNumber:
		return math.Float32frombits(nanBits32)
	case SNaNNumber:
		return math.Float32frombits(snanBits32)
	default:
		panic("number kind")
	}
}

func parseFloat(text string, bitSize int) float64 {
	f, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

// AppendText appends the literal text of n to dst.
func (n Number) AppendText(dst []byte) []byte {
	switch n.Kind {
	case InlineNumber:
		if n.Neg {
			dst = append(dst, '-')
		}
		if n.Places == 0 {
			return strconv.AppendUint(dst, n.Units, 10)
		}
		var buf [20]byte
		digits := strconv.AppendUint(buf[:0], n.Units, 10)
		places := int(n.Places)
		if len(digits) <= places {
			dst = append(dst, '0', '.')
			for i := len(digits); i < places; i++ {
				dst = append(dst, '0')
			}
			return append(dst, digits...)
		}
		split := len(digits) - places
		dst = append(dst, digits[:split]...)
		dst = append(dst, '.')
		return append(dst, digits[split:]...)
	case FallbackNumber:
		return append(dst, n.Text...)
	case InfinityNumber:
		if n.Neg {
			return append(dst, "-inf"...)
		}
		return append(dst, "inf"...)
	case NaNNumber:
		return append(dst, "nan"...)
	case SNaNNumber:
		return append(dst, "snan"...)
	default:
		panic("number kind")
	}
}

func (n Number) String() string {
	return string(n.AppendText(nil))
}

// Equal compares representations: 1.10 and 1.1 are different numbers.
func (n Number) Equal(o Number) bool {
	if n.Kind != o.Kind {
		return false
	}
	switch n.Kind {
	case InlineNumber:
		return n.Neg == o.Neg && n.Units == o.Units && n.Places == o.Places
	case FallbackNumber:
		return n.Text == o.Text
	case InfinityNumber:
		return n.Neg == o.Neg
	default:
		return true
	}
}
