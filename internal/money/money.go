// Package money holds currency amounts as integer centavos.
package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is an amount of money in the smallest currency unit.
type Cents int64

const Zero Cents = 0

// MaxAmount bounds every parsed amount: R$ 100.000.000,00 either way.
const MaxAmount Cents = 10_000_000_000

var (
	ErrInvalidAmount = errors.New("invalid BRL amount")
	ErrOverflow      = errors.New("amount out of range")
)

var maxDecimal = MaxAmount.Decimal()

var brlPattern = regexp.MustCompile(`^\d{1,3}(\.\d{3})*,\d{2}$`)

// FromDecimal rounds half away from zero to two places. Amounts beyond
// MaxAmount yield zero.
func FromDecimal(d decimal.Decimal) Cents {
	r := d.Round(2)
	if r.Abs().GreaterThan(maxDecimal) {
		return Zero
	}

	return Cents(r.Shift(2).IntPart())
}

func FromFloat(f float64) Cents {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero
	}

	return FromDecimal(decimal.NewFromFloat(f))
}

// Parse coerces loosely formatted input ("10.5", "10,50", "R$ 1.234,56").
// Anything that is not a number yields zero.
func Parse(s string) Cents {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.NewReplacer(" ", "", "\u00a0", "").Replace(s)

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero
	}

	return FromDecimal(d)
}

// Mul multiplies by a quantity and reports ErrOverflow instead of wrapping.
func (c Cents) Mul(q int) (Cents, error) {
	p := c * Cents(q)
	if q != 0 && (p/Cents(q) != c || (q == -1 && c == math.MinInt64)) {
		return Zero, fmt.Errorf("%w: %s x %d", ErrOverflow, c, q)
	}

	return p, nil
}

// Add sums two amounts and reports ErrOverflow instead of wrapping.
func (c Cents) Add(o Cents) (Cents, error) {
	s := c + o
	if (o > 0 && s < c) || (o < 0 && s > c) {
		return Zero, fmt.Errorf("%w: %s + %s", ErrOverflow, c, o)
	}

	return s, nil
}

func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// FormatBRL renders pt-BR currency, e.g. "R$ 1.234,56".
func FormatBRL(c Cents) string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}

	digits := strconv.FormatInt(v/100, 10)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), v%100)
}

// ParseBRL is the strict inverse of FormatBRL.
func ParseBRL(s string) (Cents, error) {
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")

	if !strings.HasPrefix(body, "R$ ") {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	body = strings.TrimPrefix(body, "R$ ")
	if !brlPattern.MatchString(body) {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(strings.ReplaceAll(body, ".", ""), ",", "."))
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if d.GreaterThan(maxDecimal) {
		return Zero, fmt.Errorf("%w: %q", ErrOverflow, s)
	}

	c := FromDecimal(d)
	if neg {
		c = -c
	}

	return c, nil
}

func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.Decimal().StringFixed(2)), nil
}

// UnmarshalJSON accepts numbers and numeric strings; anything else decodes to zero.
func (c *Cents) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*c = Zero
			return nil
		}

		*c = Parse(s)
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		*c = Zero
		return nil
	}

	*c = FromDecimal(d)
	return nil
}
