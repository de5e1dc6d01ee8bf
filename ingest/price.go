package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"mbp10/domain"
)

// ParsePrice converts decimal price text ("50000.123456") into a
// domain.Price scaled by domain.PriceScale.
//
// The original collaborator this is modeled on does the conversion with a
// float64 round trip (stod then multiply by 1e6), which loses precision at
// the high end of the representable range. This parses the integer and
// fractional parts separately and combines them with plain integer
// arithmetic, so the result is exact for any price that fits in an int64.
func ParsePrice(s string) (domain.Price, error) {
	if s == "" {
		return 0, nil
	}

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	} else if s[0] == '+' {
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ingest: parse price %q: %w", s, err)
	}

	var frac int64
	if hasFrac {
		switch {
		case len(fracPart) > 6:
			fracPart = fracPart[:6]
		case len(fracPart) < 6:
			fracPart = fracPart + strings.Repeat("0", 6-len(fracPart))
		}
		if fracPart != "" {
			frac, err = strconv.ParseInt(fracPart, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("ingest: parse price %q: %w", s, err)
			}
		}
	}

	price := whole*domain.PriceScale + frac
	if neg {
		price = -price
	}
	return domain.Price(price), nil
}

// FormatPrice renders p as decimal text with exactly six fractional
// digits, matching the output collaborator's contract.
func FormatPrice(p domain.Price) string {
	v := int64(p)
	neg := v < 0
	if neg {
		v = -v
	}
	whole := v / domain.PriceScale
	frac := v % domain.PriceScale

	if neg {
		return fmt.Sprintf("-%d.%06d", whole, frac)
	}
	return fmt.Sprintf("%d.%06d", whole, frac)
}
