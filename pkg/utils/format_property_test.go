package utils

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_FormatCountRoundTrips(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("stripping separators recovers the integer", prop.ForAll(
		func(n int64) bool {
			formatted := FormatCount(n)
			parsed, err := strconv.ParseInt(strings.ReplaceAll(formatted, ",", ""), 10, 64)
			return err == nil && parsed == n
		},
		gen.Int64(),
	))

	properties.Property("groups between separators have three digits", prop.ForAll(
		func(n int64) bool {
			formatted := strings.TrimPrefix(FormatCount(n), "-")
			groups := strings.Split(formatted, ",")
			for i, g := range groups {
				if i == 0 {
					if len(g) < 1 || len(g) > 3 {
						return false
					}
					continue
				}
				if len(g) != 3 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestProperty_FormatPriceParsesBack(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("formatted price parses within rounding error", prop.ForAll(
		func(v float64, precision int) bool {
			formatted := FormatPrice(v, precision)
			parsed, err := strconv.ParseFloat(formatted, 64)
			if err != nil {
				return false
			}
			tol := 0.5 * math.Pow(10, -float64(precision))
			return math.Abs(parsed-v) <= tol
		},
		gen.Float64Range(-1e6, 1e6),
		gen.IntRange(0, 8),
	))

	properties.TestingRun(t)
}

func TestFormatCount(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		30000:    "30,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for n, want := range cases {
		if got := FormatCount(n); got != want {
			t.Errorf("FormatCount(%d) = %q, want %q", n, got, want)
		}
	}
}
