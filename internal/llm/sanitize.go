package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/specials-tracker/constants"
)

var (
	reDecimal  = regexp.MustCompile(`^\d+(\.\d+)?$`)
	reCurrency = regexp.MustCompile(`^\$?\s*(\d+(?:\.\d+)?)\s*(?:usd)?$`)
)

// SanitizeSpecials normalizes a decoded model array so it can pass the strict schema:
// - drops non-object items and items without day_of_week or special_details
// - coerces numeric prices to two-decimal strings, everything else to "Varies"
// - removes unknown keys (bar_name/source_url are stamped later, never by the model)
// - trims strings
func SanitizeSpecials(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var items []any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&items); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 4)
	out := make([]map[string]any, 0, len(items))
	for i, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			dropped = append(dropped, fmt.Sprintf("[%d](not object)", i))
			continue
		}

		day := trimmedString(m["day_of_week"])
		details := trimmedString(m["special_details"])
		if day == "" || details == "" {
			dropped = append(dropped, fmt.Sprintf("[%d](missing fields)", i))
			continue
		}

		for k := range m {
			switch k {
			case "day_of_week", "special_details", "price":
			default:
				dropped = append(dropped, fmt.Sprintf("[%d].%s(unknown)", i, k))
			}
		}

		out = append(out, map[string]any{
			"day_of_week":     day,
			"special_details": details,
			"price":           NormalizePrice(m["price"]),
		})
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.parse.sanitize", "dropped", dropped)
	}
	return b, dropped, nil
}

// NormalizePrice maps a model price value to "N.NN" or "Varies". Amounts are
// parsed as decimals and rounded half away from zero to cents.
func NormalizePrice(v any) string {
	var (
		d   decimal.Decimal
		err error
	)
	switch t := v.(type) {
	case json.Number:
		d, err = decimal.NewFromString(t.String())
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return constants.Varies
		}
		d = decimal.NewFromFloat(t)
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		switch {
		case s == "" || s == "varies":
			return constants.Varies
		case reDecimal.MatchString(s):
			d, err = decimal.NewFromString(s)
		default:
			m := reCurrency.FindStringSubmatch(s)
			if m == nil {
				return constants.Varies
			}
			d, err = decimal.NewFromString(m[1])
		}
	default:
		return constants.Varies
	}
	if err != nil || d.IsNegative() {
		return constants.Varies
	}
	return d.StringFixed(2)
}

func trimmedString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
