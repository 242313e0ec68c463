package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one record of a listing view
type Row = map[string]any

var hundred = decimal.NewFromInt(100)

// keyOf normalizes a key value so that int64(3), "3" and []byte("3") join
func keyOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

// indexBy maps each row's col value to the row. Later rows win on duplicates.
func indexBy(rows []Row, col string) map[string]Row {
	idx := make(map[string]Row, len(rows))
	for _, r := range rows {
		if k := keyOf(r[col]); k != "" {
			idx[k] = r
		}
	}
	return idx
}

// lookup follows the foreign key fk of row into idx and renders the parent
// with name. fallback is returned when the parent is missing.
func lookup(idx map[string]Row, row Row, fk string, name func(Row) string, fallback string) string {
	parent, ok := idx[keyOf(row[fk])]
	if !ok {
		return fallback
	}
	if n := name(parent); n != "" {
		return n
	}
	return fallback
}

func column(col string) func(Row) string {
	return func(r Row) string { return text(r, col) }
}

func fullName(r Row) string {
	return strings.TrimSpace(text(r, "first_name") + " " + text(r, "last_name"))
}

func text(r Row, col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// number reads a numeric column. Unparseable and missing values are zero.
func number(r Row, col string) decimal.Decimal {
	switch v := r[col].(type) {
	case decimal.Decimal:
		return v
	case int64:
		return decimal.NewFromInt(v)
	case int32:
		return decimal.NewFromInt32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return d
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

func sum(rows []Row, col string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(number(r, col))
	}
	return total
}

// percent returns part/total as a percentage rounded to two places, 0 when total is 0
func percent(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total).Round(2)
}

func percentOf(part, total int) decimal.Decimal {
	return percent(decimal.NewFromInt(int64(part)), decimal.NewFromInt(int64(total)))
}

// average returns total/n rounded to two places, 0 when n is 0
func average(total decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}

// Count is one bucket of a group count
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// countBy groups rows by label and returns buckets sorted by descending
// count, then label.
func countBy(rows []Row, label func(Row) string) []Count {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[label(r)]++
	}
	out := make([]Count, 0, len(counts))
	for l, n := range counts {
		out = append(out, Count{Label: l, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// orDefault substitutes fallback for an empty label
func orDefault(label func(Row) string, fallback string) func(Row) string {
	return func(r Row) string {
		if l := label(r); l != "" {
			return l
		}
		return fallback
	}
}
