package dataset

import (
	"strconv"
	"strings"
)

// missingValues are the cell texts read as null, following dataframe reader defaults.
var missingValues = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsMissing reports whether a raw cell is read as null.
func IsMissing(cell string) bool {
	_, ok := missingValues[cell]
	return ok
}

func parseInt(cell string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
	return v, err == nil
}

func parseFloat(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	// strconv accepts hex floats and digit separators that CSV tooling treats as text.
	if strings.ContainsAny(s, "xXpP_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// inferType picks the narrowest type that holds every non-missing cell of column col.
// A column with no rows at all is Text.
func inferType(records [][]string, col int) Type {
	if len(records) == 0 {
		return Text
	}

	allInt, hasMissing := true, false
	for _, rec := range records {
		cell := rec[col]
		if IsMissing(cell) {
			hasMissing = true
			continue
		}
		if allInt {
			if _, ok := parseInt(cell); ok {
				continue
			}
			allInt = false
		}
		if _, ok := parseFloat(cell); !ok {
			return Text
		}
	}

	if allInt && !hasMissing {
		return Integer
	}
	return Float
}

// convert turns a raw cell into the Go value stored for type t.
func convert(cell string, t Type) any {
	if IsMissing(cell) {
		return nil
	}
	switch t {
	case Integer:
		v, _ := parseInt(cell)
		return v
	case Float:
		v, _ := parseFloat(cell)
		return v
	default:
		return cell
	}
}
