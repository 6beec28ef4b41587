package snapshot

import "strconv"

// sizeUnits in longest-match-first order so "KB" is not read as "B".
var sizeUnits = []struct {
	token  string
	factor int64
}{
	{"KB", 1 << 10},
	{"MB", 1 << 20},
	{"GB", 1 << 30},
	{"TB", 1 << 40},
	{"B", 1},
}

// ParseSize decodes a size field like "[   1.0 KB]" into bytes.
//
// It scans left to right for the first decimal number (at most one
// fractional part) followed, after optional whitespace, by one of the
// unit tokens B/KB/MB/GB/TB. Unit tokens are case-sensitive. The value
// is multiplied by the unit factor and truncated to an integer. A field
// with no such match decodes to 0; that is not an error.
func ParseSize(field string) int64 {
	for i := 0; i < len(field); i++ {
		if !isDigit(field[i]) {
			continue
		}

		j := i
		for j < len(field) && isDigit(field[j]) {
			j++
		}
		if j+1 < len(field) && field[j] == '.' && isDigit(field[j+1]) {
			j += 2
			for j < len(field) && isDigit(field[j]) {
				j++
			}
		}
		numEnd := j

		for j < len(field) && (field[j] == ' ' || field[j] == '\t') {
			j++
		}

		factor, ok := matchUnit(field[j:])
		if !ok {
			// Resume scanning after this number.
			i = numEnd - 1
			continue
		}

		value, err := strconv.ParseFloat(field[i:numEnd], 64)
		if err != nil {
			return 0
		}
		return int64(value * float64(factor))
	}
	return 0
}

func matchUnit(s string) (int64, bool) {
	for _, unit := range sizeUnits {
		if len(s) >= len(unit.token) && s[:len(unit.token)] == unit.token {
			return unit.factor, true
		}
	}
	return 0, false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
