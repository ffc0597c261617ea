package sqlgen

import (
	"fmt"
	"strconv"
	"time"

	"github.com/miajio/nlsql/pkg/lexer"
)

var months = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

// ISODate converts "21 de julio de 2025" to "2025-07-21". ok is false when
// the text is not exactly a long Spanish date or names an impossible day.
func ISODate(text string) (iso string, ok bool) {
	m := lexer.LongDate.FindStringSubmatch(text)
	if m == nil || len(m[0]) != len(text) {
		return "", false
	}
	month, found := months[m[2]]
	if !found {
		return "", false
	}
	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day), true
}
