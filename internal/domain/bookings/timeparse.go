package bookings

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"petcare-marketplace/internal/platform/apperr"
)

// Formatos tolerados, en orden. El primero que parsea gana.
var (
	dateLayouts = []string{
		"2006-01-02",
		"2006/01/02",
		"2006-1-2",
	}

	// La entrada se pasa a mayúsculas antes de probar ("11:00 am" => "11:00 AM").
	clockLayouts = []string{
		"3:04 PM",
		"3:04PM",
		"3:04:05 PM",
		"15:04",
		"15:04:05",
	}
)

// ParseDate devuelve la medianoche del día en loc. Si el texto trae hora
// ("2025-03-01 10:00" o "2025-03-01T10:00:00Z") solo se usa la parte de fecha.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, " T"); i > 0 {
		s = s[:i]
	}
	for _, layout := range dateLayouts {
		if d, err := time.ParseInLocation(layout, s, loc); err == nil {
			return d, nil
		}
	}
	return time.Time{}, malformed("date", raw)
}

// ParseClock devuelve hora y minuto (0-23, 0-59).
func ParseClock(raw string) (hour, minute int, err error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	for _, layout := range clockLayouts {
		t, perr := time.Parse(layout, s)
		if perr != nil {
			continue
		}
		// En formato de 12 horas la hora va de 1 a 12; "0:30 PM" no es válido.
		if strings.HasSuffix(layout, "PM") && !validHour12(s) {
			return 0, 0, malformed("time", raw)
		}
		return t.Hour(), t.Minute(), nil
	}
	return 0, 0, malformed("time", raw)
}

func validHour12(s string) bool {
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return false
	}
	h, err := strconv.Atoi(s[:i])
	return err == nil && h >= 1 && h <= 12
}

// EndsAt combina Date y TimeTo en un instante de loc con resolución de minuto.
func EndsAt(b Booking, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(b.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	h, m, err := ParseClock(b.TimeTo)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc), nil
}

func malformed(field, raw string) error {
	return apperr.New(apperr.ErrMalformedRecord, "bookings.parse", fmt.Sprintf("unparsable %s %q", field, raw))
}
