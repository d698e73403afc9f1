package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
)

func MapStringToInt(data map[string]string) map[string]int {
	dataint := make(map[string]int)
	for key, value := range data {
		i, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		dataint[key] = i
	}
	return dataint
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
}

// ParsingDate accepts the date formats the admin forms send and returns the
// calendar day at midnight UTC.
func ParsingDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("tanggal kosong")
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, errors.New("format tanggal tidak dikenal: " + s)
}

func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
