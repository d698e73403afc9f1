package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kamil5b/sewa-alat-berat/utils"
	"gorm.io/gorm"
)

type Base struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

const (
	// MaxNominal caps every rupiah amount at seribu triliun.
	MaxNominal int64 = 1_000_000_000_000_000
	MaxJumlah        = 1_000_000
)

var errNominal = errors.New("nominal melebihi batas maksimum")

func nominalValid(values ...int64) bool {
	for _, v := range values {
		if v > MaxNominal || v < -MaxNominal {
			return false
		}
	}
	return true
}

// Date is a calendar date without time of day, sent over JSON as
// "2006-01-02" and stored as a DATE column.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := utils.ParsingDate(s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := utils.ParsingDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// UnmarshalText lets form-encoded bodies carry dates too.
func (d *Date) UnmarshalText(b []byte) error {
	return d.UnmarshalJSON(b)
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
	case time.Time:
		y, m, day := v.Date()
		d.Time = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("tipe tanggal tidak dikenal: %T", value)
	}
	return nil
}

func (d *Date) scanString(s string) error {
	if len(s) >= 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (Date) GormDataType() string {
	return "date"
}

// Before reports whether d is strictly earlier than other, by calendar day.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}
