package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It is the canonical representation for slot boundaries: compact,
// human-readable, sortable lexicographically and storable in a
// Postgres TIME column without timezone surprises.
type TimeString string

const layout = "15:04"

var (
	// ErrInvalidFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrOutOfRange = errors.New("types: time is out of day range")
)

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layout))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return TimeString(t.Format(layout)), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero проверяет, что значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что значение соответствует формату HH:MM
func (ts TimeString) Validate() error {
	_, err := time.Parse(layout, string(ts))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(ts))
	}
	return nil
}

// Minutes возвращает количество минут с начала суток.
// Для невалидного значения возвращает 0 — вызывающий код обязан
// предварительно вызвать Validate.
func (ts TimeString) Minutes() int {
	t, err := time.Parse(layout, string(ts))
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// AddMinutes возвращает новый TimeString, сдвинутый на n минут вперед.
// Возвращает ошибку, если результат выходит за пределы суток.
func (ts TimeString) AddMinutes(n int) (TimeString, error) {
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(ts.Minutes() + n)
}

// IsBefore проверяет строгое "раньше" (ts < other)
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts.Minutes() < other.Minutes()
}

// IsAfter проверяет строгое "позже" (ts > other)
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts.Minutes() > other.Minutes()
}

// Value реализует driver.Valuer для записи в колонку TIME
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из колонки TIME.
// lib/pq возвращает TIME как []byte "HH:MM:SS", секунды отбрасываются.
func (ts *TimeString) Scan(src interface{}) error {
	if src == nil {
		*ts = ""
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return ts.scanString(string(v))
	case string:
		return ts.scanString(v)
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidFormat, src)
	}
}

func (ts *TimeString) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
