package model

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date 日期类型（只含年月日，JSON 序列化为 "yyyy-MM-dd"）
type Date struct {
	time.Time
}

// NewDate 构造指定年月日的日期（UTC）
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today 当前日期（UTC，截断到天）
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected format %s", s, dateLayout)
	}
	*d = Date{t}
	return nil
}

// Before 早于另一日期
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After 晚于另一日期
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}
