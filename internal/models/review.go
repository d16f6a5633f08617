package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// Review dates must fit a MySQL DATETIME(3) column.
var (
	minReviewDate = time.Date(1000, 1, 1, 0, 0, 0, 0, time.UTC)
	maxReviewDate = time.Date(9999, 12, 31, 23, 59, 59, 999000000, time.UTC)
)

// reviewDateLayouts are tried in order when a review date arrives as a string.
// Timestamps without a zone are read as UTC.
var reviewDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ReviewDate is a review timestamp accepted either as a date string or as epoch milliseconds
type ReviewDate time.Time

// Time returns the date as a UTC time.Time
func (d ReviewDate) Time() time.Time {
	return time.Time(d).UTC()
}

// UnmarshalJSON implements json.Unmarshaler
func (d *ReviewDate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: review date is required", ErrValidation)
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: invalid review date: %v", ErrValidation, err)
		}
		t, err := ParseReviewDate(s)
		if err != nil {
			return err
		}
		*d = ReviewDate(t)
		return nil
	}

	var millis float64
	if err := json.Unmarshal(data, &millis); err != nil {
		return fmt.Errorf("%w: invalid review date %s", ErrValidation, data)
	}
	if math.IsNaN(millis) || millis < float64(minReviewDate.UnixMilli()) || millis > float64(maxReviewDate.UnixMilli()) {
		return fmt.Errorf("%w: review date %s out of range", ErrValidation, data)
	}
	*d = ReviewDate(time.UnixMilli(int64(millis)).UTC())
	return nil
}

// ParseReviewDate parses a review date string
func ParseReviewDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range reviewDateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		t = t.UTC()
		if t.Before(minReviewDate) || t.After(maxReviewDate) {
			return time.Time{}, fmt.Errorf("%w: review date %q out of range", ErrValidation, s)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid review date %q", ErrValidation, s)
}

// ReviewRequest is the body of a review dates append request
type ReviewRequest struct {
	Dates []ReviewDate `json:"datas"`
}

// Times converts the request dates, keeping their order
func (r ReviewRequest) Times() []time.Time {
	times := make([]time.Time, 0, len(r.Dates))
	for _, d := range r.Dates {
		times = append(times, d.Time())
	}
	return times
}
