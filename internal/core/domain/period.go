package domain

import "time"

// Period is the (year, month) a payment is credited toward, independent of
// when the payment row was recorded.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
}

// After reports whether p is chronologically after other, comparing
// lexicographically on (year, month).
func (p Period) After(other Period) bool {
	if p.Year != other.Year {
		return p.Year > other.Year
	}
	return p.Month > other.Month
}

// Next returns the period exactly one calendar month after p.
// December rolls into January of the following year.
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// MonthsSince returns how many whole calendar months separate p from now:
// 0 when p is the current month, 1 when p is last month, negative when p is
// in the future.
func (p Period) MonthsSince(now time.Time) int {
	return (now.Year()-p.Year)*12 + (int(now.Month()) - p.Month)
}
