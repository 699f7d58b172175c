package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

var quarters = []Quarter{Q1, Q2, Q3, Q4}

// ParseQuarter trims and upper-cases the input before matching Q1..Q4.
func ParseQuarter(s string) (Quarter, bool) {
	q := Quarter(strings.ToUpper(strings.TrimSpace(s)))
	return q, q.Valid()
}

func (q Quarter) Valid() bool {
	return q.Index() > 0
}

// Index returns the fiscal position of the quarter (1..4), or 0 for an unknown label.
func (q Quarter) Index() int {
	for i, known := range quarters {
		if q == known {
			return i + 1
		}
	}
	return 0
}

func (q Quarter) String() string {
	return string(q)
}

// Period identifies one fiscal quarter of one year.
type Period struct {
	Quarter Quarter `json:"quarter"`
	Year    int     `json:"year"`
}

func NewPeriod(q Quarter, year int) Period {
	return Period{Quarter: q, Year: year}
}

// CurrentPeriod returns the calendar quarter containing t.
func CurrentPeriod(t time.Time) Period {
	return Period{
		Quarter: quarters[(int(t.Month())-1)/3],
		Year:    t.Year(),
	}
}

// Key renders the period as "{year}-{quarter}", e.g. "2024-Q3".
func (p Period) Key() string {
	return fmt.Sprintf("%d-%s", p.Year, p.Quarter)
}

// Previous returns the fiscal quarter before p. ok is false when p has no valid quarter.
func (p Period) Previous() (prev Period, ok bool) {
	switch idx := p.Quarter.Index(); idx {
	case 0:
		return Period{}, false
	case 1:
		return Period{Quarter: Q4, Year: p.Year - 1}, true
	default:
		return Period{Quarter: quarters[idx-2], Year: p.Year}, true
	}
}

func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Quarter.Index() < other.Quarter.Index()
}

// Contains reports whether t falls inside the calendar quarter.
func (p Period) Contains(t time.Time) bool {
	return CurrentPeriod(t) == p
}

// ParsePeriodKey parses the "{year}-{quarter}" form produced by Key.
func ParsePeriodKey(key string) (Period, error) {
	parts := strings.Split(strings.TrimSpace(key), "-")
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("invalid quarter key %q: expected YYYY-QN", key)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Period{}, fmt.Errorf("invalid quarter key %q: bad year", key)
	}

	q, ok := ParseQuarter(parts[1])
	if !ok {
		return Period{}, fmt.Errorf("invalid quarter key %q: bad quarter", key)
	}

	return Period{Quarter: q, Year: year}, nil
}

// SortPeriods orders periods chronologically (oldest first).
func SortPeriods(periods []Period) {
	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].Before(periods[j])
	})
}

// SortPeriodKeys orders "{year}-{quarter}" keys chronologically. Keys that fail
// to parse keep their relative order at the end.
func SortPeriodKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, errA := ParsePeriodKey(keys[i])
		b, errB := ParsePeriodKey(keys[j])
		switch {
		case errA != nil:
			return false
		case errB != nil:
			return true
		}
		return a.Before(b)
	})
}
