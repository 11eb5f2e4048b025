package date

import (
	"fmt"
	"strings"
)

// Period is a reporting granularity for a projection timeline.
type Period int

const (
	Monthly Period = iota
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// PerYear returns the number of periods of this granularity in one year.
func (p Period) PerYear() int {
	switch p {
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Yearly:
		return 1
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Months returns the number of calendar months spanned by one period.
func (p Period) Months() int { return 12 / p.PerYear() }

// ParsePeriod parses a period granularity from its name.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %s", p)
	}
}
