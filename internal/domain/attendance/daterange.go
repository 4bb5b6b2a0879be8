package attendance

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive date window, both ends formatted YYYY-MM-DD.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ResolveDateRange turns a date-range specification into a concrete window
// relative to now. Recognized specs: "today", "yesterday", "recent" (last 7
// days), "this_month", "previous_month", an explicit "YYYY-MM-DD", or a
// "YYYY-MM-DD:YYYY-MM-DD" range.
func ResolveDateRange(spec string, now time.Time) (DateRange, error) {
	today := now
	end := today.Format(dateLayout)

	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "", "recent":
		return DateRange{StartDate: today.AddDate(0, 0, -7).Format(dateLayout), EndDate: end}, nil
	case "today":
		return DateRange{StartDate: end, EndDate: end}, nil
	case "yesterday":
		d := today.AddDate(0, 0, -1).Format(dateLayout)
		return DateRange{StartDate: d, EndDate: d}, nil
	case "this_month":
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return DateRange{StartDate: first.Format(dateLayout), EndDate: end}, nil
	case "previous_month":
		firstOfCurrent := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		lastOfPrevious := firstOfCurrent.AddDate(0, 0, -1)
		firstOfPrevious := time.Date(lastOfPrevious.Year(), lastOfPrevious.Month(), 1, 0, 0, 0, 0, today.Location())
		return DateRange{
			StartDate: firstOfPrevious.Format(dateLayout),
			EndDate:   lastOfPrevious.Format(dateLayout),
		}, nil
	}

	if start, stop, ok := strings.Cut(spec, ":"); ok {
		from, err := time.Parse(dateLayout, strings.TrimSpace(start))
		if err != nil {
			return DateRange{}, ErrInvalidDateRange
		}
		to, err := time.Parse(dateLayout, strings.TrimSpace(stop))
		if err != nil || to.Before(from) {
			return DateRange{}, ErrInvalidDateRange
		}
		return DateRange{StartDate: from.Format(dateLayout), EndDate: to.Format(dateLayout)}, nil
	}

	if d, err := time.Parse(dateLayout, strings.TrimSpace(spec)); err == nil {
		formatted := d.Format(dateLayout)
		return DateRange{StartDate: formatted, EndDate: formatted}, nil
	}

	return DateRange{}, ErrInvalidDateRange
}

// Describe renders a short human description of the range.
func (r DateRange) Describe(now time.Time) string {
	if r.StartDate == r.EndDate {
		if r.StartDate == now.Format(dateLayout) {
			return "today (" + r.StartDate + ")"
		}
		return r.StartDate
	}
	if start, err := time.Parse(dateLayout, r.StartDate); err == nil {
		if start.Year() == now.Year() && start.Month() == now.Month() && r.EndDate == now.Format(dateLayout) {
			return "this month (" + start.Format("January 2006") + ")"
		}
	}
	return "from " + r.StartDate + " to " + r.EndDate
}
