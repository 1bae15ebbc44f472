package entity

import (
	"slices"
	"strings"
)

// Weekdays is the canonical display order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// OpeningHours is the per-day list stored on BusinessInfo.
type OpeningHours []BusinessHour

// HoursGroup is a run of consecutive days sharing the same window.
type HoursGroup struct {
	Days     []string
	Opens    string
	Closes   string
	IsClosed bool
}

// DayRange renders the group's days, e.g. "Monday - Friday".
func (g HoursGroup) DayRange() string {
	return formatDayRange(g.Days)
}

// Hours renders the group's window or "Closed".
func (g HoursGroup) Hours() string {
	if g.IsClosed {
		return "Closed"
	}

	return g.Opens + " - " + g.Closes
}

// DisplayGroups collapses the week into human readable ranges.
// Entries are sorted Monday first and a day only joins the current group
// when its hours match and it directly follows the group's last day.
func (h OpeningHours) DisplayGroups() []HoursGroup {
	if len(h) == 0 {
		return nil
	}

	sorted := slices.Clone(h)
	slices.SortStableFunc(sorted, func(a, b BusinessHour) int {
		return dayIndex(a.Day) - dayIndex(b.Day)
	})

	groups := make([]HoursGroup, 0, len(sorted))
	var current *HoursGroup

	for _, hour := range sorted {
		if current == nil {
			current = newHoursGroup(hour)

			continue
		}

		sameHours := current.Opens == hour.Opens &&
			current.Closes == hour.Closes &&
			current.IsClosed == hour.IsClosed
		consecutive := dayIndex(hour.Day) == dayIndex(current.Days[len(current.Days)-1])+1

		if sameHours && consecutive {
			current.Days = append(current.Days, hour.Day)

			continue
		}

		groups = append(groups, *current)
		current = newHoursGroup(hour)
	}

	return append(groups, *current)
}

func newHoursGroup(hour BusinessHour) *HoursGroup {
	return &HoursGroup{
		Days:     []string{hour.Day},
		Opens:    hour.Opens,
		Closes:   hour.Closes,
		IsClosed: hour.IsClosed,
	}
}

func dayIndex(day string) int {
	return slices.Index(Weekdays, day)
}

func formatDayRange(days []string) string {
	switch {
	case len(days) == 1:
		return days[0]
	case len(days) == 7:
		return "Every day"
	case len(days) >= 2:
		return days[0] + " - " + days[len(days)-1]
	default:
		// Only an empty group lands here.
		return strings.Join(days, ", ")
	}
}
