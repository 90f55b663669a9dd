// ABOUTME: Pure scheduling logic for walking a program's week/day matrix.
// ABOUTME: Computes the next position after a completed workout.
package schedule

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tomaszwojcikowski/fitrack3/internal/models"
)

// ErrEmptyWeek reports a week inside the program's duration with no
// scheduled days. That is authored-content breakage, not a storage
// failure; callers surface it to the user rather than skipping the week.
var ErrEmptyWeek = errors.New("schedule: week has no scheduled days")

// Position is a 1-based (week, day) pair within a program.
type Position struct {
	Week int
	Day  int
}

// Start is the position every program begins and wraps to.
var Start = Position{Week: 1, Day: 1}

// Advance computes the position after completing the workout at cur.
//
// Within a week, the next position is the next scheduled day in ascending
// numeric order. Past the last day of a week, it is the earliest scheduled
// day of the following week. Past the final week, the position wraps to
// (1,1) and completed is true: completion is a cycle back to the start,
// not a terminal state.
//
// A cur.Day missing from the current week's key set is treated as "not
// found" and falls through to the next-week branch. A week inside
// [1, durationWeeks] with zero scheduled days yields ErrEmptyWeek.
func Advance(sched models.Schedule, durationWeeks int, cur Position) (next Position, completed bool, err error) {
	days := sortedDays(sched, cur.Week)
	if len(days) == 0 {
		return Position{}, false, fmt.Errorf("week %d: %w", cur.Week, ErrEmptyWeek)
	}

	// Next day in the same week, when the current day is scheduled and
	// not the week's last.
	for i, day := range days {
		if day == cur.Day && i+1 < len(days) {
			return Position{Week: cur.Week, Day: days[i+1]}, false, nil
		}
	}

	nextWeek := cur.Week + 1
	if nextWeek > durationWeeks {
		return Start, true, nil
	}

	nextDays := sortedDays(sched, nextWeek)
	if len(nextDays) == 0 {
		return Position{}, false, fmt.Errorf("week %d: %w", nextWeek, ErrEmptyWeek)
	}
	return Position{Week: nextWeek, Day: nextDays[0]}, false, nil
}

// TemplateAt returns the template scheduled at a position, false when the
// slot is empty.
func TemplateAt(sched models.Schedule, pos Position) (models.ScheduledDay, bool) {
	day, ok := sched[pos.Week][pos.Day]
	return day, ok
}

func sortedDays(sched models.Schedule, week int) []int {
	var days []int
	for day := range sched.Days(week) {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}
