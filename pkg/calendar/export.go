// Package calendar exports a timetable as an iCalendar file.
package calendar

import (
	"io"
	"time"

	"github.com/borgmon/study-timetable/pkg/models"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/teambition/rrule-go"
)

const productID = "-//borgmon//Study Timetable//EN"

// SlotDuration is the length of every exported event.
const SlotDuration = 30 * time.Minute

// ErrNothingToExport is returned when no slot is occupied.
var ErrNothingToExport = errors.New("timetable is empty")

// BuildCalendar turns the occupied slots into daily-recurring events that
// start on the given day.
func BuildCalendar(slots []models.Slot, day time.Time) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	stamp := time.Now().UTC()
	midnight := startOfDay(day)
	count := 0

	for _, slot := range slots {
		if slot.IsEmpty {
			continue
		}
		mins := slot.Time.Minutes()
		if mins < 0 {
			return nil, errors.Errorf("invalid time label %q", slot.Time)
		}

		start := midnight.Add(time.Duration(mins) * time.Minute)

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, uuid.New().String())
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		event.Props.SetDateTime(ical.PropDateTimeStart, start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(SlotDuration))
		event.Props.SetText(ical.PropSummary, slot.Subject)
		event.Props.Set(dailyRule())

		cal.Children = append(cal.Children, event.Component)
		count++
	}

	if count == 0 {
		return nil, ErrNothingToExport
	}
	return cal, nil
}

// Encode writes the occupied slots to w as iCalendar data
func Encode(w io.Writer, slots []models.Slot, day time.Time) error {
	cal, err := BuildCalendar(slots, day)
	if err != nil {
		return err
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return errors.Wrap(err, "encode calendar")
	}
	return nil
}

// dailyRule repeats an event every day with no end
func dailyRule() *ical.Prop {
	prop := ical.NewProp(ical.PropRecurrenceRule)
	prop.Value = (&rrule.ROption{Freq: rrule.DAILY}).RRuleString()
	return prop
}

// startOfDay returns midnight of t in UTC. The process-local zone is not a
// valid TZID, so times are exported in UTC.
func startOfDay(t time.Time) time.Time {
	local := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return local.UTC()
}
