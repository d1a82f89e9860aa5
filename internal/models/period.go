package models

import (
	"time"

	"github.com/daftar-app/daftar/internal/constants"
)

// PeriodData is the cycle-tracking singleton.
type PeriodData struct {
	LastPeriodStart string `json:"lastPeriodStart"` // YYYY-MM-DD, empty when never set
	CycleLength     int    `json:"cycleLength"`
	PeriodLength    int    `json:"periodLength"`
}

// DefaultPeriodData returns the singleton's seed values.
func DefaultPeriodData() PeriodData {
	return PeriodData{
		CycleLength:  constants.DefaultCycleLength,
		PeriodLength: constants.DefaultPeriodLength,
	}
}

// PeriodPatch is a partial update against PeriodData.
type PeriodPatch struct {
	LastPeriodStart *string
	CycleLength     *int
	PeriodLength    *int
}

func (p PeriodPatch) Apply(d *PeriodData) {
	if p.LastPeriodStart != nil {
		d.LastPeriodStart = *p.LastPeriodStart
	}
	if p.CycleLength != nil {
		d.CycleLength = *p.CycleLength
	}
	if p.PeriodLength != nil {
		d.PeriodLength = *p.PeriodLength
	}
}

type CyclePhase string

const (
	PhaseUnknown    CyclePhase = "unknown"
	PhaseMenstrual  CyclePhase = "menstrual"
	PhaseFollicular CyclePhase = "follicular"
	PhaseOvulation  CyclePhase = "ovulation"
	PhaseLuteal     CyclePhase = "luteal"
)

// CycleStatus is derived from the PeriodData singleton for a given day.
type CycleStatus struct {
	CycleDay        int        `json:"cycle_day"` // 1-based, 0 when unknown
	Phase           CyclePhase `json:"phase"`
	NextPeriodStart string     `json:"next_period_start"` // YYYY-MM-DD
	OvulationDate   string     `json:"ovulation_date"`    // YYYY-MM-DD
	DaysUntilNext   int        `json:"days_until_next"`
}

// Status computes the cycle position for now. Returns the unknown
// status when LastPeriodStart is unset or unparsable.
func (d PeriodData) Status(now time.Time) CycleStatus {
	status := CycleStatus{Phase: PhaseUnknown}

	start, err := time.ParseInLocation(constants.DateFormat, d.LastPeriodStart, now.Location())
	if err != nil {
		return status
	}

	cycleLength := d.CycleLength
	if cycleLength <= 0 {
		cycleLength = constants.DefaultCycleLength
	}
	periodLength := d.PeriodLength
	if periodLength <= 0 {
		periodLength = constants.DefaultPeriodLength
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if today.Before(start) {
		return status
	}

	daysSince := int(today.Sub(start).Hours() / 24)
	status.CycleDay = daysSince%cycleLength + 1

	next := start.AddDate(0, 0, ((daysSince/cycleLength)+1)*cycleLength)
	status.NextPeriodStart = next.Format(constants.DateFormat)
	status.DaysUntilNext = int(next.Sub(today).Hours() / 24)

	// Ovulation approximated 14 days before the next period start.
	ovulation := next.AddDate(0, 0, -14)
	status.OvulationDate = ovulation.Format(constants.DateFormat)

	switch {
	case status.CycleDay <= periodLength:
		status.Phase = PhaseMenstrual
	case today.Equal(ovulation):
		status.Phase = PhaseOvulation
	case today.Before(ovulation):
		status.Phase = PhaseFollicular
	default:
		status.Phase = PhaseLuteal
	}

	return status
}
