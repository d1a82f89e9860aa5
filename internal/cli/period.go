package cli

import (
	"fmt"

	"github.com/daftar-app/daftar/internal/models"
)

type PeriodSetCmd struct {
	Start  string `help:"Last period start date (YYYY-MM-DD)."`
	Cycle  int    `help:"Cycle length in days." default:"-1"`
	Length int    `help:"Period length in days." default:"-1"`
}

func (c *PeriodSetCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	var patch models.PeriodPatch
	if c.Start != "" {
		patch.LastPeriodStart = &c.Start
	}
	if c.Cycle > 0 {
		patch.CycleLength = &c.Cycle
	}
	if c.Length > 0 {
		patch.PeriodLength = &c.Length
	}

	if err := ctx.Store.UpdatePeriod(patch); err != nil {
		return err
	}

	period := ctx.Store.PeriodData()
	fmt.Printf("Cycle settings: start %s, cycle %d days, period %d days\n",
		period.LastPeriodStart, period.CycleLength, period.PeriodLength)
	return nil
}

type PeriodStatusCmd struct{}

func (c *PeriodStatusCmd) Run(ctx *Context) error {
	if err := ctx.requireName(); err != nil {
		return err
	}

	status := ctx.Store.CycleStatus()
	if status.Phase == models.PhaseUnknown {
		fmt.Println("No period start recorded yet. Set one with: daftar period set --start YYYY-MM-DD")
		return nil
	}

	fmt.Printf("Cycle day %d — %s phase\n", status.CycleDay, status.Phase)
	fmt.Printf("Next period: %s (in %d days)\n", status.NextPeriodStart, status.DaysUntilNext)
	fmt.Printf("Estimated ovulation: %s\n", status.OvulationDate)
	return nil
}
