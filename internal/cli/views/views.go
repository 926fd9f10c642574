// Package views holds the read-only render commands.
package views

import (
	"fmt"
	"time"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/render"
)

type TimetableCmd struct{}

func (c *TimetableCmd) Run(ctx *cli.Context) error {
	fmt.Println(render.Timetable(ctx.Store.GetCourses()))
	return nil
}

type MatrixCmd struct{}

func (c *MatrixCmd) Run(ctx *cli.Context) error {
	fmt.Println(render.Matrix(ctx.Store.GetTasks()))
	return nil
}

type CalendarCmd struct {
	Month string `help:"Month to show (YYYY-MM). Defaults to the current month."`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if c.Month != "" {
		t, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q (expected YYYY-MM)", c.Month)
		}
		year, month = t.Year(), t.Month()
	}

	fmt.Println(render.Calendar(ctx.Store.GetTasks(), year, month))
	return nil
}
