package courses

import (
	"fmt"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/constants"
	"github.com/julianstephens/smartsched/internal/models"
	"github.com/julianstephens/smartsched/internal/schedule"
	"github.com/julianstephens/smartsched/internal/utils"
)

type CourseEditCmd struct {
	ID       string  `arg:"" help:"Course ID to edit."`
	Name     *string `help:"New course name."`
	Day      *string `help:"New weekday."`
	Start    *string `help:"New start time (HH:MM)."`
	End      *string `help:"New end time (HH:MM)."`
	Location *string `help:"New location."`
	Color    *string `help:"New palette color."`
}

func (c *CourseEditCmd) Run(ctx *cli.Context) error {
	courses := ctx.Store.GetCourses()

	course, err := schedule.FindCourse(courses, c.ID)
	if err != nil {
		return err
	}

	if c.Name != nil {
		course.Name = *c.Name
	}
	if c.Location != nil {
		course.Location = *c.Location
	}
	if c.Day != nil {
		day, err := models.ParseDay(*c.Day)
		if err != nil {
			return err
		}
		course.Day = day
	}
	if c.Start != nil {
		course.StartTime = *c.Start
	}
	if c.End != nil {
		course.EndTime = *c.End
	}
	if c.Color != nil {
		if !constants.IsPaletteColor(*c.Color) {
			return fmt.Errorf("unknown color %q (one of: %v)", *c.Color, constants.Palette)
		}
		course.Color = *c.Color
	}

	if err := course.Validate(); err != nil {
		return fmt.Errorf("invalid course: %w", err)
	}
	start, _ := utils.ParseClock(course.StartTime)
	end, _ := utils.ParseClock(course.EndTime)
	if !start.Before(end) {
		return fmt.Errorf("start time must be before end time")
	}

	// Full replace by id; the id itself never changes.
	courses, err = schedule.EditCourse(courses, course)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveCourses(courses); err != nil {
		return err
	}

	// Editing a course invalidates the analysis just like add/delete.
	if err := ctx.Cache.Clear(); err != nil {
		return err
	}

	fmt.Printf("Updated course: %s (ID: %s)\n", course.Name, course.ID)
	return nil
}
