package courses

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/constants"
	"github.com/julianstephens/smartsched/internal/models"
	"github.com/julianstephens/smartsched/internal/schedule"
	"github.com/julianstephens/smartsched/internal/utils"
)

type CourseAddCmd struct {
	Name     string `arg:"" optional:"" help:"Course name. Omit for an interactive form."`
	Day      string `short:"d" help:"Weekday (monday..sunday or mon..sun)."`
	Start    string `short:"s" help:"Start time (HH:MM)."`
	End      string `short:"e" help:"End time (HH:MM)."`
	Location string `short:"l" help:"Location (optional)."`
	Color    string `short:"c" help:"Palette color. Auto-assigned when omitted."`
}

func (c *CourseAddCmd) Validate() error {
	if c.Name == "" {
		// Interactive mode; the form validates its own inputs.
		return nil
	}
	if c.Day == "" || c.Start == "" || c.End == "" {
		return fmt.Errorf("--day, --start, and --end are required (or omit the name for an interactive form)")
	}
	if _, err := models.ParseDay(c.Day); err != nil {
		return err
	}
	start, err := utils.ParseClock(c.Start)
	if err != nil {
		return fmt.Errorf("invalid start time (expected HH:MM): %w", err)
	}
	end, err := utils.ParseClock(c.End)
	if err != nil {
		return fmt.Errorf("invalid end time (expected HH:MM): %w", err)
	}
	if !start.Before(end) {
		return fmt.Errorf("start time must be before end time")
	}
	if c.Color != "" && !constants.IsPaletteColor(c.Color) {
		return fmt.Errorf("unknown color %q (one of: %v)", c.Color, constants.Palette)
	}
	return nil
}

func (c *CourseAddCmd) Run(ctx *cli.Context) error {
	if c.Name == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	courses := ctx.Store.GetCourses()

	color := c.Color
	if color == "" {
		color = schedule.NextColor(courses, constants.Palette)
	}
	day, err := models.ParseDay(c.Day)
	if err != nil {
		return err
	}

	course := models.Course{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Location:  c.Location,
		Day:       day,
		StartTime: c.Start,
		EndTime:   c.End,
		Color:     color,
	}
	if err := course.Validate(); err != nil {
		return fmt.Errorf("invalid course: %w", err)
	}

	courses, err = schedule.AddCourse(courses, course)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveCourses(courses); err != nil {
		return err
	}

	// The cached analysis no longer matches the schedule.
	if err := ctx.Cache.Clear(); err != nil {
		return err
	}

	fmt.Printf("Added course: %s (ID: %s)\n", course.Name, course.ID)
	return nil
}

func (c *CourseAddCmd) promptForm() error {
	dayOptions := make([]huh.Option[string], 0, len(models.Days))
	for _, d := range models.Days {
		dayOptions = append(dayOptions, huh.NewOption(string(d), string(d)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course name").
				Value(&c.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Location (optional)").
				Value(&c.Location),
			huh.NewSelect[string]().
				Title("Day").
				Options(dayOptions...).
				Value(&c.Day),
			huh.NewInput().
				Title("Start time (HH:MM)").
				Value(&c.Start).
				Validate(validateClock),
			huh.NewInput().
				Title("End time (HH:MM)").
				Value(&c.End).
				Validate(validateClock),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	start, _ := utils.ParseClock(c.Start)
	end, _ := utils.ParseClock(c.End)
	if !start.Before(end) {
		return fmt.Errorf("start time must be before end time")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := utils.ParseClock(s); err != nil {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}
