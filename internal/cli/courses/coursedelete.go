package courses

import (
	"fmt"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/schedule"
)

type CourseDeleteCmd struct {
	ID string `arg:"" help:"Course ID to delete."`
}

func (c *CourseDeleteCmd) Run(ctx *cli.Context) error {
	courses := ctx.Store.GetCourses()

	course, err := schedule.FindCourse(courses, c.ID)
	if err != nil {
		return err
	}

	courses, err = schedule.DeleteCourse(courses, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveCourses(courses); err != nil {
		return err
	}

	if err := ctx.Cache.Clear(); err != nil {
		return err
	}

	fmt.Printf("Deleted course: %s (ID: %s)\n", course.Name, c.ID)
	return nil
}
