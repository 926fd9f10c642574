package courses

import (
	"fmt"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/models"
	"github.com/julianstephens/smartsched/internal/render"
	"github.com/julianstephens/smartsched/internal/schedule"
)

type CourseListCmd struct {
	ShowIDs bool `help:"Show course IDs." name:"show-ids"`
}

func (c *CourseListCmd) Run(ctx *cli.Context) error {
	courses := ctx.Store.GetCourses()
	if len(courses) == 0 {
		fmt.Println("No courses found")
		return nil
	}

	fmt.Println("Courses:")
	for _, day := range models.Days {
		for _, course := range schedule.CoursesOn(courses, day) {
			fmt.Println(render.CourseLine(course, c.ShowIDs))
		}
	}
	return nil
}
