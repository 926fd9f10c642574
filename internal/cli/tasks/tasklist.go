package tasks

import (
	"fmt"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/models"
	"github.com/julianstephens/smartsched/internal/render"
	"github.com/julianstephens/smartsched/internal/schedule"
)

type TaskListCmd struct {
	ShowIDs bool `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks := ctx.Store.GetTasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	for _, q := range models.Quadrants {
		inQuadrant := schedule.TasksInQuadrant(tasks, q)
		if len(inQuadrant) == 0 {
			continue
		}
		fmt.Printf("%s:\n", q)
		for _, t := range inQuadrant {
			fmt.Println(render.TaskLine(t, c.ShowIDs))
		}
	}
	return nil
}
