package tasks

import (
	"fmt"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/schedule"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID to delete."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	tasks := ctx.Store.GetTasks()

	task, err := schedule.FindTask(tasks, c.ID)
	if err != nil {
		return err
	}

	tasks, err = schedule.DeleteTask(tasks, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveTasks(tasks); err != nil {
		return err
	}

	fmt.Printf("Deleted task: %s (ID: %s)\n", task.Title, c.ID)
	return nil
}
