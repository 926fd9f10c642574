package tasks

import (
	"fmt"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/schedule"
	"github.com/julianstephens/smartsched/internal/utils"
)

type TaskEditCmd struct {
	ID        string  `arg:"" help:"Task ID to edit."`
	Title     *string `help:"New title."`
	Deadline  *string `help:"New deadline (YYYY-MM-DD HH:MM or YYYY-MM-DD)."`
	Urgent    *bool   `help:"Set or clear urgency."`
	Important *bool   `help:"Set or clear importance."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	tasks := ctx.Store.GetTasks()

	task, err := schedule.FindTask(tasks, c.ID)
	if err != nil {
		return err
	}

	if c.Title != nil {
		task.Title = *c.Title
	}
	if c.Deadline != nil {
		deadline, err := utils.ParseDeadline(*c.Deadline)
		if err != nil {
			return err
		}
		task.Deadline = deadline
	}
	if c.Urgent != nil {
		task.IsUrgent = *c.Urgent
	}
	if c.Important != nil {
		task.IsImportant = *c.Important
	}

	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	// Full replace by id for determinism; the id itself never changes.
	tasks, err = schedule.EditTask(tasks, task)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveTasks(tasks); err != nil {
		return err
	}

	fmt.Printf("Updated task: %s [%s] (ID: %s)\n", task.Title, task.Quadrant(), task.ID)
	return nil
}
