package tasks

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/models"
	"github.com/julianstephens/smartsched/internal/schedule"
	"github.com/julianstephens/smartsched/internal/utils"
)

type TaskAddCmd struct {
	Title     string `arg:"" help:"Task title."`
	Deadline  string `short:"d" help:"Deadline (YYYY-MM-DD HH:MM or YYYY-MM-DD)." required:""`
	Urgent    bool   `short:"u" help:"Mark the task urgent."`
	Important bool   `short:"i" help:"Mark the task important."`
}

func (c *TaskAddCmd) Validate() error {
	if _, err := utils.ParseDeadline(c.Deadline); err != nil {
		return err
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	deadline, err := utils.ParseDeadline(c.Deadline)
	if err != nil {
		return err
	}

	task := models.Task{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Deadline:    deadline,
		IsUrgent:    c.Urgent,
		IsImportant: c.Important,
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	tasks, err := schedule.AddTask(ctx.Store.GetTasks(), task)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveTasks(tasks); err != nil {
		return err
	}

	// Task mutations never invalidate the schedule analysis.
	fmt.Printf("Added task: %s [%s] (ID: %s)\n", task.Title, task.Quadrant(), task.ID)
	return nil
}
