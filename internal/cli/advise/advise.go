// Package advise holds the AI analysis command.
package advise

import (
	"context"
	"fmt"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/render"
)

type AnalyzeCmd struct {
	Show bool `help:"Print the cached analysis without calling the advisor."`
}

func (c *AnalyzeCmd) Run(ctx *cli.Context) error {
	if c.Show {
		fmt.Println(render.Analysis(ctx.Cache.Get()))
		return nil
	}

	courses := ctx.Store.GetCourses()
	if len(courses) == 0 {
		return fmt.Errorf("no courses to analyze; add some with 'smartsched course add' first")
	}

	adv, err := ctx.NewAdvisor()
	if err != nil {
		return err
	}

	// Clear before the call starts: a failed analysis must leave the
	// cache empty, never stale.
	if err := ctx.Cache.Clear(); err != nil {
		return err
	}

	fmt.Println("Analyzing schedule...")
	result, err := adv.Analyze(context.Background(), courses)
	if err != nil {
		return err
	}

	if err := ctx.Cache.Set(result); err != nil {
		return err
	}

	fmt.Println(render.Analysis(result))
	return nil
}
