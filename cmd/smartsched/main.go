package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/smartsched/internal/advisor"
	"github.com/julianstephens/smartsched/internal/analysis"
	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/cli/advise"
	"github.com/julianstephens/smartsched/internal/cli/cloud"
	"github.com/julianstephens/smartsched/internal/cli/courses"
	"github.com/julianstephens/smartsched/internal/cli/settings"
	"github.com/julianstephens/smartsched/internal/cli/system"
	"github.com/julianstephens/smartsched/internal/cli/tasks"
	"github.com/julianstephens/smartsched/internal/cli/views"
	errs "github.com/julianstephens/smartsched/internal/errors"
	"github.com/julianstephens/smartsched/internal/logger"
	"github.com/julianstephens/smartsched/internal/remote"
	"github.com/julianstephens/smartsched/internal/storage"
	"github.com/julianstephens/smartsched/internal/syncer"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .json extension selects the JSON backend; anything else uses SQLite." default:"~/.config/smartsched/smartsched.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init      system.InitCmd     `cmd:"" help:"Initialize smartsched storage."`
	Tui       system.TuiCmd      `cmd:"" help:"Launch the interactive browser." default:"1"`
	Doctor    system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Timetable views.TimetableCmd `cmd:"" help:"Render the weekly timetable."`
	Matrix    views.MatrixCmd    `cmd:"" help:"Render the urgency/importance matrix."`
	Calendar  views.CalendarCmd  `cmd:"" help:"Render the deadline calendar."`
	Analyze   advise.AnalyzeCmd  `cmd:"" help:"Run AI schedule analysis."`
	Course    struct {
		Add    courses.CourseAddCmd    `cmd:"" help:"Add a new course."`
		Edit   courses.CourseEditCmd   `cmd:"" help:"Edit an existing course."`
		Delete courses.CourseDeleteCmd `cmd:"" help:"Delete a course."`
		List   courses.CourseListCmd   `cmd:"" help:"List all courses."`
	} `cmd:"" help:"Manage courses."`
	Task struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List all tasks."`
	} `cmd:"" help:"Manage tasks."`
	Sync struct {
		Upload   cloud.UploadCmd   `cmd:"" help:"Push local data to the cloud, replacing the remote copy."`
		Download cloud.DownloadCmd `cmd:"" help:"Fetch the cloud copy and apply it after confirmation."`
		Status   cloud.StatusCmd   `cmd:"" help:"Show sync configuration and state." default:"1"`
	} `cmd:"" help:"Sync data with the cloud."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage sync settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("smartsched"),
		kong.Description("Personal schedule planner: weekly timetable, task matrix, cloud sync"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	remoteClient := remote.NewClient()
	coordinator := syncer.New(store, remoteClient,
		syncer.WithSettingsResolver(cli.ResolveRemoteKey))

	appCtx := &cli.Context{
		Store:  store,
		Remote: remoteClient,
		Sync:   coordinator,
		Cache:  analysis.NewCache(store),
		NewAdvisor: func() (advisor.Advisor, error) {
			return advisor.NewClaude()
		},
		Debug: CLI.Debug,
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errs.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errs.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
