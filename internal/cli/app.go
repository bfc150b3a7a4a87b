package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/tolvera-labs/tolvera-sketch/internal/config"
	"github.com/tolvera-labs/tolvera-sketch/internal/logging"
	"github.com/tolvera-labs/tolvera-sketch/internal/sketchbook"
	"github.com/tolvera-labs/tolvera-sketch/internal/ui"
)

// BuildInfo is injected via ldflags at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App carries everything a command needs. Config and Logger are filled in by
// the root command before any subcommand runs, unless already set.
type App struct {
	Out    io.Writer
	Err    io.Writer
	Build  BuildInfo
	Config *config.Config
	Logger *slog.Logger
	Now    func() time.Time
	Getwd  func() (string, error)
}

// NewApp returns an App writing to the process's stdout and stderr.
func NewApp(build BuildInfo) *App {
	return &App{
		Out:   os.Stdout,
		Err:   os.Stderr,
		Build: build,
		Now:   time.Now,
		Getwd: os.Getwd,
	}
}

func (a *App) scaffolder() *sketchbook.Scaffolder {
	s := sketchbook.NewScaffolder(a.logger())
	s.Python = a.Config.Python()
	if a.Now != nil {
		s.Now = a.Now
	}
	if a.Getwd != nil {
		s.Getwd = a.Getwd
	}
	return s
}

func (a *App) getwd() (string, error) {
	if a.Getwd == nil {
		return os.Getwd()
	}
	return a.Getwd()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return logging.Discard()
	}
	return a.Logger
}

// Execute runs the CLI against os.Args with build info injected via ldflags.
func Execute(version, commit, date string) error {
	app := NewApp(BuildInfo{Version: version, Commit: commit, Date: date})
	return run(app, os.Args[1:])
}

// run executes args and reports any error on app.Err.
func run(app *App, args []string) error {
	root := NewRootCmd(app)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		ui.Error(app.Err, "%s", err)
		return err
	}
	return nil
}
