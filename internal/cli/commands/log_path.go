package commands

import (
	"OptiTools/internal/config"
	"OptiTools/internal/logging"
	"context"
	"fmt"
)

type logPathCmd struct{}

func (logPathCmd) Name() string        { return "log-path" }
func (logPathCmd) Description() string { return "Print the log file path in use" }
func (logPathCmd) Usage() string       { return "log-path" }

func (logPathCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	path := cfg.LogFile
	if path == "" {
		path = logging.ResolvePath()
	}
	fmt.Fprintln(Out, path)
	return nil
}

func init() { RegisterCmd(logPathCmd{}) }
