package main

import (
	"fmt"
	"io"
	"log"

	"github.com/fmizzell/todo"
	"github.com/fmizzell/todo/internal/config"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}
	if dirFlag != "" {
		cfg.Dir = dirFlag
	}
	return cfg, nil
}

// newLogger returns a stderr logger when --verbose is set, otherwise one
// that discards everything
func newLogger(errOut io.Writer) *log.Logger {
	if !verboseFlag {
		return log.New(io.Discard, "", 0)
	}
	return log.New(errOut, fmt.Sprintf("todo[%s] ", generateRunID()), 0)
}

// generateRunID tags the log lines of one invocation
func generateRunID() string {
	return uuid.New().String()[:8]
}

// runCommand opens the store, handles one command and renders the result
func runCommand(cmd *cobra.Command, command todo.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr())
	store := todo.NewFileStore(cfg.Dir, todo.WithLogger(logger))
	t := todo.New(store, todo.WithTodoLogger(logger))

	logger.Printf("%s using %s", command.Type(), store.Dir())

	result, err := t.Handle(command)
	if err != nil {
		return err
	}

	return todo.Render(cmd.OutOrStdout(), result.Tasks)
}
