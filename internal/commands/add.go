package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/service"
	"tasklist/internal/taskstore"
)

func init() {
	Register(&AddCmd{})
	Register(&CreateCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "tasklist add <text...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, cfg, store, args, out, errOut)
}

// CreateCmd is an alias for AddCmd.
type CreateCmd struct{}

func (c *CreateCmd) Name() string      { return "create" }
func (c *CreateCmd) Aliases() []string { return nil }
func (c *CreateCmd) Synopsis() string  { return "Add a task (alias for add)" }
func (c *CreateCmd) Usage() string     { return "tasklist create <text...>" }
func (c *CreateCmd) NeedsStore() bool  { return true }

func (c *CreateCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CreateCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, cfg, store, args, out, errOut)
}

// runAdd is the shared implementation for add and create commands.
func runAdd(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	input := &argsInput{text: strings.Join(args, " ")}
	ts := openSession(ctx, cfg, store, &entryView{},
		taskstore.WithInput(input),
		taskstore.WithNotifier(errNotifier{w: errOut}),
	)

	if _, err := ts.Submit(ctx); err != nil {
		if errors.Is(err, taskstore.ErrEmptyTask) {
			// Already reported by the notifier.
			return exitcode.UserError
		}
		return reportBackendError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
