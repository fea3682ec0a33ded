package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tasklist help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	fmt.Fprintln(out, "\nCommands:")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-22s %s\n", Label(cmd), cmd.Synopsis())
	}
	fmt.Fprint(out, settingsText)
	return exitcode.Success
}

const helpText = `Usage:
  tasklist                          List tasks
  tasklist list [common flags]      List tasks
  tasklist add [common flags] <text...>
  tasklist rm [common flags] <n>    Remove task number n
  tasklist ui [common flags]        Interactive terminal UI
  tasklist login [common flags]     Authorize the googletasks backend

Common flags:
  --config <dir>     Override config directory
  --backend <name>   Storage backend: file, badger, mysql, googletasks
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr
`

const settingsText = `
Settings are read from <config dir>/config.yaml and TASKLIST_* environment
variables (e.g. TASKLIST_STORAGE_BACKEND=badger, TASKLIST_STORAGE_KEY=work).
`
