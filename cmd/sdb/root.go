package main

import (
	"context"
	"io"
	"os"

	"github.com/sandevgo/sdb/internal/config"
	"github.com/sandevgo/sdb/internal/core"
	"github.com/sandevgo/sdb/internal/service/command"
	"github.com/sandevgo/sdb/internal/service/ui"
	"github.com/sandevgo/sdb/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "sdb",
	Short: "SDB: simple debugger for the NEMU simulator",
	Long:  `SDB runs a riscv32 guest image under an interactive debugging console.`,
}

func Execute() {
	CustomizeHelp(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}

// CustomizeHelp styles the cobra help and appends the commands understood
// at the (nemu) prompt, so operators see both surfaces in one place.
func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })
	cobra.AddTemplateFunc("StyleCommand", func(s string) string { return ui.CommandStyle.Render(s) })
	cobra.AddTemplateFunc("ConsoleCommands", consoleCommands)

	rootCmd.SetHelpTemplate(helpTemplate)
}

// consoleCommands lists the prompt commands. The table is only read for
// names and descriptions, so it needs no simulator behind it.
func consoleCommands() []core.Command {
	return command.NewRegistry(nil, nil, io.Discard).List()
}

const helpTemplate = `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if .HasAvailableSubCommands}}{{StyleTitle "SUBCOMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{StyleFlag (.LocalFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}{{if .HasAvailableInheritedFlags}}{{StyleTitle "GLOBAL FLAGS"}}
{{StyleFlag (.InheritedFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}
{{StyleTitle "CONSOLE COMMANDS"}}
{{range ConsoleCommands}}  {{StyleCommand (rpad .Name 5)}} {{StyleDesc .Description}}
{{end}}`
