package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomizeHelp_ListsConsoleCommands(t *testing.T) {
	var out bytes.Buffer
	CustomizeHelp(rootCmd)
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Help())

	got := out.String()
	assert.Contains(t, got, "SUBCOMMANDS")
	assert.Contains(t, got, "run")
	assert.Contains(t, got, "CONSOLE COMMANDS")
	for _, cmd := range consoleCommands() {
		assert.Contains(t, got, cmd.Description())
	}
}
