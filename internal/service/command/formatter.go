package command

import (
	"fmt"
	"io"
)

// ResponseFormatter writes operator-facing text for the console commands.
type ResponseFormatter struct {
	out io.Writer
}

func NewResponseFormatter(out io.Writer) *ResponseFormatter {
	return &ResponseFormatter{out: out}
}

func (f *ResponseFormatter) Writer() io.Writer {
	return f.out
}

func (f *ResponseFormatter) Entry(name, description string) {
	fmt.Fprintf(f.out, "%s - %s\n", name, description)
}

func (f *ResponseFormatter) UnknownCommand(name string) {
	fmt.Fprintf(f.out, "Unknown command '%s'\n", name)
}

func (f *ResponseFormatter) UnknownSubCommand(name string) {
	fmt.Fprintf(f.out, "Unknown sub-command [%s]\n", name)
}

func (f *ResponseFormatter) RequiredSubCommand(name string) {
	fmt.Fprintf(f.out, "Sub-command [%s] is required\n", name)
}

func (f *ResponseFormatter) NotAnInteger(text string) {
	fmt.Fprintf(f.out, "Failed to extract integer value from string [%s]\n", text)
}

func (f *ResponseFormatter) Usage(usage string) {
	fmt.Fprintf(f.out, "Usage: %s\n", usage)
}

func (f *ResponseFormatter) Line(format string, args ...any) {
	fmt.Fprintf(f.out, format+"\n", args...)
}
