package core

const (
	SdbName     = "NEMU"
	SdbISA      = "riscv32"
	SdbPrompt   = "(nemu) "
	SdbVersion  = "0.1.0"
	SdbHelpHint = `For help, type "help"`
)
