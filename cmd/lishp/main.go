package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/xiam/lishp"
	"github.com/xiam/lishp/ast"
)

const version = "v0.1.0"

// Context represents the global context for commands
type Context struct {
	Config *Config
	Trace  *log.Logger
	Out    io.Writer
	Err    io.Writer
}

// parse reads src, tracing tokens when requested.
func (ctx *Context) parse(src string) (*ast.Value, error) {
	r := lishp.NewReader(strings.NewReader(src))
	r.SetTrace(ctx.Trace)
	return r.Parse()
}

// CLI represents the command-line interface
var CLI struct {
	Config  string     `help:"Configuration file path (.yaml, .yml or .toml)" default:"lishp.yaml"`
	Trace   bool       `help:"Log every token read to stderr"`
	NoColor bool       `help:"Disable colored output"`
	Tokens  TokensCmd  `cmd:"" help:"Print the tokens of a source file"`
	Parse   ParseCmd   `cmd:"" help:"Parse a source file and print its tree"`
	Check   CheckCmd   `cmd:"" help:"Check that source files are well formed"`
	Repl    ReplCmd    `cmd:"" help:"Read forms interactively and print their tree"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintf(ctx.Out, "lishp %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lishp"),
		kong.Description("Reader for the lishp language."),
		kong.UsageOnError(),
	)

	config, err := LoadConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if CLI.NoColor {
		config.Color = false
	}
	if !config.Color {
		color.NoColor = true
	}

	appCtx := &Context{
		Config: config,
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
	if CLI.Trace {
		appCtx.Trace = log.New(os.Stderr, "lexer: ", 0)
	}

	err = ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
