package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/xiam/lishp/lexer"
	"github.com/xiam/lishp/parser"
)

// TokensCmd represents the tokens command
type TokensCmd struct {
	File       string `arg:"" help:"Source file" type:"existingfile"`
	Comments   bool   `help:"Include comment tokens"`
	Whitespace bool   `help:"Include whitespace tokens"`
}

// Run executes the tokens command
func (cmd *TokensCmd) Run(ctx *Context) error {
	src, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.File, err)
	}

	tokens, err := lexer.TokenizeWithOptions(string(src), lexer.Options{
		KeepComments:   cmd.Comments || ctx.Config.KeepComments,
		KeepWhitespace: cmd.Whitespace,
		Trace:          ctx.Trace,
	})
	if err != nil {
		printDiagnostic(ctx.Err, cmd.File, string(src), err)
		return fmt.Errorf("%w: %s", ErrCheckFailed, cmd.File)
	}

	kind := color.New(color.FgCyan)
	for _, tok := range tokens {
		line, col := tok.Span.Position(string(src))
		fmt.Fprintf(ctx.Out, "%d:%d\t%v\t%s\t%q\n", line, col, tok.Span, kind.Sprint(tok.Type), tok.Text)
	}
	return nil
}

// ParseCmd represents the parse command
type ParseCmd struct {
	File   string `arg:"" help:"Source file" type:"existingfile"`
	Format string `help:"Output format: sexpr, tree, json, yaml or xml (defaults to the configured one)" short:"f"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	format := cmd.Format
	if format == "" {
		format = ctx.Config.Format
	}
	if !isFormat(format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.File, err)
	}

	root, err := ctx.parse(string(src))
	if err != nil {
		printDiagnostic(ctx.Err, cmd.File, string(src), err)
		return fmt.Errorf("%w: %s", ErrCheckFailed, cmd.File)
	}

	return writeValue(ctx.Out, root, format)
}

// CheckCmd represents the check command
type CheckCmd struct {
	Files []string `arg:"" help:"Source files" type:"existingfile"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	failed := 0
	for _, file := range cmd.Files {
		src, err := os.ReadFile(file)
		if err != nil {
			printDiagnostic(ctx.Err, file, "", err)
			failed++
			continue
		}

		if _, err := ctx.parse(string(src)); err != nil {
			printDiagnostic(ctx.Err, file, string(src), err)
			failed++
			continue
		}

		fmt.Fprintf(ctx.Out, "%s: %s\n", file, color.GreenString("ok"))
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrCheckFailed, failed, len(cmd.Files))
	}
	return nil
}

// errorOffset returns the byte offset a lexer or parser error points at.
func errorOffset(err error) (int, bool) {
	var perr *parser.Error
	if errors.As(err, &perr) {
		return perr.Offset, true
	}

	var lerr *lexer.InvalidTokenError
	if errors.As(err, &lerr) {
		return lerr.Offset, true
	}

	return 0, false
}

// printDiagnostic writes a file:line:col: message line for err.
func printDiagnostic(w io.Writer, file, src string, err error) {
	red := color.New(color.FgRed, color.Bold)

	offset, ok := errorOffset(err)
	if !ok {
		fmt.Fprintf(w, "%s: %s %v\n", file, red.Sprint("error:"), err)
		return
	}

	line, col := lexer.NewSpan(offset, offset).Position(src)
	fmt.Fprintf(w, "%s:%d:%d: %s %v\n", file, line, col, red.Sprint("error:"), err)
}
