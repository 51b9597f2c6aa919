package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/xiam/lishp"
	"github.com/xiam/lishp/lexer"
)

const (
	promptMain = "lishp> "
	promptCont = "...    "
	banner     = "lishp reader. Ctrl+C cancels the input, Ctrl+D exits. Type :help for commands."
	replHelp   = `Commands:
  :help             Show this help
  :quit, :exit      Leave the reader
  :format <name>    Switch the output format (sexpr, tree, json, yaml, xml)`
)

// lineReader is the part of the line editor the reader loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// ReplCmd represents the repl command
type ReplCmd struct{}

// Run executes the repl command
func (cmd *ReplCmd) Run(ctx *Context) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	history := ctx.Config.History
	if history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	fmt.Fprintln(ctx.Out, banner)
	newRepl(ctx, ln).run()
	fmt.Fprintln(ctx.Out)

	if history != "" {
		saveHistory(ctx, ln, history)
	}
	return nil
}

type historyWriter interface {
	WriteHistory(w io.Writer) (int, error)
}

// saveHistory writes the session history to path. Failing to do so only
// warns, the session itself went fine.
func saveHistory(ctx *Context, h historyWriter, path string) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(ctx.Err, "%s could not save history: %v\n", color.YellowString("warning:"), err)
		return
	}
	defer f.Close()

	if _, err := h.WriteHistory(f); err != nil {
		fmt.Fprintf(ctx.Err, "%s could not save history: %v\n", color.YellowString("warning:"), err)
	}
}

// historyEntry flattens src into a single line that still reads back as
// the same form. The history file holds one entry per line.
func historyEntry(src string) string {
	tokens, err := lexer.TokenizeWithOptions(src, lexer.Options{KeepWhitespace: true})
	if err != nil {
		return strings.Join(strings.Fields(src), " ")
	}

	var b strings.Builder
	for _, tok := range tokens {
		switch tok.Type {
		case lexer.TokenWhitespace:
			if s := b.String(); s != "" && !strings.HasSuffix(s, " ") {
				b.WriteByte(' ')
			}
		case lexer.TokenString:
			b.WriteString(strings.NewReplacer("\n", `\n`, "\r", `\r`).Replace(tok.Text))
		default:
			b.WriteString(tok.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

type repl struct {
	ctx    *Context
	in     lineReader
	format string
}

func newRepl(ctx *Context, in lineReader) *repl {
	return &repl{ctx: ctx, in: in, format: ctx.Config.Format}
}

// run reads and prints forms until the input ends or the user quits.
func (r *repl) run() {
	for {
		src, ok := r.read()
		if !ok {
			return
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		r.in.AppendHistory(historyEntry(src))

		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			if done := r.command(src); done {
				return
			}
			continue
		}

		root, err := r.ctx.parse(src)
		if err != nil {
			printDiagnostic(r.ctx.Err, "<repl>", src, err)
			continue
		}
		if err := writeValue(r.ctx.Out, root, r.format); err != nil {
			fmt.Fprintln(r.ctx.Err, color.RedString("%v", err))
		}
	}
}

// read accumulates lines until they hold a complete form, or until the
// parser reports an error more input cannot fix.
func (r *repl) read() (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := r.in.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			fmt.Fprintln(r.ctx.Err, color.RedString("%v", err))
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := lishp.ParseString(src); lishp.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// command runs a :command line and reports whether the loop must stop.
func (r *repl) command(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":exit":
		return true

	case ":help":
		fmt.Fprintln(r.ctx.Out, replHelp)

	case ":format":
		if len(fields) != 2 || !isFormat(fields[1]) {
			fmt.Fprintf(r.ctx.Err, "%s usage: :format %s\n", color.RedString("error:"), strings.Join(formats, "|"))
			return false
		}
		r.format = fields[1]

	default:
		fmt.Fprintf(r.ctx.Err, "%s unknown command %s, type :help for help\n", color.RedString("error:"), fields[0])
	}
	return false
}
