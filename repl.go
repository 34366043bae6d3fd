package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"go.creack.net/noviq/config"
	"go.creack.net/noviq/executor"
	"go.creack.net/noviq/parser"
	"go.creack.net/noviq/version"
)

const prompt = "noviq> "

const replHelp = `REPL commands:
  :env     List variable bindings
  :help    Show this message
  :quit    Exit the REPL
`

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

// promptLines serves input() from the line editor, which owns the terminal
// for the whole session.
type promptLines struct {
	ln *liner.State
}

func (p promptLines) ReadLine(prompt string) (string, error) {
	line, err := p.ln.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", errInputAborted
	}
	return line, err
}

var errInputAborted = errors.New("input aborted")

func runREPL(cfg config.Config, stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "Noviq %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", version.String())

	ln := liner.NewLiner()
	defer func() { _ = ln.Close() }()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil && cfg.History != "" {
		histPath = filepath.Join(home, cfg.History)
	}
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	opts := append(cfg.Options(), executor.WithLineReader(promptLines{ln: ln}), executor.WithStdout(stdout))
	interp := executor.New(opts...)

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil { // io.EOF on Ctrl+D.
			fmt.Fprintln(stdout)
			return exitOK
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if quit := evalLine(interp, line, stdout, stderr); quit {
			return exitOK
		}
	}
}

// evalLine runs one REPL line against interp and reports whether the
// session should end. Errors are printed and do not end the session.
func evalLine(interp *executor.Interpreter, line string, stdout, stderr io.Writer) bool {
	if cmd := strings.TrimSpace(line); strings.HasPrefix(cmd, ":") {
		switch strings.ToLower(cmd) {
		case ":quit", ":q":
			return true
		case ":help":
			fmt.Fprint(stdout, replHelp)
		case ":env":
			for _, name := range interp.Env().Names() {
				v, _ := interp.Env().Get(name)
				fmt.Fprintf(stdout, "%s = %s (%s)\n", name, v, v.Type())
			}
		default:
			fmt.Fprintf(stdout, "unknown command %q. Type :help for commands.\n", cmd)
		}
		return false
	}

	prog, err := parser.ParseString(line)
	if err != nil {
		fmt.Fprintln(stderr, red(err.Error()))
		return false
	}
	if err := interp.Execute(prog.Stmts); err != nil {
		fmt.Fprintln(stderr, red(err.Error()))
	}
	return false
}
