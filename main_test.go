package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/noviq/executor"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun(t *testing.T) {
	t.Chdir(t.TempDir())

	hello := writeFile(t, "hello.nvq", "let who = 'world'\nprint(\"Hello, {who}!\")\n")
	greet := writeFile(t, "greet.nvq", "let n = input('Name: ')\nprint(\"Hi {n}\")\n")
	broken := writeFile(t, "broken.nvq", "print \"a\"\n")
	undefined := writeFile(t, "undefined.nvq", "print(\"a\")\nprint(\"{b}\")\n")
	wrongExt := writeFile(t, "hello.txt", "print('a')\n")
	logCfg := writeFile(t, "noviq.yaml", "builtin: log\n")
	logProg := writeFile(t, "log.nvq", "log('via log')\n")

	tests := []struct {
		name     string
		args     []string
		stdin    string
		code     int
		stdout   string // Substring, empty to skip.
		stderr   string // Substring, empty for no output.
		exactOut bool
	}{
		{name: "no args", args: nil, stdout: "USAGE:"},
		{name: "version", args: []string{"-version"}, stdout: "Noviq "},
		{name: "version short", args: []string{"-v"}, stdout: "Noviq "},
		{name: "help", args: []string{"-h"}, stderr: "USAGE:"},
		{name: "bad flag", args: []string{"-nope"}, code: exitUsage, stderr: "flag provided but not defined"},
		{name: "too many files", args: []string{hello, hello}, code: exitUsage, stderr: "USAGE:"},
		{name: "hello", args: []string{hello}, stdout: "Hello, world!\n", exactOut: true},
		{name: "stdin", args: []string{greet}, stdin: "Ada\n", stdout: "Name: Hi Ada\n", exactOut: true},
		{name: "parse error", args: []string{broken}, code: exitError, stderr: "noviq: line 1: Expected '(' after identifier 'print'"},
		{name: "runtime error", args: []string{undefined}, code: exitError, stdout: "a\n", exactOut: true, stderr: "noviq: Undefined variable: b"},
		{name: "wrong extension", args: []string{wrongExt}, code: exitUsage, stderr: "Error: File must have .nvq extension"},
		{name: "missing file", args: []string{filepath.Join(t.TempDir(), "nope.nvq")}, code: exitError, stderr: "Error reading file"},
		{name: "tokens", args: []string{"-tokens", hello}, stdout: "[]lexer.Token{"},
		{name: "tokens values", args: []string{"-tokens", hello}, stdout: `"Hello, {who}!"`},
		{name: "ast", args: []string{"-ast", hello}, stdout: "ast.LetStmt"},
		{name: "ast parse error", args: []string{"-ast", broken}, code: exitError, stderr: "Expected '('"},
		{name: "config log alias", args: []string{"-config", logCfg, logProg}, stdout: "via log\n", exactOut: true},
		{name: "missing config", args: []string{"-config", filepath.Join(t.TempDir(), "none.yaml"), hello}, code: exitError, stderr: "noviq: open config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := bytes.NewBuffer(nil)
			stderr := bytes.NewBuffer(nil)

			code := run(tt.args, strings.NewReader(tt.stdin), stdout, stderr)
			assert.Equal(t, tt.code, code, "exit code (stderr: %s)", stderr)
			switch {
			case tt.exactOut:
				assert.Equal(t, tt.stdout, stdout.String(), "Stdout mismatch")
			case tt.stdout != "":
				assert.Contains(t, stdout.String(), tt.stdout, "Stdout mismatch")
			}
			if tt.stderr != "" {
				assert.Contains(t, stderr.String(), tt.stderr, "Stderr mismatch")
			} else if tt.code == exitOK {
				assert.Empty(t, stderr.String(), "Stderr mismatch")
			}
		})
	}
}

func TestEvalLine(t *testing.T) {
	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)
	interp := executor.New(executor.WithStdout(stdout))

	for _, line := range []string{
		`let who = "repl"`,
		`print("hi {who}")`,
		`print("{nope}")`,
		`print(`,
		`let n = 2`,
	} {
		require.False(t, evalLine(interp, line, stdout, stderr), "line %q", line)
	}
	assert.Equal(t, "hi repl\n", stdout.String())
	assert.Contains(t, stderr.String(), "Undefined variable: nope")
	assert.Contains(t, stderr.String(), "Unexpected token in expression: EOF")

	stdout.Reset()
	require.False(t, evalLine(interp, ":env", stdout, stderr))
	assert.Equal(t, "n = 2 (number)\nwho = repl (string)\n", stdout.String())

	stdout.Reset()
	require.False(t, evalLine(interp, ":help", stdout, stderr))
	assert.Equal(t, replHelp, stdout.String())

	require.True(t, evalLine(interp, ":quit", stdout, stderr))
	require.True(t, evalLine(interp, "  :q ", stdout, stderr))
}

func TestEvalLineInput(t *testing.T) {
	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)
	lines := &scriptedLines{lines: []string{"Ada"}}
	interp := executor.New(executor.WithStdout(stdout), executor.WithLineReader(lines))

	require.False(t, evalLine(interp, `let n = input("Name? ")`, stdout, stderr))
	require.False(t, evalLine(interp, `print("hi {n}")`, stdout, stderr))
	require.False(t, evalLine(interp, `let m = input()`, stdout, stderr))
	require.False(t, evalLine(interp, `print("{m}")`, stdout, stderr))

	assert.Empty(t, stderr.String())
	assert.Equal(t, "hi Ada\nnull\n", stdout.String(), "prompts are left to the line reader")
	assert.Equal(t, []string{"Name? ", ""}, lines.prompts)
}

// scriptedLines serves canned input() lines.
type scriptedLines struct {
	lines   []string
	prompts []string
}

func (s *scriptedLines) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}
