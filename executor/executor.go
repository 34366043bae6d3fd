// Package executor runs parsed noviq programs.
package executor

import (
	"fmt"
	"io"
	"strings"

	"go.creack.net/noviq/ast"
)

// Interpreter executes statements against one environment for its whole
// lifetime. It is not safe for concurrent use.
type Interpreter struct {
	env  *Environment
	eval *evaluator
}

type options struct {
	stdin      io.Reader
	input      LineReader
	stdout     io.Writer
	outputName string
	registry   *Registry
}

type Option func(*options)

// WithStdin sets where input() reads from. Defaults to an empty reader.
func WithStdin(r io.Reader) Option {
	return func(o *options) { o.stdin = r }
}

// WithLineReader makes input() read through lr instead of stdin. Prompts are
// then left to lr.
func WithLineReader(lr LineReader) Option {
	return func(o *options) { o.input = lr }
}

// WithStdout sets where print/log and input prompts write. Defaults to io.Discard.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithOutputBuiltin registers the output builtin under name, print or log.
func WithOutputBuiltin(name string) Option {
	return func(o *options) { o.outputName = name }
}

// WithRegistry replaces the default builtins.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

func New(opts ...Option) *Interpreter {
	o := options{outputName: BuiltinPrint}
	for _, opt := range opts {
		opt(&o)
	}
	if o.stdin == nil {
		o.stdin = strings.NewReader("")
	}
	if o.stdout == nil {
		o.stdout = io.Discard
	}
	if o.input == nil {
		o.input = NewLineReader(o.stdin, o.stdout)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry(o.outputName)
	}

	env := NewEnvironment()
	return &Interpreter{
		env: env,
		eval: &evaluator{
			env:      env,
			builtins: o.registry,
			input:    o.input,
			stdout:   o.stdout,
		},
	}
}

// Env returns the interpreter's environment.
func (i *Interpreter) Env() *Environment { return i.env }

// Evaluate reduces expr to a value. The interpreter is the Evaluator passed
// down to builtins.
func (i *Interpreter) Evaluate(expr ast.Expr) (Value, error) {
	return i.eval.Evaluate(expr)
}

// Execute runs stmts in order and stops at the first error.
func (i *Interpreter) Execute(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.executeStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeStmt(stmt ast.Stmt) error {
	switch stmt := stmt.(type) {
	case ast.LetStmt:
		v, err := i.eval.Evaluate(stmt.Value)
		if err != nil {
			return err
		}
		i.env.Set(stmt.Name, v)
		return nil
	case ast.ExpressionStmt:
		_, err := i.eval.Evaluate(stmt.Expression)
		return err
	default:
		return fmt.Errorf("unsupported statement type %T", stmt)
	}
}
