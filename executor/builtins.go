package executor

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"go.creack.net/noviq/ast"
	"go.creack.net/noviq/interpolate"
)

// Call is what a builtin receives: its unevaluated arguments and the means
// to evaluate them.
type Call struct {
	Name string
	Args []ast.Expr
	Eval Evaluator

	Input  LineReader
	Stdout io.Writer
}

// Builtin is a host function invokable by name from program text.
type Builtin func(call *Call) (Value, error)

// Output builtin names. Only one of them is registered per interpreter.
const (
	BuiltinPrint = "print"
	BuiltinLog   = "log"
	BuiltinInput = "input"
)

// Registry maps builtin names to their implementation.
type Registry struct {
	builtins map[string]Builtin
}

func NewRegistry() *Registry {
	return &Registry{builtins: map[string]Builtin{}}
}

// DefaultRegistry registers the output builtin under outputName along with input.
func DefaultRegistry(outputName string) *Registry {
	r := NewRegistry()
	r.Register(outputName, builtinPrint)
	r.Register(BuiltinInput, builtinInput)
	return r
}

// Register adds a builtin. Registering the same name twice panics.
func (r *Registry) Register(name string, fn Builtin) {
	if _, ok := r.builtins[name]; ok {
		panic("duplicate builtin " + name)
	}
	r.builtins[name] = fn
}

func (r *Registry) Lookup(name string) (Builtin, error) {
	fn, ok := r.builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBuiltin, name)
	}
	return fn, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.builtins))
}

// display evaluates arg and renders it, interpolating string values.
func (c *Call) display(arg ast.Expr) (string, error) {
	v, err := c.Eval.Evaluate(arg)
	if err != nil {
		return "", err
	}
	s, ok := v.(StringValue)
	if !ok {
		return v.String(), nil
	}
	return interpolate.Expand(s.Value, c.resolve)
}

func (c *Call) resolve(name string) (string, error) {
	v, err := c.Eval.Evaluate(ast.IdentifierExpr{Name: name})
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// builtinPrint writes its arguments separated by a space and followed by a
// newline. Nothing is written if any argument fails.
func builtinPrint(c *Call) (Value, error) {
	parts := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		s, err := c.display(arg)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	if _, err := io.WriteString(c.Stdout, strings.Join(parts, " ")+"\n"); err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	return Null, nil
}

// builtinInput reads one line through the interpreter's LineReader, showing
// the optional prompt first. It returns null once input is exhausted.
func builtinInput(c *Call) (Value, error) {
	if len(c.Args) > 1 {
		return nil, fmt.Errorf("%s: expected at most 1 argument, got %d", c.Name, len(c.Args))
	}
	var prompt string
	if len(c.Args) == 1 {
		var err error
		if prompt, err = c.display(c.Args[0]); err != nil {
			return nil, err
		}
	}

	line, err := c.Input.ReadLine(prompt)
	if errors.Is(err, io.EOF) {
		return Null, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	return StringValue{Value: line}, nil
}
