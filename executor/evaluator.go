package executor

import (
	"errors"
	"fmt"
	"io"

	"go.creack.net/noviq/ast"
)

var (
	ErrUndefinedVariable = errors.New("Undefined variable")
	ErrUnknownBuiltin    = errors.New("Unknown builtin")
)

// Evaluator reduces an expression to a value. Builtins receive one to
// evaluate their arguments, possibly re-entering it while interpolating.
type Evaluator interface {
	Evaluate(ast.Expr) (Value, error)
}

type evaluator struct {
	env      *Environment
	builtins *Registry

	input  LineReader
	stdout io.Writer
}

func (e *evaluator) Evaluate(expr ast.Expr) (Value, error) {
	switch expr := expr.(type) {
	case ast.StringExpr:
		return StringValue{Value: expr.Value}, nil
	case ast.NumberExpr:
		return NumberValue{Value: expr.Value}, nil
	case ast.BooleanExpr:
		return BooleanValue{Value: expr.Value}, nil
	case ast.IdentifierExpr:
		v, ok := e.env.Get(expr.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndefinedVariable, expr.Name)
		}
		return v, nil
	case ast.CallExpr:
		fn, err := e.builtins.Lookup(expr.Name)
		if err != nil {
			return nil, err
		}
		return fn(&Call{
			Name:   expr.Name,
			Args:   expr.Args,
			Eval:   e,
			Input:  e.input,
			Stdout: e.stdout,
		})
	default:
		return nil, fmt.Errorf("unsupported expression type %T", expr)
	}
}
