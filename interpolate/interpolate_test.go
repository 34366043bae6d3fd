package interpolate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUndefined = errors.New("Undefined variable")

func lookup(vars map[string]string, calls *[]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if calls != nil {
			*calls = append(*calls, name)
		}
		v, ok := vars[name]
		if !ok {
			return "", fmt.Errorf("%w: %s", errUndefined, name)
		}
		return v, nil
	}
}

func TestExpand(t *testing.T) {
	vars := map[string]string{
		"name": "Alice",
		"age":  "25",
		"flag": "true",
		"x_1":  "{name}",
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "Hello {name}", want: "Hello Alice"},
		{name: "number", input: "Age: {age}", want: "Age: 25"},
		{name: "boolean", input: "Status: {flag}", want: "Status: true"},
		{name: "multiple", input: "{name} is {age} years old", want: "Alice is 25 years old"},
		{name: "adjacent", input: "{name}{age}", want: "Alice25"},
		{name: "plain", input: "Just plain text", want: "Just plain text"},
		{name: "empty", input: "", want: ""},
		{name: "escaped braces", input: "Literal {{braces}}", want: "Literal {braces}"},
		{name: "escaped closing", input: "Test }}", want: "Test }"},
		{name: "lone closing", input: "a } b", want: "a } b"},
		{name: "escape then reference", input: "{{{name}}}", want: "{Alice}"},
		{name: "single pass", input: "{x_1}", want: "{name}"},
		{name: "unicode", input: "héllo {name} ✓", want: "héllo Alice ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.input, lookup(vars, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandEscapesDoNotLookup(t *testing.T) {
	var calls []string
	got, err := Expand("Literal {{braces}}", lookup(nil, &calls))
	require.NoError(t, err)
	assert.Equal(t, "Literal {braces}", got)
	assert.Empty(t, calls)
}

func TestExpandErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		msg     string
	}{
		{name: "undefined", input: "Hello {undefined}", wantErr: errUndefined, msg: "Undefined variable"},
		{name: "empty name", input: "Empty {}", wantErr: ErrEmptyName, msg: "Empty variable name"},
		{name: "unclosed", input: "Unclosed {name", wantErr: ErrUnclosed, msg: "missing '}'"},
		{name: "unclosed at end", input: "trailing {", wantErr: ErrUnclosed, msg: "missing '}'"},
		{name: "invalid char", input: "{first name}", wantErr: ErrInvalidChar, msg: "Invalid character in variable name: "},
		{name: "nested open", input: "{a{b}}", wantErr: ErrInvalidChar, msg: "{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expand(tt.input, lookup(map[string]string{"name": "x"}, nil))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestExpandErrorOrder(t *testing.T) {
	// The undefined reference comes first and wins over the later syntax error.
	_, err := Expand("{missing} {", lookup(nil, nil))
	require.ErrorIs(t, err, errUndefined)

	// A syntax error before any reference stops before resolving later ones.
	var calls []string
	_, err = Expand("{} {name}", lookup(map[string]string{"name": "x"}, &calls))
	require.ErrorIs(t, err, ErrEmptyName)
	assert.Empty(t, calls)
}

func TestParse(t *testing.T) {
	stream, err := Parse("Hi {name}, {{ok}}!")
	require.NoError(t, err)
	assert.Equal(t, Stream{
		Literal{Value: "Hi "},
		Variable{Name: "name"},
		Literal{Value: ", {ok}!"},
	}, stream)
}
