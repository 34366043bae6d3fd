package executor

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader supplies the lines read by input(). ReadLine shows prompt,
// returns one line without its terminator, and io.EOF once no data is left.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// readerLines reads lines from a plain reader and writes prompts to w.
type readerLines struct {
	r *bufio.Reader
	w io.Writer
}

// NewLineReader returns a LineReader over r. Prompts are written to w.
func NewLineReader(r io.Reader, w io.Writer) LineReader {
	return &readerLines{r: bufio.NewReader(r), w: w}
}

func (l *readerLines) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(l.w, prompt); err != nil {
			return "", err
		}
	}
	line, err := l.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
