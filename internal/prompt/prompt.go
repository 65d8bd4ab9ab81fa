// Package prompt asks the operator for the client name before a run.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrAborted is returned when the prompt is interrupted or input ends
	ErrAborted = errors.New("aborted by user")

	// ErrEmptyClient is returned when the answer is blank
	ErrEmptyClient = errors.New("client name is required")
)

const question = "Nombre del cliente tal como aparece: "

// ClientName writes the question to out and reads one line from in.
// Cancelling ctx, typically on SIGINT, aborts the prompt.
func ClientName(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, question)

	type answer struct {
		line string
		err  error
	}
	answers := make(chan answer, 1)
	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		answers <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(out)
		return "", ErrAborted
	case a := <-answers:
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return "", fmt.Errorf("reading client name: %w", a.err)
		}
		if a.err != nil && a.line == "" {
			return "", ErrAborted
		}
		client := strings.TrimSpace(a.line)
		if client == "" {
			return "", ErrEmptyClient
		}
		return client, nil
	}
}
