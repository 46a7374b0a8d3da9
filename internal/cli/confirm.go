package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Confirm asks a yes/no question and reads one line of the answer. Anything
// other than "y" or "yes" is a no. The read is abandoned if ctx ends first.
func Confirm(ctx context.Context, in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprint(out, FormatPrompt(question+" [y/N]")); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	// The goroutine outlives a canceled read until the reader returns.
	go func() {
		value, err := bufio.NewReader(in).ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil && !errors.Is(res.err, io.EOF) {
			return false, fmt.Errorf("failed to read answer: %w", res.err)
		}
		switch strings.ToLower(strings.TrimSpace(res.value)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	}
}
