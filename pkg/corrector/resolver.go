package corrector

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Resolver picks one of options for a revision and returns its index.
// options[0] is always the original text.
type Resolver interface {
	Resolve(ctx context.Context, rev Revision, options []string) (int, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, rev Revision, options []string) (int, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, rev Revision, options []string) (int, error) {
	return f(ctx, rev, options)
}

// KeepOriginal always keeps the original text.
var KeepOriginal Resolver = ResolverFunc(func(context.Context, Revision, []string) (int, error) {
	return 0, nil
})

// FirstSuggestion takes the best suggestion when there is one.
var FirstSuggestion Resolver = ResolverFunc(func(_ context.Context, _ Revision, options []string) (int, error) {
	if len(options) > 1 {
		return 1, nil
	}
	return 0, nil
})

// ErrScriptExhausted is returned when a ScriptedResolver runs out of choices.
var ErrScriptExhausted = errors.New("corrector: scripted choices exhausted")

// ScriptedResolver replays fixed 0-based choices, one per revision.
type ScriptedResolver struct {
	Choices []int
	next    int
}

// NewScriptedResolver creates a resolver that replays choices.
func NewScriptedResolver(choices ...int) *ScriptedResolver {
	return &ScriptedResolver{Choices: choices}
}

// Resolve returns the next scripted choice.
func (s *ScriptedResolver) Resolve(context.Context, Revision, []string) (int, error) {
	if s.next >= len(s.Choices) {
		return 0, ErrScriptExhausted
	}
	c := s.Choices[s.next]
	s.next++
	return c, nil
}

// PromptResolver asks on a line-oriented terminal. It numbers options
// from 1 and asks again on anything that is not a number in range, with
// no retry limit. It only gives up on end of input or cancellation.
type PromptResolver struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptResolver reads answers from in and writes prompts to out.
func NewPromptResolver(in io.Reader, out io.Writer) *PromptResolver {
	return &PromptResolver{in: bufio.NewReader(in), out: out}
}

// Resolve prints the options and reads a choice.
func (p *PromptResolver) Resolve(ctx context.Context, rev Revision, options []string) (int, error) {
	fmt.Fprintf(p.out, "\nLa palabra '%s' no parece ser una tabla o columna válida.\n", rev.Original)
	fmt.Fprintln(p.out, "Posibles traducciones o correcciones:")
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, opt)
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintf(p.out, "Por favor, elige la opción correcta para '%s' (1-%d): ", rev.Original, len(options))

		line, err := p.in.ReadString('\n')
		if line == "" && err != nil {
			return 0, fmt.Errorf("read choice: %w", err)
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case convErr != nil:
			fmt.Fprintln(p.out, "Entrada inválida. Por favor, ingresa un número.")
		case n < 1 || n > len(options):
			fmt.Fprintln(p.out, "Opción no válida. Por favor, ingresa un número dentro del rango.")
		default:
			return n - 1, nil
		}
		if err != nil {
			return 0, fmt.Errorf("read choice: %w", err)
		}
	}
}
