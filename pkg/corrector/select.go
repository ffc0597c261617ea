package corrector

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

// SelectResolver shows an interactive arrow-key list on a terminal.
type SelectResolver struct {
	Accessible bool // plain prompts for screen readers
}

// Resolve runs a single-select form over options.
func (s SelectResolver) Resolve(ctx context.Context, rev Revision, options []string) (int, error) {
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		label := o
		if i == 0 {
			label = o + " (original)"
		}
		opts[i] = huh.NewOption(label, i)
	}

	choice := 0
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("'%s' no parece ser una tabla o columna válida", rev.Original)).
				Description("Elige la opción correcta").
				Options(opts...).
				Value(&choice),
		),
	).WithAccessible(s.Accessible)

	if err := form.RunWithContext(ctx); err != nil {
		return 0, fmt.Errorf("select choice: %w", err)
	}
	return choice, nil
}
