package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/tui/huhforms"
)

type assumeYesKey struct{}

// WithAssumeYes marks ctx so deletions are approved without prompting (--yes)
func WithAssumeYes(ctx context.Context, yes bool) context.Context {
	return context.WithValue(ctx, assumeYesKey{}, yes)
}

// AssumeYes reports whether ctx carries --yes
func AssumeYes(ctx context.Context) bool {
	yes, _ := ctx.Value(assumeYesKey{}).(bool)
	return yes
}

// Confirmer approves deletions when the context carries --yes and otherwise
// asks through a huh confirm form. A form that cannot run (no terminal)
// counts as a refusal.
func Confirmer(colors config.ColorScheme) board.Confirmer {
	return board.ConfirmFunc(func(ctx context.Context, prompt string) (bool, error) {
		if AssumeYes(ctx) {
			return true, nil
		}
		var confirmed bool
		form := huhforms.CreateConfirmForm(prompt, &confirmed).WithTheme(huhforms.CreateTheme(colors))
		if err := form.RunWithContext(ctx); err != nil {
			return false, fmt.Errorf("confirmation prompt failed: %w", err)
		}
		return confirmed, nil
	})
}
