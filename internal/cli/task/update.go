package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/huhforms"
)

const formDescriptionLines = 8

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task>",
		Short: "Update a task's title, description or status",
		Long: `Update a task. Only the flags given are changed. Requires an admin session.

Examples:
  kanban task update "Fix bug" --status done
  kanban task update 9c41e2ab --title "Fix login bug" --description ""

  # Edit all fields in a form
  kanban task update "Fix bug" --interactive
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runUpdate),
	}

	cmd.Flags().StringP("title", "t", "", "New title")
	cmd.Flags().StringP("description", "d", "", "New description in markdown")
	cmd.Flags().StringP("status", "s", "", "New status: todo, in-progress or done")
	cmd.Flags().BoolP("interactive", "i", false, "Edit the task in a form")
	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(env *handler.Env) error {
	m := env.CLI.App.Board
	task, err := resolveTask(env, env.Args[0])
	if err != nil {
		return err
	}

	var patch models.TaskPatch
	if env.Flags.ParseBool("interactive") {
		if !m.CanEdit(env.Ctx) {
			return board.ErrReadOnly
		}
		if patch, err = editInForm(env, task); err != nil {
			return err
		}
	} else {
		if patch.Title, err = env.Flags.ParseStringOptional("title"); err != nil {
			return err
		}
		if patch.Description, err = env.Flags.ParseStringOptional("description"); err != nil {
			return err
		}
		if patch.Status, err = env.Flags.ParseStatus("status"); err != nil {
			return err
		}
		if patch.IsEmpty() {
			return env.Formatter.UsageError("nothing to update",
				"Pass --title, --description, --status or --interactive")
		}
	}

	updated, err := m.UpdateTask(env.Ctx, task.ID, patch)
	if err != nil {
		return err
	}
	return env.Formatter.Render(updated, func() string {
		return styles.Success(fmt.Sprintf("Task '%s' updated", updated.Title))
	})
}

// editInForm runs the task form prefilled with task and returns the changes
func editInForm(env *handler.Env, task models.Task) (models.TaskPatch, error) {
	title, description, status := task.Title, task.Description, task.Status
	form := huhforms.CreateTaskForm(&title, &description, &status, formDescriptionLines).
		WithTheme(huhforms.CreateTheme(env.CLI.Config.ColorScheme))
	if err := form.RunWithContext(env.Ctx); err != nil {
		return models.TaskPatch{}, errors.Join(board.ErrCancelled, err)
	}
	return models.TaskPatch{Title: &title, Description: &description, Status: &status}, nil
}
