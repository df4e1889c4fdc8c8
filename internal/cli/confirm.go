package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/yukikurage/user-hobbies-api/internal/table"
)

// confirm shows the action's dialog text and reads a yes/no answer. --yes answers for the user.
func (a *app) confirm(action table.DeleteAction) bool {
	if a.yes {
		return true
	}

	color.New(color.FgRed, color.Bold).Fprintln(a.stdout, action.Title)
	fmt.Fprintln(a.stdout, action.Description)
	fmt.Fprintf(a.stdout, "%s? [y/N]: ", action.ConfirmText)

	answer, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(a.stdout)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// runDelete confirms and executes action. A declined prompt is not an error.
func (a *app) runDelete(ctx context.Context, action table.DeleteAction) (bool, error) {
	if !a.confirm(action) {
		fmt.Fprintln(a.stdout, "Cancelled.")
		return false, nil
	}
	return true, action.Execute(ctx, a.queries)
}
