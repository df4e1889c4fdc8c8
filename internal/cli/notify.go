package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/yukikurage/user-hobbies-api/internal/client"
)

// notifier prints notifications as coloured one-liners.
type notifier struct {
	out io.Writer
}

func (n *notifier) Notify(note client.Notification) {
	title := color.New(color.FgGreen, color.Bold)
	if note.Variant == client.VariantDestructive {
		title = color.New(color.FgRed, color.Bold)
	}
	title.Fprint(n.out, note.Title)
	if note.Description != "" {
		_, _ = io.WriteString(n.out, " "+note.Description)
	}
	_, _ = io.WriteString(n.out, "\n")
}
