package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-secure-notes/internal/app"
	"github.com/MKhiriev/go-secure-notes/internal/client"
	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	listTimeLayout = "2006-01-02 15:04"
	showTimeLayout = "2006-01-02 15:04:05"
	untitled       = "(untitled)"
	contentHint    = "Enter the note content, finish with Ctrl-D:"
)

var writeClipboard = clipboard.WriteAll

func newAddCommand(env *commandEnv) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note",
		Long:  "Add a note. Without --content the body is read from stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.run(cmd, true, func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error {
				body := content
				if !cmd.Flags().Changed("content") {
					var err error
					if body, err = p.rest(contentHint); err != nil {
						return err
					}
				}

				note, err := c.Notes().AddNote(ctx, title, body)
				if err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "%s (id %d)", app.MsgNoteAdded, note.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Note title")
	cmd.Flags().StringVar(&content, "content", "", "Note content")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newListCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.run(cmd, true, func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error {
				listing, err := c.Notes().GetNotes(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(listing.Notes) == 0 && !listing.HasSkipped() {
					fmt.Fprintln(out, app.MsgNoNotes)
					return nil
				}

				for _, note := range listing.Notes {
					fmt.Fprintf(out, "%s  %s  %s\n",
						color.CyanString("%4d", note.ID),
						formatTime(note.UpdatedAt, listTimeLayout),
						displayTitle(note.Title))
				}

				if listing.HasSkipped() {
					warning(cmd.ErrOrStderr(), "%s (ids: %s)", app.MsgNotesSkipped, joinIDs(listing.SkippedIDs))
				}
				return nil
			})
		},
	}
}

func newShowCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			return env.run(cmd, true, func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error {
				note, err := c.Notes().GetNote(ctx, id)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, color.New(color.Bold).Sprint(displayTitle(note.Title)))
				fmt.Fprintf(out, "created %s, updated %s\n\n",
					formatTime(note.CreatedAt, showTimeLayout),
					formatTime(note.UpdatedAt, showTimeLayout))
				fmt.Fprintln(out, note.Content)
				return nil
			})
		},
	}
}

func newEditCommand(env *commandEnv) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change the title or content of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			titleChanged := cmd.Flags().Changed("title")
			contentChanged := cmd.Flags().Changed("content")
			if !titleChanged && !contentChanged {
				return errNothingToUpdate
			}

			return env.run(cmd, true, func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error {
				note, err := c.Notes().GetNote(ctx, id)
				if err != nil {
					return err
				}
				if titleChanged {
					note.Title = title
				}
				if contentChanged {
					note.Content = content
				}

				if err = c.Notes().UpdateNote(ctx, id, note.Title, note.Content); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), app.MsgNoteUpdated)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVar(&content, "content", "", "New content")

	return cmd
}

func newRemoveCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			return env.run(cmd, true, func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error {
				if err := c.Notes().DeleteNote(ctx, id); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), app.MsgNoteDeleted)
				return nil
			})
		},
	}
}

func newCopyCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "copy ID",
		Short: "Copy the content of a note to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			return env.run(cmd, true, func(ctx context.Context, cmd *cobra.Command, c client.Client, p *prompter) error {
				note, err := c.Notes().GetNote(ctx, id)
				if err != nil {
					return err
				}
				if err = writeClipboard(note.Content); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				success(cmd.OutOrStdout(), app.MsgNoteCopied)
				return nil
			})
		},
	}
}

func parseNoteID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidNoteID, arg)
	}
	return id, nil
}

func displayTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return untitled
	}
	return title
}

func formatTime(t time.Time, layout string) string {
	return t.Local().Format(layout)
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
