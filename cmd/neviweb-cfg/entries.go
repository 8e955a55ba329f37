package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MartinRain/sinope-130/internal/entries"
	"github.com/MartinRain/sinope-130/internal/logging"
	"github.com/MartinRain/sinope-130/internal/ui"
)

// resolveEntry finds the entry named by args, or the only entry when no
// reference is given.
func resolveEntry(store *entries.Store, args []string) (*entries.Entry, error) {
	if len(args) > 0 {
		e, err := store.Get(args[0])
		if err != nil {
			return nil, fmt.Errorf("%q: %w", args[0], err)
		}
		return e, nil
	}

	all := store.List()
	switch len(all) {
	case 0:
		return nil, errors.New("no entries configured; run 'neviweb-cfg setup' first")
	case 1:
		return all[0], nil
	default:
		titles := make([]string, len(all))
		for i, e := range all {
			titles[i] = e.Title
		}
		return nil, fmt.Errorf("%d entries configured, name one of: %s", len(all), strings.Join(titles, ", "))
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured accounts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			all := store.List()

			if a.format != formatDetailed {
				views := make([]entryView, len(all))
				for i, e := range all {
					views[i] = newEntryView(e)
				}
				return writeStructured(a.stdout, a.format, views)
			}

			if len(all) == 0 {
				_, _ = fmt.Fprintln(a.stdout, "No entries configured.")
				_, _ = fmt.Fprintln(a.stdout, "Use 'neviweb-cfg setup' to add a Neviweb account")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(ui.MutedColor)).
				Headers("ID", "ACCOUNT", "NETWORKS", "CREATED")
			for _, e := range all {
				view := newEntryView(e)
				var networks []string
				for _, n := range view.Effective.Networks() {
					if n != "" {
						networks = append(networks, n)
					}
				}
				t.Row(shortID(e.ID), e.Title, strings.Join(networks, ", "), e.CreatedAt.Format("2006-01-02"))
			}
			_, _ = fmt.Fprintln(a.stdout, t.Render())
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [entry]",
		Short: "Show an entry and its effective options",
		Long: `Show a config entry. The entry may be named by its ID, an ID prefix,
or the account e-mail; it can be omitted when only one entry exists.

The password is never printed.`,
		Example: `  neviweb-cfg show jane@example.com
  neviweb-cfg show 3f2a --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			e, err := resolveEntry(store, args)
			if err != nil {
				return err
			}

			view := newEntryView(e)
			if a.format != formatDetailed {
				return writeStructured(a.stdout, a.format, view)
			}
			_, _ = fmt.Fprint(a.stdout, formatDetailedEntry(view))
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <entry>",
		Aliases: []string{"rm"},
		Short:   "Remove a configured account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			e, err := resolveEntry(store, args)
			if err != nil {
				return err
			}

			if !yes && !ui.ConfirmRemoval(a.stdin, a.stderr, e.Title) {
				return errCancelled
			}

			if err := store.Remove(e.ID); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return err
			}
			logging.LogEntryChange("removed", e.ID, e.Title)

			_, _ = fmt.Fprintf(a.stdout, "Removed %s (%s)\n", e.Title, e.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
