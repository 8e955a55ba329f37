package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/MartinRain/sinope-130/internal/entries"
	"github.com/MartinRain/sinope-130/internal/flow"
	"github.com/MartinRain/sinope-130/internal/logging"
	"github.com/MartinRain/sinope-130/internal/settings"
	"github.com/MartinRain/sinope-130/internal/ui"
	"github.com/MartinRain/sinope-130/internal/wizard/tui"
)

func newOptionsCmd(a *app) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "options [entry]",
		Short: "Change the options of an entry",
		Long: `Change the polling, notification and network options of an entry.

Without --set an interactive form opens, pre-filled with the current values.
With --set the named keys are changed and every other option keeps its
current value. Saving replaces the entry's options as a whole.

Keys: scan_interval, stat_interval (seconds), homekit_mode, ignore_miwi
(true/false), notify (both, logging, nothing, notification), network,
network2, network3.`,
		Example: `  neviweb-cfg options
  neviweb-cfg options jane@example.com --set scan_interval=300 --set notify=both`,
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
			options := flow.NewOptionsFlow(e.Snapshot())

			var res flow.Result
			if len(sets) > 0 {
				res, err = applySets(options, sets)
			} else {
				if !a.interactive() {
					return errors.New("stdin is not a terminal; use --set key=value")
				}
				res, err = runOptionsForm(options)
			}
			if err != nil {
				return err
			}

			before := options.Current()
			updated, err := saveOptions(store, e.ID, res)
			if err != nil {
				return err
			}
			changes := settings.Diff(before, settings.Merge(updated.Options, nil))

			if a.format != formatDetailed {
				return writeStructured(a.stdout, a.format, newEntryView(updated))
			}
			_, _ = fmt.Fprintln(a.stdout, ui.NewSuccessResult("Options saved", map[string]string{
				"Entry":   updated.ID,
				"Account": updated.Title,
				"Changed": fmt.Sprintf("%d option(s)", len(changes)),
			}).Render())
			_, _ = fmt.Fprint(a.stdout, settings.FormatDiff(changes))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set an option (key=value); repeatable")
	return cmd
}

// applySets applies key=value pairs over the current options and submits
// the result.
func applySets(options *flow.OptionsFlow, sets []string) (flow.Result, error) {
	values := options.Current().FormValues()
	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return flow.Result{}, fmt.Errorf("invalid --set %q: want key=value", kv)
		}
		if _, known := values[key]; !known {
			return flow.Result{}, fmt.Errorf("invalid --set %q: unknown option %q", kv, key)
		}
		values[key] = value
	}

	parsed, err := settings.Parse(values)
	if err != nil {
		return flow.Result{}, err
	}
	return options.StepInit(&parsed), nil
}

func runOptionsForm(options *flow.OptionsFlow) (flow.Result, error) {
	final, err := tea.NewProgram(tui.NewOptionsModel(options), tea.WithAltScreen()).Run()
	if err != nil {
		return flow.Result{}, fmt.Errorf("wizard error: %w", err)
	}
	model, ok := final.(tui.OptionsModel)
	if !ok {
		return flow.Result{}, fmt.Errorf("wizard error: unexpected model %T", final)
	}
	res, done := model.Outcome()
	if !done {
		return flow.Result{}, errCancelled
	}
	return res, nil
}

// saveOptions stores a create_entry result of the options wizard as the
// entry's new options.
func saveOptions(store *entries.Store, entryID string, res flow.Result) (*entries.Entry, error) {
	if res.Type != flow.ResultCreateEntry {
		return nil, fmt.Errorf("options wizard ended with %s", res.Type)
	}
	updated, err := store.UpdateOptions(entryID, res.Data)
	if err != nil {
		return nil, err
	}
	if err := store.Save(); err != nil {
		return nil, err
	}
	logging.LogEntryChange("options updated", updated.ID, updated.Title)
	return updated, nil
}
