package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/MartinRain/sinope-130/internal/entries"
	"github.com/MartinRain/sinope-130/internal/flow"
	"github.com/MartinRain/sinope-130/internal/logging"
	"github.com/MartinRain/sinope-130/internal/ui"
	"github.com/MartinRain/sinope-130/internal/urls"
	"github.com/MartinRain/sinope-130/internal/wizard/tui"
)

// setupFlags are the non-interactive inputs of the setup command
type setupFlags struct {
	username    string
	usernameSet bool
	networks [3]string
}

func newSetupCmd(a *app) *cobra.Command {
	var f setupFlags

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Add a Neviweb account",
		Long: `Add a Neviweb account as a new neviweb130 config entry.

Without --username the interactive wizard asks for the e-mail, password and
optional network names. With --username the password is read from the
terminal (or the first line of stdin) and the result is printed.

Each account can only be configured once.`,
		Example: `  # Interactive wizard (also the default command)
  neviweb-cfg setup

  # Scripted setup with two networks
  echo "$NEVIWEB_PASSWORD" | neviweb-cfg setup --username jane@example.com \
      --network Home --network2 Cottage`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.usernameSet = cmd.Flags().Changed("username")
			return runSetup(a, cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.username, "username", "", "Neviweb account e-mail (skips the wizard)")
	cmd.Flags().StringVar(&f.networks[0], "network", "", "First network (location) name")
	cmd.Flags().StringVar(&f.networks[1], "network2", "", "Second network name")
	cmd.Flags().StringVar(&f.networks[2], "network3", "", "Third network name")
	return cmd
}

func runSetup(a *app, cmd *cobra.Command, f setupFlags) error {
	store, err := a.store()
	if err != nil {
		return err
	}
	wizard := flow.NewConfigFlow(a.validator(), store)

	if !f.usernameSet {
		if !a.interactive() {
			return errors.New("stdin is not a terminal; use --username for a non-interactive setup")
		}
		return runSetupWizard(cmd.Context(), a, store, wizard)
	}

	username := strings.TrimSpace(f.username)
	if username == "" {
		return errBlankUsername
	}
	password, err := ui.ReadPassword(a.stdin, a.stderr, "Password: ")
	if err != nil {
		return err
	}
	if err := requireCredentials(username, password); err != nil {
		return err
	}
	input := &flow.UserInput{
		Username: username,
		Password: password,
		Network:  f.networks[0],
		Network2: f.networks[1],
		Network3: f.networks[2],
	}

	runner := ui.NewRunner(ui.RunnerConfig{
		Title:   "Account setup",
		Command: "neviweb-cfg setup",
		Params: map[string]string{
			"Account":   logging.MaskAccount(input.Username),
			"Login URL": a.cfg.LoginURL,
		},
		Output:          a.stdout,
		Troubleshooting: setupTroubleshooting,
	})

	_, err = runner.Run(func(onStep ui.StepCallback) (map[string]string, error) {
		onStep("Checking credentials", ui.StepRunning, "")
		res := wizard.StepUser(cmd.Context(), input)

		switch res.Type {
		case flow.ResultAbort:
			onStep("Checking credentials", ui.StepFailed, res.Reason)
			return nil, fmt.Errorf("%s is already configured", input.Username)
		case flow.ResultForm:
			tag := res.Errors[flow.ErrorBase]
			onStep("Checking credentials", ui.StepFailed, tag)
			return nil, &setupError{tag: tag}
		}
		onStep("Checking credentials", ui.StepComplete, "accepted")

		onStep("Saving entry", ui.StepRunning, "")
		entry, err := saveEntry(store, wizard, res)
		if err != nil {
			onStep("Saving entry", ui.StepFailed, "")
			return nil, err
		}
		onStep("Saving entry", ui.StepComplete, "")
		return entryDetails(entry, store.Path()), nil
	})
	return err
}

func runSetupWizard(ctx context.Context, a *app, store *entries.Store, wizard *flow.ConfigFlow) error {
	if ctx == nil {
		ctx = context.Background()
	}

	final, err := tea.NewProgram(tui.NewSetupModel(ctx, wizard), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}

	model, ok := final.(tui.SetupModel)
	if !ok {
		return fmt.Errorf("wizard error: unexpected model %T", final)
	}
	res, done := model.Outcome()
	if !done {
		return errCancelled
	}

	if res.Type == flow.ResultAbort {
		_, _ = fmt.Fprintln(a.stdout, ui.NewWarningResult("Account already configured", map[string]string{
			"Account": wizard.UniqueID(),
			"Hint":    "use 'neviweb-cfg options' to change its settings",
		}).Render())
		return nil
	}

	entry, err := saveEntry(store, wizard, res)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(a.stdout, ui.NewSuccessResult("Account added", entryDetails(entry, store.Path())).Render())
	return nil
}

// saveEntry persists a create_entry result of the setup wizard.
func saveEntry(store *entries.Store, wizard *flow.ConfigFlow, res flow.Result) (*entries.Entry, error) {
	entry, err := store.Add(entries.Domain, wizard.UniqueID(), res.Title, res.Data)
	if err != nil {
		return nil, err
	}
	if err := store.Save(); err != nil {
		return nil, err
	}
	logging.LogEntryChange("created", entry.ID, entry.Title)
	return entry, nil
}

func entryDetails(e *entries.Entry, path string) map[string]string {
	return map[string]string{
		"Entry":   e.ID,
		"Account": e.Title,
		"Store":   path,
	}
}

// setupError is a rejected credential step
type setupError struct {
	tag string
}

func (e *setupError) Error() string {
	return tui.ErrorMessage(e.tag)
}

func setupTroubleshooting(err error) []string {
	var se *setupError
	if !errors.As(err, &se) {
		return nil
	}
	tips := []string{tui.ErrorHint(se.tag)}
	if se.tag == flow.ErrorCannotConnect {
		tips = append(tips, "Run 'neviweb-cfg validate' for the detailed error")
	}
	if se.tag == flow.ErrorInvalidAuth {
		tips = append(tips, "Integration docs: "+urls.IntegrationDocs)
	}
	return tips
}
