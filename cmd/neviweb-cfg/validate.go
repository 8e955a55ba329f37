package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MartinRain/sinope-130/internal/logging"
	"github.com/MartinRain/sinope-130/internal/neviweb"
	"github.com/MartinRain/sinope-130/internal/settings"
	"github.com/MartinRain/sinope-130/internal/ui"
)

// validation is the structured output of the validate command
type validation struct {
	Account  string `json:"account" yaml:"account"`
	LoginURL string `json:"login_url" yaml:"login_url"`
	Result   string `json:"result" yaml:"result"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// loginFailure shows the short form of a login error
type loginFailure struct {
	err error
}

func (e *loginFailure) Error() string { return neviweb.ShortMessage(e.err) }
func (e *loginFailure) Unwrap() error { return e.err }

func newValidateCmd(a *app) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "validate [entry]",
		Short: "Check Neviweb credentials without saving anything",
		Long: `Send one login request to Neviweb and report the outcome.

With an entry reference the stored credentials of that entry are checked.
Otherwise --username is required and the password is read from the terminal
(or the first line of stdin).`,
		Example: `  neviweb-cfg validate --username jane@example.com
  neviweb-cfg validate jane@example.com --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, password, err := validateCredentials(a, args, username)
			if err != nil {
				return err
			}
			return runValidate(cmd.Context(), a, user, password)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Neviweb account e-mail")
	return cmd
}

func validateCredentials(a *app, args []string, username string) (string, string, error) {
	if len(args) == 0 {
		if username == "" {
			return "", "", fmt.Errorf("either an entry or --username is required")
		}
		username = strings.TrimSpace(username)
		if username == "" {
			return "", "", errBlankUsername
		}
		password, err := ui.ReadPassword(a.stdin, a.stderr, "Password: ")
		if err != nil {
			return "", "", err
		}
		if err := requireCredentials(username, password); err != nil {
			return "", "", err
		}
		return username, password, nil
	}

	store, err := a.store()
	if err != nil {
		return "", "", err
	}
	e, err := resolveEntry(store, args)
	if err != nil {
		return "", "", err
	}
	user, _ := e.Data[settings.KeyUsername].(string)
	password, _ := e.Data[settings.KeyPassword].(string)
	if user == "" {
		return "", "", fmt.Errorf("entry %s has no stored username", e.ID)
	}
	return user, password, nil
}

func runValidate(ctx context.Context, a *app, username, password string) error {
	validator := a.validator()

	if a.format != formatDetailed {
		out := validation{Account: username, LoginURL: validator.LoginURL}
		err := validator.Login(ctx, username, password)
		out.Result = neviweb.Classify(err).String()
		if err != nil {
			out.Error = neviweb.ShortMessage(err)
		}
		if werr := writeStructured(a.stdout, a.format, out); werr != nil {
			return werr
		}
		if err != nil {
			return &loginFailure{err: err}
		}
		return nil
	}

	runner := ui.NewRunner(ui.RunnerConfig{
		Title:   "Credential check",
		Command: "neviweb-cfg validate",
		Params: map[string]string{
			"Account":   logging.MaskAccount(username),
			"Login URL": validator.LoginURL,
		},
		Output:          a.stdout,
		Troubleshooting: loginTroubleshooting,
	})

	_, err := runner.Run(func(onStep ui.StepCallback) (map[string]string, error) {
		onStep("Contacting Neviweb", ui.StepRunning, "")
		if err := validator.Login(ctx, username, password); err != nil {
			onStep("Contacting Neviweb", ui.StepFailed, neviweb.Classify(err).ErrorKey())
			return nil, &loginFailure{err: err}
		}
		onStep("Contacting Neviweb", ui.StepComplete, "accepted")
		return map[string]string{"Result": neviweb.Accepted.String()}, nil
	})
	return err
}

// loginTroubleshooting turns the multi-line hint of a login error into
// bullet items.
func loginTroubleshooting(err error) []string {
	var tips []string
	for _, line := range strings.Split(neviweb.TroubleshootingHint(err), "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "•"))
		if line == "" || line == "Troubleshooting:" {
			continue
		}
		tips = append(tips, line)
	}
	return tips
}
