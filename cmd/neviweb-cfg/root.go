package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MartinRain/sinope-130/internal/version"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "neviweb-cfg",
		Short: "Neviweb130 configuration utility",
		Long: `Set up and maintain neviweb130 config entries.

Checks Neviweb account credentials, stores the resulting entry and edits its
polling and notification options.

If no command is specified, the interactive setup wizard will launch.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(a, cmd, setupFlags{})
		},
	}

	// Disable automatic completion command generation
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default: "+configName+".yaml in the config directory)")
	flags.String("login-url", "", "Neviweb login endpoint")
	flags.Duration("timeout", defaultTimeout, "Timeout of the login request")
	flags.String("entries-file", "", "Entry store (default: entries.yaml in the config directory)")
	flags.String("log-level", "", "Log level (debug, info, warn, error); silent when empty")
	flags.StringVar(&a.format, "format", formatDetailed, "Output format (detailed, json, yaml)")

	if err := bindFlags(a.v, flags); err != nil {
		// flags are declared above; a failure here is a programming error
		panic(err)
	}

	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(
		newSetupCmd(a),
		newValidateCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newOptionsCmd(a),
		newRemoveCmd(a),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit: %s)\n", version.Product, version.Version, version.Commit)
		},
	}
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
