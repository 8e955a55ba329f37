// Package tui implements the interactive forms of the neviweb130
// configuration wizard.
//
// Built with Bubble Tea, each screen follows the Model-Update-View pattern.
// The models only render what internal/flow returns and feed submissions
// back into it; all decisions (duplicate detection, credential checks,
// option defaults) stay in the flow.
//
// # Screens
//
//   - SetupModel: the credential form. Submitting runs ConfigFlow.StepUser
//     inside a tea.Cmd with a spinner; inputs are locked until it returns.
//     Errors such as invalid_auth re-show the form with a banner.
//   - OptionsModel: the options form, pre-filled from OptionsFlow.StepInit.
//     Flags toggle, notify cycles through its choices, intervals and
//     networks are edited as text. The submission is checked with
//     settings.Parse before it reaches the flow.
//
// Both models quit the program once the flow returns create_entry or abort.
// The caller reads the outcome with Outcome() and persists it.
//
// # Usage Example
//
//	model := tui.NewSetupModel(ctx, flow.NewConfigFlow(validator, store))
//	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
//	if err != nil {
//	    return err
//	}
//	result, ok := final.(tui.SetupModel).Outcome()
package tui
