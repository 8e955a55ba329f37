package flow

import (
	"github.com/MartinRain/sinope-130/internal/entries"
	"github.com/MartinRain/sinope-130/internal/logging"
	"github.com/MartinRain/sinope-130/internal/settings"
)

// OptionsFlow adjusts the settings of an existing entry.
type OptionsFlow struct {
	entry entries.Snapshot
}

// NewOptionsFlow creates the options wizard for entry.
func NewOptionsFlow(entry entries.Snapshot) *OptionsFlow {
	return &OptionsFlow{entry: entry}
}

// EntryID returns the ID of the entry being adjusted.
func (f *OptionsFlow) EntryID() string {
	return f.entry.ID
}

// Current returns the settings the form is pre-filled with: the entry's
// options over its data, over the defaults.
func (f *OptionsFlow) Current() settings.Settings {
	return settings.Merge(settings.Stored(f.entry.Data, f.entry.Options), nil)
}

// StepInit handles the options step. A submission replaces every option.
func (f *OptionsFlow) StepInit(input *settings.Settings) Result {
	if input == nil {
		logging.LogFlowStep("options", StepInit, "show_form")
		return showForm(StepInit, OptionsSchema(f.Current()), nil)
	}

	logging.LogFlowStep("options", StepInit, "create_entry")
	final := settings.Merge(nil, input)
	return createEntry(OptionsTitle, final.ToMap())
}
