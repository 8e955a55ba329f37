package flow

import (
	"context"

	"go.uber.org/zap"

	"github.com/MartinRain/sinope-130/internal/entries"
	"github.com/MartinRain/sinope-130/internal/logging"
	"github.com/MartinRain/sinope-130/internal/neviweb"
	"github.com/MartinRain/sinope-130/internal/settings"
)

// Version is the entry schema version produced by the setup wizard.
const Version = entries.FlowVersion

// Validator checks credentials. *neviweb.Validator satisfies it.
type Validator interface {
	Validate(ctx context.Context, username, password string) neviweb.Result
}

// Registry answers whether an account is already configured.
// *entries.Store satisfies it.
type Registry interface {
	HasUniqueID(domain, uniqueID string) bool
}

// UserInput is a submission of the credential step.
type UserInput struct {
	Username string
	Password string
	Network  string
	Network2 string
	Network3 string
}

// Data returns the submission as entry data. Network identifiers are only
// included when provided.
func (in UserInput) Data() map[string]any {
	data := map[string]any{
		settings.KeyUsername: in.Username,
		settings.KeyPassword: in.Password,
	}
	for key, value := range map[string]string{
		settings.KeyNetwork:  in.Network,
		settings.KeyNetwork2: in.Network2,
		settings.KeyNetwork3: in.Network3,
	} {
		if value != "" {
			data[key] = value
		}
	}
	return data
}

// ConfigFlow is the first-time setup wizard.
type ConfigFlow struct {
	validator Validator
	registry  Registry
	uniqueID  string
}

// NewConfigFlow creates a setup wizard.
func NewConfigFlow(validator Validator, registry Registry) *ConfigFlow {
	return &ConfigFlow{validator: validator, registry: registry}
}

// UniqueID returns the unique ID claimed by the last submission.
func (f *ConfigFlow) UniqueID() string {
	return f.uniqueID
}

// StepUser handles the credential step.
func (f *ConfigFlow) StepUser(ctx context.Context, input *UserInput) Result {
	if input == nil {
		logging.LogFlowStep("config", StepUser, "show_form")
		return showForm(StepUser, UserSchema(), nil)
	}

	f.uniqueID = input.Username
	if f.registry != nil && f.registry.HasUniqueID(entries.Domain, f.uniqueID) {
		logging.LogFlowStep("config", StepUser, "abort",
			zap.String("reason", AbortAlreadyConfigured),
			zap.String("account", logging.MaskAccount(input.Username)))
		return abort(AbortAlreadyConfigured)
	}

	result := f.validator.Validate(ctx, input.Username, input.Password)
	if result == neviweb.Accepted {
		logging.LogFlowStep("config", StepUser, "create_entry",
			zap.String("account", logging.MaskAccount(input.Username)))
		return createEntry(input.Username, input.Data())
	}

	logging.LogFlowStep("config", StepUser, "show_form", zap.String("error", result.ErrorKey()))
	form := showForm(StepUser, UserSchema(), map[string]string{ErrorBase: result.ErrorKey()})
	form.Suggested = map[string]string{
		settings.KeyUsername: input.Username,
		settings.KeyNetwork:  input.Network,
		settings.KeyNetwork2: input.Network2,
		settings.KeyNetwork3: input.Network3,
	}
	return form
}
