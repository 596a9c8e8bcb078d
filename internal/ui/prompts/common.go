package prompts

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/atm/internal/ui"
)

// PromptInput prompts for a generic text input with an optional validator
func PromptInput(message string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return inputVal, err
}

// PromptPassword prompts for a masked secret
func PromptPassword(message string, validator survey.Validator) (string, error) {
	var secret string

	opts := []survey.AskOpt{ui.IconOption()}
	if validator != nil {
		opts = append(opts, survey.WithValidator(validator))
	}

	err := survey.AskOne(&survey.Password{Message: message}, &secret, opts...)
	return secret, err
}

// Option is a labelled choice for PromptSelect
type Option struct {
	Label string
	Value string
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []Option, defaultValue string) (string, error) {
	selected := defaultValue

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}
