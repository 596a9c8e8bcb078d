package prompts

import (
	"fmt"
	"strings"

	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/validation"
)

var menuOptions = []Option{
	{Label: "1. Check Balance", Value: constants.MenuBalance},
	{Label: "2. Withdraw Money", Value: constants.MenuWithdraw},
	{Label: "3. Deposit Money", Value: constants.MenuDeposit},
	{Label: "4. Exit", Value: constants.MenuExit},
}

// SessionPrompter reads session input from the terminal.
type SessionPrompter struct{}

func NewSessionPrompter() *SessionPrompter {
	return &SessionPrompter{}
}

func (p *SessionPrompter) Credentials() (string, string, error) {
	id, err := PromptInput("Enter account number:", validation.ValidateAccountID)
	if err != nil {
		return "", "", err
	}

	pin, err := PromptPassword("Enter PIN:", validation.ValidatePIN)
	if err != nil {
		return "", "", err
	}

	return strings.TrimSpace(id), pin, nil
}

func (p *SessionPrompter) MenuChoice() (string, error) {
	return PromptSelect("Enter your choice (1-4):", menuOptions, constants.MenuBalance)
}

// Amount returns the raw text; parsing is left to the session so that a
// non-integer is reported like any other failure.
func (p *SessionPrompter) Amount(action string) (string, error) {
	return PromptInput(fmt.Sprintf("Enter amount to %s:", action), nil)
}
