package views

import (
	"fmt"

	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/ui"
	"github.com/hance08/atm/internal/utils"
	"github.com/pterm/pterm"
)

// SessionView prints session results to the terminal.
type SessionView struct {
	symbol string
}

func NewSessionView(symbol string) *SessionView {
	return &SessionView{symbol: symbol}
}

func (v *SessionView) Welcome() {
	ui.PrintL1Title(constants.WelcomeMessage)
}

func (v *SessionView) LoginFailed(err error) {
	pterm.Error.Println(utils.Capitalize(err.Error()))
}

func (v *SessionView) Balance(balance int64) {
	pterm.Info.Printf("Your current balance is: %s\n", utils.FormatAmount(v.symbol, balance))
}

func (v *SessionView) Withdrawal(receipt *service.WithdrawReceipt) {
	RenderWithdrawal(v.symbol, receipt)
}

func (v *SessionView) Deposit(receipt *service.DepositReceipt) {
	RenderDeposit(v.symbol, receipt)
}

func (v *SessionView) Failure(err error) {
	pterm.Error.Println(utils.Capitalize(err.Error()))
}

func (v *SessionView) InvalidChoice(choice string) {
	pterm.Warning.Printf("Invalid choice %q. Please try again.\n", choice)
}

func (v *SessionView) Goodbye() {
	pterm.Success.Println(constants.GoodbyeMessage)
}

// BreakdownLines formats each dispensed denomination as "<symbol><note> x <count>".
func BreakdownLines(symbol string, breakdown service.Breakdown) []string {
	lines := make([]string, 0, len(breakdown))
	for _, d := range breakdown {
		lines = append(lines, fmt.Sprintf("%s x %d", utils.FormatAmount(symbol, d.Denomination), d.Count))
	}
	return lines
}

func RenderWithdrawal(symbol string, receipt *service.WithdrawReceipt) {
	pterm.Success.Println("Withdrawal successful")

	ui.PrintL2Title("Denominations dispensed")
	for _, line := range BreakdownLines(symbol, receipt.Breakdown) {
		pterm.Println("  " + line)
	}

	pterm.Info.Printf("Remaining balance: %s\n", utils.FormatAmount(symbol, receipt.Balance))
}

func RenderDeposit(symbol string, receipt *service.DepositReceipt) {
	pterm.Success.Println("Deposit successful")
	pterm.Info.Printf("New balance: %s\n", utils.FormatAmount(symbol, receipt.Balance))
}
