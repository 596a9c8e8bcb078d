package views

import (
	"github.com/hance08/atm/internal/store"
	"github.com/hance08/atm/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct {
	symbol string
}

func NewAccountListView(symbol string) *AccountListView {
	return &AccountListView{symbol: symbol}
}

// Render prints identifiers and balances. PINs are never shown.
func (v *AccountListView) Render(accounts []*store.Account) error {
	tableData := pterm.TableData{{"Account", "Balance"}}

	for _, acc := range accounts {
		balance := utils.FormatAmount(v.symbol, acc.Balance)
		if acc.Balance == 0 {
			balance = pterm.Gray(balance)
		} else {
			balance = pterm.Green(balance)
		}
		tableData = append(tableData, []string{acc.ID, balance})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
