/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package account

import (
	"fmt"

	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/ui/views"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	svc *service.Service
}

func NewListCmd(getSvc func() *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		Long:  `List the seeded accounts with their current balances. PINs are not shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc: getSvc(),
			}
			return runner.Run()
		},
	}
}

func (r *ListCommandRunner) Run() error {
	accounts, err := r.svc.Account.ListAccounts()
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	return views.NewAccountListView(r.svc.Config.Currency.Symbol).Render(accounts)
}
