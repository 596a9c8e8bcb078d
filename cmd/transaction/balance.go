package transaction

import (
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type BalanceCommandRunner struct {
	svc   *service.Service
	flags *authFlags
}

func NewBalanceCmd(getSvc func() *service.Service) *cobra.Command {
	flags := &authFlags{}

	cmd := &cobra.Command{
		Use:     "balance",
		Short:   "Show the balance of an account",
		Example: `  atm balance --account 1234 --pin 5678`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &BalanceCommandRunner{
				svc:   getSvc(),
				flags: flags,
			}
			return runner.Run()
		},
	}
	flags.register(cmd)

	return cmd
}

func (r *BalanceCommandRunner) Run() error {
	acc, err := r.flags.login(r.svc)
	if err != nil {
		return err
	}

	balance, err := r.svc.Transaction.CheckBalance(acc.ID)
	if err != nil {
		return err
	}

	pterm.Info.Printf("Your current balance is: %s\n", utils.FormatAmount(r.svc.Config.Currency.Symbol, balance))
	return nil
}
