package transaction

import (
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/ui/views"
	"github.com/spf13/cobra"
)

type DepositCommandRunner struct {
	svc   *service.Service
	flags *authFlags
}

func NewDepositCmd(getSvc func() *service.Service) *cobra.Command {
	flags := &authFlags{}

	cmd := &cobra.Command{
		Use:     "deposit <amount>",
		Short:   "Deposit cash into an account",
		Example: `  atm deposit --account 1234 --pin 5678 500`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &DepositCommandRunner{
				svc:   getSvc(),
				flags: flags,
			}
			return runner.Run(args)
		},
	}
	flags.register(cmd)

	return cmd
}

func (r *DepositCommandRunner) Run(args []string) error {
	amount, err := parseAmountArg(args)
	if err != nil {
		return err
	}

	acc, err := r.flags.login(r.svc)
	if err != nil {
		return err
	}

	receipt, err := r.svc.Transaction.Deposit(acc.ID, amount)
	if err != nil {
		return err
	}

	views.RenderDeposit(r.svc.Config.Currency.Symbol, receipt)
	return nil
}
