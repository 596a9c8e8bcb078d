package transaction

import (
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/ui/views"
	"github.com/spf13/cobra"
)

type WithdrawCommandRunner struct {
	svc   *service.Service
	flags *authFlags
}

func NewWithdrawCmd(getSvc func() *service.Service) *cobra.Command {
	flags := &authFlags{}

	cmd := &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Withdraw cash and show the notes dispensed",
		Long: `Withdraw cash from an account.

The amount must be a positive multiple of the smallest denomination.
Notes are paid out from the largest denomination down.`,
		Example: `  atm withdraw --account 1234 --pin 5678 800`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &WithdrawCommandRunner{
				svc:   getSvc(),
				flags: flags,
			}
			return runner.Run(args)
		},
	}
	flags.register(cmd)

	return cmd
}

func (r *WithdrawCommandRunner) Run(args []string) error {
	amount, err := parseAmountArg(args)
	if err != nil {
		return err
	}

	acc, err := r.flags.login(r.svc)
	if err != nil {
		return err
	}

	receipt, err := r.svc.Transaction.Withdraw(acc.ID, amount)
	if err != nil {
		return err
	}

	views.RenderWithdrawal(r.svc.Config.Currency.Symbol, receipt)
	return nil
}
