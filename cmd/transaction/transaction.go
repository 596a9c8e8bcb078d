// Package transaction holds one-shot commands that log in with flags, run a
// single operation and exit. Balances reset with every process.
package transaction

import (
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/store"
	"github.com/hance08/atm/internal/utils"
	"github.com/spf13/cobra"
)

type authFlags struct {
	Account string
	PIN     string
}

func (f *authFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Account, "account", "a", "", "Account number")
	cmd.Flags().StringVarP(&f.PIN, "pin", "p", "", "Account PIN")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("pin")
}

func (f *authFlags) login(svc *service.Service) (*store.Account, error) {
	return svc.Account.Authenticate(f.Account, f.PIN)
}

func parseAmountArg(args []string) (int64, error) {
	amount, err := utils.ParseAmount(args[0])
	if err != nil {
		return 0, utils.ErrParse
	}
	return amount, nil
}
