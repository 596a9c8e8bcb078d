package account

import (
	"github.com/hance08/atm/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(getSvc func() *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect the seeded accounts.",
		Long:  `Inspect the accounts the simulator was seeded with.`,
	}

	accountCmd.AddCommand(NewListCmd(getSvc))

	return accountCmd
}
