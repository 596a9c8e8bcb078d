package cmd

import (
	"io/fs"

	"github.com/hance08/atm/cmd/account"
	"github.com/hance08/atm/cmd/transaction"
	"github.com/hance08/atm/internal/app"
	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/errhandler"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootState struct {
	cfgFile string
	v       *viper.Viper
	app     *app.App
	cleanup func()
}

func (s *rootState) service() *service.Service {
	return s.app.Service
}

func (s *rootState) close() {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

func Execute(migrations fs.FS) {
	ui.ConfigurePrefixes()

	state := &rootState{v: viper.New()}
	err := newRootCmd(state, migrations).Execute()
	state.close()

	if err != nil {
		errhandler.HandleError(err)
	}
}

func newRootCmd(state *rootState, migrations fs.FS) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "atm",
		Short: "atm is a CLI based ATM simulator",
		Long: `atm is a CLI based ATM simulator.

Run it without a sub-command to log in and use the interactive menu
(check balance, withdraw, deposit). Withdrawals are paid out greedily
from the largest denomination down.

Accounts live in memory for the lifetime of the process only.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.init(migrations)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sessionRunner{svc: state.service()}
			return runner.Run()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&state.cfgFile, "config", "c", "", "set the config file path")
	flags.String("store", "", "account store driver (memory, sqlite)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error, disabled)")
	_ = state.v.BindPFlag("store.driver", flags.Lookup("store"))
	_ = state.v.BindPFlag("logging.level", flags.Lookup("log-level"))

	rootCmd.AddCommand(account.NewAccountCmd(state.service))
	rootCmd.AddCommand(transaction.NewBalanceCmd(state.service))
	rootCmd.AddCommand(transaction.NewWithdrawCmd(state.service))
	rootCmd.AddCommand(transaction.NewDepositCmd(state.service))
	rootCmd.AddCommand(NewInfoCmd(state.service))

	return rootCmd
}

func (s *rootState) init(migrations fs.FS) error {
	cfg, err := config.Load(s.v, s.cfgFile)
	if err != nil {
		return err
	}

	application, cleanup, err := app.NewApp(cfg, migrations, nil)
	if err != nil {
		return err
	}

	s.app = application
	s.cleanup = cleanup
	return nil
}
