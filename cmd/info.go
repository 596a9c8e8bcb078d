package cmd

import (
	"strconv"

	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(getSvc func() *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, store driver, denominations and seeded accounts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: getSvc(),
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.svc.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	var denominations []string
	for _, d := range r.svc.Transaction.Denominations().Values() {
		denominations = append(denominations, strconv.FormatInt(d, 10))
	}

	accounts, err := r.svc.Account.ListAccounts()
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:     configPath,
		StoreDriver:    cfg.Store.Driver,
		CurrencySymbol: cfg.Currency.Symbol,
		Denominations:  denominations,
		Accounts:       len(accounts),
		LogLevel:       cfg.Logging.Level,
		AppDataDir:     appDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := config.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
