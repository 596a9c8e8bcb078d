package views

import (
	"strings"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath     string
	StoreDriver    string
	CurrencySymbol string
	Denominations  []string
	Accounts       int
	LogLevel       string
	AppDataDir     string
}

func RenderSystemInfo(data SystemInfoItem) error {
	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Store Driver", data.StoreDriver},
		{"Currency Symbol", data.CurrencySymbol},
		{"Denominations", strings.Join(data.Denominations, ", ")},
		{"Seeded Accounts", pterm.Sprint(data.Accounts)},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
