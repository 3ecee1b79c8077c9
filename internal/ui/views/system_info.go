package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath      string
	ConfigFound     bool
	StoreDriver     string
	StoreDSN        string
	DefaultLocale   string
	DefaultCurrency string
	LogLevel        string
	IdleTimeout     string
}

func RenderSystemInfo(data SystemInfoItem) error {
	configStatus := pterm.Green("Found")
	if !data.ConfigFound {
		configStatus = pterm.Red("Not Found (Defaults in use)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Configuration Status", configStatus},
		{"Store Driver", data.StoreDriver},
		{"Store DSN", data.StoreDSN},
		{"Default Locale", data.DefaultLocale},
		{"Default Currency", data.DefaultCurrency},
		{"Log Level", data.LogLevel},
		{"Session Idle Timeout", data.IdleTimeout},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
