package cmd

import (
	"os"

	"github.com/hance08/bankist/internal/config"
	"github.com/hance08/bankist/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	config *config.Config
}

func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, store driver, and session settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				config: application.Config,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.config.ConfigPath
	configFound := false
	if configPath == "" {
		configPath = "(None, using defaults)"
	} else if _, err := os.Stat(configPath); err == nil {
		configFound = true
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		ConfigFound:     configFound,
		StoreDriver:     r.config.Store.Driver,
		StoreDSN:        r.config.Store.DSN,
		DefaultLocale:   r.config.Defaults.Locale,
		DefaultCurrency: r.config.Defaults.Currency,
		LogLevel:        r.config.Log.Level,
		IdleTimeout:     r.config.Session.IdleTimeout.String(),
	}

	return views.RenderSystemInfo(items)
}
