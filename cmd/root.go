package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/bankist/internal/app"
	"github.com/hance08/bankist/internal/config"
	"github.com/hance08/bankist/internal/errhandler"
	"github.com/hance08/bankist/internal/observability"
	"github.com/hance08/bankist/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile     string
	cfg         *config.Config
	application *app.App
	cleanup     func()
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd := NewRootCmd(migrations)
	err := rootCmd.Execute()

	if cleanup != nil {
		cleanup()
	}
	if application != nil {
		_ = application.Logger.Sync()
	}

	if err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

func NewRootCmd(migrations fs.FS) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bankist",
		Short: "bankist is a small in-memory bank you drive from the terminal",
		Long: `bankist is a small in-memory bank you drive from the terminal.

Every run starts from the same demo accounts. Log in with "bankist session"
to move money interactively, or use the one-shot commands to run a single
operation and print the resulting statement.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(migrations)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewSessionCmd())
	rootCmd.AddCommand(NewAccountsCmd())
	rootCmd.AddCommand(NewStatementCmd())
	rootCmd.AddCommand(NewTransferCmd())
	rootCmd.AddCommand(NewLoanCmd())
	rootCmd.AddCommand(NewCloseCmd())
	rootCmd.AddCommand(NewInfoCmd())

	return rootCmd
}

func setup(migrations fs.FS) error {
	if err := initConfig(); err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	application, cleanup, err = app.NewApp(cfg, migrations, logger)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		zap.String("config", cfg.ConfigPath),
		zap.String("driver", cfg.Store.Driver),
		zap.String("locale", cfg.Defaults.Locale),
	)
	return nil
}

func initConfig() error {
	for key, value := range config.Defaults() {
		viper.SetDefault(key, value)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("BANKIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	if err := validation.ValidateLocale(cfg.Defaults.Locale); err != nil {
		return fmt.Errorf("defaults.locale: %w", err)
	}
	if err := validation.ValidateCurrency(cfg.Defaults.Currency); err != nil {
		return fmt.Errorf("defaults.currency: %w", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".bankist"), nil
	}

	return filepath.Join(configDir, "bankist"), nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
