package cmd

import (
	"fmt"

	"github.com/hance08/bankist/internal/service"
	"github.com/hance08/bankist/internal/ui/views"
	"github.com/spf13/cobra"
)

type accountsRunner struct {
	svc *service.Service
}

func NewAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"ls"},
		Short:   "List the demo accounts with their balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &accountsRunner{
				svc: application.Service,
			}
			return runner.Run()
		},
	}
}

func (r *accountsRunner) Run() error {
	accounts, err := r.svc.Account.GetAllAccounts()
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	return views.NewAccountListView(r.svc.Formatter).Render(accounts)
}
