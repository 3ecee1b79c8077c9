package cmd

import (
	"github.com/hance08/bankist/internal/service"
	"github.com/hance08/bankist/internal/ui/prompts"
	"github.com/hance08/bankist/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type closeFlags struct {
	credentialFlags
	Yes bool
}

type closeRunner struct {
	svc   *service.Service
	flags *closeFlags
}

func NewCloseCmd() *cobra.Command {
	flags := &closeFlags{}

	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close an account",
		Long: `Close (delete) an account. The username and PIN given are both the login
and the confirmation of the closure.`,
		Example: `  bankist close -u jd -p 2222 --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &closeRunner{
				svc:   application.Service,
				flags: flags,
			}
			return runner.Run()
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}

func (r *closeRunner) Run() error {
	sess, err := r.flags.login(r.svc)
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		confirm, err := prompts.PromptCloseConfirm(sess.Owner)
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Closure cancelled")
			return nil
		}
	}

	if err := r.svc.Transaction.CloseAccount(sess, r.flags.User, r.flags.PIN); err != nil {
		return err
	}

	pterm.Success.Printfln("Account %s closed", r.flags.User)

	accounts, err := r.svc.Account.GetAllAccounts()
	if err != nil {
		return err
	}
	return views.NewAccountListView(r.svc.Formatter).Render(accounts)
}
