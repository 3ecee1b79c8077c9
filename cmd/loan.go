package cmd

import (
	"github.com/hance08/bankist/internal/service"
	"github.com/hance08/bankist/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type loanFlags struct {
	credentialFlags
	Amount string
}

type loanRunner struct {
	svc   *service.Service
	flags *loanFlags
}

func NewLoanCmd() *cobra.Command {
	flags := &loanFlags{}

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Request a loan",
		Long: `Request a loan. The amount is rounded down to whole units and is granted
only if one of your movements is at least 10% of it.`,
		Example: `  bankist loan -u js -p 1111 --amount 5000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &loanRunner{
				svc:   application.Service,
				flags: flags,
			}
			return runner.Run()
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount to borrow")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func (r *loanRunner) Run() error {
	requested, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return err
	}

	sess, err := r.flags.login(r.svc)
	if err != nil {
		return err
	}

	granted, err := r.svc.Transaction.RequestLoan(sess, requested)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Loan of %s granted", r.svc.Formatter.FormatCurrency(granted, sess.Locale, sess.Currency))

	return renderStatement(r.svc, sess)
}
