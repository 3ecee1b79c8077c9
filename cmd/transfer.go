package cmd

import (
	"github.com/hance08/bankist/internal/service"
	"github.com/hance08/bankist/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type transferFlags struct {
	credentialFlags
	To     string
	Amount string
}

type transferRunner struct {
	svc   *service.Service
	flags *transferFlags
}

func NewTransferCmd() *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:     "transfer",
		Aliases: []string{"tf"},
		Short:   "Transfer money to another account",
		Long: `Move money from your account to another one.

The transfer is refused when the amount is not positive, the receiver does
not exist, your balance is too low, or the receiver is yourself.`,
		Example: `  bankist transfer -u js -p 1111 --to jd --amount 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &transferRunner{
				svc:   application.Service,
				flags: flags,
			}
			return runner.Run()
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.To, "to", "t", "", "Username of the receiving account")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount to transfer")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func (r *transferRunner) Run() error {
	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return err
	}

	sess, err := r.flags.login(r.svc)
	if err != nil {
		return err
	}

	if err := r.svc.Transaction.Transfer(sess, r.flags.To, amount); err != nil {
		return err
	}

	formatted := r.svc.Formatter.FormatCurrency(amount, sess.Locale, sess.Currency)
	pterm.Success.Printfln("Transferred %s to %s", formatted, r.flags.To)

	return renderStatement(r.svc, sess)
}
