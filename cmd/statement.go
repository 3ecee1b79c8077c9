package cmd

import (
	"github.com/hance08/bankist/internal/service"
	"github.com/hance08/bankist/internal/ui/views"
	"github.com/spf13/cobra"
)

type statementFlags struct {
	credentialFlags
	Sort  bool
	Plain bool
}

type statementRunner struct {
	svc   *service.Service
	flags *statementFlags
}

func NewStatementCmd() *cobra.Command {
	flags := &statementFlags{}

	cmd := &cobra.Command{
		Use:     "statement",
		Aliases: []string{"st"},
		Short:   "Show balance, movements and summary of an account",
		Long: `Log in and print the account statement: current balance, the list of
movements (most recent first) and the in/out/interest summary.

With --sort the movements are ordered by amount, largest first.`,
		Example: `  bankist statement -u js -p 1111
  bankist statement -u jd -p 2222 --sort`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &statementRunner{
				svc:   application.Service,
				flags: flags,
			}
			return runner.Run()
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&flags.Sort, "sort", "s", false, "Sort movements by amount")
	cmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print without colours or tables")

	return cmd
}

func (r *statementRunner) Run() error {
	sess, err := r.flags.login(r.svc)
	if err != nil {
		return err
	}

	if r.flags.Sort {
		sess.ToggleSort()
	}

	if !r.flags.Plain {
		return renderStatement(r.svc, sess)
	}

	ov, err := r.svc.Overview(sess)
	if err != nil {
		return err
	}
	views.RenderStatement(ov)
	return nil
}
