package cmd

import (
	"time"

	"github.com/hance08/bankist/internal/service"
	"github.com/hance08/bankist/internal/ui"
	"github.com/hance08/bankist/internal/ui/prompts"
	"github.com/hance08/bankist/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const maxLoginAttempts = 3

type sessionRunner struct {
	svc         *service.Service
	logger      *zap.Logger
	idleTimeout time.Duration
	clock       service.Clock
}

func NewSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "session",
		Aliases: []string{"login"},
		Short:   "Log in and operate on your account interactively",
		Long: `Log in with a username and PIN, then transfer money, request loans, sort
your movements or close the account from a menu.

The session logs out after the configured idle time (session.idle_timeout).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sessionRunner{
				svc:         application.Service,
				logger:      application.Logger,
				idleTimeout: application.Config.Session.IdleTimeout,
				clock:       time.Now,
			}
			return runner.Run()
		},
	}
}

func (r *sessionRunner) Run() error {
	sess, err := r.login()
	if err != nil || sess == nil {
		return err
	}
	defer r.logout(sess)

	for sess.Active() {
		if err := renderStatement(r.svc, sess); err != nil {
			return err
		}

		action, err := prompts.PromptAction(sess.Sorted)
		if err != nil {
			return err
		}

		if sess.Expired(r.clock(), r.idleTimeout) {
			pterm.Warning.Printfln("Logged out after %s of inactivity", r.idleTimeout)
			return nil
		}
		sess.Touch(r.clock())

		ui.Separator()
		if err := r.dispatch(sess, action); err != nil {
			return err
		}
	}

	return nil
}

func (r *sessionRunner) login() (*service.Session, error) {
	ui.PrintL1Title("bankist")
	pterm.Info.Println("Log in to get started")

	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		creds, err := prompts.PromptCredentials("Login")
		if err != nil {
			return nil, err
		}

		sess, err := r.svc.Account.Login(creds.Username, creds.PIN)
		if err == nil {
			return sess, nil
		}
		if err := warnRejection(err); err != nil {
			return nil, err
		}
	}

	pterm.Error.Println("Too many failed login attempts")
	return nil, nil
}

func (r *sessionRunner) dispatch(sess *service.Session, action string) error {
	switch action {
	case prompts.ActionTransfer:
		to, amount, err := prompts.PromptTransfer()
		if err != nil {
			return err
		}
		if err := r.svc.Transaction.Transfer(sess, to, amount); err != nil {
			return warnRejection(err)
		}
		pterm.Success.Printfln("Transferred %s to %s",
			r.svc.Formatter.FormatCurrency(amount, sess.Locale, sess.Currency), to)

	case prompts.ActionLoan:
		requested, err := prompts.PromptLoan()
		if err != nil {
			return err
		}
		granted, err := r.svc.Transaction.RequestLoan(sess, requested)
		if err != nil {
			return warnRejection(err)
		}
		pterm.Success.Printfln("Loan of %s granted",
			r.svc.Formatter.FormatCurrency(granted, sess.Locale, sess.Currency))

	case prompts.ActionSort, prompts.ActionUnsort:
		sess.ToggleSort()

	case prompts.ActionClose:
		return r.closeAccount(sess)

	case prompts.ActionLogout:
		confirm, err := prompts.PromptConfirm("Log out now?", true)
		if err != nil {
			return err
		}
		if confirm {
			sess.End()
		}
	}

	return nil
}

func (r *sessionRunner) closeAccount(sess *service.Session) error {
	creds, err := prompts.PromptCredentials("Confirm")
	if err != nil {
		return err
	}

	confirm, err := prompts.PromptCloseConfirm(sess.Owner)
	if err != nil {
		return err
	}
	if !confirm {
		pterm.Info.Println("Closure cancelled")
		return nil
	}

	if err := r.svc.Transaction.CloseAccount(sess, creds.Username, creds.PIN); err != nil {
		return warnRejection(err)
	}

	pterm.Success.Println("Your account has been closed")
	return nil
}

func (r *sessionRunner) logout(sess *service.Session) {
	sess.End()

	counts, err := r.svc.Metrics.OperationCounts()
	if err != nil {
		r.logger.Warn("failed to read operation tally", zap.Error(err))
	} else if err := views.RenderOperationTally(counts); err != nil {
		r.logger.Warn("failed to render operation tally", zap.Error(err))
	}

	pterm.Info.Println("Logged out")
}
