package cmd

import (
	"errors"

	"github.com/hance08/bankist/internal/errhandler"
	"github.com/hance08/bankist/internal/service"
	"github.com/hance08/bankist/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// credentialFlags are shared by the one-shot commands that act as a user.
type credentialFlags struct {
	User string
	PIN  int
}

func (f *credentialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.User, "user", "u", "", "Username to log in as (e.g. js)")
	cmd.Flags().IntVarP(&f.PIN, "pin", "p", 0, "PIN of the account")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pin")
}

func (f *credentialFlags) login(svc *service.Service) (*service.Session, error) {
	return svc.Account.Login(f.User, f.PIN)
}

// warnRejection prints a refused operation as a warning and swallows it.
// Any other error is returned unchanged.
func warnRejection(err error) error {
	var rej *service.RejectionError
	if errors.As(err, &rej) {
		pterm.Warning.Println(errhandler.Describe(err))
		return nil
	}
	return err
}

func renderStatement(svc *service.Service, sess *service.Session) error {
	ov, err := svc.Overview(sess)
	if err != nil {
		return err
	}
	return views.RenderOverview(ov)
}
