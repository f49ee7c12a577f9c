package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/spf13/cobra"
)

var errInvalidSubmission = errors.New("submission has validation errors")

// contact send: run one submission through the same controller the web form uses.
func contactCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Contact form utilities",
	}

	var fields contact.Fields
	send := &cobra.Command{
		Use:   "send",
		Short: "Validate and send a contact message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			transport, err := a.transport()
			if err != nil {
				return err
			}
			ctrl := a.newController(transport)
			defer ctrl.Close()

			for _, f := range contact.AllFields {
				v, _ := fields.Get(f)
				if err := ctrl.Update(f, v); err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(context.WithoutCancel(cmd.Context()), a.cfg.Contact.SubmitTimeout)
			defer cancel()

			state, err := ctrl.Submit(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !state.Errors.Empty() {
				for _, f := range contact.AllFields {
					if msg, ok := state.Errors[f]; ok {
						fmt.Fprintf(out, "%s: %s\n", f, msg)
					}
				}
				return errInvalidSubmission
			}
			fmt.Fprintln(out, contact.SuccessMessage)
			return nil
		},
	}
	send.Flags().StringVar(&fields.Name, "name", "", "sender name")
	send.Flags().StringVar(&fields.Email, "email", "", "sender email")
	send.Flags().StringVar(&fields.Subject, "subject", "", "message subject")
	send.Flags().StringVar(&fields.Message, "message", "", "message body")

	cmd.AddCommand(send)
	return cmd
}
