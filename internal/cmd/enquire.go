package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/skyline/internal/catalog"
)

// EnquireCmd returns the `skyline enquire` command.
func EnquireCmd() *cobra.Command {
	var e catalog.Enquiry
	cmd := &cobra.Command{
		Use:   "enquire",
		Short: "Submit an enquiry",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			env, err := Open(c.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			id, err := env.Repo.SubmitEnquiry(c.Context(), e)
			if err != nil {
				return fmt.Errorf("enquiry rejected: %w", err)
			}
			fmt.Fprintln(c.OutOrStdout(), "enquiry received")
			fmt.Fprintf(c.OutOrStdout(), "lead id: %s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&e.Name, "name", "", "your name")
	cmd.Flags().StringVar(&e.Email, "email", "", "email address")
	cmd.Flags().StringVar(&e.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&e.Message, "message", "", "what you are looking for")
	cmd.Flags().StringVar(&e.ProjectID, "project", "", "project id")
	return cmd
}
