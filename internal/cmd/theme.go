package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gravitrone/skyline/internal/theme"
)

// ThemeCmd returns the `skyline theme` command. With no flags it prints the
// current tokens.
func ThemeCmd() *cobra.Command {
	var patch theme.Theme
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the site colors",
		Long:  "Show or change the site colors. A running skyline picks up the change.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			env, err := Open(c.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			if patch == (theme.Theme{}) {
				s, err := env.Repo.Settings(c.Context())
				if err != nil {
					return fmt.Errorf("read settings: %w", err)
				}
				printTheme(c.OutOrStdout(), s.Theme)
				return nil
			}

			merged, err := env.Repo.SaveTheme(c.Context(), patch)
			if err != nil {
				return fmt.Errorf("update theme: %w", err)
			}
			fmt.Fprintln(c.OutOrStdout(), "theme updated")
			printTheme(c.OutOrStdout(), merged)
			return nil
		},
	}
	cmd.Flags().StringVar(&patch.Primary, "primary", "", "primary color (#rrggbb)")
	cmd.Flags().StringVar(&patch.Secondary, "secondary", "", "secondary color")
	cmd.Flags().StringVar(&patch.Accent, "accent", "", "accent color")
	cmd.Flags().StringVar(&patch.Text, "text", "", "body text color")
	cmd.Flags().StringVar(&patch.Heading, "heading", "", "heading color")
	return cmd
}

func printTheme(w io.Writer, t theme.Theme) {
	fmt.Fprintf(w, "  primary:   %s\n", t.Primary)
	fmt.Fprintf(w, "  secondary: %s\n", t.Secondary)
	fmt.Fprintf(w, "  accent:    %s\n", t.Accent)
	fmt.Fprintf(w, "  text:      %s\n", t.Text)
	fmt.Fprintf(w, "  heading:   %s\n", t.Heading)
}
