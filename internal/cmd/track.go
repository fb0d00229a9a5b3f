package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/skyline/internal/catalog"
)

// TrackCmd returns the `skyline track` command.
func TrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <phone|email|lead-id>",
		Short: "Look up the status of an enquiry",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			env, err := Open(c.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			leads, err := env.Repo.TrackLeads(c.Context(), args[0])
			if errors.Is(err, catalog.ErrNotFound) {
				fmt.Fprintln(c.OutOrStdout(), "no enquiry found")
				return nil
			}
			if err != nil {
				return fmt.Errorf("track: %w", err)
			}

			for _, l := range leads {
				project := projectLabel(c.Context(), env.Repo, l.ProjectID)
				fmt.Fprintf(c.OutOrStdout(), "  %s  %s  %s  (%s)  updated: %s\n",
					l.ID, l.Name, l.Status, project, l.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

// projectLabel names the project a lead is about. Unknown ids print as-is.
func projectLabel(ctx context.Context, repo *catalog.Repository, id string) string {
	if id == "" {
		return "general"
	}
	p, err := repo.Project(ctx, id)
	if err != nil {
		return id
	}
	return p.Name
}
