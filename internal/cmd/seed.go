package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitrone/skyline/internal/catalog"
)

// SeedCmd returns the `skyline seed` command.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file]",
		Short: "Load site content from a YAML fixture",
		Long:  "Load site content from a YAML fixture. Without a file the bundled sample site is loaded.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			fixture, err := loadFixture(args)
			if err != nil {
				return err
			}

			env, err := Open(c.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			counts, err := env.Repo.Seed(c.Context(), fixture)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			out := c.OutOrStdout()
			fmt.Fprintf(out, "seeded %s\n", env.Config.StorePath)
			fmt.Fprintf(out, "  banners: %d\n  projects: %d\n  gallery: %d\n  blog: %d\n  testimonials: %d\n",
				counts.Banners, counts.Projects, counts.Gallery, counts.Blog, counts.Testimonials)
			return nil
		},
	}
}

func loadFixture(args []string) (catalog.Fixture, error) {
	if len(args) == 0 {
		return catalog.DefaultFixture()
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return catalog.Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	return catalog.ParseFixture(data)
}
