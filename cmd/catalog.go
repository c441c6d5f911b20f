package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List the recyclable-material categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c := newClients(cfg)

			categories, err := c.registry.FetchCategories(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, category := range categories {
				fmt.Fprintf(out, "%4d  %-28s %s\n", category.ID, category.Title, c.registry.UploadURL(category.ImageRef))
			}
			return nil
		},
	}
}

func newStatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List the states (UF) points can be registered in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			regions, err := newClients(cfg).ibge.FetchRegions(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, region := range regions {
				fmt.Fprintf(out, "%s  %s\n", region.ID, region.Name)
			}
			return nil
		},
	}
}

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "cities <UF>",
		Short:   "List the cities of a state",
		Example: `  registrar cities SP`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			localities, err := newClients(cfg).ibge.FetchLocalities(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, locality := range localities {
				fmt.Fprintf(out, "%8d  %s\n", locality.ID, locality.Name)
			}
			return nil
		},
	}
}
