package cmd

import (
	"github.com/ecoleta/registrar/internal/config"
	"github.com/ecoleta/registrar/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// globalFlags override the environment configuration
type globalFlags struct {
	registryURL string
	ibgeURL     string
	verbose     bool
}

var flags globalFlags

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registrar",
		Short: "Register recycling collection points",
		Long: `Registrar fills in and submits collection point registrations.

A collection point has contact details, a state and city, a map position,
a photo and the recyclable-material categories it accepts. Points can be
registered one at a time, imported in bulk from a dataset, or through the
HTTP form API served by "registrar serve".`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			logger.Setup(flags.verbose)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.registryURL, "registry-url", "", "Registry API base URL (default $REGISTRY_URL or "+config.DefaultRegistryURL+")")
	cmd.PersistentFlags().StringVar(&flags.ibgeURL, "ibge-url", "", "IBGE localities API base URL (default $IBGE_URL)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(newItemsCmd())
	cmd.AddCommand(newStatesCmd())
	cmd.AddCommand(newCitiesCmd())
	cmd.AddCommand(newRegisterCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// loadConfig reads the environment and applies the persistent flags
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flags.registryURL != "" {
		cfg.RegistryURL = flags.registryURL
	}
	if flags.ibgeURL != "" {
		cfg.IBGEURL = flags.ibgeURL
	}
	return cfg, nil
}
