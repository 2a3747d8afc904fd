package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the studio configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the studio site and writes the config file given by --config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
