package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Marketing and portfolio site for a photography studio",
	Long: `Studio serves the studio website: a hero carousel, services and
courses pages, a portfolio gallery with lightbox, contact and partner forms,
and a small admin console for the submissions those forms collect.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "studio.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
