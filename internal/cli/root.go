package cli

import (
	"github.com/kavyap22/lekha/internal/config"
	"github.com/kavyap22/lekha/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lekha",
	Short: "SubStation Alpha (SSA/ASS) subtitle toolkit",
	Long: `Lekha is a CLI tool for working with SubStation Alpha subtitle
scripts, covering both the legacy SSA (v4.00) and ASS (v4.00+) variants.

It converts between the two variants, inspects script metadata and styles,
strips inline override tags, and extracts embedded subtitle tracks from
media containers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)
		var err error
		cfg, err = config.Load(configPath)
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path (default ~/.config/lekha/config.toml)")
}
