package cmd

import (
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriSelect/internal/config"
	"github.com/Rorical/RoriSelect/internal/dataset"
)

var useCmd = &cobra.Command{
	Use:   "use [dataset-file]",
	Short: "Switch to a dataset and start the dropdown",
	Long:  `Remember the given dataset file in the config and immediately start the dropdown on it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := filepath.Abs(args[0])
		if err != nil {
			log.Fatalf("Invalid dataset path: %v", err)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Check the file parses before saving it as the active dataset
		if _, err := dataset.Load(path); err != nil {
			log.Fatalf("Failed to load dataset '%s': %v", path, err)
		}

		cfg.Platform.Dataset = path
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
