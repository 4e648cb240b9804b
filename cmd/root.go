package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rorical/RoriSelect/internal/app"
	"github.com/Rorical/RoriSelect/internal/config"
	"github.com/Rorical/RoriSelect/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "roriselect",
	Short: "A searchable single-select dropdown for the terminal",
	Long: `RoriSelect reconciles an options feed, a default value and a linked label
into one dropdown with search, create and clear.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		run(cfg)
	},
}

func run(cfg *config.Config) {
	application, err := app.NewApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(datasetCmd)
}
