package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriSelect/internal/config"
	"github.com/Rorical/RoriSelect/internal/dataset"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the records offered by the dropdown",
	Long:  `Manage the records of the active dataset file.`,
}

func loadDataset() (*config.Config, *dataset.Dataset) {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ds, err := dataset.LoadOrCreate(cfg.Platform.Dataset)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	return cfg, ds
}

func saveDataset(cfg *config.Config, ds *dataset.Dataset) {
	if err := dataset.Save(cfg.Platform.Dataset, ds); err != nil {
		log.Fatalf("Failed to save dataset: %v", err)
	}
}

// pickKey returns args[0] or lets the user choose a record interactively.
func pickKey(ds *dataset.Dataset, args []string, label string) string {
	if len(args) > 0 {
		return args[0]
	}

	if len(ds.Records) == 0 {
		log.Fatalf("No records available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: ds.Keys(),
	}
	_, key, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return key
}

var listRecordsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all records",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, ds := loadDataset()

		fmt.Printf("Dataset: %s\n\n", cfg.Platform.Dataset)
		for _, e := range ds.Records {
			marker := ""
			if e.Key == ds.Default {
				marker = " (default)"
			}
			fmt.Printf("  %s%s\n", e.Key, marker)
			fmt.Printf("    Label: %s\n", e.Label)
			if e.Secondary != "" {
				fmt.Printf("    Secondary: %s\n", e.Secondary)
			}
			if e.Image != "" {
				fmt.Printf("    Image: %s\n", e.Image)
			}
			fmt.Println()
		}
	},
}

var showRecordCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Show record details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, ds := loadDataset()

		e, err := ds.Find(args[0])
		if err != nil {
			log.Fatalf("Record lookup failed: %v", err)
		}

		fmt.Printf("Key: %s\n", e.Key)
		fmt.Printf("Label: %s\n", e.Label)
		fmt.Printf("Secondary: %s\n", e.Secondary)
		fmt.Printf("Image: %s\n", e.Image)
	},
}

var addRecordCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Add a new record",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, ds := loadDataset()

		var entry dataset.Entry
		var err error
		if len(args) > 0 {
			entry.Label = args[0]
		} else {
			prompt := promptui.Prompt{
				Label:    "Label",
				Validate: requireText,
			}
			entry.Label, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		secondaryPrompt := promptui.Prompt{
			Label: "Secondary label (optional)",
		}
		entry.Secondary, err = secondaryPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		imagePrompt := promptui.Prompt{
			Label: "Image URL (optional)",
		}
		entry.Image, err = imagePrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		entry, err = ds.Add(entry)
		if err != nil {
			log.Fatalf("Failed to add record: %v", err)
		}
		saveDataset(cfg, ds)

		fmt.Printf("Record '%s' added with key %s\n", entry.Label, entry.Key)
	},
}

var editRecordCmd = &cobra.Command{
	Use:   "edit [key]",
	Short: "Edit an existing record",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, ds := loadDataset()
		key := pickKey(ds, args, "Select record to edit")

		entry, err := ds.Find(key)
		if err != nil {
			log.Fatalf("Record lookup failed: %v", err)
		}

		labelPrompt := promptui.Prompt{
			Label:    "Label",
			Default:  entry.Label,
			Validate: requireText,
		}
		if entry.Label, err = labelPrompt.Run(); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		secondaryPrompt := promptui.Prompt{
			Label:   "Secondary label",
			Default: entry.Secondary,
		}
		if entry.Secondary, err = secondaryPrompt.Run(); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		imagePrompt := promptui.Prompt{
			Label:   "Image URL",
			Default: entry.Image,
		}
		if entry.Image, err = imagePrompt.Run(); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		if err := ds.Update(entry); err != nil {
			log.Fatalf("Failed to update record: %v", err)
		}
		saveDataset(cfg, ds)

		fmt.Printf("Record '%s' updated successfully!\n", key)
	},
}

var deleteRecordCmd = &cobra.Command{
	Use:   "delete [key]",
	Short: "Delete a record",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, ds := loadDataset()
		key := pickKey(ds, args, "Select record to delete")

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete record '%s'? (y/N)", key),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		if err := ds.Remove(key); err != nil {
			if errors.Is(err, dataset.ErrRecordNotFound) {
				log.Fatalf("Record '%s' does not exist", key)
			}
			log.Fatalf("Failed to delete record: %v", err)
		}
		saveDataset(cfg, ds)

		fmt.Printf("Record '%s' deleted successfully!\n", key)
	},
}

var defaultRecordCmd = &cobra.Command{
	Use:   "default [key]",
	Short: "Set the record selected when the dropdown starts",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, ds := loadDataset()
		key := pickKey(ds, args, "Select default record")

		if _, err := ds.Find(key); err != nil {
			log.Fatalf("Record lookup failed: %v", err)
		}
		ds.Default = key
		saveDataset(cfg, ds)

		fmt.Printf("Default record set to '%s'\n", key)
	},
}

func requireText(s string) error {
	if s == "" {
		return errors.New("value is required")
	}
	return nil
}

func init() {
	datasetCmd.AddCommand(listRecordsCmd)
	datasetCmd.AddCommand(showRecordCmd)
	datasetCmd.AddCommand(addRecordCmd)
	datasetCmd.AddCommand(editRecordCmd)
	datasetCmd.AddCommand(deleteRecordCmd)
	datasetCmd.AddCommand(defaultRecordCmd)
}
