package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/collegedex/collegedex-cli/internal/cache"
	"github.com/collegedex/collegedex-cli/internal/core/domain"
	"github.com/collegedex/collegedex-cli/internal/logger"
)

// importRecord is the JSON shape accepted by the import command: one
// college object with its courses nested under "courses".
type importRecord struct {
	College domain.Entity   `json:"college"`
	Courses []domain.Entity `json:"courses"`
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import colleges from a JSON file",
	Long: `Imports colleges and their courses from a JSON file into the local
store. The file holds an array of records, each with a "college" object
and a "courses" array. Records without an "id" get one assigned.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if entityStore == nil {
		return errors.New("entity store not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var records []importRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	logger.Section("Import")
	ctx := context.Background()
	imported := 0
	for i := range records {
		college := records[i].College
		if college == nil {
			return fmt.Errorf("record %d has no college object", i)
		}
		if college.ID() == "" {
			college[domain.FieldID] = uuid.New().String()
		}
		if college.Name() == "" {
			return fmt.Errorf("record %d (%s) has no name", i, college.ID())
		}

		if err := entityStore.UpsertCollege(ctx, college, records[i].Courses); err != nil {
			return fmt.Errorf("importing %s: %w", college.Name(), err)
		}
		logger.Debug("imported %s (%d courses)", college.Name(), len(records[i].Courses))
		imported++
	}

	if resultCache != nil {
		resultCache.InvalidateCategory(cache.CategoryColleges)
	}

	cmd.Printf("Imported %d colleges from %s\n", imported, args[0])
	return nil
}
