package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/collegedex/collegedex-cli/internal/core/domain"
)

var coursesJSON bool

var coursesCmd = &cobra.Command{
	Use:   "courses [college-id]",
	Short: "List the courses offered by a college",
	Args:  cobra.ExactArgs(1),
	RunE:  runCourses,
}

func init() {
	coursesCmd.Flags().BoolVar(&coursesJSON, "json", false, "output courses as JSON")
	rootCmd.AddCommand(coursesCmd)
}

func runCourses(cmd *cobra.Command, args []string) error {
	if filterService == nil {
		return errors.New("filter service not configured")
	}

	courses, err := filterService.Courses(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("college %q not found", args[0])
		}
		return fmt.Errorf("listing courses failed: %w", err)
	}

	if coursesJSON {
		data, err := json.MarshalIndent(courses, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal courses: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(courses) == 0 {
		cmd.Println("No courses recorded for this college.")
		return nil
	}

	cmd.Printf("Courses (%d):\n", len(courses))
	cmd.Println()
	for i, c := range courses {
		cmd.Printf("  [%d] %s", i+1, c.Str(domain.FieldCourseName))
		if branch := c.Str(domain.FieldBranch); branch != "" {
			cmd.Printf(" (%s)", branch)
		}
		cmd.Println()
		if seats := c.Int(domain.FieldTotalSeats); seats > 0 {
			cmd.Printf("      %d seats\n", seats)
		}
	}
	return nil
}
