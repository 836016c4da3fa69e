package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/collegedex/collegedex-cli/internal/core/domain"
)

var (
	listStream     string
	listState      string
	listManagement string
	listCourse     string
	listBranch     string
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List colleges matching the selected filters",
	Long: `Lists colleges matching the selected filters and shows which values
remain available for each filter dimension. Options for a dimension are
computed against the other dimensions only, so widening a selection is
always possible without clearing it first.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listStream, "stream", "", "stream (MEDICAL, DENTAL or DNB)")
	listCmd.Flags().StringVar(&listState, "state", "", "state name")
	listCmd.Flags().StringVar(&listManagement, "management", "", "management type")
	listCmd.Flags().StringVar(&listCourse, "course", "", "course (requires --stream)")
	listCmd.Flags().StringVar(&listBranch, "branch", "", "branch (requires --course)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(listCmd)
}

func listSelection() (domain.FilterSelection, error) {
	sel := domain.FilterSelection{
		State:          listState,
		ManagementType: listManagement,
	}

	if listStream != "" {
		ct := domain.CollegeType(strings.ToUpper(listStream))
		if !ct.IsValid() {
			return sel, fmt.Errorf("unknown stream %q (want MEDICAL, DENTAL or DNB)", listStream)
		}
		sel.Stream = string(ct)
	}

	if listCourse != "" {
		if sel.Stream == "" {
			return sel, errors.New("--course requires --stream")
		}
		sel.Course = strings.ToUpper(listCourse)
	}

	if listBranch != "" {
		if sel.Course == "" {
			return sel, errors.New("--branch requires --course")
		}
		sel.Branch = listBranch
	}

	return sel, nil
}

func runList(cmd *cobra.Command, _ []string) error {
	if filterService == nil {
		return errors.New("filter service not configured")
	}

	sel, err := listSelection()
	if err != nil {
		return err
	}

	result, err := filterService.Filter(context.Background(), sel)
	if err != nil {
		return fmt.Errorf("filter failed: %w", err)
	}

	if listJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	outputCollegeTable(cmd, result.Entities)
	cmd.Println()
	outputOptions(cmd, result.Options)
	return nil
}

func outputCollegeTable(cmd *cobra.Command, entities []domain.Entity) {
	if len(entities) == 0 {
		cmd.Println("No colleges match the current filters.")
		return
	}

	cmd.Printf("Colleges (%d):\n", len(entities))
	cmd.Println()
	for i, e := range entities {
		cmd.Printf("  [%d] %s\n", i+1, e.Name())
		city := e.Str(domain.FieldCity)
		state := e.Str(domain.FieldState)
		if city != "" || state != "" {
			cmd.Printf("      %s, %s\n", city, state)
		}
		details := make([]string, 0, 3)
		if v := e.Str(domain.FieldCollegeType); v != "" {
			details = append(details, v)
		}
		if v := e.Str(domain.FieldManagementType); v != "" {
			details = append(details, v)
		}
		if n := e.Int(domain.FieldTotalCourses); n > 0 {
			details = append(details, fmt.Sprintf("%d courses", n))
		}
		if len(details) > 0 {
			cmd.Printf("      %s\n", strings.Join(details, " | "))
		}
	}
}

func outputOptions(cmd *cobra.Command, opts domain.AvailableOptions) {
	cmd.Println("Available filters:")
	printOptionRow(cmd, "States", opts.States)
	printOptionRow(cmd, "Management", opts.ManagementTypes)
	printOptionRow(cmd, "Courses", opts.Courses)
	printOptionRow(cmd, "Branches", opts.Branches)
}

func printOptionRow(cmd *cobra.Command, label string, values []string) {
	if len(values) == 0 {
		return
	}
	cmd.Printf("  %-12s %s\n", label+":", strings.Join(values, ", "))
}
