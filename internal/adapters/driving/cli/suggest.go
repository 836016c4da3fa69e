package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/collegedex/collegedex-cli/internal/core/domain"
)

var (
	suggestLimit int
	suggestJSON  bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Suggest colleges matching a partial query",
	Long: `Suggests colleges as you type. Matches are fuzzy, so small typos
and acronyms still find the right college, and are ranked by how well
and where they match (name matches rank above city or state matches).`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 8, "maximum number of suggestions")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output suggestions as JSON")
	rootCmd.AddCommand(suggestCmd)
}

// SetDefaultSuggestLimit changes the default for --limit. A value
// passed on the command line still wins.
func SetDefaultSuggestLimit(n int) {
	if n > 0 {
		suggestLimit = n
		suggestCmd.Flags().Lookup("limit").DefValue = strconv.Itoa(n)
	}
}

func runSuggest(cmd *cobra.Command, args []string) error {
	query := args[0]

	if suggestService == nil {
		return errors.New("suggest service not configured")
	}

	suggestions, err := suggestService.Suggest(context.Background(), query, suggestLimit)
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	if suggestJSON {
		return outputSuggestJSON(cmd, suggestions)
	}

	return outputSuggestTable(cmd, suggestions)
}

func outputSuggestJSON(cmd *cobra.Command, suggestions []domain.Suggestion) error {
	data, err := json.MarshalIndent(suggestions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSuggestTable(cmd *cobra.Command, suggestions []domain.Suggestion) error {
	if len(suggestions) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}

	cmd.Println("Suggestions:")
	cmd.Println()
	for i := range suggestions {
		s := &suggestions[i]
		cmd.Printf("  [%d] %s\n", i+1, s.Entity.Name())
		if s.Field != domain.FieldName {
			cmd.Printf("      matched %s: %s\n", s.Field, s.Text)
		}
		city := s.Entity.Str(domain.FieldCity)
		state := s.Entity.Str(domain.FieldState)
		if city != "" || state != "" {
			cmd.Printf("      %s, %s\n", city, state)
		}
		cmd.Println()
	}

	return nil
}
