package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show available filter values for the current selection",
	Long: `Shows the filter values that remain available under the selection
given by the list flags. Shares --stream, --state, --management,
--course and --branch with the list command.`,
	Args: cobra.NoArgs,
	RunE: runOptions,
}

func init() {
	optionsCmd.Flags().AddFlagSet(listCmd.Flags())
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, _ []string) error {
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
		data, err := json.MarshalIndent(result.Options, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal options: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	outputOptions(cmd, result.Options)
	return nil
}
