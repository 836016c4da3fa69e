// Package cli implements the command line interface for Collegedex.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/collegedex/collegedex-cli/internal/cache"
	"github.com/collegedex/collegedex-cli/internal/core/ports/driven"
	"github.com/collegedex/collegedex-cli/internal/core/ports/driving"
	"github.com/collegedex/collegedex-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var verbose bool

// Services used by the commands. Wired by the composition root via
// SetServices before Execute is called.
var (
	suggestService driving.SuggestService
	filterService  driving.FilterService
	entityStore    driven.EntityStore
	resultCache    *cache.Cache
)

var rootCmd = &cobra.Command{
	Use:   "collegedex",
	Short: "Browse and search the medical and dental college directory",
	Long: `Collegedex is a directory of medical, dental and DNB colleges.

It offers fuzzy search suggestions across college names and locations,
and filtering by stream, state, management type, course and branch with
filter options that stay consistent with the current selection.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetServices wires the driving ports used by the commands.
func SetServices(suggest driving.SuggestService, filter driving.FilterService) {
	suggestService = suggest
	filterService = filter
}

// SetStore wires the entity store and cache used by the import command.
func SetStore(store driven.EntityStore, c *cache.Cache) {
	entityStore = store
	resultCache = c
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
