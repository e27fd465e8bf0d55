package protocol

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datazip-inc/det/logger"
	"github.com/datazip-inc/det/types"
)

// sourcesCmd lists the source names of a job in document order
var sourcesCmd = &cobra.Command{
	Use:   "sources [config]",
	Short: "list job sources",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := resolveConfigs(args)[0]
		config, err := readJobConfig(file)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}

		names := config.SourceNames()
		logger.Debug(types.Message{
			Type:    types.SourcesMessage,
			Sources: names,
		})
		for _, name := range names {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
				return err
			}
		}

		return nil
	},
}
