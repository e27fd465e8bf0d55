package protocol

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/datazip-inc/det/logger"
	"github.com/datazip-inc/det/types"
)

// describeCmd prints the parsed job as json
var describeCmd = &cobra.Command{
	Use:   "describe [config]",
	Short: "print the parsed job",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := resolveConfigs(args)[0]
		config, err := readJobConfig(file)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}

		message := types.Message{
			Type: types.JobMessage,
			Job:  config,
		}
		bytes, err := json.MarshalIndent(message, "", "\t")
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(bytes)); err != nil {
			return err
		}

		for _, destination := range config.Load.Destinations {
			if destination.Type == types.PostgresConnector {
				logger.Infof("destination %s writes to %s", destination.Name(), destination.Postgres.QualifiedName())
			}
		}

		return nil
	},
}
