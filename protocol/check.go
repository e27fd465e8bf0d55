package protocol

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datazip-inc/det/logger"
	"github.com/datazip-inc/det/types"
	"github.com/datazip-inc/det/utils"
)

// checkCmd parses every config and runs the offline connector checks
var checkCmd = &cobra.Command{
	Use:   "check [config...]",
	Short: "check command",
	PreRunE: func(_ *cobra.Command, args []string) error {
		return utils.CheckIfFilesExists(resolveConfigs(args)...)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		files := resolveConfigs(args)
		statuses := make([]*types.StatusRow, len(files))

		checks := make([]func(context.Context) error, 0, len(files))
		for idx, file := range files {
			idx, file := idx, file
			checks = append(checks, func(_ context.Context) error {
				statuses[idx] = checkConfig(file)
				return nil
			})
		}
		if err := utils.ErrExec(cmd.Context(), checks...); err != nil {
			return err
		}

		failed := 0
		for _, status := range statuses {
			if status.Status == types.ConnectionFailed {
				failed++
			}
			logger.Info(types.Message{
				Type:             types.ConnectionStatusMessage,
				ConnectionStatus: status,
			})
		}

		if !noSave {
			if err := logger.FileLogger(statuses, "check", ".json"); err != nil {
				logger.Warnf("failed to write check report: %s", err)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d config(s) failed checks", failed, len(files))
		}

		return nil
	},
}

func checkConfig(file string) *types.StatusRow {
	status := &types.StatusRow{
		Config: file,
		Status: types.ConnectionSucceed,
	}

	err := func() error {
		config, err := readJobConfig(file)
		if err != nil {
			return err
		}

		return config.Check()
	}()
	if err != nil {
		status.Status = types.ConnectionFailed
		status.Message = err.Error()
	}

	return status
}
