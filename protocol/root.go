package protocol

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/datazip-inc/det/constants"
	"github.com/datazip-inc/det/logger"
	"github.com/datazip-inc/det/types"
	"github.com/datazip-inc/det/utils"
)

var (
	configPaths []string
	logLevel    string
	noSave      bool

	commands = []*cobra.Command{}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "det",
	Short: "ETL job configuration tool",
	PersistentPreRunE: func(_ *cobra.Command, args []string) error {
		viper.Set(constants.LogLevelKey, logLevel)
		if files := resolveConfigs(args); !noSave && len(files) > 0 {
			viper.Set(constants.ConfigFolderKey, filepath.Dir(files[0]))
		} else {
			viper.Set(constants.ConfigFolderKey, "")
		}
		// logger uses CONFIG_FOLDER
		logger.Init()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		if ok := utils.IsValidSubcommand(commands, args[0]); !ok {
			return fmt.Errorf("'%s' is an invalid command. Use 'det --help' to display usage guide", args[0])
		}

		return nil
	},
}

func CreateRootCommand() *cobra.Command {
	return RootCmd
}

// resolveConfigs picks config files from positional args, then --config,
// then DET_CONFIG, then the default file name
func resolveConfigs(args []string) []string {
	if len(args) > 0 {
		return args
	}

	if len(configPaths) > 0 {
		return configPaths
	}

	if env := viper.GetString("config"); env != "" {
		return strings.Split(env, ",")
	}

	return []string{constants.DefaultConfigFile}
}

// readJobConfig loads and validates a single job config file
func readJobConfig(path string) (*types.JobConfig, error) {
	data, err := utils.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return types.ParseJobConfig(data)
}

func init() {
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	commands = append(commands, checkCmd, sourcesCmd, describeCmd)
	RootCmd.AddCommand(commands...)
	RootCmd.PersistentFlags().StringSliceVarP(&configPaths, "config", "c", nil, "Job config file(s), also read from DET_CONFIG")
	RootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info", "(Optional) Log level")
	RootCmd.PersistentFlags().BoolVarP(&noSave, "no-save", "", false, "(Optional) Flag to skip logging artifacts in file")
	// Disable Cobra CLI's built-in usage and error handling
	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}
