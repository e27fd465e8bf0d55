package constants

const (
	ParquetFileExt = "parquet"
	CSVFileExt     = "csv"
	JSONFileExt    = "json"

	// DefaultConfigFile is read when no config is passed
	DefaultConfigFile = "config.yaml"
	EnvPrefix         = "DET"
	ConfigFolderKey   = "CONFIG_FOLDER"
	LogLevelKey       = "LOG_LEVEL"
	LogFileName       = "det.log"
)
