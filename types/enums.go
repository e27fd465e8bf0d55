package types

import (
	"gopkg.in/yaml.v3"

	"github.com/datazip-inc/det/constants"
	"github.com/datazip-inc/det/utils"
)

type FileFormat string

const (
	Parquet FileFormat = "parquet"
	CSV     FileFormat = "csv"
	JSON    FileFormat = "json"
)

var fileFormats = []FileFormat{Parquet, CSV, JSON}

func (f *FileFormat) UnmarshalYAML(node *yaml.Node) error {
	return decodeEnum(node, f, "file format", fileFormats)
}

// Extension returns the conventional file extension, without the dot
func (f FileFormat) Extension() string {
	switch f {
	case Parquet:
		return constants.ParquetFileExt
	case CSV:
		return constants.CSVFileExt
	case JSON:
		return constants.JSONFileExt
	default:
		return ""
	}
}

// WriteMode decides how rows meet existing rows at a destination.
// Only destinations with upsert semantics (postgres) accept one.
type WriteMode string

const (
	InsertAppend    WriteMode = "insert_append"
	InsertOverwrite WriteMode = "insert_overwrite"
	Merge           WriteMode = "merge"
)

var writeModes = []WriteMode{InsertAppend, InsertOverwrite, Merge}

func (w *WriteMode) UnmarshalYAML(node *yaml.Node) error {
	return decodeEnum(node, w, "write mode", writeModes)
}

// Engine is the runtime a job hands its SQL to. Every member is a valid
// document value but only SupportedEngine passes validation.
type Engine string

const (
	DataFusion Engine = "datafusion"
	DuckDB     Engine = "duckdb"
	Spark      Engine = "spark"

	SupportedEngine = DataFusion
)

var engines = []Engine{DataFusion, DuckDB, Spark}

func (e *Engine) UnmarshalYAML(node *yaml.Node) error {
	return decodeEnum(node, e, "engine", engines)
}

// ConnectorType is the `type` discriminator of source and destination connectors
type ConnectorType string

const (
	FilesystemConnector ConnectorType = "filesystem"
	PostgresConnector   ConnectorType = "postgres"
)

// decodeEnum reads a scalar and accepts it only if it names one of members
func decodeEnum[T ~string](node *yaml.Node, out *T, kind string, members []T) error {
	if node.Kind != yaml.ScalarNode {
		return typeError(node, "cannot unmarshal %s into %s", node.ShortTag(), kind)
	}

	value := T(node.Value)
	if !utils.ExistInArray(members, value) {
		return typeError(node, "unknown %s %q, expected one of %v", kind, node.Value, members)
	}

	*out = value
	return nil
}
