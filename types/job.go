package types

import (
	"fmt"
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/datazip-inc/det/utils"
)

// JobConfig describes one ETL job: where data is read from, how it is
// transformed and where it is written
type JobConfig struct {
	Name      string            `yaml:"name" json:"name"`
	Profile   string            `yaml:"profile" json:"profile"`
	Extract   *ExtractSection   `yaml:"extract" json:"extract" validate:"required"`
	Transform *TransformSection `yaml:"transform" json:"transform" validate:"required"`
	Load      *LoadSection      `yaml:"load" json:"load" validate:"required"`
}

func (j *JobConfig) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, reflect.TypeOf(*j)); err != nil {
		return err
	}

	type plain JobConfig
	return node.Decode((*plain)(j))
}

// SourceMap keeps sources in document order
type SourceMap = orderedmap.OrderedMap[string, SourceConnector]

type ExtractSection struct {
	Sources *SourceMap `yaml:"sources" json:"sources" validate:"required"`
}

func (e *ExtractSection) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, reflect.TypeOf(*e)); err != nil {
		return err
	}

	if sources := mappingValue(node, "sources"); sources != nil {
		if err := uniqueKeys(sources); err != nil {
			return err
		}
	}

	type plain ExtractSection
	return node.Decode((*plain)(e))
}

type TransformSection struct {
	Engine Engine `yaml:"engine" json:"engine"`
	// SQL scripts, run in order
	SQLPaths []string `yaml:"sql_paths" json:"sql_paths" validate:"required"`
}

func (t *TransformSection) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, reflect.TypeOf(*t)); err != nil {
		return err
	}

	type plain TransformSection
	return node.Decode((*plain)(t))
}

type LoadSection struct {
	Destinations []DestinationConnector `yaml:"destinations" json:"destinations" validate:"required"`
}

func (l *LoadSection) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, reflect.TypeOf(*l)); err != nil {
		return err
	}

	type plain LoadSection
	return node.Decode((*plain)(l))
}

// SourceNames returns the source keys in the order the document declares them
func (j *JobConfig) SourceNames() []string {
	names := make([]string, 0, j.Extract.Sources.Len())
	for pair := j.Extract.Sources.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// Check runs every connector check and reports all failures together
func (j *JobConfig) Check() error {
	checks := []func() error{}
	for pair := j.Extract.Sources.Oldest(); pair != nil; pair = pair.Next() {
		checks = append(checks, labelled(fmt.Sprintf("source %q", pair.Key), pair.Value.Connector().Check))
	}

	for idx, destination := range j.Load.Destinations {
		checks = append(checks, labelled(fmt.Sprintf("destination[%d] %q", idx, destination.Name()), destination.Connector().Check))
	}

	return utils.ErrExecSequential(checks...)
}

func labelled(label string, check func() error) func() error {
	return utils.ErrExecFormat(strings.ReplaceAll(label, "%", "%%")+": %w", check)
}
