package types

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/datazip-inc/det/utils"
)

// ParseJobConfig decodes a YAML job document and validates it.
//
// Decoding is strict: unknown fields at any depth, missing mandatory fields,
// unknown connector types and unknown enum values all fail with a
// *StructuralError. A decoded document is then checked for, in order, an
// unsupported engine, an empty source set and an empty destination set;
// the first failing check is returned.
func ParseJobConfig(data []byte) (*JobConfig, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	config := &JobConfig{}
	if err := decoder.Decode(config); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("empty document")
		}
		return nil, &StructuralError{Err: err}
	}

	var next yaml.Node
	if err := decoder.Decode(&next); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("line %d: expected a single document", next.Line)
		}
		return nil, &StructuralError{Err: err}
	}

	if err := utils.Validate(config); err != nil {
		return nil, &StructuralError{Err: err}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func ParseJobConfigString(document string) (*JobConfig, error) {
	return ParseJobConfig([]byte(document))
}

func (j *JobConfig) validate() error {
	if j.Transform.Engine != SupportedEngine {
		return ErrUnsupportedEngine
	}

	if j.Extract.Sources.Len() == 0 {
		return ErrNoSources
	}

	if len(j.Load.Destinations) == 0 {
		return ErrNoDestinations
	}

	return nil
}
