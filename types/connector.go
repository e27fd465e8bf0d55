package types

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/datazip-inc/det/utils"
)

// Connector is implemented by every connector payload
type Connector interface {
	Type() ConnectorType
	// Check performs offline sanity checks on the payload; it never opens
	// connections or touches the data the connector points at
	Check() error
}

// SourceConnector is a tagged union over the supported source payloads.
// Exactly one payload pointer is set, matching Type.
type SourceConnector struct {
	Type       ConnectorType
	Filesystem *FilesystemSource
}

func (s *SourceConnector) UnmarshalYAML(node *yaml.Node) error {
	typ, err := connectorType(node)
	if err != nil {
		return err
	}

	switch typ {
	case FilesystemConnector:
		payload := &FilesystemSource{}
		if err := decodePayload(node, payload); err != nil {
			return err
		}
		*s = SourceConnector{Type: typ, Filesystem: payload}
	default:
		return unknownVariant(node, typ, FilesystemConnector)
	}

	return nil
}

// Connector returns the active payload
func (s SourceConnector) Connector() Connector {
	switch s.Type {
	case FilesystemConnector:
		return s.Filesystem
	default:
		return nil
	}
}

func (s SourceConnector) MarshalJSON() ([]byte, error) {
	return marshalTagged(s.Type, s.Connector())
}

// DestinationConnector is a tagged union over the supported destination payloads
type DestinationConnector struct {
	Type       ConnectorType
	Filesystem *FilesystemDestination
	Postgres   *PostgresDestination
}

func (d *DestinationConnector) UnmarshalYAML(node *yaml.Node) error {
	typ, err := connectorType(node)
	if err != nil {
		return err
	}

	switch typ {
	case FilesystemConnector:
		payload := &FilesystemDestination{}
		if err := decodePayload(node, payload); err != nil {
			return err
		}
		*d = DestinationConnector{Type: typ, Filesystem: payload}
	case PostgresConnector:
		payload := &PostgresDestination{}
		if err := decodePayload(node, payload); err != nil {
			return err
		}
		*d = DestinationConnector{Type: typ, Postgres: payload}
	default:
		return unknownVariant(node, typ, FilesystemConnector, PostgresConnector)
	}

	return nil
}

func (d DestinationConnector) Connector() Connector {
	switch d.Type {
	case FilesystemConnector:
		return d.Filesystem
	case PostgresConnector:
		return d.Postgres
	default:
		return nil
	}
}

// Name of the destination, as declared in the document
func (d DestinationConnector) Name() string {
	switch d.Type {
	case FilesystemConnector:
		return d.Filesystem.Name
	case PostgresConnector:
		return d.Postgres.Name
	default:
		return ""
	}
}

func (d DestinationConnector) MarshalJSON() ([]byte, error) {
	return marshalTagged(d.Type, d.Connector())
}

// marshalTagged flattens payload and the discriminator into one object,
// the same shape the document declares
func marshalTagged(typ ConnectorType, payload Connector) ([]byte, error) {
	if payload == nil {
		return nil, fmt.Errorf("connector %q has no payload", typ)
	}

	object := make(map[string]any)
	if err := utils.Unmarshal(payload, &object); err != nil {
		return nil, err
	}
	object[discriminatorKey] = typ

	return json.Marshal(object)
}
