package types

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type PostgresDestination struct {
	Name string `yaml:"name" json:"name"`
	// Connection string, URL or keyword/value form
	DSN string `yaml:"dsn" json:"dsn"`
	// nil leaves the choice to the writer
	WriteMode *WriteMode `yaml:"write_mode,omitempty" json:"write_mode,omitempty"`
	Schema    *string    `yaml:"schema,omitempty" json:"schema,omitempty"`
}

func (p *PostgresDestination) Type() ConnectorType {
	return PostgresConnector
}

// Check parses the DSN without connecting
func (p *PostgresDestination) Check() error {
	if _, err := pgconn.ParseConfig(p.DSN); err != nil {
		return fmt.Errorf("invalid dsn: %s", err)
	}

	if p.Schema != nil && *p.Schema == "" {
		return fmt.Errorf("schema must not be empty when set")
	}

	return nil
}

// QualifiedName returns the quoted target table, schema qualified when a schema is set
func (p *PostgresDestination) QualifiedName() string {
	if p.Schema == nil {
		return pq.QuoteIdentifier(p.Name)
	}

	return fmt.Sprintf("%s.%s", pq.QuoteIdentifier(*p.Schema), pq.QuoteIdentifier(p.Name))
}
