package types

type MessageType string

type ConnectionStatus string

const (
	ConnectionStatusMessage MessageType = "CONNECTION_STATUS"
	SourcesMessage          MessageType = "SOURCES"
	JobMessage              MessageType = "JOB"

	ConnectionSucceed ConnectionStatus = "SUCCEEDED"
	ConnectionFailed  ConnectionStatus = "FAILED"
)

// Message is the unit of output the CLI logs
type Message struct {
	Type             MessageType `json:"type"`
	ConnectionStatus *StatusRow  `json:"connectionStatus,omitempty"`
	Sources          []string    `json:"sources,omitempty"`
	Job              *JobConfig  `json:"job,omitempty"`
}

type StatusRow struct {
	Config  string           `json:"config"`
	Status  ConnectionStatus `json:"status"`
	Message string           `json:"message,omitempty"`
}
