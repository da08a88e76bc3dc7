package commands

import (
	"encoding/json"
	"time"

	"financeos/contexts/finance-core/forecast-engine/ports"
)

func newWorkspaceEnvelope(
	eventID string,
	eventType string,
	userID string,
	occurredAt time.Time,
	data map[string]any,
) (ports.EventEnvelope, error) {
	// Workspace events are partitioned per user so one household's stream
	// stays ordered for downstream consumers.
	payload, err := json.Marshal(data)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:          eventID,
		EventType:        eventType,
		OccurredAt:       occurredAt.UTC(),
		SourceService:    "forecast-engine",
		TraceID:          eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "user_id",
		PartitionKey:     userID,
		Data:             payload,
	}, nil
}
