package workers

import (
	"encoding/json"
	"time"

	"financeos/contexts/finance-core/forecast-engine/ports"
)

func newWorkerEnvelope(
	eventID string,
	eventType string,
	userID string,
	occurredAt time.Time,
	data map[string]any,
) (ports.EventEnvelope, error) {
	// Worker-side events are partitioned per user, matching the command
	// side, so consumers see one ordered stream per household.
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
