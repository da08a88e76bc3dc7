package queries

import (
	"time"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
	"financeos/contexts/finance-core/forecast-engine/ports"
)

// DefaultWorkspaceView is the payload served to unauthenticated viewers:
// a zeroed baseline, empty collections, and the default cycle-key window,
// shaped exactly like an authenticated response so clients render one way.
func DefaultWorkspaceView(baseCurrency string, now time.Time) entities.WorkspaceView {
	return assembleView(
		ports.WorkspaceRecords{BaseCurrency: baseCurrency},
		ForecastRequest{},
		now.UTC(),
	)
}
