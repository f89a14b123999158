package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Versioned is embedded by every mutable entity. Version is the optimistic
// concurrency token: conditional updates only succeed when the stored version
// still matches the one the caller read, and every successful update bumps it.
type Versioned struct {
	Version int64 `json:"version"`
}
