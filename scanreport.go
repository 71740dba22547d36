package pagelens

import (
	"context"
	"time"
)

// Scan represents one analyzed page: its extracted, resolved elements plus
// a content digest and optional generated scenario text.
type Scan struct {
	ID          string        `json:"id"`
	URL         string        `json:"url"`
	Title       string        `json:"title,omitempty"`
	ContentHash string        `json:"contentHash"`
	Digest      string        `json:"digest,omitempty"`
	Elements    *PageElements `json:"elements"`
	Scenarios   string        `json:"scenarios,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Validate returns an error if the scan contains invalid fields.
func (s *Scan) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "scan URL required")
	}
	if s.Elements == nil {
		return Errorf(EINVALID, "scan elements required")
	}
	return nil
}

// ScanService represents a service for managing persisted scans.
type ScanService interface {
	// CreateScan creates a new scan record.
	CreateScan(ctx context.Context, scan *Scan) error

	// FindScanByID retrieves a scan by ID.
	// Returns ENOTFOUND if the scan does not exist.
	FindScanByID(ctx context.Context, id string) (*Scan, error)

	// FindScans retrieves scans matching the filter, newest first.
	FindScans(ctx context.Context, filter ScanFilter) ([]*Scan, error)

	// DeleteScan permanently removes a scan.
	// Returns ENOTFOUND if the scan does not exist.
	DeleteScan(ctx context.Context, id string) error
}

// ScanFilter represents a filter for FindScans.
type ScanFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
