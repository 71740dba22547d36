package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pagelens/pagelens"
)

// Compile-time interface verification.
var _ pagelens.ScanService = (*ScanService)(nil)

// ScanService implements pagelens.ScanService using SQLite.
type ScanService struct {
	db *DB
}

// NewScanService creates a new ScanService.
func NewScanService(db *DB) *ScanService {
	return &ScanService{db: db}
}

// hashContent computes xxHash of content and returns it as a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateScan creates a new scan record, assigning its ID, creation time,
// and content hash over the serialized elements.
func (s *ScanService) CreateScan(ctx context.Context, scan *pagelens.Scan) error {
	if err := scan.Validate(); err != nil {
		return err
	}

	elements, err := json.Marshal(scan.Elements)
	if err != nil {
		return fmt.Errorf("failed to encode elements: %w", err)
	}

	scan.ID = uuid.New().String()
	scan.CreatedAt = time.Now().UTC()
	scan.ContentHash = hashContent(string(elements))

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scans (id, url, title, content_hash, digest, elements, scenarios, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, scan.ID, scan.URL, scan.Title, scan.ContentHash, scan.Digest, string(elements),
		scan.Scenarios, scan.CreatedAt.Format(time.RFC3339))

	return err
}

// FindScanByID retrieves a scan by ID.
func (s *ScanService) FindScanByID(ctx context.Context, id string) (*pagelens.Scan, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, content_hash, digest, elements, scenarios, created_at
		FROM scans
		WHERE id = ?
	`, id)

	scan, err := scanRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, pagelens.Errorf(pagelens.ENOTFOUND, "scan not found")
	}
	if err != nil {
		return nil, err
	}

	return scan, nil
}

// FindScans retrieves scans matching the filter, newest first.
func (s *ScanService) FindScans(ctx context.Context, filter pagelens.ScanFilter) ([]*pagelens.Scan, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, content_hash, digest, elements, scenarios, created_at FROM scans WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []*pagelens.Scan
	for rows.Next() {
		scan, err := scanRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		scans = append(scans, scan)
	}

	return scans, rows.Err()
}

// DeleteScan permanently removes a scan.
func (s *ScanService) DeleteScan(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM scans WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pagelens.Errorf(pagelens.ENOTFOUND, "scan not found")
	}

	return nil
}

// scanRow decodes one scans row through the given Scan function.
func scanRow(scanFn func(dest ...any) error) (*pagelens.Scan, error) {
	var scan pagelens.Scan
	var elements, createdAt string

	if err := scanFn(&scan.ID, &scan.URL, &scan.Title, &scan.ContentHash,
		&scan.Digest, &elements, &scan.Scenarios, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(elements), &scan.Elements); err != nil {
		return nil, fmt.Errorf("failed to decode elements: %w", err)
	}

	var err error
	scan.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &scan, nil
}
