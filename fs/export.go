// Package fs writes scan exports to disk.
package fs

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagelens/pagelens"
)

// Exporter writes scans to a directory as a set of report files: the
// extracted elements as JSON, the content digest as Markdown, and the
// generated scenarios as a Gherkin feature file.
type Exporter struct {
	baseDir string
}

// NewExporter creates a new Exporter rooted at the given base directory.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// ExportScan writes the scan's files and returns the directory they were
// written to. The export is staged in a temporary directory and renamed
// into place, so a partial export never replaces a previous one.
func (e *Exporter) ExportScan(scan *pagelens.Scan) (string, error) {
	if err := scan.Validate(); err != nil {
		return "", err
	}

	slug, err := URLToSlug(scan.URL)
	if err != nil {
		return "", err
	}

	finalDir := filepath.Join(e.baseDir, slug)
	tempDir := finalDir + ".tmp"

	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return "", err
	}

	elements, err := json.MarshalIndent(scan.Elements, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(tempDir, "elements.json"), elements, 0644); err != nil {
		return "", err
	}

	if scan.Digest != "" {
		content := FormatDigest(scan)
		if err := os.WriteFile(filepath.Join(tempDir, "digest.md"), []byte(content), 0644); err != nil {
			return "", err
		}
	}

	if scan.Scenarios != "" {
		if err := os.WriteFile(filepath.Join(tempDir, "scenarios.feature"), []byte(scan.Scenarios), 0644); err != nil {
			return "", err
		}
	}

	// Atomically replace any previous export for this URL
	if err := os.RemoveAll(finalDir); err != nil {
		return "", err
	}
	if err := os.Rename(tempDir, finalDir); err != nil {
		return "", err
	}

	return finalDir, nil
}

// FormatDigest formats a scan's digest with YAML frontmatter.
func FormatDigest(scan *pagelens.Scan) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(scan.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(scan.Title)
	b.WriteString("\nscanned: ")
	b.WriteString(scan.CreatedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(scan.Digest)
	return b.String()
}

// URLToSlug converts a page URL to a directory name.
// Example: https://example.com/docs/api/users → example.com-docs-api-users
func URLToSlug(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", pagelens.Errorf(pagelens.EINVALID, "URL %q has no host", rawURL)
	}

	slug := u.Host
	path := strings.Trim(u.Path, "/")
	if path != "" {
		slug += "-" + strings.ReplaceAll(path, "/", "-")
	}
	return slug, nil
}
