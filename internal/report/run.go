package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/d0b3-xyz/autocsv/internal/utils"
)

// Run records what one report invocation wrote to disk. It is persisted as
// run.json next to the output files.
type Run struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`
	Files       []string  `json:"files"`
}

// Write persists the report bundle (report.md, report.html, report.json and
// the run manifest) into dir, creating it if necessary. Files are written
// atomically.
func (r *Report) Write(dir string) (*Run, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	run := &Run{ID: r.ID, Source: r.Source, GeneratedAt: r.GeneratedAt}

	md := []byte(r.Markdown())
	if err := writeArtifact(dir, "report.md", md, run); err != nil {
		return nil, err
	}
	html, err := r.HTML()
	if err != nil {
		return nil, err
	}
	if err := writeArtifact(dir, "report.html", html, run); err != nil {
		return nil, err
	}
	js, err := utils.PrettyJSON(r)
	if err != nil {
		return nil, err
	}
	if err := writeArtifact(dir, "report.json", js, run); err != nil {
		return nil, err
	}

	manifest, err := utils.PrettyJSON(run)
	if err != nil {
		return nil, err
	}
	if err := utils.SafeWriteFile(filepath.Join(dir, "run.json"), manifest); err != nil {
		return nil, fmt.Errorf("write run manifest: %w", err)
	}
	return run, nil
}

func writeArtifact(dir, name string, data []byte, run *Run) error {
	path := filepath.Join(dir, name)
	if err := utils.SafeWriteFile(path, data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	run.Files = append(run.Files, name)
	return nil
}
