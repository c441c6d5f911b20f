package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ecoleta/registrar/internal/registration"
	"gopkg.in/yaml.v3"
)

// ReportConfig is the configuration section of an import report
type ReportConfig struct {
	Dataset   string `yaml:"dataset"`
	Registry  string `yaml:"registry"`
	DryRun    bool   `yaml:"dryrun"`
	Timestamp string `yaml:"timestamp"`
}

// ReportEntry is the outcome of one draft
type ReportEntry struct {
	Name      string `yaml:"name"`
	State     string `yaml:"state"`
	City      string `yaml:"city"`
	Items     string `yaml:"items,omitempty"`
	Latitude  string `yaml:"latitude,omitempty"`
	Longitude string `yaml:"longitude,omitempty"`
	Image     string `yaml:"image,omitempty"`
	PointID   int    `yaml:"pointid,omitempty"`
	Error     string `yaml:"error,omitempty"`
	Millis    int64  `yaml:"millis"`
}

// Report is the complete import report
type Report struct {
	Config    ReportConfig  `yaml:"config"`
	Succeeded int           `yaml:"succeeded"`
	Failed    int           `yaml:"failed"`
	Results   []ReportEntry `yaml:"results"`
}

// NewReport summarizes import outcomes
func NewReport(cfg ReportConfig, outcomes []registration.Outcome) Report {
	if cfg.Timestamp == "" {
		cfg.Timestamp = time.Now().Format("2006-01-02_15-04-05")
	}
	report := Report{
		Config:  cfg,
		Results: make([]ReportEntry, 0, len(outcomes)),
	}

	for _, o := range outcomes {
		entry := ReportEntry{
			Name:   o.Draft.Name,
			State:  o.Draft.State,
			City:   o.Draft.City,
			Image:  o.Draft.Image,
			Error:  o.Error,
			Millis: o.ProcessingTime.Milliseconds(),
		}
		if o.Payload != nil {
			entry.Items = o.Payload.Items
			entry.Latitude = o.Payload.Latitude
			entry.Longitude = o.Payload.Longitude
		}
		if o.Created != nil {
			entry.PointID = o.Created.ID
		}

		if o.Error != "" {
			report.Failed++
		} else {
			report.Succeeded++
		}
		report.Results = append(report.Results, entry)
	}
	return report
}

// SaveToYAML writes the report to path
func SaveToYAML(path string, report Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}
	return nil
}
