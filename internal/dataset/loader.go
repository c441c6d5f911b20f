package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecoleta/registrar/internal/models"
	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// Loader reads collection point drafts from a file
type Loader struct {
	datasetPath string
}

// NewLoader creates a new draft loader
func NewLoader(datasetPath string) *Loader {
	return &Loader{
		datasetPath: datasetPath,
	}
}

// Load loads drafts from a YAML, JSON lines or Parquet file
func (l *Loader) Load() ([]models.PointDraft, error) {
	ext := strings.ToLower(filepath.Ext(l.datasetPath))

	switch ext {
	case ".yaml", ".yml":
		return l.loadYAML()
	case ".jsonl", ".json":
		return l.loadJSONL()
	case ".parquet":
		return l.loadParquet()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .yaml, .yml, .jsonl, .json, .parquet)", ext)
	}
}

// loadYAML accepts either a single draft or a list of drafts
func (l *Loader) loadYAML() ([]models.PointDraft, error) {
	data, err := os.ReadFile(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var drafts []models.PointDraft
		if err := root.Decode(&drafts); err != nil {
			return nil, fmt.Errorf("failed to decode drafts: %w", err)
		}
		return drafts, nil
	}

	var draft models.PointDraft
	if err := root.Decode(&draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return []models.PointDraft{draft}, nil
}

func (l *Loader) loadJSONL() ([]models.PointDraft, error) {
	file, err := os.Open(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	var drafts []models.PointDraft
	scanner := bufio.NewScanner(file)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var draft models.PointDraft
		if err := json.Unmarshal(line, &draft); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}
		drafts = append(drafts, draft)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}

	slog.Debug("Finished reading JSONL file", "total_drafts", len(drafts), "total_lines", lineNum)
	return drafts, nil
}

func (l *Loader) loadParquet() ([]models.PointDraft, error) {
	file, err := os.Open(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[models.PointDraft](pf)
	defer reader.Close()

	// Read fills optional fields through the pointers already in rows, so
	// each batch gets its own buffer.
	var drafts []models.PointDraft
	for {
		rows := make([]models.PointDraft, 128)
		n, err := reader.Read(rows)
		drafts = append(drafts, rows[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	slog.Debug("Finished reading Parquet file", "total_drafts", len(drafts))
	return drafts, nil
}
