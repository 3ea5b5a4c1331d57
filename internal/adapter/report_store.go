package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/flownorm/internal/model"
)

// ReportStore persists a YAML summary of a normalization run.
type ReportStore interface {
	SaveReport(path m.Path, result m.Result) error
}

// LocalReportStore writes reports to the local file system.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type reportYAML struct {
	Model          string        `yaml:"model"`
	Input          string        `yaml:"input"`
	Output         string        `yaml:"output,omitempty"`
	Written        bool          `yaml:"written"`
	NoActionNeeded bool          `yaml:"no_action_needed,omitempty"`
	Params         paramsYAML    `yaml:"params"`
	Area           float64       `yaml:"area_mm2"`
	Factor         float64       `yaml:"scaling_factor,omitempty"`
	Before         extremaYAML   `yaml:"before"`
	After          extremaYAML   `yaml:"after"`
	Rewrites       []rewriteYAML `yaml:"rewrites,omitempty"`
}

type paramsYAML struct {
	NozzleDiameter   float64 `yaml:"nozzle_diameter"`
	FilamentDiameter float64 `yaml:"filament_diameter,omitempty"`
	FilamentArea     bool    `yaml:"filament_area,omitempty"`
	Policy           string  `yaml:"policy,omitempty"`
	Target           float64 `yaml:"target"`
}

type extremaYAML struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Count int     `yaml:"count"`
}

type rewriteYAML struct {
	Line     int     `yaml:"line"`
	OldFeed  float64 `yaml:"old_feed"`
	NewFeed  float64 `yaml:"new_feed"`
	Flow     float64 `yaml:"flow"`
	NewFlow  float64 `yaml:"new_flow"`
	Inserted bool    `yaml:"inserted,omitempty"`
}

// SaveReport writes result as YAML to path, creating parent directories.
func (rs *LocalReportStore) SaveReport(path m.Path, result m.Result) error {
	if path == "" {
		return fmt.Errorf("report path is empty")
	}

	data, err := yaml.Marshal(toReportYAML(result))
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), data, 0o600)
}

func toReportYAML(result m.Result) reportYAML {
	report := reportYAML{
		Model:          string(result.Model),
		Input:          string(result.Input),
		Output:         string(result.Output),
		Written:        result.Written,
		NoActionNeeded: result.NoActionNeeded,
		Params: paramsYAML{
			NozzleDiameter:   result.Params.NozzleDiameter,
			FilamentDiameter: result.Params.FilamentDiameter,
			FilamentArea:     result.Params.UseFilamentArea,
			Policy:           string(result.Params.Policy),
			Target:           result.Params.Target,
		},
		Area:   result.Area,
		Factor: result.Factor,
		Before: toExtremaYAML(result.Before),
		After:  toExtremaYAML(result.After),
	}

	for _, rw := range result.Rewrites {
		report.Rewrites = append(report.Rewrites, rewriteYAML(rw))
	}

	return report
}

// toExtremaYAML zeroes the sentinels of empty extrema so the report stays readable.
func toExtremaYAML(e m.FlowExtrema) extremaYAML {
	if e.Empty() {
		return extremaYAML{}
	}

	return extremaYAML{Min: e.Min, Max: e.Max, Count: e.Count}
}
