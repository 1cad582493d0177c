package storage

import (
	"context"
	"time"

	"fungi-ca/internal/sims/fairyring"
)

// Axis records one swept parameter of a stored run.
type Axis struct {
	Key    string    `json:"key"`
	Values []float64 `json:"values"`
}

// SweepRun is a persisted parameter sweep: the base configuration, the swept
// axes and one aggregated record per grid point.
type SweepRun struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`

	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Steps int `json:"steps"`
	Runs  int `json:"runs"`

	// Base holds the base configuration as flag-style key/value pairs.
	Base    map[string]string       `json:"base"`
	Axes    []Axis                  `json:"axes"`
	Records []fairyring.SweepRecord `json:"records"`
}

// Store persists sweep runs.
type Store interface {
	Init(ctx context.Context) error
	SaveSweep(ctx context.Context, run SweepRun) error
	GetSweep(ctx context.Context, id string) (SweepRun, bool, error)
	ListSweeps(ctx context.Context) ([]string, error)
}
