package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// SurfaceRecord is the persisted form of a single optical surface. Curvature
// is stored rather than radius so flat and infinite-radius surfaces encode as
// zero; the object surface's infinite thickness is likewise stored as zero
// and restored on load.
type SurfaceRecord struct {
	Curvature float64 `json:"curvature"`
	Thickness float64 `json:"thickness"`
	Glass     string  `json:"glass,omitempty"`
	IsStop    bool    `json:"is_stop,omitempty"`
}

// StepRecord captures one environment step of an episode rollout.
type StepRecord struct {
	Action      []float64 `json:"action"`
	Valid       bool      `json:"valid"`
	Reward      float64   `json:"reward"`
	RMS         float64   `json:"rms"`
	FieldOfView float64   `json:"field_of_view"`
	Surfaces    int       `json:"surfaces"`
}

type EpisodeRecord struct {
	VersionedRecord
	ID               string          `json:"id"`
	Seed             int64           `json:"seed"`
	FNumber          float64         `json:"f_number"`
	MaxLenses        int             `json:"max_lenses"`
	Steps            []StepRecord    `json:"steps"`
	TotalReward      float64         `json:"total_reward"`
	FinalRMS         float64         `json:"final_rms"`
	FinalFieldOfView float64         `json:"final_field_of_view"`
	FinalFocalLength float64         `json:"final_focal_length"`
	FinalSurfaces    []SurfaceRecord `json:"final_surfaces"`
}
