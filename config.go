package seqarrange

import (
	"io"
	"time"

	"github.com/arl/go-seqarrange/geom"
	"gopkg.in/yaml.v2"
)

// NewSolverConfiguration builds a SolverConfiguration defaulted from
// printer's plate, in the style of the teacher's solomesh.NewSettings()
// constructor: sane defaults for every knob, keyed off the one piece of
// information the caller must supply (here, the printer geometry).
func NewSolverConfiguration(printer PrinterGeometry) SolverConfiguration {
	box := geom.BoundingBox(printer.Plate)
	return SolverConfiguration{
		PlateBoundingBox:                box,
		BoundingBoxSizeOptimizationStep: (box.Width() + box.Height()) / 200,
		MinimumBoundingBoxSize:          (box.Width() + box.Height()) / 20,
		MaxRefines:                      8,
		ObjectGroupSize:                 4,
		FixedObjectGroupingLimit:        8,
		TemporalSpread:                  1,
		DecimationPrecision:             DecimationLow,
		OptimizationTimeoutMillis:       int((5 * time.Second).Milliseconds()),
		Centered:                        true,
		MaxDecimationGrowthSteps:        geom.DefaultMaxGrowthSteps,
	}
}

// DefaultSolverConfiguration builds a SolverConfiguration for the MK3S
// printer profile, the common case for callers that just want a working
// default.
func DefaultSolverConfiguration() SolverConfiguration {
	return NewSolverConfiguration(PrinterMK3S())
}

// yamlConfiguration is SolverConfiguration's YAML wire shape (ambient
// configuration concern, see SPEC_FULL.md §9), mirroring the teacher's
// `cmd/recast config` workflow over gopkg.in/yaml.v2.
type yamlConfiguration struct {
	PlateBoundingBox                geom.Rect    `yaml:"plate_bounding_box"`
	PlateBoundingPolygon            geom.Polygon `yaml:"plate_bounding_polygon,omitempty"`
	BoundingBoxSizeOptimizationStep geom.Coord   `yaml:"bounding_box_size_optimization_step"`
	MinimumBoundingBoxSize          geom.Coord   `yaml:"minimum_bounding_box_size"`
	MaxRefines                      int          `yaml:"max_refines"`
	ObjectGroupSize                 int          `yaml:"object_group_size"`
	FixedObjectGroupingLimit        int          `yaml:"fixed_object_grouping_limit"`
	TemporalSpread                  int          `yaml:"temporal_spread"`
	DecimationPrecision             int          `yaml:"decimation_precision"`
	OptimizationTimeoutMillis       int          `yaml:"optimization_timeout_millis"`
	Centered                        bool         `yaml:"centered"`
	MaxDecimationGrowthSteps        int          `yaml:"max_decimation_growth_steps"`
	Strict                          bool         `yaml:"strict"`
}

func toYAML(cfg SolverConfiguration) yamlConfiguration {
	return yamlConfiguration{
		PlateBoundingBox:                cfg.PlateBoundingBox,
		PlateBoundingPolygon:            cfg.PlateBoundingPolygon,
		BoundingBoxSizeOptimizationStep: cfg.BoundingBoxSizeOptimizationStep,
		MinimumBoundingBoxSize:          cfg.MinimumBoundingBoxSize,
		MaxRefines:                      cfg.MaxRefines,
		ObjectGroupSize:                 cfg.ObjectGroupSize,
		FixedObjectGroupingLimit:        cfg.FixedObjectGroupingLimit,
		TemporalSpread:                  cfg.TemporalSpread,
		DecimationPrecision:             int(cfg.DecimationPrecision),
		OptimizationTimeoutMillis:       cfg.OptimizationTimeoutMillis,
		Centered:                        cfg.Centered,
		MaxDecimationGrowthSteps:        cfg.MaxDecimationGrowthSteps,
		Strict:                          cfg.Strict,
	}
}

func fromYAML(y yamlConfiguration) SolverConfiguration {
	return SolverConfiguration{
		PlateBoundingBox:                y.PlateBoundingBox,
		PlateBoundingPolygon:            y.PlateBoundingPolygon,
		BoundingBoxSizeOptimizationStep: y.BoundingBoxSizeOptimizationStep,
		MinimumBoundingBoxSize:          y.MinimumBoundingBoxSize,
		MaxRefines:                      y.MaxRefines,
		ObjectGroupSize:                 y.ObjectGroupSize,
		FixedObjectGroupingLimit:        y.FixedObjectGroupingLimit,
		TemporalSpread:                  y.TemporalSpread,
		DecimationPrecision:             DecimationPrecision(y.DecimationPrecision),
		OptimizationTimeoutMillis:       y.OptimizationTimeoutMillis,
		Centered:                        y.Centered,
		MaxDecimationGrowthSteps:        y.MaxDecimationGrowthSteps,
		Strict:                          y.Strict,
	}
}

// MarshalConfigurationYAML serializes cfg to YAML.
func MarshalConfigurationYAML(cfg SolverConfiguration) ([]byte, error) {
	return yaml.Marshal(toYAML(cfg))
}

// UnmarshalConfigurationYAML parses a YAML-encoded SolverConfiguration.
func UnmarshalConfigurationYAML(data []byte) (SolverConfiguration, error) {
	var y yamlConfiguration
	if err := yaml.Unmarshal(data, &y); err != nil {
		return SolverConfiguration{}, err
	}
	return fromYAML(y), nil
}

// WriteConfigurationYAML writes cfg as YAML to w.
func WriteConfigurationYAML(w io.Writer, cfg SolverConfiguration) error {
	data, err := MarshalConfigurationYAML(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadConfigurationYAML reads a YAML-encoded SolverConfiguration from r.
func ReadConfigurationYAML(r io.Reader) (SolverConfiguration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return SolverConfiguration{}, err
	}
	return UnmarshalConfigurationYAML(data)
}
