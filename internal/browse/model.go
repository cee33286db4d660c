package browse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"tmj-platform/internal/analyzer"
)

type Request struct {
	// Message is required; a nil pointer means the field was absent.
	Message *string         `json:"message"`
	Context *RequestContext `json:"context,omitempty"`
}

// RequestContext carries UI state. The analyzer does not read it.
type RequestContext struct {
	CurrentRPM *int `json:"currentRPM,omitempty"`
}

type Response struct {
	Message             string                    `json:"message"`
	Visualization       Visualization             `json:"visualization"`
	Patterns            []analyzer.SymptomPattern `json:"patterns"`
	Recommendations     []string                  `json:"recommendations"`
	PersonalizedContent PersonalizedContent       `json:"personalizedContent"`
	// Omitted when no pattern matched.
	RPMSuggestion *int `json:"rpm_suggestion,omitempty"`
}

type PersonalizedContent struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

type Section struct {
	Heading     string `json:"heading"`
	Content     string `json:"content"`
	Interactive bool   `json:"interactive"`
}

type ServiceInfo struct {
	Service      string   `json:"service"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

type VisualizationType string

const (
	VisualizationNeural VisualizationType = "neural"
)

var ErrUnknownVisualization = errors.New("unknown visualization type")

// VisualizationData is implemented by each concrete payload schema.
type VisualizationData interface {
	VisualizationType() VisualizationType
}

// Visualization is a tagged union: the JSON "type" field selects the schema
// of "data".
type Visualization struct {
	Data VisualizationData
}

func (v Visualization) Type() VisualizationType {
	if v.Data == nil {
		return ""
	}
	return v.Data.VisualizationType()
}

type visualizationWire struct {
	Type VisualizationType `json:"type"`
	Data json.RawMessage   `json:"data"`
}

func (v Visualization) MarshalJSON() ([]byte, error) {
	if v.Data == nil {
		return nil, fmt.Errorf("visualization has no data")
	}
	data, err := json.Marshal(v.Data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(visualizationWire{Type: v.Data.VisualizationType(), Data: data})
}

// UnmarshalJSON rejects unknown tags and fields the tag's schema does not define.
func (v *Visualization) UnmarshalJSON(b []byte) error {
	var wire visualizationWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	var data VisualizationData
	switch wire.Type {
	case VisualizationNeural:
		data = &NeuralMap{}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVisualization, wire.Type)
	}

	dec := json.NewDecoder(bytes.NewReader(wire.Data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("invalid %s visualization: %w", wire.Type, err)
	}

	v.Data = data
	return nil
}

// NeuralMap drives the nervous-system visualization.
type NeuralMap struct {
	StressPoints []StressPoint `json:"stressPoints"`
	// NeuralActivity is the RPM suggestion normalised by MaxLevel, 0 when
	// there is no suggestion.
	NeuralActivity  float64             `json:"neuralActivity"`
	AffectedRegions []analyzer.Category `json:"affectedRegions"`
	State           string              `json:"state,omitempty"`
}

func (*NeuralMap) VisualizationType() VisualizationType { return VisualizationNeural }

type StressPoint struct {
	Location    analyzer.Category `json:"location"`
	Intensity   float64           `json:"intensity"`
	Connections []string          `json:"connections"`
}
