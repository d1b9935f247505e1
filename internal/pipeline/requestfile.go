// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/HorizonHnk/papergen/internal/export"
	"github.com/HorizonHnk/papergen/pkg/types"
)

// RequestFile is the on-disk representation of a generation request. A
// request can be saved once and replayed without re-entering flags.
type RequestFile struct {
	// Topic is the text or prompt the document is generated from. When
	// InputFile is set the topic is extracted from that file instead.
	Topic string `yaml:"topic,omitempty"`

	// InputFile is an optional path to an artifact to extract text from.
	InputFile string `yaml:"input_file,omitempty"`

	// Config holds the generation parameters.
	Config types.GenerationConfig `yaml:"config"`

	// Formatting overrides the template's export formatting defaults.
	Formatting export.Options `yaml:"formatting,omitempty"`
}

// LoadRequestFile reads a generation request from a YAML file and fills
// unset enum fields with their defaults.
func LoadRequestFile(path string) (*RequestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}

	var rf RequestFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing request file: %w", err)
	}

	if rf.Config.Template == "" {
		rf.Config.Template = types.TemplateThesis
	}
	if rf.Config.Tone == "" {
		rf.Config.Tone = types.ToneAcademic
	}
	if rf.Config.Length == "" {
		rf.Config.Length = types.LengthAuto
	}
	if rf.Config.ReferenceStyle == "" {
		rf.Config.ReferenceStyle = types.RefAuto
	}

	if !rf.Config.Template.Valid() {
		return nil, fmt.Errorf("request file: unknown template %q", rf.Config.Template)
	}
	if rf.Topic == "" && rf.InputFile == "" {
		return nil, fmt.Errorf("request file: either topic or input_file is required")
	}
	return &rf, nil
}

// WriteRequestFile saves a generation request to a YAML file.
func WriteRequestFile(path string, rf RequestFile) error {
	data, err := yaml.Marshal(rf)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
