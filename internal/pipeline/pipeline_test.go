// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HorizonHnk/papergen/internal/genai"
	"github.com/HorizonHnk/papergen/pkg/types"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// pipelineWith returns a pipeline whose API client replies with body.
func pipelineWith(body string) *Pipeline {
	client := &genai.Client{
		APIKey: "k",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(body)),
			}, nil
		})},
	}
	return &Pipeline{Client: client}
}

func baseConfig() types.GenerationConfig {
	return types.GenerationConfig{
		Template:       types.TemplateThesis,
		Tone:           types.ToneAcademic,
		Length:         types.LengthAuto,
		ReferenceStyle: types.RefAuto,
	}
}

func TestGenerate_SanitizesModelOutput(t *testing.T) {
	body := `{"candidates":[{"content":{"parts":[{"text":"<h1>T</h1><script>alert(1)</script><p>ok</p>"}]}}]}`
	p := pipelineWith(body)

	doc, err := p.Generate(context.Background(), "topic", baseConfig())
	require.NoError(t, err)

	assert.Equal(t, "<h1>T</h1><p>ok</p>", doc.SanitizedMarkup)
	assert.Contains(t, doc.RawModelText, "<script>")
}

func TestGenerate_EmptyTopicRejectedBeforeAnyCall(t *testing.T) {
	var called bool
	client := &genai.Client{
		APIKey: "k",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			called = true
			return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("{}"))}, nil
		})},
	}
	p := &Pipeline{Client: client}

	_, err := p.Generate(context.Background(), "   \n", baseConfig())
	require.Error(t, err)
	assert.False(t, called)
}

func TestGenerate_BadConfigRejected(t *testing.T) {
	cfg := baseConfig()
	cfg.Template = "novel"

	_, err := pipelineWith("{}").Generate(context.Background(), "topic", cfg)
	assert.Error(t, err)
}

func TestRequestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")

	rf := RequestFile{
		Topic: "solar microgrids in rural clinics",
		Config: types.GenerationConfig{
			Template:       types.TemplateConference,
			Tone:           types.ToneProfessional,
			Length:         types.LengthMedium,
			ReferenceStyle: types.RefAuto,
			Authors:        []types.Author{{Name: "A. Jones", Affiliation: "CPUT"}},
		},
	}
	require.NoError(t, WriteRequestFile(path, rf))

	loaded, err := LoadRequestFile(path)
	require.NoError(t, err)
	assert.Equal(t, rf.Topic, loaded.Topic)
	assert.Equal(t, rf.Config, loaded.Config)
}

func TestLoadRequestFile_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topic: wind power\n"), 0o644))

	rf, err := LoadRequestFile(path)
	require.NoError(t, err)
	assert.Equal(t, types.TemplateThesis, rf.Config.Template)
	assert.Equal(t, types.ToneAcademic, rf.Config.Tone)
	assert.Equal(t, types.LengthAuto, rf.Config.Length)
	assert.Equal(t, types.RefAuto, rf.Config.ReferenceStyle)
}

func TestLoadRequestFile_Validation(t *testing.T) {
	dir := t.TempDir()

	noInput := filepath.Join(dir, "a.yaml")
	require.NoError(t, os.WriteFile(noInput, []byte("config:\n  tone: academic\n"), 0o644))
	_, err := LoadRequestFile(noInput)
	assert.Error(t, err)

	badTemplate := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(badTemplate, []byte("topic: x\nconfig:\n  template: zine\n"), 0o644))
	_, err = LoadRequestFile(badTemplate)
	assert.Error(t, err)

	_, err = LoadRequestFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
