// Package config provides loading and validation of render request files
// for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-document-engine/internal/render"
	"github.com/jonathan/cv-document-engine/internal/templates"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// RequestFile mirrors the JSON document the CLI accepts: a profile, the CV
// data graph, rendering configuration and the template choice. Every field
// is optional; the renderers degrade gracefully on missing data.
type RequestFile struct {
	Profile  *types.Profile     `json:"profile,omitempty"`
	CVData   *types.CVData      `json:"cv_data,omitempty"`
	Config   types.RenderConfig `json:"config,omitempty"`
	CVURL    string             `json:"cv_url,omitempty" validate:"omitempty,url"`
	Template string             `json:"template,omitempty"`
}

var validate = validator.New()

// LoadRequest loads a render request from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadRequest(path string) (*RequestFile, error) {
	if path == "" {
		return nil, fmt.Errorf("request path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file %s: %w", path, err)
	}

	var req RequestFile
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request JSON: %w", err)
	}

	return &req, nil
}

// Validate checks the request for values the renderers would silently
// coerce: unknown template names, malformed customization values, bad URLs.
// The renderers themselves never fail on these; Validate exists so the CLI
// can warn loudly instead.
func (r *RequestFile) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("request validation: %w", err)
	}

	if r.Template != "" {
		if _, ok := templates.Get(r.Template); !ok {
			return fmt.Errorf("request error: unknown template %q (known: %v)", r.Template, templates.IDs())
		}
	}

	for role, color := range r.Config.Customization.Colors {
		if err := validate.Var(color, "hexcolor"); err != nil {
			return fmt.Errorf("request error: customization color %q is not a hex color: %q", role, color)
		}
	}

	for key := range r.Config.Sections {
		if !knownSectionKey(key) {
			return fmt.Errorf("request error: unknown section key %q", key)
		}
	}

	return nil
}

func knownSectionKey(key string) bool {
	for _, k := range types.SectionKeys {
		if k == key {
			return true
		}
	}
	return false
}

// ToRender converts the file form into the renderers' request.
func (r *RequestFile) ToRender() render.Request {
	return render.Request{
		CV:         r.CVData,
		Profile:    r.Profile,
		Config:     r.Config,
		CVURL:      r.CVURL,
		TemplateID: r.Template,
	}
}
