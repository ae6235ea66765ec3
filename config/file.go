// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format int32

const (
	TOML Format = iota
	YAML
	JSON
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return TOML, fmt.Errorf("config: unsupported file type %q", filepath.Ext(path))
}

// Decode decodes data in the given format over the defaults. Fields
// missing from data keep their default values.
func Decode(data []byte, f Format) (*Config, error) {
	c := Default()
	var err error
	switch f {
	case TOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(c)
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(c)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(c)
	}
	if err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	return c, c.Validate()
}

// Encode encodes c in the given format.
func (c *Config) Encode(f Format) ([]byte, error) {
	switch f {
	case YAML:
		return yaml.Marshal(c)
	case JSON:
		return json.MarshalIndent(c, "", "\t")
	}
	return toml.Marshal(c)
}

// Open reads the config file at path, choosing the decoder by extension.
func Open(path string) (*Config, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, f)
}

// Save writes c to path, choosing the encoder by extension.
func (c *Config) Save(path string) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := c.Encode(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the ranges of the parameters.
func (c *Config) Validate() error {
	switch {
	case c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance:
		return fmt.Errorf("config: invalid distance range [%v, %v]", c.Camera.MinDistance, c.Camera.MaxDistance)
	case c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180:
		return fmt.Errorf("config: field of view %v out of (0, 180)", c.Camera.FieldOfView)
	case c.Interaction.ZoomFactor <= 1:
		return fmt.Errorf("config: zoom factor %v must exceed 1", c.Interaction.ZoomFactor)
	case c.Rendering.SphereLatitudes < 2 || c.Rendering.SphereLongitudes < 3:
		return fmt.Errorf("config: sphere resolution %dx%d below 2x3", c.Rendering.SphereLatitudes, c.Rendering.SphereLongitudes)
	case c.Rendering.BaseplaneWidth < 1:
		return fmt.Errorf("config: baseplane width must be positive")
	}
	return nil
}
