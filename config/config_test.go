// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 40.0, c.Camera.Distance)
	assert.Equal(t, 1.0625, c.Interaction.ZoomFactor)
	assert.Equal(t, 768, c.Rendering.BaseplaneWidth)
	assert.Same(t, c, OrDefault(c))
	assert.NotNil(t, OrDefault(nil))
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"grapher.toml", "grapher.yaml", "grapher.json"} {
		t.Run(name, func(t *testing.T) {
			c := Default()
			c.Camera.Distance = 12
			c.Interaction.CommitDelay = 2 * time.Second
			c.Rendering.BackgroundColor = "#102030"
			path := filepath.Join(dir, name)
			require.NoError(t, c.Save(path))
			got, err := Open(path)
			require.NoError(t, err)
			assert.Equal(t, c, got)
		})
	}
}

func TestPartialFile(t *testing.T) {
	c, err := Decode([]byte("[camera]\ndistance = 20\n"), TOML)
	require.NoError(t, err)
	assert.Equal(t, 20.0, c.Camera.Distance)
	assert.Equal(t, 45.0, c.Camera.FieldOfView)

	c, err = Decode([]byte("interaction:\n  commit-delay: 250ms\n"), YAML)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, c.Interaction.CommitDelay)

	c, err = Decode(nil, YAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestInvalid(t *testing.T) {
	_, err := Decode([]byte("[camera]\nbogus = 1\n"), TOML)
	assert.Error(t, err)
	_, err = Decode([]byte(`{"interaction": {"zoomFactor": 0.5}}`), JSON)
	assert.Error(t, err)
	_, err = Open("grapher.ini")
	assert.Error(t, err)
}

func TestSphereResolution(t *testing.T) {
	for _, src := range []string{
		"[rendering]\nsphere-latitudes = 1\n",
		"[rendering]\nsphere-longitudes = 2\n",
		"[rendering]\nsphere-latitudes = 0\nsphere-longitudes = 0\n",
	} {
		_, err := Decode([]byte(src), TOML)
		assert.Error(t, err, src)
	}
	c, err := Decode([]byte("[rendering]\nsphere-latitudes = 2\nsphere-longitudes = 3\n"), TOML)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Rendering.SphereLatitudes)
	assert.Equal(t, 3, c.Rendering.SphereLongitudes)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grapher.toml")
	require.NoError(t, Default().Save(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan *Config, 4)
	require.NoError(t, Watch(ctx, path, func(c *Config) {
		select {
		case got <- c:
		default:
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte("[camera]\ndistance = 7\n"), 0o644))
	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-got:
			if c.Camera.Distance == 7 {
				return
			}
		case <-timeout:
			t.Fatal("no reload")
		}
	}
}
