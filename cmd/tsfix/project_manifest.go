package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"tsfix/internal/tsc"
)

// tsfix.toml is optional: the tool runs with built-in defaults when no
// manifest is found anywhere up the tree.
//
//	[compiler]
//	command = "npx"
//	args = ["tsc"]
//	project = "tsconfig.build.json"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Compiler compilerConfig `toml:"compiler"`
}

type compilerConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	Project string   `toml:"project"`
}

func findTsfixToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "tsfix.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findTsfixToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// compilerOptions merges the manifest over the defaults.
func compilerOptions(startDir string) (tsc.Options, error) {
	opts := tsc.DefaultOptions()
	manifest, ok, err := loadProjectManifest(startDir)
	if err != nil {
		return opts, err
	}
	if !ok {
		return opts, nil
	}
	cc := manifest.Config.Compiler
	if cmd := strings.TrimSpace(cc.Command); cmd != "" {
		opts.Command = cmd
		opts.Args = nil
	}
	if len(cc.Args) > 0 {
		opts.Args = cc.Args
	}
	if project := strings.TrimSpace(cc.Project); project != "" {
		opts.Project = project
	}
	return opts, nil
}
