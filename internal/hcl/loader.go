package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/modslots/internal/config"
	"github.com/vk/modslots/internal/ctxlog"
	"github.com/vk/modslots/internal/fsutil"
	"github.com/vk/modslots/internal/hclutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths. At most one session block may
// appear across all files. Mods are returned in load order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := findHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()
	var sessionFile string

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		content, remain, diags := hclFile.Body.PartialContent(sessionSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		block, diags := hclutil.UniqueBlock(content.Blocks, "session")
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		if block != nil {
			if sessionFile != "" {
				return nil, fmt.Errorf("duplicate session block in %s, already declared in %s", file, sessionFile)
			}
			sessionFile = file
			if err := decodeSession(block.Body, model.Session); err != nil {
				return nil, fmt.Errorf("invalid session block in %s: %w", file, err)
			}
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(remain, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		for _, mb := range root.Mods {
			def, err := translateMod(file, mb)
			if err != nil {
				return nil, err
			}
			if err := model.AddMod(def); err != nil {
				return nil, err
			}
		}
	}

	model.SortMods()
	logger.Debug("HCL loading complete.", "mods", len(model.Mods), "session_file", sessionFile)
	return model, nil
}

func decodeSession(body hcl.Body, s *config.Session) error {
	var sb sessionBlock
	if diags := gohcl.DecodeBody(body, nil, &sb); diags.HasErrors() {
		return diags
	}
	var err error
	if sb.Builtin != nil {
		if s.Builtin, err = decodeCounts(sb.Builtin.Body); err != nil {
			return fmt.Errorf("builtin: %w", err)
		}
	}
	if sb.Capacity != nil {
		if s.Capacity, err = decodeCounts(sb.Capacity.Body); err != nil {
			return fmt.Errorf("capacity: %w", err)
		}
	}
	return nil
}

// findHCLFiles returns the .hcl files below each path. A path may name a
// single file.
func findHCLFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			all = append(all, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			if !strings.EqualFold(filepath.Ext(path), ".hcl") {
				return nil, fmt.Errorf("%s is not an .hcl file", path)
			}
			add(path)
			continue
		}
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			add(f)
		}
	}
	return all, nil
}
