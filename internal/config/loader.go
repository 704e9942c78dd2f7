package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/levelpack/internal/ctxlog"
	"github.com/vk/levelpack/internal/fsutil"
)

// fileRoot is the top-level schema of a levelpack.hcl file.
type fileRoot struct {
	Defaults   *defaultsBlock `hcl:"defaults,block"`
	Debug      *debugBlock    `hcl:"debug,block"`
	HoldOnExit *bool          `hcl:"hold_on_exit,optional"`
	Remain     hcl.Body       `hcl:",remain"`
}

// defaultsBlock overrides the built-in input/output paths.
type defaultsBlock struct {
	Input  *string `hcl:"input,optional"`
	Output *string `hcl:"output,optional"`
}

// debugBlock caps the debug mapping output. The limit is kept as a raw
// expression so non-numeric values can be tolerated instead of rejected.
type debugBlock struct {
	Limit hcl.Expression `hcl:"limit,optional"`
}

// Load reads the defaults file at path and translates it into a Model. A
// missing file is not an error: the returned Model has nothing set.
func Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := NewModel()
	if !fsutil.FileExists(path) {
		logger.Debug("No defaults file found.", "path", path)
		return model, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse defaults file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode defaults file %s: %w", path, diags)
	}

	if root.Defaults != nil {
		if root.Defaults.Input != nil {
			model.InputPath = *root.Defaults.Input
		}
		if root.Defaults.Output != nil {
			model.OutputPath = *root.Defaults.Output
		}
	}
	if root.Debug != nil {
		limit, err := decodeLimit(root.Debug.Limit)
		if err != nil {
			return nil, fmt.Errorf("failed to decode defaults file %s: %w", path, err)
		}
		model.DebugLimit = limit
	}
	if root.HoldOnExit != nil {
		model.HoldOnExit = *root.HoldOnExit
	}

	logger.Debug("Defaults file loaded.", "path", path,
		"input", model.InputPath, "output", model.OutputPath,
		"debug_limit", model.DebugLimit, "hold_on_exit", model.HoldOnExit)
	return model, nil
}

// decodeLimit evaluates the debug limit expression. Null or non-numeric
// values mean unlimited, matching how a non-numeric --debug= value is
// treated on the command line.
func decodeLimit(expr hcl.Expression) (int, error) {
	if expr == nil {
		return -1, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return -1, nil
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return -1, nil
	}
	f, _ := num.AsBigFloat().Int64()
	if f < 0 {
		return -1, nil
	}
	return int(f), nil
}
