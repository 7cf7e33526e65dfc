// Package config loads grammar profiles for the minic CLI, either a
// named preset or a YAML file overriding preset options.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/minic-lang/minic/pkg/compiler/parser"
)

// profileFile mirrors the YAML shape. Omitted options inherit the base
// preset, so every field is a pointer.
type profileFile struct {
	Base                      string `yaml:"base"`
	AllowLogicalOperators     *bool  `yaml:"allowLogicalOperators"`
	AllowUnaryPrefixes        *bool  `yaml:"allowUnaryPrefixes"`
	AllowBooleanPrimary       *bool  `yaml:"allowBooleanPrimary"`
	AllowFunctionDefinitions  *bool  `yaml:"allowFunctionDefinitions"`
	AllowExpressionStatements *bool  `yaml:"allowExpressionStatements"`
	CollapseComparisons       *bool  `yaml:"collapseComparisons"`
	PermissiveForUpdate       *bool  `yaml:"permissiveForUpdate"`
}

// Preset returns the named grammar preset, "full" or "reduced".
func Preset(name string) (parser.Profile, error) {
	switch name {
	case "full":
		return parser.FullProfile(), nil
	case "reduced":
		return parser.ReducedProfile(), nil
	}
	return parser.Profile{}, fmt.Errorf("unknown grammar preset %q (want full or reduced)", name)
}

// LoadProfile reads a YAML profile file and applies its overrides to
// the base preset. An empty base defaults to "full".
func LoadProfile(path string) (parser.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return parser.Profile{}, fmt.Errorf("reading profile: %w", err)
	}

	var pf profileFile
	if err := yaml.Unmarshal(content, &pf); err != nil {
		return parser.Profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	if pf.Base == "" {
		pf.Base = "full"
	}
	profile, err := Preset(pf.Base)
	if err != nil {
		return parser.Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}

	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&profile.AllowLogicalOperators, pf.AllowLogicalOperators)
	apply(&profile.AllowUnaryPrefixes, pf.AllowUnaryPrefixes)
	apply(&profile.AllowBooleanPrimary, pf.AllowBooleanPrimary)
	apply(&profile.AllowFunctionDefinitions, pf.AllowFunctionDefinitions)
	apply(&profile.AllowExpressionStatements, pf.AllowExpressionStatements)
	apply(&profile.CollapseComparisons, pf.CollapseComparisons)
	apply(&profile.PermissiveForUpdate, pf.PermissiveForUpdate)
	return profile, nil
}
