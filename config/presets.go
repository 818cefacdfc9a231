package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/runslide/shared/motion"
	"github.com/automoto/runslide/shared/terrain"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var builtinPresets []byte

type slideYAML struct {
	Enabled    *bool    `yaml:"enabled"`
	Multiplier *float64 `yaml:"multiplier"`
	Drag       *float64 `yaml:"drag"`
}

type presetYAML struct {
	Name          string    `yaml:"name"`
	MovementSpeed *float64  `yaml:"movementSpeed"`
	JumpForce     *float64  `yaml:"jumpForce"`
	JumpCooldown  *float64  `yaml:"jumpCooldown"`
	Height        *float64  `yaml:"height"`
	GroundLayers  []string  `yaml:"groundLayers"`
	GroundDrag    *float64  `yaml:"groundDrag"`
	Mass          *float64  `yaml:"mass"`
	Slide         slideYAML `yaml:"slide"`
}

type presetFileYAML struct {
	Default string       `yaml:"default"`
	Presets []presetYAML `yaml:"presets"`
}

// Presets is an ordered set of named movement tunings.
type Presets struct {
	Default string
	names   []string
	byName  map[string]motion.Tuning
}

func setIf(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func (p presetYAML) tuning(base motion.Tuning) (motion.Tuning, error) {
	t := base
	setIf(&t.MovementSpeed, p.MovementSpeed)
	setIf(&t.JumpForce, p.JumpForce)
	setIf(&t.JumpCooldown, p.JumpCooldown)
	setIf(&t.Height, p.Height)
	setIf(&t.GroundDrag, p.GroundDrag)
	setIf(&t.Mass, p.Mass)
	setIf(&t.SlideMultiplier, p.Slide.Multiplier)
	setIf(&t.SlideDrag, p.Slide.Drag)
	if p.Slide.Enabled != nil {
		t.SlideEnabled = *p.Slide.Enabled
	}
	if len(p.GroundLayers) > 0 {
		mask, err := terrain.ParseMask(p.GroundLayers)
		if err != nil {
			return t, err
		}
		t.GroundMask = mask
	}
	return t, t.Validate()
}

// LoadPresets decodes a preset file. Unknown fields are rejected.
func LoadPresets(r io.Reader) (*Presets, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file presetFileYAML
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, errors.New("preset file defines no presets")
	}

	p := &Presets{
		Default: file.Default,
		byName:  make(map[string]motion.Tuning, len(file.Presets)),
	}
	for i, py := range file.Presets {
		if py.Name == "" {
			return nil, fmt.Errorf("preset %d has no name", i)
		}
		if _, dup := p.byName[py.Name]; dup {
			return nil, fmt.Errorf("duplicate preset %q", py.Name)
		}
		t, err := py.tuning(Player.Tuning)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", py.Name, err)
		}
		p.names = append(p.names, py.Name)
		p.byName[py.Name] = t
	}

	if p.Default == "" {
		p.Default = p.names[0]
	}
	if _, ok := p.byName[p.Default]; !ok {
		return nil, fmt.Errorf("default preset %q is not defined", p.Default)
	}
	return p, nil
}

// LoadPresetFile reads presets from path, or the built-in presets when path
// is empty.
func LoadPresetFile(path string) (*Presets, error) {
	if path == "" {
		return LoadPresets(bytes.NewReader(builtinPresets))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening preset file: %w", err)
	}
	defer f.Close()
	return LoadPresets(f)
}

// Names returns the preset names in file order.
func (p *Presets) Names() []string {
	return append([]string(nil), p.names...)
}

// Get returns the named tuning. An empty name selects the default preset.
func (p *Presets) Get(name string) (motion.Tuning, error) {
	if name == "" {
		name = p.Default
	}
	t, ok := p.byName[name]
	if !ok {
		return motion.Tuning{}, fmt.Errorf("unknown preset %q", name)
	}
	return t, nil
}

// Next returns the preset after name, wrapping around.
func (p *Presets) Next(name string) string {
	for i, n := range p.names {
		if n == name {
			return p.names[(i+1)%len(p.names)]
		}
	}
	return p.Default
}
