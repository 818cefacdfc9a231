package sim

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	cfg "github.com/automoto/runslide/config"
	"gopkg.in/yaml.v3"
)

//go:embed scripts/demo.yaml
var demoScript []byte

// Script is a scripted input session.
type Script struct {
	Level    string    `yaml:"level"`
	Preset   string    `yaml:"preset"`
	TPS      int       `yaml:"tps"`
	LogEvery int       `yaml:"logEvery"` // frames between state logs, 0 disables
	Segments []Segment `yaml:"segments"`
}

// Segment holds the same input for a run of frames. Actions in Press are
// pressed on the segment's first frame only, so they produce one key edge.
type Segment struct {
	Frames     int      `yaml:"frames"`
	Horizontal float64  `yaml:"horizontal"`
	Vertical   float64  `yaml:"vertical"`
	Turn       float64  `yaml:"turn"`
	Hold       []string `yaml:"hold"`
	Press      []string `yaml:"press"`
}

// FrameInput is one frame of device state.
type FrameInput struct {
	Pressed    [cfg.ActionCount]bool
	Horizontal float64
	Vertical   float64
	Turn       float64
}

var actionNames = map[string]cfg.ActionID{
	"forward":    cfg.ActionMoveForward,
	"back":       cfg.ActionMoveBack,
	"left":       cfg.ActionMoveLeft,
	"right":      cfg.ActionMoveRight,
	"jump":       cfg.ActionJump,
	"slide":      cfg.ActionSlide,
	"run":        cfg.ActionRun,
	"turn-left":  cfg.ActionTurnLeft,
	"turn-right": cfg.ActionTurnRight,
}

func parseAction(name string) (cfg.ActionID, error) {
	id, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return cfg.ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return id, nil
}

// LoadScript decodes and validates a script. Unknown fields are rejected.
func LoadScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("script is empty")
		}
		return nil, fmt.Errorf("decoding script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScriptFile reads a script from disk. An empty path loads the built-in
// demo.
func LoadScriptFile(path string) (*Script, error) {
	if path == "" {
		return LoadScript(bytes.NewReader(demoScript))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	s, err := LoadScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Script) Validate() error {
	var errs []error
	if len(s.Segments) == 0 {
		errs = append(errs, fmt.Errorf("script has no segments"))
	}
	if s.TPS < 0 {
		errs = append(errs, fmt.Errorf("tps must not be negative, got %d", s.TPS))
	}
	if s.LogEvery < 0 {
		errs = append(errs, fmt.Errorf("logEvery must not be negative, got %d", s.LogEvery))
	}
	for i, seg := range s.Segments {
		if seg.Frames <= 0 {
			errs = append(errs, fmt.Errorf("segment %d: frames must be positive", i))
		}
		for _, name := range append(append([]string{}, seg.Hold...), seg.Press...) {
			if _, err := parseAction(name); err != nil {
				errs = append(errs, fmt.Errorf("segment %d: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Frames expands the segments into per-frame input.
func (s *Script) Frames() []FrameInput {
	var out []FrameInput
	for _, seg := range s.Segments {
		var held [cfg.ActionCount]bool
		for _, name := range seg.Hold {
			if id, err := parseAction(name); err == nil {
				held[id] = true
			}
		}
		for f := 0; f < seg.Frames; f++ {
			in := FrameInput{
				Pressed:    held,
				Horizontal: seg.Horizontal,
				Vertical:   seg.Vertical,
				Turn:       seg.Turn,
			}
			if f == 0 {
				for _, name := range seg.Press {
					if id, err := parseAction(name); err == nil {
						in.Pressed[id] = true
					}
				}
			}
			out = append(out, in)
		}
	}
	return out
}

// TotalFrames is the number of frames the script runs for.
func (s *Script) TotalFrames() int {
	n := 0
	for _, seg := range s.Segments {
		n += seg.Frames
	}
	return n
}
