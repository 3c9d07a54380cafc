package tunefile

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/chime/pkg/domain"
	"github.com/aretw0/chime/pkg/translate"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from a Go duration string
// ("150ms", "1.5s") or a bare integer of milliseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var ms int64
	if err := value.Decode(&ms); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string or integer: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// NoteSpec describes one note of an explicit note list. Pitch names come
// from the pitch table ("C4", "FS5"); Frequency overrides Pitch when both
// are set. Rest forces a silent note regardless of pitch.
type NoteSpec struct {
	Pitch     string   `yaml:"pitch"`
	Frequency int      `yaml:"frequency"`
	Rest      bool     `yaml:"rest"`
	Duration  Duration `yaml:"duration"`
	Volume    *int     `yaml:"volume"`
}

// Document is the top-level structure of a tune file.
type Document struct {
	Name   string     `yaml:"name"`
	Volume int        `yaml:"volume"`
	Unit   Duration   `yaml:"unit"`
	Tabs   string     `yaml:"tabs"`
	Notes  []NoteSpec `yaml:"notes"`
}

// Parse decodes a tune file document from raw YAML.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tune file: %w", err)
	}
	if doc.Tabs != "" && len(doc.Notes) > 0 {
		return nil, fmt.Errorf("tune file %q sets both tabs and notes", doc.Name)
	}
	if doc.Tabs == "" && len(doc.Notes) == 0 {
		return nil, fmt.Errorf("tune file %q has neither tabs nor notes", doc.Name)
	}
	return &doc, nil
}

// Load reads and parses the tune file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tune file: %w", err)
	}
	return Parse(data)
}

// Tune converts the document into a playable tune.
func (d *Document) Tune() (domain.Tune, error) {
	if d.Tabs != "" {
		var opts []translate.TabsOption
		if d.Unit > 0 {
			opts = append(opts, translate.WithTabUnit(time.Duration(d.Unit)))
		}
		if d.Volume > 0 {
			opts = append(opts, translate.WithTabVolume(d.Volume))
		}
		return translate.Tabs(d.Tabs, opts...)
	}

	unit := time.Duration(d.Unit)
	if unit == 0 {
		unit = translate.DefaultTabUnit
	}
	volume := d.Volume
	if volume == 0 {
		volume = domain.DefaultVolume
	}

	tune := make(domain.Tune, 0, len(d.Notes))
	for i, spec := range d.Notes {
		note, err := spec.note(unit, volume)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		tune = append(tune, note)
	}
	if err := tune.Validate(); err != nil {
		return nil, err
	}
	return tune, nil
}

func (spec NoteSpec) note(unit time.Duration, volume int) (domain.Note, error) {
	duration := time.Duration(spec.Duration)
	if duration == 0 {
		duration = unit
	}

	if spec.Rest {
		return domain.Rest(duration), nil
	}

	if spec.Volume != nil {
		volume = *spec.Volume
	}

	if spec.Frequency != 0 {
		return domain.Note{Frequency: spec.Frequency, Volume: volume, Duration: duration}, nil
	}

	pitch, ok := domain.LookupPitch(spec.Pitch)
	if !ok {
		return domain.Note{}, fmt.Errorf("unknown pitch %q", spec.Pitch)
	}
	if pitch == domain.S {
		return domain.Rest(duration), nil
	}
	return domain.NewNote(pitch, volume, duration), nil
}
