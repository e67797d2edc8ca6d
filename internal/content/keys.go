package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind groups topic keys into closed families.
type Kind string

const (
	KindOrganelle Kind = "organelle"
	KindTrigger   Kind = "trigger"
	KindLungPart  Kind = "lung-part"
	KindZoom      Kind = "zoom"
	KindSection   Kind = "section"
)

// AllKinds returns every kind in display order.
func AllKinds() []Kind {
	return []Kind{KindSection, KindOrganelle, KindZoom, KindLungPart, KindTrigger}
}

// Key identifies one topic. Only the values declared in this file are valid.
type Key struct {
	Kind Kind
	Name string
}

func (k Key) String() string {
	return string(k.Kind) + "/" + k.Name
}

// IsZero reports whether k is the zero key.
func (k Key) IsZero() bool {
	return k.Kind == "" && k.Name == ""
}

// Organelles and other cell structures.
var (
	Nucleus      = Key{KindOrganelle, "nucleus"}
	Membrane     = Key{KindOrganelle, "membrane"}
	Mitochondria = Key{KindOrganelle, "mitochondria"}
	Cytoplasm    = Key{KindOrganelle, "cytoplasm"}
	Cilia        = Key{KindOrganelle, "cilia"}
	GobletCell   = Key{KindOrganelle, "goblet-cell"}
	SmoothMuscle = Key{KindOrganelle, "smooth-muscle"}
)

// Asthma triggers. Normal is the resting airway used to reset the simulator.
var (
	Pollen   = Key{KindTrigger, "pollen"}
	Exercise = Key{KindTrigger, "exercise"}
	ColdAir  = Key{KindTrigger, "cold"}
	Smoke    = Key{KindTrigger, "smoke"}
	Normal   = Key{KindTrigger, "normal"}
)

// Parts of the respiratory tract.
var (
	Trachea     = Key{KindLungPart, "trachea"}
	Bronchi     = Key{KindLungPart, "bronchi"}
	Bronchioles = Key{KindLungPart, "bronchioles"}
	Alveoli     = Key{KindLungPart, "alveoli"}
)

// Levels of biological organisation.
var (
	ZoomCell   = Key{KindZoom, "cell"}
	ZoomTissue = Key{KindZoom, "tissue"}
	ZoomOrgan  = Key{KindZoom, "organ"}
	ZoomSystem = Key{KindZoom, "system"}
)

// Lesson sections in reading order.
var (
	SectionIntro          = Key{KindSection, "intro"}
	SectionCellsBasics    = Key{KindSection, "cells-basics"}
	SectionHealthyAirways = Key{KindSection, "healthy-airways"}
	SectionAsthmaEffects  = Key{KindSection, "asthma-effects"}
	SectionInteractive    = Key{KindSection, "interactive"}
	SectionQuiz           = Key{KindSection, "quiz"}
	SectionResources      = Key{KindSection, "resources"}
)

var catalog = map[Kind][]Key{
	KindOrganelle: {Nucleus, Membrane, Mitochondria, Cytoplasm, Cilia, GobletCell, SmoothMuscle},
	KindTrigger:   {Pollen, Exercise, ColdAir, Smoke, Normal},
	KindLungPart:  {Trachea, Bronchi, Bronchioles, Alveoli},
	KindZoom:      {ZoomCell, ZoomTissue, ZoomOrgan, ZoomSystem},
	KindSection: {
		SectionIntro, SectionCellsBasics, SectionHealthyAirways, SectionAsthmaEffects,
		SectionInteractive, SectionQuiz, SectionResources,
	},
}

// KeysOf returns the declared keys of a kind in display order.
func KeysOf(kind Kind) []Key {
	keys := catalog[kind]
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}

// ParseKey parses "kind/name" into a declared key.
func ParseKey(s string) (Key, error) {
	kind, name, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Key{}, fmt.Errorf("invalid topic key %q: want kind/name", s)
	}
	for _, k := range catalog[Kind(kind)] {
		if k.Name == name {
			return k, nil
		}
	}
	return Key{}, fmt.Errorf("unknown topic key %q", s)
}

// UnmarshalYAML decodes a "kind/name" scalar.
func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKey(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = parsed
	return nil
}
