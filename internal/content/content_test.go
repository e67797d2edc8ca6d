package content

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedPack(t *testing.T) Pack {
	t.Helper()
	reg, err := LoadEmbedded()
	require.NoError(t, err)
	p := reg.pack
	p.Topics = append([]Topic(nil), p.Topics...)
	p.Scenarios = append([]Scenario(nil), p.Scenarios...)
	p.Quiz = append([]QuizQuestion(nil), p.Quiz...)
	p.Tour = append([]TourStop(nil), p.Tour...)
	return p
}

func TestLoadEmbedded(t *testing.T) {
	reg, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Len(t, reg.Quiz(), 10)
	assert.Len(t, reg.MatchPairs(), 4)
	assert.Len(t, reg.Hierarchy().Slots, 4)
	assert.NotEmpty(t, reg.Scenarios())
	assert.NotEmpty(t, reg.Messages().TourComplete)

	attack, ok := reg.Animation("asthma-attack")
	require.True(t, ok)
	assert.Len(t, attack.Stages, 6)
	for _, s := range attack.Stages {
		assert.Equal(t, 3000, s.DurationMS)
	}

	for _, kind := range AllKinds() {
		assert.Len(t, reg.Topics(kind), len(KeysOf(kind)), "kind %s", kind)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"organelle/nucleus", Nucleus, false},
		{"trigger/cold", ColdAir, false},
		{" section/quiz ", SectionQuiz, false},
		{"organelle/ribosome", Key{}, true},
		{"nucleus", Key{}, true},
		{"planet/mars", Key{}, true},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKey(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKey(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCellPart(t *testing.T) {
	reg, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, Mitochondria, reg.CellPart("mitochondria2").Key)
	assert.Equal(t, Nucleus, reg.CellPart("Nucleus").Key)
	assert.Equal(t, Cytoplasm, reg.CellPart("ribosome").Key)
	assert.Equal(t, Cytoplasm, reg.CellPart("").Key)
}

func TestProfileForEveryTrigger(t *testing.T) {
	reg, err := LoadEmbedded()
	require.NoError(t, err)
	for _, k := range KeysOf(KindTrigger) {
		_, ok := reg.Profile(k)
		assert.True(t, ok, "no profile for %s", k)
	}
}

func TestValidatePack_Problems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Pack)
		want   string
	}{
		{"missing topic", func(p *Pack) { p.Topics = p.Topics[1:] }, "missing topic"},
		{"duplicate topic", func(p *Pack) { p.Topics = append(p.Topics, p.Topics[0]) }, "duplicate topic"},
		{"answer not an option", func(p *Pack) { p.Quiz[0].Answer = []string{"z"} }, "not an option"},
		{"single with two answers", func(p *Pack) { p.Quiz[0].Answer = []string{"a", "b"} }, "single-answer"},
		{"tour target", func(p *Pack) { p.Tour[0].Target = Pollen }, "not an organelle"},
		{"non-trigger severity", func(p *Pack) {
			p.Scenarios[0].IsTrigger = false
			p.Scenarios[0].Severity = SeveritySevere
		}, "severity none"},
		{"duplicate scenario", func(p *Pack) { p.Scenarios = append(p.Scenarios, p.Scenarios[0]) }, "duplicate scenario"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := embeddedPack(t)
			tt.mutate(&p)
			err := validatePack(&p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidatePack_CollectsAllProblems(t *testing.T) {
	p := embeddedPack(t)
	p.Topics = nil
	err := validatePack(&p)
	require.Error(t, err)
	assert.Equal(t, 27, strings.Count(err.Error(), "missing topic"))
}

func TestLoad_SchemaRejectsUnknownField(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml": {Data: []byte("topics:\n  - key: organelle/nucleus\n    title: Nucleus\n    description: Boss\n    colour: red\n")},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoad_UnknownKey(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("tour:\n  - {target: organelle/ribosome, content: organelle/nucleus, duration_ms: 10}\n")},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ribosome")
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(fstest.MapFS{"readme.txt": {Data: []byte("hi")}})
	require.Error(t, err)
}

func TestAirwayOpenness(t *testing.T) {
	assert.InDelta(t, 0.8, Airway{Outer: 100, Inner: 80}.Openness(), 1e-9)
	assert.Equal(t, 0.0, Airway{}.Openness())
}
