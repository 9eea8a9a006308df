package narration

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/moduro/moduro/pkg/transit"
)

type fakeSynthesizer struct {
	failOn map[string]bool
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if f.failOn[text] {
		return nil, errors.New("synthesis backend unavailable")
	}

	return []byte("mp3:" + text), nil
}

func TestSynthesizeAllToleratesPartialFailure(t *testing.T) {
	assembler := &Assembler{
		Synthesizer:    &fakeSynthesizer{failOn: map[string]bool{"두번째 구간": true}},
		AudioDirectory: t.TempDir(),
	}

	entries := []transit.DescriptionEntry{
		{Kind: transit.DescriptionKindGeneral, Text: "첫번째 구간"},
		{Kind: transit.DescriptionKindGeneral, Text: "두번째 구간"},
		{Kind: transit.DescriptionKindInternal, Text: "세번째 구간"},
	}

	result := assembler.SynthesizeAll(context.Background(), entries)

	if len(result) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(result))
	}

	if result[1].AudioFile != "" {
		t.Errorf("failed entry should have no audio file, got %q", result[1].AudioFile)
	}

	for _, index := range []int{0, 2} {
		if result[index].AudioFile == "" {
			t.Fatalf("entry %d has no audio file", index)
		}

		audio, err := os.ReadFile(result[index].AudioFile)
		if err != nil {
			t.Fatalf("reading audio file for entry %d: %v", index, err)
		}
		if string(audio) != "mp3:"+result[index].Text {
			t.Errorf("entry %d audio content = %q", index, audio)
		}
	}

	// Sequence order is preserved
	if result[0].Text != "첫번째 구간" || result[2].Text != "세번째 구간" {
		t.Error("entries re-ordered by synthesis")
	}
}

func TestSynthesizeAllEmptySequence(t *testing.T) {
	assembler := &Assembler{
		Synthesizer:    &fakeSynthesizer{},
		AudioDirectory: t.TempDir(),
	}

	result := assembler.SynthesizeAll(context.Background(), nil)

	if len(result) != 0 {
		t.Fatalf("expected no entries, got %d", len(result))
	}
}
