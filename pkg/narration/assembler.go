package narration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/moduro/moduro/pkg/transit"
	"github.com/moduro/moduro/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

const defaultAudioDirectory = "uploads"
const maxSynthesisWorkers = 4

// Assembler turns a description sequence into audio files, one per entry.
// Synthesis failures leave the affected entry without an audio file and never
// abort the remaining entries.
type Assembler struct {
	Synthesizer    Synthesizer
	AudioDirectory string
}

func NewAssembler(synthesizer Synthesizer) *Assembler {
	env := util.GetEnvironmentVariables()

	audioDirectory := defaultAudioDirectory
	if env["MODURO_AUDIO_DIRECTORY"] != "" {
		audioDirectory = env["MODURO_AUDIO_DIRECTORY"]
	}

	return &Assembler{
		Synthesizer:    synthesizer,
		AudioDirectory: audioDirectory,
	}
}

// SynthesizeAll populates the audio file of every entry it manages to
// synthesize, preserving sequence order.
func (a *Assembler) SynthesizeAll(ctx context.Context, entries []transit.DescriptionEntry) []transit.DescriptionEntry {
	if err := os.MkdirAll(a.AudioDirectory, 0755); err != nil {
		log.Error().Err(err).Str("directory", a.AudioDirectory).Msg("Failed to create audio directory")
		return entries
	}

	p := pool.New().WithMaxGoroutines(maxSynthesisWorkers)

	for index := range entries {
		index := index // per-iteration copy: go directive < 1.22 shares the loop variable
		p.Go(func() {
			audio, err := a.Synthesizer.Synthesize(ctx, entries[index].Text)
			if err != nil {
				log.Warn().Err(err).Int("entry", index).Msg("Failed to synthesize description entry")
				return
			}

			fileName := fmt.Sprintf("route_audio_%d_%d.mp3", time.Now().UnixMilli(), index)
			filePath := filepath.Join(a.AudioDirectory, fileName)

			if err := os.WriteFile(filePath, audio, 0644); err != nil {
				log.Warn().Err(err).Int("entry", index).Msg("Failed to write audio file")
				return
			}

			entries[index].AudioFile = filePath
		})
	}

	p.Wait()

	return entries
}
