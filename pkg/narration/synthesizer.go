package narration

import (
	"context"
	"encoding/base64"

	"github.com/moduro/moduro/pkg/util"
	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"
)

// Synthesizer converts one piece of text into an audio payload.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// GoogleSynthesizer speaks Korean through the Google Cloud text-to-speech
// API. Voice configuration is fixed; it is not request-configurable.
type GoogleSynthesizer struct {
	service *texttospeech.Service
}

func NewGoogleSynthesizer() (*GoogleSynthesizer, error) {
	env := util.GetEnvironmentVariables()

	decodedKey, err := base64.StdEncoding.DecodeString(env["MODURO_GOOGLE_SERVICE_ACCOUNT"])
	if err != nil {
		return nil, err
	}

	service, err := texttospeech.NewService(context.Background(), option.WithCredentialsJSON(decodedKey))
	if err != nil {
		return nil, err
	}

	return &GoogleSynthesizer{service: service}, nil
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	response, err := g.service.Text.Synthesize(&texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{
			Text: text,
		},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: "ko-KR",
			SsmlGender:   "FEMALE",
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: "MP3",
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return base64.StdEncoding.DecodeString(response.AudioContent)
}
