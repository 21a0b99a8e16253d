package elevenlabs

import (
	"context"
	"io"
	"net/http"

	"github.com/s0up4200/convai/client"
)

// AudioIsolationService removes background noise from recordings
type AudioIsolationService struct{ service }

// FileFormatPCM16k declares raw 16-bit PCM at 16kHz mono input
const FileFormatPCM16k = "pcm_s16le_16"

// IsolateParams is the audio to clean. FileFormat is optional.
type IsolateParams struct {
	Filename   string
	Audio      io.Reader
	FileFormat string
}

func (p IsolateParams) form() *client.Form {
	filename := p.Filename
	if filename == "" {
		filename = "audio"
	}
	return client.NewForm().
		AddFile("audio", filename, p.Audio).
		AddFieldIf("file_format", p.FileFormat)
}

// Isolate returns the cleaned audio byte-for-byte
func (s *AudioIsolationService) Isolate(ctx context.Context, params IsolateParams) ([]byte, error) {
	return s.raw(ctx, http.MethodPost, "/v1/audio-isolation", params.form(), nil)
}

// IsolateStream returns the cleaned audio as it is produced. The caller must
// drain or Close the stream. The client timeout covers only the response
// headers; bound the transfer with ctx.
func (s *AudioIsolationService) IsolateStream(ctx context.Context, params IsolateParams) (*client.Stream, error) {
	return s.d.Stream(ctx, http.MethodPost, "/v1/audio-isolation/stream", params.form(), nil)
}
