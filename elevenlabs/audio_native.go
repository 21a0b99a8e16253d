package elevenlabs

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/s0up4200/convai/client"
)

// AudioNativeService manages embeddable Audio Native players
type AudioNativeService struct{ service }

// CreateAudioNativeParams describes a new Audio Native project. File is
// optional; without it the project is created empty.
type CreateAudioNativeParams struct {
	Name            string
	Title           string
	Author          string
	Image           string
	Small           *bool
	TextColor       string
	BackgroundColor string
	VoiceID         string
	ModelID         string
	AutoConvert     *bool
	Filename        string
	File            io.Reader
}

func (p CreateAudioNativeParams) form() *client.Form {
	f := client.NewForm().
		AddField("name", p.Name).
		AddFieldIf("title", p.Title).
		AddFieldIf("author", p.Author).
		AddFieldIf("image", p.Image).
		AddFieldIf("text_color", p.TextColor).
		AddFieldIf("background_color", p.BackgroundColor).
		AddFieldIf("voice_id", p.VoiceID).
		AddFieldIf("model_id", p.ModelID)
	if p.Small != nil {
		f.AddField("small", boolString(*p.Small))
	}
	if p.AutoConvert != nil {
		f.AddField("auto_convert", boolString(*p.AutoConvert))
	}
	if p.File != nil {
		f.AddFile("file", p.Filename, p.File)
	}
	return f
}

// UpdateContentParams replaces a project's content
type UpdateContentParams struct {
	Filename    string
	File        io.Reader
	AutoConvert *bool
	AutoPublish *bool
}

// Create creates an Audio Native project and returns its id and embed html
func (s *AudioNativeService) Create(ctx context.Context, params CreateAudioNativeParams) (Object, error) {
	return s.object(ctx, http.MethodPost, "/v1/audio-native", params.form(), nil)
}

// UpdateContent uploads new content for a project
func (s *AudioNativeService) UpdateContent(ctx context.Context, projectID string, params UpdateContentParams) (Object, error) {
	if projectID == "" {
		return nil, missing("project_id")
	}
	f := client.NewForm()
	if params.File != nil {
		f.AddFile("file", params.Filename, params.File)
	}
	if params.AutoConvert != nil {
		f.AddField("auto_convert", boolString(*params.AutoConvert))
	}
	if params.AutoPublish != nil {
		f.AddField("auto_publish", boolString(*params.AutoPublish))
	}
	return s.object(ctx, http.MethodPost, fmt.Sprintf("/v1/audio-native/%s/content", esc(projectID)), f, nil)
}

// GetSettings returns the player settings of a project
func (s *AudioNativeService) GetSettings(ctx context.Context, projectID string) (Object, error) {
	if projectID == "" {
		return nil, missing("project_id")
	}
	return s.object(ctx, http.MethodGet, fmt.Sprintf("/v1/audio-native/%s/settings", esc(projectID)), nil, nil)
}
