package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Form is a multipart/form-data request body made of scalar fields and
// file parts, written in the order they were added.
type Form struct {
	parts []formPart
}

type formPart struct {
	name        string
	value       string
	filename    string
	contentType string
	content     io.Reader
	isFile      bool
}

// NewForm creates an empty multipart form
func NewForm() *Form {
	return &Form{}
}

// AddField appends a scalar field
func (f *Form) AddField(name, value string) *Form {
	f.parts = append(f.parts, formPart{name: name, value: value})
	return f
}

// AddFieldIf appends a scalar field only when value is non-empty
func (f *Form) AddFieldIf(name, value string) *Form {
	if value == "" {
		return f
	}
	return f.AddField(name, value)
}

// AddFile appends a file part sent as application/octet-stream
func (f *Form) AddFile(name, filename string, content io.Reader) *Form {
	return f.AddFileWithType(name, filename, "", content)
}

// AddFileWithType appends a file part with an explicit content type
func (f *Form) AddFileWithType(name, filename, contentType string, content io.Reader) *Form {
	f.parts = append(f.parts, formPart{
		name:        name,
		filename:    filename,
		contentType: contentType,
		content:     content,
		isFile:      true,
	})
	return f
}

// Len returns the number of parts in the form
func (f *Form) Len() int {
	return len(f.parts)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range f.parts {
		if !p.isFile {
			if err := w.WriteField(p.name, p.value); err != nil {
				return nil, "", fmt.Errorf("failed to write form field %s: %w", p.name, err)
			}
			continue
		}

		if p.content == nil {
			return nil, "", fmt.Errorf("file part %s has no content", p.name)
		}

		var (
			part io.Writer
			err  error
		)
		if p.contentType == "" {
			part, err = w.CreateFormFile(p.name, p.filename)
		} else {
			h := make(textproto.MIMEHeader)
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
				quoteEscaper.Replace(p.name), quoteEscaper.Replace(p.filename)))
			h.Set("Content-Type", p.contentType)
			part, err = w.CreatePart(h)
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part %s: %w", p.name, err)
		}
		if _, err := io.Copy(part, p.content); err != nil {
			return nil, "", fmt.Errorf("failed to copy file part %s: %w", p.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
