package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Upload is one file part of a multipart request.
type Upload struct {
	// Field is the form field name. Defaults to "image".
	Field string
	// Name is the file name reported to the server.
	Name string
	// Reader supplies the file bytes.
	Reader io.Reader
}

// Form accumulates files and plain fields for a multipart request.
type Form struct {
	files  []Upload
	fields [][2]string
}

// NewForm returns an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// AddFile appends a file part.
func (f *Form) AddFile(u Upload) *Form {
	f.files = append(f.files, u)
	return f
}

// Set appends a plain text field.
func (f *Form) Set(key, value string) *Form {
	f.fields = append(f.fields, [2]string{key, value})
	return f
}

// encode renders the form body and returns it with the boundary-bearing
// content type.
func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("write field %q: %w", field[0], err)
		}
	}
	for _, file := range f.files {
		name := file.Field
		if name == "" {
			name = "image"
		}
		part, err := w.CreateFormFile(name, file.Name)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %q: %w", name, err)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return nil, "", fmt.Errorf("copy file %q: %w", file.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finish form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
