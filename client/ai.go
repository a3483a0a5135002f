package client

import (
	"context"
	"net/http"

	"github.com/difakses/difakses-go/model"
)

// The AI namespaces proxy to inference services, so every image or TTS
// call runs under the extended upload deadline rather than the ordinary
// CRUD timeout. That asymmetry is intentional.

// IsyaratService wraps the sign-language tools: recognition, the sign
// dictionary, and speech synthesis.
type IsyaratService struct {
	c *Client
}

// Recognize submits one sign image for recognition.
func (s *IsyaratService) Recognize(ctx context.Context, image Upload) Response[model.SignRecognition] {
	form := NewForm().AddFile(image)
	return doUpload[model.SignRecognition](ctx, s.c, "/ai/isyarat/recognize", form)
}

// RecognizeSequence submits an ordered series of sign frames and gets
// back the assembled sentence. When the backend chooses to answer with
// synthesized speech, the audio arrives on Response.Audio instead of
// Data.
func (s *IsyaratService) RecognizeSequence(ctx context.Context, frames []Upload) Response[model.SignRecognition] {
	form := NewForm()
	for _, frame := range frames {
		form.AddFile(frame)
	}
	return doUpload[model.SignRecognition](ctx, s.c, "/ai/isyarat/recognize/sequence", form)
}

// Dictionary lists the sign dictionary.
func (s *IsyaratService) Dictionary(ctx context.Context) Response[[]model.DictionaryEntry] {
	return do[[]model.DictionaryEntry](ctx, s.c, http.MethodGet, "/ai/isyarat/dictionary", nil)
}

// DictionaryEntry looks up one sign by key.
func (s *IsyaratService) DictionaryEntry(ctx context.Context, key string) Response[model.DictionaryEntry] {
	return do[model.DictionaryEntry](ctx, s.c, http.MethodGet, "/ai/isyarat/dictionary/"+key, nil)
}

// TTS synthesizes speech for a text. The success payload is always raw
// audio bytes, never JSON.
func (s *IsyaratService) TTS(ctx context.Context, req model.TTSRequest) Response[Blob] {
	return doBlob(ctx, s.c, "/ai/isyarat/tts", req)
}

// VisionService wraps the vision tools: object detection, OCR, scene
// description, and speech synthesis.
type VisionService struct {
	c *Client
}

// Detect finds objects in an image.
func (s *VisionService) Detect(ctx context.Context, image Upload) Response[model.DetectionResult] {
	form := NewForm().AddFile(image)
	return doUpload[model.DetectionResult](ctx, s.c, "/ai/vision/detect", form)
}

// OCR extracts text from an image.
func (s *VisionService) OCR(ctx context.Context, image Upload) Response[model.OCRResult] {
	form := NewForm().AddFile(image)
	return doUpload[model.OCRResult](ctx, s.c, "/ai/vision/ocr", form)
}

// Describe produces a natural-language description of a scene.
func (s *VisionService) Describe(ctx context.Context, image Upload) Response[model.SceneDescription] {
	form := NewForm().AddFile(image)
	return doUpload[model.SceneDescription](ctx, s.c, "/ai/vision/describe", form)
}

// TTS synthesizes speech for a text.
func (s *VisionService) TTS(ctx context.Context, req model.TTSRequest) Response[Blob] {
	return doBlob(ctx, s.c, "/ai/vision/tts", req)
}

// AIHealth probes the inference services behind the AI namespaces.
func (c *Client) AIHealth(ctx context.Context) Response[model.AIHealth] {
	return do[model.AIHealth](ctx, c, http.MethodGet, "/ai/health", nil)
}
