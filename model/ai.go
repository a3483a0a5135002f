package model

// SignPrediction is a single sign-language recognition result.
type SignPrediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// SignRecognition is the reply of the isyarat recognize endpoints.
// Sequence recognition fills Text with the assembled sentence.
type SignRecognition struct {
	Predictions []SignPrediction `json:"predictions"`
	Text        string           `json:"text,omitempty"`
}

// DictionaryEntry maps a sign key to its meaning and demonstration media.
type DictionaryEntry struct {
	Key      string `json:"key"`
	Meaning  string `json:"meaning"`
	VideoURL string `json:"video_url,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Detection is one detected object from the vision endpoint.
type Detection struct {
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	Box        []float64 `json:"box,omitempty"`
}

// DetectionResult is the reply of the vision detect endpoint.
type DetectionResult struct {
	Detections []Detection `json:"detections"`
}

// OCRResult is the reply of the vision OCR endpoint.
type OCRResult struct {
	Text   string   `json:"text"`
	Blocks []string `json:"blocks,omitempty"`
}

// SceneDescription is the reply of the vision describe endpoint.
type SceneDescription struct {
	Description string `json:"description"`
}

// TTSRequest asks a TTS endpoint to synthesize speech for Text.
type TTSRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
	Voice    string `json:"voice,omitempty"`
}

// AIHealth is the reply of the AI health probe.
type AIHealth struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}
