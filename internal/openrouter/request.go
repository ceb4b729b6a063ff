package openrouter

// Model identifiers exposed by the --pro flag.
const (
	ModelFlash = "google/gemini-2.5-flash-image"
	ModelPro   = "google/gemini-3-pro-image-preview"
)

// Defaults applied when the corresponding flags are omitted. Values are
// not validated locally; the API rejects anything outside its enums.
const (
	DefaultAspectRatio = "1:1"
	DefaultImageSize   = "1K"
)

// GenerationRequest describes one image generation.
type GenerationRequest struct {
	Prompt      string
	Model       string
	AspectRatio string
	ImageSize   string
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Modalities  []string      `json:"modalities"`
	ImageConfig imageConfig   `json:"image_config"`
	Reasoning   reasoning     `json:"reasoning"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type imageConfig struct {
	AspectRatio string `json:"aspect_ratio"`
	ImageSize   string `json:"image_size"`
}

type reasoning struct {
	Exclude bool `json:"exclude"`
}

func newChatRequest(req GenerationRequest) chatRequest {
	if req.Model == "" {
		req.Model = ModelFlash
	}
	if req.AspectRatio == "" {
		req.AspectRatio = DefaultAspectRatio
	}
	if req.ImageSize == "" {
		req.ImageSize = DefaultImageSize
	}
	return chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "user", Content: req.Prompt},
		},
		Modalities: []string{"image", "text"},
		ImageConfig: imageConfig{
			AspectRatio: req.AspectRatio,
			ImageSize:   req.ImageSize,
		},
		Reasoning: reasoning{Exclude: true},
	}
}
