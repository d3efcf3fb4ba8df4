package genai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/barista-preorder/internal/config"
	"google.golang.org/genai"
)

// PlaceholderImageURL is served whenever generation is unavailable or fails.
const PlaceholderImageURL = "https://placehold.co/250x250/F7F4EF/2C2C2C?text=No+Image"

// ImageGenerator produces an illustrative image for a product.
type ImageGenerator interface {
	GenerateProductImage(ctx context.Context, productName string) (string, error)
}

type generator struct {
	client *genai.Client
	model  string
}

// NewImageGenerator creates an Imagen-backed generator using the official SDK.
func NewImageGenerator(ctx context.Context, cfg *config.Config) (ImageGenerator, error) {
	if cfg.GenAIAPIKey == "" {
		return nil, errors.New("genai: empty api key")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GenAIAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &generator{client: c, model: cfg.GenAIImageModel}, nil
}

// GenerateProductImage returns a data URI with a generated 1:1 JPEG of the
// named drink.
func (g *generator) GenerateProductImage(ctx context.Context, productName string) (string, error) {
	prompt := fmt.Sprintf("A delicious-looking %s coffee in a minimalist cafe setting, photorealistic, high quality, centered.", productName)
	resp, err := g.client.Models.GenerateImages(ctx, g.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
		AspectRatio:    "1:1",
	})
	if err != nil {
		return "", err
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return "", errors.New("genai: no image returned")
	}
	encoded := base64.StdEncoding.EncodeToString(resp.GeneratedImages[0].Image.ImageBytes)
	return "data:image/jpeg;base64," + encoded, nil
}
