package http

import (
	genaiinfra "github.com/barista-preorder/internal/infrastructure/genai"
	"github.com/barista-preorder/internal/infrastructure/memory"
	"github.com/barista-preorder/internal/infrastructure/smtp"
	"github.com/rs/zerolog"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Codes   *memory.CodeStore
	Board   *memory.OrderBoard
	Catalog *memory.Catalog
	Mailer  smtp.Mailer
	Images  genaiinfra.ImageGenerator // nil when image generation is not configured
	Log     *zerolog.Logger
}
