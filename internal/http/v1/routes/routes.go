package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/masks-frame/internal/http/v1/frames"
	framesvc "github.com/janisto/masks-frame/internal/service/frame"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, builder *framesvc.Builder) {
	frames.Register(api, builder)
}
