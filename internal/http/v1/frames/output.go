package frames

// PageOutput is a rendered frame HTML page.
type PageOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// PreviewOutput is the response wrapper for GET /frames/preview.
type PreviewOutput struct {
	Body Frame
}
