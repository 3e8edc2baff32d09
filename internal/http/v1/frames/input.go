package frames

import "github.com/danielgtaylor/huma/v2"

// FrameGetInput is the initial frame render request.
type FrameGetInput struct {
	UserFID string `query:"userfid" doc:"fid to show" example:"3"`

	requestURL string
}

// Resolve keeps the full request URL; fid resolution reads it rather than the
// parsed parameter so a malformed query degrades instead of failing.
func (i *FrameGetInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	i.requestURL = u.String()
	return nil
}

// FrameActionInput is a button press posted by a frame client.
type FrameActionInput struct {
	UserFID string `query:"userfid" doc:"fid carried by the button target" example:"3"`
	Body    ActionPayload

	requestURL string
}

// Resolve keeps the full request URL.
func (i *FrameActionInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	i.requestURL = u.String()
	return nil
}
