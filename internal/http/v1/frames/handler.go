package frames

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/masks-frame/internal/platform/logging"
	framesvc "github.com/janisto/masks-frame/internal/service/frame"
	"github.com/janisto/masks-frame/internal/service/masks"
)

const (
	auditActionButton  = "frame.button"
	auditResourceFrame = "frame"
)

// Register wires frame routes into the provided API router.
func Register(api huma.API, builder *framesvc.Builder) {
	huma.Register(api, huma.Operation{
		OperationID: "get-frame",
		Method:      http.MethodGet,
		Path:        "/frames",
		Summary:     "Render the Masks stats frame",
		Description: "Returns an HTML page with frame meta tags. Shows the score card when userfid resolves to a known profile.",
		Tags:        []string{"Frames"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Frame page",
				Content:     map[string]*huma.MediaType{"text/html": {}},
			},
		},
	}, func(ctx context.Context, input *FrameGetInput) (*PageOutput, error) {
		return renderFrame(ctx, builder, framesvc.Request{URL: input.requestURL})
	})

	huma.Register(api, huma.Operation{
		OperationID: "post-frame",
		Method:      http.MethodPost,
		Path:        "/frames",
		Summary:     "Handle a frame button press",
		Description: "Accepts a frame action payload and returns the next frame as an HTML page.",
		Tags:        []string{"Frames"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Frame page",
				Content:     map[string]*huma.MediaType{"text/html": {}},
			},
		},
	}, func(ctx context.Context, input *FrameActionInput) (*PageOutput, error) {
		data := input.Body.UntrustedData
		f, err := builder.Build(ctx, framesvc.Request{
			RequesterFID: data.FID,
			URL:          input.requestURL,
			State:        data.State,
		})
		auditFrameAction(ctx, data, f, err)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return pageOutput(ctx, f)
	})

	huma.Register(api, huma.Operation{
		OperationID: "preview-frame",
		Method:      http.MethodGet,
		Path:        "/frames/preview",
		Summary:     "Preview the Masks stats frame",
		Description: "Returns the frame the GET /frames page would describe as structured data.",
		Tags:        []string{"Frames"},
	}, func(ctx context.Context, input *FrameGetInput) (*PreviewOutput, error) {
		f, err := builder.Build(ctx, framesvc.Request{URL: input.requestURL})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &PreviewOutput{Body: toHTTPFrame(f)}, nil
	})
}

func renderFrame(ctx context.Context, builder *framesvc.Builder, req framesvc.Request) (*PageOutput, error) {
	f, err := builder.Build(ctx, req)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return pageOutput(ctx, f)
}

func pageOutput(ctx context.Context, f *framesvc.Frame) (*PageOutput, error) {
	page, err := renderPage(f)
	if err != nil {
		applog.LogError(ctx, "frame page render failed", err)
		return nil, huma.Error500InternalServerError("failed to render frame")
	}
	return &PageOutput{ContentType: htmlContentType, Body: page}, nil
}

// auditFrameAction records a button press. The resource is the fid the frame
// resolved to, which may differ from the presser.
func auditFrameAction(ctx context.Context, data UntrustedData, f *framesvc.Frame, err error) {
	ev := applog.AuditEvent{
		Action:       auditActionButton,
		ResourceType: auditResourceFrame,
		Result:       applog.AuditSuccess,
		Details:      map[string]any{"buttonIndex": data.ButtonIndex},
	}
	if data.FID > 0 {
		ev.UserID = strconv.FormatInt(data.FID, 10)
	}
	if err != nil {
		ev.Result = applog.AuditFailure
	} else {
		ev.Details["view"] = string(f.View)
		if f.State != nil {
			ev.ResourceID = f.State.LastFID
		}
	}
	if data.CastID != nil {
		ev.Details["castHash"] = data.CastID.Hash
	}
	applog.LogAuditEvent(ctx, ev)
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, masks.ErrUpstream):
		return huma.Error502BadGateway("upstream error")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout("upstream timeout")
	default:
		return huma.Error502BadGateway("invalid upstream response")
	}
}

func toHTTPFrame(f *framesvc.Frame) Frame {
	buttons := make([]Button, len(f.Buttons))
	for i, b := range f.Buttons {
		buttons[i] = Button{Label: b.Label, Action: string(b.Action), Target: b.Target}
	}
	out := Frame{
		View:        string(f.View),
		Image:       f.Image,
		AspectRatio: f.AspectRatio,
		Title:       f.Title,
		Description: f.Description,
		PostURL:     f.PostURL,
		Buttons:     buttons,
	}
	if f.State != nil {
		out.State = &State{LastFID: f.State.LastFID}
	}
	if s := f.Score; s != nil {
		out.Score = &Score{
			Username:           s.Profile.Username,
			FID:                s.Profile.FID,
			ProfileImageURL:    s.Profile.ProfileImageURL,
			WeeklyAllowance:    s.WeeklyAllowance,
			RemainingAllowance: s.RemainingAllowance,
			Masks:              s.Masks,
			MasksValue:         s.MasksValue,
			Rank:               s.Rank,
			UnitPrice:          s.UnitPrice,
		}
	}
	return out
}
