package frame

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	applog "github.com/janisto/masks-frame/internal/platform/logging"
)

// fidParam is the query parameter carrying a fid in frame URLs.
const fidParam = "userfid"

// ResolveFID picks the fid to show, first match wins: requester, URL
// parameter, carried-over state. It returns "" when none is available.
func ResolveFID(ctx context.Context, req Request) string {
	if req.RequesterFID > 0 {
		fid := strconv.FormatInt(req.RequesterFID, 10)
		applog.LogInfo(ctx, "using requester fid", zap.String("fid", fid))
		return fid
	}
	if req.URL != "" {
		if fid := fidFromURL(ctx, req.URL); fid != "" {
			applog.LogInfo(ctx, "using fid from url", zap.String("fid", fid))
			return fid
		}
	}
	if st, ok := ParseState(req.State); ok && st.LastFID != "" {
		applog.LogInfo(ctx, "using fid from state", zap.String("fid", st.LastFID))
		return st.LastFID
	}
	applog.LogInfo(ctx, "no fid resolved")
	return ""
}

func fidFromURL(ctx context.Context, raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		applog.LogWarn(ctx, "unparseable frame url", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(u.Query().Get(fidParam))
}

// ParseState decodes carried-over state. Clients send it either as the JSON
// we emitted or URL-encoded; anything else is ignored.
func ParseState(raw string) (State, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return State{}, false
	}
	var st State
	if err := json.Unmarshal([]byte(raw), &st); err == nil {
		return st, true
	}
	unescaped, err := url.QueryUnescape(raw)
	if err != nil {
		return State{}, false
	}
	if err := json.Unmarshal([]byte(unescaped), &st); err != nil {
		return State{}, false
	}
	return st, true
}
