package frame

import (
	"net/url"
	"strings"
)

// buttons always offers "Check Masks"; "Share" only when a profile resolved.
// Without a fid the check target carries no userfid parameter at all.
func (b *Builder) buttons(fid string, withShare bool) []Button {
	buttons := []Button{{
		Label:  CheckLabel,
		Action: ActionPost,
		Target: withFID(b.opts.FrameURL, fid),
	}}
	if withShare {
		buttons = append(buttons, Button{
			Label:  ShareLabel,
			Action: ActionLink,
			Target: b.shareURL(fid),
		})
	}
	return buttons
}

func (b *Builder) shareURL(fid string) string {
	return b.opts.ComposerURL +
		"?text=" + encodeURIComponent(ShareText) +
		"&embeds[]=" + encodeURIComponent(withFID(b.opts.ShareEmbedURL, fid))
}

func withFID(base, fid string) string {
	if fid == "" {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + fidParam + "=" + url.QueryEscape(fid)
}

// encodeURIComponent escapes s for a query value with spaces as %20.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
