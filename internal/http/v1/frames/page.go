package frames

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	framesvc "github.com/janisto/masks-frame/internal/service/frame"
)

const (
	htmlContentType = "text/html; charset=utf-8"
	frameVersion    = "vNext"
)

// renderPage writes f as an HTML document whose meta tags describe the frame.
func renderPage(f *framesvc.Frame) ([]byte, error) {
	head, err := frameMeta(f)
	if err != nil {
		return nil, err
	}
	page := c.HTML5(c.HTML5Props{
		Title:       f.Title,
		Description: f.Description,
		Language:    "en",
		Head:        head,
		Body: []g.Node{
			h.H1(g.Text(f.Title)),
			h.P(g.Text(f.Description)),
		},
	})

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering frame page: %w", err)
	}
	return buf.Bytes(), nil
}

func frameMeta(f *framesvc.Frame) ([]g.Node, error) {
	nodes := []g.Node{
		meta("fc:frame", frameVersion),
		meta("fc:frame:image", f.Image),
		meta("fc:frame:image:aspect_ratio", f.AspectRatio),
		meta("fc:frame:post_url", f.PostURL),
		meta("og:image", f.Image),
		meta("og:title", f.Title),
	}
	for i, b := range f.Buttons {
		key := "fc:frame:button:" + strconv.Itoa(i+1)
		nodes = append(nodes,
			meta(key, b.Label),
			meta(key+":action", string(b.Action)),
			meta(key+":target", b.Target),
		)
	}
	if f.State != nil {
		state, err := json.Marshal(f.State)
		if err != nil {
			return nil, fmt.Errorf("encoding frame state: %w", err)
		}
		nodes = append(nodes, meta("fc:frame:state", string(state)))
	}
	return nodes, nil
}

func meta(property, content string) g.Node {
	return h.Meta(g.Attr("property", property), h.Content(content))
}
