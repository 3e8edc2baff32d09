package frame

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
)

const (
	imageSize     = 1080
	svgDataPrefix = "data:image/svg+xml;base64,"

	colorText   = "#ffffff"
	colorAccent = "#F7E470"
	colorPaper  = "#fdf2f8"
)

// renderScoreImage draws the score card as SVG and returns it as a data URI.
func renderScoreImage(s *Score) (string, error) {
	var buf bytes.Buffer
	if err := scoreCard(s).Render(&buf); err != nil {
		return "", fmt.Errorf("rendering score card: %w", err)
	}
	return svgDataPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func scoreCard(s *Score) g.Node {
	size := strconv.Itoa(imageSize)
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", size),
		g.Attr("height", size),
		g.Attr("viewBox", "0 0 "+size+" "+size),
		g.Attr("font-family", "sans-serif"),
		g.El("rect", g.Attr("width", size), g.Attr("height", size), g.Attr("fill", colorPaper)),
		g.El("image",
			g.Attr("href", ScoreBackgroundURL),
			g.Attr("width", size),
			g.Attr("height", size),
			g.Attr("preserveAspectRatio", "xMidYMid slice"),
		),
		g.If(s.Profile.ProfileImageURL != "",
			g.El("image",
				g.Attr("href", s.Profile.ProfileImageURL),
				g.Attr("x", "300"),
				g.Attr("y", "300"),
				g.Attr("width", "128"),
				g.Attr("height", "128"),
			),
		),
		text(444, 350, 50, "start", g.Text(s.Profile.Username)),
		text(444, 410, 40, "start", g.Text("FID: "+s.Profile.FID)),

		// Left column: allowances and the mask count.
		text(140, 560, 60, "start", g.Text(s.WeeklyAllowance)),
		text(140, 772, 60, "start", g.Text(s.RemainingAllowance)),
		text(140, 1020, 60, "start",
			g.Text(s.Masks+" "),
			g.El("tspan",
				g.Attr("font-size", "50"),
				g.Attr("fill", colorAccent),
				g.Text("("+s.MasksValue+")"),
			),
		),

		// Right column: rank and unit price.
		text(944, 560, 60, "end", g.Text(s.Rank)),
		text(944, 772, 60, "end", g.Text(s.UnitPrice)),
	)
}

func text(x, y, fontSize int, anchor string, children ...g.Node) g.Node {
	return g.El("text",
		g.Attr("x", strconv.Itoa(x)),
		g.Attr("y", strconv.Itoa(y)),
		g.Attr("font-size", strconv.Itoa(fontSize)),
		g.Attr("fill", colorText),
		g.Attr("text-anchor", anchor),
		g.Group(children),
	)
}
