// Package frame builds the Masks stats frame: it resolves who is asking,
// gathers their profile and Masks statistics and assembles the image and
// buttons a frame client renders.
package frame

const (
	// UnitPrice is the fixed USD price of one mask used for display.
	UnitPrice = 0.00000982

	SplashImageURL     = "https://i.imgur.com/0lT4XCb.png"
	ScoreBackgroundURL = "https://i.imgur.com/qYTbNxG.png"

	AspectRatio = "1:1"
	Title       = "Masks Stats Frame"
	Description = "Use this frame to check your Masks Stats"

	CheckLabel = "Check Masks"
	ShareLabel = "Share"
	ShareText  = "🎭 Check your MASKS STATS 🎭"
)

// Request is what the frame client told us about the interaction.
type Request struct {
	// RequesterFID is the fid of the user who pressed a button; 0 when unknown.
	RequesterFID int64
	// URL is the URL the request was made to. It may be relative.
	URL string
	// State is the raw state string carried over from the previous frame.
	State string
}

// State is carried between frame interactions.
type State struct {
	LastFID string `json:"lastFid,omitempty"`
}

// Profile is the display identity of a resolved user.
type Profile struct {
	Username        string
	FID             string
	ProfileImageURL string
}

// View selects which image the frame shows.
type View string

const (
	ViewSplash View = "splash"
	ViewScore  View = "score"
)

// ButtonAction is the frame button action kind.
type ButtonAction string

const (
	ActionPost ButtonAction = "post"
	ActionLink ButtonAction = "link"
)

// Button is a frame action button.
type Button struct {
	Label  string
	Action ButtonAction
	Target string
}

// Score is the formatted data shown on the score card.
type Score struct {
	Profile            Profile
	WeeklyAllowance    string
	RemainingAllowance string
	Masks              string
	MasksValue         string
	Rank               string
	UnitPrice          string
}

// Frame is the assembled response.
type Frame struct {
	View View
	// Image is a URL for the splash view and an SVG data URI for the score view.
	Image   string
	Score   *Score
	Buttons []Button
	// PostURL receives button posts that carry no target of their own.
	PostURL     string
	AspectRatio string
	Title       string
	Description string
	// State is carried into the next interaction; nil when no fid was resolved.
	State *State
}
