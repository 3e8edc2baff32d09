package frames

// ActionPayload is the body a frame client posts when a button is pressed.
type ActionPayload struct {
	_             struct{}      `additionalProperties:"true"`
	UntrustedData UntrustedData `json:"untrustedData"         doc:"Interaction data as reported by the client"`
	TrustedData   *TrustedData  `json:"trustedData,omitempty" doc:"Signed interaction message"`
}

// UntrustedData carries the interaction fields of a frame action.
type UntrustedData struct {
	_           struct{} `additionalProperties:"true"`
	FID         int64    `json:"fid,omitempty"         doc:"fid of the user who pressed the button" example:"3"                                minimum:"0"`
	URL         string   `json:"url,omitempty"         doc:"URL of the frame"                        example:"https://masks.example/frames"`
	MessageHash string   `json:"messageHash,omitempty" doc:"Hash of the signed message"`
	Timestamp   int64    `json:"timestamp,omitempty"   doc:"Client timestamp in milliseconds"`
	Network     int      `json:"network,omitempty"     doc:"Network identifier"`
	ButtonIndex int      `json:"buttonIndex,omitempty" doc:"1-based index of the pressed button"    example:"1"                                minimum:"0" maximum:"4"`
	CastID      *CastID  `json:"castId,omitempty"      doc:"Cast the frame was embedded in"`
	InputText   string   `json:"inputText,omitempty"   doc:"Text input value"`
	State       string   `json:"state,omitempty"       doc:"State carried over from the previous frame" example:"{\"lastFid\":\"3\"}"`
}

// CastID identifies a cast.
type CastID struct {
	_    struct{} `additionalProperties:"true"`
	FID  int64    `json:"fid"  doc:"Author fid"`
	Hash string   `json:"hash" doc:"Cast hash"`
}

// TrustedData carries the signed frame message. It is accepted but not verified.
type TrustedData struct {
	_            struct{} `additionalProperties:"true"`
	MessageBytes string   `json:"messageBytes" doc:"Hex encoded signed message"`
}

// Frame is the structured representation of a rendered frame.
type Frame struct {
	View        string   `json:"view"            doc:"Rendered view"                      enum:"splash,score" example:"score"`
	Image       string   `json:"image"           doc:"Image URL or SVG data URI"`
	AspectRatio string   `json:"aspectRatio"     doc:"Image aspect ratio"                 example:"1:1"`
	Title       string   `json:"title"           doc:"Frame title"                        example:"Masks Stats Frame"`
	Description string   `json:"description"     doc:"Frame description"`
	PostURL     string   `json:"postUrl"         doc:"Default post target"                example:"https://masks.example/frames?userfid=3"`
	Buttons     []Button `json:"buttons"         doc:"Frame buttons"`
	State       *State   `json:"state,omitempty" doc:"State carried into the next action"`
	Score       *Score   `json:"score,omitempty" doc:"Score card data, score view only"`
}

// Button is a frame action button.
type Button struct {
	Label  string `json:"label"  doc:"Button label"  example:"Check Masks"`
	Action string `json:"action" doc:"Button action" enum:"post,link"   example:"post"`
	Target string `json:"target" doc:"Button target" example:"https://masks.example/frames?userfid=3"`
}

// State is carried between frame interactions.
type State struct {
	LastFID string `json:"lastFid" doc:"Last resolved fid" example:"3"`
}

// Score is the formatted score card data.
type Score struct {
	Username           string `json:"username"           doc:"Profile name"                example:"dwr.eth"`
	FID                string `json:"fid"                doc:"Profile fid"                 example:"3"`
	ProfileImageURL    string `json:"profileImageUrl"    doc:"Profile image URL"`
	WeeklyAllowance    string `json:"weeklyAllowance"    doc:"Weekly allowance"            example:"50,000"`
	RemainingAllowance string `json:"remainingAllowance" doc:"Remaining allowance"         example:"12,500"`
	Masks              string `json:"masks"              doc:"Masks held"                  example:"1,234,567"`
	MasksValue         string `json:"masksValue"         doc:"USD value of the masks held" example:"$12.123"`
	Rank               string `json:"rank"               doc:"Leaderboard rank"            example:"#12"`
	UnitPrice          string `json:"unitPrice"          doc:"USD price of one mask"       example:"$0.00000982"`
}
