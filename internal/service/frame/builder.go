package frame

import (
	"cmp"
	"context"
	"fmt"

	"go.uber.org/zap"

	applog "github.com/janisto/masks-frame/internal/platform/logging"
	"github.com/janisto/masks-frame/internal/service/farscore"
	"github.com/janisto/masks-frame/internal/service/masks"
)

// Options holds the URLs the builder writes into buttons.
type Options struct {
	// FrameURL is where "Check Masks" posts back to.
	FrameURL string
	// ShareEmbedURL is the frame embedded in a shared cast.
	ShareEmbedURL string
	// ComposerURL opens the cast composer.
	ComposerURL string
}

// Builder assembles frames from the profile and stats services.
type Builder struct {
	profiles farscore.Service
	stats    masks.Service
	opts     Options
}

// NewBuilder creates a frame builder.
func NewBuilder(profiles farscore.Service, stats masks.Service, opts Options) *Builder {
	return &Builder{
		profiles: profiles,
		stats:    stats,
		opts:     opts,
	}
}

// Build runs one frame interaction. Profile lookup failures degrade to the
// splash view; stats failures are returned and no frame is produced.
func (b *Builder) Build(ctx context.Context, req Request) (*Frame, error) {
	fid := ResolveFID(ctx, req)
	if fid != "" {
		ctx = applog.WithFields(ctx, zap.String("fid", fid))
	}

	// Nothing survives between requests, so a resolved fid never has a
	// profile in hand yet and is always looked up.
	var (
		profile Profile
		found   bool
	)
	if fid != "" {
		profile, found = b.lookupProfile(ctx, fid)
	}

	balance, err := b.stats.GetBalance(ctx, fid)
	if err != nil {
		applog.LogError(ctx, "balance lookup failed", err)
		return nil, fmt.Errorf("fetching balance: %w", err)
	}
	rank, err := b.stats.GetRank(ctx, fid)
	if err != nil {
		applog.LogError(ctx, "rank lookup failed", err)
		return nil, fmt.Errorf("fetching rank: %w", err)
	}

	f := &Frame{
		View:        ViewSplash,
		Image:       SplashImageURL,
		Buttons:     b.buttons(fid, found),
		PostURL:     withFID(b.opts.FrameURL, fid),
		AspectRatio: AspectRatio,
		Title:       Title,
		Description: Description,
	}
	if fid != "" {
		f.State = &State{LastFID: fid}
	}
	if fid != "" && found {
		score := newScore(profile, balance, rank)
		img, err := renderScoreImage(score)
		if err != nil {
			return nil, err
		}
		f.View = ViewScore
		f.Image = img
		f.Score = score
	}
	applog.LogInfo(ctx, "frame built", zap.String("view", string(f.View)), zap.Int("buttons", len(f.Buttons)))
	return f, nil
}

// lookupProfile fetches the profile for fid. The bool is false when the
// lookup failed for any reason; the reason is only logged.
func (b *Builder) lookupProfile(ctx context.Context, fid string) (Profile, bool) {
	social, err := b.profiles.GetSocial(ctx, fid)
	if err != nil {
		applog.LogWarn(ctx, "profile lookup failed", zap.Error(err))
		return Profile{}, false
	}
	return Profile{
		Username:        cmp.Or(social.ProfileName, "unknown"),
		FID:             cmp.Or(social.UserID, "N/A"),
		ProfileImageURL: social.ProfileImage,
	}, true
}

func newScore(p Profile, balance *masks.Balance, rank *masks.Rank) *Score {
	value := notANumber
	if count, ok := balance.Masks.Float64(); ok {
		value = "$" + FormatNumber(count*UnitPrice)
	}
	return &Score{
		Profile:            p,
		WeeklyAllowance:    formatAmount(balance.WeeklyAllowance),
		RemainingAllowance: formatAmount(balance.RemainingAllowance),
		Masks:              formatAmount(balance.Masks),
		MasksValue:         value,
		Rank:               "#" + formatAmount(rank.Rank),
		UnitPrice:          "$" + formatPrice(UnitPrice),
	}
}
