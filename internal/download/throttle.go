package download

import (
	"context"
	"time"

	"mgd/internal/domain"

	"golang.org/x/time/rate"
)

// Throttle decorates a Downloader so that at most n downloads may
// start within any window of length per. Ready blocks until the
// limiter grants a slot; a download is never delayed or paused once
// admitted.
type Throttle struct {
	inner   domain.Downloader
	limiter *rate.Limiter
}

func NewThrottle(inner domain.Downloader, n int, per time.Duration) *Throttle {
	if n < 1 {
		n = 1
	}

	return &Throttle{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Every(per/time.Duration(n)), n),
	}
}

func (t *Throttle) Ready(ctx context.Context) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}

	return t.inner.Ready(ctx)
}

func (t *Throttle) Download(ctx context.Context, req domain.ChapterRequest) error {
	return t.inner.Download(ctx, req)
}
