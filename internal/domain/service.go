package domain

import "context"

// Downloader accepts chapter download requests. Ready must be awaited
// before every Download call; implementations may block in it to delay
// admission of the next request.
type Downloader interface {
	Ready(ctx context.Context) error
	Download(ctx context.Context, req ChapterRequest) error
}

// ChapterRequest describes one chapter download. Construct it with
// NewChapterRequest, adjust the fields and pass it by value; a request
// is consumed exactly once.
type ChapterRequest struct {
	ID        string
	DataSaver bool
	Path      string
}

func NewChapterRequest(id string) ChapterRequest {
	return ChapterRequest{
		ID:        id,
		DataSaver: true,
		Path:      ".",
	}
}
