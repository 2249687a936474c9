package download

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"mgd/internal/domain"
	"mgd/internal/sharedhttp"
	"mgd/internal/utils"
)

// ManifestSource fetches the page manifest for a chapter id.
type ManifestSource interface {
	Manifest(ctx context.Context, id string) (domain.PageManifest, error)
}

// ChapterDownloader downloads whole chapters. It satisfies
// domain.Downloader with a Ready that never blocks; wrap it in a
// Throttle to pace admissions.
type ChapterDownloader struct {
	source ManifestSource
	client *http.Client
}

func NewChapterDownloader(source ManifestSource) *ChapterDownloader {
	return &ChapterDownloader{
		source: source,
		client: sharedhttp.NewClient(60 * time.Second),
	}
}

func (d *ChapterDownloader) Ready(_ context.Context) error {
	return nil
}

// Download fetches the page manifest for the requested chapter and
// downloads all pages concurrently into req.Path. Every page is
// attempted regardless of failures elsewhere in the chapter; once all
// attempts finish, the first failure in page order is returned.
// Nothing is written when the manifest fetch fails.
func (d *ChapterDownloader) Download(ctx context.Context, req domain.ChapterRequest) error {
	manifest, err := d.source.Manifest(ctx, req.ID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(req.Path, os.ModePerm); err != nil {
		return &domain.IOError{Op: "create dir", Path: req.Path, Err: err}
	}

	pages := manifest.Files(req.DataSaver)
	width := utils.DigitWidth(len(pages))

	var wg sync.WaitGroup
	pageErrs := make([]error, len(pages))

	for i, page := range pages {
		wg.Add(1)

		i, page := i, page

		go func() {
			defer wg.Done()

			ext := ".jpg"
			if strings.Contains(page, ".png") {
				ext = ".png"
			}

			filename := filepath.Join(req.Path, fmt.Sprintf("page_%0*d%s", width, i, ext))
			pageErrs[i] = d.downloadPage(ctx, manifest.PageURL(req.DataSaver, page), filename)
		}()
	}
	wg.Wait()

	for _, err := range pageErrs {
		if err != nil {
			return err
		}
	}

	return nil
}

// downloadPage streams a single page to disk. Failures past the
// creation of the file can leave a partial page behind.
func (d *ChapterDownloader) downloadPage(ctx context.Context, url, filename string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", sharedhttp.UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return &domain.RequestError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if !sharedhttp.Success(resp.StatusCode) {
		return &domain.RequestError{URL: url, StatusCode: resp.StatusCode}
	}

	out, err := os.Create(filename)
	if err != nil {
		return &domain.IOError{Op: "create", Path: filename, Err: err}
	}
	defer out.Close()

	readBuf := bufio.NewReader(resp.Body)
	writeBuf := bufio.NewWriter(out)
	defer writeBuf.Flush()

	if _, err := io.Copy(writeBuf, readBuf); err != nil {
		return &domain.IOError{Op: "write", Path: filename, Err: err}
	}

	return nil
}
