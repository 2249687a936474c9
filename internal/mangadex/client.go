package mangadex

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mgd/internal/domain"
	"mgd/internal/sharedhttp"

	"github.com/pkg/errors"
)

const apiURL = "https://api.mangadex.org"

type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient() *Client {
	return &Client{
		client:  sharedhttp.NewClient(60 * time.Second),
		baseURL: apiURL,
	}
}

// AggregateQuery filters the volume listing of a manga by scanlation
// group and translated language.
type AggregateQuery struct {
	MangaID   string
	Groups    []string
	Languages []string
}

// aggregateResponse decodes the two shapes the aggregate endpoint
// produces: "no volumes" comes back as an empty array where the
// volume mapping would be.
type aggregateResponse struct {
	Volumes map[string]volumeData
}

func (r *aggregateResponse) UnmarshalJSON(data []byte) error {
	var body struct {
		Volumes json.RawMessage `json:"volumes"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	volumes := bytes.TrimSpace(body.Volumes)
	switch {
	case len(volumes) > 0 && volumes[0] == '[':
		var marker []struct{}
		if err := json.Unmarshal(volumes, &marker); err != nil {
			return err
		}
		if len(marker) != 0 {
			return errors.New("volumes array is not empty")
		}

		r.Volumes = nil
		return nil
	case len(volumes) > 0 && volumes[0] == '{':
		return json.Unmarshal(volumes, &r.Volumes)
	default:
		return errors.New("volumes is neither a mapping nor an empty array")
	}
}

type volumeData struct {
	Volume   string                 `json:"volume"`
	Count    int                    `json:"count"`
	Chapters map[string]chapterData `json:"chapters"`
}

type chapterData struct {
	Chapter string   `json:"chapter"`
	ID      string   `json:"id"`
	Count   int      `json:"count"`
	Others  []string `json:"others"`
}

func (v volumeData) toDomain() domain.Volume {
	chapters := make(map[string]domain.Chapter, len(v.Chapters))
	for key, chapter := range v.Chapters {
		chapters[key] = domain.Chapter{
			ID:     chapter.ID,
			Number: domain.ParseNumber(chapter.Chapter),
			Count:  chapter.Count,
			Others: chapter.Others,
		}
	}

	return domain.Volume{
		Number:   domain.ParseNumber(v.Volume),
		Count:    v.Count,
		Chapters: chapters,
	}
}

// Aggregate fetches the volume and chapter listing of a manga. The
// order of the returned volumes is unspecified.
func (c *Client) Aggregate(ctx context.Context, query AggregateQuery) ([]domain.Volume, error) {
	path, err := url.JoinPath(c.baseURL, "manga", query.MangaID, "aggregate")
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(path)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	for _, group := range query.Groups {
		params.Add("group[]", group)
	}
	for _, language := range query.Languages {
		params.Add("translatedLanguage[]", language)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", sharedhttp.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.RequestError{URL: u.String(), Err: err}
	}
	defer resp.Body.Close()

	if !sharedhttp.Success(resp.StatusCode) {
		return nil, &domain.RequestError{URL: u.String(), StatusCode: resp.StatusCode}
	}

	var aggResp aggregateResponse
	if err := json.NewDecoder(bufio.NewReader(resp.Body)).Decode(&aggResp); err != nil {
		return nil, &domain.DecodeError{Err: err}
	}

	volumes := make([]domain.Volume, 0, len(aggResp.Volumes))
	for _, volume := range aggResp.Volumes {
		volumes = append(volumes, volume.toDomain())
	}

	return volumes, nil
}

type manifestResponse struct {
	BaseURL string `json:"baseUrl"`
	Chapter struct {
		Hash      string   `json:"hash"`
		Data      []string `json:"data"`
		DataSaver []string `json:"dataSaver"`
	} `json:"chapter"`
}

// Manifest fetches the page manifest for a chapter.
func (c *Client) Manifest(ctx context.Context, id string) (domain.PageManifest, error) {
	path, err := url.JoinPath(c.baseURL, "at-home/server", id)
	if err != nil {
		return domain.PageManifest{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return domain.PageManifest{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", sharedhttp.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.PageManifest{}, &domain.RequestError{URL: path, Err: err}
	}
	defer resp.Body.Close()

	if !sharedhttp.Success(resp.StatusCode) {
		return domain.PageManifest{}, &domain.RequestError{URL: path, StatusCode: resp.StatusCode}
	}

	var manifestResp manifestResponse
	if err := json.NewDecoder(bufio.NewReader(resp.Body)).Decode(&manifestResp); err != nil {
		return domain.PageManifest{}, &domain.DecodeError{Err: err}
	}

	return domain.PageManifest{
		BaseURL:   manifestResp.BaseURL,
		Hash:      manifestResp.Chapter.Hash,
		Data:      manifestResp.Chapter.Data,
		DataSaver: manifestResp.Chapter.DataSaver,
	}, nil
}
