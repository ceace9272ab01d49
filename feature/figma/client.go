package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TokenHeader carries the personal access token.
const TokenHeader = "X-Figma-Token"

// ErrNoFrames is returned when none of the documents contains a frame.
var ErrNoFrames = errors.New("no frames found: check your file id and document ids")

// Client talks to the Figma REST API.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	logger  *zap.Logger
}

// NewClient creates a Figma client from the configuration.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   cfg.Token,
		logger:  logger,
	}
}

// GetFrames returns the FRAME children of every document node, in document order.
func (c *Client) GetFrames(ctx context.Context, fileID string, documentIDs []string) ([]Node, error) {
	var frames []Node

	for _, documentID := range documentIDs {
		endpoint := fmt.Sprintf("%s/files/%s/nodes?ids=%s", c.baseURL, url.PathEscape(fileID), url.QueryEscape(documentID))
		c.logger.Info("Getting frames", zap.String("document_id", documentID), zap.String("url", endpoint))

		var page Page
		if err := c.getJSON(ctx, endpoint, &page); err != nil {
			return nil, fmt.Errorf("failed to get frames of document %s (check the values of your configuration): %w", documentID, err)
		}

		doc, ok := page.Nodes[documentID]
		if !ok {
			c.logger.Warn("Document not found in file", zap.String("document_id", documentID))
			continue
		}
		for _, child := range doc.Document.Children {
			if child.Type == NodeFrame {
				frames = append(frames, child)
			}
		}
	}

	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return frames, nil
}

// GetImageURLs renders the given node ids at scale in format and returns their download URLs.
func (c *Client) GetImageURLs(ctx context.Context, fileID string, ids []string, scale int, format string) (*ImageURLCollection, error) {
	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	query.Set("scale", strconv.Itoa(scale))
	query.Set("format", format)
	endpoint := fmt.Sprintf("%s/images/%s?%s", c.baseURL, url.PathEscape(fileID), query.Encode())

	var collection ImageURLCollection
	if err := c.getJSON(ctx, endpoint, &collection); err != nil {
		return nil, err
	}
	if collection.Err != nil && *collection.Err != "" {
		return nil, fmt.Errorf("figma API error: %s", *collection.Err)
	}
	return &collection, nil
}

type imageRequest struct {
	ids    []string
	scale  int
	format string
}

// GetImages resolves download URLs for every frame in every applicable (scale, format).
// Frames named with a known extension use that format only; the others use every format.
// Requests run concurrently; a failed request is logged and its images are skipped.
func (c *Client) GetImages(ctx context.Context, fileID string, frames []Node, scales []int, formats []string, force bool) []Image {
	groups := GroupFrames(frames, force)

	var requests []imageRequest
	for _, scale := range scales {
		for _, group := range Groups {
			ids := groups[group]
			if len(ids) == 0 {
				continue
			}
			if group != GroupFree {
				requests = append(requests, imageRequest{ids: ids, scale: scale, format: group})
				continue
			}
			for _, format := range formats {
				requests = append(requests, imageRequest{ids: ids, scale: scale, format: format})
			}
		}
	}

	byID := make(map[string]Node, len(frames))
	for _, f := range frames {
		byID[f.ID] = f
	}

	results := make([][]Image, len(requests))
	g, gctx := errgroup.WithContext(ctx)

	for i, req := range requests {
		g.Go(func() error {
			collection, err := c.GetImageURLs(gctx, fileID, req.ids, req.scale, req.format)
			if err != nil {
				c.logger.Error("Failed to get image URLs",
					zap.Int("scale", req.scale),
					zap.String("format", req.format),
					zap.Error(err))
				return nil
			}

			for _, id := range req.ids {
				link, ok := collection.Images[id]
				if !ok || link == "" {
					continue
				}
				frame := byID[id]
				results[i] = append(results[i], Image{
					ID:     id,
					Name:   ImageName(frame.Name, req.format),
					Scale:  req.scale,
					Format: req.format,
					URL:    link,
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	var images []Image
	for _, r := range results {
		images = append(images, r...)
	}
	return images
}

// Download streams the body of an image URL.
// The caller must close the returned reader.
func (c *Client) Download(ctx context.Context, link string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d downloading %s", resp.StatusCode, link)
	}
	return resp.Body, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set(TokenHeader, c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
