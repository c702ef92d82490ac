// Package supabase reads and writes catalog tables through the Supabase
// PostgREST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
	"github.com/LXMachado/tinnie-house-revamp/internal/httpclient"
)

// APIError is a non-2xx response from the REST endpoint.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase API error (%d): %s", e.Status, e.Body)
}

// Client talks to /rest/v1 on a Supabase project.
type Client struct {
	baseURL string
	apiKey  string
	http    *httpclient.Client
}

// New creates a client. A nil hc gets a default rate-limited client.
func New(baseURL, apiKey string, hc *httpclient.Client) *Client {
	if hc == nil {
		hc = httpclient.NewClient(nil, constants.DefaultRequestInterval)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    hc,
	}
}

// Filter is a set of column equality filters.
type Filter map[string]string

func (c *Client) tableURL(table string, filters Filter, order string) string {
	params := url.Values{}
	params.Set("select", "*")
	for column, value := range filters {
		params.Set(column, "eq."+value)
	}
	if order != "" {
		params.Set("order", order)
	}
	return c.baseURL + "/rest/v1/" + table + "?" + params.Encode()
}

// Select runs a GET on table and decodes the rows into out.
func (c *Client) Select(ctx context.Context, table string, filters Filter, order string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.tableURL(table, filters, order), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(ctx, req, out)
}

// Insert posts row to table and decodes the created rows into out.
func (c *Client) Insert(ctx context.Context, table string, row any, out any) error {
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode %s row: %w", table, err)
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/rest/v1/"+table, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Prefer", "return=representation")
	return c.do(ctx, req, out)
}

func (c *Client) do(ctx context.Context, req *http.Request, out any) error {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", constants.MimeTypeJSON)
	req.Header.Set("Accept", constants.MimeTypeJSON)

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("supabase request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read supabase response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("[]")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode supabase response: %w", err)
	}
	return nil
}

func (c *Client) ListArtists(ctx context.Context) ([]domain.ArtistRecord, error) {
	artists := []domain.ArtistRecord{}
	if err := c.Select(ctx, constants.ArtistsTable, nil, "created_at.desc", &artists); err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

func (c *Client) GetArtist(ctx context.Context, id int64) (*domain.ArtistRecord, error) {
	var artists []domain.ArtistRecord
	if err := c.Select(ctx, constants.ArtistsTable, Filter{"id": strconv.FormatInt(id, 10)}, "", &artists); err != nil {
		return nil, fmt.Errorf("failed to get artist %d: %w", id, err)
	}
	if len(artists) == 0 {
		return nil, domain.ErrNotFound
	}
	return &artists[0], nil
}

func (c *Client) CreateArtist(ctx context.Context, a domain.NewArtist) (*domain.ArtistRecord, error) {
	var created []domain.ArtistRecord
	if err := c.Insert(ctx, constants.ArtistsTable, a, &created); err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}
	if len(created) == 0 {
		return nil, errEmptyInsert(constants.ArtistsTable)
	}
	return &created[0], nil
}

func (c *Client) ListReleases(ctx context.Context) ([]domain.ReleaseRecord, error) {
	releases := []domain.ReleaseRecord{}
	if err := c.Select(ctx, constants.ReleasesTable, nil, "digital_release_date.desc.nullslast,created_at.desc", &releases); err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}
	return releases, nil
}

func (c *Client) GetRelease(ctx context.Context, id int64) (*domain.ReleaseRecord, error) {
	var releases []domain.ReleaseRecord
	if err := c.Select(ctx, constants.ReleasesTable, Filter{"id": strconv.FormatInt(id, 10)}, "", &releases); err != nil {
		return nil, fmt.Errorf("failed to get release %d: %w", id, err)
	}
	if len(releases) == 0 {
		return nil, domain.ErrNotFound
	}
	return &releases[0], nil
}

func (c *Client) CreateRelease(ctx context.Context, r domain.NewRelease) (*domain.ReleaseRecord, error) {
	var created []domain.ReleaseRecord
	if err := c.Insert(ctx, constants.ReleasesTable, r, &created); err != nil {
		return nil, fmt.Errorf("failed to create release: %w", err)
	}
	if len(created) == 0 {
		return nil, errEmptyInsert(constants.ReleasesTable)
	}
	return &created[0], nil
}

func (c *Client) CreateContactSubmission(ctx context.Context, s domain.NewContactSubmission) (*domain.ContactSubmission, error) {
	if s.Type == "" {
		s.Type = constants.DefaultContactType
	}
	var created []domain.ContactSubmission
	if err := c.Insert(ctx, constants.ContactTable, s, &created); err != nil {
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}
	if len(created) == 0 {
		return nil, errEmptyInsert(constants.ContactTable)
	}
	return &created[0], nil
}

func (c *Client) ListContactSubmissions(ctx context.Context) ([]domain.ContactSubmission, error) {
	submissions := []domain.ContactSubmission{}
	if err := c.Select(ctx, constants.ContactTable, nil, "created_at.desc", &submissions); err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	return submissions, nil
}

func errEmptyInsert(table string) error {
	return errors.New("supabase returned no rows for " + table + " insert")
}
