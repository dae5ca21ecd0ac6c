package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"crosswalk/internal/catalog"
)

var artistIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`open\.spotify\.com/artist/([a-zA-Z0-9]+)`),
	regexp.MustCompile(`spotify\.com/artist/([a-zA-Z0-9]+)`),
	regexp.MustCompile(`^([a-zA-Z0-9]{22})$`),
}

// ExtractArtistID pulls the artist identifier out of a share URL or accepts
// a bare 22-character ID.
func ExtractArtistID(input string) (string, error) {
	input = strings.TrimSpace(input)
	for _, pattern := range artistIDPatterns {
		if match := pattern.FindStringSubmatch(input); match != nil {
			return match[1], nil
		}
	}
	return "", fmt.Errorf("not a spotify artist url or id: %q", input)
}

// Client fetches artist catalogs from the Spotify Web API using the client
// credentials flow.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	authURL      string
	httpClient   *http.Client

	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the API and auth endpoints; the auth endpoint is
// derived from the same host. Intended for tests.
func WithBaseURL(apiURL, authURL string) Option {
	return func(c *Client) {
		if apiURL != "" {
			c.baseURL = strings.TrimRight(apiURL, "/")
		}
		if authURL != "" {
			c.authURL = authURL
		}
	}
}

// New creates a Spotify client.
func New(clientID, clientSecret string, opts ...Option) (*Client, error) {
	clientID = strings.TrimSpace(clientID)
	clientSecret = strings.TrimSpace(clientSecret)
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("spotify client id and secret required")
	}
	client := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      "https://api.spotify.com/v1",
		authURL:      "https://accounts.spotify.com/api/token",
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Authenticate obtains an access token via the client credentials flow.
func (c *Client) Authenticate(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute auth request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify auth returned %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode auth response: %w", err)
	}
	if payload.AccessToken == "" {
		return errors.New("spotify auth returned empty token")
	}
	c.token = payload.AccessToken
	return nil
}

type artistPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type pagedAlbums struct {
	Items []struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		ReleaseDate string `json:"release_date"`
	} `json:"items"`
	Next string `json:"next"`
}

type pagedTracks struct {
	Items []struct {
		ID          string `json:"id"`
		TrackNumber int    `json:"track_number"`
		DiscNumber  int    `json:"disc_number"`
	} `json:"items"`
	Next string `json:"next"`
}

type trackDetails struct {
	Tracks []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Artists []struct {
			Name string `json:"name"`
		} `json:"artists"`
		DurationMS  int `json:"duration_ms"`
		ExternalIDs struct {
			ISRC string `json:"isrc"`
		} `json:"external_ids"`
	} `json:"tracks"`
}

type albumContext struct {
	Album       string
	ReleaseDate string
	TrackNumber int
	DiscNumber  int
}

// FetchArtistCatalog collects every unique track across the artist's albums
// and singles, including ISRCs, as an ordered recording batch.
func (c *Client) FetchArtistCatalog(ctx context.Context, artistID string) (*catalog.Batch, error) {
	var artist artistPayload
	if err := c.get(ctx, c.baseURL+"/artists/"+artistID, &artist); err != nil {
		return nil, fmt.Errorf("fetch artist: %w", err)
	}

	albumsURL := c.baseURL + "/artists/" + artistID + "/albums?include_groups=album,single&limit=50&market=US"
	var order []string
	contexts := map[string]albumContext{}
	for albumsURL != "" {
		var page pagedAlbums
		if err := c.get(ctx, albumsURL, &page); err != nil {
			return nil, fmt.Errorf("fetch albums: %w", err)
		}
		for _, album := range page.Items {
			tracksURL := c.baseURL + "/albums/" + album.ID + "/tracks?limit=50&market=US"
			for tracksURL != "" {
				var tracks pagedTracks
				if err := c.get(ctx, tracksURL, &tracks); err != nil {
					return nil, fmt.Errorf("fetch album tracks: %w", err)
				}
				for _, track := range tracks.Items {
					if _, seen := contexts[track.ID]; seen {
						continue
					}
					order = append(order, track.ID)
					contexts[track.ID] = albumContext{
						Album:       album.Name,
						ReleaseDate: album.ReleaseDate,
						TrackNumber: track.TrackNumber,
						DiscNumber:  track.DiscNumber,
					}
				}
				tracksURL = tracks.Next
			}
		}
		albumsURL = page.Next
	}

	recordings := make([]catalog.Recording, 0, len(order))
	for start := 0; start < len(order); start += 50 {
		end := min(start+50, len(order))
		var details trackDetails
		detailsURL := c.baseURL + "/tracks?market=US&ids=" + strings.Join(order[start:end], ",")
		if err := c.get(ctx, detailsURL, &details); err != nil {
			return nil, fmt.Errorf("fetch track details: %w", err)
		}
		for _, track := range details.Tracks {
			if track.ID == "" {
				continue
			}
			info := contexts[track.ID]
			artists := make([]string, 0, len(track.Artists))
			for _, a := range track.Artists {
				artists = append(artists, a.Name)
			}
			recordings = append(recordings, catalog.Recording{
				ID:          track.ID,
				Title:       track.Name,
				Artists:     artists,
				Album:       info.Album,
				ISRC:        track.ExternalIDs.ISRC,
				DurationMS:  track.DurationMS,
				ReleaseDate: info.ReleaseDate,
				TrackNumber: info.TrackNumber,
				DiscNumber:  info.DiscNumber,
			})
		}
	}

	return &catalog.Batch{
		ArtistName: artist.Name,
		ArtistID:   artist.ID,
		Recordings: recordings,
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify api returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
