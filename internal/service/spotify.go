package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Track is a normalized search result from the Spotify catalog.
type Track struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	AlbumImageURL string `json:"album_image_url"`
	SongURL       string `json:"song_url"`
	PreviewURL    string `json:"preview_url"`
}

// SpotifyClient performs catalog searches using the client-credentials flow.
// Tokens are cached in memory until shortly before expiry.
type SpotifyClient struct {
	clientID     string
	clientSecret string
	accountsURL  string
	apiURL       string
	httpClient   *http.Client
	now          func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewSpotifyClient creates a new SpotifyClient. accountsURL and apiURL
// default to the public Spotify endpoints when empty.
func NewSpotifyClient(clientID, clientSecret, accountsURL, apiURL string) *SpotifyClient {
	if accountsURL == "" {
		accountsURL = "https://accounts.spotify.com"
	}
	if apiURL == "" {
		apiURL = "https://api.spotify.com"
	}
	return &SpotifyClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		accountsURL:  accountsURL,
		apiURL:       apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

// Configured reports whether client credentials are present.
func (c *SpotifyClient) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// getToken returns a cached access token, requesting a fresh one when the
// cache is empty or expired.
func (c *SpotifyClient) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.accountsURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+basic)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	var tokenResp struct {
		AccessToken      string `json:"access_token"`
		ExpiresIn        int    `json:"expires_in"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		if tokenResp.ErrorDescription != "" {
			return "", fmt.Errorf("token request rejected: %s", tokenResp.ErrorDescription)
		}
		return "", fmt.Errorf("token request returned no access token")
	}

	c.token = tokenResp.AccessToken
	// Renew a minute early so in-flight searches don't race expiry.
	c.tokenExpiry = c.now().Add(time.Duration(tokenResp.ExpiresIn-60) * time.Second)
	return c.token, nil
}

type spotifySearchResponse struct {
	Tracks struct {
		Items []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
			Album struct {
				Images []struct {
					URL string `json:"url"`
				} `json:"images"`
			} `json:"album"`
			ExternalURLs struct {
				Spotify string `json:"spotify"`
			} `json:"external_urls"`
			PreviewURL string `json:"preview_url"`
		} `json:"items"`
	} `json:"tracks"`
}

// SearchTracks searches the catalog for the query and returns up to five
// normalized tracks. Failures are logged and surface as an empty result so
// the dashboard search box degrades quietly.
func (c *SpotifyClient) SearchTracks(ctx context.Context, query string) []Track {
	if !c.Configured() {
		log.Printf("[Spotify] Client credentials not configured, returning empty results")
		return []Track{}
	}

	token, err := c.getToken(ctx)
	if err != nil {
		log.Printf("[Spotify] Auth error: %v", err)
		return []Track{}
	}

	searchURL := fmt.Sprintf("%s/v1/search?q=%s&type=track&limit=5", c.apiURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		log.Printf("[Spotify] Search error: %v", err)
		return []Track{}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[Spotify] Search error: %v", err)
		return []Track{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Spotify] Search returned status %d", resp.StatusCode)
		return []Track{}
	}

	var parsed spotifySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("[Spotify] Search decode error: %v", err)
		return []Track{}
	}

	tracks := make([]Track, 0, len(parsed.Tracks.Items))
	for _, item := range parsed.Tracks.Items {
		track := Track{
			ID:         item.ID,
			Title:      item.Name,
			SongURL:    item.ExternalURLs.Spotify,
			PreviewURL: item.PreviewURL,
		}
		names := make([]string, 0, len(item.Artists))
		for _, a := range item.Artists {
			names = append(names, a.Name)
		}
		track.Artist = strings.Join(names, ", ")
		if len(item.Album.Images) > 0 {
			track.AlbumImageURL = item.Album.Images[0].URL
		}
		tracks = append(tracks, track)
	}
	return tracks
}
