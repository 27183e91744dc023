// Package quran fetches verses from the AlQuran Cloud API.
package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// TotalAyahs is the number of ayahs in the Quran and the upper bound
// for global ayah numbers.
const TotalAyahs = 6236

const (
	defaultBaseURL  = "https://api.alquran.cloud/v1"
	defaultProbeURL = "https://www.google.com"
	audioURLFormat  = "https://cdn.islamic.network/quran/audio/128/ar.alafasy/%d.mp3"

	// ArabicEdition is the edition carrying the plain Arabic text.
	ArabicEdition = "quran-simple"
)

// maxFetchAttempts bounds the retry loop so an unreachable length
// constraint cannot spin forever.
const maxFetchAttempts = 12

// Ayah is a single verse with its translation.
type Ayah struct {
	Number        int    // global ayah number, 1..TotalAyahs
	Arabic        string // Arabic text
	Translation   string // translation text
	Surah         int    // surah number
	NumberInSurah int    // ayah number within the surah
}

// Reference returns the citation line, e.g. "Quran 2:255".
func (a Ayah) Reference() string {
	return fmt.Sprintf("Quran %d:%d", a.Surah, a.NumberInSurah)
}

// Message returns the full display message used for the length check:
// Arabic text, translation and the reference line.
func (a Ayah) Message() string {
	return fmt.Sprintf("%s\n\n%s\n— %s", a.Arabic, a.Translation, a.Reference())
}

// AudioURL returns the recitation MP3 URL for this ayah.
func (a Ayah) AudioURL() string {
	return fmt.Sprintf(audioURLFormat, a.Number)
}

// Client talks to the AlQuran Cloud API.
type Client struct {
	httpClient *http.Client
	probe      *http.Client
	baseURL    string
	probeURL   string
	edition    string

	// randInt is swappable in tests; returns a value in [0, n).
	randInt func(n int) int
}

// NewClient creates a client requesting the given translation edition
// alongside the Arabic text.
func NewClient(edition string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		probe:      &http.Client{Timeout: 3 * time.Second},
		baseURL:    defaultBaseURL,
		probeURL:   defaultProbeURL,
		edition:    edition,
		randInt:    rand.IntN,
	}
}

// Online reports whether the network looks reachable. The probe keeps
// the retry loop from hammering the API while offline.
func (c *Client) Online(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.probeURL, nil)
	if err != nil {
		return false
	}
	resp, err := c.probe.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

// editionData mirrors one edition entry of the API response.
type editionData struct {
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
	Surah         struct {
		Number int `json:"number"`
	} `json:"surah"`
}

// apiResponse mirrors the /ayah/{n}/editions/... response envelope.
type apiResponse struct {
	Code   int           `json:"code"`
	Status string        `json:"status"`
	Data   []editionData `json:"data"`
}

// Fetch retrieves a single ayah by its global number.
func (c *Client) Fetch(ctx context.Context, number int) (Ayah, error) {
	if number < 1 || number > TotalAyahs {
		return Ayah{}, fmt.Errorf("ayah number %d out of range [1, %d]", number, TotalAyahs)
	}

	editions := strings.Join([]string{ArabicEdition, c.edition}, ",")
	url := fmt.Sprintf("%s/ayah/%d/editions/%s", c.baseURL, number, editions)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Ayah{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Ayah{}, fmt.Errorf("fetching ayah %d: %w", number, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Ayah{}, fmt.Errorf("fetching ayah %d: HTTP %s", number, resp.Status)
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Ayah{}, fmt.Errorf("decoding ayah %d: %w", number, err)
	}

	if len(parsed.Data) < 2 {
		return Ayah{}, fmt.Errorf("ayah %d: expected 2 editions, got %d", number, len(parsed.Data))
	}

	arabic := parsed.Data[0]
	translation := parsed.Data[1]

	return Ayah{
		Number:        number,
		Arabic:        arabic.Text,
		Translation:   translation.Text,
		Surah:         arabic.Surah.Number,
		NumberInSurah: arabic.NumberInSurah,
	}, nil
}

// FetchRandom picks random ayahs until one's display message fits in
// maxLength runes, and returns it. Attempts are bounded; the last
// error (or a too-long error) is returned if no ayah fits.
func (c *Client) FetchRandom(ctx context.Context, maxLength int) (Ayah, error) {
	var lastErr error

	for attempt := 0; attempt < maxFetchAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return Ayah{}, ctx.Err()
		default:
		}

		number := c.randInt(TotalAyahs) + 1

		ayah, err := c.Fetch(ctx, number)
		if err != nil {
			lastErr = err
			continue
		}

		if utf8.RuneCountInString(ayah.Message()) <= maxLength {
			return ayah, nil
		}
		lastErr = fmt.Errorf("ayah %d: message exceeds %d characters", number, maxLength)
	}

	return Ayah{}, fmt.Errorf("no ayah within length bound after %d attempts: %w", maxFetchAttempts, lastErr)
}
