package quran

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseFor(arabic, translation string, surah, inSurah int) string {
	return fmt.Sprintf(`{
		"code": 200,
		"status": "OK",
		"data": [
			{"text": %q, "numberInSurah": %d, "surah": {"number": %d}},
			{"text": %q, "numberInSurah": %d, "surah": {"number": %d}}
		]
	}`, arabic, inSurah, surah, translation, inSurah, surah)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("fa.ansarian")
	c.baseURL = srv.URL
	c.probeURL = srv.URL
	return c
}

func TestFetch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ayah/262/editions/quran-simple,fa.ansarian", r.URL.Path)
		fmt.Fprint(w, responseFor("بِسْمِ اللَّهِ", "به نام خدا", 2, 255))
	})

	ayah, err := c.Fetch(context.Background(), 262)
	require.NoError(t, err)

	assert.Equal(t, 262, ayah.Number)
	assert.Equal(t, "بِسْمِ اللَّهِ", ayah.Arabic)
	assert.Equal(t, "به نام خدا", ayah.Translation)
	assert.Equal(t, "Quran 2:255", ayah.Reference())
}

func TestFetchOutOfRange(t *testing.T) {
	c := NewClient("fa.ansarian")

	_, err := c.Fetch(context.Background(), 0)
	assert.Error(t, err)

	_, err = c.Fetch(context.Background(), TotalAyahs+1)
	assert.Error(t, err)
}

func TestFetchHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := c.Fetch(context.Background(), 1)
	assert.ErrorContains(t, err, "HTTP")
}

func TestFetchMissingEdition(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": 200, "status": "OK", "data": [{"text": "x", "numberInSurah": 1, "surah": {"number": 1}}]}`)
	})

	_, err := c.Fetch(context.Background(), 1)
	assert.ErrorContains(t, err, "expected 2 editions")
}

func TestFetchRandomRetriesUntilShortEnough(t *testing.T) {
	long := strings.Repeat("و", 300)
	var requests int

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			fmt.Fprint(w, responseFor(long, long, 2, 1))
			return
		}
		fmt.Fprint(w, responseFor("قل هو الله أحد", "بگو او خداى يگانه است", 112, 1))
	})
	c.randInt = func(n int) int { return 41 } // deterministic

	ayah, err := c.FetchRandom(context.Background(), 250)
	require.NoError(t, err)

	assert.Equal(t, 3, requests)
	assert.LessOrEqual(t, utf8.RuneCountInString(ayah.Message()), 250)
	assert.Equal(t, "Quran 112:1", ayah.Reference())
}

func TestFetchRandomGivesUpAfterBoundedAttempts(t *testing.T) {
	long := strings.Repeat("و", 600)
	var requests int

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, responseFor(long, long, 2, 1))
	})
	c.randInt = func(n int) int { return 0 }

	_, err := c.FetchRandom(context.Background(), 250)
	assert.Error(t, err)
	assert.Equal(t, maxFetchAttempts, requests)
}

func TestFetchRandomHonorsContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, responseFor(strings.Repeat("و", 600), "x", 2, 1))
	})
	c.randInt = func(n int) int { return 0 }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchRandom(ctx, 250)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOnline(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	assert.True(t, c.Online(context.Background()))

	offline := NewClient("fa.ansarian")
	offline.probeURL = "http://127.0.0.1:1"
	offline.probe = &http.Client{Timeout: 200 * time.Millisecond}
	assert.False(t, offline.Online(context.Background()))
}

func TestMessageFormat(t *testing.T) {
	a := Ayah{
		Number:        262,
		Arabic:        "arabic text",
		Translation:   "translation text",
		Surah:         2,
		NumberInSurah: 255,
	}

	assert.Equal(t, "arabic text\n\ntranslation text\n— Quran 2:255", a.Message())
	assert.Equal(t, "https://cdn.islamic.network/quran/audio/128/ar.alafasy/262.mp3", a.AudioURL())
}
