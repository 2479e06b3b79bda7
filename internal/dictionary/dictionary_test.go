package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeAPI(t *testing.T, known map[string]bool) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		word := r.URL.Path[len("/"):]
		if known[word] {
			w.Write([]byte(`[{"word":"` + word + `"}]`))
			return
		}
		http.Error(w, `{"title":"No Definitions Found"}`, http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestIsWordLocalSets(t *testing.T) {
	// No server behind it; these must resolve without a network call.
	c := New("http://127.0.0.1:0")
	ctx := context.Background()

	assert.False(t, c.IsWord(ctx, ""))
	assert.False(t, c.IsWord(ctx, "a"))
	assert.True(t, c.IsWord(ctx, "aa"))
	assert.True(t, c.IsWord(ctx, " OK "))
	assert.False(t, c.IsWord(ctx, "zz"))
	assert.True(t, c.IsWord(ctx, "the"))
	assert.True(t, c.IsWord(ctx, "Through"))
}

func TestIsWordAsksAPI(t *testing.T) {
	srv := fakeAPI(t, map[string]bool{"zebra": true})
	c := New(srv.URL)
	ctx := context.Background()

	assert.True(t, c.IsWord(ctx, "zebra"))
	assert.True(t, c.IsWord(ctx, "  ZEBRA "))
	assert.False(t, c.IsWord(ctx, "zebraz"))
}

func TestIsWordFailsClosed(t *testing.T) {
	srv := fakeAPI(t, nil)
	srv.Close()
	c := New(srv.URL)

	assert.False(t, c.IsWord(context.Background(), "zebra"))
}
