package dictionary

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultAPIURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Checker answers "is this an English word". Two-letter words come from a
// static allowlist, a small common-word set short-circuits the rest, and
// everything else asks the external dictionary API. Unreachable API means
// the word is rejected: fail closed.
type Checker struct {
	apiURL string
	client *http.Client
}

func New(apiURL string) *Checker {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Checker{
		apiURL: strings.TrimRight(apiURL, "/"),
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Checker) IsWord(ctx context.Context, word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	if len(word) < 2 {
		return false
	}
	if len(word) == 2 {
		return twoLetterWords[word]
	}
	if commonWords[word] {
		return true
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s", c.apiURL, url.PathEscape(word)), nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("word", word).Msg("dictionary lookup failed")
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

var twoLetterWords = toSet(
	"aa", "ab", "ad", "ae", "ag", "ah", "ai", "al", "am", "an", "ar", "as", "at", "aw", "ax", "ay",
	"ba", "be", "bi", "bo", "by", "de", "do", "ed", "ef", "eh", "el", "em", "en", "er", "es", "et", "ex",
	"fa", "fe", "go", "ha", "he", "hi", "ho", "id", "if", "in", "is", "it", "jo", "ka", "ki",
	"la", "li", "lo", "ma", "me", "mi", "mm", "mo", "mu", "my", "na", "ne", "no", "nu",
	"od", "oe", "of", "oh", "oi", "ok", "om", "on", "op", "or", "os", "ow", "ox", "oy",
	"pa", "pe", "pi", "po", "qi", "re", "sh", "si", "so", "ta", "te", "ti", "to",
	"uh", "um", "un", "up", "us", "ut", "we", "wo", "xi", "xu", "ya", "ye", "yo", "za",
)

// commonWords covers everyday words the external API occasionally misses.
var commonWords = toSet(
	"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
	"her", "was", "one", "our", "out", "has", "his", "how", "its", "may",
	"new", "now", "old", "see", "way", "who", "did", "get", "got", "him",
	"let", "put", "say", "she", "too", "use", "dad", "mom", "yes", "yet",
	"thing", "think", "things", "other", "there", "their", "which", "about",
	"would", "these", "could", "being", "after", "before", "through", "where",
)

func toSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
