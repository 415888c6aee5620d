package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mvdan/xurls"

	"ferrabot.org/ferra/pkg/common"
	"ferrabot.org/ferra/pkg/ferra/domain"
)

// SnippetFetcher resolves command bodies that consist of a single URL into the first code block found on that
// page, so that users can point the bot at a paste or a blog post instead of copying the code into the chat.
// It implements domain.SnippetFetcher.
type SnippetFetcher struct {
	httpClient *http.Client
}

func NewSnippetFetcher(config *common.Config) *SnippetFetcher {
	return &SnippetFetcher{
		httpClient: &http.Client{
			Timeout: config.GetDurationOrDefault(domain.ConfigKeySnippetFetchTimeout, 30*time.Second),
		},
	}
}

// FetchSnippet fetches the page and takes the text of its first `pre code` element (falling back to any
// `code` element). Bodies that aren't a lone URL are reported as not applicable rather than an error.
// xurls.Strict is used because a URL without a scheme couldn't be fetched anyway.
func (s *SnippetFetcher) FetchSnippet(body string) (string, bool, error) {
	body = strings.TrimSpace(body)
	url := xurls.Strict.FindString(body)
	if url == "" || url != body {
		return "", false, nil
	}
	page, err := common.ReadAllFromURL(s.httpClient, url)
	if err != nil {
		return "", false, err
	}
	document, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", false, err
	}
	snippet := document.Find("pre code").First().Text()
	if strings.TrimSpace(snippet) == "" {
		snippet = document.Find("code").First().Text()
	}
	if strings.TrimSpace(snippet) == "" {
		return "", false, errors.New("no code block found at " + url)
	}
	return snippet, true, nil
}
