package common

import (
	"io"
	"net/http"
)

// ReadAllFromURL reads all content from the URL using the given client (which is expected to carry a timeout,
// so that a hanging page cannot block a command forever).
func ReadAllFromURL(client *http.Client, url string) (string, error) {
	res, err := client.Get(url)
	if err != nil {
		return "", err
	}
	content, err := io.ReadAll(res.Body)
	defer func() {
		_ = res.Body.Close()
	}()
	if err != nil {
		return "", err
	}
	return string(content), nil
}
