package playground

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ferrabot.org/ferra/pkg/common"
	"ferrabot.org/ferra/pkg/ferra/domain"
)

// Client talks to a Rust playground instance over its JSON HTTP API. It implements domain.Playground.
// Calls are synchronous, bounded by the configured timeout and never retried: a failure surfaces to the user
// as a failed command.
type Client struct {
	baseURL    string
	referer    string
	httpClient *http.Client
	logger     common.Logger
}

func NewClient(config *common.Config, logger common.Logger) *Client {
	return &Client{
		baseURL: config.GetStringOrDefault(domain.ConfigKeyPlaygroundURL, domain.DefaultPlaygroundURL),
		referer: config.GetStringOrDefault(domain.ConfigKeyPlaygroundReferer, "https://ferrabot.org"),
		httpClient: &http.Client{
			Timeout: config.GetDurationOrDefault(domain.ConfigKeyPlaygroundTimeout, 30*time.Second),
		},
		logger: logger,
	}
}

type executeRequest struct {
	Channel   string `json:"channel"`
	Edition   string `json:"edition"`
	Code      string `json:"code"`
	CrateType string `json:"crateType"`
	Mode      string `json:"mode"`
	Tests     bool   `json:"tests"`
}

// The miri and macro-expansion endpoints share this shape; clippy additionally wants the crate type.
type toolRequest struct {
	Code      string `json:"code"`
	Edition   string `json:"edition"`
	CrateType string `json:"crateType,omitempty"`
}

func (c *Client) Execute(request domain.ExecuteRequest) (domain.ToolResult, error) {
	var result domain.ToolResult
	err := c.postJSON("/execute", executeRequest{
		Channel:   request.Channel.String(),
		Edition:   request.Edition.String(),
		Code:      request.Code,
		CrateType: request.CrateType.String(),
		Mode:      request.Mode.String(),
		Tests:     request.Tests,
	}, &result)
	return result, err
}

func (c *Client) Miri(code string, edition domain.Edition) (domain.ToolResult, error) {
	var result domain.ToolResult
	err := c.postJSON("/miri", toolRequest{Code: code, Edition: edition.String()}, &result)
	return result, err
}

func (c *Client) ExpandMacros(code string, edition domain.Edition) (domain.ToolResult, error) {
	var result domain.ToolResult
	err := c.postJSON("/macro-expansion", toolRequest{Code: code, Edition: edition.String()}, &result)
	return result, err
}

func (c *Client) Clippy(code string, edition domain.Edition, crateType domain.CrateType) (domain.ToolResult, error) {
	var result domain.ToolResult
	err := c.postJSON("/clippy", toolRequest{
		Code:      code,
		Edition:   edition.String(),
		CrateType: crateType.String(),
	}, &result)
	return result, err
}

func (c *Client) PostGist(code string) (string, error) {
	var response map[string]string
	err := c.postJSON("/meta/gist/", map[string]string{"code": code}, &response)
	if err != nil {
		return "", err
	}
	gistID := response["id"]
	if gistID == "" {
		return "", errors.New("no gist found in the playground's response")
	}
	c.logger.Log("uploaded gist " + gistID)
	return gistID, nil
}

func (c *Client) postJSON(path string, payload any, response any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	request, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Referer", c.referer)
	res, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("playground returned status %s", res.Status)
	}
	return json.NewDecoder(res.Body).Decode(response)
}
