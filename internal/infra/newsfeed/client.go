// Package newsfeed はお知らせ配信エンドポイントのHTTPクライアントを提供する。
package newsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/itfweb/recruit-site/internal/core/news"
)

// Client はお知らせフィードを取得するHTTPクライアント
type Client struct {
	feedURL    string
	httpClient *http.Client
}

// ClientOption はClient構築時のオプション
type ClientOption func(*Client)

// WithHTTPClient はHTTPクライアントを差し替える
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient は新しいClientを作成する
func NewClient(feedURL string, opts ...ClientOption) *Client {
	c := &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ news.Fetcher = (*Client)(nil)

// errorPayload は配信元がエラーを埋め込んだオブジェクト形式のペイロード
type errorPayload struct {
	Error string `json:"error"`
}

// FetchAll はフィードを1回取得してお知らせコレクションを返す。
// ネットワークエラー、2xx以外のステータス、errorフィールドを持つ
// ペイロードはいずれも取得失敗として扱う。
func (c *Client) FetchAll(ctx context.Context) ([]news.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news feed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// エラーペイロードにメッセージがあればそれを伝える
		var payload errorPayload
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			return nil, fmt.Errorf("news feed returned error: %s", payload.Error)
		}
		return nil, fmt.Errorf("news feed returned status %d", resp.StatusCode)
	}

	return decodeFeed(body)
}

// decodeFeed はフィード本文を復号する。
// 配列はお知らせコレクション、オブジェクトはエラーマーカーとして扱う。
func decodeFeed(body []byte) ([]news.Item, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "{") {
		var payload errorPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode feed payload: %w", err)
		}
		if payload.Error != "" {
			return nil, fmt.Errorf("news feed returned error: %s", payload.Error)
		}
		return nil, fmt.Errorf("unexpected feed payload: object without items")
	}

	var items []news.Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode feed items: %w", err)
	}
	return items, nil
}
