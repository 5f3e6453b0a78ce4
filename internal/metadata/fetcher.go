package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// Preview — метаданные страницы для обогащения ленты
type Preview struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Fetcher достает превью ссылок best-effort: любой сбой — это просто
// отсутствие превью, наружу ошибки не поднимаются выше вызова Fetch.
type Fetcher struct {
	Timeout time.Duration
	TTL     time.Duration

	client *http.Client
	redis  *redis.Client
}

// NewFetcher принимает nil вместо redis — тогда кэш просто выключен
func NewFetcher(rdb *redis.Client) *Fetcher {
	return &Fetcher{
		Timeout: 3 * time.Second,
		TTL:     time.Hour,
		client:  &http.Client{},
		redis:   rdb,
	}
}

func cacheKey(url string) string {
	return "preview:" + url
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*Preview, error) {
	if f.redis != nil {
		cached, err := f.redis.Get(ctx, cacheKey(url)).Result()
		if err == nil {
			var preview Preview
			if err := json.Unmarshal([]byte(cached), &preview); err == nil {
				return &preview, nil
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	preview, err := parsePreview(resp.Body)
	if err != nil {
		return nil, err
	}

	if f.redis != nil {
		if raw, err := json.Marshal(preview); err == nil {
			if err := f.redis.Set(ctx, cacheKey(url), raw, f.TTL).Err(); err != nil {
				logrus.WithError(err).Debug("preview cache write failed")
			}
		}
	}

	return preview, nil
}

// parsePreview собирает og:-теги и <title> из <head>
func parsePreview(body io.Reader) (*Preview, error) {
	tokenizer := html.NewTokenizer(body)
	preview := Preview{}
	inTitle := false

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if preview == (Preview{}) {
				return nil, errors.New("no metadata found")
			}
			return &preview, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "title":
				inTitle = true
			case "meta":
				handleMeta(token, &preview)
			}

		case html.TextToken:
			if inTitle && preview.Title == "" {
				preview.Title = strings.TrimSpace(tokenizer.Token().Data)
			}

		case html.EndTagToken:
			token := tokenizer.Token()
			if token.Data == "title" {
				inTitle = false
			}
			if token.Data == "head" {
				return &preview, nil
			}
		}
	}
}

func handleMeta(token html.Token, preview *Preview) {
	var property, content string
	for _, attr := range token.Attr {
		switch attr.Key {
		case "property", "name":
			property = attr.Val
		case "content":
			content = attr.Val
		}
	}

	switch property {
	case "og:title":
		preview.Title = content
	case "og:image":
		preview.Image = content
	case "og:description":
		preview.Description = content
	case "description":
		if preview.Description == "" {
			preview.Description = content
		}
	}
}
