package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"walletrisk/internal/core"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrUnexpectedStatus error = errors.New("unexpected response status")
var ErrAllWalletsFailed error = errors.New("no wallet could be fetched")

const maxBodyBytes = 32 << 20

type Config struct {
	BaseURL  string
	APIKey   string
	ChainID  int
	PageSize int
	MaxPages int
	Workers  int
	Timeout  time.Duration
	CacheTTL time.Duration
	Retry    RetryPolicy
}

// Client fetches wallet transaction histories from a Covalent style
// transactions_v2 endpoint.
type Client struct {
	logs       *zap.SugaredLogger
	cfg        Config
	httpClient *http.Client
	cache      PayloadCache
}

// NewClient builds a client; cache may be nil.
func NewClient(logger *zap.SugaredLogger, cfg Config, cache PayloadCache) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return &Client{
		logs: logger,
		cfg:  cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cache: cache,
	}
}

// FetchPayloads fetches every wallet, at most cfg.Workers at a time. Results keep
// the input order; wallets that fail are left out and their errors joined. The
// error is ErrAllWalletsFailed only when nothing could be fetched.
func (c *Client) FetchPayloads(ctx context.Context, wallets []string) ([]core.WalletPayload, error) {
	results := make([]*core.WalletPayload, len(wallets))
	errs := make([]error, len(wallets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Workers)
	for i, wallet := range wallets {
		g.Go(func() error {
			c.logs.Infow("fetching transactions", "wallet", wallet)
			payload, err := c.fetchCached(gctx, wallet)
			if err != nil {
				errs[i] = fmt.Errorf("fetching wallet %q: %w", wallet, err)
				c.logs.Errorw("failed to fetch wallet transactions", "wallet", wallet, "error", err)
				return nil
			}
			results[i] = &core.WalletPayload{Wallet: wallet, Payload: payload}
			return nil
		})
	}
	_ = g.Wait()

	payloads := make([]core.WalletPayload, 0, len(wallets))
	for _, p := range results {
		if p != nil {
			payloads = append(payloads, *p)
		}
	}

	aggrErr := errors.Join(errs...)
	if len(payloads) == 0 && len(wallets) > 0 {
		return payloads, errors.Join(ErrAllWalletsFailed, aggrErr)
	}
	return payloads, aggrErr
}

func (c *Client) fetchCached(ctx context.Context, wallet string) (core.RawPayload, error) {
	if c.cache != nil {
		cached, ok, err := c.cache.Get(ctx, c.cfg.ChainID, wallet)
		if err != nil {
			c.logs.Warnw("payload cache read failed", "wallet", wallet, "error", err)
		} else if ok {
			c.logs.Debugw("payload served from cache", "wallet", wallet)
			return cached, nil
		}
	}

	payload, err := c.FetchPayload(ctx, wallet)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		text, err := payloadString(payload)
		if err == nil {
			err = c.cache.Set(ctx, c.cfg.ChainID, wallet, text, c.cfg.CacheTTL)
		}
		if err != nil {
			c.logs.Warnw("payload cache write failed", "wallet", wallet, "error", err)
		}
	}

	return payload, nil
}

// FetchPayload returns one wallet's full history. Items of all pages are merged
// under data.items; a first page of any other shape is returned as raw text.
func (c *Client) FetchPayload(ctx context.Context, wallet string) (core.RawPayload, error) {
	var items []any

	for page := 0; page < c.cfg.MaxPages; page++ {
		body, err := c.getPage(ctx, wallet, page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}

		pageItems, hasMore, ok := parsePage(body)
		if !ok {
			if page == 0 {
				return string(body), nil
			}
			c.logs.Warnw("stopping pagination on unexpected page structure", "wallet", wallet, "page", page)
			break
		}

		items = append(items, pageItems...)
		if !hasMore {
			break
		}
		if page == c.cfg.MaxPages-1 {
			c.logs.Warnw("page limit reached, history truncated", "wallet", wallet, "pages", c.cfg.MaxPages)
		}
	}

	if items == nil {
		items = []any{}
	}
	return map[string]any{
		"data": map[string]any{
			"address": wallet,
			"items":   items,
		},
	}, nil
}

func (c *Client) getPage(ctx context.Context, wallet string, page int) ([]byte, error) {
	endpoint := c.pageURL(wallet, page)

	var body []byte
	err := withRetry(ctx, c.cfg.Retry, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return retryable(fmt.Errorf("http get: %w", err))
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return retryable(fmt.Errorf("read body: %w", err))
		}

		if resp.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
				return retryable(statusErr)
			}
			return statusErr
		}

		body = data
		return nil
	}, func(attempt int, wait time.Duration, err error) {
		c.logs.Warnw("retrying indexer request",
			"wallet", wallet,
			"page", page,
			"attempt", attempt,
			"wait", wait,
			"error", err)
	})

	return body, err
}

func (c *Client) pageURL(wallet string, page int) string {
	q := url.Values{}
	q.Set("key", c.cfg.APIKey)
	q.Set("page-number", strconv.Itoa(page))
	if c.cfg.PageSize > 0 {
		q.Set("page-size", strconv.Itoa(c.cfg.PageSize))
	}

	return fmt.Sprintf("%s/%d/address/%s/transactions_v2/?%s",
		strings.TrimRight(c.cfg.BaseURL, "/"),
		c.cfg.ChainID,
		url.PathEscape(wallet),
		q.Encode())
}

func parsePage(body []byte) ([]any, bool, bool) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var page struct {
		Data *struct {
			Items      []any `json:"items"`
			Pagination *struct {
				HasMore bool `json:"has_more"`
			} `json:"pagination"`
		} `json:"data"`
	}
	if err := decoder.Decode(&page); err != nil || page.Data == nil || page.Data.Items == nil {
		return nil, false, false
	}

	hasMore := page.Data.Pagination != nil && page.Data.Pagination.HasMore
	return page.Data.Items, hasMore, true
}

func payloadString(payload core.RawPayload) (string, error) {
	if s, ok := payload.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	return string(data), nil
}
