package indexer_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"time"
	"walletrisk/internal/core"
	"walletrisk/internal/indexer"
	"walletrisk/internal/indexer/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func page(items []map[string]any, hasMore bool) string {
	body, _ := json.Marshal(map[string]any{
		"data": map[string]any{
			"items":      items,
			"pagination": map[string]any{"has_more": hasMore},
		},
		"error": false,
	})
	return string(body)
}

var _ = Describe("Client", func() {
	var (
		server   *httptest.Server
		handler  http.HandlerFunc
		requests atomic.Int32
		cfg      indexer.Config
		cache    *fake.PayloadCache
		client   *indexer.Client
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		requests.Store(0)
		cache = nil
		handler = func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, page([]map[string]any{{"tx_hash": "0x1", "value": "1"}}, false))
		}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			handler(w, r)
		}))

		cfg = indexer.Config{
			BaseURL:  server.URL + "/v1/",
			APIKey:   "secret",
			ChainID:  1,
			PageSize: 2,
			MaxPages: 3,
			Workers:  2,
			Retry: indexer.RetryPolicy{
				MaxAttempts: 3,
				BaseDelay:   time.Millisecond,
				MaxDelay:    2 * time.Millisecond,
			},
		}
	})

	AfterEach(func() {
		server.Close()
	})

	JustBeforeEach(func() {
		if cache != nil {
			client = indexer.NewClient(zap.NewNop().Sugar(), cfg, cache)
		} else {
			client = indexer.NewClient(zap.NewNop().Sugar(), cfg, nil)
		}
	})

	Describe("FetchPayload", func() {
		When("the history fits on one page", func() {
			var seen *http.Request

			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					seen = r
					fmt.Fprint(w, page([]map[string]any{{"tx_hash": "0x1"}}, false))
				}
			})

			It("should request the transactions endpoint", func() {
				_, err := client.FetchPayload(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())
				Expect(seen.URL.Path).To(Equal("/v1/1/address/0xabc/transactions_v2/"))
				Expect(seen.URL.Query().Get("key")).To(Equal("secret"))
				Expect(seen.URL.Query().Get("page-number")).To(Equal("0"))
				Expect(seen.URL.Query().Get("page-size")).To(Equal("2"))
			})

			It("should return the items under data.items", func() {
				payload, err := client.FetchPayload(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())

				txs := core.NewNormalizer(zap.NewNop().Sugar()).Normalize("0xabc", payload)
				Expect(txs).To(Equal([]core.FlatTransaction{{Wallet: "0xabc", TxHash: "0x1"}}))
			})
		})

		When("the history spans several pages", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					switch r.URL.Query().Get("page-number") {
					case "0":
						fmt.Fprint(w, page([]map[string]any{{"tx_hash": "a"}, {"tx_hash": "b"}}, true))
					case "1":
						fmt.Fprint(w, page([]map[string]any{{"tx_hash": "c"}}, false))
					default:
						w.WriteHeader(http.StatusBadRequest)
					}
				}
			})

			It("should merge the pages in order", func() {
				payload, err := client.FetchPayload(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())
				Expect(requests.Load()).To(Equal(int32(2)))

				txs := core.NewNormalizer(zap.NewNop().Sugar()).Normalize("0xabc", payload)
				Expect(txs).To(HaveLen(3))
				Expect(txs[2].TxHash).To(Equal("c"))
			})
		})

		When("every page reports more data", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					fmt.Fprint(w, page([]map[string]any{{"tx_hash": r.URL.Query().Get("page-number")}}, true))
				}
			})

			It("should stop at the page limit", func() {
				payload, err := client.FetchPayload(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())
				Expect(requests.Load()).To(Equal(int32(3)))

				txs := core.NewNormalizer(zap.NewNop().Sugar()).Normalize("0xabc", payload)
				Expect(txs).To(HaveLen(3))
			})
		})

		When("the first page has an unexpected structure", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					fmt.Fprint(w, `{"error":true,"error_message":"bad address"}`)
				}
			})

			It("should return the body verbatim", func() {
				payload, err := client.FetchPayload(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())
				Expect(payload).To(Equal(`{"error":true,"error_message":"bad address"}`))
			})
		})

		When("the indexer rejects the request", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusUnauthorized)
				}
			})

			It("should fail without retrying", func() {
				_, err := client.FetchPayload(ctx, "0xabc")
				Expect(err).To(MatchError(indexer.ErrUnexpectedStatus))
				Expect(err.Error()).To(ContainSubstring("401"))
				Expect(requests.Load()).To(Equal(int32(1)))
			})
		})

		When("the indexer is temporarily unavailable", func() {
			BeforeEach(func() {
				var calls atomic.Int32
				handler = func(w http.ResponseWriter, r *http.Request) {
					if calls.Add(1) < 3 {
						w.WriteHeader(http.StatusServiceUnavailable)
						return
					}
					fmt.Fprint(w, page([]map[string]any{{"tx_hash": "0x1"}}, false))
				}
			})

			It("should retry until it succeeds", func() {
				_, err := client.FetchPayload(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())
				Expect(requests.Load()).To(Equal(int32(3)))
			})
		})

		When("the indexer keeps failing", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusTooManyRequests)
				}
			})

			It("should give up after the last attempt", func() {
				_, err := client.FetchPayload(ctx, "0xabc")
				Expect(err).To(MatchError(indexer.ErrUnexpectedStatus))
				Expect(requests.Load()).To(Equal(int32(3)))
			})
		})
	})

	Describe("FetchPayloads", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				if strings.Contains(r.URL.Path, "/bad/") {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				fmt.Fprint(w, page([]map[string]any{{"tx_hash": r.URL.Path}}, false))
			}
		})

		It("should keep input order and leave out failed wallets", func() {
			payloads, err := client.FetchPayloads(ctx, []string{"w1", "bad", "w2", "w3"})
			Expect(err).To(MatchError(indexer.ErrUnexpectedStatus))
			Expect(err.Error()).To(ContainSubstring(`fetching wallet "bad"`))
			Expect(errors.Is(err, indexer.ErrAllWalletsFailed)).To(BeFalse())

			wallets := make([]string, len(payloads))
			for i, p := range payloads {
				wallets[i] = p.Wallet
			}
			Expect(wallets).To(Equal([]string{"w1", "w2", "w3"}))
		})

		It("should report when every wallet failed", func() {
			payloads, err := client.FetchPayloads(ctx, []string{"bad"})
			Expect(payloads).To(BeEmpty())
			Expect(err).To(MatchError(indexer.ErrAllWalletsFailed))
		})

		When("a cache is configured", func() {
			BeforeEach(func() {
				cache = new(fake.PayloadCache)
				cfg.CacheTTL = time.Hour
				cache.GetStub = func(_ context.Context, _ int, wallet string) (string, bool, error) {
					if wallet == "cached" {
						return `{"items":[{"tx_hash":"from-cache"}]}`, true, nil
					}
					return "", false, nil
				}
			})

			It("should serve hits from the cache and store misses", func() {
				payloads, err := client.FetchPayloads(ctx, []string{"cached", "w1"})
				Expect(err).NotTo(HaveOccurred())
				Expect(payloads).To(HaveLen(2))
				Expect(payloads[0].Payload).To(Equal(`{"items":[{"tx_hash":"from-cache"}]}`))
				Expect(requests.Load()).To(Equal(int32(1)))

				Expect(cache.SetCallCount()).To(Equal(1))
				_, chainID, wallet, text, ttl := cache.SetArgsForCall(0)
				Expect(chainID).To(Equal(1))
				Expect(wallet).To(Equal("w1"))
				Expect(text).To(ContainSubstring(`"items"`))
				Expect(ttl).To(Equal(time.Hour))
			})

			It("should fetch when the cache fails", func() {
				cache.GetStub = nil
				cache.GetReturns("", false, errors.New("cache down"))

				payloads, err := client.FetchPayloads(ctx, []string{"cached"})
				Expect(err).NotTo(HaveOccurred())
				Expect(payloads).To(HaveLen(1))
				Expect(requests.Load()).To(Equal(int32(1)))
			})
		})
	})
})
