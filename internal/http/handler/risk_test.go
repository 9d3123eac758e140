package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"walletrisk/internal/core"
	"walletrisk/internal/http/handler"
	"walletrisk/internal/http/handler/fake"
	"walletrisk/internal/http/payload"
	"walletrisk/internal/indexer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const wallet = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

var _ = Describe("RiskHandler", func() {
	var (
		mux           *http.ServeMux
		fakeService   *fake.RiskService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		fakeErr       error
		resp          envelope
	)

	BeforeEach(func() {
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.RiskService)
		fakeService.AuthenticateReturns(testToken, nil)
		fakeService.AuthorizeReturns("user-1", nil)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.DecodeValidator{}.DecodeJSONPayload

		mux = http.NewServeMux()
		handler.NewRiskHandler(zap.NewNop().Sugar(), fakeValidator, fakeService).Register(mux)
		w = httptest.NewRecorder()
		resp = envelope{}
	})

	JustBeforeEach(func() {
		mux.ServeHTTP(w, req)
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
	})

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/risk/authenticate", strings.NewReader(`{"username":"test","password":"pass"}`))
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var data map[string]string
				Expect(json.Unmarshal(resp.Data, &data)).To(Succeed())
				Expect(data["token"]).To(Equal(testToken))

				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "test", Password: "pass"}))
				Expect(fakeService.AuthorizeCallCount()).To(Equal(0))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Error).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(resp.Error).To(Equal(core.ErrIncorrectPassword.Error()))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should hide the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(resp.Error).To(Equal("unexpected error occurred"))
			})
		})
	})

	Describe("HandleGetScores", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/risk/scores", nil)
			req.Header.Set("AUTH_TOKEN", testToken)
			fakeService.LatestScoresReturns(core.RunSummary{
				RunID:     "run-1",
				CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			}, []core.WalletScore{
				{Wallet: "W1", RawScore: 13, Score: 1000},
				{Wallet: "W2", RawScore: 7, Score: 538.46},
			}, nil)
		})

		When("the token is valid", func() {
			It("should return the ranked scores", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.AuthorizeArgsForCall(0)).To(Equal(testToken))

				var data struct {
					RunID  string             `json:"run_id"`
					Scores []core.WalletScore `json:"scores"`
				}
				Expect(json.Unmarshal(resp.Data, &data)).To(Succeed())
				Expect(data.RunID).To(Equal("run-1"))
				Expect(data.Scores).To(HaveLen(2))
				Expect(data.Scores[1].Score).To(Equal(538.46))
			})
		})

		When("no auth token is provided", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(resp.Error).To(ContainSubstring("AUTH_TOKEN header is required"))
				Expect(fakeService.LatestScoresCallCount()).To(Equal(0))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				fakeService.AuthorizeReturns("", core.ErrUnauthorized)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.LatestScoresCallCount()).To(Equal(0))
			})
		})

		When("nothing was assessed yet", func() {
			BeforeEach(func() {
				fakeService.LatestScoresReturns(core.RunSummary{}, nil, core.ErrNoRuns)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.LatestScoresReturns(core.RunSummary{}, nil, fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(resp.Error).To(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetWalletDetails", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", fmt.Sprintf("/risk/wallets/%s/details", wallet), nil)
			req.Header.Set("AUTH_TOKEN", testToken)
			fakeService.WalletDetailsReturns([]core.ScoreEvent{
				{Wallet: wallet, TxHash: "0x1", Rule: core.RuleBaseActivity, Points: 2, Reason: "Transaction recorded"},
			}, nil)
		})

		It("should return the wallet's events", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, arg := fakeService.WalletDetailsArgsForCall(0)
			Expect(arg).To(Equal(wallet))

			var data struct {
				Wallet string            `json:"wallet"`
				Items  []core.ScoreEvent `json:"items"`
			}
			Expect(json.Unmarshal(resp.Data, &data)).To(Succeed())
			Expect(data.Wallet).To(Equal(wallet))
			Expect(data.Items).To(HaveLen(1))
			Expect(data.Items[0].Reason).To(Equal("Transaction recorded"))
		})

		When("the wallet is not an address", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/risk/wallets/not-a-wallet/details", nil)
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.WalletDetailsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetWalletTransactions", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", fmt.Sprintf("/risk/wallets/%s/transactions", wallet), nil)
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		When("transactions are found", func() {
			BeforeEach(func() {
				fakeService.WalletTransactionsReturns([]core.FlatTransaction{
					{Wallet: wallet, TxHash: "0x1", Method: "transfer", Value: 1.5},
				}, nil)
			})

			It("should return them", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(string(resp.Data)).To(ContainSubstring(`"tx_hash":"0x1"`))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.WalletTransactionsReturns(nil, fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleAssess", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/risk/assess", strings.NewReader(fmt.Sprintf(`{"wallets":[%q]}`, wallet)))
			req.Header.Set("AUTH_TOKEN", testToken)
			fakeService.AssessReturns(core.Report{
				RunID:  "run-2",
				Scores: []core.WalletScore{{Wallet: wallet, RawScore: 2, Score: 1000}},
			}, nil)
		})

		It("should run the assessment and return the scores", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, wallets := fakeService.AssessArgsForCall(0)
			Expect(wallets).To(Equal([]string{wallet}))
			Expect(string(resp.Data)).To(ContainSubstring(`"run_id":"run-2"`))
		})

		When("a wallet is invalid", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/risk/assess", strings.NewReader(`{"wallets":["bob"]}`))
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AssessCallCount()).To(Equal(0))
			})
		})

		When("no wallet could be fetched", func() {
			BeforeEach(func() {
				fakeService.AssessReturns(core.Report{}, fmt.Errorf("fetch payloads: %w", indexer.ErrAllWalletsFailed))
			})

			It("should return 502 Bad Gateway", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})
})
