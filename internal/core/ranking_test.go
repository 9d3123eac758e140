package core_test

import (
	"time"
	"walletrisk/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NormalizeScores", func() {
	It("should rescale against the maximum raw score", func() {
		table := core.NormalizeScores(core.NewRawScoreTable(
			core.WalletRawScore{Wallet: "W1", Score: 13},
			core.WalletRawScore{Wallet: "W2", Score: 7},
		))

		w1, _ := table.Get("W1")
		w2, _ := table.Get("W2")
		Expect(w1).To(Equal(1000.0))
		Expect(w2).To(Equal(538.46))
	})

	It("should return an empty table for an empty input", func() {
		Expect(core.NormalizeScores(core.NewRawScoreTable())).To(BeEmpty())
	})

	It("should map every wallet to zero when all raw scores are zero", func() {
		table := core.NormalizeScores(core.NewRawScoreTable(
			core.WalletRawScore{Wallet: "a", Score: 0},
			core.WalletRawScore{Wallet: "b", Score: 0},
		))
		Expect(table).To(HaveLen(2))
		for _, s := range table {
			Expect(s.Score).To(BeZero())
		}
	})

	It("should keep every score within bounds", func() {
		table := core.NormalizeScores(core.NewRawScoreTable(
			core.WalletRawScore{Wallet: "a", Score: 2},
			core.WalletRawScore{Wallet: "b", Score: 0.001},
			core.WalletRawScore{Wallet: "c", Score: 99999.5},
			core.WalletRawScore{Wallet: "d", Score: 17.25},
		))
		atMax := 0
		for _, s := range table {
			Expect(s.Score).To(BeNumerically(">=", 0))
			Expect(s.Score).To(BeNumerically("<=", 1000))
			if s.Score == 1000 {
				atMax++
			}
		}
		Expect(atMax).To(Equal(1))
	})

	It("should sum repeated wallets when building the table", func() {
		raw := core.NewRawScoreTable(
			core.WalletRawScore{Wallet: "a", Score: 2},
			core.WalletRawScore{Wallet: "a", Score: 3},
		)
		score, _ := raw.Get("a")
		Expect(score).To(Equal(5.0))
	})

	Describe("Ranked", func() {
		It("should sort descending and keep insertion order for ties", func() {
			ranked := core.NormalizeScores(core.NewRawScoreTable(
				core.WalletRawScore{Wallet: "tie1", Score: 5},
				core.WalletRawScore{Wallet: "top", Score: 10},
				core.WalletRawScore{Wallet: "tie2", Score: 5},
				core.WalletRawScore{Wallet: "low", Score: 1},
			)).Ranked()

			wallets := make([]string, len(ranked))
			for i, s := range ranked {
				wallets[i] = s.Wallet
			}
			Expect(wallets).To(Equal([]string{"top", "tie1", "tie2", "low"}))
		})
	})
})

var _ = Describe("BuildReport", func() {
	var transactions []core.FlatTransaction

	BeforeEach(func() {
		transactions = []core.FlatTransaction{
			{Wallet: "W2", TxHash: "0x2", Method: "", Value: 0},
			{Wallet: "W1", TxHash: "0x1", Method: "transfer", Value: 2.0},
		}
	})

	It("should rank the wallets", func() {
		report := core.BuildReport("run", time.Unix(0, 0), transactions)
		Expect(report.Scores).To(Equal([]core.WalletScore{
			{Wallet: "W1", RawScore: 13, Score: 1000},
			{Wallet: "W2", RawScore: 7, Score: 538.46},
		}))
		Expect(report.Events).To(HaveLen(5))
		Expect(report.Transactions).To(Equal(transactions))
	})

	It("should be idempotent", func() {
		first := core.BuildReport("run", time.Unix(0, 0), transactions)
		second := core.BuildReport("run", time.Unix(0, 0), transactions)
		Expect(second).To(Equal(first))
	})
})
