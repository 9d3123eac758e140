package dataset_test

import (
	"strings"
	"walletrisk/internal/dataset"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LoadWallets", func() {
	It("should read the wallet_id column in file order", func() {
		wallets, err := dataset.LoadWallets(strings.NewReader("label,wallet_id\na,0xB\nb,0xA\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(wallets).To(Equal([]string{"0xB", "0xA"}))
	})

	It("should skip blanks and keep the first of repeated wallets", func() {
		wallets, err := dataset.LoadWallets(strings.NewReader("wallet_id\n0x1\n\n  \n0x2\n0x1\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(wallets).To(Equal([]string{"0x1", "0x2"}))
	})

	It("should tolerate short rows and a byte order mark", func() {
		wallets, err := dataset.LoadWallets(strings.NewReader("\ufeffwallet_id,note\n0x1,x\n0x2\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(wallets).To(Equal([]string{"0x1", "0x2"}))
	})

	It("should return an empty list for a header only file", func() {
		wallets, err := dataset.LoadWallets(strings.NewReader("wallet_id\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(wallets).To(BeEmpty())
	})

	DescribeTable("should reject files without a wallet_id column",
		func(input string) {
			_, err := dataset.LoadWallets(strings.NewReader(input))
			Expect(err).To(MatchError(dataset.ErrMissingWalletColumn))
		},
		Entry("empty file", ""),
		Entry("other columns", "address\n0x1\n"),
	)
})
