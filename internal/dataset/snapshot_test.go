package dataset_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"walletrisk/internal/core"
	"walletrisk/internal/dataset"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Snapshot", func() {
	var payloads []core.WalletPayload

	BeforeEach(func() {
		payloads = []core.WalletPayload{
			{Wallet: "0xB", Payload: map[string]any{"items": []any{
				map[string]any{"tx_hash": "0x1", "value": "2000000000000000000"},
			}}},
			{Wallet: "0xA", Payload: `{"data":{"items":[{"tx_hash":"0x2","value":"123456789012345678901234"}]}}`},
			{Wallet: "0xC", Payload: "service unavailable"},
		}
	})

	It("should preserve wallet order and payload content", func() {
		var buf bytes.Buffer
		Expect(dataset.WriteSnapshot(&buf, payloads)).To(Succeed())

		restored, err := dataset.ReadSnapshot(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(restored).To(HaveLen(3))
		Expect(restored[0].Wallet).To(Equal("0xB"))
		Expect(restored[1].Wallet).To(Equal("0xA"))
		Expect(restored[2].Payload).To(Equal("service unavailable"))

		normalizer := core.NewNormalizer(zap.NewNop().Sugar())
		for i := range payloads {
			Expect(normalizer.Normalize(restored[i].Wallet, restored[i].Payload)).
				To(Equal(normalizer.Normalize(payloads[i].Wallet, payloads[i].Payload)))
		}
	})

	It("should keep large integers exact", func() {
		var buf bytes.Buffer
		Expect(dataset.WriteSnapshot(&buf, payloads[1:2])).To(Succeed())
		Expect(buf.String()).To(ContainSubstring(`"123456789012345678901234"`))

		restored, err := dataset.ReadSnapshot(&buf)
		Expect(err).NotTo(HaveOccurred())
		items := restored[0].Payload.(map[string]any)["data"].(map[string]any)["items"].([]any)
		Expect(items[0].(map[string]any)["value"]).To(Equal("123456789012345678901234"))
	})

	It("should write an empty object for no payloads", func() {
		var buf bytes.Buffer
		Expect(dataset.WriteSnapshot(&buf, nil)).To(Succeed())
		Expect(buf.String()).To(Equal("{}\n"))

		restored, err := dataset.ReadSnapshot(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(restored).To(BeEmpty())
	})

	It("should decode numbers as json.Number", func() {
		restored, err := dataset.ReadSnapshot(strings.NewReader(`{"w":[{"value":12}]}`))
		Expect(err).NotTo(HaveOccurred())
		entry := restored[0].Payload.([]any)[0].(map[string]any)
		Expect(entry["value"]).To(Equal(json.Number("12")))
	})

	DescribeTable("should reject input that is not an object",
		func(input string) {
			_, err := dataset.ReadSnapshot(strings.NewReader(input))
			Expect(err).To(HaveOccurred())
		},
		Entry("list", `[1,2]`),
		Entry("empty", ``),
		Entry("truncated", `{"w": {"items": [`),
	)
})
