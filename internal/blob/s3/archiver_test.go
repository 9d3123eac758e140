package s3blob_test

import (
	"context"
	"errors"
	"io"
	"time"
	s3blob "walletrisk/internal/blob/s3"
	"walletrisk/internal/blob/s3/fake"
	"walletrisk/internal/core"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Archiver", func() {
	var (
		putter   *fake.ObjectPutter
		archiver *s3blob.Archiver
		report   core.Report
		bodies   map[string]string
	)

	BeforeEach(func() {
		putter = new(fake.ObjectPutter)
		bodies = map[string]string{}
		putter.PutObjectStub = func(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			data, err := io.ReadAll(in.Body)
			if err != nil {
				return nil, err
			}
			bodies[aws.ToString(in.Key)] = string(data)
			return &s3.PutObjectOutput{}, nil
		}

		archiver = s3blob.NewArchiver(zap.NewNop().Sugar(), putter, "reports", "/walletrisk/")
		report = core.BuildReport("run-7", time.Now(), []core.FlatTransaction{
			{Wallet: "W1", TxHash: "h1", Method: "transfer", Value: 2},
		})
	})

	It("should upload every report file under the run prefix", func() {
		Expect(archiver.Publish(context.Background(), report)).To(Succeed())
		Expect(putter.PutObjectCallCount()).To(Equal(3))

		_, in, _ := putter.PutObjectArgsForCall(0)
		Expect(aws.ToString(in.Bucket)).To(Equal("reports"))
		Expect(aws.ToString(in.ContentType)).To(Equal("text/csv"))

		Expect(bodies).To(HaveKey("walletrisk/run-7/processed_data.csv"))
		Expect(bodies).To(HaveKey("walletrisk/run-7/risk_scores.csv"))
		Expect(bodies).To(HaveKey("walletrisk/run-7/risk_score_details.csv"))
		Expect(bodies["walletrisk/run-7/risk_scores.csv"]).To(Equal("wallet,risk_score\nW1,1000.0\n"))
	})

	It("should build keys without a prefix", func() {
		archiver = s3blob.NewArchiver(zap.NewNop().Sugar(), putter, "reports", "")
		Expect(archiver.ObjectKey("run-7", "risk_scores.csv")).To(Equal("run-7/risk_scores.csv"))
	})

	It("should stop at the first failed upload", func() {
		putter.PutObjectStub = nil
		putter.PutObjectReturns(nil, errors.New("access denied"))

		err := archiver.Publish(context.Background(), report)
		Expect(err).To(MatchError(ContainSubstring("access denied")))
		Expect(putter.PutObjectCallCount()).To(Equal(1))
	})
})
