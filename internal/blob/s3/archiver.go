package s3blob

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"walletrisk/internal/core"
	"walletrisk/internal/dataset"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

const csvContentType = "text/csv"

// Archiver uploads every report file under {prefix}/{runID}/{name}.
type Archiver struct {
	logs   *zap.SugaredLogger
	client ObjectPutter
	bucket string
	prefix string
}

func NewArchiver(logger *zap.SugaredLogger, client ObjectPutter, bucket, prefix string) *Archiver {
	return &Archiver{
		logs:   logger,
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (a *Archiver) Publish(ctx context.Context, report core.Report) error {
	for _, file := range dataset.ReportFiles() {
		var buf bytes.Buffer
		if err := file.Encode(&buf, report); err != nil {
			return fmt.Errorf("s3blob: encode %s: %w", file.Name, err)
		}

		key := a.ObjectKey(report.RunID, file.Name)
		_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(a.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(buf.Bytes()),
			ContentType: aws.String(csvContentType),
		})
		if err != nil {
			return fmt.Errorf("s3blob: put object %s: %w", key, err)
		}
	}

	a.logs.Infow("report archived", "runId", report.RunID, "bucket", a.bucket)
	return nil
}

func (a *Archiver) ObjectKey(runID, name string) string {
	if a.prefix == "" {
		return path.Join(runID, name)
	}
	return path.Join(a.prefix, runID, name)
}

var _ core.ReportSink = (*Archiver)(nil)
