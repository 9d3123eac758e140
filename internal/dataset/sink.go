package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"walletrisk/internal/core"

	"go.uber.org/zap"
)

// FileSink writes reports and snapshots into a local directory.
type FileSink struct {
	logs *zap.SugaredLogger
	dir  string
}

func NewFileSink(logger *zap.SugaredLogger, dir string) *FileSink {
	return &FileSink{
		logs: logger,
		dir:  dir,
	}
}

// Publish writes every report file, replacing earlier ones.
func (s *FileSink) Publish(ctx context.Context, report core.Report) error {
	for _, file := range ReportFiles() {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.writeFile(file.Name, func(w io.Writer) error {
			return file.Encode(w, report)
		})
		if err != nil {
			return err
		}
	}

	s.logs.Infow("report written", "runId", report.RunID, "dir", s.dir)
	return nil
}

func (s *FileSink) SaveSnapshot(payloads []core.WalletPayload) error {
	err := s.writeFile(SnapshotFile, func(w io.Writer) error {
		return WriteSnapshot(w, payloads)
	})
	if err != nil {
		return err
	}

	s.logs.Infow("snapshot written", "wallets", len(payloads), "file", filepath.Join(s.dir, SnapshotFile))
	return nil
}

func (s *FileSink) writeFile(name string, encode func(io.Writer) error) (err error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close %s: %w", name, closeErr)
		}
	}()

	if err := encode(f); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

var _ core.ReportSink = (*FileSink)(nil)
