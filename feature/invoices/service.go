package invoices

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"order-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// archivePrefix is where fetched invoice PDFs live in the bucket.
const archivePrefix = "invoices/"

// Service fetches invoice mail, extracts PO metadata, and archives the PDFs.
type Service struct {
	source MessageSource
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new invoices service.
func NewService(source MessageSource, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// FetchInvoices pulls today's PDF attachments from the mailbox, extracts the
// purchase-order fields from each, and archives every recognized invoice to
// object storage. Attachments that fail text extraction or carry no PO number
// are skipped, matching the tolerant behavior expected of a mailbox crawl;
// only mailbox-level failures abort the run.
func (s *Service) FetchInvoices(ctx context.Context) ([]InvoiceDetails, error) {
	attachments, err := s.source.FetchPDFAttachments(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	invoices := make([]InvoiceDetails, 0, len(attachments))
	for _, att := range attachments {
		text, err := extractText(att.Data)
		if err != nil {
			s.logger.Warn("Skipping unreadable PDF attachment",
				zap.String("filename", att.Filename), zap.Error(err))
			continue
		}

		details := ParseInvoiceFields(text)
		if details.PONumber == "" {
			continue
		}
		details.Subject = att.Subject
		details.Filename = att.Filename

		if err := s.archive(ctx, att); err != nil {
			s.logger.Warn("Failed to archive invoice PDF",
				zap.String("filename", att.Filename), zap.Error(err))
		}

		invoices = append(invoices, details)
	}

	s.logger.Info("Invoice fetch finished",
		zap.Int("attachments", len(attachments)),
		zap.Int("invoices", len(invoices)),
	)
	return invoices, nil
}

// ListArchived returns the object names of all archived invoice PDFs.
func (s *Service) ListArchived(ctx context.Context) ([]string, error) {
	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    archivePrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		names = append(names, path.Base(obj.Key))
	}
	return names, nil
}

// OpenArchived streams one archived invoice PDF.
func (s *Service) OpenArchived(ctx context.Context, filename string) (io.ReadCloser, error) {
	// path.Base guards against traversal out of the archive prefix.
	return s.client.GetObject(ctx, s.bucket, archivePrefix+path.Base(filename), minio.GetObjectOptions{})
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

func (s *Service) archive(ctx context.Context, att Attachment) error {
	_, err := s.client.PutObject(ctx, s.bucket, archivePrefix+path.Base(att.Filename),
		bytes.NewReader(att.Data), int64(len(att.Data)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	return err
}
