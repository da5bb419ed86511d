package invoices

import (
	"context"
	"errors"
	"testing"

	"order-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type fakeSource struct {
	attachments []Attachment
	err         error
}

func (f *fakeSource) FetchPDFAttachments(ctx context.Context) ([]Attachment, error) {
	return f.attachments, f.err
}

// stubExtractText replaces PDF text extraction for the duration of a test;
// tests have no way to produce meaningful PDF fixtures.
func stubExtractText(t *testing.T, fn func(data []byte) (string, error)) {
	orig := extractText
	extractText = fn
	t.Cleanup(func() { extractText = orig })
}

func TestFetchInvoices(t *testing.T) {
	t.Run("Extracts And Archives Recognized Invoices", func(t *testing.T) {
		stubExtractText(t, func(data []byte) (string, error) {
			return string(data), nil
		})

		source := &fakeSource{attachments: []Attachment{
			{Subject: "PO from ACME", Filename: "po-42.pdf", Data: []byte("P.O. Number: PO-42\nDate: 01/03/2024")},
			{Subject: "Newsletter", Filename: "flyer.pdf", Data: []byte("no purchase order here")},
		}}

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "invoices").Return(true, nil)
		client.On("PutObject", mock.Anything, "invoices", "invoices/po-42.pdf",
			mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		svc := NewService(source, client, "invoices", zap.NewNop())
		records, err := svc.FetchInvoices(context.Background())
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "PO-42", records[0].PONumber)
		assert.Equal(t, "PO from ACME", records[0].Subject)
		assert.Equal(t, "po-42.pdf", records[0].Filename)

		// The flyer must not be archived.
		client.AssertNumberOfCalls(t, "PutObject", 1)
	})

	t.Run("Skips Unreadable PDFs", func(t *testing.T) {
		stubExtractText(t, func(data []byte) (string, error) {
			return "", errors.New("corrupt pdf")
		})

		source := &fakeSource{attachments: []Attachment{
			{Subject: "PO", Filename: "broken.pdf", Data: []byte("x")},
		}}

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "invoices").Return(true, nil)

		svc := NewService(source, client, "invoices", zap.NewNop())
		records, err := svc.FetchInvoices(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Mailbox Failure Aborts", func(t *testing.T) {
		source := &fakeSource{err: errors.New("imap down")}
		svc := NewService(source, new(mocks.Client), "invoices", zap.NewNop())

		_, err := svc.FetchInvoices(context.Background())
		assert.Error(t, err)
	})

	t.Run("Creates Missing Bucket", func(t *testing.T) {
		stubExtractText(t, func(data []byte) (string, error) {
			return "P.O. Number: PO-1", nil
		})

		source := &fakeSource{attachments: []Attachment{
			{Subject: "PO", Filename: "po-1.pdf", Data: []byte("x")},
		}}

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "invoices").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "invoices", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "invoices", "invoices/po-1.pdf",
			mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		svc := NewService(source, client, "invoices", zap.NewNop())
		records, err := svc.FetchInvoices(context.Background())
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		client.AssertExpectations(t)
	})
}
