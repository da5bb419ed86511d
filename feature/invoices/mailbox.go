package invoices

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/mail"
)

// Attachment is one PDF attachment pulled from the mailbox, together with the
// subject of the message that carried it.
type Attachment struct {
	Subject  string
	Filename string
	Data     []byte
}

// MessageSource supplies PDF attachments for invoice extraction.
type MessageSource interface {
	FetchPDFAttachments(ctx context.Context) ([]Attachment, error)
}

// Mailbox fetches invoice attachments from an IMAP inbox.
type Mailbox struct {
	cfg Config
}

// NewMailbox creates a mailbox bound to the configured IMAP account.
func NewMailbox(cfg Config) *Mailbox {
	return &Mailbox{cfg: cfg}
}

// FetchPDFAttachments connects to the inbox, searches messages received
// today, and returns every application/pdf attachment found. Messages that
// fail to parse are skipped; the mailbox is left unmodified (no seen flags).
func (m *Mailbox) FetchPDFAttachments(ctx context.Context) ([]Attachment, error) {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	c, err := client.DialTLS(addr, &tls.Config{InsecureSkipVerify: m.cfg.InsecureSkipVerify})
	if err != nil {
		return nil, fmt.Errorf("imap dial failed: %w", err)
	}
	defer c.Logout()

	if err := c.Login(m.cfg.User, m.cfg.Password); err != nil {
		return nil, fmt.Errorf("imap login failed: %w", err)
	}

	if _, err := c.Select("INBOX", false); err != nil {
		return nil, fmt.Errorf("failed to open inbox: %w", err)
	}

	criteria := imap.NewSearchCriteria()
	year, month, day := time.Now().Date()
	criteria.Since = time.Date(year, month, day, 0, 0, 0, 0, time.Local)

	ids, err := c.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("imap search failed: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	section := &imap.BodySectionName{Peek: true}
	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, []imap.FetchItem{section.FetchItem()}, messages)
	}()

	var attachments []Attachment
	for msg := range messages {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		body := msg.GetBody(section)
		if body == nil {
			continue
		}
		attachments = append(attachments, pdfAttachments(body)...)
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("imap fetch failed: %w", err)
	}
	return attachments, nil
}

// pdfAttachments parses one raw message and collects its PDF attachments.
// A message that cannot be parsed yields nothing.
func pdfAttachments(body io.Reader) []Attachment {
	mr, err := mail.CreateReader(body)
	if err != nil {
		return nil
	}

	subject, _ := mr.Header.Subject()

	var attachments []Attachment
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		ah, ok := part.Header.(*mail.AttachmentHeader)
		if !ok {
			continue
		}

		contentType, _, err := ah.ContentType()
		if err != nil || !strings.EqualFold(contentType, "application/pdf") {
			continue
		}

		filename, err := ah.Filename()
		if err != nil || filename == "" {
			continue
		}

		data, err := io.ReadAll(part.Body)
		if err != nil {
			continue
		}

		attachments = append(attachments, Attachment{
			Subject:  subject,
			Filename: filename,
			Data:     data,
		})
	}
	return attachments
}
