package mailer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of Sender interface.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func TestMailer_Send(t *testing.T) {
	t.Parallel()

	t.Run("prepares and delivers the message", func(t *testing.T) {
		t.Parallel()

		content := []byte("%PDF-1.4 fake certificate")
		path := filepath.Join(t.TempDir(), "Alice-0001.pdf")
		require.NoError(t, os.WriteFile(path, content, 0o644))

		mockSender := &MockSender{}
		mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
			return email.To[0] == "alice@example.com" &&
				email.Subject == "Your Certificate" &&
				len(email.HTML) > 0 &&
				len(email.Attachments) == 1 &&
				email.Attachments[0].Filename == "Alice-0001.pdf" &&
				email.Attachments[0].ContentType == "application/pdf" &&
				string(email.Attachments[0].Content) == string(content)
		})).Return(nil)

		m := New(mockSender)
		err := m.Send(context.Background(), SendParams{
			To:             "alice@example.com",
			Subject:        "Your Certificate",
			Body:           "Congratulations **Alice**!",
			AttachmentPath: path,
		})

		require.NoError(t, err)
		mockSender.AssertExpectations(t)
	})

	t.Run("leaves the attachment file on disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cert.pdf")
		require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

		mockSender := &MockSender{}
		mockSender.On("Send", mock.Anything, mock.Anything).Return(nil)

		m := New(mockSender)
		require.NoError(t, m.Send(context.Background(), SendParams{
			To:             "alice@example.com",
			Subject:        "s",
			Body:           "b",
			AttachmentPath: path,
		}))

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("requires a recipient", func(t *testing.T) {
		t.Parallel()

		mockSender := &MockSender{}
		m := New(mockSender)

		err := m.Send(context.Background(), SendParams{Subject: "s", Body: "b"})
		require.ErrorIs(t, err, ErrNoRecipient)
		mockSender.AssertNotCalled(t, "Send")
	})

	t.Run("fails when the attachment is unreadable", func(t *testing.T) {
		t.Parallel()

		mockSender := &MockSender{}
		m := New(mockSender)

		err := m.Send(context.Background(), SendParams{
			To:             "alice@example.com",
			Subject:        "s",
			Body:           "b",
			AttachmentPath: filepath.Join(t.TempDir(), "missing.pdf"),
		})
		require.ErrorIs(t, err, ErrAttachmentRead)
		mockSender.AssertNotCalled(t, "Send")
	})

	t.Run("wraps provider failures in ErrSendFailed", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cert.pdf")
		require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

		mockSender := &MockSender{}
		mockSender.On("Send", mock.Anything, mock.Anything).Return(context.DeadlineExceeded)

		m := New(mockSender)
		err := m.Send(context.Background(), SendParams{
			To:             "alice@example.com",
			Subject:        "s",
			Body:           "b",
			AttachmentPath: path,
		})
		require.ErrorIs(t, err, ErrSendFailed)
	})
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	require.Equal(t, "alice@example.com", Recipient("", "alice@example.com"))
	require.Equal(t, "Alice <alice@example.com>", Recipient("Alice", "alice@example.com"))
}
