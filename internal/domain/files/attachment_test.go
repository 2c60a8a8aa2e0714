package files

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachment(t *testing.T) {
	tenantID := uuid.New()
	uploader := uuid.New()

	t.Run("registers pending attachment", func(t *testing.T) {
		attachment, err := NewAttachment(tenantID, uploader, "report.pdf", 2048, "application/pdf", "uploads/2026/report.pdf")

		require.NoError(t, err)
		assert.Equal(t, AttachmentStatusPending, attachment.Status)
		assert.Nil(t, attachment.OwnerID)
		assert.Empty(t, attachment.OwnerType)
		assert.Equal(t, "report.pdf", attachment.FileName)
		assert.Equal(t, int64(2048), attachment.FileSize)
		assert.Equal(t, uploader, attachment.UploadedBy)
		assert.False(t, attachment.IsDownloadable())
		assert.Len(t, attachment.GetDomainEvents(), 1)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		attachment, err := NewAttachment(tenantID, uploader, "big.zip", MaxAttachmentFileSize+1, "application/zip", "uploads/big.zip")

		assert.Error(t, err)
		assert.Nil(t, attachment)
	})

	t.Run("rejects zero size", func(t *testing.T) {
		attachment, err := NewAttachment(tenantID, uploader, "empty.pdf", 0, "application/pdf", "uploads/empty.pdf")

		assert.Error(t, err)
		assert.Nil(t, attachment)
	})

	t.Run("rejects disallowed content type", func(t *testing.T) {
		attachment, err := NewAttachment(tenantID, uploader, "app.exe", 1024, "application/x-msdownload", "uploads/app.exe")

		assert.Error(t, err)
		assert.Nil(t, attachment)
	})

	t.Run("rejects path traversal in file name", func(t *testing.T) {
		attachment, err := NewAttachment(tenantID, uploader, "../etc/passwd", 1024, "text/plain", "uploads/x")

		assert.Error(t, err)
		assert.Nil(t, attachment)
	})

	t.Run("rejects traversal in storage key", func(t *testing.T) {
		attachment, err := NewAttachment(tenantID, uploader, "a.txt", 1024, "text/plain", "uploads/../secrets")

		assert.Error(t, err)
		assert.Nil(t, attachment)
	})

	t.Run("rejects overlong file name", func(t *testing.T) {
		attachment, err := NewAttachment(tenantID, uploader, strings.Repeat("a", 256), 1024, "text/plain", "uploads/long")

		assert.Error(t, err)
		assert.Nil(t, attachment)
	})
}

func TestAttachmentLifecycle(t *testing.T) {
	tenantID := uuid.New()
	uploader := uuid.New()

	newPending := func(t *testing.T) *Attachment {
		attachment, err := NewAttachment(tenantID, uploader, "photo.png", 512, "image/png", "uploads/photo.png")
		require.NoError(t, err)
		return attachment
	}

	t.Run("confirm then link", func(t *testing.T) {
		attachment := newPending(t)

		require.NoError(t, attachment.Confirm())
		assert.Equal(t, AttachmentStatusUploaded, attachment.Status)
		assert.True(t, attachment.IsDownloadable())

		owner := uuid.New()
		require.NoError(t, attachment.LinkTo("contact", owner))
		assert.Equal(t, AttachmentStatusLinked, attachment.Status)
		assert.Equal(t, "contact", attachment.OwnerType)
		require.NotNil(t, attachment.OwnerID)
		assert.Equal(t, owner, *attachment.OwnerID)
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		attachment := newPending(t)
		require.NoError(t, attachment.Confirm())

		assert.Error(t, attachment.Confirm())
	})

	t.Run("cannot link before confirm", func(t *testing.T) {
		attachment := newPending(t)

		assert.Error(t, attachment.LinkTo("contact", uuid.New()))
	})

	t.Run("cannot link to unknown owner type", func(t *testing.T) {
		attachment := newPending(t)
		require.NoError(t, attachment.Confirm())

		assert.Error(t, attachment.LinkTo("invoice", uuid.New()))
	})

	t.Run("cannot link twice", func(t *testing.T) {
		attachment := newPending(t)
		require.NoError(t, attachment.Confirm())
		require.NoError(t, attachment.LinkTo("meeting", uuid.New()))

		assert.Error(t, attachment.LinkTo("meeting", uuid.New()))
	})
}

func TestIsOwnerTypeAllowed(t *testing.T) {
	assert.True(t, IsOwnerTypeAllowed("approval"))
	assert.True(t, IsOwnerTypeAllowed("offboarding"))
	assert.False(t, IsOwnerTypeAllowed("product"))
}
