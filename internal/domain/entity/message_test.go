package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatIDOrderIndependent(t *testing.T) {
	a := ChatID([]uint{1, 2, 3})
	b := ChatID([]uint{3, 1, 2})
	assert.Equal(t, a, b)
}

func TestChatIDIgnoresDuplicates(t *testing.T) {
	a := ChatID([]uint{1, 2})
	b := ChatID([]uint{2, 1, 2, 1})
	assert.Equal(t, a, b)
}

func TestChatIDDistinctGroups(t *testing.T) {
	a := ChatID([]uint{1, 2})
	b := ChatID([]uint{1, 3})
	assert.NotEqual(t, a, b)
}

func TestChatIDIsHex(t *testing.T) {
	id := ChatID([]uint{42})
	require.Len(t, id, 64)
	for _, r := range id {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestMessageAttachmentValidate(t *testing.T) {
	for _, attachmentType := range []string{AttachmentVideo, AttachmentAudio, AttachmentImage, AttachmentFile} {
		attachment := MessageAttachment{Type: attachmentType, URL: "https://cdn.example.com/x"}
		assert.NoError(t, attachment.Validate())
	}

	attachment := MessageAttachment{Type: "hologram", URL: "https://cdn.example.com/x"}
	assert.Error(t, attachment.Validate())
}

func TestMessageValidate(t *testing.T) {
	message := &Message{
		Timestamp: time.Now(),
		FromUser:  1,
		Text:      "checkup at 3pm",
		Attachments: []MessageAttachment{
			{Type: AttachmentImage, URL: "https://cdn.example.com/scan.png"},
		},
	}
	assert.NoError(t, message.Validate())

	message.Attachments = append(message.Attachments, MessageAttachment{Type: "hologram"})
	assert.Error(t, message.Validate())
}
