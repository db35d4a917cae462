package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Supported chat attachment types.
const (
	AttachmentVideo = "video"
	AttachmentAudio = "audio"
	AttachmentImage = "image"
	AttachmentFile  = "file"
)

var supportedAttachmentTypes = map[string]bool{
	AttachmentVideo: true,
	AttachmentAudio: true,
	AttachmentImage: true,
	AttachmentFile:  true,
}

// MessageAttachment is a file attached to a chat message.
type MessageAttachment struct {
	Type string `bson:"type" json:"type"`
	URL  string `bson:"url" json:"url"`
}

// Validate checks the attachment type against the supported set.
func (a MessageAttachment) Validate() error {
	if !supportedAttachmentTypes[a.Type] {
		return fmt.Errorf("unsupported attachment type: %s", a.Type)
	}
	return nil
}

// Message is one chat message in a conversation between a set of users.
type Message struct {
	Timestamp   time.Time           `bson:"timestamp" json:"timestamp"`
	FromUser    uint                `bson:"from_user" json:"from_user"`
	Text        string              `bson:"text" json:"text"`
	Attachments []MessageAttachment `bson:"attachments" json:"attachments"`
}

// Validate checks every attachment on the message.
func (m *Message) Validate() error {
	for _, attachment := range m.Attachments {
		if err := attachment.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ChatID derives the conversation key for a set of participants. The id is
// stable under reordering and duplicates so the same group of users always
// maps to the same conversation.
func ChatID(userIDs []uint) string {
	unique := make(map[uint]bool, len(userIDs))
	for _, id := range userIDs {
		unique[id] = true
	}

	ids := make([]uint, 0, len(unique))
	for id := range unique {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(sum[:])
}
