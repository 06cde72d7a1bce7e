package status

import (
	"fmt"
)

// AttachmentFormatter defines how attachment operations and progress are formatted
type AttachmentFormatter interface {
	// FormatAttachmentOperation formats a single attachment transformation
	FormatAttachmentOperation(info AttachmentInfo) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultAttachmentFormatter provides a default implementation of AttachmentFormatter
type DefaultAttachmentFormatter struct{}

// NewDefaultAttachmentFormatter creates a new DefaultAttachmentFormatter
func NewDefaultAttachmentFormatter() *DefaultAttachmentFormatter {
	return &DefaultAttachmentFormatter{}
}

// FormatAttachmentOperation formats an attachment operation with emojis
func (f *DefaultAttachmentFormatter) FormatAttachmentOperation(info AttachmentInfo) string {
	switch info.Status {
	case StatusSkipped:
		return fmt.Sprintf("⏭️  Skipped item %d (no attachment matching selector)", info.ItemIndex)
	case StatusRenamed:
		return fmt.Sprintf("✏️  item %d %s: %s → %s, %q → %q",
			info.ItemIndex, info.Property,
			info.OldMimeType, info.NewMimeType,
			info.OldFileName, info.NewFileName)
	case StatusRetyped:
		return fmt.Sprintf("📝 item %d %s: %s → %s",
			info.ItemIndex, info.Property,
			info.OldMimeType, info.NewMimeType)
	default:
		return fmt.Sprintf("❔ item %d %s", info.ItemIndex, info.Property)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultAttachmentFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultAttachmentFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
