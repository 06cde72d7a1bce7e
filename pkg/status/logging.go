package status

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about a rewrite run
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogAttachmentChange logs one attachment change with appropriate prefix and formatting
func (u *UserLogger) LogAttachmentChange(info AttachmentInfo) {
	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch info.Status {
	case StatusRenamed:
		prefix = "✏️"
		action = "Renamed"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case StatusRetyped:
		prefix = "🔄"
		action = "Retyped"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case StatusSkipped:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	default:
		prefix = "❌"
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s item %d", action, info.ItemIndex)
	if info.Property != "" {
		msg += fmt.Sprintf(" (%s)", info.Property)
	}
	if info.Status == StatusRenamed {
		msg += fmt.Sprintf(": %q → %q", info.OldFileName, info.NewFileName)
	} else if info.Status == StatusRetyped {
		msg += fmt.Sprintf(": %s → %s", info.OldMimeType, info.NewMimeType)
	}

	if info.Error != nil {
		printer.Println(msg)
		pterm.Error.Println(info.Error)
		u.log.Error().Err(info.Error).Msg(msg) // Also log to zerolog for debugging
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg) // Also log to zerolog for debugging
	}
}

// 📊 LogRunChange logs a change to the overall run
func (u *UserLogger) LogRunChange(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}
