// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	entryIndent = 4  // spaces to indent attachment entries
	nameWidth   = 35 // Base width for filename
	mimeWidth   = 24 // Width for MIME type
	statusWidth = 12 // Width for status text
)

// 🎯 AttachmentOperation represents one attachment transformation for logging
type AttachmentOperation struct {
	ItemIndex int    // Item position in the input list
	Property  string // Binary property name
	FileName  string // Filename after the rewrite
	MimeType  string // MIME type after the rewrite
	Status    string // Operation status (RETYPED/RENAMED/SKIPPED)
	IsRenamed bool   // Whether the filename was rewritten
	IsSkipped bool   // Whether the item was passed through untouched
}

// 📦 RunOperation represents one rewrite run for logging
type RunOperation struct {
	Source   string // Item source description
	MimeType string // Target MIME type
	Output   string // Output destination
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentOp  *RunOperation
	operations []AttachmentOperation
}

// 🏭 New creates a new logger. Structured log output goes to stderr so the
// item document on stdout stays parseable.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatAttachmentOperation formats an attachment operation for display
func (l *Logger) formatAttachmentOperation(op AttachmentOperation) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	case op.IsRenamed:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '✓'
		symbolColor = color.FgGreen
	}

	name := op.FileName
	if name == "" {
		name = fmt.Sprintf("(item %d, %s)", op.ItemIndex, op.Property)
	}

	// Build the line
	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", entryIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, name),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", mimeWidth, op.MimeType)),
		fmt.Sprintf("%-*s", statusWidth, op.Status))
}

// 📝 LogAttachmentOperation logs an attachment operation
func (l *Logger) LogAttachmentOperation(ctx context.Context, op AttachmentOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Add to operations list
	l.operations = append(l.operations, op)

	// Format and print
	fmt.Fprintln(l.console, l.formatAttachmentOperation(op))

	// Log to zerolog
	l.zlog.Info().
		Int("item", op.ItemIndex).
		Str("property", op.Property).
		Str("file", op.FileName).
		Str("mime_type", op.MimeType).
		Str("status", op.Status).
		Bool("is_renamed", op.IsRenamed).
		Bool("is_skipped", op.IsSkipped).
		Msg("attachment operation")
}

// 📝 StartRunOperation starts a new rewrite run
func (l *Logger) StartRunOperation(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil

	// Print run header
	fmt.Fprintf(l.console, "[rewriting %s]\n",
		color.New(color.FgCyan).Sprint(op.Source))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.MimeType),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(op.Output))

	// Log to zerolog
	l.zlog.Info().
		Str("source", op.Source).
		Str("mime_type", op.MimeType).
		Str("output", op.Output).
		Msg("starting rewrite run")
}

// 📝 EndRunOperation ends the current rewrite run
func (l *Logger) EndRunOperation(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	// Log summary
	l.zlog.Info().
		Str("source", l.currentOp.Source).
		Int("attachments", len(l.operations)).
		Msg("rewrite run complete")

	l.currentOp = nil
	l.operations = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	brand := color.New(color.Bold, color.FgCyan).Sprint("remime")
	fmt.Fprintf(l.console, "\n%s %s\n\n", brand, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
