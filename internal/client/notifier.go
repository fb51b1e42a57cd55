package client

import (
	"github.com/SscSPs/invoicing_app/internal/i18n"
	"github.com/rs/zerolog"
)

// Notifier shows the outcome of a mutation to the user.
type Notifier interface {
	// Processing reports that a mutation has been sent.
	Processing()
	// Success reports a completed mutation by message key, e.g. "created_resource".
	Success(messageKey string)
	// Error reports a failed mutation with a generic message.
	Error()
	// Dismiss clears the processing notification; used when field errors are shown inline.
	Dismiss()
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Processing() {}
func (NopNotifier) Success(string) {}
func (NopNotifier) Error() {}
func (NopNotifier) Dismiss() {}

// LogNotifier writes translated notifications to a logger.
type LogNotifier struct {
	Logger     zerolog.Logger
	Translator i18n.Translator
}

// NewLogNotifier creates a LogNotifier. A nil translator uses English.
func NewLogNotifier(logger zerolog.Logger, t i18n.Translator) *LogNotifier {
	if t == nil {
		t = i18n.English()
	}
	return &LogNotifier{Logger: logger, Translator: t}
}

func (n *LogNotifier) Processing() {
	n.Logger.Debug().Msg(n.Translator.T("processing"))
}

func (n *LogNotifier) Success(messageKey string) {
	n.Logger.Info().Str("key", messageKey).Msg(n.Translator.T(messageKey))
}

func (n *LogNotifier) Error() {
	n.Logger.Error().Msg(n.Translator.T("error_title"))
}

func (n *LogNotifier) Dismiss() {}
