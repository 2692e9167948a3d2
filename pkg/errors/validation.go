package errors

import (
	"unicode/utf8"
)

// MaxTextBytes bounds the payload accepted by [ValidateText].
const MaxTextBytes = 1 << 20

// ValidateText checks that text can be handed to the frame renderer.
// The renderer accepts any string; this guards the transport layers, which
// must only forward decoded Unicode text.
func ValidateText(text string) error {
	if len(text) > MaxTextBytes {
		return New(ErrCodeInvalidInput, "text too long (max %d bytes)", MaxTextBytes)
	}
	if !utf8.ValidString(text) {
		return New(ErrCodeInvalidEncoding, "text is not valid UTF-8")
	}
	return nil
}

// ValidateCommandName validates a command name for registration and dispatch.
//
// Names are snake_case identifiers:
//   - Not empty
//   - Maximum length of 64 characters
//   - Lowercase ASCII letters, digits and underscores only
//   - Must start with a letter
func ValidateCommandName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "command name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "command name too long (max 64 characters)")
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r >= '0' && r <= '9' || r == '_'):
		default:
			return New(ErrCodeInvalidInput, "command name contains invalid character: %q", r)
		}
	}
	return nil
}
