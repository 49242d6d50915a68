package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records the CLI command under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// KeyID records a public key fingerprint under the key "key_id".
func KeyID(id string) slog.Attr {
	return slog.String("key_id", id)
}

// TokenSize records a token length in bytes under the key "token_size".
func TokenSize(n int) slog.Attr {
	return slog.Int("token_size", n)
}

// DataKind records the shape of token data under the key "data_kind".
func DataKind(kind string) slog.Attr {
	return slog.String("data_kind", kind)
}
