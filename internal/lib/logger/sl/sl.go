package sl

import (
	"golang.org/x/exp/slog"
)

func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

func Count(key string, n int) slog.Attr {
	return slog.Attr{
		Key:   key,
		Value: slog.IntValue(n),
	}
}
