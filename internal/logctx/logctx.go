package logctx

import (
	"context"

	"github.com/sirupsen/logrus"
)

type entryKey struct{}

type correlationKey struct{}

// ToContext stores a logrus entry in the context so downstream code logs with
// the fields accumulated so far.
func ToContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, entryKey{}, entry)
}

// FromContext returns the entry stored by ToContext, or an entry on the
// standard logger when none is present.
func FromContext(ctx context.Context) *logrus.Entry {
	entry, ok := ctx.Value(entryKey{}).(*logrus.Entry)
	if !ok {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return entry
}

func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationKey{}, correlationID)
}

func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}
