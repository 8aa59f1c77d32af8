package logctx

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/sirupsen/logrus"
)

// WatermillAdapter bridges watermill's logger to logrus.
type WatermillAdapter struct {
	entry *logrus.Entry
}

func NewWatermillAdapter(logger *logrus.Logger) WatermillAdapter {
	return WatermillAdapter{entry: logrus.NewEntry(logger)}
}

func (a WatermillAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.withFields(fields).WithError(err).Error(msg)
}

func (a WatermillAdapter) Info(msg string, fields watermill.LogFields) {
	a.withFields(fields).Info(msg)
}

func (a WatermillAdapter) Debug(msg string, fields watermill.LogFields) {
	a.withFields(fields).Debug(msg)
}

func (a WatermillAdapter) Trace(msg string, fields watermill.LogFields) {
	a.withFields(fields).Trace(msg)
}

func (a WatermillAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return WatermillAdapter{entry: a.withFields(fields)}
}

func (a WatermillAdapter) withFields(fields watermill.LogFields) *logrus.Entry {
	return a.entry.WithFields(logrus.Fields(fields))
}
