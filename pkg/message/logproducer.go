package message

import (
	"context"

	"github.com/klwxsrx/project-manager/pkg/log"
)

type logProducer struct {
	logger log.Logger
	level  log.Level
}

// NewLogProducer writes messages to the log instead of a broker.
func NewLogProducer(logger log.Logger, level log.Level) Producer {
	return logProducer{logger: logger, level: level}
}

func (p logProducer) Send(ctx context.Context, msg *Message) error {
	p.logger.With(log.Fields{
		"messageID":   msg.ID.String(),
		"messageType": msg.Type,
		"topic":       string(msg.Topic),
		"key":         msg.Key,
		"payload":     string(msg.Payload),
	}).Log(ctx, p.level, "message produced")

	return nil
}
