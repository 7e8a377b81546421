//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Producer=Producer"
package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/pkg/strings"
)

type (
	Topic string

	Message struct {
		ID      uuid.UUID
		Type    string
		Topic   Topic
		Key     string
		Payload []byte
	}

	Producer interface {
		Send(ctx context.Context, msg *Message) error
	}
)

// NewDomainEventTopic names the topic that carries events of one aggregate.
func NewDomainEventTopic(domainName, aggregateName string) Topic {
	return Topic(fmt.Sprintf("persistent://public/default/%s-%s-events", strings.ToKebabCase(domainName), strings.ToKebabCase(aggregateName)))
}
