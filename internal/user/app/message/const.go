package message

import (
	"github.com/klwxsrx/project-manager/internal/user/domain"
	"github.com/klwxsrx/project-manager/pkg/message"
)

var TopicDomainEventUser = message.NewDomainEventTopic(domain.Name, domain.AggregateNameUser)
