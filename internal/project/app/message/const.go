package message

import (
	"github.com/klwxsrx/project-manager/internal/project/domain"
	"github.com/klwxsrx/project-manager/pkg/message"
)

var TopicDomainEventProject = message.NewDomainEventTopic(domain.Name, domain.AggregateNameProject)
