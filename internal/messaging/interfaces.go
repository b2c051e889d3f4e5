// Package messaging wraps the watermill pub/sub primitives used for
// in-process eventing. Only the in-memory provider is wired today; the
// interfaces keep a broker swap from leaking into callers.
package messaging

import (
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisher interface {
	Publish(messages ...*message.Message) error
	Close() error
}

type ISubscriber interface {
	Subscribe() <-chan *message.Message
	Close() error
}
