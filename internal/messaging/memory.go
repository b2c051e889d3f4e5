package messaging

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

// NewMemoryChannel builds the shared in-process channel. Persistent mode
// buffers messages published before a subscriber attaches, which covers
// the startup refresh fired before the worker subscription settles.
func NewMemoryChannel() *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		Persistent: true,
	}, watermill.NopLogger{})
}

type memoryPublisher struct {
	topic   string
	channel *gochannel.GoChannel
}

type memorySubscriber struct {
	topic   string
	channel *gochannel.GoChannel
}

// NewMemoryPublisher binds a publisher to one topic on a shared channel.
// Publisher and subscriber of a topic must share the same channel.
func NewMemoryPublisher(channel *gochannel.GoChannel, topic string) IPublisher {
	return &memoryPublisher{topic: topic, channel: channel}
}

// NewMemorySubscriber binds a subscriber to one topic on a shared channel.
func NewMemorySubscriber(channel *gochannel.GoChannel, topic string) ISubscriber {
	return &memorySubscriber{topic: topic, channel: channel}
}

func (p *memoryPublisher) Publish(messages ...*message.Message) error {
	return p.channel.Publish(p.topic, messages...)
}

func (p *memoryPublisher) Close() error {
	return p.channel.Close()
}

func (s *memorySubscriber) Subscribe() <-chan *message.Message {
	messages, err := s.channel.Subscribe(context.Background(), s.topic)
	if err != nil {
		zap.L().Error("Failed to subscribe to memory topic",
			zap.String("topic", s.topic), zap.Error(err))
		return nil
	}
	return messages
}

func (s *memorySubscriber) Close() error {
	return s.channel.Close()
}
