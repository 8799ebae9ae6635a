package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Размер буфера канала подписчика. Отставший подписчик теряет события:
// это безопасно, потому что каждое событие - лишь триггер полной перезагрузки.
const subscriberBuffer = 16

var (
	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("notify: failed to publish event")

	// ErrSubscribe возвращается при ошибке оформления подписки
	ErrSubscribe = errors.New("notify: failed to subscribe")
)

// Bus шина уведомлений об изменениях бронирований поверх redis pub/sub.
// Создание и отмена бронирования публикуют событие; каждый открытый
// SSE-стрим держит подписку и транслирует события клиенту.
type Bus struct {
	client  *redis.Client
	channel string
	log     Logger
}

// NewBus создает шину уведомлений
func NewBus(addr, password string, db int, channel string, log Logger) *Bus {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Bus{
		client:  client,
		channel: channel,
		log:     log,
	}
}

// Ping проверяет соединение с Redis
func (b *Bus) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Close закрывает соединение с Redis
func (b *Bus) Close() error {
	return b.client.Close()
}

// Publish отправляет событие в канал
func (b *Bus) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}

	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	b.log.Info("notify: published %s event for booking id=%d, facility id=%d",
		event.Op, event.BookingID, event.FacilityID)
	return nil
}

// Subscribe оформляет подписку на события.
// Канал закрывается при отмене контекста или закрытии подписки;
// вызывающий обязан дочитать канал до закрытия либо отменить контекст.
func (b *Bus) Subscribe(ctx context.Context) (<-chan Event, error) {
	pubsub := b.client.Subscribe(ctx, b.channel)

	// Дожидаемся подтверждения подписки, чтобы не терять ранние события
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("%w: %v", ErrSubscribe, err)
	}

	events := make(chan Event, subscriberBuffer)

	go func() {
		defer close(events)
		defer pubsub.Close()

		src := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-src:
				if !ok {
					return
				}

				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					b.log.Warn("notify: failed to decode event payload: %v", err)
					continue
				}

				select {
				case events <- event:
				default:
					// Подписчик не успевает - событие можно уронить,
					// следующее всё равно вызовет перезагрузку
					b.log.Warn("notify: subscriber is slow, dropping %s event", event.Op)
				}
			}
		}
	}()

	return events, nil
}
