package bus_test

import (
	"testing"
	"time"

	"github.com/mindhaven/backend/internal/bus"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := bus.New()
	first, cancelFirst := b.Subscribe()
	second, cancelSecond := b.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	b.Publish(bus.Event{Topic: bus.TopicOpenChat, Payload: "promo"})

	for _, ch := range []<-chan bus.Event{first, second} {
		select {
		case evt := <-ch:
			if evt.Topic != bus.TopicOpenChat || evt.Payload != "promo" {
				t.Fatalf("unexpected event: %+v", evt)
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := bus.New()
	ch, cancel := b.Subscribe()
	cancel()

	b.Publish(bus.Event{Topic: bus.TopicOpenChat})

	if _, open := <-ch; open {
		t.Fatal("cancelled subscription should have a closed channel")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	b := bus.New()
	_, cancel := b.Subscribe()
	cancel()
	cancel()
}

func TestPublishNeverBlocks(t *testing.T) {
	b := bus.New()
	_, cancel := b.Subscribe()
	defer cancel()

	// Nobody is draining; publishing past the buffer must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish(bus.Event{Topic: bus.TopicOpenChat})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}
