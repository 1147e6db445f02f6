package realtime

import (
	"testing"
)

func TestNewBroadcaster(t *testing.T) {
	b := NewBroadcaster[string](0)
	if b == nil {
		t.Fatal("NewBroadcaster returned nil")
	}
	if b.buffer != DefaultBuffer {
		t.Errorf("buffer = %d, want %d", b.buffer, DefaultBuffer)
	}
}

func TestBroadcaster_PublishDeliversToMultipleSubscribers(t *testing.T) {
	b := NewBroadcaster[string](1)
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()
	defer b.Unsubscribe(ch1)
	defer b.Unsubscribe(ch2)

	if dropped := b.Publish("refresh"); dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
	if got := <-ch1; got != "refresh" {
		t.Errorf("ch1 got %q, want refresh", got)
	}
	if got := <-ch2; got != "refresh" {
		t.Errorf("ch2 got %q, want refresh", got)
	}
}

func TestBroadcaster_DropsForLaggingSubscriber(t *testing.T) {
	b := NewBroadcaster[int](1)
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Publish(1)
	if dropped := b.Publish(2); dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if got := <-ch; got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster[int](1)
	ch := b.Subscribe()
	b.Unsubscribe(ch)
	b.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Error("channel should be closed after Unsubscribe")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestBroadcaster_CloseEndsSubscriptions(t *testing.T) {
	b := NewBroadcaster[int](1)
	ch := b.Subscribe()

	b.Close()
	b.Close()

	if _, open := <-ch; open {
		t.Error("channel should be closed after Close")
	}
	if dropped := b.Publish(1); dropped != 0 {
		t.Errorf("dropped = %d, want 0 after Close", dropped)
	}
	late := b.Subscribe()
	if _, open := <-late; open {
		t.Error("Subscribe after Close should return a closed channel")
	}
	b.Unsubscribe(late)
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}
