package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careboard/internal/domain"
)

func TestPublish_DeliversToSubscriber(t *testing.T) {
	b := New()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventCatalogLoaded, func(e DomainEvent) { got <- e })

	b.Publish(CatalogLoadedEvent{Rows: 7})

	select {
	case e := <-got:
		assert.Equal(t, 7, e.(CatalogLoadedEvent).Rows)
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the event")
	}
}

func TestHandlerPanic_PublishesErrorEvent(t *testing.T) {
	b := New()

	errs := make(chan ErrorEvent, 1)
	b.Subscribe(EventError, func(e DomainEvent) { errs <- e.(ErrorEvent) })
	b.Subscribe(EventTableUpdated, func(DomainEvent) { panic("handler blew up") })

	b.Publish(TableUpdatedEvent{Table: domain.Table{Entity: domain.EntityHospital}})

	select {
	case e := <-errs:
		assert.Equal(t, "An error occurred", e.Message)
	case <-time.After(time.Second):
		t.Fatal("panicked handler was left silent")
	}
}

func TestErrorHandlerPanic_DoesNotRecurse(t *testing.T) {
	b := New()

	var calls int32
	b.Subscribe(EventError, func(DomainEvent) {
		atomic.AddInt32(&calls, 1)
		panic("error handler blew up")
	})

	b.Publish(ErrorEvent{Message: "boom"})

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 5*time.Millisecond)

	// A panicking error handler must not trigger another ErrorEvent.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	b := New()

	var kept, dropped int32
	b.Subscribe(EventRecordDeleted, func(DomainEvent) { atomic.AddInt32(&kept, 1) })
	unsub := b.Subscribe(EventRecordDeleted, func(DomainEvent) { atomic.AddInt32(&dropped, 1) })
	unsub()

	b.Publish(RecordDeletedEvent{Entity: domain.EntityDoctor, Key: "3"})

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&kept) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&dropped), "unsubscribed handler must not run")
}
