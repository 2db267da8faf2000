package hub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoganov/ancora/internal/server/models"
)

func doc(userID, collection, id string) *models.Document {
	return &models.Document{UserID: userID, Collection: collection, ID: id}
}

func TestPublishReachesSubscriber(t *testing.T) {
	h := New()

	ch, cancel := h.Subscribe("u1", "exposures")
	defer cancel()

	h.Publish(Event{Type: EventModified, Doc: doc("u1", "exposures", "e1")})

	ev := <-ch
	assert.Equal(t, EventModified, ev.Type)
	assert.Equal(t, "e1", ev.Doc.ID)
}

func TestPublishScopedByUserAndCollection(t *testing.T) {
	h := New()

	mine, cancelMine := h.Subscribe("u1", "exposures")
	defer cancelMine()
	otherUser, cancelOther := h.Subscribe("u2", "exposures")
	defer cancelOther()
	otherCollection, cancelColl := h.Subscribe("u1", "sessions")
	defer cancelColl()

	h.Publish(Event{Type: EventModified, Doc: doc("u1", "exposures", "e1")})

	require.Len(t, mine, 1)
	assert.Empty(t, otherUser)
	assert.Empty(t, otherCollection)
}

func TestPublishFansOutToAllDevices(t *testing.T) {
	h := New()

	a, cancelA := h.Subscribe("u1", "exposures")
	defer cancelA()
	b, cancelB := h.Subscribe("u1", "exposures")
	defer cancelB()

	h.Publish(Event{Type: EventRemoved, Doc: doc("u1", "exposures", "e1")})

	require.Len(t, a, 1)
	require.Len(t, b, 1)
}

func TestCancelClosesChannel(t *testing.T) {
	h := New()

	ch, cancel := h.Subscribe("u1", "exposures")
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// publishing after cancel must not panic or deliver
	h.Publish(Event{Type: EventModified, Doc: doc("u1", "exposures", "e1")})
}

func TestCancelIsIdempotent(t *testing.T) {
	h := New()

	_, cancel := h.Subscribe("u1", "exposures")
	cancel()
	assert.NotPanics(t, func() { cancel() })
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	h := New()

	ch, cancel := h.Subscribe("u1", "exposures")
	defer cancel()

	for i := 0; i < subscriberBuffer+10; i++ {
		h.Publish(Event{Type: EventModified, Doc: doc("u1", "exposures", "e1")})
	}

	assert.Len(t, ch, subscriberBuffer)
}
