package notify

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoe/portfolio-backend/internal/config"
	"github.com/jdoe/portfolio-backend/internal/models"
)

type fakeNotifier struct {
	mu   sync.Mutex
	got  []models.ContactMessage
	err  error
	done chan struct{}
}

func (f *fakeNotifier) MessageReceived(m models.ContactMessage) error {
	f.mu.Lock()
	f.got = append(f.got, m)
	f.mu.Unlock()
	if f.done != nil {
		close(f.done)
	}
	return f.err
}

func TestFromConfigWithoutChannels(t *testing.T) {
	n := FromConfig(&config.Config{})
	require.NotNil(t, n, "an unconfigured deployment still gets a notifier")
	assert.NoError(t, n.MessageReceived(models.ContactMessage{Name: "x", Email: "x@example.com"}))
}

func TestDispatchNilNotifier(t *testing.T) {
	assert.NotPanics(t, func() {
		Dispatch(nil, models.ContactMessage{Name: "x"})
	})
}

func TestDispatchDeliversAsynchronously(t *testing.T) {
	fake := &fakeNotifier{done: make(chan struct{})}
	Dispatch(fake, models.ContactMessage{Name: "visitor", Message: "hi"})
	<-fake.done

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.got, 1)
	assert.Equal(t, "visitor", fake.got[0].Name)
}

func TestMultiReportsFirstError(t *testing.T) {
	broken := &fakeNotifier{err: errors.New("smtp down")}
	working := &fakeNotifier{}
	n := multi{broken, working}

	err := n.MessageReceived(models.ContactMessage{Name: "x"})
	assert.EqualError(t, err, "smtp down")
	// Every channel is still attempted.
	assert.Len(t, working.got, 1)
}
