package broker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []int64
	closed    chan struct{}
}

func newFakeReader(msgs ...kafka.Message) *fakeReader {
	return &fakeReader{msgs: msgs, closed: make(chan struct{})}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()

	if len(r.msgs) > 0 {
		m := r.msgs[0]
		r.msgs = r.msgs[1:]
		r.mu.Unlock()

		return m, nil
	}

	r.mu.Unlock()

	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case <-r.closed:
		return kafka.Message{}, io.EOF
	}
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}

	return nil
}

func (r *fakeReader) Close() error {
	close(r.closed)
	return nil
}

func (r *fakeReader) Committed() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int64(nil), r.committed...)
}

func TestConsumer_Consume(t *testing.T) {
	t.Parallel()

	r := newFakeReader(
		kafka.Message{Topic: "contract-uploaded", Offset: 1},
		kafka.Message{Topic: "unknown", Offset: 2},
		kafka.Message{Topic: "contract-uploaded", Offset: 3},
	)

	c := newConsumer(slog.Default(), r, 0)

	var (
		mu    sync.Mutex
		calls = map[int64]int{}
	)

	c.Handle("contract-uploaded", func(_ context.Context, m kafka.Message) error {
		mu.Lock()
		defer mu.Unlock()

		calls[m.Offset]++

		if m.Offset == 3 {
			return errors.New("smtp down")
		}

		return nil
	})

	c.Consume(context.Background())

	require.Eventually(t, func() bool {
		return len(r.Committed()) == 3
	}, time.Second, 10*time.Millisecond)

	c.Close()

	require.Equal(t, []int64{1, 2, 3}, r.Committed())

	mu.Lock()
	defer mu.Unlock()

	require.Equal(t, map[int64]int{1: 1, 3: handleAttempts}, calls)
}

func TestConsumer_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	r := newFakeReader()
	c := newConsumer(slog.Default(), r, 0)

	ctx, cancel := context.WithCancel(context.Background())
	c.Consume(ctx)
	cancel()

	c.Close()
	require.Empty(t, r.Committed())
}
