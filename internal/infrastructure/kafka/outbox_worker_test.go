package kafka

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/matjar-tech/catalog-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workerLogger struct{}

func (workerLogger) Debugf(format string, args ...any)            {}
func (workerLogger) Infof(format string, args ...any)             {}
func (workerLogger) Warnf(format string, args ...any)             {}
func (workerLogger) Errorf(err error, format string, args ...any) {}

type memOutboxRepo struct {
	mu        sync.Mutex
	events    []*usecase.OutboxEvent
	processed []int64
}

func (r *memOutboxRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return event, nil
}

func (r *memOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	batch := make([]*usecase.OutboxEvent, 0, limit)
	for _, ev := range r.events {
		if ev.Status != usecase.Pending {
			continue
		}
		ev.Status = usecase.Processing
		batch = append(batch, ev)
		if len(batch) == limit {
			break
		}
	}
	return batch, nil
}

func (r *memOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ev := range r.events {
		if ev.ID == id && ev.Status == usecase.Processing {
			ev.Status = usecase.Processed
			r.processed = append(r.processed, id)
		}
	}
	return nil
}

func (r *memOutboxRepo) RequeueStalled(ctx context.Context, olderThan time.Duration) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var requeued int64
	for _, ev := range r.events {
		if ev.Status == usecase.Processing {
			ev.Status = usecase.Pending
			requeued++
		}
	}
	return requeued, nil
}

func (r *memOutboxRepo) statuses() map[usecase.OutboxStatus]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[usecase.OutboxStatus]int)
	for _, ev := range r.events {
		counts[ev.Status]++
	}
	return counts
}

type memProducer struct {
	mu   sync.Mutex
	reqs []*usecase.WriteRawMessageReq
	err  error
}

func (p *memProducer) WriteRawMessage(ctx context.Context, req *usecase.WriteRawMessageReq) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.reqs = append(p.reqs, req)
	return nil
}

func pendingEvent(id int64, eventType usecase.OutboxEventType) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:        id,
		EventID:   fmt.Sprintf("evt-%d", id),
		EventType: eventType,
		ProductID: 1,
		Payload:   []byte(`{"product_id":1}`),
		Status:    usecase.Pending,
	}
}

func TestProcessBatch_PublishesEventIdentity(t *testing.T) {
	repo := &memOutboxRepo{events: []*usecase.OutboxEvent{
		pendingEvent(1, usecase.EventVariantsGenerated),
		pendingEvent(2, usecase.EventPricesSynced),
	}}
	producer := &memProducer{}
	worker := NewOutboxWorker(repo, workerLogger{}, producer, "")

	hasMore, err := worker.processBatch(context.Background())

	require.NoError(t, err)
	assert.True(t, hasMore)

	require.Len(t, producer.reqs, 2)
	assert.Equal(t, usecase.EventVariantsGenerated, producer.reqs[0].EventType)
	assert.Equal(t, "evt-1", producer.reqs[0].EventID)
	assert.Equal(t, usecase.EventPricesSynced, producer.reqs[1].EventType)

	assert.Equal(t, map[usecase.OutboxStatus]int{usecase.Processed: 2}, repo.statuses())

	hasMore, err = worker.processBatch(context.Background())
	require.NoError(t, err)
	assert.False(t, hasMore, "пустая очередь останавливает выгребание")
}

func TestProcessBatch_FailedPublishStaysInProcessing(t *testing.T) {
	repo := &memOutboxRepo{events: []*usecase.OutboxEvent{
		pendingEvent(1, usecase.EventVariantsGenerated),
	}}
	producer := &memProducer{err: fmt.Errorf("connection refused")}
	worker := NewOutboxWorker(repo, workerLogger{}, producer, "")

	hasMore, err := worker.processBatch(context.Background())

	require.NoError(t, err, "отказ публикации не валит партию")
	assert.True(t, hasMore)
	assert.Empty(t, repo.processed)
	assert.Equal(t, map[usecase.OutboxStatus]int{usecase.Processing: 1}, repo.statuses())
}

func TestSweep_RequeuesStalledAndDrains(t *testing.T) {
	repo := &memOutboxRepo{events: []*usecase.OutboxEvent{
		pendingEvent(1, usecase.EventVariantsGenerated),
		pendingEvent(2, usecase.EventPricesSynced),
	}}
	producer := &memProducer{err: fmt.Errorf("broker not available")}
	worker := NewOutboxWorker(repo, workerLogger{}, producer, "")

	_, err := worker.processBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[usecase.OutboxStatus]int{usecase.Processing: 2}, repo.statuses())

	// Брокер ожил; страховочный цикл возвращает зависшее и дожимает очередь.
	producer.mu.Lock()
	producer.err = nil
	producer.mu.Unlock()

	worker.sweep(context.Background())

	assert.Equal(t, map[usecase.OutboxStatus]int{usecase.Processed: 2}, repo.statuses())
	assert.Len(t, producer.reqs, 2)
}
