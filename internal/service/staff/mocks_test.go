package staff

import (
	"context"
	"sync"
	"time"

	"github.com/turutin/intake-backend/internal/domain"
)

type applicationRepoMock struct {
	GetForUpdateFunc      func(ctx context.Context, id int64) (*domain.Application, error)
	SetStatusFunc         func(ctx context.Context, id int64, statusID int64) error
	SetCommentFunc        func(ctx context.Context, id int64, comment string) error
	ListFunc              func(ctx context.Context, limit, offset int) ([]domain.Application, error)
	CountByStatusFunc     func(ctx context.Context, name domain.Status) (int, error)
	CountCreatedSinceFunc func(ctx context.Context, since time.Time) (int, error)

	mu             sync.Mutex
	setStatusCalls []struct {
		ID       int64
		StatusID int64
	}
}

func (m *applicationRepoMock) GetForUpdate(ctx context.Context, id int64) (*domain.Application, error) {
	return m.GetForUpdateFunc(ctx, id)
}

func (m *applicationRepoMock) SetStatus(ctx context.Context, id int64, statusID int64) error {
	m.mu.Lock()
	m.setStatusCalls = append(m.setStatusCalls, struct {
		ID       int64
		StatusID int64
	}{id, statusID})
	m.mu.Unlock()
	return m.SetStatusFunc(ctx, id, statusID)
}

func (m *applicationRepoMock) SetComment(ctx context.Context, id int64, comment string) error {
	return m.SetCommentFunc(ctx, id, comment)
}

func (m *applicationRepoMock) List(ctx context.Context, limit, offset int) ([]domain.Application, error) {
	return m.ListFunc(ctx, limit, offset)
}

func (m *applicationRepoMock) CountByStatus(ctx context.Context, name domain.Status) (int, error) {
	return m.CountByStatusFunc(ctx, name)
}

func (m *applicationRepoMock) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	return m.CountCreatedSinceFunc(ctx, since)
}

func (m *applicationRepoMock) SetStatusCalls() []struct {
	ID       int64
	StatusID int64
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setStatusCalls
}

type statusRepoMock struct {
	FindOrCreateFunc func(ctx context.Context, name domain.Status) (*domain.StatusRecord, error)
}

func (m *statusRepoMock) FindOrCreate(ctx context.Context, name domain.Status) (*domain.StatusRecord, error) {
	return m.FindOrCreateFunc(ctx, name)
}

type auditRepoMock struct {
	AppendFunc            func(ctx context.Context, entry domain.StatusAuditEntry) error
	ListByApplicationFunc func(ctx context.Context, applicationID int64) ([]domain.StatusAuditEntry, error)

	mu          sync.Mutex
	appendCalls []domain.StatusAuditEntry
}

func (m *auditRepoMock) Append(ctx context.Context, entry domain.StatusAuditEntry) error {
	m.mu.Lock()
	m.appendCalls = append(m.appendCalls, entry)
	m.mu.Unlock()
	return m.AppendFunc(ctx, entry)
}

func (m *auditRepoMock) ListByApplication(ctx context.Context, applicationID int64) ([]domain.StatusAuditEntry, error) {
	return m.ListByApplicationFunc(ctx, applicationID)
}

func (m *auditRepoMock) AppendCalls() []domain.StatusAuditEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appendCalls
}

type outboxRepoMock struct {
	EnqueueFunc func(ctx context.Context, n domain.Notification) error

	mu           sync.Mutex
	enqueueCalls []domain.Notification
}

func (m *outboxRepoMock) Enqueue(ctx context.Context, n domain.Notification) error {
	m.mu.Lock()
	m.enqueueCalls = append(m.enqueueCalls, n)
	m.mu.Unlock()
	return m.EnqueueFunc(ctx, n)
}

func (m *outboxRepoMock) EnqueueCalls() []domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enqueueCalls
}

type userRepoMock struct {
	SetBlockedFunc func(ctx context.Context, id string, blocked bool) error
}

func (m *userRepoMock) SetBlocked(ctx context.Context, id string, blocked bool) error {
	return m.SetBlockedFunc(ctx, id, blocked)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
