package dialog

import (
	"context"
	"sync"

	"github.com/turutin/intake-backend/internal/domain"
)

// Hand-rolled mocks in the moq shape: a Func field per method plus recorded
// calls. A nil Func panics, making unexpected interactions loud.

type userRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, id, name string) (*domain.User, error)
	GetByIDFunc     func(ctx context.Context, id string) (*domain.User, error)
	IsBlockedFunc   func(ctx context.Context, id string) (bool, error)
	UpdateFieldFunc func(ctx context.Context, id string, field domain.ProfileField, value string) error

	mu               sync.Mutex
	getOrCreateCalls []string
	updateFieldCalls []struct {
		ID    string
		Field domain.ProfileField
		Value string
	}
}

func (m *userRepoMock) GetOrCreate(ctx context.Context, id, name string) (*domain.User, error) {
	m.mu.Lock()
	m.getOrCreateCalls = append(m.getOrCreateCalls, id)
	m.mu.Unlock()
	return m.GetOrCreateFunc(ctx, id, name)
}

func (m *userRepoMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) IsBlocked(ctx context.Context, id string) (bool, error) {
	return m.IsBlockedFunc(ctx, id)
}

func (m *userRepoMock) UpdateField(ctx context.Context, id string, field domain.ProfileField, value string) error {
	m.mu.Lock()
	m.updateFieldCalls = append(m.updateFieldCalls, struct {
		ID    string
		Field domain.ProfileField
		Value string
	}{id, field, value})
	m.mu.Unlock()
	return m.UpdateFieldFunc(ctx, id, field, value)
}

func (m *userRepoMock) UpdateFieldCalls() []struct {
	ID    string
	Field domain.ProfileField
	Value string
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateFieldCalls
}

type questionRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.Question, error)
}

func (m *questionRepoMock) List(ctx context.Context) ([]domain.Question, error) {
	return m.ListFunc(ctx)
}

type statusRepoMock struct {
	FindOrCreateFunc func(ctx context.Context, name domain.Status) (*domain.StatusRecord, error)
}

func (m *statusRepoMock) FindOrCreate(ctx context.Context, name domain.Status) (*domain.StatusRecord, error) {
	return m.FindOrCreateFunc(ctx, name)
}

type applicationRepoMock struct {
	CreateFunc      func(ctx context.Context, userID string, statusID int64, answers string) (*domain.Application, error)
	CountByUserFunc func(ctx context.Context, userID string) (int, error)
	ListByUserFunc  func(ctx context.Context, userID string) ([]domain.Application, error)

	mu          sync.Mutex
	createCalls []struct {
		UserID   string
		StatusID int64
		Answers  string
	}
}

func (m *applicationRepoMock) Create(ctx context.Context, userID string, statusID int64, answers string) (*domain.Application, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, struct {
		UserID   string
		StatusID int64
		Answers  string
	}{userID, statusID, answers})
	m.mu.Unlock()
	return m.CreateFunc(ctx, userID, statusID, answers)
}

func (m *applicationRepoMock) CountByUser(ctx context.Context, userID string) (int, error) {
	return m.CountByUserFunc(ctx, userID)
}

func (m *applicationRepoMock) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *applicationRepoMock) CreateCalls() []struct {
	UserID   string
	StatusID int64
	Answers  string
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

type staffRepoMock struct {
	AnyContactEmailFunc func(ctx context.Context) (string, error)
}

func (m *staffRepoMock) AnyContactEmail(ctx context.Context) (string, error) {
	return m.AnyContactEmailFunc(ctx)
}

type gatewayMock struct {
	SendFunc func(ctx context.Context, userID string, prompt Prompt) error

	mu        sync.Mutex
	sendCalls []struct {
		UserID string
		Prompt Prompt
	}
}

func (m *gatewayMock) Send(ctx context.Context, userID string, prompt Prompt) error {
	m.mu.Lock()
	m.sendCalls = append(m.sendCalls, struct {
		UserID string
		Prompt Prompt
	}{userID, prompt})
	m.mu.Unlock()
	if m.SendFunc != nil {
		return m.SendFunc(ctx, userID, prompt)
	}
	return nil
}

func (m *gatewayMock) SendCalls() []struct {
	UserID string
	Prompt Prompt
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sendCalls
}

// LastPrompt returns the most recent prompt sent, failing loud on none.
func (m *gatewayMock) LastPrompt() (Prompt, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sendCalls) == 0 {
		return Prompt{}, false
	}
	return m.sendCalls[len(m.sendCalls)-1].Prompt, true
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
