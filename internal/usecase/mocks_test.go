package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"video-catalog/internal/data/repository"
	"video-catalog/internal/domain"
	"video-catalog/pkg/database"
	"video-catalog/pkg/events"
	"video-catalog/pkg/storage"

	"github.com/stretchr/testify/mock"
)

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Insert(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id domain.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindByIDs(ctx context.Context, ids []string) ([]*domain.Category, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *mockCategoryRepo) Paginate(ctx context.Context, filter, order string, page, perPage int) (repository.Page[*domain.Category], error) {
	args := m.Called(ctx, filter, order, page, perPage)
	return args.Get(0).(repository.Page[*domain.Category]), args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) DeleteByID(ctx context.Context, id domain.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockGenreRepo struct {
	mock.Mock
}

func (m *mockGenreRepo) Insert(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *mockGenreRepo) FindByID(ctx context.Context, id domain.UUID) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *mockGenreRepo) FindByIDs(ctx context.Context, ids []string) ([]*domain.Genre, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Genre), args.Error(1)
}

func (m *mockGenreRepo) Paginate(ctx context.Context, filter, order string, page, perPage int) (repository.Page[*domain.Genre], error) {
	args := m.Called(ctx, filter, order, page, perPage)
	return args.Get(0).(repository.Page[*domain.Genre]), args.Error(1)
}

func (m *mockGenreRepo) Update(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *mockGenreRepo) DeleteByID(ctx context.Context, id domain.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockCastMemberRepo struct {
	mock.Mock
}

func (m *mockCastMemberRepo) Insert(ctx context.Context, member *domain.CastMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockCastMemberRepo) FindByID(ctx context.Context, id domain.UUID) (*domain.CastMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CastMember), args.Error(1)
}

func (m *mockCastMemberRepo) FindByIDs(ctx context.Context, ids []string) ([]*domain.CastMember, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CastMember), args.Error(1)
}

func (m *mockCastMemberRepo) Paginate(ctx context.Context, filter, order string, page, perPage int) (repository.Page[*domain.CastMember], error) {
	args := m.Called(ctx, filter, order, page, perPage)
	return args.Get(0).(repository.Page[*domain.CastMember]), args.Error(1)
}

func (m *mockCastMemberRepo) Update(ctx context.Context, member *domain.CastMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockCastMemberRepo) DeleteByID(ctx context.Context, id domain.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockVideoRepo struct {
	mock.Mock
}

func (m *mockVideoRepo) Insert(ctx context.Context, video *domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *mockVideoRepo) FindByID(ctx context.Context, id domain.UUID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *mockVideoRepo) FindByIDs(ctx context.Context, ids []string) ([]*domain.Video, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Video), args.Error(1)
}

func (m *mockVideoRepo) Paginate(ctx context.Context, filter, order string, page, perPage int) (repository.Page[*domain.Video], error) {
	args := m.Called(ctx, filter, order, page, perPage)
	return args.Get(0).(repository.Page[*domain.Video]), args.Error(1)
}

func (m *mockVideoRepo) Update(ctx context.Context, video *domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *mockVideoRepo) DeleteByID(ctx context.Context, id domain.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockVideoRepo) UpdateMedia(ctx context.Context, video *domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

// fakeTxManager hands out fakeTx values and remembers them.
type fakeTxManager struct {
	beginErr  error
	commitErr error
	txs       []*fakeTx
}

func (m *fakeTxManager) Begin(ctx context.Context) (database.Transaction, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	tx := &fakeTx{ctx: ctx, commitErr: m.commitErr}
	m.txs = append(m.txs, tx)
	return tx, nil
}

func (m *fakeTxManager) last() *fakeTx {
	if len(m.txs) == 0 {
		return nil
	}
	return m.txs[len(m.txs)-1]
}

type fakeTx struct {
	ctx        context.Context
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit() error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

func (t *fakeTx) Context() context.Context {
	return t.ctx
}

// fakeStorage keeps stored files in memory. failOn makes the n-th Store call
// (1-based) fail; deleteErr fails every Delete.
type fakeStorage struct {
	mu        sync.Mutex
	files     map[string]string
	deleted   []string
	calls     int
	failOn    int
	deleteErr error
}

var errStoreFailed = errors.New("disk full")

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: map[string]string{}}
}

func (s *fakeStorage) Store(ctx context.Context, prefix string, file *storage.File) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.failOn == s.calls {
		return "", errStoreFailed
	}

	body, err := io.ReadAll(file.Body)
	if err != nil {
		return "", err
	}
	path := fmt.Sprintf("%s/%d-%s", prefix, s.calls, file.Name)
	s.files[path] = string(body)
	return path, nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleted = append(s.deleted, path)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.files, path)
	return nil
}

type recordingDispatcher struct {
	events []events.Event
}

func (d *recordingDispatcher) Dispatch(ctx context.Context, event events.Event) {
	d.events = append(d.events, event)
}
