package service

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"farmlink/internal/audit"
	"farmlink/internal/models"
	"farmlink/internal/repository"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, updates map[string]any) (*models.User, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SetAverageRating(ctx context.Context, id string, average *float64) error {
	args := m.Called(ctx, id, average)
	return args.Error(0)
}

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) ListByFarmer(ctx context.Context, farmerID string) ([]models.Rating, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) AverageForFarmer(ctx context.Context, farmerID string) (*float64, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

func (m *MockRatingRepository) CountByFarmer(ctx context.Context, farmerID string) (int64, error) {
	args := m.Called(ctx, farmerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockFeedbackRepository mocks the FeedbackRepository interface
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

// MockResetTokenRepository mocks the ResetTokenRepository interface
type MockResetTokenRepository struct {
	mock.Mock
}

func (m *MockResetTokenRepository) Create(ctx context.Context, token *models.PasswordResetToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockResetTokenRepository) FindByToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PasswordResetToken), args.Error(1)
}

func (m *MockResetTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockEventRepository mocks the EventRepository interface
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockProductRepository mocks the ProductRepository interface
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Featured(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

// MockMailer mocks the mail.Mailer interface
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

// testClient stands in for the request metadata handlers pass along.
var testClient = audit.ClientInfo{IP: "1.2.3.4", UserAgent: "farmlink-test/1.0"}

// noopRecorder discards audit events in tests.
type noopRecorder struct{}

func (noopRecorder) Record(userID *string, action string, entityType, entityID *string, details audit.Details) {
}
func (noopRecorder) Close() error { return nil }

// capturedEvent is one Record call seen by a capturingRecorder.
type capturedEvent struct {
	UserID  *string
	Action  string
	Details audit.Details
}

// capturingRecorder collects audit events so tests can assert on their
// contents.
type capturingRecorder struct {
	mu     sync.Mutex
	events []capturedEvent
}

func (r *capturingRecorder) Record(userID *string, action string, entityType, entityID *string, details audit.Details) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, capturedEvent{UserID: userID, Action: action, Details: details})
}

func (r *capturingRecorder) Close() error { return nil }

func (r *capturingRecorder) recorded() []capturedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]capturedEvent(nil), r.events...)
}

// testStore serves the mock repositories and runs transactions inline, so
// a test can assert on the calls made inside a transactional closure.
type testStore struct {
	users       *MockUserRepository
	ratings     *MockRatingRepository
	feedback    *MockFeedbackRepository
	resetTokens *MockResetTokenRepository
	events      *MockEventRepository
	products    *MockProductRepository
}

func newTestStore() *testStore {
	return &testStore{
		users:       new(MockUserRepository),
		ratings:     new(MockRatingRepository),
		feedback:    new(MockFeedbackRepository),
		resetTokens: new(MockResetTokenRepository),
		events:      new(MockEventRepository),
		products:    new(MockProductRepository),
	}
}

func (s *testStore) Users() repository.UserRepository             { return s.users }
func (s *testStore) Ratings() repository.RatingRepository         { return s.ratings }
func (s *testStore) Feedback() repository.FeedbackRepository      { return s.feedback }
func (s *testStore) ResetTokens() repository.ResetTokenRepository { return s.resetTokens }
func (s *testStore) Events() repository.EventRepository           { return s.events }
func (s *testStore) Products() repository.ProductRepository       { return s.products }

func (s *testStore) WithTransaction(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}
