package service

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"storefront-api/internal/model"
	"storefront-api/internal/otp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) ListSubscribers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockPromoRepository is a mock implementation of PromoRepository.
type MockPromoRepository struct {
	mock.Mock
}

func (m *MockPromoRepository) Create(ctx context.Context, promo *model.Promo) error {
	args := m.Called(ctx, promo)
	return args.Error(0)
}

func (m *MockPromoRepository) List(ctx context.Context) ([]model.Promo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Promo), args.Error(1)
}

// captureSender records sent messages and can fail selected recipients.
type captureSender struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[string]bool
}

type sentMessage struct {
	to      string
	subject string
	body    string
}

func (s *captureSender) Send(_ context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFor[to] {
		return errors.New("delivery failed")
	}
	s.sent = append(s.sent, sentMessage{to: to, subject: subject, body: body})
	return nil
}

func newNewsletterService(users *MockUserRepository, promos *MockPromoRepository, sender *captureSender) (NewsletterService, otp.Store) {
	store := otp.NewMemoryStore()
	svc := NewNewsletterService(users, promos, store, sender, 10*time.Minute, zerolog.Nop())
	return svc, store
}

func TestNewsletterService_SendAndVerifyOTP(t *testing.T) {
	users := new(MockUserRepository)
	promos := new(MockPromoRepository)
	sender := &captureSender{}
	svc, _ := newNewsletterService(users, promos, sender)
	ctx := context.Background()

	require.NoError(t, svc.SendOTP(ctx, "New@Example.com"))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "new@example.com", sender.sent[0].to)

	code := regexp.MustCompile(`\d{6}`).FindString(sender.sent[0].body)
	require.NotEmpty(t, code, "OTP email should contain the 6-digit code")

	// No account yet: verification creates a subscriber
	users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "new@example.com" && u.Name == "new" && u.IsNewsletterSubscribed
	})).Return(nil)

	require.NoError(t, svc.Verify(ctx, "new@example.com", code))
	users.AssertExpectations(t)

	// A consumed code cannot be replayed
	assert.ErrorIs(t, svc.Verify(ctx, "new@example.com", code), model.ErrInvalidOTP)
}

func TestNewsletterService_Verify_ExistingUser(t *testing.T) {
	users := new(MockUserRepository)
	promos := new(MockPromoRepository)
	sender := &captureSender{}
	svc, store := newNewsletterService(users, promos, sender)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "alex@example.com", "123456", 10*time.Minute))

	existing := &model.User{ID: uuid.New(), Email: "alex@example.com"}
	users.On("GetByEmail", mock.Anything, "alex@example.com").Return(existing, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.IsNewsletterSubscribed
	})).Return(nil)

	require.NoError(t, svc.Verify(ctx, "alex@example.com", "123456"))
	users.AssertExpectations(t)
}

func TestNewsletterService_Verify_BadCode(t *testing.T) {
	users := new(MockUserRepository)
	promos := new(MockPromoRepository)
	sender := &captureSender{}
	svc, store := newNewsletterService(users, promos, sender)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "alex@example.com", "123456", 10*time.Minute))

	assert.ErrorIs(t, svc.Verify(ctx, "alex@example.com", "654321"), model.ErrInvalidOTP)
	users.AssertNotCalled(t, "GetByEmail")
}

func TestNewsletterService_SendOTP_MailFailureStillIssues(t *testing.T) {
	users := new(MockUserRepository)
	promos := new(MockPromoRepository)
	sender := &captureSender{failFor: map[string]bool{"down@example.com": true}}
	svc, _ := newNewsletterService(users, promos, sender)

	// Delivery is best-effort; the operation itself succeeds
	assert.NoError(t, svc.SendOTP(context.Background(), "down@example.com"))
}

func TestNewsletterService_Broadcast(t *testing.T) {
	users := new(MockUserRepository)
	promos := new(MockPromoRepository)
	sender := &captureSender{failFor: map[string]bool{"bounce@example.com": true}}
	svc, _ := newNewsletterService(users, promos, sender)

	users.On("ListSubscribers", mock.Anything).Return([]model.User{
		{Email: "a@example.com"},
		{Email: "bounce@example.com"},
		{Email: "b@example.com"},
	}, nil)

	sent, err := svc.Broadcast(context.Background(), "Sale", "Everything must go")
	require.NoError(t, err)

	// One bounce is skipped, not fatal
	assert.Equal(t, 2, sent)
	assert.Len(t, sender.sent, 2)
}

func TestNewsletterService_Broadcast_RequiresContent(t *testing.T) {
	users := new(MockUserRepository)
	promos := new(MockPromoRepository)
	svc, _ := newNewsletterService(users, promos, &captureSender{})

	_, err := svc.Broadcast(context.Background(), "", "body")
	assert.Error(t, err)
}

func TestNewsletterService_CreatePromo(t *testing.T) {
	users := new(MockUserRepository)
	promos := new(MockPromoRepository)
	svc, _ := newNewsletterService(users, promos, &captureSender{})

	promos.On("Create", mock.Anything, mock.AnythingOfType("*model.Promo")).Return(nil)

	promo, err := svc.CreatePromo(context.Background(), "Winter Sale", "All coats", "WINTER20", 20, "2026-12-31")
	require.NoError(t, err)
	assert.Equal(t, "WINTER20", promo.DiscountCode)
	assert.Equal(t, 20, promo.DiscountPercent)
}

func TestNewsletterService_CreatePromo_InvalidDiscount(t *testing.T) {
	users := new(MockUserRepository)
	promos := new(MockPromoRepository)
	svc, _ := newNewsletterService(users, promos, &captureSender{})

	for _, discount := range []int{-1, 101} {
		_, err := svc.CreatePromo(context.Background(), "Sale", "", "X", discount, "")
		assert.ErrorIs(t, err, model.ErrInvalidDiscount)
	}
}
