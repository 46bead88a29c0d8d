package service

import (
	"context"
	"testing"
	"time"

	"storefront-api/internal/auth"
	"storefront-api/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(repo *MockUserRepository) UserService {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserService(repo, tokens, zerolog.Nop())
}

func TestUserService_Register(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newUserService(repo)

	repo.On("GetByEmail", mock.Anything, "Alex@Example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "alex@example.com" && u.Role == model.RoleUser && u.IsActive
	})).Return(nil)

	resp, err := svc.Register(context.Background(), model.RegisterInput{
		Name: "Alex", Email: "Alex@Example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	assert.Equal(t, "alex@example.com", resp.Email)
	assert.Equal(t, model.RoleUser, resp.Role)
	assert.NotEmpty(t, resp.Token)
	repo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newUserService(repo)

	repo.On("GetByEmail", mock.Anything, "alex@example.com").Return(&model.User{ID: uuid.New()}, nil)

	_, err := svc.Register(context.Background(), model.RegisterInput{
		Name: "Alex", Email: "alex@example.com", Password: "hunter22",
	})
	assert.ErrorIs(t, err, model.ErrUserExists)
	repo.AssertNotCalled(t, "Create")
}

func TestUserService_Login(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newUserService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		ID: uuid.New(), Email: "alex@example.com",
		PasswordHash: string(hash), Role: model.RoleAdmin, IsActive: true,
	}
	repo.On("GetByEmail", mock.Anything, "alex@example.com").Return(user, nil)

	resp, err := svc.Login(context.Background(), model.Credentials{
		Email: "alex@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, resp.Role)
	assert.NotEmpty(t, resp.Token)
}

func TestUserService_Login_Failures(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name string
		user *model.User
		pass string
	}{
		{
			name: "unknown email",
			user: nil,
			pass: "hunter22",
		},
		{
			name: "wrong password",
			user: &model.User{ID: uuid.New(), PasswordHash: string(hash), IsActive: true},
			pass: "wrong",
		},
		{
			name: "blocked account",
			user: &model.User{ID: uuid.New(), PasswordHash: string(hash), IsActive: false},
			pass: "hunter22",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			svc := newUserService(repo)

			if tt.user == nil {
				repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil)
			} else {
				repo.On("GetByEmail", mock.Anything, mock.Anything).Return(tt.user, nil)
			}

			// Every failure mode yields the same opaque error
			_, err := svc.Login(context.Background(), model.Credentials{
				Email: "alex@example.com", Password: tt.pass,
			})
			assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		})
	}
}

func TestUserService_ToggleBlock(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newUserService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&model.User{ID: id, IsActive: true}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.ToggleBlock(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestUserService_ToggleRole(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{name: "user promoted to admin", from: model.RoleUser, to: model.RoleAdmin},
		{name: "admin demoted to user", from: model.RoleAdmin, to: model.RoleUser},
		{name: "moderator promoted to admin", from: model.RoleModerator, to: model.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			svc := newUserService(repo)

			id := uuid.New()
			repo.On("GetByID", mock.Anything, id).Return(&model.User{ID: id, Role: tt.from}, nil)
			repo.On("Update", mock.Anything, mock.Anything).Return(nil)

			user, err := svc.ToggleRole(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tt.to, user.Role)
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newUserService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&model.User{ID: id, Name: "Alex", Phone: "111"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	phone := "555-0100"
	user, err := svc.UpdateProfile(context.Background(), id, model.ProfileUpdate{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "555-0100", user.Phone)
	// Unspecified fields are untouched
	assert.Equal(t, "Alex", user.Name)
}
