package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/formforge/formforge-server/internal/model"
)

// UserStore is a mock implementation of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) Create(ctx context.Context, view model.UserCreate) (model.UserBase, error) {
	args := m.Called(ctx, view)
	return args.Get(0).(model.UserBase), args.Error(1)
}

func (m *UserStore) CreateWithHashedPassword(ctx context.Context, view model.UserCreate, hashedPassword string) (model.UserBase, error) {
	args := m.Called(ctx, view, hashedPassword)
	return args.Get(0).(model.UserBase), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id int64) (model.UserDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.UserDetail), args.Error(1)
}

func (m *UserStore) GetAll(ctx context.Context) ([]model.UserList, error) {
	args := m.Called(ctx)
	if views := args.Get(0); views != nil {
		return views.([]model.UserList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, id int64, view model.UserUpdate) (model.UserBase, error) {
	args := m.Called(ctx, id, view)
	return args.Get(0).(model.UserBase), args.Error(1)
}

func (m *UserStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}
