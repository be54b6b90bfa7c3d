package services

import (
	"context"
	"errors"

	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/db/repositories"
	"fleet-management/fleetboard/internal/logging"
	"fleet-management/fleetboard/internal/models/dtos"
	"fleet-management/fleetboard/internal/models/entities"
	gormModels "fleet-management/fleetboard/internal/models/gorm"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(ctx context.Context, input dtos.CreateUserInput) (*entities.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user := &gormModels.User{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, storageError("failed to create user", err)
	}

	logging.Info("user created", "user_id", user.ID)
	out := user.ToEntity()
	return &out, nil
}

func (s *UserService) List(ctx context.Context) ([]entities.User, error) {
	rows, err := s.users.List(ctx)
	if err != nil {
		return nil, storageError("failed to list users", err)
	}

	users := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.ToEntity())
	}
	return users, nil
}

// GetByID returns nil, nil when the user does not exist.
func (s *UserService) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("failed to fetch user", err)
	}
	if user == nil {
		return nil, nil
	}

	out := user.ToEntity()
	return &out, nil
}

// Update applies only the supplied fields. An empty patch returns the
// stored user untouched.
func (s *UserService) Update(ctx context.Context, id uint, input dtos.UpdateUserInput) (*entities.User, error) {
	patch := make(map[string]interface{})
	for _, err := range []error{
		patchField(patch, "name", input.Name, false, stringRule("name", "required")),
		patchField(patch, "email", input.Email, false, stringRule("email", "required,email")),
		patchField(patch, "phone", input.Phone, false, stringRule("phone", "required")),
		patchField(patch, "address", input.Address, false, stringRule("address", "required")),
	} {
		if err != nil {
			return nil, err
		}
	}

	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("failed to fetch user", err)
	}
	if existing == nil {
		return nil, notFoundError(constants.MsgUserNotFound, id)
	}
	if len(patch) == 0 {
		out := existing.ToEntity()
		return &out, nil
	}

	updated, err := s.users.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, notFoundError(constants.MsgUserNotFound, id)
		}
		return nil, storageError("failed to update user", err)
	}

	logging.Info("user updated", "user_id", id, "fields", len(patch))
	out := updated.ToEntity()
	return &out, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return notFoundError(constants.MsgUserNotFound, id)
		}
		return storageError("failed to delete user", err)
	}

	logging.Info("user deleted", "user_id", id)
	return nil
}
