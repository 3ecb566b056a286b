package services

import (
	"context"
	"fmt"

	"techhive-users/internal/domain/user"
	"techhive-users/internal/events"
	"techhive-users/internal/repository"
	apperrors "techhive-users/pkg/errors"
	"techhive-users/pkg/logger"
)

type UserService struct {
	repo      repository.UserRepository
	publisher events.Publisher
	logger    *logger.Logger
}

func NewUserService(repo repository.UserRepository, publisher events.Publisher, l *logger.Logger) *UserService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if l == nil {
		l = logger.NewNop()
	}
	return &UserService{repo: repo, publisher: publisher, logger: l}
}

// List returns users ordered by ID. Paging applies only when page and pageSize
// are both positive; an offset past the end yields an empty slice.
func (s *UserService) List(ctx context.Context, page, pageSize int) []user.User {
	users := s.repo.GetAll(ctx)
	if page <= 0 || pageSize <= 0 {
		return users
	}

	offset := (page - 1) * pageSize
	if offset >= len(users) || offset < 0 {
		return []user.User{}
	}
	end := offset + pageSize
	if end > len(users) || end < offset {
		end = len(users)
	}
	return users[offset:end]
}

func (s *UserService) GetByID(ctx context.Context, id int) (user.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the payload, rejects a taken email and stores the user under
// a fresh ID. The email check and the insert are separate steps, so two
// concurrent creates with the same new email can both succeed.
func (s *UserService) Create(ctx context.Context, in *user.User) (user.User, error) {
	if err := user.Check(in); err != nil {
		return user.User{}, err
	}
	if s.repo.EmailTaken(ctx, in.Email, 0) {
		return user.User{}, fmt.Errorf("email %q: %w", in.Email, apperrors.ErrAlreadyExists)
	}

	created := user.User{
		ID:    s.repo.NextID(ctx),
		Name:  in.Name,
		Email: in.Email,
	}
	if err := s.repo.Insert(ctx, &created); err != nil {
		return user.User{}, err
	}

	s.publish(ctx, events.EventTypeUserCreated, created)
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id int, in *user.User) (user.User, error) {
	if err := user.Check(in); err != nil {
		return user.User{}, err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return user.User{}, err
	}
	if s.repo.EmailTaken(ctx, in.Email, id) {
		return user.User{}, fmt.Errorf("email %q: %w", in.Email, apperrors.ErrAlreadyExists)
	}

	updated, err := s.repo.Update(ctx, id, in.Name, in.Email)
	if err != nil {
		return user.User{}, err
	}

	s.publish(ctx, events.EventTypeUserUpdated, updated)
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if !s.repo.Delete(ctx, id) {
		return apperrors.ErrNotFound
	}
	s.publish(ctx, events.EventTypeUserDeleted, user.User{ID: id})
	return nil
}

// publish never fails the request; subscribers are best effort.
func (s *UserService) publish(ctx context.Context, eventType string, u user.User) {
	env, err := events.NewUserEnvelope(eventType, u)
	if err == nil {
		err = s.publisher.Publish(ctx, env)
	}
	if err != nil {
		s.logger.ErrorCtx(ctx, "publish %s for user %d: %s", eventType, u.ID, err)
	}
}
