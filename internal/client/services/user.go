package services

import (
	"context"

	"github.com/dmitrijs2005/bankfront/internal/client/models"
)

// UserService reads and updates the account holder's profile and
// preferences. It does not touch the local session; callers that change the
// profile decide whether to refresh it.
type UserService interface {
	Profile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error)
	Preferences(ctx context.Context) (models.Preferences, error)
	UpdatePreferences(ctx context.Context, p models.Preferences) (models.Preferences, error)
}

type userService struct {
	r Requester
}

func NewUserService(r Requester) UserService {
	return &userService{r: r}
}

func (s *userService) Profile(ctx context.Context) (*models.UserProfile, error) {
	return get[*models.UserProfile](ctx, s.r, "/user/profile", nil)
}

func (s *userService) UpdateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error) {
	return put[*models.UserProfile](ctx, s.r, "/user/profile", p)
}

func (s *userService) Preferences(ctx context.Context) (models.Preferences, error) {
	return get[models.Preferences](ctx, s.r, "/user/preferences", nil)
}

func (s *userService) UpdatePreferences(ctx context.Context, p models.Preferences) (models.Preferences, error) {
	return put[models.Preferences](ctx, s.r, "/user/preferences", p)
}
