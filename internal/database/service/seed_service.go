package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mesa-app/mesa/internal/database/models"
	"github.com/mesa-app/mesa/internal/database/repository"
)

// Demo records created by Seed
const (
	SeedUserEmail      = "juan@test.com"
	SeedUserPassword   = "123456"
	SeedRestaurantSlug = "restaurante-prueba"
)

// SeedSummary lists what the database holds after seeding
type SeedSummary struct {
	Users       []models.User
	Restaurants []models.Restaurant
	Created     int
}

// SeedService loads a demo user and restaurant into an empty deployment
type SeedService interface {
	Seed(ctx context.Context) (*SeedSummary, error)
}

type seedService struct {
	users       repository.UserRepository
	userList    repository.EntityRepository[models.User]
	restaurants repository.EntityRepository[models.Restaurant]
	logger      *slog.Logger
}

// NewSeedService creates a new seed service instance
func NewSeedService(
	users repository.UserRepository,
	userList repository.EntityRepository[models.User],
	restaurants repository.EntityRepository[models.Restaurant],
	logger *slog.Logger,
) SeedService {
	return &seedService{
		users:       users,
		userList:    userList,
		restaurants: restaurants,
		logger:      logger,
	}
}

// Seed is idempotent: records that already exist are left untouched
func (s *seedService) Seed(ctx context.Context) (*SeedSummary, error) {
	summary := &SeedSummary{}

	created, err := s.seedUser(ctx)
	if err != nil {
		return nil, err
	}
	if created {
		summary.Created++
	}

	created, err = s.seedRestaurant(ctx)
	if err != nil {
		return nil, err
	}
	if created {
		summary.Created++
	}

	if summary.Users, err = s.userList.List(ctx, repository.ListOptions{}); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if summary.Restaurants, err = s.restaurants.List(ctx, repository.ListOptions{}); err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	s.logger.Info("🌱 [SeedService] Seed completed",
		"created", summary.Created,
		"users", len(summary.Users),
		"restaurants", len(summary.Restaurants),
	)
	return summary, nil
}

func (s *seedService) seedUser(ctx context.Context) (bool, error) {
	exists, err := s.users.ExistsByEmail(ctx, SeedUserEmail)
	if err != nil {
		return false, fmt.Errorf("failed to check demo user: %w", err)
	}
	if exists {
		s.logger.Debug("🌱 [SeedService] Demo user already present")
		return false, nil
	}

	user := &models.User{
		FirstName: "Juan",
		LastName:  "Pérez",
		Email:     SeedUserEmail,
		Status:    models.StatusActive,
		Role:      models.RoleUser,
	}
	if err := user.SetPassword(SeedUserPassword); err != nil {
		return false, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return false, fmt.Errorf("failed to create demo user: %w", err)
	}

	s.logger.Info("✅ [SeedService] Demo user created", "user_id", user.ID)
	return true, nil
}

func (s *seedService) seedRestaurant(ctx context.Context) (bool, error) {
	_, err := s.restaurants.FindBy(ctx, "slug", SeedRestaurantSlug)
	if err == nil {
		s.logger.Debug("🌱 [SeedService] Demo restaurant already present")
		return false, nil
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to check demo restaurant: %w", err)
	}

	slug, cuisine := SeedRestaurantSlug, "italiana"
	restaurant := &models.Restaurant{
		Name:        "Restaurante Prueba",
		Slug:        &slug,
		CuisineType: &cuisine,
		Status:      models.RestaurantActive,
	}
	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		return false, fmt.Errorf("failed to create demo restaurant: %w", err)
	}

	s.logger.Info("✅ [SeedService] Demo restaurant created", "restaurant_id", restaurant.ID)
	return true, nil
}
