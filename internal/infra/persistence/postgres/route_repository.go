// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"routehub/internal/domain/entity"
	domainerrors "routehub/internal/domain/errors"
	"routehub/internal/domain/repository"
	"routehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// routeRepository implements the repository.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{
		db: db,
	}
}

// CreateRoute persists a new route.
func (repo *routeRepository) CreateRoute(ctx context.Context, route *entity.Route) error {
	routeM := fromRouteDomain(route)

	if err := repo.db.WithContext(ctx).Create(routeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required route information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create route")
	}

	// Update the entity with generated values
	route.ID = routeM.ID
	route.CreatedAt = routeM.CreatedAt
	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

// FindAllRoutes retrieves every route, newest first.
func (repo *routeRepository) FindAllRoutes(ctx context.Context) ([]*entity.Route, error) {
	var routeModels []*model.RouteModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find routes")
	}

	return toRouteDomainSlice(routeModels), nil
}

// FindRouteByID retrieves a route by its unique ID.
func (repo *routeRepository) FindRouteByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	var routeM model.RouteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&routeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find route by ID")
	}

	return toRouteDomain(&routeM), nil
}

// FindRoutesByCreator retrieves all routes owned by a creator, newest first.
func (repo *routeRepository) FindRoutesByCreator(ctx context.Context, creatorID string) ([]*entity.Route, error) {
	var routeModels []*model.RouteModel

	if err := repo.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find routes by creator")
	}

	return toRouteDomainSlice(routeModels), nil
}

// FindRoutesByRatingRange retrieves routes whose average rating falls in the
// inclusive range, best rated first.
func (repo *routeRepository) FindRoutesByRatingRange(ctx context.Context, minRating, maxRating float64) ([]*entity.Route, error) {
	var routeModels []*model.RouteModel

	if err := repo.db.WithContext(ctx).
		Where("avg_rating >= ? AND avg_rating <= ?", minRating, maxRating).
		Order("avg_rating DESC").
		Find(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find routes by rating range")
	}

	return toRouteDomainSlice(routeModels), nil
}

// FindNearbyRoutes returns all routes whose geometry lies within radiusM meters
// of the reference point, closest first. Distances are geodesic; the geography
// cast makes ST_DWithin and ST_Distance operate in meters on the sphere.
func (repo *routeRepository) FindNearbyRoutes(ctx context.Context, latitude, longitude, radiusM float64) ([]*entity.Route, error) {
	var routeModels []*model.RouteModel

	const query = `
		SELECT *
		FROM routes
		WHERE geometry IS NOT NULL
		  AND ST_DWithin(
			geometry,
			ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
			?
		  )
		ORDER BY ST_Distance(
			geometry,
			ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
		) ASC`

	if err := repo.db.WithContext(ctx).
		Raw(query, longitude, latitude, radiusM, longitude, latitude).
		Scan(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby routes")
	}

	return toRouteDomainSlice(routeModels), nil
}

// UpdateRoute applies a partial update and returns the updated route.
func (repo *routeRepository) UpdateRoute(ctx context.Context, id uuid.UUID, data *repository.UpdateRouteData) (*entity.Route, error) {
	updates := buildRouteUpdates(data)
	if len(updates) == 0 {
		return repo.FindRouteByID(ctx, id)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RouteModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update route")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrRouteNotFound
	}

	return repo.FindRouteByID(ctx, id)
}

// DeleteRoute removes a route by its ID.
func (repo *routeRepository) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RouteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete route")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRouteNotFound
	}

	return nil
}

// IncrementCompletedCount bumps the completion counter atomically in a single
// statement and returns the new value, so concurrent completions never lose
// an increment to a read-modify-write race.
func (repo *routeRepository) IncrementCompletedCount(ctx context.Context, id uuid.UUID) (int, error) {
	var completedCount int

	result := repo.db.WithContext(ctx).Raw(`
		UPDATE routes
		SET completed_count = completed_count + 1,
		    updated_at = NOW()
		WHERE id = ?
		RETURNING completed_count`, id).
		Scan(&completedCount)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to increment completed count")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrRouteNotFound
	}

	return completedCount, nil
}

func buildRouteUpdates(data *repository.UpdateRouteData) map[string]any {
	updates := make(map[string]any)
	if data == nil {
		return updates
	}

	if data.Name != nil {
		updates["name"] = *data.Name
	}
	if data.DistanceKm != nil {
		updates["distance_km"] = *data.DistanceKm
	}
	if data.EstTimeMin != nil {
		updates["est_time_min"] = *data.EstTimeMin
	}
	if data.AvgRating != nil {
		updates["avg_rating"] = *data.AvgRating
	}
	if data.Score != nil {
		updates["score"] = *data.Score
	}
	if data.Geometry != nil {
		updates["geometry"] = model.GeoLineString{LineString: *data.Geometry}
	}

	return updates
}

// --- Mapper Functions ---

// toRouteDomain converts a GORM RouteModel to a domain Route entity.
func toRouteDomain(data *model.RouteModel) *entity.Route {
	if data == nil {
		return nil
	}

	return &entity.Route{
		ID:             data.ID,
		CreatorID:      data.CreatorID,
		Name:           data.Name,
		DistanceKm:     data.DistanceKm,
		EstTimeMin:     data.EstTimeMin,
		AvgRating:      data.AvgRating,
		CompletedCount: data.CompletedCount,
		Score:          data.Score,
		Geometry:       data.Geometry.LineString,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toRouteDomainSlice(data []*model.RouteModel) []*entity.Route {
	routes := make([]*entity.Route, 0, len(data))
	for _, routeM := range data {
		routes = append(routes, toRouteDomain(routeM))
	}

	return routes
}

// fromRouteDomain converts a domain Route entity to a GORM RouteModel.
func fromRouteDomain(data *entity.Route) *model.RouteModel {
	if data == nil {
		return nil
	}

	return &model.RouteModel{
		ID:             data.ID,
		CreatorID:      data.CreatorID,
		Name:           data.Name,
		DistanceKm:     data.DistanceKm,
		EstTimeMin:     data.EstTimeMin,
		AvgRating:      data.AvgRating,
		CompletedCount: data.CompletedCount,
		Score:          data.Score,
		Geometry:       model.GeoLineString{LineString: data.Geometry},
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
