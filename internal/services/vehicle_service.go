package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"sakay/internal/models/db_models"
	"sakay/internal/models/request_models"
	"sakay/internal/models/response_models"
	"sakay/internal/repositories"
	"sakay/pkg/utils"
)

const searchCacheTTL = 60 * time.Second

type VehicleSearchQuery struct {
	Type     string
	City     string
	MinPrice float64
	MaxPrice float64
}

type VehicleServiceInterface interface {
	Create(ctx context.Context, hostID string, request request_models.CreateVehicleRequest) (*response_models.VehicleResponse, error)
	GetByID(ctx context.Context, id string) (*response_models.VehicleResponse, error)
	ListByHost(ctx context.Context, hostID string) ([]response_models.VehicleResponse, error)
	Search(ctx context.Context, query VehicleSearchQuery) ([]response_models.VehicleResponse, error)
	Update(ctx context.Context, hostID, id string, request request_models.UpdateVehicleRequest) error
	Delete(ctx context.Context, hostID, id string) error
}

type VehicleService struct {
	vehicleRepo repositories.VehicleRepository
	userRepo    repositories.UserRepository
	cache       *redis.Client // nil means caching disabled
}

func NewVehicleService(vehicleRepo repositories.VehicleRepository, userRepo repositories.UserRepository, cache *redis.Client) VehicleServiceInterface {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		cache:       cache,
	}
}

func (s *VehicleService) Create(ctx context.Context, hostID string, request request_models.CreateVehicleRequest) (*response_models.VehicleResponse, error) {
	host, err := s.userRepo.FindByID(ctx, hostID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if host == nil {
		return nil, utils.NotFoundError("host")
	}
	if !CanPerformAction(host, ActionAddVehicle) {
		return nil, utils.PreconditionError(ActionErrorMessage(host, ActionAddVehicle))
	}

	photos, err := json.Marshal(request.Photos)
	if err != nil {
		return nil, utils.ValidationError("invalid photo list")
	}
	if request.Photos == nil {
		photos = []byte("[]")
	}

	vehicle := &db_models.Vehicle{
		HostID:      host.ID,
		Title:       request.Title,
		Slug:        utils.Slugify(request.Title),
		Type:        db_models.VehicleType(request.Type),
		Make:        request.Make,
		Model:       request.Model,
		Year:        request.Year,
		PlateNumber: request.PlateNumber,
		City:        request.City,
		DailyPrice:  request.DailyPrice,
		Description: request.Description,
		Photos:      photos,
		IsListed:    true,
	}
	if err := s.vehicleRepo.Insert(ctx, vehicle); err != nil {
		return nil, utils.CollaboratorError(err)
	}

	resp := toVehicleResponse(vehicle)
	return &resp, nil
}

func (s *VehicleService) GetByID(ctx context.Context, id string) (*response_models.VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if vehicle == nil {
		return nil, utils.NotFoundError("vehicle")
	}
	resp := toVehicleResponse(vehicle)
	return &resp, nil
}

func (s *VehicleService) ListByHost(ctx context.Context, hostID string) ([]response_models.VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.ListByHost(ctx, hostID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	return toVehicleResponses(vehicles), nil
}

// Search pushes equality filters to the store and applies price bounds
// in memory afterward. Results are cached briefly in redis when a
// client is available.
func (s *VehicleService) Search(ctx context.Context, query VehicleSearchQuery) ([]response_models.VehicleResponse, error) {
	cacheKey := fmt.Sprintf("vehicles:search:%s:%s:%g:%g", query.Type, query.City, query.MinPrice, query.MaxPrice)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached []response_models.VehicleResponse
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	vehicles, err := s.vehicleRepo.Search(ctx, repositories.VehicleFilter{
		Type: query.Type,
		City: query.City,
	})
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}

	results := make([]response_models.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		if query.MinPrice > 0 && v.DailyPrice < query.MinPrice {
			continue
		}
		if query.MaxPrice > 0 && v.DailyPrice > query.MaxPrice {
			continue
		}
		results = append(results, toVehicleResponse(v))
	}

	if s.cache != nil {
		if raw, err := json.Marshal(results); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, searchCacheTTL).Err(); err != nil {
				log.Printf("search cache write failed: %v", err)
			}
		}
	}
	return results, nil
}

func (s *VehicleService) Update(ctx context.Context, hostID, id string, request request_models.UpdateVehicleRequest) error {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return utils.CollaboratorError(err)
	}
	if vehicle == nil {
		return utils.NotFoundError("vehicle")
	}
	if vehicle.HostID.String() != hostID {
		return utils.PreconditionError("you can only edit your own vehicles")
	}

	fields := map[string]interface{}{}
	if request.Title != nil {
		fields["title"] = *request.Title
		fields["slug"] = utils.Slugify(*request.Title)
	}
	if request.DailyPrice != nil {
		fields["daily_price"] = *request.DailyPrice
	}
	if request.City != nil {
		fields["city"] = *request.City
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	if request.Photos != nil {
		raw, err := json.Marshal(request.Photos)
		if err != nil {
			return utils.ValidationError("invalid photo list")
		}
		fields["photos"] = raw
	}
	if request.IsListed != nil {
		fields["is_listed"] = *request.IsListed
	}
	if len(fields) == 0 {
		return utils.ValidationError("nothing to update")
	}

	if err := s.vehicleRepo.Update(ctx, id, fields); err != nil {
		return utils.CollaboratorError(err)
	}
	return nil
}

func (s *VehicleService) Delete(ctx context.Context, hostID, id string) error {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return utils.CollaboratorError(err)
	}
	if vehicle == nil {
		return utils.NotFoundError("vehicle")
	}
	if vehicle.HostID.String() != hostID {
		return utils.PreconditionError("you can only delete your own vehicles")
	}
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return utils.CollaboratorError(err)
	}
	return nil
}

func toVehicleResponse(v *db_models.Vehicle) response_models.VehicleResponse {
	var photos []string
	if len(v.Photos) > 0 {
		_ = json.Unmarshal(v.Photos, &photos)
	}
	if photos == nil {
		photos = []string{}
	}
	return response_models.VehicleResponse{
		ID:           v.ID.String(),
		HostID:       v.HostID.String(),
		Title:        v.Title,
		Slug:         v.Slug,
		Type:         string(v.Type),
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		City:         v.City,
		DailyPrice:   v.DailyPrice,
		PriceDisplay: utils.FormatPeso(v.DailyPrice),
		Description:  v.Description,
		Photos:       photos,
		IsListed:     v.IsListed,
	}
}

func toVehicleResponses(vehicles []db_models.Vehicle) []response_models.VehicleResponse {
	out := make([]response_models.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, toVehicleResponse(&vehicles[i]))
	}
	return out
}
