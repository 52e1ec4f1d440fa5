package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pms/config"
	"pms/infras/otel"
	"pms/internal/domains/hotel/model"
	"pms/internal/domains/hotel/model/dto"
	"pms/internal/domains/hotel/repository"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	gModel "pms/shared/model"
	"pms/shared/timezone"
)

const (
	cacheGetHotel = "hotel:get"
)

type Hotel interface {
	Get(ctx context.Context) (dto.HotelResponse, error)
	GetOrCreate(ctx context.Context) (model.Hotel, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest) error
}

type serviceImpl struct {
	repo  repository.Hotel
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Get returns the property record served to the public booking page.
func (s *serviceImpl) Get(ctx context.Context) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetHotel, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetHotel).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.first(ctx)
	if err != nil {
		return res, err
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetHotel, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

// GetOrCreate returns the single property record, creating it on first use.
// The whole system assumes exactly one hotel; the oldest row wins when more
// than one exists. The existence check and the insert are two round-trips, so
// concurrent first writes can still race; the unique index on hotels(name)
// turns that race into a storage error instead of a duplicate.
func (s *serviceImpl) GetOrCreate(ctx context.Context) (res model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrCreate")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.first(ctx)
	if err != nil {
		return res, err
	}

	if hotel.ID != constant.Empty {
		return hotel, nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hotel = model.Hotel{
		ID:   uuid.NewString(),
		Name: s.cfg.App.Hotel.DefaultName,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, hotel); err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return res, fmt.Errorf("failed to create hotel: %w", err)
	}

	log.Info().Str("hotel_id", hotel.ID).Msg("created initial hotel record")

	return hotel, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateHotelRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	hotel, err := s.first(ctx)
	if err != nil {
		return err
	}

	if hotel.ID == constant.Empty {
		return failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(hotel.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetHotel); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}
	}()

	return nil
}

func (s *serviceImpl) first(ctx context.Context) (model.Hotel, error) {
	hotels, err := s.repo.GetAll(ctx, gDto.QueryParams{
		Limit:   1,
		SortBy:  fmt.Sprintf("%s.%s", model.TableName, constant.FieldCreatedAt),
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return model.Hotel{}, fmt.Errorf("failed to get hotel: %w", err)
	}

	if len(hotels) == 0 {
		return model.Hotel{}, nil
	}

	return hotels[0], nil
}
