package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"pms/config"
	"pms/infras/otel"
	bModel "pms/internal/domains/booking/model"
	bRepository "pms/internal/domains/booking/repository"
	"pms/internal/domains/booking/schedule"
	"pms/internal/domains/room/repository"
	"pms/internal/domains/stats/model/dto"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/timezone"
)

const (
	// CacheOverview is exported so booking writes can drop the stale
	// dashboard overview.
	CacheOverview = "stats:overview"
)

type Stats interface {
	Overview(ctx context.Context) (dto.OverviewResponse, error)
}

type serviceImpl struct {
	roomRepo    repository.Room
	bookingRepo bRepository.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(roomRepo repository.Room, bookingRepo bRepository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Stats {
	return &serviceImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Overview aggregates the dashboard counters. Occupancy is the share of
// room-days taken by non-cancelled bookings over the calendar window starting
// today.
func (s *serviceImpl) Overview(ctx context.Context) (res dto.OverviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.Now()
	cacheKey := shared.BuildCacheKey(CacheOverview, today.Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for stats overview")

		return res, nil
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bModel.FieldStatus, Value: bModel.StatusCancelled, Operator: gDto.FilterOperatorNotEq, Table: bModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	todayKey := today.Format(constant.DateOnlyFormat)
	window := schedule.Window(today, s.cfg.App.Calendar.Days)

	customers := map[string]struct{}{}
	occupiedDays := 0

	for _, booking := range bookings {
		customers[booking.CustomerEmail] = struct{}{}

		stay := schedule.IntervalOf(booking)
		if stay.Covers(todayKey) {
			res.ActiveBookings++
		}

		for _, day := range window {
			if stay.Covers(day) {
				occupiedDays++
			}
		}
	}

	for _, room := range rooms {
		if schedule.BookingOnDay(room.ID, todayKey, bookings) == nil {
			res.AvailableRooms++
		}
	}

	res.TotalRooms = len(rooms)
	res.Customers = len(customers)

	if totalDays := len(rooms) * len(window); totalDays > 0 {
		res.OccupancyRate = float64(occupiedDays) / float64(totalDays) * 100
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stats overview to cache")
		}
	}()

	return res, nil
}
