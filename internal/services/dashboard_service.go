package services

import (
	"context"
	"encoding/json"
	"time"

	"equipment-tracker/internal/dto"
	"equipment-tracker/internal/entities"
	"equipment-tracker/internal/repositories"
	"equipment-tracker/pkg/constants"
	"equipment-tracker/pkg/utils"

	"go.uber.org/zap"
)

const dashboardCacheKey = "dashboard:service_overview"

// dueSoonWindowDays — горизонт «скоро обслуживание» для сводки.
const dueSoonWindowDays = 30

type DashboardServiceInterface interface {
	GetServiceOverview(ctx context.Context) (*dto.ServiceOverviewDTO, error)
}

type DashboardService struct {
	equipmentService EquipmentServiceInterface
	cacheRepo        repositories.CacheRepositoryInterface
	cacheTTL         time.Duration
	logger           *zap.Logger
}

func NewDashboardService(
	equipmentService EquipmentServiceInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		equipmentService: equipmentService,
		cacheRepo:        cacheRepo,
		cacheTTL:         cacheTTL,
		logger:           logger,
	}
}

// BuildServiceOverview раскладывает активный парк по корзинам графика
// обслуживания относительно даты now. Чистая функция — удобно тестировать.
func BuildServiceOverview(list []entities.Equipment, now time.Time) *dto.ServiceOverviewDTO {
	today, _ := utils.ParseDate(now.Format(utils.DateLayout))
	horizon := today.AddDate(0, 0, dueSoonWindowDays)

	overview := &dto.ServiceOverviewDTO{
		ByStatus:    make(map[string]int),
		GeneratedAt: now.Format(time.RFC3339),
	}

	for i := range list {
		e := &list[i]
		overview.ByStatus[e.Status]++

		next, ok := EffectiveNextService(e)
		switch {
		case !ok:
			overview.Unknown++
		case next.Before(today):
			overview.Overdue++
		case !next.After(horizon):
			overview.DueSoon++
		default:
			overview.Ok++
		}
	}
	return overview
}

func (s *DashboardService) GetServiceOverview(ctx context.Context) (*dto.ServiceOverviewDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, dashboardCacheKey); err == nil && cached != "" {
		var overview dto.ServiceOverviewDTO
		if err := json.Unmarshal([]byte(cached), &overview); err == nil {
			return &overview, nil
		}
		// Битый кеш игнорируем и пересчитываем.
		s.logger.Warn("не удалось разобрать кеш дашборда, пересчитываем")
	}

	list, err := s.equipmentService.GetEquipments(ctx, utils.ListOptions{
		SortMode: constants.DefaultSortMode,
	})
	if err != nil {
		return nil, err
	}

	overview := BuildServiceOverview(list, time.Now())

	if payload, err := json.Marshal(overview); err == nil {
		if err := s.cacheRepo.Set(ctx, dashboardCacheKey, string(payload), s.cacheTTL); err != nil {
			s.logger.Warn("не удалось записать сводку дашборда в кеш", zap.Error(err))
		}
	}

	return overview, nil
}
