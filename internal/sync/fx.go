package sync

import (
	"github.com/campusmart/campusmart/internal/sync/domain"
	"github.com/campusmart/campusmart/internal/sync/repository"
	"github.com/campusmart/campusmart/internal/sync/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sync",
	fx.Provide(repository.ProvideRuns),
	fx.Provide(service.New),
	fx.Provide(func(s *service.Service) domain.Service { return s }),
)
