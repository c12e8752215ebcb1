package srv

import (
	"context"

	"github.com/sandevgo/sdb/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// RunForeground starts main on the calling goroutine and, once it returns,
// shuts down main and then every dependant in reverse order.
func RunForeground(ctx context.Context, main Service, dependants ...Service) error {
	err := main.Start(ctx)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msgf("%T stopped with error", main)
	}

	ShutdownServices(ctx, append([]Service{main}, reverse(dependants)...))
	return err
}

func ShutdownServices(ctx context.Context, services []Service) {
	for _, service := range services {
		if err := service.Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", service)
		}
	}
}

func reverse(services []Service) []Service {
	res := make([]Service, len(services))
	for i, s := range services {
		res[len(services)-1-i] = s
	}
	return res
}
