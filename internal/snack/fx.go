package snack

import (
	"github.com/smallbiznis/snackcat/internal/snack/repository"
	"github.com/smallbiznis/snackcat/internal/snack/service"
	"go.uber.org/fx"
)

var Module = fx.Module("snack.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
