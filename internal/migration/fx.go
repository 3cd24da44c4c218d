package migration

import (
	"github.com/smallbiznis/snackcat/internal/config"
	snackdomain "github.com/smallbiznis/snackcat/internal/snack/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType != "postgres" {
			// Dev databases (sqlite, mysql) are schema-managed by gorm.
			return conn.AutoMigrate(&snackdomain.Snack{})
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
