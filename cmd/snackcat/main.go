package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/snackcat/internal/config"
	"github.com/smallbiznis/snackcat/internal/lookup"
	"github.com/smallbiznis/snackcat/internal/migration"
	"github.com/smallbiznis/snackcat/internal/observability"
	"github.com/smallbiznis/snackcat/internal/server"
	"github.com/smallbiznis/snackcat/internal/snack"
	"github.com/smallbiznis/snackcat/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		snack.Module,
		lookup.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
