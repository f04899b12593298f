package main

import (
	"log"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/campusops/univserv/internal/config"
	"github.com/campusops/univserv/internal/db"
	"github.com/campusops/univserv/internal/store"
	"github.com/campusops/univserv/internal/styles"
)

func main() {
	cfg, err := config.Load(config.CfgFile)
	if err != nil {
		log.Fatal("Could not load config file: ", err)
	}
	styles.SetAccent(cfg.Style.Accent)

	provider := db.NewProvider(cfg)
	app := NewApp(cfg, store.New(provider))
	app.Run()
}
