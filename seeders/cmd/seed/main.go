package main

import (
	"flag"
	"log"

	"uyumplast-system/pkg/config"
	"uyumplast-system/pkg/database/postgresql"
	"uyumplast-system/seeders"
)

func main() {
	runRoles := flag.Bool("roles", false, "Наполнить роли, привилегии и их связи")
	runAdmin := flag.Bool("admin", false, "Создать администратора (пароль из ADMIN_PASSWORD)")
	runAll := flag.Bool("all", false, "Запустить все сидеры")
	flag.Parse()

	if !*runRoles && !*runAdmin && !*runAll {
		log.Println("Не выбран ни один сидер.")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runRoles || *runAll {
		seeders.SeedRolesAndPermissions(dbPool)
	}
	if *runAdmin || *runAll {
		seeders.SeedAdmin(dbPool)
	}

	log.Println("Сидеры завершены")
}
