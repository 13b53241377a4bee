package main

import (
	"flag"
	"log"

	"github.com/pressly/goose/v3"

	"uyumplast-system/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	dir := flag.String("dir", "migrations", "каталог с миграциями")
	command := flag.String("command", "up", "команда goose: up, down, status, version")
	flag.Parse()

	cfg := config.New()

	db, err := goose.OpenDBWithDriver("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("Не удалось открыть соединение с БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия соединения: %v", err)
		}
	}()

	if err := goose.Run(*command, db, *dir, flag.Args()...); err != nil {
		log.Fatalf("Ошибка выполнения миграции %q: %v", *command, err)
	}
	log.Printf("Миграции: команда %q выполнена", *command)
}
