package main

import (
	"database/sql"
	"flag"
	"log"

	"equipment-tracker/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	direction := flag.String("direction", "up", "Направление миграции: up или down")
	dir := flag.String("dir", "migrations", "Каталог с файлами миграций")
	flag.Parse()

	cfg := config.New()

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("❌ Не удалось открыть соединение с БД: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("❌ Не удалось установить диалект goose: %v", err)
	}

	switch *direction {
	case "up":
		if err := goose.Up(db, *dir); err != nil {
			log.Fatalf("❌ Ошибка применения миграций: %v", err)
		}
		log.Println("✅ Миграции применены.")
	case "down":
		if err := goose.Down(db, *dir); err != nil {
			log.Fatalf("❌ Ошибка отката миграции: %v", err)
		}
		log.Println("✅ Последняя миграция откатана.")
	default:
		log.Fatalf("❌ Неизвестное направление миграции: %q (ожидается up или down)", *direction)
	}
}
