package main

import (
	"flag"
	"log"

	"equipment-tracker/pkg/config"
	"equipment-tracker/pkg/database/postgresql"
	"equipment-tracker/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runAdmin := flag.Bool("admin", false, "Создать пользователя-администратора")
	runEquipment := flag.Bool("equipment", false, "Наполнить реестр демонстрационным оборудованием")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -admin -equipment)")

	flag.Parse()

	if !*runAdmin && !*runEquipment && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed/main.go -admin")
		log.Println("  go run ./seeders/cmd/seed/main.go -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")

	if *runAll || *runAdmin {
		seeders.SeedAdmin(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runEquipment {
		seeders.SeedEquipments(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
