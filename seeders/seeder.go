package seeders

import (
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAdmin создаёт администратора, от имени которого выполняются
// первые операции в системе.
func SeedAdmin(db *pgxpool.Pool) {
	log.Println("▶️  Запуск создания администратора...")

	if err := seedAdminUser(db); err != nil {
		log.Fatalf("❌ Ошибка создания администратора: %v", err)
	}

	log.Println("✅ Администратор готов!")
}

// SeedEquipments наполняет реестр демонстрационным оборудованием.
func SeedEquipments(db *pgxpool.Pool) {
	log.Println("▶️  Запуск наполнения реестра оборудования...")

	if err := seedEquipments(db); err != nil {
		log.Fatalf("❌ Ошибка наполнения реестра: %v", err)
	}

	log.Println("✅ Наполнение реестра завершено!")
}
