package seeders

import (
	"context"
	"fmt"
	"log"

	"equipment-tracker/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedAdminUser(db *pgxpool.Pool) error {
	ctx := context.Background()
	log.Println("  - Создание пользователя 'Администратор'...")

	email := "admin@equipment-tracker.local"
	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	if err == nil {
		log.Println("    - Администратор уже существует. Пропускаем.")
		return nil
	}
	if err.Error() != "no rows in result set" {
		return fmt.Errorf("ошибка при проверке существования пользователя: %w", err)
	}

	hashedPassword, err := utils.HashPassword("admin")
	if err != nil {
		return err
	}

	query := `INSERT INTO users (fio, email, password_hash) VALUES ($1, $2, $3) RETURNING id`
	if err := db.QueryRow(ctx, query, "Администратор", email, hashedPassword).Scan(&userID); err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	log.Println("    - Администратор создан. Пароль по умолчанию: 'admin' — смените его.")
	return nil
}
