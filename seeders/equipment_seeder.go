package seeders

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type equipmentSeed struct {
	Name            string
	SerialNumber    string
	Status          string
	Owner           string
	Location        string
	PurchaseDate    string
	LastServiceDate string
	NextServiceDate string
	IntervalDays    int
}

var equipmentsData = []equipmentSeed{
	{
		Name: "Сервер Dell PowerEdge R740", SerialNumber: "SRV-2023-001", Status: "active",
		Owner: "ИТ-отдел", Location: "Серверная, стойка 1",
		PurchaseDate: "2023-02-10", LastServiceDate: "2026-05-01", NextServiceDate: "2026-10-28", IntervalDays: 180,
	},
	{
		Name: "Коммутатор Cisco Catalyst 9300", SerialNumber: "NET-2022-014", Status: "active",
		Owner: "ИТ-отдел", Location: "Серверная, стойка 2",
		PurchaseDate: "2022-08-21", LastServiceDate: "2026-03-15", IntervalDays: 365,
	},
	{
		Name: "ИБП APC Smart-UPS 3000", SerialNumber: "UPS-2021-007", Status: "maintenance",
		Owner: "Хозяйственный отдел", Location: "Серверная",
		PurchaseDate: "2021-11-02", LastServiceDate: "2026-07-20", IntervalDays: 90,
	},
	{
		Name: "МФУ HP LaserJet Pro M428", SerialNumber: "PRN-2024-003", Status: "active",
		Owner: "Бухгалтерия", Location: "Офис, 2 этаж",
		PurchaseDate: "2024-01-17", IntervalDays: 180,
	},
	{
		Name: "Кондиционер Daikin FTXB35", SerialNumber: "HVAC-2020-002", Status: "inactive",
		Owner: "Хозяйственный отдел", Location: "Офис, 3 этаж",
		PurchaseDate: "2020-06-30", LastServiceDate: "2025-04-12", IntervalDays: 180,
	},
}

func seedEquipments(db *pgxpool.Pool) error {
	ctx := context.Background()
	log.Println("  - Наполнение таблицы 'equipments'...")

	query := `
		INSERT INTO equipments (
			id, name, serial_number, status, owner, location,
			purchase_date, last_service_date, next_service_date, service_interval_days
		)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10)
		ON CONFLICT DO NOTHING`

	for _, e := range equipmentsData {
		if _, err := db.Exec(ctx, query,
			uuid.NewString(), e.Name, e.SerialNumber, e.Status, e.Owner, e.Location,
			e.PurchaseDate, e.LastServiceDate, e.NextServiceDate, e.IntervalDays,
		); err != nil {
			log.Printf("Ошибка при вставке оборудования '%s': %v", e.Name, err)
			return err
		}
	}

	return nil
}
