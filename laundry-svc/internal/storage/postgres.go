package storage

import (
	"database/sql"
	"fmt"

	"gulshan-laundry/laundry-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreatePackage(pkg *domain.Package) error {
	return r.DB.QueryRow(
		"INSERT INTO packages (id, name, description, price, features, is_popular) VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at",
		pkg.ID, pkg.Name, pkg.Description, pkg.Price, pq.Array(pkg.Features), pkg.IsPopular,
	).Scan(&pkg.CreatedAt)
}

func (r *PostgresRepository) ListPackages() ([]domain.Package, error) {
	rows, err := r.DB.Query(`
        SELECT id, name, COALESCE(description, ''), price, features, is_popular, created_at
        FROM packages
        ORDER BY price ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		var pkg domain.Package
		if err := rows.Scan(&pkg.ID, &pkg.Name, &pkg.Description, &pkg.Price, pq.Array(&pkg.Features), &pkg.IsPopular, &pkg.CreatedAt); err != nil {
			continue
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

func (r *PostgresRepository) GetPackage(id string) (*domain.Package, error) {
	var pkg domain.Package
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), price, features, is_popular, created_at
		FROM packages
		WHERE id = $1`, id).
		Scan(&pkg.ID, &pkg.Name, &pkg.Description, &pkg.Price, pq.Array(&pkg.Features), &pkg.IsPopular, &pkg.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PostgresRepository) UpdatePackage(pkg *domain.Package) error {
	return r.DB.QueryRow(
		"UPDATE packages SET name=$1, description=$2, price=$3, features=$4, is_popular=$5, updated_at=NOW() WHERE id=$6 RETURNING created_at, updated_at",
		pkg.Name, pkg.Description, pkg.Price, pq.Array(pkg.Features), pkg.IsPopular, pkg.ID).
		Scan(&pkg.CreatedAt, &pkg.UpdatedAt)
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	return r.DB.QueryRow(`
		INSERT INTO orders (id, name, phone, email, address, package_id, package_name, total, pickup_date, preferred_time, special_instructions, wants_whatsapp, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at`,
		order.ID, order.Name, order.Phone, order.Email, order.Address,
		order.PackageID, order.PackageName, order.Total, order.PickupDate,
		order.PreferredTime, order.SpecialInstructions, order.WantsWhatsAppUpdates, order.Status).
		Scan(&order.CreatedAt)
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, phone, COALESCE(email, ''), address, COALESCE(package_id, ''), COALESCE(package_name, ''), total, pickup_date, COALESCE(preferred_time, ''), COALESCE(special_instructions, ''), wants_whatsapp, status, created_at
		FROM orders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.Name, &order.Phone, &order.Email, &order.Address,
			&order.PackageID, &order.PackageName, &order.Total, &order.PickupDate,
			&order.PreferredTime, &order.SpecialInstructions, &order.WantsWhatsAppUpdates,
			&order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresRepository) GetOrder(id string) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, name, phone, COALESCE(email, ''), address, COALESCE(package_id, ''), COALESCE(package_name, ''), total, pickup_date, COALESCE(preferred_time, ''), COALESCE(special_instructions, ''), wants_whatsapp, status, created_at
		FROM orders WHERE id = $1`, id).
		Scan(&order.ID, &order.Name, &order.Phone, &order.Email, &order.Address,
			&order.PackageID, &order.PackageName, &order.Total, &order.PickupDate,
			&order.PreferredTime, &order.SpecialInstructions, &order.WantsWhatsAppUpdates,
			&order.Status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) UpdateOrderStatus(id, status string) (int64, error) {
	result, err := r.DB.Exec("UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2", status, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SaveQRCode(orderID string, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID string) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *PostgresRepository) CountOrdersByStatus() (map[string]int, error) {
	rows, err := r.DB.Query("SELECT status, COUNT(*) FROM orders GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			continue
		}
		counts[status] = count
	}
	return counts, nil
}

func (r *PostgresRepository) SaveMessage(msg *domain.ChatMessage) error {
	_, err := r.DB.Exec(`
		INSERT INTO chat_messages (id, sender, recipient, content, sent_at, is_read, is_bot)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		msg.ID, msg.Sender, msg.Recipient, msg.Content, msg.Timestamp, msg.IsRead, msg.IsBot)
	return err
}

func (r *PostgresRepository) ListMessages() ([]domain.ChatMessage, error) {
	rows, err := r.DB.Query(`
		SELECT id, sender, COALESCE(recipient, ''), content, sent_at, is_read, is_bot
		FROM chat_messages
		ORDER BY sent_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.Sender, &msg.Recipient, &msg.Content, &msg.Timestamp, &msg.IsRead, &msg.IsBot); err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS packages (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC NOT NULL,
			features TEXT[] NOT NULL DEFAULT '{}',
			is_popular BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT,
			address TEXT NOT NULL,
			package_id TEXT,
			package_name TEXT,
			total NUMERIC NOT NULL DEFAULT 0,
			pickup_date TEXT NOT NULL,
			preferred_time TEXT,
			special_instructions TEXT,
			wants_whatsapp BOOLEAN NOT NULL DEFAULT FALSE,
			status TEXT NOT NULL DEFAULT 'pending',
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id TEXT PRIMARY KEY,
			sender TEXT NOT NULL,
			recipient TEXT,
			content TEXT NOT NULL,
			sent_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			is_bot BOOLEAN NOT NULL DEFAULT FALSE
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
