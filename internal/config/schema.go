package config

import "database/sql"

// EnsureSchema creates the reservation tables when they are missing.
// tickets.created_at keeps microseconds: queue position is derived from it.
func EnsureSchema(db *sql.DB) error {
	ddls := []string{
		`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	username VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'user',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_username (username),
	UNIQUE KEY uniq_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_code CHAR(5) NOT NULL,
	user_id BIGINT NOT NULL,
	booking_date DATE NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_booking_code (booking_code),
	KEY idx_booking_date (booking_date)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS tickets (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	age INT NOT NULL,
	gender ENUM('MALE','FEMALE','OTHER') NOT NULL,
	status ENUM('CONFIRMED','RAC','WAITLIST','CANCELLED') NOT NULL,
	berth_no INT NULL,
	berth_type ENUM('LOWER','MIDDLE','UPPER','SIDE_LOWER') NULL,
	created_at TIMESTAMP(6) DEFAULT CURRENT_TIMESTAMP(6),
	KEY idx_booking (booking_id),
	KEY idx_status_created (status, created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, ddl := range ddls {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
