package migrations

import (
	"database/sql"
	"time"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS photos (
		photo_id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users (user_id),
		url VARCHAR(512) NOT NULL,
		caption TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		comment_id UUID PRIMARY KEY,
		photo_id UUID NOT NULL REFERENCES photos (photo_id),
		user_id UUID NOT NULL REFERENCES users (user_id),
		text TEXT NOT NULL CHECK (text <> ''),
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS likes (
		photo_id UUID NOT NULL REFERENCES photos (photo_id),
		user_id UUID NOT NULL REFERENCES users (user_id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		PRIMARY KEY (photo_id, user_id)
	)`,
}

// AutoMigrate creates the schema if it does not exist, retrying each
// statement in case the database is still starting up.
func AutoMigrate(db *sql.DB, retries int) error {
	for _, stmt := range statements {
		_, err := db.Exec(stmt)
		for i := 0; err != nil && i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(stmt)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
