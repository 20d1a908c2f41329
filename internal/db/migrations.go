package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'inquiry_type') THEN
			CREATE TYPE inquiry_type AS ENUM ('technical', 'general', 'pricing', 'feature_request', 'bug_report');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'inquiry_status') THEN
			CREATE TYPE inquiry_status AS ENUM ('pending', 'processing', 'resolved', 'closed');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'inquiry_priority') THEN
			CREATE TYPE inquiry_priority AS ENUM ('low', 'medium', 'high', 'urgent');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'email_status') THEN
			CREATE TYPE email_status AS ENUM ('pending', 'sent', 'failed');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		company_name VARCHAR(255),
		phone VARCHAR(50),
		registration_source VARCHAR(100),
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_login_at TIMESTAMPTZ
	);`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users (id),
		type inquiry_type NOT NULL,
		title VARCHAR(500) NOT NULL,
		content TEXT NOT NULL,
		status inquiry_status NOT NULL DEFAULT 'pending',
		priority inquiry_priority NOT NULL DEFAULT 'medium',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		resolved_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_inquiries_user_id ON inquiries (user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_inquiries_created_at ON inquiries (created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_inquiries_status ON inquiries (status);`,
	`CREATE TABLE IF NOT EXISTS admin_accounts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'manager',
		last_login_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS email_templates (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		subject VARCHAR(500) NOT NULL,
		content TEXT NOT NULL,
		category VARCHAR(100) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS email_send_history (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		recipient_email VARCHAR(255) NOT NULL,
		recipient_name VARCHAR(255) NOT NULL,
		template_id UUID REFERENCES email_templates (id) ON DELETE SET NULL,
		template_name VARCHAR(255) NOT NULL,
		subject VARCHAR(500) NOT NULL,
		status email_status NOT NULL DEFAULT 'pending',
		error_message TEXT,
		sent_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_email_send_history_sent_at ON email_send_history (sent_at);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
