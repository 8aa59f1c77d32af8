package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func InitializeDBSchema(db *sqlx.DB) error {
	_, err := db.ExecContext(context.Background(), `
CREATE TABLE IF NOT EXISTS events (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	title VARCHAR(255) NOT NULL,
	starts_at TIMESTAMP WITH TIME ZONE NOT NULL,
	created_by UUID NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	_, err = db.ExecContext(context.Background(), `
CREATE TABLE IF NOT EXISTS ticket_types (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	event_id UUID NOT NULL REFERENCES events (id),
	name VARCHAR(255) NOT NULL,
	price NUMERIC(10, 2) NOT NULL,
	quantity INTEGER NOT NULL CHECK (quantity >= 0)
);`)
	if err != nil {
		return fmt.Errorf("failed to create ticket_types table: %w", err)
	}

	_, err = db.ExecContext(context.Background(), `
CREATE TABLE IF NOT EXISTS bookings (
	id UUID PRIMARY KEY,
	customer_id UUID NOT NULL,
	ticket_type_id UUID NOT NULL REFERENCES ticket_types (id),
	quantity INTEGER NOT NULL CHECK (quantity >= 1),
	status VARCHAR(16) NOT NULL,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("failed to create bookings table: %w", err)
	}

	// One active booking per customer and ticket type; the double-booking
	// guard is this conditional insert, not a separate existence check.
	_, err = db.ExecContext(context.Background(), `
CREATE UNIQUE INDEX IF NOT EXISTS ux_bookings_active
	ON bookings (customer_id, ticket_type_id)
	WHERE status IN ('pending', 'confirmed');`)
	if err != nil {
		return fmt.Errorf("failed to create active bookings index: %w", err)
	}

	_, err = db.ExecContext(context.Background(), `
CREATE TABLE IF NOT EXISTS payments (
	id UUID PRIMARY KEY,
	booking_id UUID NOT NULL UNIQUE REFERENCES bookings (id),
	amount NUMERIC(10, 2) NOT NULL,
	status VARCHAR(16) NOT NULL,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("failed to create payments table: %w", err)
	}

	return nil
}
