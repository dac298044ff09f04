//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"AirwallexPayments/internal/app"
	"AirwallexPayments/pkg/postgres"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PostgresContainer struct {
	Container testcontainers.Container
	Pool      *postgres.Postgres
	DSN       string
}

func NewPostgres(ctx context.Context) (*PostgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image: "postgres:17-alpine",
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "secret",
			"POSTGRES_DB":       "payments_test",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres",
			func(host string, port nat.Port) string {
				return dsn(host, port)
			},
		).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("container port: %w", err)
	}
	connStr := dsn(host, port)

	pool, err := postgres.New(connStr, postgres.MaxPoolSize(10))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := app.ApplyMigrations(connStr, app.MigrationFS); err != nil {
		pool.Close()
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &PostgresContainer{
		Container: container,
		Pool:      pool,
		DSN:       connStr,
	}, nil
}

func dsn(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://postgres:secret@%s:%s/payments_test?sslmode=disable", host, port.Port())
}

func (c *PostgresContainer) Cleanup(ctx context.Context) {
	if c.Pool != nil {
		c.Pool.Close()
	}
	if c.Container != nil {
		_ = c.Container.Terminate(ctx)
	}
}

// Truncate clears all tables (for isolation between tests)
func (c *PostgresContainer) Truncate(ctx context.Context) error {
	_, err := c.Pool.Pool.Exec(ctx,
		"TRUNCATE TABLE webhook_events, order_notes, authorizations, credit_memos, invoices, payment_intents, orders CASCADE")
	return err
}

// SeedOrder inserts a pending order linked to intentID, as checkout would.
func (c *PostgresContainer) SeedOrder(ctx context.Context, orderID, intentID, currency, grandTotal string) error {
	if _, err := c.Pool.Pool.Exec(ctx,
		"INSERT INTO orders (id, currency, grand_total) VALUES ($1, $2, $3::numeric)",
		orderID, currency, grandTotal); err != nil {
		return fmt.Errorf("seed order: %w", err)
	}
	if _, err := c.Pool.Pool.Exec(ctx,
		"INSERT INTO payment_intents (id, order_id, currency, amount) VALUES ($1, $2, $3, $4::numeric)",
		intentID, orderID, currency, grandTotal); err != nil {
		return fmt.Errorf("seed payment intent: %w", err)
	}
	return nil
}
