package repositories

import (
	"context"
	"errors"
	"fruit-order-service/internal/domain"
	"fruit-order-service/internal/platform/db"
	"os"
	"testing"

	"github.com/shopspring/decimal"
)

func TestProfileFromColumns(t *testing.T) {
	d := decimal.RequireFromString
	valid := func(s string) decimal.NullDecimal { return decimal.NewNullDecimal(d(s)) }

	p, err := profileFromColumns("Kilograms", valid("1"), valid("0.2"), valid("1.20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Gross().Weight().Equal(domain.MustWeight("1.2", domain.Kilograms)) {
		t.Fatalf("gross = %s, want 1.2 Kilograms", p.Gross())
	}

	p, err = profileFromColumns("Grams", valid("500"), decimal.NullDecimal{}, valid("500"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.Tare(); ok {
		t.Fatalf("NULL tare should decode as absent")
	}

	cases := []struct {
		name             string
		unit             string
		net, tare, gross decimal.NullDecimal
		want             error
	}{
		{"gross mismatch", "Grams", valid("500"), valid("20"), valid("500"), domain.ErrGrossMismatch},
		{"null gross", "Grams", valid("500"), decimal.NullDecimal{}, decimal.NullDecimal{}, domain.ErrGrossMismatch},
		{"zero tare", "Grams", valid("500"), valid("0"), valid("500"), domain.ErrZeroValue},
		{"bad unit", "Stones", valid("1"), decimal.NullDecimal{}, valid("1"), domain.ErrUnknownUnit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := profileFromColumns(tc.unit, tc.net, tc.tare, tc.gross)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

// Runs only against a real Postgres: DATABASE_URL=postgres://... go test ./...
func TestSQLOrderRepositoryRoundTrip(t *testing.T) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	if err := InitPostgresSchema(conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	ctx := context.Background()
	repo := NewSQLOrderRepository(conn)
	order := testOrder(t)
	if err := repo.SaveOrder(ctx, order); err != nil {
		t.Fatalf("save: %v", err)
	}
	t.Cleanup(func() { _, _ = conn.Exec(`DELETE FROM orders WHERE order_id = $1;`, order.ID.String()) })

	got, err := repo.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	assertSameOrder(t, got, order)
}
