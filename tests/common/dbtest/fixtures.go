//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by the pool and by a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Catalogue rows a booking test needs. Names are fixed so failures are easy to read.
type OfferingFixture struct {
	VendorID   uuid.UUID
	BranchID   uuid.UUID
	ServiceID  uuid.UUID
	OfferingID uuid.UUID
}

type OfferingParams struct {
	Price       string
	PriceUnit   string
	MinDuration *int
	MaxDuration *int
	MaxCapacity int
	IsAvailable bool
}

func DefaultOfferingParams() OfferingParams {
	return OfferingParams{
		Price:       "5.000",
		PriceUnit:   "hour",
		MaxCapacity: 10,
		IsAvailable: true,
	}
}

func CreateVendor(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO vendors (id, name) VALUES ($1, $2)", id, name)
	require.NoError(t, err)
	return id
}

func CreateBranch(t *testing.T, db DBLike, vendorID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO branches (id, vendor_id, name) VALUES ($1, $2, $3)", id, vendorID, name)
	require.NoError(t, err)
	return id
}

func CreateService(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO services (id, name) VALUES ($1, $2)", id, name)
	require.NoError(t, err)
	return id
}

// CreateOffering inserts a vendor, branch and service and an offering on top of them.
func CreateOffering(t *testing.T, db DBLike, p OfferingParams) OfferingFixture {
	t.Helper()

	f := OfferingFixture{OfferingID: uuid.New()}
	f.VendorID = CreateVendor(t, db, "Test Vendor")
	f.BranchID = CreateBranch(t, db, f.VendorID, "Test Branch")
	f.ServiceID = CreateService(t, db, "Hot Desk")

	_, err := db.Exec(context.Background(), `
		INSERT INTO service_offerings
		    (id, branch_id, service_id, vendor_id, name, price_per_unit, currency, price_unit,
		     min_duration, max_duration, max_capacity, is_available)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, 'JOD', $7, $8, $9, $10, $11)`,
		f.OfferingID, f.BranchID, f.ServiceID, f.VendorID, "Hot Desk",
		p.Price, p.PriceUnit, p.MinDuration, p.MaxDuration, p.MaxCapacity, p.IsAvailable)
	require.NoError(t, err)
	return f
}

func SetAvailability(t *testing.T, db DBLike, offeringID uuid.UUID, date time.Time, units int, blocked bool) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO availability (service_offering_id, date, available_units, is_blocked)
		VALUES ($1, $2::date, $3, $4)
		ON CONFLICT (service_offering_id, date)
		DO UPDATE SET available_units = EXCLUDED.available_units, is_blocked = EXCLUDED.is_blocked`,
		offeringID, date.Format(time.DateOnly), units, blocked)
	require.NoError(t, err)
}

func GetAvailableUnits(t *testing.T, db DBLike, offeringID uuid.UUID, date time.Time) int {
	t.Helper()

	var units int
	err := db.QueryRow(context.Background(),
		"SELECT available_units FROM availability WHERE service_offering_id = $1 AND date = $2::date",
		offeringID, date.Format(time.DateOnly)).Scan(&units)
	require.NoError(t, err)
	return units
}

func CountBookings(t *testing.T, db DBLike, offeringID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM bookings WHERE service_offering_id = $1", offeringID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO services (id, name) VALUES
		    (gen_random_uuid(), 'Meeting Room'),
		    (gen_random_uuid(), 'Private Office');
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
