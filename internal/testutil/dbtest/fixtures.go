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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword matches the bcrypt hash stored by CreateTestUser.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	username := strings.SplitN(email, "@", 2)[0]

	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, username, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, username, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestService(t *testing.T, db DBLike, name string, priceCents int64, language string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO services (name, description, price_cents, duration_min, language) VALUES ($1, $2, $3, 60, $4) RETURNING id",
		name, name+" description", priceCents, language).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestBooking(t *testing.T, db DBLike, name string, serviceID *int64, start time.Time, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO bookings (user_name, email, phone_number, service_id, start_time, end_time, status) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id",
		name, strings.ToLower(strings.ReplaceAll(name, " ", "."))+"@example.com", "5551234567", serviceID, start, start.Add(time.Hour), status).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestTestimonial(t *testing.T, db DBLike, clientName string, approved, featured bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO testimonials (client_name, testimonial_text, rating, is_approved, is_featured) VALUES ($1, $2, 5, $3, $4) RETURNING id",
		clientName, "Wonderful session with "+clientName, approved, featured).Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedReferenceData inserts the settings every public page expects.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO site_settings (key, value, language) VALUES
		    ('site_name', 'Holistic Web', 'ENG'),
		    ('hero_title', 'Find your balance', 'ENG'),
		    ('hero_title', 'Тэнцвэрээ ол', 'MON')
		ON CONFLICT (key, language) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
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
