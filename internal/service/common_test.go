package service_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"go-event-ticketing/config"
	"go-event-ticketing/internal/database"
	"go-event-ticketing/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	var err error
	testDB, err = database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize test database: %v", err)
	}

	schema, err := os.ReadFile("../database/schema.sql")
	if err != nil {
		log.Fatalf("Failed to read schema: %v", err)
	}
	if _, err := testDB.Exec(context.Background(), string(schema)); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	log.Println("Test database connected successfully")
	log.Println("Running service tests...")

	code := m.Run()

	testDB.Close()
	log.Println("Test database closed")

	os.Exit(code)
}

func setupTestWithTruncate(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := testDB.Exec(ctx, "TRUNCATE payouts, attendees, order_items, orders, tickets, events, lgas, states, categories, organizers, profiles, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func getTestDB() *pgxpool.Pool {
	if testDB == nil {
		panic("testDB is not initialized. Make sure TestMain has run.")
	}
	return testDB
}

func createTestUser(t *testing.T, username, firstName, lastName, email string) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO users (username, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, username, firstName, lastName, email).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

func createTestProfile(t *testing.T, userID int, phone string) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO profiles (user_id, phone)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, userID, phone).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	return id
}

func createTestOrganizer(t *testing.T, userID int, organizationName string) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO organizers (user_id, organization_name)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, userID, organizationName).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test organizer: %v", err)
	}

	return id
}

func createTestEvent(t *testing.T, organizerID int, title string, status model.EventStatus) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO events (organizer_id, title, date, venue, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, organizerID, title, time.Now().Add(30*24*time.Hour), "Main Hall", status).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}

	return id
}

func createTestTicket(t *testing.T, eventID int, name string, price string, quantityAvailable int) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO tickets (event_id, name, price, quantity_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, eventID, name, decimal.RequireFromString(price), quantityAvailable).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test ticket: %v", err)
	}

	return id
}

func createTestOrder(t *testing.T, userID, eventID int, totalAmount string, reference string, status model.OrderStatus) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO orders (user_id, event_id, total_amount, reference, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, userID, eventID, decimal.RequireFromString(totalAmount), reference, status).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test order: %v", err)
	}

	return id
}

func createTestOrderItem(t *testing.T, orderID, ticketID, quantity int) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO order_items (order_id, ticket_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, orderID, ticketID, quantity).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test order item: %v", err)
	}

	return id
}

func getTicketQuantities(t *testing.T, ticketID int) (available, sold int) {
	t.Helper()
	ctx := context.Background()

	err := testDB.QueryRow(ctx, "SELECT quantity_available, quantity_sold FROM tickets WHERE id = $1", ticketID).Scan(&available, &sold)
	if err != nil {
		t.Fatalf("Failed to read ticket quantities: %v", err)
	}
	return available, sold
}

func countAttendees(t *testing.T, bookingRef string) int {
	t.Helper()
	ctx := context.Background()

	var n int
	err := testDB.QueryRow(ctx, "SELECT COUNT(*) FROM attendees WHERE booking_ref = $1", bookingRef).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count attendees: %v", err)
	}
	return n
}
