package sqlstore

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"tripplanner/internal/domain"
)

func newMock(t *testing.T, d Dialect) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return New(db, d), mock
}

func TestListAttractions(t *testing.T) {
	s, mock := newMock(t, MySQL)
	rows := sqlmock.NewRows([]string{"city", "type", "name", "entrance_fee", "lat", "lon", "reviews"}).
		AddRow("Agra", "Monument", "Taj Mahal", 50.0, 27.1751, 78.0421, 2.8).
		AddRow("Agra", "Fort", "Agra Fort", 50.0, 27.1795, 78.0211, 0.9)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY position, id")).WillReturnRows(rows)

	got, err := s.ListAttractions(context.Background())
	if err != nil {
		t.Fatalf("ListAttractions: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Taj Mahal" || got[1].Reviews != 0.9 {
		t.Fatalf("unexpected rows: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListAttractions_QueryError(t *testing.T) {
	s, mock := newMock(t, Postgres)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	if _, err := s.ListAttractions(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

var batch = []domain.Attraction{
	{City: "Jaipur", Type: "Fort", Name: "Amber Fort", EntranceFee: 100, Lat: 26.98, Lon: 75.85, Reviews: 1.1},
	{City: "Jaipur", Type: "Palace", Name: "Hawa Mahal", EntranceFee: 50, Lat: 26.92, Lon: 75.82, Reviews: 0.8},
	{City: "Jaipur", Type: "Fort", Name: "Amber Fort", EntranceFee: 200, Lat: 26.98, Lon: 75.85, Reviews: 1.2},
}

func TestUpsertAttractions_MySQL(t *testing.T) {
	s, mock := newMock(t, MySQL)
	// the repeated Amber Fort keeps its last row's values and position
	mock.ExpectExec(regexp.QuoteMeta("VALUES (?,?,?,?,?,?,?,?),(?,?,?,?,?,?,?,?) ON DUPLICATE KEY UPDATE\n  position     = VALUES(position)")).
		WithArgs(402, "Jaipur", "Fort", "Amber Fort", 200.0, 26.98, 75.85, 1.2,
			401, "Jaipur", "Palace", "Hawa Mahal", 50.0, 26.92, 75.82, 0.8).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := s.UpsertAttractions(context.Background(), 400, batch); err != nil {
		t.Fatalf("UpsertAttractions: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpsertAttractions_Postgres(t *testing.T) {
	s, mock := newMock(t, Postgres)
	mock.ExpectExec(regexp.QuoteMeta("VALUES ($1,$2,$3,$4,$5,$6,$7,$8),($9,$10,$11,$12,$13,$14,$15,$16) ON CONFLICT (city, name) DO UPDATE SET\n  position     = EXCLUDED.position")).
		WithArgs(2, "Jaipur", "Fort", "Amber Fort", 200.0, 26.98, 75.85, 1.2,
			1, "Jaipur", "Palace", "Hawa Mahal", 50.0, 26.92, 75.82, 0.8).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := s.UpsertAttractions(context.Background(), 0, batch); err != nil {
		t.Fatalf("UpsertAttractions: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpsertAttractions_EmptyIsNoop(t *testing.T) {
	s, mock := newMock(t, MySQL)
	if err := s.UpsertAttractions(context.Background(), 0, nil); err != nil {
		t.Fatalf("empty upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no statement expected: %v", err)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open(context.Background(), "sqlite", "file.db"); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}
