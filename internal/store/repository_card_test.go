package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/models"
	"github.com/jackc/pgerrcode"
)

func newTestCardRepo(t *testing.T) (*cardRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &cardRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var cardRowColumns = []string{
	"card_id", "owner_id", "name", "title", "description", "email", "phone",
	"profile_image", "accent_color", "gradient", "theme", "links", "feature_sections",
	"view_count", "share_count", "public_slug", "is_active", "created_at", "updated_at",
}

func cardRow(card models.Card) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(cardRowColumns).AddRow(
		card.CardID, card.OwnerID, card.Name, card.Title, card.Description,
		card.Email, card.Phone, card.ProfileImage, card.AccentColor,
		card.Gradient, card.Theme, []byte(`[]`), []byte(`[]`),
		card.ViewCount, card.ShareCount, card.PublicSlug, true, now, now,
	)
}

func TestCreateCard_AssignsIDAndSlug(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()
	card := models.Card{
		OwnerID: 1,
		Name:    "Ann Example",
		Title:   "Engineer",
	}

	saved := card
	saved.CardID = "11111111-2222-3333-4444-555555555555"
	saved.PublicSlug = "mhx0a1b2-c3d4e5"

	mock.ExpectQuery("INSERT INTO cards").
		WillReturnRows(cardRow(saved))

	created, err := repo.CreateCard(ctx, card)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CardID == "" {
		t.Error("expected a card_id to be assigned")
	}
	if created.PublicSlug == "" {
		t.Error("expected a public_slug to be assigned")
	}
	if created.Name != card.Name {
		t.Errorf("expected name %q, got %q", card.Name, created.Name)
	}
}

func TestCreateCard_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO cards").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCard(ctx, models.Card{OwnerID: 1, Name: "Ann"})
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestFindOwnedCard_Success(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()
	want := models.Card{CardID: "card-1", OwnerID: 1, Name: "Ann"}

	mock.ExpectQuery("SELECT card_id, owner_id").
		WithArgs(want.CardID, want.OwnerID).
		WillReturnRows(cardRow(want))

	got, err := repo.FindOwnedCard(ctx, want.OwnerID, want.CardID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CardID != want.CardID {
		t.Errorf("expected card_id %q, got %q", want.CardID, got.CardID)
	}
}

func TestFindOwnedCard_NotFound(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT card_id, owner_id").
		WithArgs("missing", int64(1)).
		WillReturnRows(sqlmock.NewRows(cardRowColumns))

	_, err := repo.FindOwnedCard(ctx, 1, "missing")
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestListOwnedCards_Success(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(cardRowColumns).
		AddRow("card-2", int64(1), "Second", "", "", "", "", "", "", "", "light",
			[]byte(`[]`), []byte(`[]`), int64(0), int64(0), "slug-2", true, now, now).
		AddRow("card-1", int64(1), "First", "", "", "", "", "", "", "", "light",
			[]byte(`[{"title":"Site","url":"https://a.example","type":"website"}]`),
			[]byte(`[]`), int64(3), int64(1), "slug-1", true, now, now)

	mock.ExpectQuery("SELECT card_id, owner_id").
		WillReturnRows(rows)

	cards, err := repo.ListOwnedCards(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].CardID != "card-2" {
		t.Errorf("expected row order to be preserved, got first card %q", cards[0].CardID)
	}
	if len(cards[1].Links) != 1 || cards[1].Links[0].URL != "https://a.example" {
		t.Errorf("expected links JSON to be decoded, got %+v", cards[1].Links)
	}
}

func TestListOwnedCards_Empty(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT card_id, owner_id").
		WillReturnRows(sqlmock.NewRows(cardRowColumns))

	cards, err := repo.ListOwnedCards(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("expected empty slice, got %d cards", len(cards))
	}
}

func TestFindPublicBySlug_NotFound(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT card_id, owner_id").
		WithArgs("ghost-slug").
		WillReturnRows(sqlmock.NewRows(cardRowColumns))

	_, err := repo.FindPublicBySlug(ctx, "ghost-slug")
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestUpdateCard_Success(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()
	newName := "Renamed"
	want := models.Card{CardID: "card-1", OwnerID: 1, Name: newName}

	mock.ExpectQuery("UPDATE cards").
		WillReturnRows(cardRow(want))

	got, err := repo.UpdateCard(ctx, 1, "card-1", models.CardUpdate{Name: &newName})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != newName {
		t.Errorf("expected updated name %q, got %q", newName, got.Name)
	}
}

func TestUpdateCard_NotFound(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()
	newName := "Renamed"

	mock.ExpectQuery("UPDATE cards").
		WillReturnRows(sqlmock.NewRows(cardRowColumns))

	_, err := repo.UpdateCard(ctx, 1, "missing", models.CardUpdate{Name: &newName})
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestUpdateCard_EmptyUpdate(t *testing.T) {
	repo, _, db := newTestCardRepo(t)
	defer db.Close()

	_, err := repo.UpdateCard(context.Background(), 1, "card-1", models.CardUpdate{})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}

func TestSoftDeleteCard_Success(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE cards").
		WithArgs("card-1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SoftDeleteCard(ctx, 1, "card-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSoftDeleteCard_NotFound(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE cards").
		WithArgs("missing", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDeleteCard(ctx, 1, "missing")
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestIncrementCounter_Views(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"view_count"}).AddRow(int64(42))

	mock.ExpectQuery("UPDATE cards").
		WithArgs("card-1").
		WillReturnRows(rows)

	value, err := repo.IncrementCounter(ctx, "card-1", models.CounterViews)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 42 {
		t.Errorf("expected counter value 42, got %d", value)
	}
}

func TestIncrementCounter_UnknownCounter(t *testing.T) {
	repo, _, db := newTestCardRepo(t)
	defer db.Close()

	_, err := repo.IncrementCounter(context.Background(), "card-1", "likes")
	if !errors.Is(err, ErrUnknownCounter) {
		t.Fatalf("expected ErrUnknownCounter, got %v", err)
	}
}

func TestIncrementCounter_NotFound(t *testing.T) {
	repo, mock, db := newTestCardRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE cards").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"share_count"}))

	_, err := repo.IncrementCounter(ctx, "missing", models.CounterShares)
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}
