package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cardfolio/cardfolio/internal/adapter"
	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/mock"
	"github.com/cardfolio/cardfolio/internal/store"
	"github.com/cardfolio/cardfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDraftService(local store.LocalStorage, serverAdapter adapter.ServerAdapter, debounce time.Duration) *draftService {
	cfg := config.Client{
		ServerURL:     "http://localhost:8080",
		DraftDebounce: debounce,
	}
	images := NewImageService(defaultImageByteCeiling)
	return NewDraftService(local, serverAdapter, images, cfg, logger.Nop()).(*draftService)
}

// ─────────────────────────────────────────────
// Debounced local persistence
// ─────────────────────────────────────────────

func TestDraftService_Update_BurstCoalescesIntoSingleWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)

	// one persist for the whole burst: markers plus a single draft write
	local.EXPECT().Set(store.CreatingNewKey, []byte("true")).Return(nil).Times(1)
	local.EXPECT().Delete(store.EditingCardKey).Return(nil).Times(1)
	local.EXPECT().Set(store.DraftKey, gomock.Any()).Return(nil).Times(1)

	svc := newTestDraftService(local, mock.NewMockServerAdapter(ctrl), 30*time.Millisecond)

	for _, name := range []string{"A", "An", "Ann"} {
		svc.Update(models.CardDraft{Name: name})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(120 * time.Millisecond)

	draft, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "Ann", draft.Name, "the last edit of the burst wins")
}

func TestDraftService_Update_NotifiesSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	local.EXPECT().Delete(gomock.Any()).Return(nil).AnyTimes()

	svc := newTestDraftService(local, mock.NewMockServerAdapter(ctrl), time.Hour)

	var seen []string
	unsubscribe := svc.Subscribe(func(d models.CardDraft) {
		seen = append(seen, d.Name)
	})

	svc.Update(models.CardDraft{Name: "Ann"})
	unsubscribe()
	svc.Update(models.CardDraft{Name: "Bob"})

	assert.Equal(t, []string{"Ann"}, seen)
}

// ─────────────────────────────────────────────
// Quota degradation ladder
// ─────────────────────────────────────────────

func TestDraftService_Persist_StripsImagesWhenOverQuota(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)

	draft := models.CardDraft{
		CardID:       "card-1",
		Name:         "Ann",
		ProfileImage: "data:image/jpeg;base64,AAAA",
		FeatureSections: []models.FeatureSection{
			{Title: "Shop", Image: "data:image/jpeg;base64,BBBB"},
		},
	}

	local.EXPECT().Set(store.EditingCardKey, []byte(`"card-1"`)).Return(nil)
	local.EXPECT().Delete(store.CreatingNewKey).Return(nil)

	var written [][]byte
	gomock.InOrder(
		local.EXPECT().Set(store.DraftKey, gomock.Any()).
			DoAndReturn(func(_ string, payload []byte) error {
				written = append(written, payload)
				return store.ErrLocalQuotaExceeded
			}),
		local.EXPECT().Set(store.DraftKey, gomock.Any()).
			DoAndReturn(func(_ string, payload []byte) error {
				written = append(written, payload)
				return nil
			}),
	)

	svc := newTestDraftService(local, mock.NewMockServerAdapter(ctrl), time.Hour)
	svc.draft = draft
	svc.hasDraft = true

	svc.mu.Lock()
	svc.persistLocked()
	svc.mu.Unlock()

	require.Len(t, written, 2)
	assert.True(t, bytes.Contains(written[0], []byte("base64")), "first attempt carries the full draft")
	assert.False(t, bytes.Contains(written[1], []byte("base64")), "second attempt must have images stripped")

	var stripped models.CardDraft
	require.NoError(t, json.Unmarshal(written[1], &stripped))
	assert.Empty(t, stripped.ProfileImage)
	require.Len(t, stripped.FeatureSections, 1)
	assert.Empty(t, stripped.FeatureSections[0].Image)
	assert.Equal(t, "Shop", stripped.FeatureSections[0].Title, "stripping removes images only")
}

func TestDraftService_Persist_ClearsNonEssentialAndFallsBackToMinimal(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)

	draft := models.CardDraft{
		Name:            "Ann",
		ProfileImage:    "data:image/jpeg;base64,AAAA",
		FeatureSections: []models.FeatureSection{{Title: "Shop"}},
	}

	local.EXPECT().Set(store.CreatingNewKey, []byte("true")).Return(nil)
	local.EXPECT().Delete(store.EditingCardKey).Return(nil)

	var last []byte
	gomock.InOrder(
		local.EXPECT().Set(store.DraftKey, gomock.Any()).Return(store.ErrLocalQuotaExceeded),
		local.EXPECT().Set(store.DraftKey, gomock.Any()).Return(store.ErrLocalQuotaExceeded),
		local.EXPECT().ClearNonEssential().Return(int64(512), nil),
		local.EXPECT().Set(store.DraftKey, gomock.Any()).
			DoAndReturn(func(_ string, payload []byte) error {
				last = payload
				return nil
			}),
	)

	svc := newTestDraftService(local, mock.NewMockServerAdapter(ctrl), time.Hour)
	svc.draft = draft
	svc.hasDraft = true

	svc.mu.Lock()
	svc.persistLocked()
	svc.mu.Unlock()

	var minimal models.CardDraft
	require.NoError(t, json.Unmarshal(last, &minimal))
	assert.Equal(t, "Ann", minimal.Name)
	assert.Empty(t, minimal.FeatureSections, "the minimal subset drops feature sections")
}

func TestDraftService_Persist_RecompressesOversizedImageInsteadOfDropping(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)

	oversized := "data:image/png;base64," + base64.StdEncoding.EncodeToString(encodePNG(t, 512, 512))
	draft := models.CardDraft{Name: "Ann", ProfileImage: oversized}

	local.EXPECT().Set(store.CreatingNewKey, []byte("true")).Return(nil)
	local.EXPECT().Delete(store.EditingCardKey).Return(nil)

	var persisted []byte
	local.EXPECT().Set(store.DraftKey, gomock.Any()).
		DoAndReturn(func(_ string, payload []byte) error {
			persisted = payload
			return nil
		})

	svc := newTestDraftService(local, mock.NewMockServerAdapter(ctrl), time.Hour)
	svc.images = NewImageService(4 << 10)
	svc.draft = draft
	svc.hasDraft = true

	svc.mu.Lock()
	svc.persistLocked()
	svc.mu.Unlock()

	var written models.CardDraft
	require.NoError(t, json.Unmarshal(persisted, &written))
	require.NotEmpty(t, written.ProfileImage, "a compressible image must be shrunk, not dropped")
	assert.True(t, strings.HasPrefix(written.ProfileImage, "data:image/jpeg;base64,"))

	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(written.ProfileImage, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(payload), 4<<10)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, oversized, current.ProfileImage, "recompression applies to the persisted copy only")
}

func TestDraftService_Persist_DropsOnlyUnshrinkableImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)

	// decodes fine but is not an image, so it cannot be recompressed
	garbage := "data:image/png;base64," + base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xAB}, 8<<10))
	draft := models.CardDraft{
		Name:            "Ann",
		ProfileImage:    garbage,
		FeatureSections: []models.FeatureSection{{Title: "Shop", Image: "blob:shop-banner"}},
	}

	local.EXPECT().Set(store.CreatingNewKey, []byte("true")).Return(nil)
	local.EXPECT().Delete(store.EditingCardKey).Return(nil)

	var persisted []byte
	local.EXPECT().Set(store.DraftKey, gomock.Any()).
		DoAndReturn(func(_ string, payload []byte) error {
			persisted = payload
			return nil
		})

	svc := newTestDraftService(local, mock.NewMockServerAdapter(ctrl), time.Hour)
	svc.images = NewImageService(4 << 10)
	svc.draft = draft
	svc.hasDraft = true

	svc.mu.Lock()
	svc.persistLocked()
	svc.mu.Unlock()

	var written models.CardDraft
	require.NoError(t, json.Unmarshal(persisted, &written))
	assert.Empty(t, written.ProfileImage, "unshrinkable images are dropped")
	assert.Equal(t, "Ann", written.Name)
	require.Len(t, written.FeatureSections, 1)
	assert.Equal(t, "blob:shop-banner", written.FeatureSections[0].Image, "external references are left alone")
}

// ─────────────────────────────────────────────
// Save
// ─────────────────────────────────────────────

func TestDraftService_Save_NewDraftCreates(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	local.EXPECT().Delete(gomock.Any()).Return(nil).AnyTimes()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().
		CreateCard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, card models.Card) (models.Card, error) {
			assert.Equal(t, "Ann", card.Name)
			card.CardID = "card-1"
			card.PublicSlug = "slug-1"
			return card, nil
		})

	svc := newTestDraftService(local, serverAdapter, time.Hour)
	svc.Update(models.CardDraft{Name: "Ann", ShowSaveContact: true})

	card, err := svc.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "card-1", card.CardID)

	draft, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "card-1", draft.CardID, "draft must adopt the server-assigned id")
	assert.Contains(t, draft.ShareURL, "slug-1")
	assert.True(t, draft.ShowSaveContact, "client-only toggles survive the rebuild")
}

func TestDraftService_Save_ExistingDraftUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	local.EXPECT().Delete(gomock.Any()).Return(nil).AnyTimes()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().
		UpdateCard(gomock.Any(), "card-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, cardID string, update models.CardUpdate) (models.Card, error) {
			require.NotNil(t, update.Name)
			return models.Card{CardID: cardID, Name: *update.Name, PublicSlug: "slug-1"}, nil
		})

	svc := newTestDraftService(local, serverAdapter, time.Hour)
	svc.Update(models.CardDraft{CardID: "card-1", Name: "Renamed"})

	card, err := svc.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Renamed", card.Name)
}

func TestDraftService_Save_NoDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestDraftService(mock.NewMockLocalStorage(ctrl), mock.NewMockServerAdapter(ctrl), time.Hour)

	_, err := svc.Save(context.Background())
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestDraftService_Save_MapsAdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	local.EXPECT().Delete(gomock.Any()).Return(nil).AnyTimes()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().
		UpdateCard(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Card{}, adapter.ErrNotFound)

	svc := newTestDraftService(local, serverAdapter, time.Hour)
	svc.Update(models.CardDraft{CardID: "card-1", Name: "Ann"})

	_, err := svc.Save(context.Background())
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

// ─────────────────────────────────────────────
// LoadForEdit / Resume / Discard
// ─────────────────────────────────────────────

func TestDraftService_LoadForEdit_FetchesServerCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	local.EXPECT().Delete(gomock.Any()).Return(nil).AnyTimes()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().
		GetCard(gomock.Any(), "card-1").
		Return(models.Card{CardID: "card-1", Name: "Ann", PublicSlug: "slug-1"}, nil)

	svc := newTestDraftService(local, serverAdapter, time.Hour)

	draft, err := svc.LoadForEdit(context.Background(), "card-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", draft.Name)
	assert.Contains(t, draft.ShareURL, "slug-1")
}

func TestDraftService_LoadForEdit_PrefersServerShareURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	local.EXPECT().Delete(gomock.Any()).Return(nil).AnyTimes()

	// the server materialized the link from its own public base URL;
	// the client must not rebuild it from its configured server address
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().
		GetCard(gomock.Any(), "card-1").
		Return(models.Card{
			CardID:     "card-1",
			Name:       "Ann",
			PublicSlug: "slug-1",
			ShareURL:   "https://cardfolio.app/public/cards/url/slug-1",
		}, nil)

	svc := newTestDraftService(local, serverAdapter, time.Hour)

	draft, err := svc.LoadForEdit(context.Background(), "card-1")
	require.NoError(t, err)
	assert.Equal(t, "https://cardfolio.app/public/cards/url/slug-1", draft.ShareURL)
}

func TestDraftService_LoadForEdit_ServerCopyReplacesStaleLocalDraft(t *testing.T) {
	ctrl := gomock.NewController(t)

	// a stale draft sits in local storage, but a successful fetch is
	// authoritative and must not be overridden by it
	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	local.EXPECT().Delete(gomock.Any()).Return(nil).AnyTimes()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().
		GetCard(gomock.Any(), "card-1").
		Return(models.Card{CardID: "card-1", Name: "Ann (fresh)"}, nil)

	svc := newTestDraftService(local, serverAdapter, time.Hour)

	draft, err := svc.LoadForEdit(context.Background(), "card-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann (fresh)", draft.Name)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "Ann (fresh)", current.Name)
}

func TestDraftService_LoadForEdit_OfflineFallsBackToLocalDraft(t *testing.T) {
	ctrl := gomock.NewController(t)

	localDraft := models.CardDraft{CardID: "card-1", Name: "Ann (offline)"}
	payload, err := json.Marshal(localDraft)
	require.NoError(t, err)

	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().Get(store.DraftKey).Return(payload, nil)
	local.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	local.EXPECT().Delete(gomock.Any()).Return(nil).AnyTimes()

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().
		GetCard(gomock.Any(), "card-1").
		Return(models.Card{}, errors.New("connection refused"))

	svc := newTestDraftService(local, serverAdapter, time.Hour)

	draft, err := svc.LoadForEdit(context.Background(), "card-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann (offline)", draft.Name)
}

func TestDraftService_LoadForEdit_OfflineWithoutMatchingDraftFails(t *testing.T) {
	ctrl := gomock.NewController(t)

	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().Get(store.DraftKey).Return(nil, store.ErrLocalKeyNotFound)

	transportErr := errors.New("connection refused")
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().
		GetCard(gomock.Any(), "card-1").
		Return(models.Card{}, transportErr)

	svc := newTestDraftService(local, serverAdapter, time.Hour)

	_, err := svc.LoadForEdit(context.Background(), "card-1")
	assert.ErrorIs(t, err, transportErr)
}

func TestDraftService_LoadForEdit_NotFoundDoesNotFallBack(t *testing.T) {
	ctrl := gomock.NewController(t)

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().
		GetCard(gomock.Any(), "missing").
		Return(models.Card{}, adapter.ErrNotFound)

	svc := newTestDraftService(mock.NewMockLocalStorage(ctrl), serverAdapter, time.Hour)

	_, err := svc.LoadForEdit(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestDraftService_Resume_RestoresPersistedDraft(t *testing.T) {
	ctrl := gomock.NewController(t)

	persisted := models.CardDraft{CardID: "card-1", Name: "Ann"}
	payload, err := json.Marshal(persisted)
	require.NoError(t, err)

	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().Get(store.DraftKey).Return(payload, nil)
	local.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	local.EXPECT().Delete(gomock.Any()).Return(nil).AnyTimes()

	svc := newTestDraftService(local, mock.NewMockServerAdapter(ctrl), time.Hour)

	draft, err := svc.Resume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", draft.Name)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, persisted.CardID, current.CardID)
}

func TestDraftService_Resume_NoPersistedDraft(t *testing.T) {
	ctrl := gomock.NewController(t)

	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().Get(store.DraftKey).Return(nil, store.ErrLocalKeyNotFound)

	svc := newTestDraftService(local, mock.NewMockServerAdapter(ctrl), time.Hour)

	_, err := svc.Resume(context.Background())
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestDraftService_Discard_RemovesDraftAndMarkers(t *testing.T) {
	ctrl := gomock.NewController(t)

	local := mock.NewMockLocalStorage(ctrl)
	local.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	local.EXPECT().Delete(store.DraftKey).Return(nil)
	local.EXPECT().Delete(store.EditingCardKey).Return(nil).MinTimes(1)
	local.EXPECT().Delete(store.CreatingNewKey).Return(nil).AnyTimes()

	svc := newTestDraftService(local, mock.NewMockServerAdapter(ctrl), time.Hour)
	svc.Update(models.CardDraft{CardID: "card-1", Name: "Ann"})

	require.NoError(t, svc.Discard())

	_, ok := svc.Current()
	assert.False(t, ok)
}
