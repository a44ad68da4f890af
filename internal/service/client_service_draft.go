package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cardfolio/cardfolio/internal/adapter"
	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/store"
	"github.com/cardfolio/cardfolio/models"
)

const defaultDraftDebounce = 800 * time.Millisecond

type draftService struct {
	local   store.LocalStorage
	adapter adapter.ServerAdapter
	images  ImageService

	debounce     time.Duration
	shareBaseURL string

	mu       sync.Mutex
	draft    models.CardDraft
	hasDraft bool
	timer    *time.Timer

	subMu   sync.Mutex
	subs    map[int]func(models.CardDraft)
	nextSub int

	logger *logger.Logger
}

// NewDraftService builds the working-draft manager. Edits are kept in memory
// and flushed to local storage after cfg.DraftDebounce of quiet; oversized
// inline images are recompressed by images before each write, and the server
// is only contacted on LoadForEdit and Save.
func NewDraftService(local store.LocalStorage, serverAdapter adapter.ServerAdapter, images ImageService, cfg config.Client, logger *logger.Logger) DraftService {
	debounce := cfg.DraftDebounce
	if debounce <= 0 {
		debounce = defaultDraftDebounce
	}

	return &draftService{
		local:        local,
		adapter:      serverAdapter,
		images:       images,
		debounce:     debounce,
		shareBaseURL: cfg.ServerURL,
		subs:         make(map[int]func(models.CardDraft)),
		logger:       logger,
	}
}

func (d *draftService) Current() (models.CardDraft, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft, d.hasDraft
}

func (d *draftService) Update(draft models.CardDraft) {
	d.mu.Lock()
	d.draft = draft
	d.hasDraft = true
	d.armDebounceLocked()
	d.mu.Unlock()

	d.notify(draft)
}

// armDebounceLocked (re)starts the persist timer. A burst of edits collapses
// into a single local write issued after the quiet period.
func (d *draftService) armDebounceLocked() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.debounce, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.persistLocked()
	})
}

func (d *draftService) Subscribe(fn func(models.CardDraft)) func() {
	d.subMu.Lock()
	defer d.subMu.Unlock()

	id := d.nextSub
	d.nextSub++
	d.subs[id] = fn

	return func() {
		d.subMu.Lock()
		defer d.subMu.Unlock()
		delete(d.subs, id)
	}
}

func (d *draftService) notify(draft models.CardDraft) {
	d.subMu.Lock()
	subs := make([]func(models.CardDraft), 0, len(d.subs))
	for _, fn := range d.subs {
		subs = append(subs, fn)
	}
	d.subMu.Unlock()

	for _, fn := range subs {
		fn(draft)
	}
}

func (d *draftService) StartNew() {
	draft := models.CardDraft{ShowSaveContact: true}

	d.mu.Lock()
	d.draft = draft
	d.hasDraft = true
	d.persistLocked()
	d.mu.Unlock()

	d.notify(draft)
}

func (d *draftService) LoadForEdit(ctx context.Context, cardID string) (models.CardDraft, error) {
	card, err := d.adapter.GetCard(ctx, cardID)
	if err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, store.ErrCardNotFound) || errors.Is(mapped, ErrTokenIsExpiredOrInvalid) {
			return models.CardDraft{}, mapped
		}

		// Server unreachable: resume a matching locally persisted draft so
		// offline editing can continue.
		d.logger.Warn().Err(err).Str("card_id", cardID).Msg("server unavailable, trying local draft")
		local, localErr := d.loadPersistedDraft()
		if localErr != nil || local.CardID != cardID {
			return models.CardDraft{}, mapped
		}
		d.adopt(local)
		return local, nil
	}

	// The server copy is authoritative once the fetch succeeds; whatever
	// was cached locally is replaced by the fresh record.
	var draft models.CardDraft
	draft.FromCard(card, d.shareBaseURL)

	d.adopt(draft)
	return draft, nil
}

func (d *draftService) Resume(ctx context.Context) (models.CardDraft, error) {
	draft, err := d.loadPersistedDraft()
	if err != nil {
		return models.CardDraft{}, err
	}

	d.adopt(draft)
	return draft, nil
}

func (d *draftService) adopt(draft models.CardDraft) {
	d.mu.Lock()
	d.draft = draft
	d.hasDraft = true
	d.persistLocked()
	d.mu.Unlock()

	d.notify(draft)
}

func (d *draftService) loadPersistedDraft() (models.CardDraft, error) {
	raw, err := d.local.Get(store.DraftKey)
	if err != nil {
		return models.CardDraft{}, ErrNoDraft
	}

	var draft models.CardDraft
	if err = json.Unmarshal(raw, &draft); err != nil {
		return models.CardDraft{}, fmt.Errorf("decode persisted draft: %w", err)
	}

	return draft, nil
}

func (d *draftService) Save(ctx context.Context) (models.Card, error) {
	d.mu.Lock()
	if !d.hasDraft {
		d.mu.Unlock()
		return models.Card{}, ErrNoDraft
	}
	draft := d.draft
	d.mu.Unlock()

	var (
		card models.Card
		err  error
	)
	if draft.CardID == "" {
		card, err = d.adapter.CreateCard(ctx, draft.ToCard())
	} else {
		card, err = d.adapter.UpdateCard(ctx, draft.CardID, draft.ToUpdate())
	}
	if err != nil {
		return models.Card{}, mapAdapterError(err)
	}

	// Rebuild the draft from the authoritative record: the server assigns
	// the ID and slug on create and normalises fields on update.
	var saved models.CardDraft
	saved.FromCard(card, d.shareBaseURL)
	saved.ShowSaveContact = draft.ShowSaveContact

	d.mu.Lock()
	d.draft = saved
	d.hasDraft = true
	d.persistLocked()
	d.mu.Unlock()

	d.notify(saved)
	d.logger.Debug().Str("card_id", card.CardID).Msg("draft saved to server")

	return card, nil
}

func (d *draftService) Discard() error {
	d.mu.Lock()
	d.draft = models.CardDraft{}
	d.hasDraft = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if err := d.local.Delete(store.DraftKey); err != nil {
		return err
	}
	if err := d.local.Delete(store.EditingCardKey); err != nil {
		return err
	}
	return d.local.Delete(store.CreatingNewKey)
}

func (d *draftService) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if !d.hasDraft {
		return nil
	}

	d.persistLocked()
	return d.local.Flush()
}

// persistLocked writes the draft and the editing markers to local storage.
// Inline images above the byte ceiling are recompressed first; on quota
// pushback the payload degrades:
//  1. the draft with oversized images recompressed (or dropped when they
//     cannot fit the ceiling);
//  2. the draft with inline images stripped entirely;
//  3. non-essential entries cleared, then a minimal field subset.
//
// The in-memory draft is never modified. Caller must hold d.mu.
func (d *draftService) persistLocked() {
	if !d.hasDraft {
		return
	}

	d.persistMarkersLocked()

	if d.tryPersist(d.fitImages(d.draft)) {
		return
	}

	d.logger.Warn().Msg("draft over local quota, stripping inline images")
	if d.tryPersist(d.draft.StripImages()) {
		return
	}

	if reclaimed, err := d.local.ClearNonEssential(); err == nil {
		d.logger.Warn().Int64("reclaimed", reclaimed).Msg("cleared non-essential local storage entries")
	}
	if d.tryPersist(d.draft.Minimal()) {
		return
	}

	d.logger.Error().Msg("unable to persist draft within local storage quota")
}

// fitImages returns a copy of the draft whose embedded images fit the byte
// ceiling, recompressing oversized ones and dropping only those the image
// service cannot shrink. Non-embedded image references pass through.
func (d *draftService) fitImages(draft models.CardDraft) models.CardDraft {
	draft.ProfileImage = d.fitImage(draft.ProfileImage)

	sections := make([]models.FeatureSection, len(draft.FeatureSections))
	for i, s := range draft.FeatureSections {
		s.Image = d.fitImage(s.Image)
		sections[i] = s
	}
	draft.FeatureSections = sections

	return draft
}

func (d *draftService) fitImage(image string) string {
	if !strings.HasPrefix(image, "data:image/") {
		return image
	}

	fitted, err := d.images.ShrinkEmbedded(image)
	if err != nil {
		d.logger.Warn().Err(err).Msg("inline image cannot fit the byte ceiling, dropping it")
		return ""
	}
	return fitted
}

func (d *draftService) tryPersist(draft models.CardDraft) bool {
	payload, err := json.Marshal(draft)
	if err != nil {
		d.logger.Err(err).Msg("encode draft for local persistence")
		return false
	}

	err = d.local.Set(store.DraftKey, payload)
	if err == nil {
		return true
	}
	if !errors.Is(err, store.ErrLocalQuotaExceeded) {
		d.logger.Err(err).Msg("persist draft to local storage")
	}
	return false
}

func (d *draftService) persistMarkersLocked() {
	if d.draft.CardID != "" {
		_ = d.local.Set(store.EditingCardKey, []byte(strconv.Quote(d.draft.CardID)))
		_ = d.local.Delete(store.CreatingNewKey)
		return
	}

	_ = d.local.Set(store.CreatingNewKey, []byte("true"))
	_ = d.local.Delete(store.EditingCardKey)
}
