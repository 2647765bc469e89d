// Package service contains the ingestion pipeline: decode, resolve
// against existing records, persist, render, and media handling.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"newswire_listener/internal/category"
	"newswire_listener/internal/config"
	"newswire_listener/internal/domain"
	"newswire_listener/internal/payload"
	"newswire_listener/internal/render"
)

// ErrMissingFields means a decoded payload lacked a title or body
// parts. Surfaced to the gateway before any store mutation.
var ErrMissingFields = errors.New("payload missing title or body")

type IngestService struct {
	records   RecordStore
	assets    AssetFinder
	media     MediaImporter
	renderer  Renderer
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	cfg       config.IngestConfig
	locks     *keyMutex
	now       func() time.Time
}

func NewIngestService(
	records RecordStore,
	assets AssetFinder,
	media MediaImporter,
	renderer Renderer,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.IngestConfig,
) *IngestService {
	return &IngestService{
		records:   records,
		assets:    assets,
		media:     media,
		renderer:  renderer,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		locks:     newKeyMutex(),
		now:       time.Now,
	}
}

// Ingest runs one raw push body through the pipeline. The returned
// error carries the rejection reason: payload.ErrEmpty/ErrMalformed and
// ErrMissingFields before any mutation, or a store error after the
// point of failure. Media failures never surface here.
func (s *IngestService) Ingest(ctx context.Context, raw []byte, cat category.Context) (*domain.IngestResult, error) {
	p, snapshot, err := payload.Decode(raw)
	if err != nil {
		return nil, err
	}

	if p.Title() == "" || len(p.BodyParts()) == 0 {
		s.logger.Warn("rejected payload with missing fields",
			"category", string(cat.Name),
			"payload", string(snapshot),
		)
		return nil, ErrMissingFields
	}

	log := s.logger.With("category", string(cat.Name), "reference_id", p.ReferenceID())

	// Serialize on the reference id so a duplicate provider retry
	// cannot race this push into a second record.
	if ref := p.ReferenceID(); ref != "" {
		unlock := s.locks.Lock(ref)
		defer unlock()
	}

	existingID, err := s.resolve(ctx, p)
	if err != nil {
		return nil, err
	}

	var (
		recordID int64
		action   domain.IngestAction
	)
	if existingID == 0 {
		recordID, err = s.createRecord(ctx, p, cat, snapshot)
		action = domain.ActionCreated
	} else {
		recordID, err = s.updateRecord(ctx, existingID, p, cat, snapshot)
		action = domain.ActionUpdated
	}
	if err != nil {
		return nil, err
	}

	content := s.renderer.Render(ctx, p.BodyParts(), cat, p, recordID)
	if err := s.records.SetBody(ctx, recordID, content); err != nil {
		return nil, fmt.Errorf("persist content: %w", err)
	}

	// Everything past this point is best-effort: the record is already
	// persisted and a media failure must not fail the request.
	s.handleImages(ctx, p, cat, recordID, log)
	s.assignFeaturedFromContent(ctx, recordID, content, log)

	result := &domain.IngestResult{
		Action:      action,
		RecordID:    recordID,
		ReferenceID: p.ReferenceID(),
		Category:    string(cat.Name),
		Title:       p.Title(),
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, result); err != nil {
			log.Error("failed to publish ingest event", "error", err)
		}
	}

	log.Info("ingest completed",
		"action", string(action),
		"record_id", recordID,
	)

	return result, nil
}

// resolve finds the existing record for the payload's reference id.
// An absent id always means a new record.
func (s *IngestService) resolve(ctx context.Context, p *domain.Payload) (int64, error) {
	ref := p.ReferenceID()
	if ref == "" {
		return 0, nil
	}

	id, err := s.records.FindIDByMeta(ctx, domain.MetaReferenceID, ref)
	if err != nil {
		return 0, fmt.Errorf("resolve reference id: %w", err)
	}
	return id, nil
}

func (s *IngestService) createRecord(ctx context.Context, p *domain.Payload, cat category.Context, snapshot []byte) (int64, error) {
	now := s.now()

	publishedAt := now
	// Guard against provider clock skew scheduling posts in the future.
	if first, ok := p.Sent.FirstSent(); ok && !first.After(now) {
		publishedAt = first
	}

	rec := &domain.Record{
		Title:       p.Title(),
		Excerpt:     p.Summary(),
		Author:      s.cfg.AuthorName,
		Status:      s.cfg.DefaultStatus,
		PublishedAt: publishedAt,
		ModifiedAt:  publishedAt,
	}

	var recordID int64
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.records.Create(txCtx, rec)
		if err != nil {
			return fmt.Errorf("create record: %w", err)
		}
		recordID = id

		if err := s.persistMeta(txCtx, id, p, cat, snapshot); err != nil {
			return err
		}

		// Category taxonomy runs only on the create path so manual
		// edits made after import survive re-pushes.
		for _, t := range cat.Terms(p) {
			if err := s.records.SetTaxonomy(txCtx, id, t.Taxonomy, []string{t.Term}, t.Append); err != nil {
				return fmt.Errorf("set taxonomy: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return recordID, nil
}

func (s *IngestService) updateRecord(ctx context.Context, id int64, p *domain.Payload, cat category.Context, snapshot []byte) (int64, error) {
	now := s.now()

	modifiedAt := now
	if latest, ok := p.Sent.LatestSent(); ok && !latest.After(now) {
		modifiedAt = latest
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.records.Update(txCtx, id, p.Title(), p.Summary(), modifiedAt); err != nil {
			return fmt.Errorf("update record: %w", err)
		}
		return s.persistMeta(txCtx, id, p, cat, snapshot)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// persistMeta stores the durable metadata kept on both paths: the
// reference id for future matching, the category for batch replay, and
// the raw decoded payload for audit and reprocessing.
func (s *IngestService) persistMeta(ctx context.Context, id int64, p *domain.Payload, cat category.Context, snapshot []byte) error {
	if ref := p.ReferenceID(); ref != "" {
		if err := s.records.SetMeta(ctx, id, domain.MetaReferenceID, ref); err != nil {
			return fmt.Errorf("set reference id: %w", err)
		}
	}
	if err := s.records.SetMeta(ctx, id, domain.MetaCategory, string(cat.Name)); err != nil {
		return fmt.Errorf("set category: %w", err)
	}
	if err := s.records.SetMeta(ctx, id, domain.MetaRawBody, string(snapshot)); err != nil {
		return fmt.Errorf("set raw body: %w", err)
	}
	return nil
}

// handleImages imports the category's image URLs. The first imported
// asset becomes the representative image, the rest go to the gallery.
func (s *IngestService) handleImages(ctx context.Context, p *domain.Payload, cat category.Context, recordID int64, log *slog.Logger) {
	if cat.ImageURLs == nil {
		return
	}

	var assetIDs []int64
	for _, u := range cat.ImageURLs(p) {
		asset, err := s.media.Resolve(ctx, u, recordID)
		if err != nil {
			log.Warn("skipping image import", "source_url", u, "error", err)
			continue
		}
		assetIDs = append(assetIDs, asset.ID)
	}
	if len(assetIDs) == 0 {
		return
	}

	if err := s.records.SetFeaturedImage(ctx, recordID, assetIDs[0]); err != nil {
		log.Error("failed to set representative image", "error", err)
	}
	if len(assetIDs) > 1 {
		if err := s.records.AppendGallery(ctx, recordID, assetIDs[1:]); err != nil {
			log.Error("failed to append gallery", "error", err)
		}
	}
}

// assignFeaturedFromContent falls back to the first image element in
// the rendered content when explicit media handling assigned nothing.
// It never overrides an already-assigned representative image.
func (s *IngestService) assignFeaturedFromContent(ctx context.Context, recordID int64, content string, log *slog.Logger) {
	current, err := s.records.FeaturedImage(ctx, recordID)
	if err != nil {
		log.Error("failed to read representative image", "error", err)
		return
	}
	if current != 0 {
		return
	}

	src, ok := render.FirstImageSource(content)
	if !ok {
		return
	}

	asset, err := s.assets.FindByPublicURL(ctx, src)
	if err != nil || asset == nil {
		return
	}

	if err := s.records.SetFeaturedImage(ctx, recordID, asset.ID); err != nil {
		log.Error("failed to set representative image from content", "error", err)
	}
}
