// Command replay re-runs the ingestion pipeline over the raw-body
// snapshots of already-stored records. It also backfills missing
// reference-id metadata for records imported before the canonical key
// was settled.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"newswire_listener/internal/category"
	"newswire_listener/internal/config"
	"newswire_listener/internal/domain"
	"newswire_listener/internal/media"
	"newswire_listener/internal/payload"
	"newswire_listener/internal/render"
	"newswire_listener/internal/service"
	"newswire_listener/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	limit := flag.Int("limit", 100, "records per run")
	offset := flag.Int("offset", 0, "records to skip")
	idList := flag.String("ids", "", "comma-separated record ids (overrides limit/offset)")
	backfillOnly := flag.Bool("backfill-ids", false, "only backfill reference_id meta, no re-ingest")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	recordStore := postgres.NewRecordStore(db)
	assetStore := postgres.NewAssetStore(db, cfg.Media.StorageDir, cfg.Media.PublicBaseURL)
	txManager := postgres.NewTransactionManager(db)
	importer := media.NewImporter(assetStore, cfg.Media.DownloadTimeout, logger)
	renderer := render.New(importer, render.GutenbergConverter{}, cfg.Media.LocalHosts(), logger)

	svc := service.NewIngestService(
		recordStore,
		assetStore,
		importer,
		renderer,
		txManager,
		nil,
		logger,
		cfg.Ingest,
	)

	ctx := context.Background()

	ids, err := recordStore.ListIDs(ctx, *limit, *offset, parseIDs(*idList))
	if err != nil {
		logger.Error("failed to list records", "error", err)
		os.Exit(1)
	}

	var replayed, backfilled, skipped, failed int
	for _, id := range ids {
		raw, err := recordStore.GetMeta(ctx, id, domain.MetaRawBody)
		if err != nil {
			logger.Error("failed to read snapshot", "record_id", id, "error", err)
			failed++
			continue
		}
		if raw == "" {
			logger.Info("skipped, no snapshot", "record_id", id)
			skipped++
			continue
		}

		p, _, err := payload.Decode([]byte(raw))
		if err != nil {
			logger.Warn("skipped, snapshot failed decoding", "record_id", id, "error", err)
			skipped++
			continue
		}

		if ref := p.ReferenceID(); ref != "" {
			stored, err := recordStore.GetMeta(ctx, id, domain.MetaReferenceID)
			if err == nil && stored == "" {
				if err := recordStore.SetMeta(ctx, id, domain.MetaReferenceID, ref); err != nil {
					logger.Error("failed to backfill reference id", "record_id", id, "error", err)
				} else {
					backfilled++
				}
			}
		}

		if *backfillOnly {
			continue
		}

		catName, err := recordStore.GetMeta(ctx, id, domain.MetaCategory)
		if err != nil {
			logger.Error("failed to read category", "record_id", id, "error", err)
			failed++
			continue
		}
		cat, ok := category.ByName(category.Name(catName))
		if !ok {
			logger.Info("skipped, unknown category", "record_id", id, "category", catName)
			skipped++
			continue
		}

		result, err := svc.Ingest(ctx, []byte(raw), cat)
		if err != nil {
			logger.Error("replay failed", "record_id", id, "error", err)
			failed++
			continue
		}

		logger.Info("replayed record",
			"record_id", result.RecordID,
			"action", string(result.Action),
		)
		replayed++
	}

	logger.Info("replay done",
		"records", len(ids),
		"replayed", replayed,
		"backfilled", backfilled,
		"skipped", skipped,
		"failed", failed,
	)
}

func parseIDs(list string) []int64 {
	if list == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(list, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
