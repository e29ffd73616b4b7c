package exportservice

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"confexport/pkg/config"
	"confexport/pkg/corpus"
	"confexport/pkg/domain"
	"confexport/pkg/export"
	"confexport/pkg/images"
	"confexport/pkg/parser"
	"confexport/pkg/schedule"
	"confexport/pkg/storage"
	"confexport/pkg/talks"
)

// Service runs the full export: parse the speaker corpus, aggregate talks,
// write the CSV/YAML artifacts, normalize image widths and sync the image
// directory to remote storage. Everything is sequential and fail-fast.
type Service struct {
	cfg *config.Config
	log *zap.Logger
}

// New creates the export service.
func New(cfg *config.Config, log *zap.Logger) *Service {
	return &Service{cfg: cfg, log: log}
}

// Run executes one complete export.
func (s *Service) Run(ctx context.Context) error {
	times, err := schedule.LoadTimes(s.cfg.Paths.BlockTimesFile)
	if err != nil {
		return err
	}
	sessions, err := schedule.LoadSessions(s.cfg.Paths.SessionsFile)
	if err != nil {
		return err
	}

	p := parser.New(parser.Config{
		ImagesDir:       s.cfg.Paths.ImagesDir,
		HeadshotBaseURL: s.cfg.Assets.HeadshotBaseURL,
		IconBaseURL:     s.cfg.Assets.IconBaseURL,
		PlaceholderBio:  s.cfg.Assets.PlaceholderBio,
	})
	records, err := corpus.Load(s.cfg.Paths.SpeakersDir, p)
	if err != nil {
		return err
	}
	s.log.Info("corpus loaded", zap.Int("speakers", len(records)))

	agg := talks.NewAggregator(sessions)
	groups, err := agg.Group(records)
	if err != nil {
		return err
	}
	s.log.Info("talks aggregated", zap.Int("talks", len(groups)))

	if err := s.writeArtifacts(records, groups, times, agg); err != nil {
		return err
	}

	if err := images.NormalizeWidths(s.cfg.Paths.ImagesDir, s.cfg.Assets.CanonicalImageWidth, s.log); err != nil {
		return err
	}

	return s.syncImages(ctx)
}

func (s *Service) writeArtifacts(records []*domain.SpeakerRecord, groups []domain.TalkGroup, times *schedule.Times, agg *talks.Aggregator) error {
	out := s.cfg.Paths.OutputDir
	if err := os.MkdirAll(out, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w", out, err)
	}

	if err := export.WriteSpeakerFiles(out, records); err != nil {
		return err
	}
	if err := export.WriteTalkLists(out, records); err != nil {
		return err
	}
	if err := export.WriteSpeakersCSV(filepath.Join(out, "export.csv"), records, times, agg); err != nil {
		return err
	}
	if err := export.WriteSessionsCSV(filepath.Join(out, "export_sessions.csv"), groups); err != nil {
		return err
	}

	bySession, err := agg.SpeakersBySession(records)
	if err != nil {
		return err
	}
	bySpeaker, err := agg.SessionBySpeaker(records)
	if err != nil {
		return err
	}
	if err := export.WriteLookups(out, bySession, bySpeaker); err != nil {
		return err
	}

	s.log.Info("artifacts written", zap.String("dir", out))
	return nil
}

// syncImages pushes the image directory to the storage bucket. Without
// credentials the sync is skipped; the local artifacts are complete either
// way.
func (s *Service) syncImages(ctx context.Context) error {
	storageCfg := storage.Config{
		SupabaseURL: s.cfg.Storage.SupabaseURL,
		SupabaseKey: s.cfg.Storage.SupabaseKey,
		Bucket:      s.cfg.Storage.Bucket,
	}
	if !storageCfg.Enabled() {
		s.log.Info("storage sync skipped: no supabase credentials configured")
		return nil
	}

	client := storage.NewClient(storageCfg)
	if err := client.Connect(); err != nil {
		return err
	}
	if err := client.SyncDir(ctx, s.cfg.Paths.ImagesDir, images.IsImage); err != nil {
		return err
	}
	s.log.Info("images synced", zap.String("bucket", storageCfg.Bucket))
	return nil
}
