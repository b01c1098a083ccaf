// Package backup periodically snapshots the persisted booking blob to
// local JSON files so the salon owner can recover from a lost or wiped
// key-value store.
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"salonbook/internal/config"
	"salonbook/internal/kv"
	"salonbook/internal/store"
)

type Service struct {
	kv     kv.Store
	cfg    *config.Config
	logger *zerolog.Logger
}

func NewService(backend kv.Store, cfg *config.Config, logger *zerolog.Logger) *Service {
	return &Service{kv: backend, cfg: cfg, logger: logger}
}

// Start runs the snapshot loop until the context is cancelled. The
// first snapshot is taken immediately.
func (s *Service) Start(ctx context.Context) {
	if !s.cfg.Backup.Enabled {
		s.logger.Info().Msg("Backup service is disabled")
		return
	}

	s.logger.Info().
		Dur("interval", s.cfg.BackupInterval()).
		Str("path", s.cfg.BackupPath()).
		Msg("Backup service started")

	ticker := time.NewTicker(s.cfg.BackupInterval())
	defer ticker.Stop()

	if err := s.Snapshot(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Initial backup failed")
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Snapshot(ctx); err != nil {
				s.logger.Error().Err(err).Msg("Scheduled backup failed")
			}
			s.CleanupOldSnapshots()
		}
	}
}

// Snapshot writes the current blob to a timestamped file. A store
// that has never been written is snapshotted as an empty list.
func (s *Service) Snapshot(ctx context.Context) error {
	blob, err := s.kv.Get(ctx, store.BookingsKey)
	if errors.Is(err, kv.ErrNotFound) {
		blob = "[]"
	} else if err != nil {
		return fmt.Errorf("read bookings blob: %w", err)
	}

	dir := s.cfg.BackupPath()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bookings_%s.json", timestamp))

	s.logger.Info().Str("path", path).Msg("Writing bookings snapshot")
	if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
		return err
	}

	s.logger.Info().Msg("Backup completed successfully")
	return nil
}

// CleanupOldSnapshots removes snapshots older than the retention
// window.
func (s *Service) CleanupOldSnapshots() {
	if s.cfg.Backup.RetentionDays <= 0 {
		return
	}

	dir := s.cfg.BackupPath()
	files, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read backup directory for cleanup")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -s.cfg.Backup.RetentionDays)

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			s.logger.Info().Str("file", file.Name()).Msg("Deleting old snapshot")
			os.Remove(filepath.Join(dir, file.Name()))
		}
	}
}
