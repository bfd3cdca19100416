// Package repository implements durable storage for profile documents.
// All profiles live in a single JSON file (`profiles.json`) inside the data
// directory, keyed by profile name. Every write first copies the current
// file to a timestamped backup; corrupt reads fall back to the newest
// parseable backup.
package repository

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"lavkapos/internal/apierror"
	"lavkapos/internal/model"

	"github.com/rs/zerolog/log"
)

const (
	profilesFileName = "profiles.json"
	backupDirName    = "backups"
	backupTimeLayout = "20060102_150405"
)

// ProfileRepository is the storage contract for profile documents. View and
// Update serialize access to the in-memory state; Update persists the whole
// profile map after fn succeeds, so a single write covers the combined
// effect of the mutation.
type ProfileRepository interface {
	Names() []string
	View(name string, fn func(doc *model.ProfileDocument) error) error
	Update(name string, fn func(doc *model.ProfileDocument) error) error
	Create(name string) error
	Delete(name string) error
	// Recovered reports whether the last load had to fall back to a backup.
	Recovered() bool
}

type fileProfileRepository struct {
	mu           sync.Mutex
	profilesFile string
	backupDir    string
	retention    time.Duration
	now          func() time.Time

	profiles  map[string]*model.ProfileDocument
	recovered bool
}

// NewProfileRepository opens (or initializes) the profile store under
// dataDir. Backups older than retentionDays are pruned on every save.
func NewProfileRepository(dataDir string, retentionDays int) (ProfileRepository, error) {
	r := &fileProfileRepository{
		profilesFile: filepath.Join(dataDir, profilesFileName),
		backupDir:    filepath.Join(dataDir, backupDirName),
		retention:    time.Duration(retentionDays) * 24 * time.Hour,
		now:          time.Now,
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, apierror.E(apierror.PersistenceFailure, "create data dir: %v", err)
	}
	if err := os.MkdirAll(r.backupDir, 0o755); err != nil {
		return nil, apierror.E(apierror.PersistenceFailure, "create backup dir: %v", err)
	}
	r.profiles = r.loadAll()
	return r, nil
}

func (r *fileProfileRepository) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// get returns the document for name, lazily creating and persisting an
// empty one for unseen names. Caller must hold r.mu.
func (r *fileProfileRepository) get(name string) (*model.ProfileDocument, error) {
	if doc, ok := r.profiles[name]; ok {
		return doc, nil
	}
	doc := model.NewProfileDocument()
	r.profiles[name] = doc
	if err := r.saveAll(); err != nil {
		delete(r.profiles, name)
		return nil, err
	}
	return doc, nil
}

func (r *fileProfileRepository) View(name string, fn func(doc *model.ProfileDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, err := r.get(name)
	if err != nil {
		return err
	}
	return fn(doc)
}

func (r *fileProfileRepository) Update(name string, fn func(doc *model.ProfileDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, err := r.get(name)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return r.saveAll()
}

func (r *fileProfileRepository) Create(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[name]; ok {
		return apierror.E(apierror.DuplicateName, "profile %q already exists", name)
	}
	_, err := r.get(name)
	return err
}

func (r *fileProfileRepository) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[name]; !ok {
		return apierror.E(apierror.NotFound, "profile %q not found", name)
	}
	delete(r.profiles, name)
	return r.saveAll()
}

func (r *fileProfileRepository) Recovered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recovered
}

// ── Load / save ──────────────────────────────────────────────────────────────

// loadAll reads the profile map from disk. A missing or empty file yields an
// empty map; unparseable JSON falls back to the newest backup that parses.
// Data loss is not fatal here: stale-but-valid data beats a hard failure,
// but the fallback is logged and flagged so callers can tell it happened.
func (r *fileProfileRepository) loadAll() map[string]*model.ProfileDocument {
	raw, err := os.ReadFile(r.profilesFile)
	if err != nil || len(strings.TrimSpace(string(raw))) == 0 {
		return map[string]*model.ProfileDocument{}
	}

	profiles, err := decodeProfiles(raw)
	if err == nil {
		return profiles
	}

	log.Warn().Err(err).Str("file", r.profilesFile).Msg("profile store corrupt, trying backups")
	for _, backup := range r.backupsNewestFirst() {
		raw, readErr := os.ReadFile(backup)
		if readErr != nil {
			continue
		}
		if profiles, decErr := decodeProfiles(raw); decErr == nil {
			log.Warn().Str("backup", backup).Msg("profile store recovered from backup")
			r.recovered = true
			return profiles
		}
	}
	log.Error().Str("file", r.profilesFile).Msg("no parseable backup found, starting empty")
	return map[string]*model.ProfileDocument{}
}

func decodeProfiles(raw []byte) (map[string]*model.ProfileDocument, error) {
	profiles := map[string]*model.ProfileDocument{}
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, err
	}
	for _, doc := range profiles {
		doc.Normalize()
	}
	return profiles, nil
}

// saveAll writes the whole profile map: backup current file, write new
// content, prune old backups. Write failures propagate — the in-memory and
// on-disk state have diverged and the caller must not assume the save stuck.
func (r *fileProfileRepository) saveAll() error {
	r.backupCurrent()

	f, err := os.Create(r.profilesFile)
	if err != nil {
		return apierror.E(apierror.PersistenceFailure, "write profile store: %v", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	// Keep the file human-readable: no \u escapes for non-ASCII names.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.profiles); err != nil {
		f.Close()
		return apierror.E(apierror.PersistenceFailure, "encode profile store: %v", err)
	}
	if err := f.Close(); err != nil {
		return apierror.E(apierror.PersistenceFailure, "write profile store: %v", err)
	}

	r.pruneBackups()
	return nil
}

// backupCurrent copies the existing store file to a timestamped .bak.
// Best effort: a failed backup never blocks the save itself.
func (r *fileProfileRepository) backupCurrent() {
	src, err := os.Open(r.profilesFile)
	if err != nil {
		return
	}
	defer src.Close()

	name := filepath.Base(r.profilesFile) + "." + r.now().Format(backupTimeLayout) + ".bak"
	dst, err := os.Create(filepath.Join(r.backupDir, name))
	if err != nil {
		log.Warn().Err(err).Msg("profile store backup failed")
		return
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		log.Warn().Err(err).Msg("profile store backup failed")
	}
}

// backupsNewestFirst lists backups of the store file, newest first. Backup
// names embed the timestamp, so lexical order is chronological.
func (r *fileProfileRepository) backupsNewestFirst() []string {
	entries, err := os.ReadDir(r.backupDir)
	if err != nil {
		return nil
	}
	prefix := filepath.Base(r.profilesFile) + "."
	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), prefix) && strings.HasSuffix(e.Name(), ".bak") {
			backups = append(backups, filepath.Join(r.backupDir, e.Name()))
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups
}

func (r *fileProfileRepository) pruneBackups() {
	entries, err := os.ReadDir(r.backupDir)
	if err != nil {
		return
	}
	cutoff := r.now().Add(-r.retention)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".bak") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(r.backupDir, e.Name()))
		}
	}
}
