package storage

import (
	"github.com/vovakirdan/quantum-jumper/internal/registry"
	"github.com/vovakirdan/quantum-jumper/internal/sim"
)

// ProfileStore binds a Store to one player profile so the simulation and
// game adapters can use it without knowing about profiles.
type ProfileStore struct {
	store   *Store
	profile string
}

var (
	_ sim.ProgressStore      = (*ProfileStore)(nil)
	_ registry.ClearRecorder = (*ProfileStore)(nil)
)

// ForProfile returns a view of the store scoped to profile.
// An empty name selects DefaultProfile.
func (s *Store) ForProfile(profile string) *ProfileStore {
	if profile == "" {
		profile = DefaultProfile
	}
	return &ProfileStore{store: s, profile: profile}
}

// Profile returns the profile name.
func (p *ProfileStore) Profile() string {
	return p.profile
}

// SaveProgress implements sim.ProgressStore.
func (p *ProfileStore) SaveProgress(mode sim.Mode, level int) error {
	return p.store.SaveProgress(p.profile, mode.String(), level)
}

// LoadProgress implements sim.ProgressStore.
func (p *ProfileStore) LoadProgress(mode sim.Mode) (int, bool, error) {
	return p.store.LoadProgress(p.profile, mode.String())
}

// SaveClear implements registry.ClearRecorder.
func (p *ProfileStore) SaveClear(mode string, level, shards int, simMS float64) error {
	_, err := p.store.SaveClear(p.profile, mode, level, shards, simMS)
	return err
}
