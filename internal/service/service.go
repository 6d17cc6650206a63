// Package service bundles the storage-backed task store and preferences
// that commands operate on.
package service

import (
	"github.com/sirupsen/logrus"

	"tasklist/internal/backend/kv"
	"tasklist/internal/repository"
	"tasklist/internal/store"
)

// Service is one session over a kv.Storage.
// Commands never import a storage backend directly.
type Service struct {
	// Tasks is the session's task store. It starts empty; callers Load it.
	Tasks *store.Store

	// Prefs holds the display preference.
	Prefs *repository.Preferences

	storage kv.Storage
}

// New wires a Service over storage, persisting tasks under key.
func New(storage kv.Storage, key string, log logrus.FieldLogger, opts ...store.Option) *Service {
	repo := repository.NewTasks(storage, key)
	opts = append([]store.Option{store.WithLogger(log.WithField("key", repo.Key()))}, opts...)
	return &Service{
		Tasks:   store.New(repo, opts...),
		Prefs:   repository.NewPreferences(storage),
		storage: storage,
	}
}

// Close releases the underlying storage.
func (s *Service) Close() error {
	return s.storage.Close()
}
