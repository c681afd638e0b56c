package ratecard

import (
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"paint-quote/core/types"
	"paint-quote/internal/errors"
	"paint-quote/internal/logging"
)

// DefaultCacheSize is used when NewStore is given a non-positive size
const DefaultCacheSize = 128

// Store serves per-company rate cards from a directory of
// <companyId>.hcl or <companyId>.json files. Loaded cards are cached.
// Safe for concurrent use.
type Store struct {
	dir   string
	cache *lru.Cache[string, *types.RateCard]
	log   *zap.Logger
}

// NewStore creates a store rooted at dir
func NewStore(dir string, cacheSize int) (*Store, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *types.RateCard](cacheSize)
	if err != nil {
		return nil, errors.Internal("failed to create rate card cache", err)
	}
	return &Store{
		dir:   dir,
		cache: cache,
		log:   logging.Named("ratecard"),
	}, nil
}

// Get returns the rate card for companyID. A company without a file
// yields a TypeNotFound error.
func (s *Store) Get(companyID string) (*types.RateCard, error) {
	if err := checkCompanyID(companyID); err != nil {
		return nil, err
	}
	if rc, ok := s.cache.Get(companyID); ok {
		return rc, nil
	}

	for _, ext := range []string{".hcl", ".json"} {
		path := filepath.Join(s.dir, companyID+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		rc, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if rc.CompanyID == "" {
			rc.CompanyID = companyID
		}
		s.cache.Add(companyID, rc)
		s.log.Debug("rate card loaded", zap.String("company_id", companyID), zap.String("path", path))
		return rc, nil
	}
	return nil, errors.NotFound("rate card", companyID)
}

// GetOrDefault returns the company's rate card, or Default when the
// company has none
func (s *Store) GetOrDefault(companyID string) (*types.RateCard, error) {
	rc, err := s.Get(companyID)
	if errors.IsType(err, errors.TypeNotFound) {
		s.log.Debug("using default rate card", zap.String("company_id", companyID))
		return Default(), nil
	}
	return rc, err
}

// Put writes rc as HCL under the store directory and caches it
func (s *Store) Put(rc *types.RateCard) error {
	if rc == nil {
		return errors.Validation("rate card is required")
	}
	if err := checkCompanyID(rc.CompanyID); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.Config("failed to create rate card directory", err)
	}
	path := filepath.Join(s.dir, rc.CompanyID+".hcl")
	if err := os.WriteFile(path, EncodeHCL(rc), 0644); err != nil {
		return errors.Config("failed to write rate card", err)
	}
	s.cache.Add(rc.CompanyID, rc)
	return nil
}

// Invalidate drops a cached card so the next Get rereads the file
func (s *Store) Invalidate(companyID string) {
	s.cache.Remove(companyID)
}

// Len returns the number of cached cards
func (s *Store) Len() int {
	return s.cache.Len()
}

func checkCompanyID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.HasPrefix(id, ".") {
		return errors.Newf(errors.TypeValidation, "invalid company id %q", id)
	}
	return nil
}
