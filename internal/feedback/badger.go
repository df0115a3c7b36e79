// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/pathwise/internal/models"
)

// Key prefixes for BadgerDB storage. IDs are zero-padded so that key order is
// insertion order.
const (
	recommendationKeyPrefix = "rec:"
	ratingKeyPrefix         = "rating:"

	recommendationSeqKey = "seq:recommendation"
	ratingSeqKey         = "seq:rating"

	// seqBandwidth is how many IDs a sequence leases at a time.
	seqBandwidth = 100
)

// BadgerOptions configures OpenBadgerStore.
type BadgerOptions struct {
	Path     string
	InMemory bool
}

// BadgerStore implements Store on BadgerDB.
type BadgerStore struct {
	db        *badger.DB
	recSeq    *badger.Sequence
	ratingSeq *badger.Sequence
	now       func() time.Time
}

// OpenBadgerStore opens (or creates) a BadgerDB-backed store.
func OpenBadgerStore(opts BadgerOptions) (*BadgerStore, error) {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Path == "" {
			return nil, errors.New("badger path is required")
		}
		bopts = badger.DefaultOptions(opts.Path)
	}
	bopts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	recSeq, err := db.GetSequence([]byte(recommendationSeqKey), seqBandwidth)
	if err != nil {
		_ = db.Close() //nolint:errcheck // already returning the sequence error
		return nil, fmt.Errorf("recommendation sequence: %w", err)
	}
	ratingSeq, err := db.GetSequence([]byte(ratingSeqKey), seqBandwidth)
	if err != nil {
		_ = recSeq.Release() //nolint:errcheck // already returning the sequence error
		_ = db.Close()       //nolint:errcheck // already returning the sequence error
		return nil, fmt.Errorf("rating sequence: %w", err)
	}

	return &BadgerStore{db: db, recSeq: recSeq, ratingSeq: ratingSeq, now: time.Now}, nil
}

func recommendationKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", recommendationKeyPrefix, id))
}

func ratingKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", ratingKeyPrefix, id))
}

// nextID returns the next positive ID from seq.
func nextID(seq *badger.Sequence) (int64, error) {
	n, err := seq.Next()
	if err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}
	return int64(n) + 1, nil //nolint:gosec // sequences never approach MaxInt64
}

// SaveRecommendations implements Store.
func (s *BadgerStore) SaveRecommendations(ctx context.Context, recs []models.StoredRecommendation) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ids := make([]int64, len(recs))
	rows := make([]models.StoredRecommendation, len(recs))
	for i, rec := range recs {
		id, err := nextID(s.recSeq)
		if err != nil {
			return nil, err
		}
		rec.ID = id
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = s.now().UTC()
		}
		rows[i] = rec
		ids[i] = id
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		for i := range rows {
			data, err := json.Marshal(&rows[i])
			if err != nil {
				return fmt.Errorf("marshal recommendation: %w", err)
			}
			if err := txn.Set(recommendationKey(rows[i].ID), data); err != nil {
				return fmt.Errorf("set recommendation: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetRecommendation implements Store.
func (s *BadgerStore) GetRecommendation(ctx context.Context, id int64) (*models.StoredRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rec models.StoredRecommendation
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recommendationKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get recommendation: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateRating implements Store.
func (s *BadgerStore) CreateRating(ctx context.Context, req *models.RatingRequest) (*models.Rating, error) {
	if err := ValidateRating(req); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// IDs are leased outside the transaction; a rejected rating leaves a gap.
	id, err := nextID(s.ratingSeq)
	if err != nil {
		return nil, err
	}
	rating := models.Rating{
		ID:               id,
		RecommendationID: req.RecommendationID,
		Rating:           req.Rating,
		Comment:          req.Comment,
		CreatedAt:        s.now().UTC(),
	}
	data, err := json.Marshal(&rating)
	if err != nil {
		return nil, fmt.Errorf("marshal rating: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(recommendationKey(req.RecommendationID)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get recommendation: %w", err)
		}
		return txn.Set(ratingKey(id), data)
	})
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListRatings implements Store.
func (s *BadgerStore) ListRatings(ctx context.Context) ([]models.Rating, error) {
	ratings := []models.Rating{}
	err := s.scanRatings(ctx, func(r models.Rating) {
		ratings = append(ratings, r)
	})
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// RatingSummary implements Store.
func (s *BadgerStore) RatingSummary(ctx context.Context) (*models.RatingSummary, error) {
	summary := models.NewRatingSummary()
	err := s.scanRatings(ctx, func(r models.Rating) {
		summary.Add(r.Rating)
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *BadgerStore) scanRatings(ctx context.Context, fn func(models.Rating)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ratingKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var r models.Rating
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return fmt.Errorf("decode rating: %w", err)
			}
			fn(r)
		}
		return nil
	})
}

// Ping implements Store.
func (s *BadgerStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return ErrUnavailable
	}
	return nil
}

// gcDiscardRatio is the minimum reclaimable fraction for a value log file to
// be rewritten.
const gcDiscardRatio = 0.5

// Maintain runs value log GC until there is nothing left to rewrite.
func (s *BadgerStore) Maintain(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// Close releases the sequences and closes the database.
func (s *BadgerStore) Close() error {
	return errors.Join(s.recSeq.Release(), s.ratingSeq.Release(), s.db.Close())
}
