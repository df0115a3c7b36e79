// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

// Package cache provides the in-process result cache used by the
// recommendation engine.
//
// LRU is generic over the cached value and bounds both size and age:
//
//	results := cache.NewLRU[*recommend.Bundle](1024, 10*time.Minute)
//	key := cache.GenerateKey("recommend", input)
//	if b, ok := results.Get(key); ok {
//	    return b, nil
//	}
//
// All methods are safe for concurrent use.
package cache
