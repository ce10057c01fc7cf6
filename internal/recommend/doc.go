// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

// Package recommend folds a session's accumulated preference signals into
// filter criteria and turns them into a ranked movie list.
//
// The package has no dependency on the database package. The DataProvider
// interface lets the storage layer plug in without creating circular imports;
// internal/database provides the production implementation.
//
// Determinism: for a fixed catalog and signal history the engine returns
// identical ordered output on every call. Ranking is rating descending with
// catalog id ascending as the secondary key.
package recommend
