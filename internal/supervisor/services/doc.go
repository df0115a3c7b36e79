// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

/*
Package services adapts Pathwise components to suture's Serve(ctx) error
lifecycle.

# Available Services

HTTPServerService wraps *http.Server. Serve binds the listener so bind
failures reach the supervisor, serves in a goroutine, and turns cancellation
into a graceful Shutdown bounded by the configured timeout.

MaintenanceService runs periodic housekeeping over any Maintainer: DuckDB
checkpoints, BadgerDB value log GC and eviction of expired recommendation
bundles. Task failures are logged and retried on the next tick.

# Usage

	tree.AddStorageService(services.NewMaintenanceService(tasks,
	    services.MaintenanceServiceConfig{Interval: 10 * time.Minute}, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

Every service implements fmt.Stringer so supervisor events name it.
*/
package services
