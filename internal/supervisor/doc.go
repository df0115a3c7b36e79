// Pathwise - Course and Career Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pathwise

/*
Package supervisor runs Pathwise's long-lived services under a suture v4
tree.

	pathwise
	├── storage-layer
	│   └── MaintenanceService (DuckDB checkpoint, Badger GC, cache eviction)
	└── api-layer
	    └── HTTPServerService

Crashed services restart with suture's backoff; each layer keeps its own
failure count. Supervisor events are logged through log/slog via sutureslog,
which main wires to zerolog with logging.NewSlogHandler.

# Usage

	logger := slog.New(logging.NewSlogHandler())
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.TreeConfigFrom(&cfg.Supervisor))
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

After Serve returns, UnstoppedServiceReport names any service that did not
stop within ShutdownTimeout.
*/
package supervisor
