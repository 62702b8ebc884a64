// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"github.com/landlordos/property-service/internal/db"
	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/monitoring"
	"github.com/landlordos/property-service/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

// Storage implements every repository over a single database client.
// Child-entity queries join up the ownership chain to properties.user_id
// so a caller can never reach another user's records.
type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}
