// Package database handles database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration. An
// in-memory sqlite driver is available for tests.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. It is
// agnostic to the schema; features own their models and migrations.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
