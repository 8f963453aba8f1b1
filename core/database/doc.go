// Package database provides the catalog database connection.
//
// It wraps GORM connection setup for the supported drivers (MySQL in
// production, sqlite for local runs and tests), with pool settings and a
// ping with timeout so a misconfigured database fails fast at startup
// instead of on the first query.
package database
