// Package postgres provides PostgreSQL implementations of the store
// interfaces, including mapping of database errors to store errors.
package postgres
