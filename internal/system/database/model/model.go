/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package model defines the data structures and interfaces for runtime database access.
package model

import "database/sql"

// DBInterface abstracts the sql.DB handle of a configured datasource so the
// database client can be tested against mocked connections.
type DBInterface interface {
	// Query runs a row-returning statement against the datasource.
	Query(query string, args ...any) (*sql.Rows, error)
	// Exec runs a statement that returns no rows.
	Exec(query string, args ...any) (sql.Result, error)
	// Begin opens a new transaction on the datasource.
	Begin() (*sql.Tx, error)
	// Close releases the underlying connection.
	Close() error
}

// DB adapts a *sql.DB to DBInterface.
type DB struct {
	conn *sql.DB
}

// NewDB wraps the given sql.DB handle.
func NewDB(db *sql.DB) DBInterface {
	return &DB{
		conn: db,
	}
}

// Query runs a row-returning statement against the datasource.
func (d *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return d.conn.Query(query, args...)
}

// Exec runs a statement that returns no rows.
func (d *DB) Exec(query string, args ...any) (sql.Result, error) {
	return d.conn.Exec(query, args...)
}

// Begin opens a new transaction on the datasource.
func (d *DB) Begin() (*sql.Tx, error) {
	return d.conn.Begin()
}

// Close releases the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// TxInterface abstracts an open transaction for multi-statement writes.
type TxInterface interface {
	// Commit makes the transaction's changes permanent.
	Commit() error
	// Rollback discards the transaction's changes.
	Rollback() error
	// Exec runs a statement inside the transaction.
	Exec(query string, args ...any) (sql.Result, error)
}

// Tx adapts a *sql.Tx to TxInterface.
type Tx struct {
	conn *sql.Tx
}

// NewTx wraps the given sql.Tx handle.
func NewTx(tx *sql.Tx) TxInterface {
	return &Tx{
		conn: tx,
	}
}

// Commit makes the transaction's changes permanent.
func (t *Tx) Commit() error {
	return t.conn.Commit()
}

// Rollback discards the transaction's changes.
func (t *Tx) Rollback() error {
	return t.conn.Rollback()
}

// Exec runs a statement inside the transaction.
func (t *Tx) Exec(query string, args ...any) (sql.Result, error) {
	return t.conn.Exec(query, args...)
}
