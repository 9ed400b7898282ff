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

// Package seeder provides runtime database schema creation and sample data seeding.
package seeder

import (
	"github.com/asgardeo/flowkit/internal/system/database/client"
	"github.com/asgardeo/flowkit/internal/system/database/model"
	"github.com/asgardeo/flowkit/internal/system/log"
)

const loggerComponentName = "DBSeeder"

// SeederInterface defines the interface for database schema and data seeding.
type SeederInterface interface {
	EnsureSchema() error
	SeedInitialData() error
}

// DBSeeder implements SeederInterface for the runtime database.
type DBSeeder struct {
	dbClient client.DBClientInterface
}

// NewDBSeeder creates a new instance of DBSeeder.
func NewDBSeeder(dbClient client.DBClientInterface) SeederInterface {
	return &DBSeeder{
		dbClient: dbClient,
	}
}

// EnsureSchema creates the runtime tables and indexes if they do not exist.
func (s *DBSeeder) EnsureSchema() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createTable := model.DBQuery{
		ID: "SEED_CREATE_INSTANCE_DOCUMENT",
		SQLiteQuery: "CREATE TABLE IF NOT EXISTS INSTANCE_DOCUMENT (" +
			"INSTANCE_ID TEXT PRIMARY KEY, STATUS TEXT NOT NULL, DOCUMENT TEXT NOT NULL, " +
			"CREATED_AT TIMESTAMP DEFAULT CURRENT_TIMESTAMP, UPDATED_AT TIMESTAMP DEFAULT CURRENT_TIMESTAMP)",
		PostgresQuery: "CREATE TABLE IF NOT EXISTS INSTANCE_DOCUMENT (" +
			"INSTANCE_ID VARCHAR(36) PRIMARY KEY, STATUS VARCHAR(16) NOT NULL, DOCUMENT JSONB NOT NULL, " +
			"CREATED_AT TIMESTAMP DEFAULT CURRENT_TIMESTAMP, UPDATED_AT TIMESTAMP DEFAULT CURRENT_TIMESTAMP)",
	}
	if _, err := s.dbClient.Execute(createTable); err != nil {
		logger.Error("Failed to create INSTANCE_DOCUMENT table", log.Error(err))
		return err
	}

	createIndex := model.DBQuery{
		ID:    "SEED_CREATE_INSTANCE_DOCUMENT_STATUS_IDX",
		Query: "CREATE INDEX IF NOT EXISTS IDX_INSTANCE_DOCUMENT_STATUS ON INSTANCE_DOCUMENT (STATUS)",
	}
	if _, err := s.dbClient.Execute(createIndex); err != nil {
		logger.Error("Failed to create INSTANCE_DOCUMENT index", log.Error(err))
		return err
	}

	logger.Debug("Runtime schema is in place")
	return nil
}

// SeedInitialData inserts the sample workflow instances. Existing rows with
// the same identifiers are left untouched.
func (s *DBSeeder) SeedInitialData() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	query := model.DBQuery{
		ID: "SEED_INSERT_INSTANCE_DOCUMENT",
		SQLiteQuery: "INSERT OR IGNORE INTO INSTANCE_DOCUMENT (INSTANCE_ID, STATUS, DOCUMENT) " +
			"VALUES (?, ?, ?)",
		PostgresQuery: "INSERT INTO INSTANCE_DOCUMENT (INSTANCE_ID, STATUS, DOCUMENT) " +
			"VALUES ($1, $2, $3) ON CONFLICT (INSTANCE_ID) DO NOTHING",
	}

	for _, instance := range getSeedData().Instances {
		_, err := s.dbClient.Execute(query, instance.InstanceID, instance.Status, instance.Document)
		if err != nil {
			logger.Error("Failed to insert sample instance",
				log.String(log.LoggerKeyInstanceID, instance.InstanceID), log.Error(err))
			return err
		}
		logger.Debug("Seeded sample instance",
			log.String(log.LoggerKeyInstanceID, instance.InstanceID))
	}

	return nil
}
