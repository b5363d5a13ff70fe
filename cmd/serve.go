/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package cmd

import (
	"github.com/ballparkdata/almanac/internal/queryservice"
	"github.com/ballparkdata/almanac/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the query API over HTTP",
	Long:  `Starts an HTTP server exposing the read-only query API: table listings, freeform SELECT queries, and the predefined query catalog.`,
	Example: `./almanacdb serve
./almanacdb serve --listen :9090`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	db, err := setupDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	addr := cfg.Listen
	if serveListen != "" {
		addr = serveListen
	}
	return server.Run(queryservice.NewService(db), logger, addr)
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Address to listen on (overrides ALMANAC_LISTEN)")
}
