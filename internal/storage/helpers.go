// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"fmt"
	"strings"
)

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

// prefixColumns qualifies every column with a table alias for joined queries.
func prefixColumns(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

// requireRowsAffected maps zero affected rows to ErrNotFound, which is
// how ownership misses on update/delete surface.
func requireRowsAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
