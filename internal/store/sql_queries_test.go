// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectBackupsQuery_SQLContainsParts(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectBackupsQuery(ctx, "device-1", nil)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, "device-1", args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from backups")
	require.Contains(t, q, "where")
	require.Contains(t, q, "device_id")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// columns presence (subset / key columns)
	require.Contains(t, q, "id")
	require.Contains(t, q, "payload_ciphertext")
	require.Contains(t, q, "version")
	require.Contains(t, q, "deleted")
	require.Contains(t, q, "updated_at")
}

func Test_buildSelectBackupsQuery_SelectsAllExpectedColumns(t *testing.T) {
	ctx := context.Background()

	query, _, err := buildSelectBackupsQuery(ctx, "device-1", nil)
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches regressions quickly.
	for _, c := range backupColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildSelectBackupsQuery_WithIDs(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectBackupsQuery(ctx, "device-1", []string{"a", "b", "c"})
	require.NoError(t, err)

	// squirrel generates IN ($2,$3,$4) for a slice.
	assert.Contains(t, query, "IN ($2,$3,$4)")

	require.Len(t, args, 4)
	assert.Equal(t, "device-1", args[0])
	assert.Equal(t, "a", args[1])
	assert.Equal(t, "b", args[2])
	assert.Equal(t, "c", args[3])
}

func Test_buildSelectSingleBackupQuery(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectSingleBackupQuery(ctx, "device-1", "backup-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from backups")
	assert.Contains(t, q, "device_id")
	assert.Contains(t, query, "$1")
	assert.Contains(t, query, "$2")

	require.Len(t, args, 2)
	assert.ElementsMatch(t, []any{"device-1", "backup-1"}, args)
}
