package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesSchema(t *testing.T) {
	// ARRANGE: a database path inside a directory that does not exist yet.
	path := filepath.Join(t.TempDir(), "nested", "data", "projects.db")

	// ACT
	db, err := InitDB(path)
	require.NoError(t, err)
	defer db.Close()

	// ASSERT: every table from the migrations is present.
	for _, table := range []string{"projects", "project_files", "chat_messages"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "projects.db"))
	require.NoError(t, err)
	defer db.Close()

	// Running the migrations a second time must be a no-op.
	assert.NoError(t, Migrate(db))
}

func TestChatMessages_RejectUnknownSender(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "projects.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("INSERT INTO projects (id, owner_id, title, template, created_at, updated_at) VALUES ('p1', 'u1', 't', 'react', 0, 0)")
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO chat_messages (id, project_id, content, sender, timestamp) VALUES ('m1', 'p1', 'hi', 'robot', 0)")
	assert.Error(t, err)
}
