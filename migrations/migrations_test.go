package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	names, err := fs.Glob(files, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, name := range names {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %q", name)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestInitMigrationEnforcesInvariants(t *testing.T) {
	raw, err := fs.ReadFile(files, "0001_init.up.sql")
	require.NoError(t, err)
	sql := string(raw)

	assert.Contains(t, sql, "CREATE EXTENSION IF NOT EXISTS pg_trgm")
	assert.Contains(t, sql, "email TEXT NOT NULL UNIQUE")
	assert.Contains(t, sql, "code CHAR(8) NOT NULL UNIQUE")
	assert.Contains(t, sql, "REFERENCES games(id)")
}
