package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_PairsUpAndDown(t *testing.T) {
	entries, err := fs.ReadDir(FS, ".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	assert.Len(t, ups, 4)
	assert.Equal(t, ups, downs)
}

func TestFS_CommentsCascadeOnArticleDelete(t *testing.T) {
	data, err := fs.ReadFile(FS, "000004_create_comments.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(data), "REFERENCES articles(article_id) ON DELETE CASCADE")
}
