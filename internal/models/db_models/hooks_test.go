package db_models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every model assigns its uuid in BeforeCreate rather than leaning on a
// database default, so inserts work on a stock Postgres without the uuid-ossp
// extension.
func TestBeforeCreateAssignsID(t *testing.T) {
	base := &BaseModel{}
	require.NoError(t, base.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, base.ID)
	assert.NotZero(t, base.CreatedAt)

	favorite := &Favorite{}
	require.NoError(t, favorite.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, favorite.ID)

	report := &Report{}
	require.NoError(t, report.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, report.ID)

	comment := &Comment{}
	require.NoError(t, comment.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, comment.ID)
}

func TestBeforeCreateKeepsPresetID(t *testing.T) {
	preset := uuid.New()
	favorite := &Favorite{ID: preset}
	require.NoError(t, favorite.BeforeCreate(nil))
	assert.Equal(t, preset, favorite.ID)
}
