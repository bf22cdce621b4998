package db

import (
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	source, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer source.Close()

	first, err := source.First()
	require.NoError(t, err)
	require.Equal(t, uint(1), first)

	next, err := source.Next(first)
	require.NoError(t, err)
	require.Equal(t, uint(2), next)

	for _, version := range []uint{first, next} {
		up, identifier, err := source.ReadUp(version)
		require.NoError(t, err)
		require.NotEmpty(t, identifier)
		require.NoError(t, up.Close())

		down, _, err := source.ReadDown(version)
		require.NoError(t, err)
		require.NoError(t, down.Close())
	}
}
