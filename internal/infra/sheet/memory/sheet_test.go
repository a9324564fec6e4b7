package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TennisBooking/internal/infra/sheet"
)

func TestSheet(t *testing.T) {
	ctx := context.Background()
	s := New([]string{"h1", "h2"}, []string{"a", "b"})

	require.NoError(t, s.AppendRow(ctx, []string{"c", "d"}))
	assert.Equal(t, 3, s.Len())

	t.Run("ReadRows returns copies", func(t *testing.T) {
		rows, err := s.ReadRows(ctx)
		require.NoError(t, err)
		rows[1][0] = "mutated"

		again, err := s.ReadRows(ctx)
		require.NoError(t, err)
		assert.Equal(t, "a", again[1][0])
	})

	t.Run("DeleteRow shifts following rows up", func(t *testing.T) {
		require.NoError(t, s.DeleteRow(ctx, 2))

		rows, err := s.ReadRows(ctx)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"h1", "h2"}, {"c", "d"}}, rows)
	})

	t.Run("DeleteRow out of range leaves rows intact", func(t *testing.T) {
		for _, pos := range []int{0, -1, 3} {
			err := s.DeleteRow(ctx, pos)
			assert.ErrorIs(t, err, sheet.ErrRowOutOfRange)
		}
		assert.Equal(t, 2, s.Len())
	})
}
