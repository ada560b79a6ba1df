package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admpub/charting/pkg/charting"
)

func TestNew(t *testing.T) {
	em, err := New(`memory`)
	require.NoError(t, err)
	em.Close()

	em, err = New(`memory://`)
	require.NoError(t, err)
	em.Close()

	_, err = New(`redis://localhost`)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestMemory(t *testing.T) {
	em := NewMemory()
	defer em.Close()

	cluster := charting.ClusterRequest{
		Clusters: [][]int{{0}, {1}},
		Centers:  [][]float64{{0, 0}},
		Points:   [][]float64{{1, 2}, {3, 4}},
	}
	older, err := NewClusterRecord(`kmeans`, cluster)
	require.NoError(t, err)
	older.Created = time.Now().Add(-time.Hour)
	require.NoError(t, em.Save(older))

	newer, err := NewDualRecord(`series`, charting.ChartRequest{Title: `S`})
	require.NoError(t, err)
	require.NoError(t, em.Save(newer))

	list, err := em.List(0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, `series`, list[0].Name)
	assert.Equal(t, `kmeans`, list[1].Name)

	list, err = em.List(1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	rec, err := em.Get(`kmeans`)
	require.NoError(t, err)
	chart, err := rec.Chart()
	require.NoError(t, err)
	assert.Len(t, chart.Traces, 3)

	_, err = em.Get(`missing`)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, em.Delete(`kmeans`))
	assert.ErrorIs(t, em.Delete(`kmeans`), ErrNotFound)
}

func TestRecordChartUnknownKind(t *testing.T) {
	_, err := Record{Name: `x`, Kind: `pie`, Body: `{}`}.Chart()
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRecordChartPaletteError(t *testing.T) {
	rec, err := NewClusterRecord(`four`, charting.ClusterRequest{
		Clusters: [][]int{{0}, {0}, {0}, {0}},
		Points:   [][]float64{{1, 1}},
	})
	require.NoError(t, err)
	_, err = rec.Chart()
	assert.ErrorIs(t, err, charting.ErrPaletteExhausted)
	chart, err := rec.Chart(charting.WithPalette(charting.NewCyclicPalette(`red`, `green`, `blue`)))
	require.NoError(t, err)
	assert.Len(t, chart.Traces, 5)
}
