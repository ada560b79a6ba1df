package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestReadSeries(t *testing.T) {
	path := writeFile(t, `a.txt`, "# predicted\n1\n2.5\n\nnot-a-number\n-3\n")
	values, err := ReadSeries(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, values)
}

func TestReadSeriesMissing(t *testing.T) {
	_, err := ReadSeries(filepath.Join(t.TempDir(), `none.txt`), 0)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadDualRequest(t *testing.T) {
	a := writeFile(t, `a.txt`, "1\n2\n3\n")
	b := writeFile(t, `b.txt`, "4\n5\n")
	req, err := LoadDualRequest(`T`, [2]string{`A`, `B`}, [2]string{a, b}, 0)
	require.NoError(t, err)
	assert.Equal(t, `T`, req.Title)
	assert.Equal(t, `A`, req.FirstSeriesName)
	assert.Equal(t, `B`, req.SecondSeriesName)
	assert.Equal(t, []float64{1, 2, 3}, req.FirstSeriesValues)
	assert.Equal(t, []float64{4, 5}, req.SecondSeriesValues)
}

func TestLoadClusterRequest(t *testing.T) {
	path := writeFile(t, `kmeans.json5`, `{
	clusters: [[0, 2], [1]],
	centers: [[5, 5]],
	points: [[1, 1], [2, 2], [3, 3]], // k=2
}`)
	req, err := LoadClusterRequest(path)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2}, {1}}, req.Clusters)
	assert.Equal(t, [][]float64{{5, 5}}, req.Centers)
	assert.Len(t, req.Points, 3)
}
