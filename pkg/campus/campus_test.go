package campus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="41.8700" lon="-87.6500"/>
  <node id="2" lat="41.8705" lon="-87.6500"/>
  <node id="3" lat="41.8710" lon="-87.6500"/>
  <node id="5" lat="41.8900" lon="-87.6700"/>
  <node id="6" lat="41.8905" lon="-87.6700"/>
  <node id="10" lat="41.8699" lon="-87.6503"/>
  <node id="11" lat="41.8701" lon="-87.6503"/>
  <node id="12" lat="41.8701" lon="-87.6505"/>
  <way id="100">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="footway"/>
  </way>
  <way id="101">
    <nd ref="5"/>
    <nd ref="6"/>
    <tag k="highway" v="path"/>
  </way>
  <way id="200">
    <nd ref="10"/>
    <nd ref="11"/>
    <nd ref="12"/>
    <nd ref="10"/>
    <tag k="building" v="university"/>
    <tag k="name" v="Science &amp; Engineering Offices (SEO)"/>
  </way>
</osm>`

func writeMap(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.osm")
	require.NoError(t, os.WriteFile(path, []byte(testMap), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(context.Background(), writeMap(t), Options{})
	require.NoError(t, err)

	s := c.Stats()
	assert.Equal(t, 8, s.Nodes)
	assert.Equal(t, 2, s.Footways)
	assert.Equal(t, 1, s.Buildings)
	assert.Equal(t, 8, s.Vertices)
	assert.Equal(t, 6, s.Edges)
	// {1,2,3}, {5,6} and the isolated building nodes 10, 11, 12.
	assert.Equal(t, 5, s.Components)
	assert.Equal(t, 3, s.LargestComponent)

	b, ok := c.Directory.Lookup("SEO")
	require.True(t, ok)
	n, err := c.Snapper.Nearest(b.Lat, b.Lon)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n.ID)
}

func TestLoadMaxSnap(t *testing.T) {
	c, err := Load(context.Background(), writeMap(t), Options{MaxSnapMeters: 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Snapper.MaxDistanceMeters)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.osm"), Options{})
	assert.Error(t, err)
}
