package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("Alpha")
	g.AddNode("Alpha")
	g.AddNode("Beta")

	assert.Len(t, g.nodes, 2)
	assert.Equal(t, []string{"Alpha", "Beta"}, g.order)
	assert.Equal(t, 1, g.nodes["Beta"].index)
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("Library")
		g.AddNode("Content")
		g.AddNode("Addon")

		require.NoError(t, g.AddEdge("Library", "Addon"))
		require.NoError(t, g.AddEdge("Content", "Addon"))

		deps, err := g.Dependencies("Addon")
		require.NoError(t, err)
		assert.Equal(t, []string{"Library", "Content"}, deps)
		dependents, err := g.Dependents("Library")
		require.NoError(t, err)
		assert.Equal(t, []string{"Addon"}, dependents)
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("Alpha")

		assert.ErrorContains(t, g.AddEdge("Missing", "Alpha"), "source node not found")
		assert.ErrorContains(t, g.AddEdge("Alpha", "Missing"), "destination node not found")
		assert.ErrorContains(t, g.AddEdge("Alpha", "Alpha"), "self-referential edge")
		_, err := g.Dependencies("Missing")
		assert.ErrorContains(t, err, "node not found")
	})
}

func TestDetectCycles(t *testing.T) {
	testCases := []struct {
		name    string
		nodes   []string
		edges   [][2]string
		wantErr string
	}{
		{name: "empty graph", nodes: nil},
		{name: "no edges", nodes: []string{"a", "b", "c"}},
		{
			name:  "valid dag with transitive edge",
			nodes: []string{"a", "b", "c", "d"},
			edges: [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}, {"c", "d"}},
		},
		{
			name:    "direct cycle",
			nodes:   []string{"a", "b"},
			edges:   [][2]string{{"a", "b"}, {"b", "a"}},
			wantErr: "cycle detected: a -> b -> a",
		},
		{
			name:    "cycle in a disjoint component",
			nodes:   []string{"a", "b", "x", "y", "z"},
			edges:   [][2]string{{"a", "b"}, {"x", "y"}, {"y", "z"}, {"z", "y"}},
			wantErr: "cycle detected: y -> z -> y",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			for _, n := range tc.nodes {
				g.AddNode(n)
			}
			for _, e := range tc.edges {
				require.NoError(t, g.AddEdge(e[0], e[1]))
			}

			err := g.DetectCycles()

			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestOrder(t *testing.T) {
	t.Run("keeps insertion order without edges", func(t *testing.T) {
		g := New()
		for _, n := range []string{"c", "a", "b"} {
			g.AddNode(n)
		}

		order, err := g.Order()

		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a", "b"}, order)
	})

	t.Run("moves dependents after their dependencies", func(t *testing.T) {
		g := New()
		for _, n := range []string{"Addon", "Other", "Library", "Content"} {
			g.AddNode(n)
		}
		require.NoError(t, g.AddEdge("Library", "Addon"))
		require.NoError(t, g.AddEdge("Content", "Addon"))
		require.NoError(t, g.AddEdge("Library", "Content"))

		order, err := g.Order()

		require.NoError(t, err)
		assert.Equal(t, []string{"Other", "Library", "Content", "Addon"}, order)
	})

	t.Run("fails on cycles", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "a"))

		_, err := g.Order()

		assert.ErrorContains(t, err, "cycle detected")
	})
}
