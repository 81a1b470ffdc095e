package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mestiri/wrangler/pkg/scene"
)

// ContractSnapshot is the canonical scene snapshot (YAML) a Graph under
// contract test must be loaded from. It contains a referenced character rig,
// an empty environment group and an unreferenced prop, which together
// exercise every Graph method.
const ContractSnapshot = `scene: /shows/cocomelon/assets/char/jj/jj_rig_v012.ma
references:
  jjRN: /shows/cocomelon/assets/char/jj/jj_rig_master.ma
nodes:
  - {path: "|jj:jj_char_grp", type: transform, ref: jjRN}
  - {path: "|jj:jj_char_grp|jj:geo_grp", type: transform, ref: jjRN}
  - {path: "|jj:jj_char_grp|jj:geo_grp|jj:body_geo", type: transform, ref: jjRN}
  - {path: "|jj:jj_char_grp|jj:geo_grp|jj:body_geo|jj:body_geoShape", type: mesh, ref: jjRN}
  - {path: "|jj:jj_char_grp|jj:ctls_grp", type: transform, ref: jjRN}
  - {path: "|jj:jj_char_grp|jj:ctls_grp|jj:root_ctl", type: transform, ref: jjRN}
  - {path: "|jj:jj_char_grp|jj:ctls_grp|jj:root_ctl|jj:root_ctlShape", type: nurbsCurve, ref: jjRN}
  - {path: "|jj:jj_char_grp|jj:rig_grp", type: transform, ref: jjRN}
  - {path: "|jj:jj_char_grp|jj:rig_grp|jj:spine_01_jnt", type: joint, ref: jjRN}
  - {path: "|ENV_grp", type: transform}
  - {path: "|table_glbl", type: transform}
  - {path: "|table_glbl|table_glblShape", type: nurbsCurve}
selection:
  - "|jj:jj_char_grp|jj:geo_grp"
`

// RunGraphContract verifies that a Graph implementation adheres to the
// interface contract. The graph must have been loaded from ContractSnapshot.
func RunGraphContract(t *testing.T, g Graph) {
	t.Run("Roots", func(t *testing.T) {
		roots, err := g.Roots()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"|jj:jj_char_grp", "|ENV_grp", "|table_glbl"}, roots)
	})

	t.Run("Children", func(t *testing.T) {
		kids, err := g.Children("|jj:jj_char_grp", scene.TypeTransform)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"|jj:jj_char_grp|jj:geo_grp",
			"|jj:jj_char_grp|jj:ctls_grp",
			"|jj:jj_char_grp|jj:rig_grp",
		}, kids)

		curves, err := g.Children("|table_glbl", scene.TypeCurve)
		require.NoError(t, err)
		assert.Equal(t, []string{"|table_glbl|table_glblShape"}, curves)

		none, err := g.Children("|ENV_grp", scene.TypeAny)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Parent", func(t *testing.T) {
		parent, err := g.Parent("|jj:jj_char_grp|jj:geo_grp")
		require.NoError(t, err)
		assert.Equal(t, "|jj:jj_char_grp", parent)

		top, err := g.Parent("|ENV_grp")
		require.NoError(t, err)
		assert.Equal(t, "", top, "top-level node has no parent")
	})

	t.Run("TypeOf", func(t *testing.T) {
		typ, err := g.TypeOf("|jj:jj_char_grp|jj:geo_grp|jj:body_geo|jj:body_geoShape")
		require.NoError(t, err)
		assert.Equal(t, scene.TypeMesh, typ)

		typ, err = g.TypeOf("|jj:jj_char_grp|jj:rig_grp|jj:spine_01_jnt")
		require.NoError(t, err)
		assert.Equal(t, scene.TypeJoint, typ)
	})

	t.Run("Reference", func(t *testing.T) {
		ref, err := g.Reference("|jj:jj_char_grp|jj:geo_grp")
		require.NoError(t, err)
		require.NotNil(t, ref)
		assert.Equal(t, "jjRN", ref.Node)
		assert.Equal(t, "/shows/cocomelon/assets/char/jj/jj_rig_master.ma", ref.File)

		ref, err = g.Reference("|ENV_grp")
		require.NoError(t, err)
		assert.Nil(t, ref, "unreferenced node has no reference group")
	})

	t.Run("Selection", func(t *testing.T) {
		sel, err := g.Selection()
		require.NoError(t, err)
		assert.Equal(t, []string{"|jj:jj_char_grp|jj:geo_grp"}, sel)
	})

	t.Run("SceneName", func(t *testing.T) {
		name, err := g.SceneName()
		require.NoError(t, err)
		assert.Equal(t, "/shows/cocomelon/assets/char/jj/jj_rig_v012.ma", name)
	})

	t.Run("Unknown Node", func(t *testing.T) {
		_, err := g.Children("|does_not_exist", scene.TypeAny)
		assert.ErrorIs(t, err, ErrNodeNotFound)

		_, err = g.TypeOf("|does_not_exist")
		assert.ErrorIs(t, err, ErrNodeNotFound)

		_, err = g.Parent("|does_not_exist")
		assert.ErrorIs(t, err, ErrNodeNotFound)
	})
}

// RunResultStoreContract runs a suite of tests to verify that a ResultStore
// implementation adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	rec := &ScanRecord{
		Scene:     "/shows/demo/assets/prop/table/table_rig_v003.ma",
		ScannedAt: time.Now().UTC().Truncate(time.Second),
		Assets: []AssetRecord{
			{Root: "|table_glbl", Kind: "prop", Geometry: 4, Controls: 1},
		},
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, key, rec)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, rec.Scene, loaded.Scene)
		require.Len(t, loaded.Assets, 1)
		assert.Equal(t, "prop", loaded.Assets[0].Kind)
		assert.Equal(t, 4, loaded.Assets[0].Geometry)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, ErrNotCached)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, rec))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, ErrNotCached, "Load after Delete should return ErrNotCached")
	})
}
