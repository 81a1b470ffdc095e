package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mestiri/wrangler/internal/adapters/memory"
	"github.com/mestiri/wrangler/pkg/ports"
	"github.com/mestiri/wrangler/pkg/scene"
)

// contractGraph hand-builds the graph described by ports.ContractSnapshot.
func contractGraph(t *testing.T) *memory.Graph {
	t.Helper()
	g := memory.New()
	g.SetSceneName("/shows/cocomelon/assets/char/jj/jj_rig_v012.ma")
	g.AddReference("jjRN", "/shows/cocomelon/assets/char/jj/jj_rig_master.ma")

	add := func(path string, typ scene.NodeType, opts ...memory.NodeOption) {
		require.NoError(t, g.AddNode(path, typ, opts...))
	}
	ref := memory.WithRef("jjRN")

	add("|jj:jj_char_grp", scene.TypeTransform, ref)
	add("|jj:jj_char_grp|jj:geo_grp", scene.TypeTransform, ref)
	add("|jj:jj_char_grp|jj:geo_grp|jj:body_geo", scene.TypeTransform, ref)
	add("|jj:jj_char_grp|jj:geo_grp|jj:body_geo|jj:body_geoShape", scene.TypeMesh, ref)
	add("|jj:jj_char_grp|jj:ctls_grp", scene.TypeTransform, ref)
	add("|jj:jj_char_grp|jj:ctls_grp|jj:root_ctl", scene.TypeTransform, ref)
	add("|jj:jj_char_grp|jj:ctls_grp|jj:root_ctl|jj:root_ctlShape", scene.TypeCurve, ref)
	add("|jj:jj_char_grp|jj:rig_grp", scene.TypeTransform, ref)
	add("|jj:jj_char_grp|jj:rig_grp|jj:spine_01_jnt", scene.TypeJoint, ref)
	add("|ENV_grp", scene.TypeTransform)
	add("|table_glbl", scene.TypeTransform)
	add("|table_glbl|table_glblShape", scene.TypeCurve)

	require.NoError(t, g.Select("|jj:jj_char_grp|jj:geo_grp"))
	return g
}

func TestGraph_Contract(t *testing.T) {
	ports.RunGraphContract(t, contractGraph(t))
}

func TestGraph_AddNode_Errors(t *testing.T) {
	g := memory.New()

	assert.Error(t, g.AddNode("", scene.TypeTransform), "empty path rejected")
	assert.Error(t, g.AddNode("|", scene.TypeTransform), "bare separator rejected")

	require.NoError(t, g.AddNode("|top", scene.TypeTransform))
	assert.Error(t, g.AddNode("|top", scene.TypeTransform), "duplicate path rejected")

	err := g.AddNode("|missing|child", scene.TypeTransform)
	assert.ErrorIs(t, err, ports.ErrNodeNotFound, "parent must exist")
}

func TestGraph_Select_UnknownNode(t *testing.T) {
	g := memory.New()
	require.NoError(t, g.AddNode("|top", scene.TypeTransform))

	err := g.Select("|top", "|nope")
	assert.ErrorIs(t, err, ports.ErrNodeNotFound)

	sel, err := g.Selection()
	require.NoError(t, err)
	assert.Empty(t, sel, "failed select leaves selection untouched")
}

func TestGraph_Roots_OnlyTransforms(t *testing.T) {
	g := memory.New()
	require.NoError(t, g.AddNode("|grp", scene.TypeTransform))
	require.NoError(t, g.AddNode("|orphan_jnt", scene.TypeJoint))

	roots, err := g.Roots()
	require.NoError(t, err)
	assert.Equal(t, []string{"|grp"}, roots)
}

func TestGraph_Children_SkipsIntermediates(t *testing.T) {
	g := memory.New()
	require.NoError(t, g.AddNode("|body_geo", scene.TypeTransform))
	require.NoError(t, g.AddNode("|body_geo|body_geoShape", scene.TypeMesh))
	require.NoError(t, g.AddNode("|body_geo|body_geoShapeOrig", scene.TypeMesh, memory.AsIntermediate()))

	kids, err := g.Children("|body_geo", scene.TypeMesh)
	require.NoError(t, err)
	assert.Equal(t, []string{"|body_geo|body_geoShape"}, kids)
}

func TestGraph_Len(t *testing.T) {
	g := contractGraph(t)
	assert.Equal(t, 12, g.Len())
}
