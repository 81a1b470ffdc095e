package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mestiri/wrangler/internal/adapters/memory"
	"github.com/mestiri/wrangler/pkg/scene"
)

func TestCharacterVariant_Validate(t *testing.T) {
	g := characterGraph(t)

	ok, err := characterVariant{}.Validate(g, "|jj:jj_char_grp")
	require.NoError(t, err)
	assert.True(t, ok)

	// A group missing the rig group is not a character.
	require.NoError(t, g.AddNode("|half_char_grp", scene.TypeTransform))
	require.NoError(t, g.AddNode("|half_char_grp|geo_grp", scene.TypeTransform))
	require.NoError(t, g.AddNode("|half_char_grp|ctls_grp", scene.TypeTransform))
	ok, err = characterVariant{}.Validate(g, "|half_char_grp")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPropVariant_Validate(t *testing.T) {
	g := memory.New()
	require.NoError(t, g.AddNode("|table_glbl", scene.TypeTransform))
	require.NoError(t, g.AddNode("|table_glbl|table_glblShape", scene.TypeCurve))
	require.NoError(t, g.AddNode("|chair_glbl2", scene.TypeTransform))
	require.NoError(t, g.AddNode("|chair_glbl2|chair_glbl2Shape", scene.TypeCurve))
	require.NoError(t, g.AddNode("|lamp_glbl", scene.TypeTransform)) // no curve shape
	require.NoError(t, g.AddNode("|box_grp", scene.TypeTransform))
	require.NoError(t, g.AddNode("|box_grp|box_grpShape", scene.TypeCurve)) // wrong name

	for node, want := range map[string]bool{
		"|table_glbl":  true,
		"|chair_glbl2": true, // trailing digit allowed
		"|lamp_glbl":   false,
		"|box_grp":     false,
	} {
		ok, err := propVariant{}.Validate(g, node)
		require.NoError(t, err)
		assert.Equal(t, want, ok, "node %s", node)
	}
}

func TestEnvironmentVariant_Validate(t *testing.T) {
	g := memory.New()
	require.NoError(t, g.AddNode("|ENV_grp", scene.TypeTransform))
	require.NoError(t, g.AddNode("|env_grp", scene.TypeTransform)) // case matters
	require.NoError(t, g.AddNode("|ENV_shapes", scene.TypeTransform))
	require.NoError(t, g.AddNode("|ENV_shapes|ENV_shapesShape", scene.TypeMesh))

	ok, err := environmentVariant{}.Validate(g, "|ENV_grp")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = environmentVariant{}.Validate(g, "|env_grp")
	require.NoError(t, err)
	assert.False(t, ok)

	// Shape-bearing transforms are not environments.
	ok, err = environmentVariant{}.Validate(g, "|ENV_shapes")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenericVariant_Validate(t *testing.T) {
	g := memory.New()
	require.NoError(t, g.AddNode("|misc_grp", scene.TypeTransform))
	require.NoError(t, g.AddNode("|skeletonRoot", scene.TypeTransform))
	require.NoError(t, g.AddNode("|camera1", scene.TypeTransform))
	require.NoError(t, g.AddNode("|loose_jnt", scene.TypeJoint))

	for node, want := range map[string]bool{
		"|misc_grp":     true,
		"|skeletonRoot": true, // case-insensitive *root
		"|camera1":      false,
		"|loose_jnt":    false, // not a transform
	} {
		ok, err := genericVariant{}.Validate(g, node)
		require.NoError(t, err)
		assert.Equal(t, want, ok, "node %s", node)
	}
}

func TestVehicleVariant_NeverValidates(t *testing.T) {
	g := memory.New()
	require.NoError(t, g.AddNode("|truck_vhcl_grp", scene.TypeTransform))

	ok, err := vehicleVariant{}.Validate(g, "|truck_vhcl_grp")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCharacter_GroupAccessors(t *testing.T) {
	g := characterGraph(t)
	a := characterVariant{}.New(g, "|jj:jj_char_grp")
	char, ok := a.(*Character)
	require.True(t, ok)

	geoGrp, err := char.GeoGroup()
	require.NoError(t, err)
	assert.Equal(t, "|jj:jj_char_grp|jj:geo_grp", geoGrp)

	ctlsGrp, err := char.ControlsGroup()
	require.NoError(t, err)
	assert.Equal(t, "|jj:jj_char_grp|jj:ctls_grp", ctlsGrp)

	rigGrp, err := char.RigGroup()
	require.NoError(t, err)
	assert.Equal(t, "|jj:jj_char_grp|jj:rig_grp", rigGrp)
}

func TestCharacter_ScopedAccessors(t *testing.T) {
	g := characterGraph(t)
	// A stray mesh outside geo_grp must not leak into character geometry.
	require.NoError(t, g.AddNode("|jj:jj_char_grp|jj:proxy_geo", scene.TypeTransform, memory.WithRef("jjRN")))
	require.NoError(t, g.AddNode("|jj:jj_char_grp|jj:proxy_geo|jj:proxy_geoShape", scene.TypeMesh, memory.WithRef("jjRN")))

	char := characterVariant{}.New(g, "|jj:jj_char_grp")

	geo, err := char.Geometry()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"|jj:jj_char_grp|jj:geo_grp|jj:body_geo",
		"|jj:jj_char_grp|jj:geo_grp|jj:head_geo",
	}, geo)

	joints, err := char.Joints()
	require.NoError(t, err)
	assert.Len(t, joints, 2)
}

func TestCharacter_MissingGroup(t *testing.T) {
	g := memory.New()
	require.NoError(t, g.AddNode("|broken_char_grp", scene.TypeTransform))

	char := characterVariant{}.New(g, "|broken_char_grp")
	_, err := char.Geometry()
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestAsset_Metadata(t *testing.T) {
	g := characterGraph(t)
	require.NoError(t, g.AddNode("|ENV_grp", scene.TypeTransform))

	char := characterVariant{}.New(g, "|jj:jj_char_grp")
	assert.Equal(t, `Character("|jj:jj_char_grp")`, char.String())
	assert.Equal(t, KindCharacter, char.Kind())
	assert.Equal(t, "jj", char.Namespace())

	referenced, err := char.IsReferenced()
	require.NoError(t, err)
	assert.True(t, referenced)

	src, err := char.SourceFile()
	require.NoError(t, err)
	assert.Equal(t, "/shows/cocomelon/assets/char/jj/jj_rig_master.ma", src)

	env := environmentVariant{}.New(g, "|ENV_grp")
	referenced, err = env.IsReferenced()
	require.NoError(t, err)
	assert.False(t, referenced)

	// Unreferenced assets report the current scene file.
	src, err = env.SourceFile()
	require.NoError(t, err)
	assert.Equal(t, "/shows/cocomelon/assets/char/jj/jj_rig_v012.ma", src)
}

func TestAsset_AuxRoots(t *testing.T) {
	g := characterGraph(t)
	a := characterVariant{}.New(g, "|jj:jj_char_grp")

	assert.Empty(t, a.AuxRoots())
	a.AddRoot("|jj:extras_grp")
	assert.Equal(t, []string{"|jj:extras_grp"}, a.AuxRoots())

	// AuxRoots returns a copy.
	aux := a.AuxRoots()
	aux[0] = "mutated"
	assert.Equal(t, []string{"|jj:extras_grp"}, a.AuxRoots())
}
