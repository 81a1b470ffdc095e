package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds_Order(t *testing.T) {
	// Classification order decides ties; it must stay stable.
	assert.Equal(t, []Kind{KindCharacter, KindProp, KindEnvironment, KindGeneric, KindVehicle}, Kinds())
}

func TestKindFromPath(t *testing.T) {
	cases := []struct {
		path string
		want Kind
		ok   bool
	}{
		{"/shows/cocomelon/assets/char/jj/jj_rig_v012.ma", KindCharacter, true},
		{"/shows/cocomelon/assets/PROP/table/table_v003.ma", KindProp, true},
		{"/shows/cocomelon/assets/envr/kitchen/kitchen.ma", KindEnvironment, true},
		{"/shows/cocomelon/shots/sq010/sh020/anim.ma", "", false},
		{"/shows/characters/jj.ma", "", false}, // no exact segment match
		{"", "", false},
	}
	for _, c := range cases {
		kind, ok := KindFromPath(c.path)
		assert.Equal(t, c.ok, ok, "path %q", c.path)
		assert.Equal(t, c.want, kind, "path %q", c.path)
	}
}
