package tags_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avila-r/cape/tags"
)

func Test_Merge(t *testing.T) {
	var on tags.Tags
	tags.Merge(tags.Tags{"interface": "ICapeThermoMaterial"}, &on)
	tags.Merge(tags.Tags{"interface": "ICapeThermoPhases", "operation": "GetPhaseList"}, &on)

	require.Equal(t, tags.Tags{"interface": "ICapeThermoMaterial", "operation": "GetPhaseList"}, on)
	require.Equal(t, "interface=ICapeThermoMaterial operation=GetPhaseList", on.String())

	tags.Merge(tags.Tags{"x": "y"}, nil)
}
