package property_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avila-r/cape/property"
)

func Test_List(t *testing.T) {
	require := require.New(t)

	var list *property.List
	_, ok := list.Get(property.Position)
	require.False(ok)

	list = list.Set(property.Position, 1).Set(property.Type, "mole fraction").Set(property.Position, 3)

	value, ok := list.Get(property.Position)
	require.True(ok)
	require.Equal(3, value)

	var keys []string
	list.Each(func(key string, _ any) { keys = append(keys, key) })
	require.Equal([]string{property.Position, property.Type}, keys)
}

func Test_Bind(t *testing.T) {
	require := require.New(t)

	var position int
	require.True(property.Result{Value: 3, Ok: true}.Bind(&position))
	require.Equal(3, position)

	var name string
	require.False(property.Result{Value: 3, Ok: true}.Bind(&name))
	require.False(property.Empty().Bind(&position))
	require.False(property.Result{Value: 3, Ok: true}.Bind(position))
}
