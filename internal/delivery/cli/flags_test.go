package cli

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLines_Set(t *testing.T) {
	var lines orderLines

	require.NoError(t, lines.Set("p1:3"))
	require.NoError(t, lines.Set(" p2 "))
	assert.Error(t, lines.Set(":2"))
	assert.Error(t, lines.Set("p3:x"))

	assert.Equal(t, orderLines{{ProductID: "p1", Quantity: 3}, {ProductID: "p2", Quantity: 1}}, lines)
	assert.Equal(t, "p1:3,p2:1", lines.String())
}

func TestParseLatLng(t *testing.T) {
	tests := []struct {
		in      string
		want    orb.Point
		wantErr bool
	}{
		{in: "-23.5,-46.6", want: orb.Point{-46.6, -23.5}},
		{in: " 10 , 20 ", want: orb.Point{20, 10}},
		{in: "10", wantErr: true},
		{in: "a,b", wantErr: true},
		{in: "91,0", wantErr: true},
		{in: "0,181", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLatLng(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalFlags(t *testing.T) {
	var f optionalFloat
	assert.Empty(t, f.String())
	require.NoError(t, f.Set("1.5"))
	assert.Equal(t, 1.5, *f.value)
	assert.Error(t, f.Set("x"))

	var b optionalBool
	assert.True(t, b.IsBoolFlag())
	require.NoError(t, b.Set("false"))
	assert.False(t, *b.value)
	assert.Equal(t, "false", b.String())
}
