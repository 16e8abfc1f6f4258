package outline

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gooutline/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscardThresholdIsStrict(t *testing.T) {
	scale := 0.1

	assert.False(t, Discard(0.4999, scale), "just under the threshold is kept")
	assert.True(t, Discard(0.5001, scale), "just over the threshold is discarded")
	assert.False(t, Discard(DiscardBias+scale, scale), "exactly on the threshold is kept")
}

func TestKeepRimDiscard(t *testing.T) {
	camera := geometry.NewVector3(0, 0, 10)
	pos := geometry.NewVector3(0, 0, 1)

	// Facing the camera head on: discarded
	assert.False(t, Keep(RimDiscard, geometry.NewVector3(0, 0, 1), pos, camera, 0))
	// Silhouette: kept
	assert.True(t, Keep(RimDiscard, geometry.NewVector3(1, 0, 0), pos, camera, 0))
	// Unnormalized normals give the same answer
	assert.False(t, Keep(RimDiscard, geometry.NewVector3(0, 0, 5), pos, camera, 0))
}

func TestKeepScaledShellIgnoresCamera(t *testing.T) {
	camera := geometry.NewVector3(0, 0, 10)
	assert.True(t, Keep(ScaledShell, geometry.NewVector3(0, 0, 1), geometry.Vector3{}, camera, 1.05))
}

func TestDisplace(t *testing.T) {
	p := geometry.NewVector3(1, 0, 0)
	n := geometry.NewVector3(1, 0, 0)

	assert.Equal(t, geometry.NewVector3(1.2, 0, 0), Displace(RimDiscard, p, n, 0.2))
	assert.Equal(t, geometry.NewVector3(1.1, 0, 0), Displace(ScaledShell, p, n, 1.1))
}

func TestStylePolicies(t *testing.T) {
	assert.True(t, RimDiscard.UsesCameraPosition())
	assert.False(t, ScaledShell.UsesCameraPosition())
	assert.False(t, RimDiscard.ResetsScale())
	assert.True(t, ScaledShell.ResetsScale())

	lo, hi := RimDiscard.Range()
	assert.Equal(t, [2]float64{0, 0.2}, [2]float64{lo, hi})
	lo, hi = ScaledShell.Range()
	assert.Equal(t, [2]float64{1.0, 1.2}, [2]float64{lo, hi})

	assert.Equal(t, "customOutline", RimDiscard.ProgramName())
	assert.Equal(t, "customScale", ScaledShell.ProgramName())
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"rim", RimDiscard},
		{" Shell ", ScaledShell},
		{"customOutline", RimDiscard},
		{"customscale", ScaledShell},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseStyle("shel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "shell"`)

	_, err = ParseStyle("wireframe")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestStyleText(t *testing.T) {
	b, err := ScaledShell.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "shell", string(b))

	var s Style
	require.NoError(t, s.UnmarshalText([]byte("rim")))
	assert.Equal(t, RimDiscard, s)

	_, err = Style(42).MarshalText()
	assert.Error(t, err)
}

func TestParamsClamp(t *testing.T) {
	p := Params{Scale: 0.5, Color: colorful.Color{R: 1.5, G: -0.2, B: 0.3}}.Clamp(RimDiscard)
	assert.Equal(t, 0.2, p.Scale)
	assert.Equal(t, colorful.Color{R: 1, G: 0, B: 0.3}, p.Color)

	p = Params{Scale: 0.5}.Clamp(ScaledShell)
	assert.Equal(t, 1.0, p.Scale)

	assert.Equal(t, Params{Scale: 1.05, Color: DefaultColor}, DefaultParams(ScaledShell))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("00ff00")
	require.NoError(t, err)
	assert.InDelta(t, 0, c.R, 1e-9)
	assert.InDelta(t, 1, c.G, 1e-9)
	assert.InDelta(t, 0, c.B, 1e-9)

	_, err = ParseColor("#zz")
	assert.Error(t, err)
}

func TestSourcesDeclareUniforms(t *testing.T) {
	for _, s := range Styles {
		vs, fs := Sources(s)
		for _, u := range Uniforms(s) {
			assert.Contains(t, vs+fs, u, "%s missing %s", s, u)
		}
		for _, a := range Attributes(s) {
			assert.Contains(t, vs, a, "%s missing %s", s, a)
		}
	}
}
