package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfgpu/internal/types"
)

// ---------------------------------------------------------------------------
// versionCache
// ---------------------------------------------------------------------------

func TestVersionCachePepVersion(t *testing.T) {
	cache := newVersionCache()

	v1, err := cache.pepVersion("1.2.3")
	require.NoError(t, err)

	v2, err := cache.pepVersion("1.2.3")
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

func TestVersionCachePepVersionInvalid(t *testing.T) {
	cache := newVersionCache()
	_, err := cache.pepVersion("not-a-pep440!!!")
	require.Error(t, err)
}

func TestVersionCachePepSpecInvalid(t *testing.T) {
	cache := newVersionCache()
	_, err := cache.pepSpec(">>invalid<<")
	require.Error(t, err)
}

func TestVersionCacheCompare(t *testing.T) {
	cache := newVersionCache()

	assert.Equal(t, -1, cache.compare("10.1", "11.2"))
	assert.Equal(t, 0, cache.compare("11.2", "11.2.0"))
	assert.Equal(t, 1, cache.compare("12.2", "11.8"))
	assert.Equal(t, 0, cache.compare("garbage!!", "1.0"))
}

// ---------------------------------------------------------------------------
// admits
// ---------------------------------------------------------------------------

func TestVersionCacheAdmits(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		version  string
		expected bool
	}{
		{name: "range inside", spec: ">=3.7,<3.8", version: "3.7", expected: true},
		{name: "range outside", spec: ">=3.7,<3.8", version: "3.8", expected: false},
		{name: "wildcard", spec: "10.1.*", version: "10.1", expected: true},
		{name: "wildcard patch", spec: "10.1.*", version: "10.1.243", expected: true},
		{name: "wildcard miss", spec: "10.1.*", version: "10.2", expected: false},
		{name: "bare version is fuzzy", spec: "3.7", version: "3.7.12", expected: true},
		{name: "single equals is fuzzy", spec: "=11.2", version: "11.2.2", expected: true},
		{name: "double equals is exact", spec: "==11.2", version: "11.2.2", expected: false},
		{name: "alternatives", spec: ">=2.7,<2.8|>=3.5", version: "3.6", expected: true},
		{name: "prerelease bound", spec: ">=3.8,<3.9.0a0", version: "3.8", expected: true},
		{name: "any", spec: "*", version: "3.9", expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParseConstraintSet(tt.spec)
			require.NoError(t, err)
			ok, err := newVersionCache().admits(set, tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestVersionCacheAdmitsInvalidVersion(t *testing.T) {
	set, err := ParseConstraintSet(">=3.7")
	require.NoError(t, err)
	_, err = newVersionCache().admits(set, "not-a-version!!")
	require.Error(t, err)
}

// ---------------------------------------------------------------------------
// lowerBound
// ---------------------------------------------------------------------------

func TestVersionCacheLowerBound(t *testing.T) {
	tests := []struct {
		spec    string
		floor   string
		strict  bool
		bounded bool
	}{
		{spec: "10.1.*", floor: "10.1", bounded: true},
		{spec: ">=11.2,<12", floor: "11.2", bounded: true},
		{spec: ">=10.0,<11|>=11.2", floor: "10.0", bounded: true},
		{spec: ">11.0", floor: "11.0", strict: true, bounded: true},
		{spec: ">=11.0,>11.0", floor: "11.0", strict: true, bounded: true},
		{spec: ">11.0|>=11.0,<12", floor: "11.0", bounded: true},
		{spec: "<11", floor: "", bounded: false},
		{spec: "*", floor: "", bounded: false},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			set, err := ParseConstraintSet(tt.spec)
			require.NoError(t, err)
			floor, strict, bounded := newVersionCache().lowerBound(set)
			assert.Equal(t, tt.floor, floor)
			assert.Equal(t, tt.strict, strict)
			assert.Equal(t, tt.bounded, bounded)
		})
	}
}

func TestToPep440Spec(t *testing.T) {
	tests := []struct {
		constraint types.Constraint
		expected   string
	}{
		{types.Constraint{Op: types.ConstraintOpNone, Version: "10.1.*"}, "== 10.1.*"},
		{types.Constraint{Op: types.ConstraintOpNone, Version: "3.7"}, "== 3.7.*"},
		{types.Constraint{Op: types.ConstraintOpEq, Version: "11.2"}, "== 11.2.*"},
		{types.Constraint{Op: types.ConstraintOpEq2, Version: "11.2"}, "== 11.2"},
		{types.Constraint{Op: types.ConstraintOpGte, Version: "3.7"}, ">= 3.7"},
		{types.Constraint{Op: types.ConstraintOpLt, Version: "3.9.0a0"}, "< 3.9.0a0"},
		{types.Constraint{Op: types.ConstraintOpGte, Version: "3.7.*"}, ">= 3.7"},
		{types.Constraint{Op: types.ConstraintOpNe, Version: "3.7.*"}, "!= 3.7.*"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, toPep440Spec(tt.constraint))
	}
}
