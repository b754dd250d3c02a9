package core

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"tfgpu/internal/policies"
	"tfgpu/internal/types"
)

func sampleEntries() []types.PackageEntry {
	return []types.PackageEntry{
		{Version: "2.4.0", Build: "gpu_py37", Depends: []string{"cudatoolkit 10.1.*", "python >=3.7,<3.8"}},
		{Version: "2.4.0", Build: "mkl_py37", Depends: []string{"python >=3.7,<3.8"}},
		{Version: "2.3.0", Build: "gpu_py38", Depends: []string{"package_has_been_revoked", "cudatoolkit 10.1.*"}},
		{Version: "2.2.0", Build: "gpu_py38", Depends: []string{"cudatoolkit 10.1.*", "python >=3.8,<3.9"}},
		{Version: "2.5.0", Build: "gpu_py39", Depends: []string{"cudatoolkit >=11.2,<12", "python >=3.9,<3.10"}},
	}
}

func builds(entries []types.PackageEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Version+"/"+entry.Build)
	}
	return out
}

func TestResolverSelectsGPUBuildsInOrder(t *testing.T) {
	resolver := NewResolverCore(policies.NewBuildPolicy())
	selected, err := resolver.Resolve(context.Background(), types.QueryResult{Package: "tensorflow-base", Entries: sampleEntries()})
	require.NoError(t, err)

	expected := []string{"2.4.0/gpu_py37", "2.2.0/gpu_py38", "2.5.0/gpu_py39"}
	if diff := cmp.Diff(expected, builds(selected)); diff != "" {
		t.Fatalf("unexpected selection (-want +got):\n%s", diff)
	}
}

func TestResolverIsIdempotent(t *testing.T) {
	resolver := NewResolverCore(policies.NewBuildPolicy())
	first, err := resolver.Resolve(context.Background(), types.QueryResult{Entries: sampleEntries()})
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), types.QueryResult{Entries: first})
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("filter not idempotent (-want +got):\n%s", diff)
	}
}

func TestResolverEmptyResult(t *testing.T) {
	resolver := NewResolverCore(policies.NewBuildPolicy())
	selected, err := resolver.Resolve(context.Background(), types.QueryResult{})
	require.NoError(t, err)
	require.Empty(t, selected)
}

func TestResolverRequiresPolicy(t *testing.T) {
	_, err := NewResolverCore().Resolve(context.Background(), types.QueryResult{})
	require.Error(t, err)
}

func TestResolverHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewResolverCore(policies.NewBuildPolicy()).Resolve(ctx, types.QueryResult{Entries: sampleEntries()})
	require.True(t, errors.Is(err, context.Canceled))
}

type failingPolicy struct{}

func (failingPolicy) Admit(types.PackageEntry) (bool, error) {
	return false, errors.New("boom")
}

func TestResolverPropagatesPolicyError(t *testing.T) {
	_, err := NewResolverCore(failingPolicy{}).Resolve(context.Background(), types.QueryResult{Entries: sampleEntries()})
	require.EqualError(t, err, "boom")
}
