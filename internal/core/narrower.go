package core

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"tfgpu/internal/shared"
	"tfgpu/internal/types"
)

const cudaToolkitName = "cudatoolkit"

// ConstraintPolicy narrows builds by the Python and CUDA toolkit
// versions their dependencies allow. Empty fields disable the check.
// Entries that lack the dependency in question are admitted.
type ConstraintPolicy struct {
	Python  string
	CUDA    string
	MaxCUDA string
	cache   *versionCache
}

func NewConstraintPolicy(python string, cuda string, maxCUDA string) (ConstraintPolicy, error) {
	policy := ConstraintPolicy{
		Python:  strings.TrimSpace(python),
		CUDA:    strings.TrimSpace(cuda),
		MaxCUDA: strings.TrimSpace(maxCUDA),
		cache:   newVersionCache(),
	}
	for _, check := range []struct{ flag, value string }{
		{"python", policy.Python},
		{"cuda", policy.CUDA},
		{"max-cuda", policy.MaxCUDA},
	} {
		if check.value == "" {
			continue
		}
		if _, err := policy.cache.pepVersion(check.value); err != nil {
			return ConstraintPolicy{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid " + check.flag + " version: " + check.value).
				WithCause(err)
		}
	}
	return policy, nil
}

// Enabled reports whether any narrowing is configured.
func (p ConstraintPolicy) Enabled() bool {
	return p.Python != "" || p.CUDA != "" || p.MaxCUDA != ""
}

func (p ConstraintPolicy) Admit(entry types.PackageEntry) (bool, error) {
	if !p.Enabled() {
		return true, nil
	}
	if p.cache == nil {
		p.cache = newVersionCache()
	}
	for _, dep := range entry.Depends {
		name := shared.NameToken(dep)
		if name != types.PythonDependency && name != cudaToolkitName {
			continue
		}
		spec := ParseMatchSpec(dep)
		set, err := ParseConstraintSet(spec.Version)
		if err != nil {
			log.Warn().Str("dependency", dep).Err(err).Msg("skipping build with unparseable dependency")
			return false, nil
		}
		ok, err := p.admitSpec(name, set)
		if err != nil {
			log.Warn().Str("dependency", dep).Err(err).Msg("skipping build with unsupported constraint")
			return false, nil
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (p ConstraintPolicy) admitSpec(name string, set types.ConstraintSet) (bool, error) {
	if name == types.PythonDependency {
		if p.Python == "" {
			return true, nil
		}
		return p.cache.admits(set, p.Python)
	}
	if p.CUDA != "" {
		ok, err := p.cache.admits(set, p.CUDA)
		if err != nil || !ok {
			return ok, err
		}
	}
	if p.MaxCUDA != "" {
		floor, strict, bounded := p.cache.lowerBound(set)
		if bounded {
			order := p.cache.compare(floor, p.MaxCUDA)
			if order > 0 || (order == 0 && strict) {
				return false, nil
			}
		}
	}
	return true, nil
}
