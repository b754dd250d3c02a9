package policies

import (
	"strings"

	"tfgpu/internal/types"
)

// BuildPolicy admits GPU builds that have not been revoked.
type BuildPolicy struct{}

func NewBuildPolicy() BuildPolicy {
	return BuildPolicy{}
}

func (p BuildPolicy) Admit(entry types.PackageEntry) (bool, error) {
	if IsRevoked(entry) {
		return false, nil
	}
	return IsGPU(entry), nil
}

// IsGPU reports whether any dependency starts with "cudatoolkit".
func IsGPU(entry types.PackageEntry) bool {
	for _, dep := range entry.Depends {
		if strings.HasPrefix(dep, types.CUDAToolkitPrefix) {
			return true
		}
	}
	return false
}

// IsRevoked reports whether the revocation sentinel is present verbatim.
func IsRevoked(entry types.PackageEntry) bool {
	for _, dep := range entry.Depends {
		if dep == types.RevokedSentinel {
			return true
		}
	}
	return false
}
