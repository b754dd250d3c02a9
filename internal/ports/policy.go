package ports

import "tfgpu/internal/types"

type BuildPolicyPort interface {
	Admit(entry types.PackageEntry) (bool, error)
}
