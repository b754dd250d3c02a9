package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"tfgpu/internal/ports"
	"tfgpu/internal/types"
)

// ResolverCore selects the entries of a query result that every policy
// admits. Index order is preserved.
type ResolverCore struct {
	Policies []ports.BuildPolicyPort
}

func NewResolverCore(policies ...ports.BuildPolicyPort) ResolverCore {
	return ResolverCore{Policies: policies}
}

func (r ResolverCore) Resolve(ctx context.Context, result types.QueryResult) ([]types.PackageEntry, error) {
	if len(r.Policies) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires at least one build policy")
	}
	var selected []types.PackageEntry
	for _, entry := range result.Entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		admitted, err := r.admit(entry)
		if err != nil {
			return nil, err
		}
		if admitted {
			selected = append(selected, entry)
		}
	}
	log.Debug().
		Str("package", result.Package).
		Int("entries", len(result.Entries)).
		Int("selected", len(selected)).
		Msg("entries filtered")
	return selected, nil
}

func (r ResolverCore) admit(entry types.PackageEntry) (bool, error) {
	for _, policy := range r.Policies {
		ok, err := policy.Admit(entry)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
