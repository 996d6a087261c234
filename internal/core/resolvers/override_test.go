package resolvers

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/EmundoT/git-dco/internal/core"
	git "github.com/EmundoT/git-dco/internal/gitplumbing"
	"github.com/EmundoT/git-dco/internal/types"
)

// Short refs and branch names are accepted on the command line; the
// resolved range always carries full hashes.
func TestOverrideResolver_ResolvesRefsToHashes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gitc := core.NewMockGitClient(ctrl)
	gitc.EXPECT().ResolveRef(gomock.Any(), "master").Return("aaa111", nil)
	gitc.EXPECT().ResolveRef(gomock.Any(), "feature").Return("bbb222", nil)

	r := NewOverrideResolver(gitc, "master", "feature")
	rng, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := types.CommitRange{Base: "aaa111", Target: "bbb222", Kind: types.RangeFeatureBranch}
	if rng != want {
		t.Errorf("Resolve() = %+v, want %+v", rng, want)
	}
}

func TestOverrideResolver_UnknownBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gitc := core.NewMockGitClient(ctrl)
	gitc.EXPECT().ResolveRef(gomock.Any(), "nope").Return("", git.ErrRefNotFound)

	r := NewOverrideResolver(gitc, "nope", "feature")
	_, err := r.Resolve(context.Background())
	if !core.IsResolutionError(err) {
		t.Fatalf("Resolve() error = %v, want *ResolutionError", err)
	}
}

func TestOverrideResolver_Name(t *testing.T) {
	r := NewOverrideResolver(nil, "a", "b")
	if r.Name() != "explicit range" {
		t.Errorf("Name() = %q", r.Name())
	}
}
