package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

var libraryPackages = []string{
	"github.com/hsiuhsiu/toyrsa-go/pkg/numtheory",
	"github.com/hsiuhsiu/toyrsa-go/pkg/rsa",
	"github.com/hsiuhsiu/toyrsa-go/pkg/logging",
}

func loadLibrary(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{Mode: mode}

	pkgs, err := packages.Load(cfg, libraryPackages...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages failed to type-check")
	}
	if len(pkgs) != len(libraryPackages) {
		t.Fatalf("loaded %d packages, want %d", len(pkgs), len(libraryPackages))
	}
	return pkgs
}
