package ui

import (
	"strings"

	"github.com/jpikl/pm/pkg/backend"
)

// FormatAll renders one row of the full listing: name, repository,
// version, and the installed marker. Fields a backend could not supply
// are dropped rather than padded, so the name stays the first token.
func FormatAll(p backend.Package) string {
	fields := make([]string, 0, 4)
	fields = append(fields, PackageName.Sprint(p.Name))
	if p.Repo != "" {
		fields = append(fields, PackageRepo.Sprint(p.Repo))
	}
	if p.Version != "" {
		fields = append(fields, PackageVersion.Sprint(p.Version))
	}
	if p.Installed {
		fields = append(fields, InstalledMark.Sprint("[installed]"))
	}
	return strings.Join(fields, " ")
}

// FormatInstalled renders one row of the installed listing: name,
// version, repository.
func FormatInstalled(p backend.Package) string {
	fields := make([]string, 0, 3)
	fields = append(fields, PackageName.Sprint(p.Name))
	if p.Version != "" {
		fields = append(fields, PackageVersion.Sprint(p.Version))
	}
	if p.Repo != "" {
		fields = append(fields, PackageRepo.Sprint(p.Repo))
	}
	return strings.Join(fields, " ")
}

// Lines renders a whole listing with the given row formatter.
func Lines(packages []backend.Package, format func(backend.Package) string) []string {
	lines := make([]string, len(packages))
	for i, p := range packages {
		lines[i] = format(p)
	}
	return lines
}
