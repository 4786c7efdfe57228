package domain

import (
	"path/filepath"
	"testing"
)

func sampleBinder(root string) *Binder {
	dir := filepath.Join(root, DirClasseurs, "Invoices")
	mime := "application/pdf"
	return &Binder{
		Name:    "Invoices",
		SysPath: dir,
		AppPath: ActiveAppPath("Invoices"),
		Folders: map[string]*Folder{
			"dossier_1": {
				Name:    "2024",
				SysPath: filepath.Join(dir, "2024"),
				Folders: map[string]*Folder{
					"dossier_2": {
						Name:    "january",
						SysPath: filepath.Join(dir, "2024", "january"),
						Folders: map[string]*Folder{},
						Files: map[string]FileRef{
							"file_2": {Name: "rent.pdf", SysPath: filepath.Join(dir, "2024", "january", "rent.pdf"), Mime: &mime},
						},
					},
				},
				Files: map[string]FileRef{
					"file_1": {Name: "summary.pdf", SysPath: filepath.Join(dir, "2024", "summary.pdf"), Mime: &mime},
				},
			},
		},
		Files: []FileRef{
			{ID: "file_3", Name: "cover.pdf", SysPath: filepath.Join(dir, "cover.pdf"), Mime: &mime},
		},
	}
}

func TestRewritePathsCoversWholeSubtree(t *testing.T) {
	b := sampleBinder("/data")
	oldPath := b.SysPath
	newPath := filepath.Join("/data", DirArchives, "Invoices")

	b.SysPath = newPath
	b.RewritePaths(oldPath, newPath)

	folder := b.Folders["dossier_1"]
	if folder.SysPath != filepath.Join(newPath, "2024") {
		t.Errorf("folder SysPath = %q", folder.SysPath)
	}
	nested := folder.Folders["dossier_2"]
	if nested.SysPath != filepath.Join(newPath, "2024", "january") {
		t.Errorf("nested folder SysPath = %q", nested.SysPath)
	}
	if got := nested.Files["file_2"].SysPath; got != filepath.Join(newPath, "2024", "january", "rent.pdf") {
		t.Errorf("nested file SysPath = %q", got)
	}
	if got := b.Files[0].SysPath; got != filepath.Join(newPath, "cover.pdf") {
		t.Errorf("root file SysPath = %q", got)
	}
}

func TestRewritePathsSamePrefixIsNoop(t *testing.T) {
	b := sampleBinder("/data")
	before := b.Folders["dossier_1"].SysPath

	b.RewritePaths(b.SysPath, b.SysPath)

	if got := b.Folders["dossier_1"].SysPath; got != before {
		t.Errorf("SysPath changed on same-prefix rewrite: %q", got)
	}
}

func TestRewritePathsIsIdempotent(t *testing.T) {
	b := sampleBinder("/data")
	oldPath := b.SysPath
	newPath := filepath.Join("/data", DirCorbeille, "Invoices")

	b.RewritePaths(oldPath, newPath)
	// Entries no longer under oldPath must be left alone.
	b.RewritePaths(oldPath, newPath)

	if got := b.Folders["dossier_1"].SysPath; got != filepath.Join(newPath, "2024") {
		t.Errorf("folder SysPath = %q after double rewrite", got)
	}
}

func TestRewritePrefix(t *testing.T) {
	got := RewritePrefix("/a/b/c", "/a/b", "/x/y")
	if got != "/x/y/c" {
		t.Errorf("RewritePrefix = %q", got)
	}
	unchanged := RewritePrefix("/other/c", "/a/b", "/x/y")
	if unchanged != "/other/c" {
		t.Errorf("path outside prefix rewritten: %q", unchanged)
	}
}

func TestAppPaths(t *testing.T) {
	if got := ActiveAppPath("Invoices"); got != "/mes_classeurs/Invoices" {
		t.Errorf("ActiveAppPath = %q", got)
	}
	if got := ArchivedAppPath("Invoices", nil); got != "/archives/Invoices" {
		t.Errorf("ArchivedAppPath root = %q", got)
	}
	parent := &ArchiveFolder{Name: "Closed", AppPath: "/archives/Closed"}
	if got := ArchivedAppPath("Invoices", parent); got != "/archives/Closed/Invoices" {
		t.Errorf("ArchivedAppPath nested = %q", got)
	}
}

func TestPhysicalPaths(t *testing.T) {
	root := "/data"
	if got := BinderPath(root, "Invoices"); got != filepath.Join(root, DirClasseurs, "Invoices") {
		t.Errorf("BinderPath = %q", got)
	}
	if got := ArchivedBinderPath(root, "Invoices", nil); got != filepath.Join(root, DirArchives, "Invoices") {
		t.Errorf("ArchivedBinderPath root = %q", got)
	}
	folder := &ArchiveFolder{Name: "Closed", SysPath: filepath.Join(root, DirArchives, "Closed")}
	if got := ArchivedBinderPath(root, "Invoices", folder); got != filepath.Join(folder.SysPath, "Invoices") {
		t.Errorf("ArchivedBinderPath nested = %q", got)
	}
	if got := TrashPath(root, "Invoices"); got != filepath.Join(root, DirCorbeille, "Invoices") {
		t.Errorf("TrashPath = %q", got)
	}
}
