package vault

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"classiflyer/internal/adapters/jsondb"
	"classiflyer/internal/application"
	"classiflyer/internal/domain"
	"errors"
)

// newTestVault bootstraps a root in a temp dir and returns a vault with
// a deterministic millisecond clock.
func newTestVault(t *testing.T) (*Vault, string) {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{domain.DirClasseurs, domain.DirArchives, domain.DirCorbeille, domain.DirUploads} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	if err := jsondb.New(root).Save(domain.NewIndex(root)); err != nil {
		t.Fatalf("seed index: %v", err)
	}

	var tick int64
	v := New(root, WithClock(func() int64 {
		tick++
		return 1700000000000 + tick
	}))
	return v, root
}

func readIndex(t *testing.T, root string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, domain.IndexFileName))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal index: %v", err)
	}
	return doc
}

func writeSourceFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write source file: %v", err)
	}
	return path
}

func TestCreateBinder(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	entry, err := v.CreateBinder(ctx, "Invoices", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	if entry.ID != "classeur_1" {
		t.Errorf("ID = %q, want classeur_1", entry.ID)
	}
	if entry.AppPath != "/mes_classeurs/Invoices" {
		t.Errorf("AppPath = %q", entry.AppPath)
	}
	if entry.PrimaryColor != domain.DefaultColors().Primary {
		t.Errorf("PrimaryColor = %q, defaults not applied", entry.PrimaryColor)
	}

	wantDir := filepath.Join(root, domain.DirClasseurs, "Invoices")
	if info, err := os.Stat(wantDir); err != nil || !info.IsDir() {
		t.Errorf("binder directory missing at %s: %v", wantDir, err)
	}

	doc := readIndex(t, root)
	nextID := doc["nextId"].(map[string]any)
	if got := nextID["classeurs"].(float64); got != 2 {
		t.Errorf("nextId.classeurs = %v, want 2", got)
	}
}

func TestCreateBinderRejectsBlankName(t *testing.T) {
	v, _ := newTestVault(t)

	_, err := v.CreateBinder(context.Background(), "   ", domain.Colors{})
	var verr *application.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestCreateFolderAndUpload(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Invoices", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	folderID, folder, err := v.CreateFolder(ctx, binder.ID, "2024", nil)
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if folderID != "dossier_1" {
		t.Errorf("folder key = %q, want dossier_1", folderID)
	}
	wantFolderDir := filepath.Join(root, domain.DirClasseurs, "Invoices", "2024")
	if folder.SysPath != wantFolderDir {
		t.Errorf("folder SysPath = %q, want %q", folder.SysPath, wantFolderDir)
	}

	src := writeSourceFile(t, t.TempDir(), "jan.pdf", "%PDF-1.4")
	saved, err := v.UploadFiles(ctx, binder.ID, &folderID, []string{src})
	if err != nil {
		t.Fatalf("UploadFiles: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("saved %d files, want 1", len(saved))
	}
	ref := saved[0]
	if ref.ID != "file_1" {
		t.Errorf("file key = %q, want file_1", ref.ID)
	}
	if want := filepath.Join(wantFolderDir, "jan.pdf"); ref.SysPath != want {
		t.Errorf("file SysPath = %q, want %q", ref.SysPath, want)
	}
	if ref.Mime == nil || *ref.Mime != "application/pdf" {
		t.Errorf("Mime = %v, want application/pdf", ref.Mime)
	}
	if _, err := os.Stat(ref.SysPath); err != nil {
		t.Errorf("uploaded copy missing: %v", err)
	}
	// Uploads copy, never move.
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source file gone after upload: %v", err)
	}
}

func TestUploadSkipsUnreadableSources(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Mixed", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	good := writeSourceFile(t, t.TempDir(), "ok.txt", "fine")
	missing := filepath.Join(t.TempDir(), "nope.txt")

	saved, err := v.UploadFiles(ctx, binder.ID, nil, []string{missing, good})
	if err != nil {
		t.Fatalf("UploadFiles: %v", err)
	}
	if len(saved) != 1 || saved[0].Name != "ok.txt" {
		t.Fatalf("saved = %+v, want only ok.txt", saved)
	}
}

func TestCreateBinderFromFolder(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	srcRoot := t.TempDir()
	if err := os.MkdirAll(filepath.Join(srcRoot, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	writeSourceFile(t, srcRoot, "top.txt", "a")
	writeSourceFile(t, filepath.Join(srcRoot, "sub"), "deep.md", "b")

	entry, err := v.CreateBinderFromFolder(ctx, "Imported", domain.Colors{}, srcRoot)
	if err != nil {
		t.Fatalf("CreateBinderFromFolder: %v", err)
	}
	if len(entry.Files) != 1 {
		t.Errorf("root files = %d, want 1", len(entry.Files))
	}
	if len(entry.Folders) != 1 {
		t.Fatalf("folders = %d, want 1", len(entry.Folders))
	}
	for id, folder := range entry.Folders {
		if id != "dossier_1" {
			t.Errorf("folder key = %q, want dossier_1", id)
		}
		if len(folder.Files) != 1 {
			t.Errorf("nested files = %d, want 1", len(folder.Files))
		}
	}

	if _, err := os.Stat(filepath.Join(root, domain.DirClasseurs, "Imported", "sub", "deep.md")); err != nil {
		t.Errorf("copied tree incomplete: %v", err)
	}
	// Counters advanced for the synthesized records.
	doc := readIndex(t, root)
	nextID := doc["nextId"].(map[string]any)
	if got := nextID["fichiers"].(float64); got != 3 {
		t.Errorf("nextId.fichiers = %v, want 3", got)
	}
}

func TestRenameBinderActive(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Invoices", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	folderID, _, err := v.CreateFolder(ctx, binder.ID, "2024", nil)
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	renamed, err := v.RenameBinder(ctx, binder.ID, "Invoices2024")
	if err != nil {
		t.Fatalf("RenameBinder: %v", err)
	}
	if renamed.AppPath != "/mes_classeurs/Invoices2024" {
		t.Errorf("AppPath = %q", renamed.AppPath)
	}
	wantDir := filepath.Join(root, domain.DirClasseurs, "Invoices2024")
	if renamed.SysPath != wantDir {
		t.Errorf("SysPath = %q, want %q", renamed.SysPath, wantDir)
	}
	if got := renamed.Folders[folderID].SysPath; got != filepath.Join(wantDir, "2024") {
		t.Errorf("folder SysPath = %q, prefix not rewritten", got)
	}
	if _, err := os.Stat(filepath.Join(root, domain.DirClasseurs, "Invoices")); !os.IsNotExist(err) {
		t.Errorf("old directory still present")
	}
}

func TestRenameBinderFailureLeavesIndexUntouched(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Fragile", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	// Sabotage the physical directory so the rename syscall fails.
	if err := os.RemoveAll(binder.SysPath); err != nil {
		t.Fatal(err)
	}

	_, err = v.RenameBinder(ctx, binder.ID, "Broken")
	var rerr *application.RenameError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want RenameError", err)
	}

	got, err := v.GetBinder(ctx, binder.ID)
	if err != nil {
		t.Fatalf("GetBinder: %v", err)
	}
	if got.Name != "Fragile" {
		t.Errorf("Name = %q, index mutated despite failed rename", got.Name)
	}
}

func TestRenameBinderSameNameIsNoop(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Same", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	renamed, err := v.RenameBinder(ctx, binder.ID, "Same")
	if err != nil {
		t.Fatalf("RenameBinder: %v", err)
	}
	if renamed.Name != "Same" {
		t.Errorf("Name = %q", renamed.Name)
	}
}

func TestDeleteFolderRemovesSubtree(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Docs", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	parentID, _, err := v.CreateFolder(ctx, binder.ID, "outer", nil)
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	childID, child, err := v.CreateFolder(ctx, binder.ID, "inner", &parentID)
	if err != nil {
		t.Fatalf("CreateFolder nested: %v", err)
	}
	if childID != "dossier_2" {
		t.Errorf("nested key = %q, want dossier_2", childID)
	}

	if err := v.DeleteFolder(ctx, binder.ID, parentID); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}
	if _, err := os.Stat(child.SysPath); !os.IsNotExist(err) {
		t.Errorf("nested directory survived parent delete")
	}
	got, err := v.GetBinder(ctx, binder.ID)
	if err != nil {
		t.Fatalf("GetBinder: %v", err)
	}
	if len(got.Folders) != 0 {
		t.Errorf("folders = %d, want 0", len(got.Folders))
	}
}

func TestIDsNeverReused(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	first, err := v.CreateBinder(ctx, "One", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	if err := v.DeleteBinder(ctx, first.ID); err != nil {
		t.Fatalf("DeleteBinder: %v", err)
	}
	second, err := v.CreateBinder(ctx, "Two", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	if second.ID != "classeur_2" {
		t.Errorf("ID = %q, want classeur_2 after delete", second.ID)
	}
}

func TestGetBinderUnknownKey(t *testing.T) {
	v, _ := newTestVault(t)

	_, err := v.GetBinder(context.Background(), "classeur_99")
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReadFile(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Reads", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	src := writeSourceFile(t, t.TempDir(), "note.txt", "hello")
	saved, err := v.UploadFiles(ctx, binder.ID, nil, []string{src})
	if err != nil || len(saved) != 1 {
		t.Fatalf("UploadFiles: %v (%d saved)", err, len(saved))
	}

	data, mime, err := v.ReadFile(ctx, saved[0].SysPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("data = %q", data)
	}
	if mime != "text/plain" {
		t.Errorf("mime = %q", mime)
	}
}
