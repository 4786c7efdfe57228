package vault

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
)

func TestArchiveIntoFolderRewritesSubtree(t *testing.T) {
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
	src := writeSourceFile(t, t.TempDir(), "jan.pdf", "%PDF-1.4")
	if _, err := v.UploadFiles(ctx, binder.ID, &folderID, []string{src}); err != nil {
		t.Fatalf("UploadFiles: %v", err)
	}
	closed, err := v.CreateArchiveFolder(ctx, "Closed", nil)
	if err != nil {
		t.Fatalf("CreateArchiveFolder: %v", err)
	}
	if closed.ID != "archive_folder_1" {
		t.Errorf("archive folder key = %q", closed.ID)
	}

	archived, err := v.Archive(ctx, binder.ID, &closed.ID)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}

	wantDir := filepath.Join(root, domain.DirArchives, "Closed", "Invoices")
	if archived.SysPath != wantDir {
		t.Errorf("SysPath = %q, want %q", archived.SysPath, wantDir)
	}
	if archived.AppPath != "/archives/Closed/Invoices" {
		t.Errorf("AppPath = %q", archived.AppPath)
	}
	if !archived.Archived || archived.ArchivedAt == nil {
		t.Errorf("archived flags not set: %v %v", archived.Archived, archived.ArchivedAt)
	}
	folder := archived.Folders[folderID]
	if folder.SysPath != filepath.Join(wantDir, "2024") {
		t.Errorf("folder SysPath = %q, subtree not rewritten", folder.SysPath)
	}
	for _, f := range folder.Files {
		if f.SysPath != filepath.Join(wantDir, "2024", "jan.pdf") {
			t.Errorf("file SysPath = %q, subtree not rewritten", f.SysPath)
		}
	}
	if _, err := os.Stat(filepath.Join(wantDir, "2024", "jan.pdf")); err != nil {
		t.Errorf("physical tree not moved: %v", err)
	}

	active, err := v.ListBinders(ctx)
	if err != nil {
		t.Fatalf("ListBinders: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active list has %d entries after archive", len(active))
	}
	archivedList, err := v.ListArchivedBinders(ctx)
	if err != nil {
		t.Fatalf("ListArchivedBinders: %v", err)
	}
	if len(archivedList) != 1 || archivedList[0].ID != binder.ID {
		t.Errorf("archived list = %+v, binder not re-homed under its key", archivedList)
	}
}

func TestArchiveTwiceFails(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Once", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	if _, err := v.Archive(ctx, binder.ID, nil); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	_, err = v.Archive(ctx, binder.ID, nil)
	if !errors.Is(err, application.ErrAlreadyArchived) {
		t.Fatalf("err = %v, want ErrAlreadyArchived", err)
	}
	var lcErr *application.LifecycleError
	if !errors.As(err, &lcErr) || lcErr.ID != binder.ID {
		t.Errorf("err = %v, want LifecycleError for %s", err, binder.ID)
	}
}

func TestArchiveUnarchiveRoundTrip(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "RoundTrip", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	folderID, _, err := v.CreateFolder(ctx, binder.ID, "papers", nil)
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	if _, err := v.Archive(ctx, binder.ID, nil); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	back, err := v.Unarchive(ctx, binder.ID)
	if err != nil {
		t.Fatalf("Unarchive: %v", err)
	}

	wantDir := filepath.Join(root, domain.DirClasseurs, "RoundTrip")
	if back.SysPath != wantDir {
		t.Errorf("SysPath = %q, want %q", back.SysPath, wantDir)
	}
	if back.AppPath != "/mes_classeurs/RoundTrip" {
		t.Errorf("AppPath = %q", back.AppPath)
	}
	if back.Archived || back.ArchivedAt != nil || back.ArchiveFolderID != nil {
		t.Errorf("archive placement not cleared: %+v", back.Binder)
	}
	if got := back.Folders[folderID].SysPath; got != filepath.Join(wantDir, "papers") {
		t.Errorf("folder SysPath = %q after round trip", got)
	}
}

func TestUnarchiveActiveBinderFails(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Active", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	_, err = v.Unarchive(ctx, binder.ID)
	if !errors.Is(err, application.ErrNotArchived) {
		t.Fatalf("err = %v, want ErrNotArchived", err)
	}
}

func TestMoveToArchiveFolder(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Mover", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	if _, err := v.Archive(ctx, binder.ID, nil); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	target, err := v.CreateArchiveFolder(ctx, "Destination", nil)
	if err != nil {
		t.Fatalf("CreateArchiveFolder: %v", err)
	}

	moved, err := v.MoveToArchiveFolder(ctx, binder.ID, &target.ID)
	if err != nil {
		t.Fatalf("MoveToArchiveFolder: %v", err)
	}
	wantDir := filepath.Join(root, domain.DirArchives, "Destination", "Mover")
	if moved.SysPath != wantDir {
		t.Errorf("SysPath = %q, want %q", moved.SysPath, wantDir)
	}
	if moved.ArchiveFolderID == nil || *moved.ArchiveFolderID != target.ID {
		t.Errorf("ArchiveFolderID = %v", moved.ArchiveFolderID)
	}

	// Back to the archive root.
	moved, err = v.MoveToArchiveFolder(ctx, binder.ID, nil)
	if err != nil {
		t.Fatalf("MoveToArchiveFolder to root: %v", err)
	}
	if moved.ArchiveFolderID != nil {
		t.Errorf("ArchiveFolderID = %v, want nil at archive root", moved.ArchiveFolderID)
	}
	if moved.SysPath != filepath.Join(root, domain.DirArchives, "Mover") {
		t.Errorf("SysPath = %q", moved.SysPath)
	}
}

func TestTrashRestoreActive(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Doomed", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	if err := v.Trash(ctx, binder.ID); err != nil {
		t.Fatalf("Trash: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, domain.DirCorbeille, "Doomed")); err != nil {
		t.Errorf("trashed directory missing: %v", err)
	}
	listings, err := v.ListTrash(ctx)
	if err != nil {
		t.Fatalf("ListTrash: %v", err)
	}
	if len(listings) != 1 || listings[0].DeletedFrom != string(domain.ZoneActive) {
		t.Fatalf("listings = %+v", listings)
	}
	if _, err := v.GetBinder(ctx, binder.ID); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("trashed binder still visible to GetBinder: %v", err)
	}

	if err := v.Restore(ctx, binder.ID); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	restored, err := v.GetBinder(ctx, binder.ID)
	if err != nil {
		t.Fatalf("GetBinder after restore: %v", err)
	}
	if restored.SysPath != filepath.Join(root, domain.DirClasseurs, "Doomed") {
		t.Errorf("SysPath = %q", restored.SysPath)
	}
	if restored.AppPath != "/mes_classeurs/Doomed" {
		t.Errorf("AppPath = %q", restored.AppPath)
	}
}

func TestTrashRestoreArchivedKeepsPlacement(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Filed", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	closed, err := v.CreateArchiveFolder(ctx, "Closed", nil)
	if err != nil {
		t.Fatalf("CreateArchiveFolder: %v", err)
	}
	if _, err := v.Archive(ctx, binder.ID, &closed.ID); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	if err := v.Trash(ctx, binder.ID); err != nil {
		t.Fatalf("Trash: %v", err)
	}
	if err := v.Restore(ctx, binder.ID); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	restored, err := v.GetBinder(ctx, binder.ID)
	if err != nil {
		t.Fatalf("GetBinder: %v", err)
	}
	if restored.ArchiveFolderID == nil || *restored.ArchiveFolderID != closed.ID {
		t.Errorf("ArchiveFolderID = %v, placement lost", restored.ArchiveFolderID)
	}
	if restored.SysPath != filepath.Join(root, domain.DirArchives, "Closed", "Filed") {
		t.Errorf("SysPath = %q", restored.SysPath)
	}
}

func TestRestoreFallsBackToArchiveRootWhenFolderGone(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Stray", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	closed, err := v.CreateArchiveFolder(ctx, "Ephemeral", nil)
	if err != nil {
		t.Fatalf("CreateArchiveFolder: %v", err)
	}
	if _, err := v.Archive(ctx, binder.ID, &closed.ID); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if err := v.Trash(ctx, binder.ID); err != nil {
		t.Fatalf("Trash: %v", err)
	}
	if err := v.DeleteArchiveFolder(ctx, closed.ID); err != nil {
		t.Fatalf("DeleteArchiveFolder: %v", err)
	}

	if err := v.Restore(ctx, binder.ID); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	restored, err := v.GetBinder(ctx, binder.ID)
	if err != nil {
		t.Fatalf("GetBinder: %v", err)
	}
	if restored.ArchiveFolderID != nil {
		t.Errorf("ArchiveFolderID = %v, want nil fallback", restored.ArchiveFolderID)
	}
	if restored.SysPath != filepath.Join(root, domain.DirArchives, "Stray") {
		t.Errorf("SysPath = %q", restored.SysPath)
	}
}

func TestTrashArchiveFolderGroup(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	closed, err := v.CreateArchiveFolder(ctx, "Closed", nil)
	if err != nil {
		t.Fatalf("CreateArchiveFolder: %v", err)
	}
	child, err := v.CreateArchiveFolder(ctx, "Q1", &closed.ID)
	if err != nil {
		t.Fatalf("CreateArchiveFolder child: %v", err)
	}
	binder, err := v.CreateBinder(ctx, "Member", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	if _, err := v.Archive(ctx, binder.ID, &child.ID); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	if err := v.TrashArchiveFolder(ctx, closed.ID); err != nil {
		t.Fatalf("TrashArchiveFolder: %v", err)
	}

	folders, err := v.ListArchiveFolders(ctx)
	if err != nil {
		t.Fatalf("ListArchiveFolders: %v", err)
	}
	if len(folders) != 0 {
		t.Errorf("archive folders = %d after group trash", len(folders))
	}
	if _, err := v.GetBinder(ctx, binder.ID); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("member binder still visible: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, domain.DirCorbeille, "Closed", "Q1", "Member")); err != nil {
		t.Errorf("group not moved as a unit: %v", err)
	}

	if err := v.Restore(ctx, closed.ID); err != nil {
		t.Fatalf("Restore group: %v", err)
	}
	folders, err = v.ListArchiveFolders(ctx)
	if err != nil {
		t.Fatalf("ListArchiveFolders: %v", err)
	}
	if len(folders) != 2 {
		t.Fatalf("archive folders = %d after restore, want 2", len(folders))
	}
	restored, err := v.GetBinder(ctx, binder.ID)
	if err != nil {
		t.Fatalf("member binder not restored: %v", err)
	}
	if restored.SysPath != filepath.Join(root, domain.DirArchives, "Closed", "Q1", "Member") {
		t.Errorf("member SysPath = %q", restored.SysPath)
	}
}

func TestPurgeOne(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	binder, err := v.CreateBinder(ctx, "Gone", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	if err := v.Trash(ctx, binder.ID); err != nil {
		t.Fatalf("Trash: %v", err)
	}
	if err := v.PurgeOne(ctx, binder.ID); err != nil {
		t.Fatalf("PurgeOne: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, domain.DirCorbeille, "Gone")); !os.IsNotExist(err) {
		t.Errorf("purged directory still present")
	}
	if err := v.Restore(ctx, binder.ID); !errors.Is(err, application.ErrNotTrashed) {
		t.Errorf("Restore after purge = %v, want ErrNotTrashed", err)
	}
}

func TestPurgeAll(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		binder, err := v.CreateBinder(ctx, name, domain.Colors{})
		if err != nil {
			t.Fatalf("CreateBinder %s: %v", name, err)
		}
		if err := v.Trash(ctx, binder.ID); err != nil {
			t.Fatalf("Trash %s: %v", name, err)
		}
	}

	n, err := v.PurgeAll(ctx)
	if err != nil {
		t.Fatalf("PurgeAll: %v", err)
	}
	if n != 3 {
		t.Errorf("purged = %d, want 3", n)
	}
	listings, err := v.ListTrash(ctx)
	if err != nil {
		t.Fatalf("ListTrash: %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("trash not empty after purge: %d entries", len(listings))
	}
	entries, err := os.ReadDir(filepath.Join(root, domain.DirCorbeille))
	if err != nil {
		t.Fatalf("read corbeille: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("corbeille directory not empty: %d entries", len(entries))
	}
}

func TestRenameArchiveFolderRewritesMembers(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()

	closed, err := v.CreateArchiveFolder(ctx, "Old", nil)
	if err != nil {
		t.Fatalf("CreateArchiveFolder: %v", err)
	}
	binder, err := v.CreateBinder(ctx, "Member", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	if _, err := v.Archive(ctx, binder.ID, &closed.ID); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	renamed, err := v.RenameArchiveFolder(ctx, closed.ID, "New")
	if err != nil {
		t.Fatalf("RenameArchiveFolder: %v", err)
	}
	if renamed.AppPath != "/archives/New" {
		t.Errorf("AppPath = %q", renamed.AppPath)
	}

	member, err := v.GetBinder(ctx, binder.ID)
	if err != nil {
		t.Fatalf("GetBinder: %v", err)
	}
	if member.SysPath != filepath.Join(root, domain.DirArchives, "New", "Member") {
		t.Errorf("member SysPath = %q, not rewritten", member.SysPath)
	}
	if member.AppPath != "/archives/New/Member" {
		t.Errorf("member AppPath = %q", member.AppPath)
	}
}

func TestDeleteArchiveFolderCascadesOneLevel(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	parent, err := v.CreateArchiveFolder(ctx, "Parent", nil)
	if err != nil {
		t.Fatalf("CreateArchiveFolder: %v", err)
	}
	child, err := v.CreateArchiveFolder(ctx, "Child", &parent.ID)
	if err != nil {
		t.Fatalf("CreateArchiveFolder child: %v", err)
	}
	binder, err := v.CreateBinder(ctx, "Nested", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	if _, err := v.Archive(ctx, binder.ID, &child.ID); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	if err := v.DeleteArchiveFolder(ctx, parent.ID); err != nil {
		t.Fatalf("DeleteArchiveFolder: %v", err)
	}
	folders, err := v.ListArchiveFolders(ctx)
	if err != nil {
		t.Fatalf("ListArchiveFolders: %v", err)
	}
	if len(folders) != 0 {
		t.Errorf("folders = %d after cascade delete", len(folders))
	}
	if _, err := v.GetBinder(ctx, binder.ID); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("nested binder survived cascade: %v", err)
	}
}

// nestedArchiveChain builds Top/Child/Grand with a binder archived in
// the deepest folder.
func nestedArchiveChain(t *testing.T, v *Vault) (top, child, grand *domain.ArchiveFolder, binder *domain.BinderEntry) {
	t.Helper()
	ctx := context.Background()

	top, err := v.CreateArchiveFolder(ctx, "Top", nil)
	if err != nil {
		t.Fatalf("CreateArchiveFolder Top: %v", err)
	}
	child, err = v.CreateArchiveFolder(ctx, "Child", &top.ID)
	if err != nil {
		t.Fatalf("CreateArchiveFolder Child: %v", err)
	}
	grand, err = v.CreateArchiveFolder(ctx, "Grand", &child.ID)
	if err != nil {
		t.Fatalf("CreateArchiveFolder Grand: %v", err)
	}
	binder, err = v.CreateBinder(ctx, "Deep", domain.Colors{})
	if err != nil {
		t.Fatalf("CreateBinder: %v", err)
	}
	if _, err := v.Archive(ctx, binder.ID, &grand.ID); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	return top, child, grand, binder
}

func findArchiveFolder(t *testing.T, folders []*domain.ArchiveFolder, id string) *domain.ArchiveFolder {
	t.Helper()
	for _, f := range folders {
		if f.ID == id {
			return f
		}
	}
	t.Fatalf("archive folder %s not in listing", id)
	return nil
}

func TestRenameArchiveFolderRewritesNestedChildren(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()
	top, child, grand, binder := nestedArchiveChain(t, v)

	if _, err := v.RenameArchiveFolder(ctx, top.ID, "Renamed"); err != nil {
		t.Fatalf("RenameArchiveFolder: %v", err)
	}

	folders, err := v.ListArchiveFolders(ctx)
	if err != nil {
		t.Fatalf("ListArchiveFolders: %v", err)
	}
	mid := findArchiveFolder(t, folders, child.ID)
	if mid.AppPath != "/archives/Renamed/Child" {
		t.Errorf("child AppPath = %q", mid.AppPath)
	}
	deep := findArchiveFolder(t, folders, grand.ID)
	if deep.AppPath != "/archives/Renamed/Child/Grand" {
		t.Errorf("grandchild AppPath = %q", deep.AppPath)
	}
	if deep.SysPath != filepath.Join(root, domain.DirArchives, "Renamed", "Child", "Grand") {
		t.Errorf("grandchild SysPath = %q", deep.SysPath)
	}

	member, err := v.GetBinder(ctx, binder.ID)
	if err != nil {
		t.Fatalf("GetBinder: %v", err)
	}
	if member.SysPath != filepath.Join(deep.SysPath, "Deep") {
		t.Errorf("member SysPath = %q, not rewritten", member.SysPath)
	}
	if member.AppPath != "/archives/Renamed/Child/Grand/Deep" {
		t.Errorf("member AppPath = %q", member.AppPath)
	}
}

func TestTrashArchiveFolderTakesNestedFolders(t *testing.T) {
	v, root := newTestVault(t)
	ctx := context.Background()
	top, child, grand, binder := nestedArchiveChain(t, v)

	if err := v.TrashArchiveFolder(ctx, top.ID); err != nil {
		t.Fatalf("TrashArchiveFolder: %v", err)
	}

	folders, err := v.ListArchiveFolders(ctx)
	if err != nil {
		t.Fatalf("ListArchiveFolders: %v", err)
	}
	if len(folders) != 0 {
		t.Errorf("archive folders = %d after trash, nested folders left behind", len(folders))
	}
	archived, err := v.ListArchivedBinders(ctx)
	if err != nil {
		t.Fatalf("ListArchivedBinders: %v", err)
	}
	if len(archived) != 0 {
		t.Errorf("archived binders = %d after trash, deep member left behind", len(archived))
	}
	if _, err := os.Stat(filepath.Join(root, domain.DirCorbeille, "Top", "Child", "Grand", "Deep")); err != nil {
		t.Errorf("group not moved as a unit: %v", err)
	}

	if err := v.Restore(ctx, top.ID); err != nil {
		t.Fatalf("Restore group: %v", err)
	}
	folders, err = v.ListArchiveFolders(ctx)
	if err != nil {
		t.Fatalf("ListArchiveFolders: %v", err)
	}
	if len(folders) != 3 {
		t.Fatalf("archive folders = %d after restore, want 3", len(folders))
	}
	mid := findArchiveFolder(t, folders, child.ID)
	if mid.AppPath != "/archives/Top/Child" {
		t.Errorf("child AppPath = %q after restore", mid.AppPath)
	}
	deep := findArchiveFolder(t, folders, grand.ID)
	if deep.AppPath != "/archives/Top/Child/Grand" {
		t.Errorf("grandchild AppPath = %q after restore", deep.AppPath)
	}
	restored, err := v.GetBinder(ctx, binder.ID)
	if err != nil {
		t.Fatalf("member binder not restored: %v", err)
	}
	if restored.SysPath != filepath.Join(root, domain.DirArchives, "Top", "Child", "Grand", "Deep") {
		t.Errorf("member SysPath = %q after restore", restored.SysPath)
	}
	if restored.AppPath != "/archives/Top/Child/Grand/Deep" {
		t.Errorf("member AppPath = %q after restore", restored.AppPath)
	}
}
