package commands

import "testing"

func TestRenameBinderCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		binderID string
		newName  string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid",
			binderID: "classeur_1",
			newName:  "Invoices2024",
			wantErr:  false,
		},
		{
			name:     "empty new name",
			binderID: "classeur_1",
			newName:  "",
			wantErr:  true,
			errMsg:   "new name is required",
		},
		{
			name:     "whitespace new name",
			binderID: "classeur_1",
			newName:  "  ",
			wantErr:  true,
			errMsg:   "new name is required",
		},
		{
			name:     "wrong key kind",
			binderID: "archive_folder_1",
			newName:  "Invoices2024",
			wantErr:  true,
			errMsg:   "expected binder key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &RenameBinderCommand{BinderID: tt.binderID, NewName: tt.newName}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestRenameFolderCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		binderID string
		folderID string
		newName  string
		wantErr  bool
	}{
		{name: "valid", binderID: "classeur_1", folderID: "dossier_1", newName: "2025", wantErr: false},
		{name: "swapped keys", binderID: "dossier_1", folderID: "classeur_1", newName: "2025", wantErr: true},
		{name: "empty name", binderID: "classeur_1", folderID: "dossier_1", newName: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &RenameFolderCommand{BinderID: tt.binderID, FolderID: tt.folderID, NewName: tt.newName}
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenameArchiveFolderCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		folderID string
		newName  string
		wantErr  bool
	}{
		{name: "valid", folderID: "archive_folder_2", newName: "Closed", wantErr: false},
		{name: "binder key", folderID: "classeur_2", newName: "Closed", wantErr: true},
		{name: "empty name", folderID: "archive_folder_2", newName: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &RenameArchiveFolderCommand{FolderID: tt.folderID, NewName: tt.newName}
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateColorsCommand_Validate(t *testing.T) {
	if err := (&UpdateColorsCommand{BinderID: "classeur_1"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (&UpdateColorsCommand{BinderID: "nope"}).Validate(); err == nil {
		t.Error("expected error for invalid key")
	}
}
