package commands

import "testing"

func TestTrashCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		binderID string
		wantErr  bool
	}{
		{name: "valid binder key", binderID: "classeur_4", wantErr: false},
		{name: "empty key", binderID: "", wantErr: true},
		{name: "folder key", binderID: "dossier_4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &TrashCommand{BinderID: tt.binderID}
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRestoreCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entryID string
		wantErr bool
	}{
		{name: "binder entry", entryID: "classeur_4", wantErr: false},
		{name: "archive folder entry", entryID: "archive_folder_2", wantErr: false},
		{name: "folder key", entryID: "dossier_4", wantErr: true},
		{name: "garbage", entryID: "whatever", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &RestoreCommand{EntryID: tt.entryID}
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPurgeOneCommand_Validate(t *testing.T) {
	if err := (&PurgeOneCommand{EntryID: "classeur_1"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (&PurgeOneCommand{EntryID: "file_1"}).Validate(); err == nil {
		t.Error("expected error for file key")
	}
}
