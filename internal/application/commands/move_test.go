package commands

import "testing"

func TestMoveToArchiveFolderCommand_Validate(t *testing.T) {
	targetKey := "archive_folder_3"
	badTarget := "file_3"

	tests := []struct {
		name     string
		binderID string
		targetID *string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid move to folder",
			binderID: "classeur_1",
			targetID: &targetKey,
			wantErr:  false,
		},
		{
			name:     "valid move to archive root",
			binderID: "classeur_1",
			targetID: nil,
			wantErr:  false,
		},
		{
			name:     "wrong binder key",
			binderID: "archive_folder_1",
			wantErr:  true,
			errMsg:   "expected binder key",
		},
		{
			name:     "wrong target key",
			binderID: "classeur_1",
			targetID: &badTarget,
			wantErr:  true,
			errMsg:   "expected archive folder key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &MoveToArchiveFolderCommand{BinderID: tt.binderID, TargetFolderID: tt.targetID}
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
