package jsondb

import (
	"encoding/json"
	"testing"

	"classiflyer/internal/domain"
)

func TestMigrateLegacyArrayArchives(t *testing.T) {
	doc := map[string]any{}
	if err := json.Unmarshal([]byte(`{"archives": [], "mes_classeurs": {}}`), &doc); err != nil {
		t.Fatal(err)
	}

	if !Migrate(doc) {
		t.Fatal("expected migration to report a change")
	}

	archives, ok := doc["archives"].(map[string]any)
	if !ok {
		t.Fatalf("archives not coerced to object: %T", doc["archives"])
	}
	if _, ok := archives["folders"].(map[string]any); !ok {
		t.Error("archives.folders missing")
	}
	if _, ok := archives["classeurs"].(map[string]any); !ok {
		t.Error("archives.classeurs missing")
	}
	if _, ok := doc["corbeille"].(map[string]any); !ok {
		t.Error("corbeille missing")
	}
	if v, _ := doc["version"].(int); v != domain.SchemaVersion {
		t.Errorf("version = %v, want %d", doc["version"], domain.SchemaVersion)
	}
}

func TestMigratePreservesCounters(t *testing.T) {
	doc := map[string]any{
		"nextId": map[string]any{
			"classeurs": float64(7),
		},
	}

	Migrate(doc)

	nextID := doc["nextId"].(map[string]any)
	if nextID["classeurs"].(float64) != 7 {
		t.Errorf("classeurs counter = %v, want preserved 7", nextID["classeurs"])
	}
	for _, kind := range []string{"dossiers", "fichiers", "archiveFolders"} {
		if nextID[kind].(float64) != 1 {
			t.Errorf("%s counter = %v, want default 1", kind, nextID[kind])
		}
	}
}

func TestMigrateCurrentVersionIsNoop(t *testing.T) {
	doc := map[string]any{
		"version":  float64(domain.SchemaVersion),
		"archives": map[string]any{"folders": map[string]any{}, "classeurs": map[string]any{}},
	}
	if Migrate(doc) {
		t.Error("migration of a current document reported a change")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	doc := map[string]any{"archives": []any{}}
	if !Migrate(doc) {
		t.Fatal("first migration should change the document")
	}
	if Migrate(doc) {
		t.Error("second migration should be a no-op")
	}
}
