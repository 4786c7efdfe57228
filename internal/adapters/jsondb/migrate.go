package jsondb

import "classiflyer/internal/domain"

// migration upgrades a raw index document from exactly one version to
// the next. Migrations are pure: they touch only the document.
type migration struct {
	from  int
	apply func(doc map[string]any)
}

// The ordered upgrade chain. Documents written before the version field
// existed report version 0.
var migrations = []migration{
	{from: 0, apply: migrateV0},
}

// Migrate applies every pending migration in order and stamps the
// current schema version. Returns true when the document changed.
// It runs on every load, not as a one-time upgrade: older files must
// stay readable indefinitely.
func Migrate(doc map[string]any) bool {
	version := docVersion(doc)
	if version >= domain.SchemaVersion {
		return false
	}
	for _, m := range migrations {
		if version == m.from {
			m.apply(doc)
			version++
		}
	}
	doc["version"] = version
	return true
}

func docVersion(doc map[string]any) int {
	switch v := doc["version"].(type) {
	case float64:
		return int(v)
	default:
		return 0
	}
}

// migrateV0 normalizes the legacy unversioned shape:
//   - archives serialized as an array (or missing entirely) becomes
//     {folders: {}, classeurs: {}}
//   - the corbeille mapping is created when absent
//   - nextId gains any missing per-kind counter, starting at 1
func migrateV0(doc map[string]any) {
	archives, ok := doc["archives"].(map[string]any)
	if !ok {
		archives = map[string]any{}
		doc["archives"] = archives
	}
	if _, ok := archives["folders"].(map[string]any); !ok {
		archives["folders"] = map[string]any{}
	}
	if _, ok := archives["classeurs"].(map[string]any); !ok {
		archives["classeurs"] = map[string]any{}
	}

	if _, ok := doc["corbeille"].(map[string]any); !ok {
		doc["corbeille"] = map[string]any{}
	}

	if _, ok := doc["mes_classeurs"].(map[string]any); !ok {
		doc["mes_classeurs"] = map[string]any{}
	}

	nextID, ok := doc["nextId"].(map[string]any)
	if !ok {
		nextID = map[string]any{}
		doc["nextId"] = nextID
	}
	for _, kind := range []string{"classeurs", "dossiers", "fichiers", "archiveFolders"} {
		if _, ok := nextID[kind].(float64); !ok {
			nextID[kind] = float64(1)
		}
	}
}
