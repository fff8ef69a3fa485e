package postgres

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"central-gpt/pkg/log"
)

func TestConnect_RequiresDSN(t *testing.T) {
	if _, err := Connect(context.Background(), log.NewNop(), Config{}); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}

func TestMigrations_Embedded(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("expected embedded migrations")
	}

	raw, err := migrations.ReadFile(names[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, table := range []string{"app_config", "users", "testimonials"} {
		if !strings.Contains(string(raw), "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("schema is missing table %s", table)
		}
	}
}
