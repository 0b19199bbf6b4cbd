package database

import (
	"io/fs"
	"strings"
	"testing"

	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogLevel(t *testing.T) {
	cases := map[string]gormlogger.LogLevel{
		"debug": gormlogger.Info,
		"info":  gormlogger.Warn,
		"warn":  gormlogger.Warn,
		"error": gormlogger.Error,
	}
	for in, want := range cases {
		if got := gormLogLevel(in); got != want {
			t.Errorf("gormLogLevel(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestMigrations_VacancyStatusUniqueOnUnit(t *testing.T) {
	b, err := fs.ReadFile(migrationsFS, "migrations/000001_init.up.sql")
	if err != nil {
		t.Fatalf("read embedded migration: %v", err)
	}
	sql := string(b)
	for _, want := range []string{
		"CONSTRAINT vacancy_statuses_unit_id_key UNIQUE (unit_id)",
		"REFERENCES units (unit_id) ON DELETE CASCADE",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("migration missing %q", want)
		}
	}
}
