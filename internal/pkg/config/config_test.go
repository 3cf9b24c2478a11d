package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected 24h session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.StorageDriver != DriverRedis || !cfg.SeedCatalog {
		t.Fatalf("unexpected storage defaults: %+v", cfg)
	}
	if cfg.Collections.AsyncWrites || cfg.Collections.Workers != 4 {
		t.Fatalf("unexpected collection defaults: %+v", cfg.Collections)
	}
	if cfg.Mongo.Database != "plots" || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected store defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if cfg.Attendance.RadiusM != 500 {
		t.Fatalf("expected 500m radius, got %g", cfg.Attendance.RadiusM)
	}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development env")
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":              "s3cret",
		"ENV":                     "production",
		"SESSION_TTL":             "90m",
		"STORAGE_DRIVER":          "memory",
		"COLLECTION_ASYNC_WRITES": "true",
		"COLLECTION_WORKERS":      "8",
		"ATTENDANCE_RADIUS_M":     "250.5",
		"REDIS_DB":                "3",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IsDevelopment() || cfg.SessionTTL != 90*time.Minute {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.StorageDriver != DriverMemory || !cfg.Collections.AsyncWrites || cfg.Collections.Workers != 8 {
		t.Fatalf("unexpected storage overrides: %+v", cfg)
	}
	if cfg.Attendance.RadiusM != 250.5 || cfg.Redis.DB != 3 {
		t.Fatalf("unexpected overrides: %+v %+v", cfg.Attendance, cfg.Redis)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "missing secret", env: map[string]string{}, want: "JWT_SECRET"},
		{name: "bad driver", env: map[string]string{"JWT_SECRET": "x", "STORAGE_DRIVER": "etcd"}, want: "STORAGE_DRIVER"},
		{name: "zero workers", env: map[string]string{"JWT_SECRET": "x", "COLLECTION_WORKERS": "0"}, want: "COLLECTION_WORKERS"},
		{name: "negative radius", env: map[string]string{"JWT_SECRET": "x", "ATTENDANCE_RADIUS_M": "-1"}, want: "ATTENDANCE_RADIUS_M"},
		// Parse failures name the struct field, not the variable.
		{name: "malformed ttl", env: map[string]string{"JWT_SECRET": "x", "SESSION_TTL": "soon"}, want: "SessionTTL"},
		{name: "malformed workers", env: map[string]string{"JWT_SECRET": "x", "COLLECTION_WORKERS": "many"}, want: "Workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(context.Background(), envconfig.MapLookuper(tt.env))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error to mention %s, got %v", tt.want, err)
			}
		})
	}
}
