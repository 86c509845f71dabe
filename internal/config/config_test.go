package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Given a default config", t, func() {
		cfg := New()

		Convey("Then defaults match the production feed", func() {
			So(cfg.Addr, ShouldEqual, ":8080")
			So(cfg.APIBaseURL, ShouldEqual, "https://statsapi.mlb.com/api/v1")
			So(cfg.SportIDs, ShouldResemble, []int{1})
			So(cfg.RefreshSeconds, ShouldEqual, 30)
			So(cfg.FetchRetries, ShouldEqual, 3)
		})

		Convey("Then interval accessors convert units", func() {
			So(cfg.RefreshInterval(), ShouldEqual, 30*time.Second)
			So(cfg.HTTPTimeout(), ShouldEqual, 12*time.Second)
			So(cfg.RetryBackoff(), ShouldEqual, 500*time.Millisecond)
			So(cfg.ScheduleTTL(), ShouldEqual, 60*time.Second)
			So(cfg.GameTTL(), ShouldEqual, 30*time.Second)
		})

		Convey("Then the defaults validate", func() {
			So(cfg.validate(), ShouldBeNil)
		})
	})
}

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file and no env overrides", t, func() {
		cfg, err := Load(context.Background())

		So(err, ShouldBeNil)
		So(cfg.Addr, ShouldEqual, ":8080")
		So(cfg.SportIDs, ShouldResemble, []int{1})
	})
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("LGT_ADDR", ":9999")
	t.Setenv("LGT_REFRESH_SECONDS", "15")
	t.Setenv("LGT_LOG_LEVEL", "debug")

	Convey("Given LGT_-prefixed environment overrides", t, func() {
		cfg, err := Load(context.Background())
		So(err, ShouldBeNil)

		Convey("Then env values win over defaults", func() {
			So(cfg.Addr, ShouldEqual, ":9999")
			So(cfg.RefreshSeconds, ShouldEqual, 15)
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.APIBaseURL, ShouldEqual, "https://statsapi.mlb.com/api/v1")
		})
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "addr: \":7070\"\ndata_dir: \"/srv/lookups\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LGT_CONFIG", path)

	Convey("Given a YAML file named by LGT_CONFIG", t, func() {
		cfg, err := Load(context.Background())
		So(err, ShouldBeNil)

		Convey("Then file values win over defaults", func() {
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.DataDir, ShouldEqual, "/srv/lookups")
		})
	})
}

func TestLoadFileEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LGT_CONFIG", path)
	t.Setenv("LGT_ADDR", ":6060")

	Convey("Given both a config file and an env override", t, func() {
		cfg, err := Load(context.Background())

		So(err, ShouldBeNil)
		So(cfg.Addr, ShouldEqual, ":6060")
	})
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("LGT_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	Convey("Given an unreadable config file", t, func() {
		_, err := Load(context.Background())
		So(errors.Is(err, ErrLoadConfig), ShouldBeTrue)
	})
}

func TestValidate(t *testing.T) {
	Convey("Given invalid settings", t, func() {
		cases := map[string]func(*Config){
			"empty addr":           func(c *Config) { c.Addr = "" },
			"empty base url":       func(c *Config) { c.APIBaseURL = "" },
			"refresh too fast":     func(c *Config) { c.RefreshSeconds = 2 },
			"zero retries":         func(c *Config) { c.FetchRetries = 0 },
			"inverted workers":     func(c *Config) { c.MinFetchWorkers = 8; c.MaxFetchWorkers = 2 },
			"no sport ids":         func(c *Config) { c.SportIDs = nil },
			"malformed date":       func(c *Config) { c.Date = "08/30/2026" },
			"date missing padding": func(c *Config) { c.Date = "2026-8-3" },
		}

		for name, mutate := range cases {
			Convey("Then validation rejects "+name, func() {
				cfg := New()
				mutate(cfg)
				So(errors.Is(cfg.validate(), ErrInvalidConfig), ShouldBeTrue)
			})
		}
	})

	Convey("Given a pinned valid date", t, func() {
		cfg := New()
		cfg.Date = "2026-08-30"
		So(cfg.validate(), ShouldBeNil)
	})
}
