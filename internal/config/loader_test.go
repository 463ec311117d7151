package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/hardcard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			// Clear any existing environment variables
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.StoreComposition, convey.ShouldEqual, "Hard_Card")
				convey.So(cfg.PatternMode, convey.ShouldEqual, "legacy")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("HARDCARD_ADDR", ":8080")
			_ = os.Setenv("HARDCARD_MIN_CONFIDENCE", "0.75")
			_ = os.Setenv("HARDCARD_WORKERS", "16")
			_ = os.Setenv("HARDCARD_CASE_SENSITIVE", "true")
			_ = os.Setenv("HARDCARD_PATTERN_MODE", "normalized")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MinConfidence, convey.ShouldEqual, 0.75)
				convey.So(cfg.Workers, convey.ShouldEqual, 16)
				convey.So(cfg.CaseSensitive, convey.ShouldBeTrue)
				convey.So(cfg.PatternMode, convey.ShouldEqual, "normalized")
			})
		})

		convey.Convey("When the metrics namespace comes from the environment", func() {
			_ = os.Setenv("HARDCARD_METRICS_NAMESPACE", "studio_a")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "studio_a")
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
# template defaults for the studio
addr: ":9090"
store_composition: "Data_Store"
logo_max_width: 320
logo_max_height: 180
image_scale_mode: cover
workers: 4
metrics_prefix: studio
metrics_buckets: [1, 10, 100]
metrics_labels:
  site: east
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("HARDCARD_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.StoreComposition, convey.ShouldEqual, "Data_Store")
				convey.So(cfg.LogoMaxWidth, convey.ShouldEqual, 320)
				convey.So(cfg.LogoMaxHeight, convey.ShouldEqual, 180)
				convey.So(cfg.ImageScaleMode, convey.ShouldEqual, "cover")
				convey.So(cfg.Workers, convey.ShouldEqual, 4)
				convey.So(cfg.MinConfidence, convey.ShouldEqual, 0.6)
				convey.So(cfg.MetricsPrefix, convey.ShouldEqual, "studio")
				convey.So(cfg.MetricsBuckets, convey.ShouldResemble, []float64{1, 10, 100})
				convey.So(cfg.MetricsLabels, convey.ShouldResemble, map[string]string{"site": "east"})
				convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "hardcard")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
workers: 4
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("HARDCARD_CONFIG", tmpFile)
			_ = os.Setenv("HARDCARD_WORKERS", "12") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090") // From file
				convey.So(cfg.Workers, convey.ShouldEqual, 12)   // Overridden by env
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(t, `invalid: yaml: content: [`)
			_ = os.Setenv("HARDCARD_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("HARDCARD_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("HARDCARD_WORKERS", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When a loaded value fails validation", func() {
			_ = os.Setenv("HARDCARD_PATTERN_MODE", "smart")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "pattern_mode")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("HARDCARD_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"HARDCARD_CONFIG",
		"HARDCARD_ADDR",
		"HARDCARD_MIN_CONFIDENCE",
		"HARDCARD_WORKERS",
		"HARDCARD_CASE_SENSITIVE",
		"HARDCARD_PATTERN_MODE",
		"HARDCARD_METRICS_NAMESPACE",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	tmpFile, err := os.CreateTemp(t.TempDir(), "hardcard-config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatal(err)
	}
	return tmpFile.Name()
}
