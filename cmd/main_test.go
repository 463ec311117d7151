package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

const scorebugDoc = `<?xml version="1.0" encoding="UTF-8"?>
<AfterEffectsProject xmlns="http://www.adobe.com/products/aftereffects/project">
  <Composition name="Hard_Card">
    <Layers>
      <Layer name="zhomeTeamName" type="text"/>
    </Layers>
  </Composition>
  <Composition name="Scorebug">
    <Layers>
      <Layer name="homeTeamName" type="text"/>
      <Layer name="homeTeamPrimaryColor" type="shape"/>
      <Layer name="Background" type="solid"/>
    </Layers>
  </Composition>
</AfterEffectsProject>`

// run executes the command tree and returns its stdout.
func run(args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeDoc(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "scorebug.xml")
	if err := os.WriteFile(p, []byte(scorebugDoc), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestVarsCommand(t *testing.T) {
	convey.Convey("Given the vars command", t, func() {
		convey.Convey("When filtering by category and type", func() {
			out, err := run("vars", "--category", "team", "--type", "logo", "-o", "json")

			convey.Convey("Then only matching variables are printed", func() {
				convey.So(err, convey.ShouldBeNil)
				var vars []struct {
					Name     string `json:"name"`
					DataType string `json:"data_type"`
				}
				convey.So(json.Unmarshal([]byte(out), &vars), convey.ShouldBeNil)
				convey.So(vars, convey.ShouldNotBeEmpty)
				for _, v := range vars {
					convey.So(v.DataType, convey.ShouldEqual, "logo")
				}
			})
		})

		convey.Convey("When searching in YAML", func() {
			out, err := run("vars", "--search", "homeTeamNme", "--limit", "3")
			convey.So(err, convey.ShouldBeNil)
			var vars []map[string]any
			convey.So(yaml.Unmarshal([]byte(out), &vars), convey.ShouldBeNil)
			convey.So(len(vars), convey.ShouldBeLessThanOrEqualTo, 3)
			convey.So(out, convey.ShouldContainSubstring, "homeTeamName")
		})

		convey.Convey("When the output format is unknown", func() {
			_, err := run("vars", "-o", "xml")
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestValidateCommand(t *testing.T) {
	convey.Convey("Given the validate command", t, func() {
		convey.Convey("Then a balanced expression passes", func() {
			out, err := run("validate", `comp("Hard_Card").layer("zhomeTeamName").text.sourceText`)
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "valid: true")
		})

		convey.Convey("Then an unbalanced expression fails with its violations", func() {
			out, err := run("validate", "-o", "json", `comp("Hard_Card"`)
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(out, convey.ShouldContainSubstring, `"valid": false`)
			convey.So(out, convey.ShouldContainSubstring, "parentheses")
		})
	})
}

func TestAnalyzeCommand(t *testing.T) {
	convey.Convey("Given a document on disk", t, func() {
		doc := writeDoc(t)

		convey.Convey("When analyzing it", func() {
			out, err := run("analyze", "-o", "json", doc)

			convey.Convey("Then recommendations are printed per file", func() {
				convey.So(err, convey.ShouldBeNil)
				var reports []fileReport
				convey.So(json.Unmarshal([]byte(out), &reports), convey.ShouldBeNil)
				convey.So(reports, convey.ShouldHaveLength, 1)
				convey.So(reports[0].Path, convey.ShouldEqual, doc)
				convey.So(reports[0].Count, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When grouping and filtering by kind", func() {
			out, err := run("analyze", "-o", "json", "--group", "--kind", "text", doc)
			convey.So(err, convey.ShouldBeNil)
			var reports []fileReport
			convey.So(json.Unmarshal([]byte(out), &reports), convey.ShouldBeNil)
			convey.So(reports[0].Count, convey.ShouldEqual, 1)
			convey.So(reports[0].Groups["exact"], convey.ShouldHaveLength, 1)
		})

		convey.Convey("When one of the files is missing", func() {
			_, err := run("analyze", doc, filepath.Join(t.TempDir(), "missing.xml"))
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "1 of 2 documents failed")
		})

		convey.Convey("When the threshold is out of range", func() {
			_, err := run("analyze", "--min-confidence", "3", doc)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestApplyFindRemoveCommands(t *testing.T) {
	convey.Convey("Given a document on disk", t, func() {
		doc := writeDoc(t)
		out := filepath.Join(t.TempDir(), "bound.xml")

		convey.Convey("When neither --plan nor --auto is given", func() {
			_, err := run("apply", doc)
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("When auto-applying to a new file", func() {
			_, err := run("apply", "--auto", "--out", out, doc)
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then find reports the written expressions", func() {
				found, err := run("find", "-o", "json", "--comp", "Scorebug", out)
				convey.So(err, convey.ShouldBeNil)
				convey.So(found, convey.ShouldContainSubstring, `"count": 2`)
			})

			convey.Convey("And find can export them", func() {
				export := filepath.Join(t.TempDir(), "found.json")
				_, err := run("find", "--export", export, out)
				convey.So(err, convey.ShouldBeNil)
				b, err := os.ReadFile(export)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldContainSubstring, `"message"`)
			})

			convey.Convey("And remove deletes one of them", func() {
				_, err := run("remove", out, "Scorebug", "homeTeamName", "textSource")
				convey.So(err, convey.ShouldBeNil)
				found, err := run("find", "-o", "json", out)
				convey.So(err, convey.ShouldBeNil)
				convey.So(found, convey.ShouldContainSubstring, `"count": 1`)
			})

			convey.Convey("And the input is left untouched", func() {
				b, err := os.ReadFile(doc)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldEqual, scorebugDoc)
			})
		})

		convey.Convey("When applying a plan file", func() {
			plan := filepath.Join(t.TempDir(), "plan.json")
			convey.So(os.WriteFile(plan, []byte(`[
  {"composition":"Scorebug","layer":"homeTeamName","target":"textSource","expression":"comp(\"Hard_Card\").layer(\"zhomeTeamName\").text.sourceText"},
  {"composition":"Scorebug","layer":"Background","target":"opacity","expression":"100","enabled":false}
]`), 0o600), convey.ShouldBeNil)
			res, err := run("apply", "-o", "json", "--plan", plan, "--out", out, doc)

			convey.Convey("Then enabled items are written and disabled ones skipped", func() {
				convey.So(err, convey.ShouldBeNil)
				var rep applyReport
				convey.So(json.Unmarshal([]byte(res), &rep), convey.ShouldBeNil)
				convey.So(rep.Result.Added, convey.ShouldHaveLength, 1)
				convey.So(rep.Result.Skipped, convey.ShouldEqual, 1)
				convey.So(rep.Saved, convey.ShouldEqual, out)
			})
		})

		convey.Convey("When a stop-on-error plan fails", func() {
			plan := filepath.Join(t.TempDir(), "plan.json")
			convey.So(os.WriteFile(plan, []byte(`[{"composition":"Scorebug","layer":"nope","target":"textSource","expression":"1"}]`), 0o600), convey.ShouldBeNil)
			_, err := run("apply", "--plan", plan, "--stop-on-error", "--out", out, doc)

			convey.Convey("Then nothing is saved", func() {
				convey.So(err, convey.ShouldNotBeNil)
				_, statErr := os.Stat(out)
				convey.So(os.IsNotExist(statErr), convey.ShouldBeTrue)
			})
		})
	})
}

func TestConfigFlag(t *testing.T) {
	convey.Convey("Given a config file", t, func() {
		t.Setenv("HARDCARD_CONFIG", "")
		cfgPath := filepath.Join(t.TempDir(), "hardcard.yaml")
		convey.So(os.WriteFile(cfgPath, []byte("min_confidence: 1\nworkers: 2\n"), 0o600), convey.ShouldBeNil)
		doc := writeDoc(t)

		convey.Convey("When analyzing with --config", func() {
			out, err := run("analyze", "-o", "json", "--config", cfgPath, doc)

			convey.Convey("Then the configured threshold applies", func() {
				convey.So(err, convey.ShouldBeNil)
				var reports []fileReport
				convey.So(json.Unmarshal([]byte(out), &reports), convey.ShouldBeNil)
				convey.So(reports[0].Count, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When the config is invalid", func() {
			bad := filepath.Join(t.TempDir(), "bad.yaml")
			convey.So(os.WriteFile(bad, []byte("pattern_mode: fancy\n"), 0o600), convey.ShouldBeNil)
			_, err := run("vars", "--config", bad)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestMetricsConfig(t *testing.T) {
	convey.Convey("Given a config naming the metrics", t, func() {
		t.Setenv("HARDCARD_CONFIG", "")
		cfgPath := filepath.Join(t.TempDir(), "hardcard.yaml")
		convey.So(os.WriteFile(cfgPath, []byte("metrics_namespace: studio\nmetrics_prefix: card\nmetrics_labels:\n  site: east\n"), 0o600), convey.ShouldBeNil)

		c := &cli{format: formatJSON, logFormat: "text", configPath: cfgPath}
		root := newRootCmd()
		root.SetErr(io.Discard)
		root.SetContext(context.Background())
		convey.So(c.setup(root, nil), convey.ShouldBeNil)
		defer c.svc.Stop()

		convey.Convey("When a document is analyzed and /healthz is scraped", func() {
			_, err := run("analyze", "--config", cfgPath, writeDoc(t))
			convey.So(err, convey.ShouldBeNil)

			srv := c.newHTTPServer(":0")
			w := httptest.NewRecorder()
			srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			convey.Convey("Then the exposition uses the configured names and labels", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "studio_toolkit_card_layer_matches_total")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, `site="east"`)
			})
		})
	})
}

func TestHTTPServer(t *testing.T) {
	convey.Convey("Given the serve wiring", t, func() {
		t.Setenv("HARDCARD_CONFIG", "")
		c := &cli{format: formatJSON, logFormat: "text"}
		root := newRootCmd()
		root.SetErr(io.Discard)
		root.SetContext(context.Background())
		convey.So(c.setup(root, nil), convey.ShouldBeNil)
		defer c.svc.Stop()

		srv := c.newHTTPServer(":0")

		convey.Convey("Then every route is reachable", func() {
			for _, path := range []string{"/healthz", "/stats", "/variables", "/openapi.yaml", "/api-docs"} {
				w := httptest.NewRecorder()
				srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			}
		})

		convey.Convey("And serve stops when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			convey.So(c.serve(ctx, "127.0.0.1:0"), convey.ShouldBeNil)
		})
	})
}
