package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func writeConfig(t *testing.T, apiBase string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf("api_base = %q\ncredentials_path = %q\nlog_level = \"error\"\nlog_dir = %q\n",
		apiBase, filepath.Join(dir, "credentials.toml"), dir)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenLifecycle(t *testing.T) {
	cfg := writeConfig(t, "http://127.0.0.1:1/")

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "editor",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	out, err := execute(t, "--config", cfg, "token", "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "token:   none") {
		t.Fatalf("status before set = %q", out)
	}

	if _, err := execute(t, "--config", cfg, "token", "set", signed); err != nil {
		t.Fatalf("set: %v", err)
	}
	out, err = execute(t, "--config", cfg, "token", "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, want := range []string{"token:   present", "subject: editor", "(valid)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status missing %q: %q", want, out)
		}
	}

	if _, err := execute(t, "--config", cfg, "token", "clear"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	out, _ = execute(t, "--config", cfg, "token", "status")
	if !strings.Contains(out, "token:   none") {
		t.Fatalf("status after clear = %q", out)
	}
}

func TestTokenSet_Opaque(t *testing.T) {
	cfg := writeConfig(t, "http://127.0.0.1:1/")
	if _, err := execute(t, "--config", cfg, "token", "set", "abc123"); err != nil {
		t.Fatalf("set: %v", err)
	}
	out, err := execute(t, "--config", cfg, "token", "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "format:  opaque") {
		t.Fatalf("status = %q, want opaque format", out)
	}
}

func TestFetchHomepage(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":200,"msg":"ok","data":{
			"isPublish":"0",
			"carouselImageLists":[{"id":1,"imageUrl":"live.png","imageName":"Live"}],
			"carouselImageListsTemp":[{"id":2,"imageUrl":"draft.png","imageName":"Draft"}]
		}}`))
	}))
	defer srv.Close()

	cfg := writeConfig(t, srv.URL)
	out, err := execute(t, "--config", cfg, "fetch", "homepage", "--resolved", "-o", "yaml")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !strings.HasSuffix(gotPath, "/crm-website/homepageConfig/display") {
		t.Fatalf("request path = %q", gotPath)
	}
	for _, want := range []string{"published: false", "imageName: Draft"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Live") {
		t.Fatalf("resolved output leaked live fields:\n%s", out)
	}
}

func TestFetchPreviewFlag(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"code":200,"msg":"ok","data":{"isPublish":"1"}}`))
	}))
	defer srv.Close()

	cfg := writeConfig(t, srv.URL)
	if _, err := execute(t, "--config", cfg, "--preview", "--page-query", "type=mainPage,product", "fetch", "product"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !strings.HasSuffix(gotPath, "/crm-website/productConfig/preview") {
		t.Fatalf("request path = %q, want preview endpoint", gotPath)
	}
}

func TestFetch_RejectsBadInput(t *testing.T) {
	cfg := writeConfig(t, "http://127.0.0.1:1/")
	if _, err := execute(t, "--config", cfg, "fetch", "menu"); err == nil {
		t.Fatalf("fetch menu succeeded, want invalid argument error")
	}
	if _, err := execute(t, "--config", cfg, "fetch", "homepage", "-o", "xml"); err == nil {
		t.Fatalf("fetch -o xml succeeded, want format error")
	}
}
