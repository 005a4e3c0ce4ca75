package imagestore

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func upload(t *testing.T, field, name, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File[field][0]
}

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, nil, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	path, err := store.Save(upload(t, "image", "photo.png", "pixels"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(path, PublicPrefix+"/") {
		t.Fatalf("path %q does not start with %s/", path, PublicPrefix)
	}
	if !strings.HasSuffix(path, ".webp") {
		t.Fatalf("path %q does not end with .webp", path)
	}

	onDisk := filepath.Join(dir, filepath.Base(path))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "pixels" {
		t.Fatalf("stored content = %q, want pixels", data)
	}

	if err := store.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Fatalf("file still exists after remove")
	}

	// removing again must not fail
	if err := store.Remove(path); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestRemoveEmptyPath(t *testing.T) {
	store, err := New(t.TempDir(), nil, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Remove(""); err != nil {
		t.Fatalf("remove empty: %v", err)
	}
}

func TestRemoveHonorsBasenameOnly(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, nil, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	outside := filepath.Join(t.TempDir(), "secret.txt")
	if err := os.WriteFile(outside, []byte("keep"), 0o644); err != nil {
		t.Fatalf("write outside file: %v", err)
	}

	if err := store.Remove("/img/../" + outside); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(outside); err != nil {
		t.Fatalf("file outside the managed dir was touched: %v", err)
	}
}

func TestSaveNilHeader(t *testing.T) {
	store, err := New(t.TempDir(), nil, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Save(nil); err == nil {
		t.Fatal("expected error for nil upload")
	}
}
