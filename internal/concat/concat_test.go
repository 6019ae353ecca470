package concat

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteManifest(t *testing.T) {
	var b strings.Builder
	sources := []string{
		"/audio/Tale - 01.mp3",
		"/audio/Don't Stop - 02.mp3",
	}
	if err := WriteManifest(&b, sources); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	want := "file '/audio/Tale - 01.mp3'\n" +
		`file '/audio/Don'\''t Stop - 02.mp3'` + "\n"
	if b.String() != want {
		t.Errorf("manifest:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestMerge_CleansManifestOnFailure(t *testing.T) {
	tmp := t.TempDir()
	m := &Merger{Bin: filepath.Join(tmp, "no-such-ffmpeg"), TempDir: tmp}

	res := m.Merge(context.Background(),
		[]string{"/a/x - 01.mp3", "/a/x - 02.mp3"},
		filepath.Join(tmp, "x.mp3"))
	if res.OK() {
		t.Fatal("merge with a missing binary must fail")
	}

	assertNoManifests(t, tmp)
}

func TestMerge_CleansManifestOnSuccess(t *testing.T) {
	tmp := t.TempDir()
	// "true" ignores its arguments and exits 0, standing in for ffmpeg.
	m := &Merger{Bin: "true", TempDir: tmp}

	res := m.Merge(context.Background(),
		[]string{"/a/x - 01.mp3", "/a/x - 02.mp3"},
		filepath.Join(tmp, "x.mp3"))
	if !res.OK() {
		t.Fatalf("merge: %v", res.Err)
	}

	assertNoManifests(t, tmp)
}

func TestMerge_ManifestWriteFailure(t *testing.T) {
	m := &Merger{Bin: "true", TempDir: filepath.Join(t.TempDir(), "missing-dir")}

	res := m.Merge(context.Background(), []string{"/a/x - 01.mp3"}, "/a/x.mp3")
	if res.OK() {
		t.Fatal("merge must fail when the manifest cannot be written")
	}
	if !strings.Contains(res.Err.Error(), "manifest") {
		t.Errorf("error should mention the manifest: %v", res.Err)
	}
}

func TestResult_OK(t *testing.T) {
	if !(Result{}).OK() {
		t.Error("empty Result must be OK")
	}
	if (Result{Err: os.ErrNotExist}).OK() {
		t.Error("Result with Err must not be OK")
	}
}

// assertNoManifests fails if any transient manifest remains in dir.
func assertNoManifests(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "mp3weld-*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("manifest files left behind: %v", matches)
	}
}
