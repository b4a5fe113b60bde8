package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetName(t *testing.T) {
	tests := []struct {
		goos   string
		goarch string
		want   string
	}{
		{"darwin", "amd64", "quizdeck_Darwin_all.tar.gz"},
		{"darwin", "arm64", "quizdeck_Darwin_all.tar.gz"},
		{"linux", "amd64", "quizdeck_Linux_x86_64.tar.gz"},
		{"linux", "arm64", "quizdeck_Linux_arm64.tar.gz"},
		{"linux", "386", "quizdeck_Linux_i386.tar.gz"},
		{"windows", "amd64", "quizdeck_Windows_x86_64.zip"},
		{"windows", "arm64", "quizdeck_Windows_arm64.zip"},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetName(tt.goos, tt.goarch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := assetName("freebsd", "amd64")
		assert.Error(t, err)
		_, err = assetName("linux", "mips")
		assert.Error(t, err)
	})
}

func TestParseChecksumManifest(t *testing.T) {
	manifest := []byte("abc123  quizdeck_Darwin_all.tar.gz\n" +
		"not a checksum line at all\n" +
		"   \n" +
		"def456  quizdeck_Linux_x86_64.tar.gz\n")

	sums := parseChecksumManifest(manifest)
	assert.Equal(t, map[string]string{
		"quizdeck_Darwin_all.tar.gz":   "abc123",
		"quizdeck_Linux_x86_64.tar.gz": "def456",
	}, sums)

	assert.Empty(t, parseChecksumManifest(nil))
}

func TestUnpackBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho quizdeck")

	t.Run("tar.gz", func(t *testing.T) {
		got, err := unpackBinary(tarGzWith(t, "quizdeck", content), "quizdeck_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip", func(t *testing.T) {
		got, err := unpackBinary(zipWith(t, "quizdeck.exe", content), "quizdeck_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		_, err := unpackBinary(tarGzWith(t, "README.md", content), "quizdeck_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	target := filepath.Join(t.TempDir(), "quizdeck")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	replacement := []byte("new-binary-content")
	digest := sha256.Sum256(replacement)
	require.NoError(t, swapBinary(replacement, target, digest[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	binary := []byte("new-quizdeck-binary")
	archive := tarGzWith(t, "quizdeck", binary)
	asset, err := assetName(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	t.Run("full flow replaces the binary", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "quizdeck")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, asset, archive, sha256Hex(archive))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("dev build refuses", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		err := NewChecker(WithBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch aborts before apply", func(t *testing.T) {
		badSum := "0000000000000000000000000000000000000000000000000000000000000000"
		server := releaseServer(t, asset, archive, badSum)
		defer server.Close()

		err := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing archive surfaces download error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/sahajm/quizdeck/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		err := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// releaseServer serves a v2.0.0 release with one asset and its
// checksums.txt, on the paths the GitHub API and download hosts use.
func releaseServer(t *testing.T, asset string, archive []byte, sum string) *httptest.Server {
	t.Helper()
	download := fmt.Sprintf("/sahajm/quizdeck/releases/download/v2.0.0/%s", asset)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/sahajm/quizdeck/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case download:
			_, _ = w.Write(archive)
		case "/sahajm/quizdeck/releases/download/v2.0.0/checksums.txt":
			_, _ = fmt.Fprintf(w, "%s  %s\n", sum, asset)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func tarGzWith(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0755}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func zipWith(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
