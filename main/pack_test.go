package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "note.txt")
	content := []byte("seven bit fields travel light across the wire")
	require.NoError(t, os.WriteFile(in, content, 0o644))

	for _, codec := range []string{"uncompressed", "flate", "zstd", "lz4", "brotli"} {
		out := filepath.Join(dir, codec+".pb")
		require.NoError(t, runPack([]string{"-c", codec, "-o", out, in}))

		restored := filepath.Join(dir, codec+".txt")
		require.NoError(t, runUnpack([]string{"-o", restored, out}))

		got, err := os.ReadFile(restored)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(got), len(content), codec)
		assert.Equal(t, content, got[:len(content)], codec)
		for _, b := range got[len(content):] {
			assert.Equal(t, byte(0), b, codec)
		}
	}
}

func TestPackRejectsEightBitInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bin.dat")
	require.NoError(t, os.WriteFile(in, []byte{0x41, 0x42, 0xc3}, 0o644))

	err := runPack([]string{"-o", filepath.Join(dir, "bin.pb"), in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not 7-bit clean")

	// masking forces it through
	require.NoError(t, runPack([]string{"-mask", "-o", filepath.Join(dir, "bin.pb"), in}))
}

func TestUnpackDetectsTampering(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(in, []byte("a small message"), 0o644))

	out := filepath.Join(dir, "note.pb")
	require.NoError(t, runPack([]string{"-c", "uncompressed", "-o", out, in}))

	blob, err := os.ReadFile(out)
	require.NoError(t, err)
	blob[len(blob)-6] ^= 0x01
	require.NoError(t, os.WriteFile(out, blob, 0o644))

	err = runUnpack([]string{"-o", filepath.Join(dir, "note2.txt"), out})
	require.Error(t, err)
}
