// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Width  float32
	Length float32
	Format string
}

func TestOpenOverride(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	over := filepath.Join(dir, "over.toml")
	require.NoError(t, os.WriteFile(base, []byte("Width = 4\nLength = 6\nFormat = \"json\"\n"), 0o644))
	require.NoError(t, os.WriteFile(over, []byte("Length = 2\n"), 0o644))

	var s settings
	require.NoError(t, Open(&s, base))
	require.NoError(t, Open(&s, over))
	assert.Equal(t, settings{Width: 4, Length: 2, Format: "json"}, s)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("Width = ["), 0o644))
	assert.Error(t, Open(&s, bad))
}
