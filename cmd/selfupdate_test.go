package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfUpdateCmd(t *testing.T) {
	c := newSelfUpdateCmd()
	assert.Equal(t, "self-update", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotNil(t, c.RunE)
	assert.Equal(t, "carouselctl/carouselctl", githubRepoSlug)

	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs([]string{"--help"})
	require.NoError(t, c.Execute())
	assert.Contains(t, buf.String(), "Checks for the latest release of carouselctl")
}

// Only unreleased builds are exercised; a tagged version would hit GitHub.
func TestRunSelfUpdate_RefusesUnreleasedBuilds(t *testing.T) {
	orig := rootCmd.Version
	t.Cleanup(func() { rootCmd.Version = orig })

	for _, v := range []string{"", "dev"} {
		rootCmd.Version = v
		err := runSelfUpdate(nil, nil)
		require.Error(t, err, "version %q", v)
		assert.Contains(t, err.Error(), "cannot self-update a development version")
	}
}
