//go:build !ebiten

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orbitfx/internal/config"
)

func Test_RunWithoutWindowHost(t *testing.T) {
	code, _, stderr := run(t, "run")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, config.ErrHeadlessBuild.Error())
}
