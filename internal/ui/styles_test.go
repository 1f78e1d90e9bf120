package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStylesRenderContent(t *testing.T) {
	assert.Contains(t, infoStyle.Render("connecting"), "connecting")
	assert.Contains(t, successStyle.Render("done"), "done")
	assert.Contains(t, warnStyle.Render("careful"), "careful")
	assert.Contains(t, errorStyle.Render("broken"), "broken")
}
