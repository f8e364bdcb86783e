package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstName(t *testing.T) {
	assert.Equal(t, "TypeUserAccount", constName("type", "user_account"))
	assert.Equal(t, "EnumStatusACTIVE", constName("enum_status", "ACTIVE"))
}
