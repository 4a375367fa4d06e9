package webkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomEventScript(t *testing.T) {
	script, err := CustomEventScript("load-urls", map[string]string{"url1": "https://a.example/?q=\"x\""})

	require.NoError(t, err)
	assert.Equal(t,
		`window.dispatchEvent(new CustomEvent("load-urls", { detail: {"url1":"https://a.example/?q=\"x\""} }));`,
		script)
}

func TestCustomEventScript_NilPayload(t *testing.T) {
	script, err := CustomEventScript("ping", nil)

	require.NoError(t, err)
	assert.Contains(t, script, "detail: null")
}

func TestCustomEventScript_Errors(t *testing.T) {
	_, err := CustomEventScript("", nil)
	assert.Error(t, err)

	_, err = CustomEventScript("bad", make(chan int))
	assert.Error(t, err)
}
