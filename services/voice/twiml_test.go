// File: services/voice/twiml_test.go
package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSayAndGather(t *testing.T) {
	vr := &VoiceResponse{}
	vr.AddSay("Ciao!")
	vr.GatherSpeech("https://example.com/api/calls/collect-order?state=abc&storeId=1234")

	out := vr.Render()
	assert.Contains(t, out, `voice="Polly.Bianca"`)
	assert.Contains(t, out, `language="it-IT"`)
	assert.Contains(t, out, `input="speech"`)
	assert.Contains(t, out, `speechTimeout="auto"`)
	// The action URL must be XML-escaped.
	assert.Contains(t, out, "state=abc&amp;storeId=1234")
}

func TestRenderHangup(t *testing.T) {
	out := Apology().Render()
	assert.Contains(t, out, "<Hangup")
	assert.Contains(t, out, "problema tecnico")
}
