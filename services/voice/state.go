// File: services/voice/state.go
package voice

import (
	"encoding/base64"
	"encoding/json"

	"go.uber.org/zap"

	"pizzavoice/models"
	"pizzavoice/utils"
)

// EncodeState serializes the continuation state into a URL-safe token for
// the next callback URL. Encode and Decode round-trip losslessly.
func EncodeState(st models.CallState) string {
	b, err := json.Marshal(st)
	if err != nil {
		// CallState contains only marshalable fields; this cannot
		// happen at runtime, but never break the call over it.
		utils.GetLogger().Error("Failed to encode call state", zap.Error(err))
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeState recovers the continuation state from the inbound request.
// Any decode failure yields the empty state: the dialogue restarts rather
// than dropping the call.
func DecodeState(raw string) models.CallState {
	var st models.CallState
	if raw == "" {
		return st
	}
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		utils.GetLogger().Warn("Undecodable call state, starting fresh", zap.Error(err))
		return models.CallState{}
	}
	if err := json.Unmarshal(b, &st); err != nil {
		utils.GetLogger().Warn("Unparsable call state, starting fresh", zap.Error(err))
		return models.CallState{}
	}
	return st
}
