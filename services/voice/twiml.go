// File: services/voice/twiml.go
package voice

import "encoding/xml"

// Voice and language used for every spoken prompt.
const (
	VoiceName = "Polly.Bianca"
	VoiceLang = "it-IT"
)

// Say is a spoken prompt verb.
type Say struct {
	XMLName  xml.Name `xml:"Say"`
	Voice    string   `xml:"voice,attr"`
	Language string   `xml:"language,attr"`
	Text     string   `xml:",chardata"`
}

// Gather asks the platform to collect the caller's next speech input and
// POST it back to the action URL.
type Gather struct {
	XMLName       xml.Name `xml:"Gather"`
	Input         string   `xml:"input,attr"`
	Action        string   `xml:"action,attr"`
	Language      string   `xml:"language,attr"`
	SpeechTimeout string   `xml:"speechTimeout,attr"`
}

// Redirect hands the call over to another webhook.
type Redirect struct {
	XMLName xml.Name `xml:"Redirect"`
	URL     string   `xml:",chardata"`
}

// Hangup ends the call.
type Hangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

// VoiceResponse is one complete voice-markup document. Every webhook turn
// produces exactly one, even on internal failure.
type VoiceResponse struct {
	XMLName  xml.Name `xml:"Response"`
	Say      []Say
	Gather   *Gather   `xml:",omitempty"`
	Redirect *Redirect `xml:",omitempty"`
	Hangup   *Hangup   `xml:",omitempty"`
}

// AddSay appends a spoken prompt.
func (vr *VoiceResponse) AddSay(text string) *VoiceResponse {
	vr.Say = append(vr.Say, Say{Voice: VoiceName, Language: VoiceLang, Text: text})
	return vr
}

// GatherSpeech appends a speech gather posting back to the action URL.
func (vr *VoiceResponse) GatherSpeech(action string) *VoiceResponse {
	vr.Gather = &Gather{
		Input:         "speech",
		Action:        action,
		Language:      VoiceLang,
		SpeechTimeout: "auto",
	}
	return vr
}

// RedirectTo appends a redirect verb.
func (vr *VoiceResponse) RedirectTo(url string) *VoiceResponse {
	vr.Redirect = &Redirect{URL: url}
	return vr
}

// EndCall appends a hangup verb.
func (vr *VoiceResponse) EndCall() *VoiceResponse {
	vr.Hangup = &Hangup{}
	return vr
}

// Render serializes the document, falling back to a bare hangup document
// if marshalling ever fails: a broken document would break the live call.
func (vr *VoiceResponse) Render() string {
	b, err := xml.Marshal(vr)
	if err != nil {
		return xml.Header + "<Response><Hangup/></Response>"
	}
	return xml.Header + string(b)
}
