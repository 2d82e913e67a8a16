package prompts

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Prelude starts every generated bookmarklet.
const Prelude = "javascript:(function(){"

// The template avoids ", <, >, &, % and backticks so the script can sit in an
// href attribute or be pasted as a bookmark URL without further escaping.
// Base64 never produces a single quote, which delimits the payload.
const (
	payloadPrefix = Prelude + "try{const p=decodeURIComponent(escape(atob('"
	payloadSuffix = "')));" +
		"const input=document.querySelector('.ql-editor')" +
		"||document.querySelector('#prompt-textarea')" +
		"||document.querySelector('div[contenteditable=true]');" +
		"if(input){input.focus();" +
		"const ok=document.execCommand('insertText',false,p);" +
		"if(!ok)input.innerText=p;" +
		"input.dispatchEvent(new Event('input',{bubbles:true}));" +
		"}else{alert('Chat input not found. Open ChatGPT, Gemini, or Claude.');}" +
		"}catch(e){alert('Bookmarklet error: '+e.message);}})();"

	invalidTextScript = Prelude + "alert('Bookmarklet error: prompt text is not valid UTF-8');})();"
)

var (
	ErrNotBookmarklet = errors.New("not a generated bookmarklet")
	ErrNoPayload      = errors.New("bookmarklet carries no payload")
)

// Encode turns prompt text into a javascript: bookmarklet that inserts the text
// into the chat input of ChatGPT, Gemini or Claude.
//
// The text travels as base64 over its UTF-8 bytes. Text that is not valid UTF-8
// cannot be reproduced by the browser, so Encode returns a script that reports
// the problem when clicked instead of failing at generation time.
func Encode(content string) string {
	if !utf8.ValidString(content) {
		return invalidTextScript
	}

	payload := base64.StdEncoding.EncodeToString([]byte(content))

	var b strings.Builder
	b.Grow(len(payloadPrefix) + len(payload) + len(payloadSuffix))
	b.WriteString(payloadPrefix)
	b.WriteString(payload)
	b.WriteString(payloadSuffix)
	return b.String()
}

// Payload extracts and decodes the prompt text embedded by Encode.
func Payload(script string) (string, error) {
	if script == invalidTextScript {
		return "", ErrNoPayload
	}
	rest, ok := strings.CutPrefix(script, payloadPrefix)
	if !ok {
		return "", ErrNotBookmarklet
	}
	encoded, ok := strings.CutSuffix(rest, payloadSuffix)
	if !ok {
		return "", ErrNotBookmarklet
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("decode payload: %w", ErrNoPayload)
	}
	return string(raw), nil
}
